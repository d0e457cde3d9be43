/*
 * Copyright (C) 2019-2025 Hedera Hashgraph, LLC
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *      http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package parser

import (
	"testing"

	"github.com/hashgraph/hedera-mirror-node/hedera-mirror-importer/app/config"
	"github.com/hashgraph/hedera-mirror-node/hedera-mirror-importer/app/persistence/domain"
	"github.com/stretchr/testify/assert"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

func TestHandleNodeCreate(t *testing.T) {
	fixture := newHandlerFixture(config.Persist{})
	endpoint := &domain.ServiceEndpoint{DomainName: "node1.example.com", Port: 50211}
	recordItem := newRecordItem(NodeCreate{
		AdminKey:          []byte{1, 2, 3},
		DeclineReward:     true,
		GrpcProxyEndpoint: endpoint,
	}, 100)
	recordItem.Receipt.NodeId = 7

	assert.NoError(t, fixture.handler.Handle(defaultContext, recordItem, &domain.RecordFile{}))

	assert.Len(t, fixture.listener.Nodes, 1)
	node := fixture.listener.Nodes[0]
	assert.Equal(t, int64(7), node.NodeId)
	assert.Equal(t, []byte{1, 2, 3}, node.AdminKey)
	assert.Equal(t, int64Ptr(100), node.CreatedTimestamp)
	assert.NotNil(t, node.DeclineReward)
	assert.True(t, *node.DeclineReward)
	assert.Equal(t, endpoint, node.GrpcProxyEndpoint)
	assert.Equal(t, domain.NewTimestampRange(100), node.TimestampRange)
}

func TestHandleNodeUpdateWithoutChangesStillVersions(t *testing.T) {
	fixture := newHandlerFixture(config.Persist{})
	recordItem := newRecordItem(NodeUpdate{NodeId: 7}, 200)

	assert.NoError(t, fixture.handler.Handle(defaultContext, recordItem, &domain.RecordFile{}))

	assert.Len(t, fixture.listener.Nodes, 1)
	node := fixture.listener.Nodes[0]
	assert.Equal(t, int64(7), node.NodeId)
	assert.Nil(t, node.AdminKey)
	assert.Nil(t, node.DeclineReward)
	assert.Nil(t, node.CreatedTimestamp)
	assert.Equal(t, domain.NewTimestampRange(200), node.TimestampRange)
}

func TestHandleNodeDelete(t *testing.T) {
	fixture := newHandlerFixture(config.Persist{})
	recordItem := newRecordItem(NodeDelete{NodeId: 7}, 300)

	assert.NoError(t, fixture.handler.Handle(defaultContext, recordItem, &domain.RecordFile{}))

	node := fixture.listener.Nodes[0]
	assert.NotNil(t, node.Deleted)
	assert.True(t, *node.Deleted)
}

func TestHandleRegisteredNodeCreate(t *testing.T) {
	fixture := newHandlerFixture(config.Persist{})
	endpoints := domain.ServiceEndpointSlice{
		{EndpointType: domain.EndpointTypeBlockNode, IpAddress: "10.0.0.1", Port: 40840},
	}
	recordItem := newRecordItem(RegisteredNodeCreate{
		AccountId:   NewNumericRef(0, 0, 4004),
		AdminKey:    []byte{1},
		Description: "block node one",
		Endpoints:   endpoints,
	}, 100)
	recordItem.Receipt.NodeId = 2

	assert.NoError(t, fixture.handler.Handle(defaultContext, recordItem, &domain.RecordFile{}))

	assert.Len(t, fixture.listener.RegisteredNodes, 1)
	node := fixture.listener.RegisteredNodes[0]
	assert.Equal(t, int64(2), node.NodeId)
	accountId := domain.MustDecodeEntityId(4004)
	assert.Equal(t, &accountId, node.AccountId)
	assert.Equal(t, "block node one", node.Description)
	assert.Equal(t, endpoints, node.Endpoints)
	assert.Equal(t, int64Ptr(100), node.CreatedTimestamp)
}

func TestHandleRegisteredNodeUpdate(t *testing.T) {
	fixture := newHandlerFixture(config.Persist{})
	recordItem := newRecordItem(RegisteredNodeUpdate{
		Description: wrapperspb.String("renamed"),
		NodeId:      2,
	}, 200)

	assert.NoError(t, fixture.handler.Handle(defaultContext, recordItem, &domain.RecordFile{}))

	node := fixture.listener.RegisteredNodes[0]
	assert.Equal(t, "renamed", node.Description)
	assert.Nil(t, node.Endpoints)
	assert.Nil(t, node.AccountId)
}

func TestHandleRegisteredNodeDelete(t *testing.T) {
	fixture := newHandlerFixture(config.Persist{})
	recordItem := newRecordItem(RegisteredNodeDelete{NodeId: 2}, 300)

	assert.NoError(t, fixture.handler.Handle(defaultContext, recordItem, &domain.RecordFile{}))

	node := fixture.listener.RegisteredNodes[0]
	assert.NotNil(t, node.Deleted)
	assert.True(t, *node.Deleted)
}
