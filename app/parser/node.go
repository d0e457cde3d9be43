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
	"context"

	"github.com/hashgraph/hedera-mirror-node/hedera-mirror-importer/app/persistence/domain"
)

func (h *TransactionHandler) handleNodeCreate(
	_ context.Context,
	recordItem *RecordItem,
	body NodeCreate,
) error {
	created := recordItem.ConsensusTimestamp
	declineReward := body.DeclineReward

	return h.listener.OnNode(domain.Node{
		AdminKey:          body.AdminKey,
		CreatedTimestamp:  &created,
		DeclineReward:     &declineReward,
		GrpcProxyEndpoint: body.GrpcProxyEndpoint,
		NodeId:            recordItem.Receipt.NodeId,
		TimestampRange:    domain.NewTimestampRange(recordItem.ConsensusTimestamp),
	})
}

// handleNodeUpdate emits a partial row, absent attributes keep their prior value on merge. Even a
// no-change update produces a new version, the validity interval advanced.
func (h *TransactionHandler) handleNodeUpdate(
	_ context.Context,
	recordItem *RecordItem,
	body NodeUpdate,
) error {
	node := domain.Node{
		GrpcProxyEndpoint: body.GrpcProxyEndpoint,
		NodeId:            body.NodeId,
		TimestampRange:    domain.NewTimestampRange(recordItem.ConsensusTimestamp),
	}
	if body.AdminKey != nil {
		node.AdminKey = body.AdminKey.Value
	}
	if body.DeclineReward != nil {
		declineReward := body.DeclineReward.Value
		node.DeclineReward = &declineReward
	}

	return h.listener.OnNode(node)
}

func (h *TransactionHandler) handleNodeDelete(
	_ context.Context,
	recordItem *RecordItem,
	body NodeDelete,
) error {
	deleted := true
	return h.listener.OnNode(domain.Node{
		Deleted:        &deleted,
		NodeId:         body.NodeId,
		TimestampRange: domain.NewTimestampRange(recordItem.ConsensusTimestamp),
	})
}

func (h *TransactionHandler) handleRegisteredNodeCreate(
	ctx context.Context,
	recordItem *RecordItem,
	body RegisteredNodeCreate,
) error {
	created := recordItem.ConsensusTimestamp
	node := domain.RegisteredNode{
		AdminKey:         body.AdminKey,
		CreatedTimestamp: &created,
		Description:      body.Description,
		Endpoints:        body.Endpoints,
		NodeId:           recordItem.Receipt.NodeId,
		TimestampRange:   domain.NewTimestampRange(recordItem.ConsensusTimestamp),
	}

	if !body.AccountId.IsZero() {
		accountId, found, err := h.entityIdService.Lookup(ctx, body.AccountId)
		if err != nil {
			return err
		}
		if found {
			recordItem.AddEntityId(accountId)
			node.AccountId = &accountId
		}
	}

	return h.listener.OnRegisteredNode(node)
}

func (h *TransactionHandler) handleRegisteredNodeUpdate(
	ctx context.Context,
	recordItem *RecordItem,
	body RegisteredNodeUpdate,
) error {
	node := domain.RegisteredNode{
		Endpoints:      body.Endpoints,
		NodeId:         body.NodeId,
		TimestampRange: domain.NewTimestampRange(recordItem.ConsensusTimestamp),
	}
	if body.AdminKey != nil {
		node.AdminKey = body.AdminKey.Value
	}
	if body.Description != nil {
		node.Description = body.Description.Value
	}

	if body.AccountId != nil && !body.AccountId.IsZero() {
		accountId, found, err := h.entityIdService.Lookup(ctx, *body.AccountId)
		if err != nil {
			return err
		}
		if found {
			recordItem.AddEntityId(accountId)
			node.AccountId = &accountId
		}
	}

	return h.listener.OnRegisteredNode(node)
}

func (h *TransactionHandler) handleRegisteredNodeDelete(
	_ context.Context,
	recordItem *RecordItem,
	body RegisteredNodeDelete,
) error {
	deleted := true
	return h.listener.OnRegisteredNode(domain.RegisteredNode{
		Deleted:        &deleted,
		NodeId:         body.NodeId,
		TimestampRange: domain.NewTimestampRange(recordItem.ConsensusTimestamp),
	})
}
