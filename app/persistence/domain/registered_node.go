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

package domain

import (
	"database/sql/driver"
	"encoding/json"
	"errors"

	"github.com/jackc/pgtype"
)

const (
	tableNameRegisteredNode        = "registered_node"
	tableNameRegisteredNodeHistory = "registered_node_history"

	EndpointTypeBlockNode  = "BLOCK_NODE"
	EndpointTypeMirrorNode = "MIRROR_NODE"
	EndpointTypeRpcRelay   = "RPC_RELAY"
)

// ServiceEndpoint describes one network endpoint a registered node exposes. Either IpAddress or
// DomainName is set, never both.
type ServiceEndpoint struct {
	DomainName   string `json:"domain_name,omitempty"`
	EndpointType string `json:"endpoint_type,omitempty"`
	IpAddress    string `json:"ip_address,omitempty"`
	Port         int32  `json:"port"`
	RequiresTls  bool   `json:"requires_tls"`
}

func (s *ServiceEndpoint) Scan(value interface{}) error {
	data, ok := value.([]byte)
	if !ok {
		return errors.New("type assertion to []byte failed")
	}
	return json.Unmarshal(data, s)
}

func (s ServiceEndpoint) Value() (driver.Value, error) {
	return json.Marshal(s)
}

type ServiceEndpointSlice []ServiceEndpoint

func (s *ServiceEndpointSlice) Scan(value interface{}) error {
	data, ok := value.([]byte)
	if !ok {
		return errors.New("type assertion to []byte failed")
	}

	result := ServiceEndpointSlice{}
	err := json.Unmarshal(data, &result)
	*s = result
	return err
}

func (s ServiceEndpointSlice) Value() (driver.Value, error) {
	if len(s) == 0 {
		return nil, nil
	}

	return json.Marshal(s)
}

// RegisteredNode is an operator-registered (non-consensus) node, e.g. a block node or mirror node,
// temporally versioned like Node.
type RegisteredNode struct {
	AccountId        *EntityId
	AdminKey         []byte
	CreatedTimestamp *int64
	Deleted          *bool
	Description      string
	Endpoints        ServiceEndpointSlice `gorm:"type:jsonb"`
	NodeId           int64                `gorm:"primaryKey"`
	TimestampRange   pgtype.Int8range     `gorm:"type:int8range"`
}

func (RegisteredNode) TableName() string {
	return tableNameRegisteredNode
}

func (RegisteredNode) HistoryTableName() string {
	return tableNameRegisteredNodeHistory
}
