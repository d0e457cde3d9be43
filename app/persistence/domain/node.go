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

import "github.com/jackc/pgtype"

const (
	tableNameNode        = "node"
	tableNameNodeHistory = "node_history"
)

// Node is a consensus node's lifecycle state, temporally versioned. An update that changes no
// attribute still produces a new version because the timestamp advanced.
type Node struct {
	AdminKey          []byte
	CreatedTimestamp  *int64
	DeclineReward     *bool
	Deleted           *bool
	GrpcProxyEndpoint *ServiceEndpoint `gorm:"type:jsonb"`
	NodeId            int64            `gorm:"primaryKey"`
	TimestampRange    pgtype.Int8range `gorm:"type:int8range"`
}

func (Node) TableName() string {
	return tableNameNode
}

func (Node) HistoryTableName() string {
	return tableNameNodeHistory
}
