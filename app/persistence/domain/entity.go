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
	entityTableName        = "entity"
	entityHistoryTableName = "entity_history"

	EntityTypeAccount  = "ACCOUNT"
	EntityTypeContract = "CONTRACT"
	EntityTypeFile     = "FILE"
	EntityTypeSchedule = "SCHEDULE"
	EntityTypeToken    = "TOKEN"
	EntityTypeTopic    = "TOPIC"
)

// Entity is the temporal state row of any ledger-addressable object. The row in the entity table
// has an open-ended timestamp range; every superseded version lives in entity_history with a
// closed range whose upper bound equals the lower bound of its successor.
type Entity struct {
	Alias               []byte
	AutoRenewAccountId  *EntityId
	AutoRenewPeriod     *int64
	Balance             *int64
	CreatedTimestamp    *int64
	DeclineReward       *bool
	Deleted             *bool
	EvmAddress          []byte
	ExpirationTimestamp *int64
	Id                  EntityId `gorm:"primaryKey"`
	Key                 []byte
	Memo                string
	Num                 int64
	ProxyAccountId      *EntityId
	PublicKey           string
	Realm               int64
	Shard               int64
	StakedAccountId     *EntityId
	StakedNodeId        *int64
	StakePeriodStart    *int64
	SubmitKey           []byte
	TimestampRange      pgtype.Int8range `gorm:"type:int8range"`
	Type                string
}

func (Entity) TableName() string {
	return entityTableName
}

func (Entity) HistoryTableName() string {
	return entityHistoryTableName
}

// GetModifiedTimestamp returns the lower bound of the validity interval, i.e. the consensus
// timestamp of the record which produced this version of the entity
func (e Entity) GetModifiedTimestamp() int64 {
	return GetTimestampLower(e.TimestampRange)
}
