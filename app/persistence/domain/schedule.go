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

const (
	tableNameSchedule             = "schedule"
	tableNameTransactionSignature = "transaction_signature"
)

// Schedule is a deferred transaction. ExecutedTimestamp stays nil until a sign collects enough
// signatures for the network to execute the inner transaction.
type Schedule struct {
	ConsensusTimestamp int64
	CreatorAccountId   EntityId
	ExecutedTimestamp  *int64
	ExpirationTime     *int64
	PayerAccountId     EntityId
	ScheduleId         EntityId `gorm:"primaryKey"`
	TransactionBody    []byte
	WaitForExpiry      bool
}

func (Schedule) TableName() string {
	return tableNameSchedule
}

// TransactionSignature is one signature collected for a schedule (or any other entity which
// accumulates signatures). Unknown signature types are stored verbatim by their numeric type.
type TransactionSignature struct {
	ConsensusTimestamp int64    `gorm:"primaryKey"`
	EntityId           EntityId
	PublicKeyPrefix    []byte   `gorm:"primaryKey"`
	Signature          []byte
	Type               int32
}

func (TransactionSignature) TableName() string {
	return tableNameTransactionSignature
}
