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

const tableNameEntityTransaction = "entity_transaction"

// EntityTransaction records that an entity was referenced by a transaction, for reverse lookup.
// One row per (transaction, entity) pair no matter how many times the entity appears in the body.
type EntityTransaction struct {
	ConsensusTimestamp int64    `gorm:"primaryKey"`
	EntityId           EntityId `gorm:"primaryKey"`
	PayerAccountId     EntityId
	Result             int16
	Type               int16
}

func (EntityTransaction) TableName() string {
	return tableNameEntityTransaction
}
