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

const tableNameContractLog = "contract_log"

// ContractLog is one EVM-style log line. Synthetic rows are derived from transfer lists for
// tooling that expects point-to-point transfer events rather than net deltas.
type ContractLog struct {
	Bloom              []byte
	ConsensusTimestamp int64    `gorm:"primaryKey"`
	ContractId         EntityId
	Data               []byte
	Index              int32    `gorm:"primaryKey"`
	PayerAccountId     EntityId
	RootContractId     EntityId
	Topic0             []byte
	Topic1             []byte
	Topic2             []byte
	Topic3             []byte
}

func (ContractLog) TableName() string {
	return tableNameContractLog
}
