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

const tableNameCryptoTransfer = "crypto_transfer"

const (
	// ErrataTypeDelete marks a transfer which should be logically disregarded by consumers due to
	// a protocol-level correction; the row itself is never removed
	ErrataTypeDelete = "DELETE"
	// ErrataTypeInsert marks a transfer added after the fact to compensate for one the network
	// failed to emit
	ErrataTypeInsert = "INSERT"
)

// CryptoTransfer is one signed hbar amount moved to or from one entity at one consensus timestamp.
// Multiple transfers with the same amount at the same instant are legal as long as the entity
// differs, so all three of amount, timestamp, and entity form the natural key.
type CryptoTransfer struct {
	Amount             int64    `gorm:"primaryKey"`
	ConsensusTimestamp int64    `gorm:"primaryKey"`
	EntityId           EntityId `gorm:"primaryKey"`
	Errata             *string
	IsApproval         bool
	PayerAccountId     EntityId
}

func (CryptoTransfer) TableName() string {
	return tableNameCryptoTransfer
}
