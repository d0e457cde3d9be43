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
	tableNameCryptoAllowance        = "crypto_allowance"
	tableNameCryptoAllowanceHistory = "crypto_allowance_history"
	tableNameNftAllowance           = "nft_allowance"
	tableNameNftAllowanceHistory    = "nft_allowance_history"
	tableNameTokenAllowance         = "token_allowance"
	tableNameTokenAllowanceHistory  = "token_allowance_history"
)

// CryptoAllowance grants a spender a bounded hbar amount of the owner's balance. AmountGranted is
// the immutable ceiling from the grant; Amount is the live remaining balance debited by every
// subsequent approved transfer.
type CryptoAllowance struct {
	Amount         int64
	AmountGranted  int64
	Owner          int64 `gorm:"primaryKey"`
	PayerAccountId EntityId
	Spender        int64            `gorm:"primaryKey"`
	TimestampRange pgtype.Int8range `gorm:"type:int8range"`
}

func (CryptoAllowance) TableName() string {
	return tableNameCryptoAllowance
}

func (CryptoAllowance) HistoryTableName() string {
	return tableNameCryptoAllowanceHistory
}

// TokenAllowance is the fungible-token analogue of CryptoAllowance, additionally keyed by token.
type TokenAllowance struct {
	Amount         int64
	AmountGranted  int64
	Owner          int64 `gorm:"primaryKey"`
	PayerAccountId EntityId
	Spender        int64            `gorm:"primaryKey"`
	TimestampRange pgtype.Int8range `gorm:"type:int8range"`
	TokenId        int64            `gorm:"primaryKey"`
}

func (TokenAllowance) TableName() string {
	return tableNameTokenAllowance
}

func (TokenAllowance) HistoryTableName() string {
	return tableNameTokenAllowanceHistory
}

// NftAllowance binds a spender to either every serial the owner holds for a token (ApprovedForAll)
// or to explicit serials tracked on the nft rows themselves.
type NftAllowance struct {
	ApprovedForAll bool
	Owner          int64 `gorm:"primaryKey"`
	PayerAccountId EntityId
	Spender        int64            `gorm:"primaryKey"`
	TimestampRange pgtype.Int8range `gorm:"type:int8range"`
	TokenId        int64            `gorm:"primaryKey"`
}

func (NftAllowance) TableName() string {
	return tableNameNftAllowance
}

func (NftAllowance) HistoryTableName() string {
	return tableNameNftAllowanceHistory
}
