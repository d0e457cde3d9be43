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
	"fmt"
)

const (
	TransactionTypeCryptoCreateAccount    int16 = 11
	TransactionTypeCryptoDelete           int16 = 12
	TransactionTypeCryptoTransfer         int16 = 14
	TransactionTypeCryptoUpdateAccount    int16 = 15
	TransactionTypeFileAppend             int16 = 16
	TransactionTypeFileCreate             int16 = 17
	TransactionTypeFileDelete             int16 = 18
	TransactionTypeFileUpdate             int16 = 19
	TransactionTypeTokenCreation          int16 = 29
	TransactionTypeTokenDeletion          int16 = 35
	TransactionTypeTokenUpdate            int16 = 36
	TransactionTypeTokenMint              int16 = 37
	TransactionTypeTokenAssociate         int16 = 40
	TransactionTypeTokenDissociate        int16 = 41
	TransactionTypeScheduleCreate         int16 = 42
	TransactionTypeScheduleDelete         int16 = 43
	TransactionTypeScheduleSign           int16 = 44
	TransactionTypeTokenFeeScheduleUpdate int16 = 45
	TransactionTypeCryptoApproveAllowance int16 = 48
	TransactionTypeCryptoDeleteAllowance  int16 = 49
	TransactionTypeNodeCreate             int16 = 54
	TransactionTypeNodeUpdate             int16 = 55
	TransactionTypeNodeDelete             int16 = 56
	TransactionTypeLambdaSStore           int16 = 75
	TransactionTypeRegisteredNodeCreate   int16 = 76
	TransactionTypeRegisteredNodeUpdate   int16 = 77
	TransactionTypeRegisteredNodeDelete   int16 = 78
	TransactionTypeHookCreate             int16 = 79
	TransactionTypeHookDelete             int16 = 80
	TransactionTypeUnknown                int16 = -1

	transactionTableName = "transaction"
)

// ItemizedTransfer is the per-party non-fee breakdown of a transfer list, persisted as jsonb on
// the transaction row when itemized transfer persistence is enabled
type ItemizedTransfer struct {
	Amount     int64    `json:"amount"`
	EntityId   EntityId `json:"entity_id"`
	IsApproval bool     `json:"is_approval"`
}

type ItemizedTransferSlice []ItemizedTransfer

func (i *ItemizedTransferSlice) Scan(value interface{}) error {
	bytes, ok := value.([]byte)
	if !ok {
		return errors.New(fmt.Sprint("Failed to unmarshal JSONB value", value))
	}

	result := ItemizedTransferSlice{}
	err := json.Unmarshal(bytes, &result)
	*i = result
	return err
}

func (i ItemizedTransferSlice) Value() (driver.Value, error) {
	if len(i) == 0 {
		return nil, nil
	}

	return json.Marshal(i)
}

type Transaction struct {
	ConsensusTimestamp       int64 `gorm:"primaryKey"`
	ChargedTxFee             int64
	EntityId                 *EntityId
	Errata                   *string
	InitialBalance           int64
	ItemizedTransfer         ItemizedTransferSlice `gorm:"type:jsonb"`
	MaxFee                   int64
	Memo                     []byte
	NodeAccountId            *EntityId
	Nonce                    int32
	ParentConsensusTimestamp int64
	PayerAccountId           EntityId
	Result                   int16
	Scheduled                bool
	TransactionBytes         []byte
	TransactionHash          []byte
	Type                     int16
	ValidDurationSeconds     int64
	ValidStartNs             int64
}

func (Transaction) TableName() string {
	return transactionTableName
}
