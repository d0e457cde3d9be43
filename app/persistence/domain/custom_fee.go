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
)

const tableNameCustomFee = "custom_fee"

// FixedFee is a flat fee charged per transfer, denominated in hbar when DenominatingTokenId is nil
type FixedFee struct {
	Amount              int64     `json:"amount"`
	CollectorAccountId  EntityId  `json:"collector_account_id"`
	DenominatingTokenId *EntityId `json:"denominating_token_id,omitempty"`
}

// FractionalFee is a fee taken as a fraction of the transferred amount, clamped to [Minimum, Maximum]
type FractionalFee struct {
	CollectorAccountId EntityId `json:"collector_account_id"`
	Denominator        int64    `json:"denominator"`
	Maximum            *int64   `json:"maximum,omitempty"`
	Minimum            int64    `json:"minimum"`
	NetOfTransfers     bool     `json:"net_of_transfers"`
	Numerator          int64    `json:"numerator"`
}

type FixedFeeSlice []FixedFee

func (f *FixedFeeSlice) Scan(value interface{}) error {
	data, ok := value.([]byte)
	if !ok {
		return errors.New("type assertion to []byte failed")
	}

	result := FixedFeeSlice{}
	err := json.Unmarshal(data, &result)
	*f = result
	return err
}

func (f FixedFeeSlice) Value() (driver.Value, error) {
	if len(f) == 0 {
		return nil, nil
	}

	return json.Marshal(f)
}

type FractionalFeeSlice []FractionalFee

func (f *FractionalFeeSlice) Scan(value interface{}) error {
	data, ok := value.([]byte)
	if !ok {
		return errors.New("type assertion to []byte failed")
	}

	result := FractionalFeeSlice{}
	err := json.Unmarshal(data, &result)
	*f = result
	return err
}

func (f FractionalFeeSlice) Value() (driver.Value, error) {
	if len(f) == 0 {
		return nil, nil
	}

	return json.Marshal(f)
}

// CustomFee is the fee schedule attached to a token class at one consensus timestamp.
type CustomFee struct {
	FixedFees          FixedFeeSlice      `gorm:"type:jsonb"`
	FractionalFees     FractionalFeeSlice `gorm:"type:jsonb"`
	ConsensusTimestamp int64              `gorm:"primaryKey"`
	TokenId            EntityId           `gorm:"primaryKey"`
}

func (CustomFee) TableName() string {
	return tableNameCustomFee
}
