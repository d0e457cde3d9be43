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
	tableNameHook              = "hook"
	tableNameHookHistory       = "hook_history"
	tableNameHookStorageChange = "hook_storage_change"

	HookTypeLambda = "LAMBDA"

	HookExtensionPointAccountAllowance = "ACCOUNT_ALLOWANCE_HOOK"
)

// Hook is an extension point attached to an owning entity. HookId is scoped per owner, so the
// natural key is (HookId, OwnerId). A deletion produces a sparse tombstone row carrying only
// identity, owner, and the deleted flag.
type Hook struct {
	AdminKey         []byte
	ContractId       EntityId
	CreatedTimestamp *int64
	Deleted          *bool
	ExtensionPoint   string
	HookId           int64            `gorm:"primaryKey"`
	OwnerId          int64            `gorm:"primaryKey"`
	TimestampRange   pgtype.Int8range `gorm:"type:int8range"`
	Type             string
}

func (Hook) TableName() string {
	return tableNameHook
}

func (Hook) HistoryTableName() string {
	return tableNameHookHistory
}

// HookStorageChange is one key-value slot mutation observed in a record's side-effect payload.
// ValueRead and ValueWritten are kept apart for audit; a read-only access persists with a nil
// ValueWritten.
type HookStorageChange struct {
	ConsensusTimestamp int64  `gorm:"primaryKey"`
	HookId             int64  `gorm:"primaryKey"`
	Key                []byte `gorm:"primaryKey"`
	OwnerId            int64  `gorm:"primaryKey"`
	ValueRead          []byte
	ValueWritten       []byte
}

func (HookStorageChange) TableName() string {
	return tableNameHookStorageChange
}
