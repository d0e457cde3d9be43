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
	tableNameAddressBook      = "address_book"
	tableNameAddressBookEntry = "address_book_entry"
)

// AddressBook is one complete parsed version of a network address book system file. EndConsensusTimestamp
// is nil while the version is current and set to the successor's start when superseded.
type AddressBook struct {
	StartConsensusTimestamp int64 `gorm:"primaryKey"`
	EndConsensusTimestamp   *int64
	FileId                  EntityId
	FileData                []byte
	NodeCount               int32
}

func (AddressBook) TableName() string {
	return tableNameAddressBook
}

// AddressBookEntry is one node listed in an address book version.
type AddressBookEntry struct {
	ConsensusTimestamp int64 `gorm:"primaryKey"`
	Description        string
	Memo               string
	NodeAccountId      EntityId
	NodeCertHash       []byte
	NodeId             int64 `gorm:"primaryKey"`
	PublicKey          string
	Stake              int64
}

func (AddressBookEntry) TableName() string {
	return tableNameAddressBookEntry
}
