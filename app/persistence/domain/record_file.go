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

const tableNameRecordFile = "record_file"

// RecordFile is the bookkeeping row for one ingested batch. The batch is the atomic commit unit:
// every mutation derived from its records persists in one database transaction together with this
// row.
type RecordFile struct {
	ConsensusStart   int64
	ConsensusEnd     int64 `gorm:"primaryKey"`
	Count            int64
	FileHash         string
	HapiVersionMajor int32
	HapiVersionMinor int32
	HapiVersionPatch int32
	Hash             string
	Index            int64
	Name             string
	NodeAccountId    EntityId
	PrevHash         string
}

func (RecordFile) TableName() string {
	return tableNameRecordFile
}
