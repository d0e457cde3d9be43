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

const tableNameFileData = "file_data"

// FileData is one content chunk of a file at one consensus timestamp. File content is append-only;
// the full content at a point in time is the concatenation of the create/update chunk and every
// append chunk since.
type FileData struct {
	ConsensusTimestamp int64 `gorm:"primaryKey"`
	EntityId           EntityId
	FileData           []byte
	TransactionType    int16
}

func (FileData) TableName() string {
	return tableNameFileData
}
