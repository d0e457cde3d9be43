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

package interfaces

import (
	"context"

	"github.com/hashgraph/hedera-mirror-node/hedera-mirror-importer/app/persistence/domain"
)

// AddressBookService maintains the network address book derived from the contents of the two
// address book system files.
type AddressBookService interface {

	// IsAddressBook returns true if the file entity is one of the address book system files
	IsAddressBook(fileId domain.EntityId) bool

	// Update parses the file contents and, when a complete address book is assembled, closes the
	// current version and stores the new one
	Update(ctx context.Context, fileData domain.FileData) error
}
