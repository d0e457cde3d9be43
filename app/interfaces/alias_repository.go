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

// AliasRepository looks up entity ids by their key alias or evm address. Backing storage is the
// entity table; lookups consult both current and history rows since an alias survives deletion.
type AliasRepository interface {

	// FindByAlias returns the entity id owning the protobuf serialized key alias, or found=false
	FindByAlias(ctx context.Context, alias []byte) (entityId domain.EntityId, found bool, err error)

	// FindByEvmAddress returns the entity id owning the 20-byte evm address, or found=false
	FindByEvmAddress(ctx context.Context, evmAddress []byte) (entityId domain.EntityId, found bool, err error)
}
