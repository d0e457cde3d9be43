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

package parser

import (
	"context"

	cache "github.com/Code-Hex/go-generics-cache"
	"github.com/Code-Hex/go-generics-cache/policy/lru"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/hashgraph/hedera-mirror-node/hedera-mirror-importer/app/interfaces"
	"github.com/hashgraph/hedera-mirror-node/hedera-mirror-importer/app/persistence/domain"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

const (
	aliasKeyPrefix      = "a:"
	evmAddressKeyPrefix = "e:"

	evmAddressLength = 20

	// protobuf serialized ECDSA secp256k1 key: field 7, length-delimited, 33 byte payload
	ecdsaKeyAliasLength = 35
	ecdsaKeyAliasTag    = 0x3a
	ecdsaKeyAliasSize   = 0x21
)

// EntityIdService resolves any reference appearing in a record to the canonical entity id.
// Resolutions made within a batch are cached so later records see entities and aliases created by
// earlier records of the same batch before anything is committed; the cache must not survive the
// batch, Reset discards it.
type EntityIdService struct {
	aliasRepository interfaces.AliasRepository
	cache           *cache.Cache[string, domain.EntityId]
	cacheSize       int
}

func NewEntityIdService(aliasRepository interfaces.AliasRepository, cacheSize int) *EntityIdService {
	service := &EntityIdService{aliasRepository: aliasRepository, cacheSize: cacheSize}
	service.Reset()
	return service
}

// Lookup resolves the reference to the canonical entity id. An all-zero numeric reference and an
// unresolvable alias both return found=false with no error; the caller decides whether that halts
// the batch or skips the dependent side effect.
func (e *EntityIdService) Lookup(ctx context.Context, ref EntityRef) (domain.EntityId, bool, error) {
	if ref.IsNumeric() {
		if ref.IsZero() {
			return domain.EntityId{}, false, nil
		}

		entityId, err := domain.NewEntityId(ref.Shard, ref.Realm, ref.Num)
		if err != nil {
			return domain.EntityId{}, false, errors.Wrap(err, "invalid numeric entity reference")
		}
		return entityId, true, nil
	}

	if len(ref.EvmAddress) != 0 {
		return e.lookupEvmAddress(ctx, ref.EvmAddress)
	}

	return e.lookupAlias(ctx, ref.Alias)
}

// Bind records an in-batch resolution of the reference's alias or evm address to the entity id.
// An ECDSA key alias additionally binds the evm address derived from the key, matching the way
// the network materializes hollow accounts.
func (e *EntityIdService) Bind(ref EntityRef, entityId domain.EntityId) {
	if entityId.IsZero() {
		return
	}

	if len(ref.EvmAddress) != 0 {
		e.cache.Set(evmAddressKeyPrefix+string(ref.EvmAddress), entityId)
	}

	if len(ref.Alias) != 0 {
		e.cache.Set(aliasKeyPrefix+string(ref.Alias), entityId)
		if evmAddress := evmAddressFromKeyAlias(ref.Alias); evmAddress != nil {
			e.cache.Set(evmAddressKeyPrefix+string(evmAddress), entityId)
		}
	}
}

// Reset discards every cached resolution. Called at batch boundaries so resolutions never leak
// across independently committed batches.
func (e *EntityIdService) Reset() {
	e.cache = cache.New(cache.AsLRU[string, domain.EntityId](lru.WithCapacity(e.cacheSize)))
}

func (e *EntityIdService) lookupEvmAddress(ctx context.Context, evmAddress []byte) (
	domain.EntityId,
	bool,
	error,
) {
	if len(evmAddress) != evmAddressLength {
		return domain.EntityId{}, false, errors.Errorf("invalid evm address length %d", len(evmAddress))
	}

	// long-zero addresses decode numerically without any lookup
	if isLongZeroAddress(evmAddress) {
		entityId, err := domain.EntityIdFromEvmAddress(common.BytesToAddress(evmAddress))
		if err != nil {
			return domain.EntityId{}, false, err
		}
		return entityId, true, nil
	}

	if entityId, ok := e.cache.Get(evmAddressKeyPrefix + string(evmAddress)); ok {
		return entityId, true, nil
	}

	entityId, found, err := e.aliasRepository.FindByEvmAddress(ctx, evmAddress)
	if err != nil {
		return domain.EntityId{}, false, err
	}
	if !found {
		log.Debugf("Unresolved evm address %x", evmAddress)
		return domain.EntityId{}, false, nil
	}

	e.cache.Set(evmAddressKeyPrefix+string(evmAddress), entityId)
	return entityId, true, nil
}

func (e *EntityIdService) lookupAlias(ctx context.Context, alias []byte) (domain.EntityId, bool, error) {
	if len(alias) == 0 {
		return domain.EntityId{}, false, nil
	}

	// a 20-byte alias is an evm address on the wire
	if len(alias) == evmAddressLength {
		return e.lookupEvmAddress(ctx, alias)
	}

	if entityId, ok := e.cache.Get(aliasKeyPrefix + string(alias)); ok {
		return entityId, true, nil
	}

	entityId, found, err := e.aliasRepository.FindByAlias(ctx, alias)
	if err != nil {
		return domain.EntityId{}, false, err
	}
	if !found {
		log.Debugf("Unresolved alias %x", alias)
		return domain.EntityId{}, false, nil
	}

	e.cache.Set(aliasKeyPrefix+string(alias), entityId)
	return entityId, true, nil
}

// evmAddressFromKeyAlias derives the evm address from a protobuf serialized ECDSA secp256k1 key
// alias, or returns nil when the alias holds any other key type
func evmAddressFromKeyAlias(alias []byte) []byte {
	if len(alias) != ecdsaKeyAliasLength || alias[0] != ecdsaKeyAliasTag || alias[1] != ecdsaKeyAliasSize {
		return nil
	}

	publicKey, err := crypto.DecompressPubkey(alias[2:])
	if err != nil {
		return nil
	}

	address := crypto.PubkeyToAddress(*publicKey)
	return address.Bytes()
}

func isLongZeroAddress(evmAddress []byte) bool {
	for _, b := range evmAddress[:12] {
		if b != 0 {
			return false
		}
	}
	return true
}
