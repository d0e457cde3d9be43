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

	"github.com/hashgraph/hedera-mirror-node/hedera-mirror-importer/app/interfaces"
	"github.com/hashgraph/hedera-mirror-node/hedera-mirror-importer/app/persistence/domain"
	"github.com/pkg/errors"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

// stakedNodeIdClear is the wire sentinel clearing a staked node id
const stakedNodeIdClear int64 = -1

// EntityDelta is one record's attribute changes for one entity. Every optional field is tri-state:
// a nil wrapper keeps the prior value, a wrapper holding the type's empty value clears where
// clearing is legal, any other wrapper value sets. Balance is a signed adjustment, not an absolute.
type EntityDelta struct {
	Alias               []byte
	AutoRenewPeriod     *wrapperspb.Int64Value
	Balance             *int64
	CreatedTimestamp    *int64
	DeclineReward       *wrapperspb.BoolValue
	Deleted             *bool
	EvmAddress          []byte
	ExpirationTimestamp *wrapperspb.Int64Value
	Key                 *wrapperspb.BytesValue
	Memo                *wrapperspb.StringValue
	ProxyAccountId      *domain.EntityId
	StakePeriodStart    *int64
	StakedAccountId     *wrapperspb.Int64Value
	StakedNodeId        *wrapperspb.Int64Value
	Type                string
}

// TemporalLedger is the single point of truth for entity state within one batch. It layers the
// batch's mutations over committed state read through the entity repository, closing the validity
// interval of every superseded version. All handlers go through Upsert; nothing mutates a current
// row without first archiving it. Not safe for concurrent use, records are applied in consensus
// order by a single writer.
type TemporalLedger struct {
	entityRepository interfaces.EntityRepository
	history          []domain.Entity
	pending          map[int64]*domain.Entity
}

func NewTemporalLedger(entityRepository interfaces.EntityRepository) *TemporalLedger {
	return &TemporalLedger{
		entityRepository: entityRepository,
		pending:          make(map[int64]*domain.Entity),
	}
}

// Get returns the entity's pending state in this batch, loading committed state on first touch.
// The returned pointer is live, callers must not retain it across Upsert calls.
func (l *TemporalLedger) Get(ctx context.Context, entityId domain.EntityId) (*domain.Entity, error) {
	if entity, ok := l.pending[entityId.EncodedId]; ok {
		return entity, nil
	}

	committed, found, err := l.entityRepository.Find(ctx, entityId.EncodedId)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, nil
	}

	entity := committed
	l.pending[entityId.EncodedId] = &entity
	return &entity, nil
}

// Upsert applies the delta to the entity at the record's consensus timestamp. A first touch
// creates the current row; a later timestamp archives the prior version with its interval closed
// at the new timestamp; an identical timestamp coalesces field-wise, last writer wins, so one
// record never produces a zero-width interval. An earlier timestamp is a structural violation
// which aborts the batch.
func (l *TemporalLedger) Upsert(
	ctx context.Context,
	entityId domain.EntityId,
	timestamp int64,
	delta EntityDelta,
) error {
	entity, err := l.Get(ctx, entityId)
	if err != nil {
		return err
	}

	if entity == nil {
		created := timestamp
		if delta.CreatedTimestamp != nil {
			created = *delta.CreatedTimestamp
		}

		entity = &domain.Entity{
			CreatedTimestamp: &created,
			Id:               entityId,
			Num:              entityId.EntityNum,
			Realm:            entityId.RealmNum,
			Shard:            entityId.ShardNum,
			TimestampRange:   domain.NewTimestampRange(timestamp),
			Type:             domain.EntityTypeAccount,
		}
		l.pending[entityId.EncodedId] = entity
		applyEntityDelta(entity, delta)
		return nil
	}

	lower := entity.GetModifiedTimestamp()
	switch {
	case timestamp < lower:
		return errors.Errorf(
			"entity %s modified at %d after a version starting at %d", entityId.String(), timestamp, lower)
	case timestamp == lower:
		applyEntityDelta(entity, delta)
	default:
		archived := *entity
		archived.TimestampRange = domain.NewClosedTimestampRange(lower, timestamp)
		l.history = append(l.history, archived)

		entity.TimestampRange = domain.NewTimestampRange(timestamp)
		applyEntityDelta(entity, delta)
	}

	return nil
}

// Flush emits every archived version then every current row to the listener, in deterministic
// order. The ledger stays usable afterwards only for a fresh batch.
func (l *TemporalLedger) Flush(listener interfaces.EntityListener) error {
	slices.SortFunc(l.history, func(a, b domain.Entity) int {
		if a.Id.EncodedId != b.Id.EncodedId {
			return int(a.Id.EncodedId - b.Id.EncodedId)
		}
		return int(a.GetModifiedTimestamp() - b.GetModifiedTimestamp())
	})
	for _, entity := range l.history {
		if err := listener.OnEntity(entity); err != nil {
			return err
		}
	}

	ids := maps.Keys(l.pending)
	slices.Sort(ids)
	for _, id := range ids {
		if err := listener.OnEntity(*l.pending[id]); err != nil {
			return err
		}
	}

	l.history = nil
	l.pending = make(map[int64]*domain.Entity)
	return nil
}

// Reset discards every pending mutation and archived version. Called when the batch fails so
// rolled back state never reaches a later batch's Flush.
func (l *TemporalLedger) Reset() {
	l.history = nil
	l.pending = make(map[int64]*domain.Entity)
}

func applyEntityDelta(entity *domain.Entity, delta EntityDelta) {
	if len(delta.Alias) != 0 {
		entity.Alias = delta.Alias
	}

	if delta.AutoRenewPeriod != nil {
		value := delta.AutoRenewPeriod.Value
		entity.AutoRenewPeriod = &value
	}

	if delta.Balance != nil {
		balance := *delta.Balance
		if entity.Balance != nil {
			balance += *entity.Balance
		}
		entity.Balance = &balance
	}

	if delta.DeclineReward != nil {
		value := delta.DeclineReward.Value
		entity.DeclineReward = &value
	}

	if delta.Deleted != nil {
		value := *delta.Deleted
		entity.Deleted = &value
	}

	if len(delta.EvmAddress) != 0 {
		entity.EvmAddress = delta.EvmAddress
	}

	if delta.ExpirationTimestamp != nil {
		value := delta.ExpirationTimestamp.Value
		entity.ExpirationTimestamp = &value
	}

	if delta.Key != nil {
		if len(delta.Key.Value) == 0 {
			entity.Key = nil
			entity.PublicKey = ""
		} else {
			entity.Key = delta.Key.Value
		}
	}

	if delta.Memo != nil {
		entity.Memo = delta.Memo.Value
	}

	if delta.ProxyAccountId != nil {
		if delta.ProxyAccountId.IsZero() {
			entity.ProxyAccountId = nil
		} else {
			value := *delta.ProxyAccountId
			entity.ProxyAccountId = &value
		}
	}

	if delta.StakePeriodStart != nil {
		value := *delta.StakePeriodStart
		entity.StakePeriodStart = &value
	}

	// staking targets are mutually exclusive, setting one clears the other
	if delta.StakedAccountId != nil {
		if delta.StakedAccountId.Value == 0 {
			entity.StakedAccountId = nil
		} else {
			value := domain.MustDecodeEntityId(delta.StakedAccountId.Value)
			entity.StakedAccountId = &value
			entity.StakedNodeId = nil
		}
	}

	if delta.StakedNodeId != nil {
		if delta.StakedNodeId.Value == stakedNodeIdClear {
			entity.StakedNodeId = nil
		} else {
			value := delta.StakedNodeId.Value
			entity.StakedNodeId = &value
			entity.StakedAccountId = nil
		}
	}

	if delta.Type != "" {
		entity.Type = delta.Type
	}
}
