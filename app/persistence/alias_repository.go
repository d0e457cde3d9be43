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

package persistence

import (
	"context"
	"database/sql"

	"github.com/hashgraph/hedera-mirror-node/hedera-mirror-importer/app/interfaces"
	"github.com/hashgraph/hedera-mirror-node/hedera-mirror-importer/app/persistence/domain"
	"github.com/pkg/errors"
)

// aliases outlive deletion, so history rows participate; the latest binding wins
const (
	selectEntityIdByAlias = `select id from (
                               select id, lower(timestamp_range) as ts from entity where alias = @alias
                               union all
                               select id, lower(timestamp_range) as ts from entity_history where alias = @alias
                             ) matched
                             order by ts desc
                             limit 1`
	selectEntityIdByEvmAddress = `select id from (
                                    select id, lower(timestamp_range) as ts from entity
                                    where evm_address = @evm_address
                                    union all
                                    select id, lower(timestamp_range) as ts from entity_history
                                    where evm_address = @evm_address
                                  ) matched
                                  order by ts desc
                                  limit 1`
)

type aliasRepository struct {
	dbClient interfaces.DbClient
}

// NewAliasRepository creates the repository resolving key aliases and evm addresses to entity ids
func NewAliasRepository(dbClient interfaces.DbClient) interfaces.AliasRepository {
	return &aliasRepository{dbClient: dbClient}
}

func (ar *aliasRepository) FindByAlias(ctx context.Context, alias []byte) (domain.EntityId, bool, error) {
	return ar.find(ctx, selectEntityIdByAlias, sql.Named("alias", alias))
}

func (ar *aliasRepository) FindByEvmAddress(ctx context.Context, evmAddress []byte) (
	domain.EntityId,
	bool,
	error,
) {
	return ar.find(ctx, selectEntityIdByEvmAddress, sql.Named("evm_address", evmAddress))
}

func (ar *aliasRepository) find(ctx context.Context, query string, arg sql.NamedArg) (
	domain.EntityId,
	bool,
	error,
) {
	db, cancel := ar.dbClient.GetDbWithContext(ctx)
	defer cancel()

	ids := make([]int64, 0, 1)
	if err := db.Raw(query, arg).Scan(&ids).Error; err != nil {
		return domain.EntityId{}, false, errors.Wrap(err, "failed to resolve alias")
	}

	if len(ids) == 0 {
		return domain.EntityId{}, false, nil
	}

	return domain.MustDecodeEntityId(ids[0]), true, nil
}
