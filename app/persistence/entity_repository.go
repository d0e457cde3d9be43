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

const selectEntityById = "select * from entity where id = @id"

type entityRepository struct {
	dbClient interfaces.DbClient
}

// NewEntityRepository creates the repository reading committed entity state
func NewEntityRepository(dbClient interfaces.DbClient) interfaces.EntityRepository {
	return &entityRepository{dbClient: dbClient}
}

func (er *entityRepository) Find(ctx context.Context, encodedId int64) (domain.Entity, bool, error) {
	db, cancel := er.dbClient.GetDbWithContext(ctx)
	defer cancel()

	entities := make([]domain.Entity, 0, 1)
	if err := db.Raw(selectEntityById, sql.Named("id", encodedId)).Scan(&entities).Error; err != nil {
		return domain.Entity{}, false, errors.Wrapf(err, "failed to find entity %d", encodedId)
	}

	if len(entities) == 0 {
		return domain.Entity{}, false, nil
	}

	return entities[0], true, nil
}
