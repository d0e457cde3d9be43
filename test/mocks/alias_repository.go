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

package mocks

import (
	"context"

	"github.com/hashgraph/hedera-mirror-node/hedera-mirror-importer/app/persistence/domain"
	"github.com/stretchr/testify/mock"
)

type MockAliasRepository struct {
	mock.Mock
}

func (m *MockAliasRepository) FindByAlias(ctx context.Context, alias []byte) (
	domain.EntityId,
	bool,
	error,
) {
	args := m.Called(ctx, alias)
	return args.Get(0).(domain.EntityId), args.Bool(1), args.Error(2)
}

func (m *MockAliasRepository) FindByEvmAddress(ctx context.Context, evmAddress []byte) (
	domain.EntityId,
	bool,
	error,
) {
	args := m.Called(ctx, evmAddress)
	return args.Get(0).(domain.EntityId), args.Bool(1), args.Error(2)
}
