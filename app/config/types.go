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

package config

import (
	"fmt"
	"time"

	"github.com/hashgraph/hedera-sdk-go/v2"
)

const AliasCacheKey = "alias"

type Config struct {
	Cache                map[string]Cache
	Db                   Db
	Log                  Log
	Network              string           `validate:"oneof=demo mainnet previewnet testnet other"`
	Parser               Parser
	Persist              Persist
	Port                 uint16
	Realm                int64            `validate:"gte=0"`
	Shard                int64            `validate:"gte=0"`
	ShutdownTimeout      time.Duration    `yaml:"shutdownTimeout"`
	StakingRewardAccount hedera.AccountID `yaml:"stakingRewardAccount"`
}

type Cache struct {
	MaxSize int `yaml:"maxSize" validate:"gt=0"`
}

type Db struct {
	Host             string `validate:"required"`
	Name             string `validate:"required"`
	Password         string
	Pool             Pool
	Port             uint16 `validate:"gt=0"`
	StatementTimeout uint   `yaml:"statementTimeout"`
	Username         string `validate:"required"`
}

func (db Db) GetDsn() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s dbname=%s password=%s sslmode=disable",
		db.Host,
		db.Port,
		db.Username,
		db.Name,
		db.Password,
	)
}

type Log struct {
	Level string
}

// Parser controls how a record batch is processed
type Parser struct {
	// HaltOnError stops ingestion on the first failed batch instead of skipping it
	HaltOnError bool `yaml:"haltOnError"`
}

// Persist toggles persistence of optional row families. Disabling a family skips the rows but
// never the entity or balance side effects derived from them.
type Persist struct {
	EntityTransactions    bool `yaml:"entityTransactions"`
	Files                 bool
	ItemizedTransfers     bool `yaml:"itemizedTransfers"`
	SystemFiles           bool `yaml:"systemFiles"`
	TransactionBytes      bool `yaml:"transactionBytes"`
	TransactionSignatures bool `yaml:"transactionSignatures"`
}

type Pool struct {
	MaxIdleConnections int `yaml:"maxIdleConnections"`
	MaxLifetime        int `yaml:"maxLifetime"`
	MaxOpenConnections int `yaml:"maxOpenConnections"`
}
