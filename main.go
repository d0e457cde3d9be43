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

package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/hashgraph/hedera-mirror-node/hedera-mirror-importer/app/config"
	"github.com/hashgraph/hedera-mirror-node/hedera-mirror-importer/app/db"
	"github.com/hashgraph/hedera-mirror-node/hedera-mirror-importer/app/parser"
	"github.com/hashgraph/hedera-mirror-node/hedera-mirror-importer/app/persistence"
	"github.com/hashgraph/hedera-mirror-node/hedera-mirror-importer/app/persistence/domain"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
)

const aliasCacheDefaultSize = 100000

func main() {
	configFile := pflag.StringP("config", "c", "", "external configuration file")
	pflag.Parse()

	if *configFile != "" {
		os.Setenv("HEDERA_MIRROR_IMPORTER_CONFIG", *configFile)
	}

	importerConfig, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %s", err)
	}

	configLogger(importerConfig.Log.Level)

	if _, err = newRecordFileParser(importerConfig); err != nil {
		log.Fatalf("Failed to create record file parser: %s", err)
	}
	log.Info("Importer pipeline ready")

	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", importerConfig.Port),
		Handler: promhttp.Handler(),
	}

	go func() {
		log.Infof("Serving metrics on port %d", importerConfig.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Metrics server failed: %s", err)
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()

	log.Info("Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), importerConfig.ShutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Errorf("Failed to shut down metrics server: %s", err)
	}
}

// newRecordFileParser wires the full ingestion pipeline. Record file sources (stream subscribers,
// backfill readers) feed decoded batches into the returned parser.
func newRecordFileParser(importerConfig *config.Config) (*parser.RecordFileParser, error) {
	dbClient := db.ConnectToDb(importerConfig.Db)
	if dbClient == nil {
		return nil, errors.New("failed to connect to database")
	}

	stakingRewardAccount, err := domain.NewEntityId(
		int64(importerConfig.StakingRewardAccount.Shard),
		int64(importerConfig.StakingRewardAccount.Realm),
		int64(importerConfig.StakingRewardAccount.Account),
	)
	if err != nil {
		return nil, err
	}

	addressBookService, err := persistence.NewAddressBookService(
		dbClient, importerConfig.Shard, importerConfig.Realm)
	if err != nil {
		return nil, err
	}

	cacheSize := aliasCacheDefaultSize
	if cacheConfig, ok := importerConfig.Cache[config.AliasCacheKey]; ok {
		cacheSize = cacheConfig.MaxSize
	}

	entityIdService := parser.NewEntityIdService(persistence.NewAliasRepository(dbClient), cacheSize)
	ledger := parser.NewTemporalLedger(persistence.NewEntityRepository(dbClient))
	listener := persistence.NewRecordFileListener(dbClient)
	handler := parser.NewTransactionHandler(
		addressBookService,
		entityIdService,
		parser.NewErrataPass(importerConfig.Network),
		ledger,
		listener,
		importerConfig.Persist,
		stakingRewardAccount,
	)

	return parser.NewRecordFileParser(
		entityIdService, handler, ledger, listener, importerConfig.Parser), nil
}

func configLogger(level string) {
	logLevel, err := log.ParseLevel(level)
	if err != nil {
		logLevel = log.InfoLevel
	}

	log.SetFormatter(&log.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02T15:04:05.000-0700",
	})
	log.SetLevel(logLevel)
	log.SetOutput(os.Stdout)
}
