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
	"time"

	"github.com/hashgraph/hedera-mirror-node/hedera-mirror-importer/app/config"
	"github.com/hashgraph/hedera-mirror-node/hedera-mirror-importer/app/interfaces"
	"github.com/hashgraph/hedera-mirror-node/hedera-mirror-importer/app/persistence/domain"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	log "github.com/sirupsen/logrus"
)

var (
	parseLatency = promauto.NewHistogram(prometheus.HistogramOpts{
		Name: "hedera_mirror_importer_parse_duration_seconds",
		Help: "Time taken to parse and persist one record file",
	})
	transactionsProcessed = promauto.NewCounter(prometheus.CounterOpts{
		Name: "hedera_mirror_importer_transactions_total",
		Help: "Number of transaction records processed",
	})
	parseErrors = promauto.NewCounter(prometheus.CounterOpts{
		Name: "hedera_mirror_importer_parse_errors_total",
		Help: "Number of record files which failed to parse",
	})
)

// RecordFileParser ingests record files. Each file is one batch: every record is applied in
// consensus order through the transaction handler, entity state is flushed from the temporal
// ledger, and the record file listener commits everything in a single database transaction.
type RecordFileParser struct {
	entityIdService *EntityIdService
	handler         *TransactionHandler
	ledger          *TemporalLedger
	listener        interfaces.RecordFileListener
	parserConfig    config.Parser
}

func NewRecordFileParser(
	entityIdService *EntityIdService,
	handler *TransactionHandler,
	ledger *TemporalLedger,
	listener interfaces.RecordFileListener,
	parserConfig config.Parser,
) *RecordFileParser {
	return &RecordFileParser{
		entityIdService: entityIdService,
		handler:         handler,
		ledger:          ledger,
		listener:        listener,
		parserConfig:    parserConfig,
	}
}

// Parse processes one record file. On failure the batch is rolled back and, unless configured to
// halt, the file is skipped with the error logged.
func (p *RecordFileParser) Parse(
	ctx context.Context,
	recordFile *domain.RecordFile,
	recordItems []*RecordItem,
) error {
	if recordFile == nil {
		return errors.New("record file is nil")
	}

	start := time.Now()
	err := p.parse(ctx, recordFile, recordItems)

	// batch-scoped state never survives the file, committed or not
	p.entityIdService.Reset()

	if err != nil {
		parseErrors.Inc()
		p.listener.OnError()
		p.ledger.Reset()

		if p.parserConfig.HaltOnError {
			return err
		}

		log.Errorf("Skipping record file %s: %s", recordFile.Name, err)
		return nil
	}

	parseLatency.Observe(time.Since(start).Seconds())
	transactionsProcessed.Add(float64(len(recordItems)))
	log.Infof("Parsed record file %s with %d transactions in %s",
		recordFile.Name, len(recordItems), time.Since(start))
	return nil
}

func (p *RecordFileParser) parse(
	ctx context.Context,
	recordFile *domain.RecordFile,
	recordItems []*RecordItem,
) error {
	if err := p.listener.OnStart(); err != nil {
		return err
	}

	previous := int64(0)
	for _, recordItem := range recordItems {
		if recordItem.ConsensusTimestamp <= previous {
			return errors.Errorf(
				"record at %d out of order after %d", recordItem.ConsensusTimestamp, previous)
		}
		previous = recordItem.ConsensusTimestamp

		if err := p.handler.Handle(ctx, recordItem, recordFile); err != nil {
			return errors.Wrapf(err, "failed to handle record at %d", recordItem.ConsensusTimestamp)
		}
	}

	if err := p.ledger.Flush(p.listener); err != nil {
		return err
	}

	recordFile.Count = int64(len(recordItems))
	return p.listener.OnEnd(recordFile)
}
