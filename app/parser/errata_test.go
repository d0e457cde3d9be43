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
	"testing"

	"github.com/hashgraph/hedera-mirror-node/hedera-mirror-importer/app/persistence/domain"
	"github.com/stretchr/testify/assert"
)

func TestErrataTag(t *testing.T) {
	failedStatus := int32(10)
	tests := []struct {
		name      string
		network   string
		body      Body
		status    int32
		timestamp int64
		tagged    bool
	}{
		{
			name:      "failedMainnetTransferInWindow",
			network:   "mainnet",
			body:      CryptoTransfer{},
			status:    failedStatus,
			timestamp: 1500000000000000000,
			tagged:    true,
		},
		{
			name:      "windowUpperBoundInclusive",
			network:   "mainnet",
			body:      CryptoTransfer{},
			status:    failedStatus,
			timestamp: mainnetErrataPeriodEnd,
			tagged:    true,
		},
		{
			name:      "afterWindow",
			network:   "mainnet",
			body:      CryptoTransfer{},
			status:    failedStatus,
			timestamp: mainnetErrataPeriodEnd + 1,
			tagged:    false,
		},
		{
			name:      "successfulTransfer",
			network:   "mainnet",
			body:      CryptoTransfer{},
			status:    ResponseCodeSuccess,
			timestamp: 1500000000000000000,
			tagged:    false,
		},
		{
			name:      "otherTransactionType",
			network:   "mainnet",
			body:      CryptoDelete{},
			status:    failedStatus,
			timestamp: 1500000000000000000,
			tagged:    false,
		},
		{
			name:      "testnetHasNoWindows",
			network:   "testnet",
			body:      CryptoTransfer{},
			status:    failedStatus,
			timestamp: 1500000000000000000,
			tagged:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errata := NewErrataPass(tt.network)
			recordItem := &RecordItem{
				Body:               tt.body,
				ConsensusTimestamp: tt.timestamp,
				Receipt:            Receipt{Status: tt.status},
			}
			transfer := domain.CryptoTransfer{}

			errata.Tag(recordItem, &transfer)

			if tt.tagged {
				expected := domain.ErrataTypeDelete
				assert.Equal(t, &expected, transfer.Errata)
			} else {
				assert.Nil(t, transfer.Errata)
			}
		})
	}
}
