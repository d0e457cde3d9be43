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
	"github.com/hashgraph/hedera-mirror-node/hedera-mirror-importer/app/persistence/domain"
)

const networkMainnet = "mainnet"

// mainnet persisted transfer rows for failed crypto transfers up to 2019-12-31T23:59:59Z; rows in
// that period carry a compensating marker instead of being removed
const mainnetErrataPeriodEnd int64 = 1577836799000000000

type errataWindow struct {
	lower int64
	upper int64
}

// ErrataPass tags transfers falling inside a known historical correction window. The windows are
// fixed configuration data tied to specific protocol incidents, never inferred; tagging is
// informational for downstream consumers, the row itself is never mutated or deleted.
type ErrataPass struct {
	windows []errataWindow
}

func NewErrataPass(network string) *ErrataPass {
	var windows []errataWindow
	if network == networkMainnet {
		windows = append(windows, errataWindow{lower: 0, upper: mainnetErrataPeriodEnd})
	}

	return &ErrataPass{windows: windows}
}

// Tag marks the transfer with the delete errata when the record is a failed crypto transfer
// inside a correction window. Applies regardless of any other handler policy, corrections are
// keyed purely on timestamp and outcome.
func (e *ErrataPass) Tag(recordItem *RecordItem, transfer *domain.CryptoTransfer) {
	if recordItem.IsSuccessful() {
		return
	}

	if recordItem.Body == nil || recordItem.Body.TransactionType() != domain.TransactionTypeCryptoTransfer {
		return
	}

	if e.inWindow(recordItem.ConsensusTimestamp) {
		errata := domain.ErrataTypeDelete
		transfer.Errata = &errata
	}
}

func (e *ErrataPass) inWindow(timestamp int64) bool {
	for _, window := range e.windows {
		if timestamp >= window.lower && timestamp <= window.upper {
			return true
		}
	}
	return false
}
