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
	"golang.org/x/exp/slices"
)

// PartyAmount is one resolved signed transfer-list line of a single asset
type PartyAmount struct {
	AccountId domain.EntityId
	Amount    int64
}

// TransferEvent is one synthesized point-to-point transfer derived from a net transfer list
type TransferEvent struct {
	Amount     int64
	ReceiverId domain.EntityId
	SenderId   domain.EntityId
}

// SynthesizeTransferEvents turns the net transfer list of one asset into pairwise sender to
// receiver events. Senders (amount < 0) and receivers are each ordered by absolute amount
// descending, ties broken by shard, realm, num ascending; the largest outstanding sender is
// matched greedily against the largest outstanding receiver, splitting whichever side has a
// remainder. Zero-amount lines contribute nothing. The number of events depends only on the
// multiset of (party, amount) pairs, not on the input order.
func SynthesizeTransferEvents(amounts []PartyAmount) []TransferEvent {
	var senders, receivers []PartyAmount
	for _, partyAmount := range amounts {
		if partyAmount.Amount < 0 {
			senders = append(senders, partyAmount)
		} else if partyAmount.Amount > 0 {
			receivers = append(receivers, partyAmount)
		}
	}

	slices.SortFunc(senders, comparePartyAmounts)
	slices.SortFunc(receivers, comparePartyAmounts)

	var events []TransferEvent
	senderIndex, receiverIndex := 0, 0
	var senderRemaining, receiverRemaining int64
	for senderIndex < len(senders) && receiverIndex < len(receivers) {
		if senderRemaining == 0 {
			senderRemaining = -senders[senderIndex].Amount
		}
		if receiverRemaining == 0 {
			receiverRemaining = receivers[receiverIndex].Amount
		}

		amount := senderRemaining
		if receiverRemaining < amount {
			amount = receiverRemaining
		}

		events = append(events, TransferEvent{
			Amount:     amount,
			ReceiverId: receivers[receiverIndex].AccountId,
			SenderId:   senders[senderIndex].AccountId,
		})

		senderRemaining -= amount
		receiverRemaining -= amount
		if senderRemaining == 0 {
			senderIndex++
		}
		if receiverRemaining == 0 {
			receiverIndex++
		}
	}

	return events
}

func comparePartyAmounts(a, b PartyAmount) int {
	absA, absB := a.Amount, b.Amount
	if absA < 0 {
		absA = -absA
	}
	if absB < 0 {
		absB = -absB
	}

	if absA != absB {
		// larger magnitude first
		if absA > absB {
			return -1
		}
		return 1
	}

	if a.AccountId.ShardNum != b.AccountId.ShardNum {
		return int(a.AccountId.ShardNum - b.AccountId.ShardNum)
	}
	if a.AccountId.RealmNum != b.AccountId.RealmNum {
		return int(a.AccountId.RealmNum - b.AccountId.RealmNum)
	}
	return int(a.AccountId.EntityNum - b.AccountId.EntityNum)
}
