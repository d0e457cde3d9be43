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

	"github.com/hashgraph/hedera-mirror-node/hedera-mirror-importer/app/config"
	"github.com/hashgraph/hedera-mirror-node/hedera-mirror-importer/app/interfaces"
	"github.com/hashgraph/hedera-mirror-node/hedera-mirror-importer/app/persistence/domain"
	"github.com/hashgraph/hedera-mirror-node/hedera-mirror-importer/app/tools"
	"github.com/pkg/errors"
)

// TransactionHandler derives every domain mutation of one record. Per record the order is fixed:
// body-specific entity mutations, transfer emission, hook queue drain, the transaction row, then
// the deduplicated entity references.
type TransactionHandler struct {
	addressBookService   interfaces.AddressBookService
	entityIdService      *EntityIdService
	errata               *ErrataPass
	ledger               *TemporalLedger
	listener             interfaces.EntityListener
	persist              config.Persist
	stakingRewardAccount domain.EntityId
}

func NewTransactionHandler(
	addressBookService interfaces.AddressBookService,
	entityIdService *EntityIdService,
	errata *ErrataPass,
	ledger *TemporalLedger,
	listener interfaces.EntityListener,
	persist config.Persist,
	stakingRewardAccount domain.EntityId,
) *TransactionHandler {
	return &TransactionHandler{
		addressBookService:   addressBookService,
		entityIdService:      entityIdService,
		errata:               errata,
		ledger:               ledger,
		listener:             listener,
		persist:              persist,
		stakingRewardAccount: stakingRewardAccount,
	}
}

// Handle applies one record. A failed transaction still produces the transaction row, the fee
// transfers and the entity references, but none of the body's primary side effects.
func (h *TransactionHandler) Handle(
	ctx context.Context,
	recordItem *RecordItem,
	recordFile *domain.RecordFile,
) error {
	recordItem.AddEntityId(recordItem.PayerAccountId)
	recordItem.AddEntityId(recordItem.NodeAccountId)

	if recordItem.IsSuccessful() {
		if err := h.handleBody(ctx, recordItem, recordFile); err != nil {
			return err
		}

		// token transfer lists appear on mint, burn and wipe records too, not only on transfers
		if err := h.handleTokenTransfers(ctx, recordItem); err != nil {
			return err
		}

		if recordItem.Scheduled && !recordItem.ScheduleRef.IsZero() {
			if err := h.handleScheduleExecution(recordItem); err != nil {
				return err
			}
		}
	}

	if err := h.handleTransfers(ctx, recordItem); err != nil {
		return err
	}

	if err := h.handleHookExecutions(ctx, recordItem); err != nil {
		return err
	}

	transaction, err := h.buildTransaction(ctx, recordItem)
	if err != nil {
		return err
	}
	if err = h.listener.OnTransaction(transaction); err != nil {
		return err
	}

	if h.persist.EntityTransactions {
		for _, entityTransaction := range recordItem.GetEntityTransactions() {
			if err = h.listener.OnEntityTransaction(entityTransaction); err != nil {
				return err
			}
		}
	}

	return nil
}

func (h *TransactionHandler) handleBody(
	ctx context.Context,
	recordItem *RecordItem,
	recordFile *domain.RecordFile,
) error {
	switch body := recordItem.Body.(type) {
	case CryptoCreate:
		return h.handleCryptoCreate(ctx, recordItem, body)
	case CryptoUpdate:
		return h.handleCryptoUpdate(ctx, recordItem, body)
	case CryptoDelete:
		return h.handleCryptoDelete(ctx, recordItem, body)
	case CryptoTransfer:
		// the transfer lists are handled for every successful record
		return nil
	case CryptoApproveAllowance:
		return h.handleCryptoApproveAllowance(ctx, recordItem, body)
	case FileCreate:
		return h.handleFileCreate(ctx, recordItem, body)
	case FileAppend:
		return h.handleFileAppend(ctx, recordItem, body)
	case FileUpdate:
		return h.handleFileUpdate(ctx, recordItem, body)
	case FileDelete:
		return h.handleFileDelete(ctx, recordItem, body)
	case ScheduleCreate:
		return h.handleScheduleCreate(ctx, recordItem, body)
	case ScheduleSign:
		return h.handleScheduleSign(ctx, recordItem, body)
	case ScheduleDelete:
		return h.handleScheduleDelete(ctx, recordItem, body)
	case NodeCreate:
		return h.handleNodeCreate(ctx, recordItem, body)
	case NodeUpdate:
		return h.handleNodeUpdate(ctx, recordItem, body)
	case NodeDelete:
		return h.handleNodeDelete(ctx, recordItem, body)
	case RegisteredNodeCreate:
		return h.handleRegisteredNodeCreate(ctx, recordItem, body)
	case RegisteredNodeUpdate:
		return h.handleRegisteredNodeUpdate(ctx, recordItem, body)
	case RegisteredNodeDelete:
		return h.handleRegisteredNodeDelete(ctx, recordItem, body)
	case TokenAssociate:
		return h.handleTokenAssociate(ctx, recordItem, body)
	case TokenDissociate:
		return h.handleTokenDissociate(ctx, recordItem, body)
	case TokenFeeScheduleUpdate:
		return h.handleTokenFeeScheduleUpdate(ctx, recordItem, body)
	case TokenMint:
		return h.handleTokenMint(ctx, recordItem, body)
	case TokenUpdate:
		return h.handleTokenUpdate(ctx, recordItem, body, recordFile)
	case HookCreate:
		return h.handleHookCreate(ctx, recordItem, body)
	case HookDelete:
		return h.handleHookDelete(ctx, recordItem, body)
	case LambdaSStore:
		return h.handleLambdaSStore(ctx, recordItem, body)
	case nil:
		return errors.Errorf("record at %d has no body", recordItem.ConsensusTimestamp)
	default:
		return errors.Errorf("unsupported transaction body %T", body)
	}
}

// handleTransfers emits the aggregated transfer list. Fee movement happens for failed
// transactions too, so this runs regardless of the receipt status. Unresolvable parties are
// skipped, not fatal.
func (h *TransactionHandler) handleTransfers(ctx context.Context, recordItem *RecordItem) error {
	for _, accountAmount := range recordItem.Transfers {
		accountId, found, err := h.entityIdService.Lookup(ctx, accountAmount.Account)
		if err != nil {
			return err
		}
		if !found {
			continue
		}

		recordItem.AddEntityId(accountId)
		transfer := domain.CryptoTransfer{
			Amount:             accountAmount.Amount,
			ConsensusTimestamp: recordItem.ConsensusTimestamp,
			EntityId:           accountId,
			IsApproval:         accountAmount.IsApproval,
			PayerAccountId:     recordItem.PayerAccountId,
		}
		h.errata.Tag(recordItem, &transfer)
		if err = h.listener.OnCryptoTransfer(transfer); err != nil {
			return err
		}

		// an approved debit draws down the sender's allowance towards the payer
		if recordItem.IsSuccessful() && accountAmount.IsApproval && accountAmount.Amount < 0 {
			debit := domain.CryptoAllowance{
				Amount:         accountAmount.Amount,
				Owner:          accountId.EncodedId,
				PayerAccountId: recordItem.PayerAccountId,
				Spender:        recordItem.PayerAccountId.EncodedId,
				TimestampRange: domain.NewTimestampRange(recordItem.ConsensusTimestamp),
			}
			if err = h.listener.OnCryptoAllowance(debit); err != nil {
				return err
			}
		}
	}

	return h.handleStakingRewards(ctx, recordItem)
}

// handleStakingRewards emits the reward payouts of the record. A payout restarts the rewarded
// account's staking period at the previous period boundary, and is funded by the staking reward
// account; its aggregate debit is synthesized when the record's transfer list omits it. Payouts
// happen for failed transactions too whenever the payer had a balance change.
func (h *TransactionHandler) handleStakingRewards(ctx context.Context, recordItem *RecordItem) error {
	if len(recordItem.PaidStakingRewards) == 0 {
		return nil
	}

	total := int64(0)
	stakePeriodStart := tools.EpochDay(recordItem.ConsensusTimestamp) - 1
	for _, reward := range recordItem.PaidStakingRewards {
		accountId, found, err := h.entityIdService.Lookup(ctx, reward.Account)
		if err != nil {
			return err
		}
		if !found {
			continue
		}

		recordItem.AddEntityId(accountId)
		stakingReward := domain.StakingRewardTransfer{
			AccountId:          accountId,
			Amount:             reward.Amount,
			ConsensusTimestamp: recordItem.ConsensusTimestamp,
			PayerAccountId:     recordItem.PayerAccountId,
		}
		if err = h.listener.OnStakingRewardTransfer(stakingReward); err != nil {
			return err
		}

		total += reward.Amount
		delta := EntityDelta{StakePeriodStart: &stakePeriodStart}
		if err = h.ledger.Upsert(ctx, accountId, recordItem.ConsensusTimestamp, delta); err != nil {
			return err
		}
	}

	if total == 0 {
		return nil
	}

	recordItem.AddEntityId(h.stakingRewardAccount)
	if !containsTransfer(recordItem, h.stakingRewardAccount, -total) {
		debit := domain.CryptoTransfer{
			Amount:             -total,
			ConsensusTimestamp: recordItem.ConsensusTimestamp,
			EntityId:           h.stakingRewardAccount,
			PayerAccountId:     recordItem.PayerAccountId,
		}
		if err := h.listener.OnCryptoTransfer(debit); err != nil {
			return err
		}
	}

	return nil
}

func (h *TransactionHandler) buildTransaction(ctx context.Context, recordItem *RecordItem) (
	domain.Transaction,
	error,
) {
	transactionType := domain.TransactionTypeUnknown
	if recordItem.Body != nil {
		transactionType = recordItem.Body.TransactionType()
	}

	transaction := domain.Transaction{
		ChargedTxFee:             recordItem.ChargedTxFee,
		ConsensusTimestamp:       recordItem.ConsensusTimestamp,
		MaxFee:                   recordItem.MaxFee,
		Memo:                     recordItem.Memo,
		Nonce:                    recordItem.Nonce,
		ParentConsensusTimestamp: recordItem.ParentConsensusTimestamp,
		PayerAccountId:           recordItem.PayerAccountId,
		Result:                   int16(recordItem.Receipt.Status),
		Scheduled:                recordItem.Scheduled,
		TransactionHash:          recordItem.TransactionHash,
		Type:                     transactionType,
		ValidDurationSeconds:     recordItem.ValidDurationSeconds,
		ValidStartNs:             recordItem.ValidStartNs,
	}

	if !recordItem.EntityId.IsZero() {
		entityId := recordItem.EntityId
		transaction.EntityId = &entityId
	}

	if !recordItem.NodeAccountId.IsZero() {
		nodeAccountId := recordItem.NodeAccountId
		transaction.NodeAccountId = &nodeAccountId
	}

	if create, ok := recordItem.Body.(CryptoCreate); ok {
		transaction.InitialBalance = create.InitialBalance
	}

	if h.persist.TransactionBytes {
		transaction.TransactionBytes = recordItem.TransactionBytes
	}

	if h.persist.ItemizedTransfers {
		itemized, err := h.buildItemizedTransfers(ctx, recordItem)
		if err != nil {
			return domain.Transaction{}, err
		}
		transaction.ItemizedTransfer = itemized
	}

	return transaction, nil
}

func (h *TransactionHandler) buildItemizedTransfers(ctx context.Context, recordItem *RecordItem) (
	domain.ItemizedTransferSlice,
	error,
) {
	var itemized domain.ItemizedTransferSlice
	for _, accountAmount := range recordItem.NonFeeTransfers {
		accountId, found, err := h.entityIdService.Lookup(ctx, accountAmount.Account)
		if err != nil {
			return nil, err
		}
		if !found {
			continue
		}

		itemized = append(itemized, domain.ItemizedTransfer{
			Amount:     accountAmount.Amount,
			EntityId:   accountId,
			IsApproval: accountAmount.IsApproval,
		})
	}

	return itemized, nil
}
