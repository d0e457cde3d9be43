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
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/hashgraph/hedera-mirror-node/hedera-mirror-importer/app/persistence/domain"
	"github.com/hashgraph/hedera-mirror-node/hedera-mirror-importer/app/tools"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

// transferEventSignature is keccak256("Transfer(address,address,uint256)"), the topic of the
// synthetic point-to-point transfer logs
var transferEventSignature = crypto.Keccak256([]byte("Transfer(address,address,uint256)"))

func (h *TransactionHandler) handleCryptoCreate(
	ctx context.Context,
	recordItem *RecordItem,
	body CryptoCreate,
) error {
	accountId := recordItem.Receipt.EntityId
	if accountId.IsZero() {
		return nil
	}

	recordItem.EntityId = accountId
	recordItem.AddEntityId(accountId)
	h.entityIdService.Bind(EntityRef{Alias: body.Alias, EvmAddress: body.EvmAddress}, accountId)

	delta := EntityDelta{
		Alias:            body.Alias,
		Balance:          &body.InitialBalance,
		CreatedTimestamp: &recordItem.ConsensusTimestamp,
		DeclineReward:    wrapperspb.Bool(body.DeclineReward),
		EvmAddress:       body.EvmAddress,
		Memo:             wrapperspb.String(body.Memo),
		Type:             domain.EntityTypeAccount,
	}
	if len(body.Key) != 0 {
		delta.Key = wrapperspb.Bytes(body.Key)
	}
	if body.AutoRenewPeriod != nil {
		delta.AutoRenewPeriod = wrapperspb.Int64(*body.AutoRenewPeriod)
	}
	if body.StakedNodeId != nil {
		delta.StakedNodeId = wrapperspb.Int64(*body.StakedNodeId)
	}

	proxyAccountId, err := h.resolveProxyAccount(ctx, &body.ProxyAccountId)
	if err != nil {
		return err
	}
	delta.ProxyAccountId = proxyAccountId

	if !body.StakedAccountId.IsZero() {
		stakedAccountId, found, err := h.entityIdService.Lookup(ctx, body.StakedAccountId)
		if err != nil {
			return err
		}
		if found {
			delta.StakedAccountId = wrapperspb.Int64(stakedAccountId.EncodedId)
		}
	}

	if err = h.ledger.Upsert(ctx, accountId, recordItem.ConsensusTimestamp, delta); err != nil {
		return err
	}

	return h.emitInitialBalanceTransfers(recordItem, accountId, body.InitialBalance)
}

// emitInitialBalanceTransfers emits the credit to the new account and the matching debit from the
// payer, skipping either leg when the record's transfer list already carries an identical line
func (h *TransactionHandler) emitInitialBalanceTransfers(
	recordItem *RecordItem,
	accountId domain.EntityId,
	initialBalance int64,
) error {
	if initialBalance == 0 {
		return nil
	}

	credit := domain.CryptoTransfer{
		Amount:             initialBalance,
		ConsensusTimestamp: recordItem.ConsensusTimestamp,
		EntityId:           accountId,
		PayerAccountId:     recordItem.PayerAccountId,
	}
	debit := domain.CryptoTransfer{
		Amount:             -initialBalance,
		ConsensusTimestamp: recordItem.ConsensusTimestamp,
		EntityId:           recordItem.PayerAccountId,
		PayerAccountId:     recordItem.PayerAccountId,
	}

	if !containsTransfer(recordItem, accountId, initialBalance) {
		if err := h.listener.OnCryptoTransfer(credit); err != nil {
			return err
		}
	}
	if !containsTransfer(recordItem, recordItem.PayerAccountId, -initialBalance) {
		if err := h.listener.OnCryptoTransfer(debit); err != nil {
			return err
		}
	}

	return nil
}

func containsTransfer(recordItem *RecordItem, accountId domain.EntityId, amount int64) bool {
	for _, accountAmount := range recordItem.Transfers {
		if accountAmount.Amount != amount || !accountAmount.Account.IsNumeric() {
			continue
		}
		if accountAmount.Account.Shard == accountId.ShardNum &&
			accountAmount.Account.Realm == accountId.RealmNum &&
			accountAmount.Account.Num == accountId.EntityNum {
			return true
		}
	}
	return false
}

func (h *TransactionHandler) handleCryptoUpdate(
	ctx context.Context,
	recordItem *RecordItem,
	body CryptoUpdate,
) error {
	accountId, found, err := h.entityIdService.Lookup(ctx, body.AccountId)
	if err != nil {
		return err
	}
	if !found {
		return nil
	}

	recordItem.EntityId = accountId
	recordItem.AddEntityId(accountId)

	delta := EntityDelta{
		AutoRenewPeriod: body.AutoRenewPeriod,
		DeclineReward:   body.DeclineReward,
		Key:             body.Key,
		Memo:            body.Memo,
		StakedNodeId:    body.StakedNodeId,
	}

	if body.ExpirationTime != nil {
		delta.ExpirationTimestamp = wrapperspb.Int64(
			tools.ToNanosClamped(body.ExpirationTime.Seconds, body.ExpirationTime.Nanos))
	}

	proxyAccountId, err := h.resolveProxyAccount(ctx, body.ProxyAccountId)
	if err != nil {
		return err
	}
	delta.ProxyAccountId = proxyAccountId

	if body.StakedAccountId != nil {
		if body.StakedAccountId.IsZero() {
			delta.StakedAccountId = wrapperspb.Int64(0)
		} else {
			stakedAccountId, stakedFound, err := h.entityIdService.Lookup(ctx, *body.StakedAccountId)
			if err != nil {
				return err
			}
			if stakedFound {
				delta.StakedAccountId = wrapperspb.Int64(stakedAccountId.EncodedId)
			}
		}
	}

	return h.ledger.Upsert(ctx, accountId, recordItem.ConsensusTimestamp, delta)
}

// resolveProxyAccount resolves a proxy account reference. The all-zero sentinel some historical
// transactions carry resolves to an explicit absent value, never to a real entity.
func (h *TransactionHandler) resolveProxyAccount(ctx context.Context, ref *EntityRef) (
	*domain.EntityId,
	error,
) {
	if ref == nil {
		return nil, nil
	}

	if ref.IsZero() {
		return &domain.EntityId{}, nil
	}

	proxyAccountId, found, err := h.entityIdService.Lookup(ctx, *ref)
	if err != nil {
		return nil, err
	}
	if !found {
		return &domain.EntityId{}, nil
	}

	return &proxyAccountId, nil
}

func (h *TransactionHandler) handleCryptoDelete(
	ctx context.Context,
	recordItem *RecordItem,
	body CryptoDelete,
) error {
	accountId, found, err := h.entityIdService.Lookup(ctx, body.AccountId)
	if err != nil {
		return err
	}
	if !found {
		return nil
	}

	recordItem.EntityId = accountId
	recordItem.AddEntityId(accountId)

	if obtainerId, obtainerFound, err := h.entityIdService.Lookup(ctx, body.TransferAccountId); err != nil {
		return err
	} else if obtainerFound {
		recordItem.AddEntityId(obtainerId)
	}

	deleted := true
	return h.ledger.Upsert(ctx, accountId, recordItem.ConsensusTimestamp, EntityDelta{Deleted: &deleted})
}

// handleTokenTransfers covers the token transfer lists of the record; the hbar list is emitted by
// the common transfer path. Fungible movements additionally synthesize point-to-point transfer
// logs and draw down allowances for approved debits; nft lines reassign the serial.
func (h *TransactionHandler) handleTokenTransfers(ctx context.Context, recordItem *RecordItem) error {
	logIndex := int32(0)
	for _, transferList := range recordItem.TokenTransfers {
		tokenId, found, err := h.entityIdService.Lookup(ctx, transferList.TokenId)
		if err != nil {
			return err
		}
		if !found {
			continue
		}
		recordItem.AddEntityId(tokenId)

		resolved := make([]PartyAmount, 0, len(transferList.Transfers))
		for _, accountAmount := range transferList.Transfers {
			accountId, accountFound, err := h.entityIdService.Lookup(ctx, accountAmount.Account)
			if err != nil {
				return err
			}
			if !accountFound {
				continue
			}

			recordItem.AddEntityId(accountId)
			resolved = append(resolved, PartyAmount{AccountId: accountId, Amount: accountAmount.Amount})

			if accountAmount.IsApproval && accountAmount.Amount < 0 {
				debit := domain.TokenAllowance{
					Amount:         accountAmount.Amount,
					Owner:          accountId.EncodedId,
					PayerAccountId: recordItem.PayerAccountId,
					Spender:        recordItem.PayerAccountId.EncodedId,
					TimestampRange: domain.NewTimestampRange(recordItem.ConsensusTimestamp),
					TokenId:        tokenId.EncodedId,
				}
				if err = h.listener.OnTokenAllowance(debit); err != nil {
					return err
				}
			}
		}

		if err = h.handleNftTransfers(ctx, recordItem, tokenId, transferList.NftTransfers); err != nil {
			return err
		}

		for _, event := range SynthesizeTransferEvents(resolved) {
			contractLog := domain.ContractLog{
				ConsensusTimestamp: recordItem.ConsensusTimestamp,
				ContractId:         tokenId,
				Data:               common.BigToHash(big.NewInt(event.Amount)).Bytes(),
				Index:              logIndex,
				PayerAccountId:     recordItem.PayerAccountId,
				RootContractId:     tokenId,
				Topic0:             transferEventSignature,
				Topic1:             common.BytesToHash(event.SenderId.ToEvmAddress().Bytes()).Bytes(),
				Topic2:             common.BytesToHash(event.ReceiverId.ToEvmAddress().Bytes()).Bytes(),
			}
			logIndex++
			if err = h.listener.OnContractLog(contractLog); err != nil {
				return err
			}
		}
	}

	return nil
}

// handleNftTransfers reassigns each transferred serial to its receiver at the record's timestamp.
// The emitted row carries no spender, so the merge clears any serial-scoped allowance. A transfer
// to the zero account is a burn or wipe and marks the serial deleted instead.
func (h *TransactionHandler) handleNftTransfers(
	ctx context.Context,
	recordItem *RecordItem,
	tokenId domain.EntityId,
	nftTransfers []NftTransfer,
) error {
	for _, nftTransfer := range nftTransfers {
		nft := domain.Nft{
			SerialNumber:   nftTransfer.SerialNumber,
			TimestampRange: domain.NewTimestampRange(recordItem.ConsensusTimestamp),
			TokenId:        tokenId,
		}

		senderId, senderFound, err := h.entityIdService.Lookup(ctx, nftTransfer.SenderAccountId)
		if err != nil {
			return err
		}
		if senderFound {
			recordItem.AddEntityId(senderId)
		}

		receiverId, receiverFound, err := h.entityIdService.Lookup(ctx, nftTransfer.ReceiverAccountId)
		if err != nil {
			return err
		}
		if receiverFound {
			recordItem.AddEntityId(receiverId)
			nft.AccountId = &receiverId
		} else {
			deleted := true
			nft.Deleted = &deleted
		}

		if err = h.listener.OnNft(nft); err != nil {
			return err
		}
	}

	return nil
}

func (h *TransactionHandler) handleCryptoApproveAllowance(
	ctx context.Context,
	recordItem *RecordItem,
	body CryptoApproveAllowance,
) error {
	timestamp := recordItem.ConsensusTimestamp

	for _, grant := range body.CryptoAllowances {
		owner, spender, err := h.resolveAllowanceParties(ctx, recordItem, grant.Owner, grant.Spender)
		if err != nil || owner.IsZero() || spender.IsZero() {
			if err != nil {
				return err
			}
			continue
		}

		allowance := domain.CryptoAllowance{
			Amount:         grant.Amount,
			AmountGranted:  grant.Amount,
			Owner:          owner.EncodedId,
			PayerAccountId: recordItem.PayerAccountId,
			Spender:        spender.EncodedId,
			TimestampRange: domain.NewTimestampRange(timestamp),
		}
		if err = h.listener.OnCryptoAllowance(allowance); err != nil {
			return err
		}
	}

	for _, grant := range body.TokenAllowances {
		owner, spender, err := h.resolveAllowanceParties(ctx, recordItem, grant.Owner, grant.Spender)
		if err != nil || owner.IsZero() || spender.IsZero() {
			if err != nil {
				return err
			}
			continue
		}

		tokenId, found, err := h.entityIdService.Lookup(ctx, grant.TokenId)
		if err != nil {
			return err
		}
		if !found {
			continue
		}
		recordItem.AddEntityId(tokenId)

		allowance := domain.TokenAllowance{
			Amount:         grant.Amount,
			AmountGranted:  grant.Amount,
			Owner:          owner.EncodedId,
			PayerAccountId: recordItem.PayerAccountId,
			Spender:        spender.EncodedId,
			TimestampRange: domain.NewTimestampRange(timestamp),
			TokenId:        tokenId.EncodedId,
		}
		if err = h.listener.OnTokenAllowance(allowance); err != nil {
			return err
		}
	}

	return h.handleNftAllowances(ctx, recordItem, body.NftAllowances)
}

// handleNftAllowances applies nft grants. Approve-all grants produce allowance rows; explicit
// serials update the nft rows themselves, and when the same serial appears in multiple grants the
// later declared spender wins.
func (h *TransactionHandler) handleNftAllowances(
	ctx context.Context,
	recordItem *RecordItem,
	grants []NftAllowanceGrant,
) error {
	timestamp := recordItem.ConsensusTimestamp
	type serialKey struct {
		tokenId int64
		serial  int64
	}
	serialUpdates := make(map[serialKey]domain.Nft)
	var order []serialKey

	for _, grant := range grants {
		owner, spender, err := h.resolveAllowanceParties(ctx, recordItem, grant.Owner, grant.Spender)
		if err != nil || owner.IsZero() || spender.IsZero() {
			if err != nil {
				return err
			}
			continue
		}

		tokenId, found, err := h.entityIdService.Lookup(ctx, grant.TokenId)
		if err != nil {
			return err
		}
		if !found {
			continue
		}
		recordItem.AddEntityId(tokenId)

		if grant.ApprovedForAll != nil {
			allowance := domain.NftAllowance{
				ApprovedForAll: grant.ApprovedForAll.Value,
				Owner:          owner.EncodedId,
				PayerAccountId: recordItem.PayerAccountId,
				Spender:        spender.EncodedId,
				TimestampRange: domain.NewTimestampRange(timestamp),
				TokenId:        tokenId.EncodedId,
			}
			if err = h.listener.OnNftAllowance(allowance); err != nil {
				return err
			}
		}

		var delegatingSpender *domain.EntityId
		if !grant.DelegatingSpender.IsZero() {
			resolved, delegateFound, err := h.entityIdService.Lookup(ctx, grant.DelegatingSpender)
			if err != nil {
				return err
			}
			if delegateFound {
				delegatingSpender = &resolved
			}
		}

		spenderId := spender
		for _, serialNumber := range grant.SerialNumbers {
			key := serialKey{tokenId: tokenId.EncodedId, serial: serialNumber}
			if _, seen := serialUpdates[key]; !seen {
				order = append(order, key)
			}
			serialUpdates[key] = domain.Nft{
				DelegatingSpender: delegatingSpender,
				SerialNumber:      serialNumber,
				Spender:           &spenderId,
				TimestampRange:    domain.NewTimestampRange(timestamp),
				TokenId:           tokenId,
			}
		}
	}

	for _, key := range order {
		if err := h.listener.OnNft(serialUpdates[key]); err != nil {
			return err
		}
	}

	return nil
}

// resolveAllowanceParties resolves the owner and spender of an allowance grant. An absent owner
// defaults to the payer.
func (h *TransactionHandler) resolveAllowanceParties(
	ctx context.Context,
	recordItem *RecordItem,
	ownerRef, spenderRef EntityRef,
) (domain.EntityId, domain.EntityId, error) {
	owner := recordItem.PayerAccountId
	if !ownerRef.IsZero() {
		resolved, found, err := h.entityIdService.Lookup(ctx, ownerRef)
		if err != nil {
			return domain.EntityId{}, domain.EntityId{}, err
		}
		if !found {
			return domain.EntityId{}, domain.EntityId{}, nil
		}
		owner = resolved
	}

	spender, found, err := h.entityIdService.Lookup(ctx, spenderRef)
	if err != nil {
		return domain.EntityId{}, domain.EntityId{}, err
	}
	if !found {
		return domain.EntityId{}, domain.EntityId{}, nil
	}

	recordItem.AddEntityId(owner)
	recordItem.AddEntityId(spender)
	return owner, spender, nil
}
