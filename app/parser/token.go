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

	"github.com/hashgraph/hedera-mirror-node/hedera-mirror-importer/app/persistence/domain"
)

// tokenMetadataMinorVersion is the first HAPI minor version whose records carry token metadata
// fields. Records produced by older versions leave the fields unset rather than empty, so they
// must not be interpreted as clears.
const tokenMetadataMinorVersion int32 = 46

func (h *TransactionHandler) handleTokenAssociate(
	ctx context.Context,
	recordItem *RecordItem,
	body TokenAssociate,
) error {
	return h.handleTokenAssociation(ctx, recordItem, body.AccountId, body.TokenIds, true)
}

func (h *TransactionHandler) handleTokenDissociate(
	ctx context.Context,
	recordItem *RecordItem,
	body TokenDissociate,
) error {
	return h.handleTokenAssociation(ctx, recordItem, body.AccountId, body.TokenIds, false)
}

func (h *TransactionHandler) handleTokenAssociation(
	ctx context.Context,
	recordItem *RecordItem,
	accountRef EntityRef,
	tokenRefs []EntityRef,
	associated bool,
) error {
	accountId, found, err := h.entityIdService.Lookup(ctx, accountRef)
	if err != nil {
		return err
	}
	if !found {
		return nil
	}

	recordItem.EntityId = accountId
	recordItem.AddEntityId(accountId)

	for _, tokenRef := range tokenRefs {
		tokenId, tokenFound, err := h.entityIdService.Lookup(ctx, tokenRef)
		if err != nil {
			return err
		}
		if !tokenFound {
			continue
		}
		recordItem.AddEntityId(tokenId)

		tokenAccount := domain.TokenAccount{
			AccountId:      accountId,
			Associated:     associated,
			TimestampRange: domain.NewTimestampRange(recordItem.ConsensusTimestamp),
			TokenId:        tokenId,
		}
		if associated {
			tokenAccount.CreatedTimestamp = recordItem.ConsensusTimestamp
		}
		if err = h.listener.OnTokenAccount(tokenAccount); err != nil {
			return err
		}
	}

	return nil
}

// handleTokenMint creates the minted serials. Each receipt serial pairs positionally with a
// metadata entry; ownership comes from the record's nft transfer list, handled with the other
// token transfers. A fungible mint carries no serials and leaves only its transfer list.
func (h *TransactionHandler) handleTokenMint(
	ctx context.Context,
	recordItem *RecordItem,
	body TokenMint,
) error {
	tokenId, found, err := h.entityIdService.Lookup(ctx, body.TokenId)
	if err != nil {
		return err
	}
	if !found {
		return nil
	}

	recordItem.EntityId = tokenId
	recordItem.AddEntityId(tokenId)

	deleted := false
	for index, serialNumber := range recordItem.Receipt.SerialNumbers {
		nft := domain.Nft{
			CreatedTimestamp: &recordItem.ConsensusTimestamp,
			Deleted:          &deleted,
			SerialNumber:     serialNumber,
			TimestampRange:   domain.NewTimestampRange(recordItem.ConsensusTimestamp),
			TokenId:          tokenId,
		}
		if index < len(body.Metadata) {
			nft.Metadata = body.Metadata[index]
		}
		if err = h.listener.OnNft(nft); err != nil {
			return err
		}
	}

	return nil
}

// handleTokenFeeScheduleUpdate replaces the token's custom fee schedule as of the record's
// timestamp; empty fee lists clear it. Fee lines with an unresolvable collector are skipped.
func (h *TransactionHandler) handleTokenFeeScheduleUpdate(
	ctx context.Context,
	recordItem *RecordItem,
	body TokenFeeScheduleUpdate,
) error {
	tokenId, found, err := h.entityIdService.Lookup(ctx, body.TokenId)
	if err != nil {
		return err
	}
	if !found {
		return nil
	}

	recordItem.EntityId = tokenId
	recordItem.AddEntityId(tokenId)

	customFee := domain.CustomFee{
		ConsensusTimestamp: recordItem.ConsensusTimestamp,
		TokenId:            tokenId,
	}

	for _, fee := range body.FixedFees {
		collectorId, collectorFound, err := h.entityIdService.Lookup(ctx, fee.CollectorAccountId)
		if err != nil {
			return err
		}
		if !collectorFound {
			continue
		}
		recordItem.AddEntityId(collectorId)

		fixedFee := domain.FixedFee{Amount: fee.Amount, CollectorAccountId: collectorId}
		if !fee.DenominatingTokenId.IsZero() {
			denominatingTokenId, denominatingFound, err := h.entityIdService.Lookup(
				ctx, fee.DenominatingTokenId)
			if err != nil {
				return err
			}
			if denominatingFound {
				recordItem.AddEntityId(denominatingTokenId)
				fixedFee.DenominatingTokenId = &denominatingTokenId
			}
		}
		customFee.FixedFees = append(customFee.FixedFees, fixedFee)
	}

	for _, fee := range body.FractionalFees {
		collectorId, collectorFound, err := h.entityIdService.Lookup(ctx, fee.CollectorAccountId)
		if err != nil {
			return err
		}
		if !collectorFound {
			continue
		}
		recordItem.AddEntityId(collectorId)

		customFee.FractionalFees = append(customFee.FractionalFees, domain.FractionalFee{
			CollectorAccountId: collectorId,
			Denominator:        fee.Denominator,
			Maximum:            fee.Maximum,
			Minimum:            fee.Minimum,
			NetOfTransfers:     fee.NetOfTransfers,
			Numerator:          fee.Numerator,
		})
	}

	return h.listener.OnCustomFee(customFee)
}

// handleTokenUpdate emits a partial token row, absent attributes keep their prior value on merge
func (h *TransactionHandler) handleTokenUpdate(
	ctx context.Context,
	recordItem *RecordItem,
	body TokenUpdate,
	recordFile *domain.RecordFile,
) error {
	tokenId, found, err := h.entityIdService.Lookup(ctx, body.TokenId)
	if err != nil {
		return err
	}
	if !found {
		return nil
	}

	recordItem.EntityId = tokenId
	recordItem.AddEntityId(tokenId)

	token := domain.Token{
		TimestampRange: domain.NewTimestampRange(recordItem.ConsensusTimestamp),
		TokenId:        tokenId,
	}
	if body.Name != nil {
		token.Name = body.Name.Value
	}
	if body.Symbol != nil {
		token.Symbol = body.Symbol.Value
	}

	if supportsTokenMetadata(recordFile) {
		if body.Metadata != nil {
			token.Metadata = body.Metadata.Value
		}
		if body.MetadataKey != nil {
			token.MetadataKey = body.MetadataKey.Value
		}
	}

	if body.TreasuryAccountId != nil && !body.TreasuryAccountId.IsZero() {
		treasuryAccountId, treasuryFound, err := h.entityIdService.Lookup(ctx, *body.TreasuryAccountId)
		if err != nil {
			return err
		}
		if treasuryFound {
			recordItem.AddEntityId(treasuryAccountId)
			token.TreasuryAccountId = treasuryAccountId
		}
	}

	return h.listener.OnToken(token)
}

func supportsTokenMetadata(recordFile *domain.RecordFile) bool {
	if recordFile == nil {
		return false
	}

	return recordFile.HapiVersionMajor > 0 || recordFile.HapiVersionMinor >= tokenMetadataMinorVersion
}
