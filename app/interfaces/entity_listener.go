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

package interfaces

import (
	"github.com/hashgraph/hedera-mirror-node/hedera-mirror-importer/app/persistence/domain"
)

// EntityListener receives the domain objects produced while processing a record batch. Calls
// accumulate state; nothing is durable until the enclosing RecordFileListener's OnEnd commits.
type EntityListener interface {
	OnContractLog(contractLog domain.ContractLog) error
	OnCryptoAllowance(allowance domain.CryptoAllowance) error
	OnCryptoTransfer(transfer domain.CryptoTransfer) error
	OnCustomFee(customFee domain.CustomFee) error
	OnEntity(entity domain.Entity) error
	OnEntityTransaction(entityTransaction domain.EntityTransaction) error
	OnFileData(fileData domain.FileData) error
	OnHook(hook domain.Hook) error
	OnHookStorageChange(change domain.HookStorageChange) error
	OnNft(nft domain.Nft) error
	OnNftAllowance(allowance domain.NftAllowance) error
	OnNode(node domain.Node) error
	OnRegisteredNode(node domain.RegisteredNode) error
	OnSchedule(schedule domain.Schedule) error
	OnStakingRewardTransfer(transfer domain.StakingRewardTransfer) error
	OnToken(token domain.Token) error
	OnTokenAccount(tokenAccount domain.TokenAccount) error
	OnTokenAllowance(allowance domain.TokenAllowance) error
	OnTransaction(transaction domain.Transaction) error
	OnTransactionSignature(signature domain.TransactionSignature) error
}

// RecordFileListener brackets the processing of one record file. OnStart opens the batch, OnEnd
// persists everything accumulated by the EntityListener plus the record file row in a single
// database transaction.
type RecordFileListener interface {
	EntityListener

	OnStart() error
	OnEnd(recordFile *domain.RecordFile) error
	OnError()
}
