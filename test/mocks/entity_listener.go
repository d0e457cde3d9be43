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

package mocks

import (
	"github.com/hashgraph/hedera-mirror-node/hedera-mirror-importer/app/persistence/domain"
)

// EntityListenerCapture records everything emitted during a batch, in emission order, for
// assertion in tests. Err, when set, is returned by every callback.
type EntityListenerCapture struct {
	ContractLogs           []domain.ContractLog
	CryptoAllowances       []domain.CryptoAllowance
	CryptoTransfers        []domain.CryptoTransfer
	CustomFees             []domain.CustomFee
	Entities               []domain.Entity
	EntityTransactions     []domain.EntityTransaction
	Err                    error
	FileData               []domain.FileData
	Hooks                  []domain.Hook
	HookStorageChanges     []domain.HookStorageChange
	Nfts                   []domain.Nft
	NftAllowances          []domain.NftAllowance
	Nodes                  []domain.Node
	RegisteredNodes        []domain.RegisteredNode
	Schedules              []domain.Schedule
	StakingRewardTransfers []domain.StakingRewardTransfer
	Tokens                 []domain.Token
	TokenAccounts          []domain.TokenAccount
	TokenAllowances        []domain.TokenAllowance
	Transactions           []domain.Transaction
	TransactionSignatures  []domain.TransactionSignature
}

func (e *EntityListenerCapture) OnContractLog(contractLog domain.ContractLog) error {
	e.ContractLogs = append(e.ContractLogs, contractLog)
	return e.Err
}

func (e *EntityListenerCapture) OnCryptoAllowance(allowance domain.CryptoAllowance) error {
	e.CryptoAllowances = append(e.CryptoAllowances, allowance)
	return e.Err
}

func (e *EntityListenerCapture) OnCryptoTransfer(transfer domain.CryptoTransfer) error {
	e.CryptoTransfers = append(e.CryptoTransfers, transfer)
	return e.Err
}

func (e *EntityListenerCapture) OnCustomFee(customFee domain.CustomFee) error {
	e.CustomFees = append(e.CustomFees, customFee)
	return e.Err
}

func (e *EntityListenerCapture) OnEntity(entity domain.Entity) error {
	e.Entities = append(e.Entities, entity)
	return e.Err
}

func (e *EntityListenerCapture) OnEntityTransaction(entityTransaction domain.EntityTransaction) error {
	e.EntityTransactions = append(e.EntityTransactions, entityTransaction)
	return e.Err
}

func (e *EntityListenerCapture) OnFileData(fileData domain.FileData) error {
	e.FileData = append(e.FileData, fileData)
	return e.Err
}

func (e *EntityListenerCapture) OnHook(hook domain.Hook) error {
	e.Hooks = append(e.Hooks, hook)
	return e.Err
}

func (e *EntityListenerCapture) OnHookStorageChange(change domain.HookStorageChange) error {
	e.HookStorageChanges = append(e.HookStorageChanges, change)
	return e.Err
}

func (e *EntityListenerCapture) OnNft(nft domain.Nft) error {
	e.Nfts = append(e.Nfts, nft)
	return e.Err
}

func (e *EntityListenerCapture) OnNftAllowance(allowance domain.NftAllowance) error {
	e.NftAllowances = append(e.NftAllowances, allowance)
	return e.Err
}

func (e *EntityListenerCapture) OnNode(node domain.Node) error {
	e.Nodes = append(e.Nodes, node)
	return e.Err
}

func (e *EntityListenerCapture) OnRegisteredNode(node domain.RegisteredNode) error {
	e.RegisteredNodes = append(e.RegisteredNodes, node)
	return e.Err
}

func (e *EntityListenerCapture) OnSchedule(schedule domain.Schedule) error {
	e.Schedules = append(e.Schedules, schedule)
	return e.Err
}

func (e *EntityListenerCapture) OnStakingRewardTransfer(transfer domain.StakingRewardTransfer) error {
	e.StakingRewardTransfers = append(e.StakingRewardTransfers, transfer)
	return e.Err
}

func (e *EntityListenerCapture) OnToken(token domain.Token) error {
	e.Tokens = append(e.Tokens, token)
	return e.Err
}

func (e *EntityListenerCapture) OnTokenAccount(tokenAccount domain.TokenAccount) error {
	e.TokenAccounts = append(e.TokenAccounts, tokenAccount)
	return e.Err
}

func (e *EntityListenerCapture) OnTokenAllowance(allowance domain.TokenAllowance) error {
	e.TokenAllowances = append(e.TokenAllowances, allowance)
	return e.Err
}

func (e *EntityListenerCapture) OnTransaction(transaction domain.Transaction) error {
	e.Transactions = append(e.Transactions, transaction)
	return e.Err
}

func (e *EntityListenerCapture) OnTransactionSignature(signature domain.TransactionSignature) error {
	e.TransactionSignatures = append(e.TransactionSignatures, signature)
	return e.Err
}

// RecordFileListenerCapture extends the entity capture with the batch bracket calls
type RecordFileListenerCapture struct {
	EntityListenerCapture

	Ended      []*domain.RecordFile
	ErrorCalls int
	StartCalls int
}

func (r *RecordFileListenerCapture) OnStart() error {
	r.StartCalls++
	return r.Err
}

func (r *RecordFileListenerCapture) OnEnd(recordFile *domain.RecordFile) error {
	r.Ended = append(r.Ended, recordFile)
	return r.Err
}

func (r *RecordFileListenerCapture) OnError() {
	r.ErrorCalls++
}
