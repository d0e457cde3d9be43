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

package persistence

import (
	"github.com/hashgraph/hedera-mirror-node/hedera-mirror-importer/app/interfaces"
	"github.com/hashgraph/hedera-mirror-node/hedera-mirror-importer/app/persistence/domain"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const batchSize = 2000

const (
	// a new grant (amount_granted > 0) archives and replaces the allowance, a debit adjusts the
	// live amount in place
	archiveCryptoAllowance = `insert into crypto_allowance_history
                                (amount, amount_granted, owner, payer_account_id, spender, timestamp_range)
                              select amount, amount_granted, owner, payer_account_id, spender,
                                int8range(lower(timestamp_range), @timestamp)
                              from crypto_allowance
                              where owner = @owner and spender = @spender and
                                @amount_granted > 0 and lower(timestamp_range) < @timestamp`
	upsertCryptoAllowance = `insert into crypto_allowance
                               (amount, amount_granted, owner, payer_account_id, spender, timestamp_range)
                             values (@amount, @amount_granted, @owner, @payer_account_id, @spender,
                               @timestamp_range)
                             on conflict (owner, spender) do update
                             set amount = case when excluded.amount_granted > 0 then excluded.amount
                                               else crypto_allowance.amount + excluded.amount end,
                               amount_granted = case when excluded.amount_granted > 0
                                                     then excluded.amount_granted
                                                     else crypto_allowance.amount_granted end,
                               payer_account_id = excluded.payer_account_id,
                               timestamp_range = case when excluded.amount_granted > 0
                                                      then excluded.timestamp_range
                                                      else crypto_allowance.timestamp_range end`

	archiveTokenAllowance = `insert into token_allowance_history
                               (amount, amount_granted, owner, payer_account_id, spender, timestamp_range,
                                 token_id)
                             select amount, amount_granted, owner, payer_account_id, spender,
                               int8range(lower(timestamp_range), @timestamp), token_id
                             from token_allowance
                             where owner = @owner and spender = @spender and token_id = @token_id and
                               @amount_granted > 0 and lower(timestamp_range) < @timestamp`
	upsertTokenAllowance = `insert into token_allowance
                              (amount, amount_granted, owner, payer_account_id, spender, timestamp_range,
                                token_id)
                            values (@amount, @amount_granted, @owner, @payer_account_id, @spender,
                              @timestamp_range, @token_id)
                            on conflict (owner, spender, token_id) do update
                            set amount = case when excluded.amount_granted > 0 then excluded.amount
                                              else token_allowance.amount + excluded.amount end,
                              amount_granted = case when excluded.amount_granted > 0
                                                    then excluded.amount_granted
                                                    else token_allowance.amount_granted end,
                              payer_account_id = excluded.payer_account_id,
                              timestamp_range = case when excluded.amount_granted > 0
                                                     then excluded.timestamp_range
                                                     else token_allowance.timestamp_range end`

	archiveNftAllowance = `insert into nft_allowance_history
                             (approved_for_all, owner, payer_account_id, spender, timestamp_range, token_id)
                           select approved_for_all, owner, payer_account_id, spender,
                             int8range(lower(timestamp_range), @timestamp), token_id
                           from nft_allowance
                           where owner = @owner and spender = @spender and token_id = @token_id and
                             lower(timestamp_range) < @timestamp`
	upsertNftAllowance = `insert into nft_allowance
                            (approved_for_all, owner, payer_account_id, spender, timestamp_range, token_id)
                          values (@approved_for_all, @owner, @payer_account_id, @spender, @timestamp_range,
                            @token_id)
                          on conflict (owner, spender, token_id) do update
                          set approved_for_all = excluded.approved_for_all,
                            payer_account_id = excluded.payer_account_id,
                            timestamp_range = excluded.timestamp_range`

	archiveNft = `insert into nft_history
                    (account_id, created_timestamp, delegating_spender, deleted, metadata, serial_number,
                      spender, timestamp_range, token_id)
                  select account_id, created_timestamp, delegating_spender, deleted, metadata,
                    serial_number, spender, int8range(lower(timestamp_range), @timestamp), token_id
                  from nft
                  where token_id = @token_id and serial_number = @serial_number and
                    lower(timestamp_range) < @timestamp`
	upsertNft = `insert into nft
                   (account_id, created_timestamp, delegating_spender, deleted, metadata, serial_number,
                     spender, timestamp_range, token_id)
                 values (@account_id, @created_timestamp, @delegating_spender, @deleted, @metadata,
                   @serial_number, @spender, @timestamp_range, @token_id)
                 on conflict (token_id, serial_number) do update
                 set account_id = coalesce(excluded.account_id, nft.account_id),
                   created_timestamp = coalesce(excluded.created_timestamp, nft.created_timestamp),
                   delegating_spender = excluded.delegating_spender,
                   deleted = coalesce(excluded.deleted, nft.deleted),
                   metadata = coalesce(excluded.metadata, nft.metadata),
                   spender = excluded.spender,
                   timestamp_range = excluded.timestamp_range`

	archiveNode = `insert into node_history
                     (admin_key, created_timestamp, decline_reward, deleted, grpc_proxy_endpoint, node_id,
                       timestamp_range)
                   select admin_key, created_timestamp, decline_reward, deleted, grpc_proxy_endpoint,
                     node_id, int8range(lower(timestamp_range), @timestamp)
                   from node
                   where node_id = @node_id and lower(timestamp_range) < @timestamp`
	// the zero-valued endpoint clears the column, null keeps it
	upsertNode = `insert into node
                    (admin_key, created_timestamp, decline_reward, deleted, grpc_proxy_endpoint, node_id,
                      timestamp_range)
                  values (@admin_key, @created_timestamp, @decline_reward, @deleted, @grpc_proxy_endpoint,
                    @node_id, @timestamp_range)
                  on conflict (node_id) do update
                  set admin_key = coalesce(excluded.admin_key, node.admin_key),
                    created_timestamp = coalesce(excluded.created_timestamp, node.created_timestamp),
                    decline_reward = coalesce(excluded.decline_reward, node.decline_reward),
                    deleted = coalesce(excluded.deleted, node.deleted),
                    grpc_proxy_endpoint = case
                      when excluded.grpc_proxy_endpoint is null then node.grpc_proxy_endpoint
                      when excluded.grpc_proxy_endpoint = '{"port":0,"requires_tls":false}'::jsonb then null
                      else excluded.grpc_proxy_endpoint end,
                    timestamp_range = excluded.timestamp_range`

	archiveRegisteredNode = `insert into registered_node_history
                               (account_id, admin_key, created_timestamp, deleted, description, endpoints,
                                 node_id, timestamp_range)
                             select account_id, admin_key, created_timestamp, deleted, description,
                               endpoints, node_id, int8range(lower(timestamp_range), @timestamp)
                             from registered_node
                             where node_id = @node_id and lower(timestamp_range) < @timestamp`
	upsertRegisteredNode = `insert into registered_node
                              (account_id, admin_key, created_timestamp, deleted, description, endpoints,
                                node_id, timestamp_range)
                            values (@account_id, @admin_key, @created_timestamp, @deleted, @description,
                              @endpoints, @node_id, @timestamp_range)
                            on conflict (node_id) do update
                            set account_id = coalesce(excluded.account_id, registered_node.account_id),
                              admin_key = coalesce(excluded.admin_key, registered_node.admin_key),
                              created_timestamp = coalesce(excluded.created_timestamp,
                                registered_node.created_timestamp),
                              deleted = coalesce(excluded.deleted, registered_node.deleted),
                              description = coalesce(nullif(excluded.description, ''),
                                registered_node.description),
                              endpoints = coalesce(excluded.endpoints, registered_node.endpoints),
                              timestamp_range = excluded.timestamp_range`

	archiveToken = `insert into token_history
                      (created_timestamp, decimals, fee_schedule_key, freeze_default, freeze_key,
                        initial_supply, kyc_key, max_supply, metadata, metadata_key, name, supply_key,
                        supply_type, symbol, timestamp_range, token_id, total_supply, treasury_account_id,
                        type, wipe_key)
                    select created_timestamp, decimals, fee_schedule_key, freeze_default, freeze_key,
                      initial_supply, kyc_key, max_supply, metadata, metadata_key, name, supply_key,
                      supply_type, symbol, int8range(lower(timestamp_range), @timestamp), token_id,
                      total_supply, treasury_account_id, type, wipe_key
                    from token
                    where token_id = @token_id and lower(timestamp_range) < @timestamp`
	// updates for a token the importer never saw created are dropped on the floor
	updateToken = `update token
                   set metadata = coalesce(@metadata, metadata),
                     metadata_key = coalesce(@metadata_key, metadata_key),
                     name = case when @name <> '' then @name else name end,
                     symbol = case when @symbol <> '' then @symbol else symbol end,
                     treasury_account_id = case when @treasury_account_id <> 0 then @treasury_account_id
                                                else treasury_account_id end,
                     timestamp_range = @timestamp_range
                   where token_id = @token_id`

	archiveTokenAccount = `insert into token_account_history
                             (account_id, associated, balance, created_timestamp, timestamp_range,
                               token_id)
                           select account_id, associated, balance, created_timestamp,
                             int8range(lower(timestamp_range), @timestamp), token_id
                           from token_account
                           where account_id = @account_id and token_id = @token_id and
                             lower(timestamp_range) < @timestamp`
	upsertTokenAccount = `insert into token_account
                            (account_id, associated, balance, created_timestamp, timestamp_range, token_id)
                          values (@account_id, @associated, 0, @created_timestamp, @timestamp_range,
                            @token_id)
                          on conflict (account_id, token_id) do update
                          set associated = excluded.associated,
                            created_timestamp = case when excluded.created_timestamp <> 0
                                                     then excluded.created_timestamp
                                                     else token_account.created_timestamp end,
                            timestamp_range = excluded.timestamp_range`

	archiveHook = `insert into hook_history
                     (admin_key, contract_id, created_timestamp, deleted, extension_point, hook_id,
                       owner_id, timestamp_range, type)
                   select admin_key, contract_id, created_timestamp, deleted, extension_point, hook_id,
                     owner_id, int8range(lower(timestamp_range), @timestamp), type
                   from hook
                   where hook_id = @hook_id and owner_id = @owner_id and
                     lower(timestamp_range) < @timestamp`
	upsertHook = `insert into hook
                    (admin_key, contract_id, created_timestamp, deleted, extension_point, hook_id,
                      owner_id, timestamp_range, type)
                  values (@admin_key, @contract_id, @created_timestamp, @deleted, @extension_point,
                    @hook_id, @owner_id, @timestamp_range, @type)
                  on conflict (hook_id, owner_id) do update
                  set admin_key = coalesce(excluded.admin_key, hook.admin_key),
                    contract_id = case when excluded.contract_id <> 0 then excluded.contract_id
                                       else hook.contract_id end,
                    created_timestamp = coalesce(excluded.created_timestamp, hook.created_timestamp),
                    deleted = coalesce(excluded.deleted, hook.deleted),
                    extension_point = coalesce(nullif(excluded.extension_point, ''),
                      hook.extension_point),
                    type = coalesce(nullif(excluded.type, ''), hook.type),
                    timestamp_range = excluded.timestamp_range`

	markScheduleExecuted = `update schedule set executed_timestamp = @executed_timestamp
                            where schedule_id = @schedule_id`
)

// recordFileListener accumulates every domain object produced while one record file is processed
// and commits the whole batch in a single database transaction. Until OnEnd, nothing touches the
// database except reads.
type recordFileListener struct {
	dbClient interfaces.DbClient

	contractLogs           []domain.ContractLog
	cryptoAllowances       []domain.CryptoAllowance
	cryptoTransfers        []domain.CryptoTransfer
	customFees             []domain.CustomFee
	entities               []domain.Entity
	entityTransactions     []domain.EntityTransaction
	fileData               []domain.FileData
	hooks                  []domain.Hook
	hookStorageChanges     []domain.HookStorageChange
	nfts                   []domain.Nft
	nftAllowances          []domain.NftAllowance
	nodes                  []domain.Node
	registeredNodes        []domain.RegisteredNode
	schedules              []domain.Schedule
	stakingRewardTransfers []domain.StakingRewardTransfer
	tokens                 []domain.Token
	tokenAccounts          []domain.TokenAccount
	tokenAllowances        []domain.TokenAllowance
	transactions           []domain.Transaction
	transactionSignatures  []domain.TransactionSignature
}

// NewRecordFileListener creates the listener persisting record batches
func NewRecordFileListener(dbClient interfaces.DbClient) interfaces.RecordFileListener {
	return &recordFileListener{dbClient: dbClient}
}

func (r *recordFileListener) OnStart() error {
	r.reset()
	return nil
}

func (r *recordFileListener) OnError() {
	r.reset()
}

func (r *recordFileListener) OnEnd(recordFile *domain.RecordFile) error {
	if recordFile == nil {
		return errors.New("record file is nil")
	}

	err := r.dbClient.GetDb().Transaction(func(tx *gorm.DB) error {
		if err := r.persistEntities(tx); err != nil {
			return err
		}
		if err := r.persistTemporalRows(tx); err != nil {
			return err
		}
		if err := r.persistAppendOnlyRows(tx); err != nil {
			return err
		}
		return tx.Create(recordFile).Error
	})
	if err != nil {
		return errors.Wrapf(err, "failed to commit record file %s", recordFile.Name)
	}

	log.Debugf("Committed record file %s", recordFile.Name)
	r.reset()
	return nil
}

// persistEntities writes the flushed entity versions. History rows arrive with closed ranges and
// insert as-is; the current row was fully merged in memory, so a conflicting row is simply
// replaced.
func (r *recordFileListener) persistEntities(tx *gorm.DB) error {
	var history, current []domain.Entity
	for _, entity := range r.entities {
		if domain.IsTimestampRangeOpen(entity.TimestampRange) {
			current = append(current, entity)
		} else {
			history = append(history, entity)
		}
	}

	if len(history) > 0 {
		err := tx.Table(domain.Entity{}.HistoryTableName()).CreateInBatches(history, batchSize).Error
		if err != nil {
			return errors.Wrap(err, "failed to create entity history")
		}
	}

	if len(current) > 0 {
		err := tx.
			Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "id"}}, UpdateAll: true}).
			CreateInBatches(current, batchSize).Error
		if err != nil {
			return errors.Wrap(err, "failed to upsert entities")
		}
	}

	return nil
}

// persistTemporalRows merges the partial rows of the other temporally versioned families. Each row
// first archives the superseded current version with its interval closed at the new lower bound,
// then merges field-wise, absent attributes keeping their prior value.
func (r *recordFileListener) persistTemporalRows(tx *gorm.DB) error {
	for _, allowance := range r.cryptoAllowances {
		timestamp := domain.GetTimestampLower(allowance.TimestampRange)
		args := map[string]interface{}{
			"amount":           allowance.Amount,
			"amount_granted":   allowance.AmountGranted,
			"owner":            allowance.Owner,
			"payer_account_id": allowance.PayerAccountId,
			"spender":          allowance.Spender,
			"timestamp":        timestamp,
			"timestamp_range":  allowance.TimestampRange,
		}
		if err := execAll(tx, args, archiveCryptoAllowance, upsertCryptoAllowance); err != nil {
			return errors.Wrap(err, "failed to merge crypto allowance")
		}
	}

	for _, allowance := range r.tokenAllowances {
		timestamp := domain.GetTimestampLower(allowance.TimestampRange)
		args := map[string]interface{}{
			"amount":           allowance.Amount,
			"amount_granted":   allowance.AmountGranted,
			"owner":            allowance.Owner,
			"payer_account_id": allowance.PayerAccountId,
			"spender":          allowance.Spender,
			"timestamp":        timestamp,
			"timestamp_range":  allowance.TimestampRange,
			"token_id":         allowance.TokenId,
		}
		if err := execAll(tx, args, archiveTokenAllowance, upsertTokenAllowance); err != nil {
			return errors.Wrap(err, "failed to merge token allowance")
		}
	}

	for _, allowance := range r.nftAllowances {
		timestamp := domain.GetTimestampLower(allowance.TimestampRange)
		args := map[string]interface{}{
			"approved_for_all": allowance.ApprovedForAll,
			"owner":            allowance.Owner,
			"payer_account_id": allowance.PayerAccountId,
			"spender":          allowance.Spender,
			"timestamp":        timestamp,
			"timestamp_range":  allowance.TimestampRange,
			"token_id":         allowance.TokenId,
		}
		if err := execAll(tx, args, archiveNftAllowance, upsertNftAllowance); err != nil {
			return errors.Wrap(err, "failed to merge nft allowance")
		}
	}

	for _, nft := range r.nfts {
		timestamp := domain.GetTimestampLower(nft.TimestampRange)
		args := map[string]interface{}{
			"account_id":         nft.AccountId,
			"created_timestamp":  nft.CreatedTimestamp,
			"delegating_spender": nft.DelegatingSpender,
			"deleted":            nft.Deleted,
			"metadata":           nft.Metadata,
			"serial_number":      nft.SerialNumber,
			"spender":            nft.Spender,
			"timestamp":          timestamp,
			"timestamp_range":    nft.TimestampRange,
			"token_id":           nft.TokenId,
		}
		if err := execAll(tx, args, archiveNft, upsertNft); err != nil {
			return errors.Wrap(err, "failed to merge nft")
		}
	}

	for _, node := range r.nodes {
		timestamp := domain.GetTimestampLower(node.TimestampRange)
		args := map[string]interface{}{
			"admin_key":           node.AdminKey,
			"created_timestamp":   node.CreatedTimestamp,
			"decline_reward":      node.DeclineReward,
			"deleted":             node.Deleted,
			"grpc_proxy_endpoint": node.GrpcProxyEndpoint,
			"node_id":             node.NodeId,
			"timestamp":           timestamp,
			"timestamp_range":     node.TimestampRange,
		}
		if err := execAll(tx, args, archiveNode, upsertNode); err != nil {
			return errors.Wrap(err, "failed to merge node")
		}
	}

	for _, node := range r.registeredNodes {
		timestamp := domain.GetTimestampLower(node.TimestampRange)
		args := map[string]interface{}{
			"account_id":        node.AccountId,
			"admin_key":         node.AdminKey,
			"created_timestamp": node.CreatedTimestamp,
			"deleted":           node.Deleted,
			"description":       node.Description,
			"endpoints":         node.Endpoints,
			"node_id":           node.NodeId,
			"timestamp":         timestamp,
			"timestamp_range":   node.TimestampRange,
		}
		if err := execAll(tx, args, archiveRegisteredNode, upsertRegisteredNode); err != nil {
			return errors.Wrap(err, "failed to merge registered node")
		}
	}

	for _, token := range r.tokens {
		timestamp := domain.GetTimestampLower(token.TimestampRange)
		args := map[string]interface{}{
			"metadata":            token.Metadata,
			"metadata_key":        token.MetadataKey,
			"name":                token.Name,
			"symbol":              token.Symbol,
			"timestamp":           timestamp,
			"timestamp_range":     token.TimestampRange,
			"token_id":            token.TokenId,
			"treasury_account_id": token.TreasuryAccountId,
		}
		if err := execAll(tx, args, archiveToken, updateToken); err != nil {
			return errors.Wrap(err, "failed to merge token")
		}
	}

	for _, tokenAccount := range r.tokenAccounts {
		timestamp := domain.GetTimestampLower(tokenAccount.TimestampRange)
		args := map[string]interface{}{
			"account_id":        tokenAccount.AccountId,
			"associated":        tokenAccount.Associated,
			"created_timestamp": tokenAccount.CreatedTimestamp,
			"timestamp":         timestamp,
			"timestamp_range":   tokenAccount.TimestampRange,
			"token_id":          tokenAccount.TokenId,
		}
		if err := execAll(tx, args, archiveTokenAccount, upsertTokenAccount); err != nil {
			return errors.Wrap(err, "failed to merge token account")
		}
	}

	for _, hook := range r.hooks {
		timestamp := domain.GetTimestampLower(hook.TimestampRange)
		args := map[string]interface{}{
			"admin_key":         hook.AdminKey,
			"contract_id":       hook.ContractId,
			"created_timestamp": hook.CreatedTimestamp,
			"deleted":           hook.Deleted,
			"extension_point":   hook.ExtensionPoint,
			"hook_id":           hook.HookId,
			"owner_id":          hook.OwnerId,
			"timestamp":         timestamp,
			"timestamp_range":   hook.TimestampRange,
			"type":              hook.Type,
		}
		if err := execAll(tx, args, archiveHook, upsertHook); err != nil {
			return errors.Wrap(err, "failed to merge hook")
		}
	}

	for _, schedule := range r.schedules {
		if schedule.ConsensusTimestamp == 0 {
			// execution marker from a scheduled transaction record
			err := tx.Exec(markScheduleExecuted, map[string]interface{}{
				"executed_timestamp": schedule.ExecutedTimestamp,
				"schedule_id":        schedule.ScheduleId,
			}).Error
			if err != nil {
				return errors.Wrap(err, "failed to mark schedule executed")
			}
			continue
		}

		err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&schedule).Error
		if err != nil {
			return errors.Wrap(err, "failed to create schedule")
		}
	}

	return nil
}

func (r *recordFileListener) persistAppendOnlyRows(tx *gorm.DB) error {
	creates := []struct {
		name string
		rows interface{}
		size int
	}{
		{"transactions", r.transactions, len(r.transactions)},
		{"crypto transfers", r.cryptoTransfers, len(r.cryptoTransfers)},
		{"staking reward transfers", r.stakingRewardTransfers, len(r.stakingRewardTransfers)},
		{"contract logs", r.contractLogs, len(r.contractLogs)},
		{"custom fees", r.customFees, len(r.customFees)},
		{"entity transactions", r.entityTransactions, len(r.entityTransactions)},
		{"file data", r.fileData, len(r.fileData)},
		{"hook storage changes", r.hookStorageChanges, len(r.hookStorageChanges)},
		{"transaction signatures", r.transactionSignatures, len(r.transactionSignatures)},
	}

	for _, create := range creates {
		if create.size == 0 {
			continue
		}
		if err := tx.CreateInBatches(create.rows, batchSize).Error; err != nil {
			return errors.Wrapf(err, "failed to create %s", create.name)
		}
	}

	return nil
}

func (r *recordFileListener) reset() {
	r.contractLogs = nil
	r.cryptoAllowances = nil
	r.cryptoTransfers = nil
	r.customFees = nil
	r.entities = nil
	r.entityTransactions = nil
	r.fileData = nil
	r.hooks = nil
	r.hookStorageChanges = nil
	r.nfts = nil
	r.nftAllowances = nil
	r.nodes = nil
	r.registeredNodes = nil
	r.schedules = nil
	r.stakingRewardTransfers = nil
	r.tokens = nil
	r.tokenAccounts = nil
	r.tokenAllowances = nil
	r.transactions = nil
	r.transactionSignatures = nil
}

func execAll(tx *gorm.DB, args map[string]interface{}, queries ...string) error {
	for _, query := range queries {
		if err := tx.Exec(query, args).Error; err != nil {
			return err
		}
	}
	return nil
}

func (r *recordFileListener) OnContractLog(contractLog domain.ContractLog) error {
	r.contractLogs = append(r.contractLogs, contractLog)
	return nil
}

func (r *recordFileListener) OnCryptoAllowance(allowance domain.CryptoAllowance) error {
	r.cryptoAllowances = append(r.cryptoAllowances, allowance)
	return nil
}

func (r *recordFileListener) OnCryptoTransfer(transfer domain.CryptoTransfer) error {
	r.cryptoTransfers = append(r.cryptoTransfers, transfer)
	return nil
}

func (r *recordFileListener) OnCustomFee(customFee domain.CustomFee) error {
	r.customFees = append(r.customFees, customFee)
	return nil
}

func (r *recordFileListener) OnEntity(entity domain.Entity) error {
	r.entities = append(r.entities, entity)
	return nil
}

func (r *recordFileListener) OnEntityTransaction(entityTransaction domain.EntityTransaction) error {
	r.entityTransactions = append(r.entityTransactions, entityTransaction)
	return nil
}

func (r *recordFileListener) OnFileData(fileData domain.FileData) error {
	r.fileData = append(r.fileData, fileData)
	return nil
}

func (r *recordFileListener) OnHook(hook domain.Hook) error {
	r.hooks = append(r.hooks, hook)
	return nil
}

func (r *recordFileListener) OnHookStorageChange(change domain.HookStorageChange) error {
	r.hookStorageChanges = append(r.hookStorageChanges, change)
	return nil
}

func (r *recordFileListener) OnNft(nft domain.Nft) error {
	r.nfts = append(r.nfts, nft)
	return nil
}

func (r *recordFileListener) OnNftAllowance(allowance domain.NftAllowance) error {
	r.nftAllowances = append(r.nftAllowances, allowance)
	return nil
}

func (r *recordFileListener) OnNode(node domain.Node) error {
	r.nodes = append(r.nodes, node)
	return nil
}

func (r *recordFileListener) OnRegisteredNode(node domain.RegisteredNode) error {
	r.registeredNodes = append(r.registeredNodes, node)
	return nil
}

func (r *recordFileListener) OnSchedule(schedule domain.Schedule) error {
	r.schedules = append(r.schedules, schedule)
	return nil
}

func (r *recordFileListener) OnStakingRewardTransfer(transfer domain.StakingRewardTransfer) error {
	r.stakingRewardTransfers = append(r.stakingRewardTransfers, transfer)
	return nil
}

func (r *recordFileListener) OnToken(token domain.Token) error {
	r.tokens = append(r.tokens, token)
	return nil
}

func (r *recordFileListener) OnTokenAccount(tokenAccount domain.TokenAccount) error {
	r.tokenAccounts = append(r.tokenAccounts, tokenAccount)
	return nil
}

func (r *recordFileListener) OnTokenAllowance(allowance domain.TokenAllowance) error {
	r.tokenAllowances = append(r.tokenAllowances, allowance)
	return nil
}

func (r *recordFileListener) OnTransaction(transaction domain.Transaction) error {
	r.transactions = append(r.transactions, transaction)
	return nil
}

func (r *recordFileListener) OnTransactionSignature(signature domain.TransactionSignature) error {
	r.transactionSignatures = append(r.transactionSignatures, signature)
	return nil
}
