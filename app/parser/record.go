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
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

// ResponseCodeSuccess is the receipt status of a successfully executed transaction. Any other
// code is stored verbatim without interpretation.
const ResponseCodeSuccess int32 = 22

// EntityRef references an entity by exactly one addressing scheme: numeric id, 20-byte evm
// address, or key alias. The zero value is the absent reference.
type EntityRef struct {
	Alias      []byte
	EvmAddress []byte
	Shard      int64
	Realm      int64
	Num        int64
}

func NewNumericRef(shard, realm, num int64) EntityRef {
	return EntityRef{Shard: shard, Realm: realm, Num: num}
}

func NewAliasRef(alias []byte) EntityRef {
	return EntityRef{Alias: alias}
}

func NewEvmAddressRef(evmAddress []byte) EntityRef {
	return EntityRef{EvmAddress: evmAddress}
}

func (r EntityRef) IsNumeric() bool {
	return len(r.Alias) == 0 && len(r.EvmAddress) == 0
}

// IsZero reports whether the reference is the all-zero numeric sentinel, which always resolves to
// absent rather than to a real entity
func (r EntityRef) IsZero() bool {
	return r.IsNumeric() && r.Shard == 0 && r.Realm == 0 && r.Num == 0
}

// Timestamp is a wall clock instant as it appears on the wire. Conversion to nanoseconds clamps
// instead of wrapping when the seconds part exceeds the representable range.
type Timestamp struct {
	Seconds int64
	Nanos   int32
}

// AccountAmount is one signed transfer-list line
type AccountAmount struct {
	Account    EntityRef
	Amount     int64
	IsApproval bool
}

// NftTransfer is one serial changing hands. A zero receiver is the burn/wipe sink.
type NftTransfer struct {
	IsApproval        bool
	ReceiverAccountId EntityRef
	SenderAccountId   EntityRef
	SerialNumber      int64
}

// TokenTransferList is the per-token transfer list of a record: fungible amounts, nft serials, or
// both. Mints, burns and wipes carry these lists just like plain transfers.
type TokenTransferList struct {
	NftTransfers []NftTransfer
	TokenId      EntityRef
	Transfers    []AccountAmount
}

// Signature is one entry of the record's signature map
type Signature struct {
	PublicKeyPrefix []byte
	Signature       []byte
	Type            int32
}

// Receipt is the execution result of a transaction. EntityId is set when the transaction created
// an entity, NodeId when it created a node.
type Receipt struct {
	EntityId      domain.EntityId
	NodeId        int64
	SerialNumbers []int64
	Status        int32
}

// StorageChange is one key-value slot access reported in a record's side-effect payload
type StorageChange struct {
	HookId       int64
	OwnerId      EntityRef
	Slot         []byte
	ValueRead    []byte
	ValueWritten *wrapperspb.BytesValue
}

// RecordItem is one decoded transaction record: the typed body, its execution receipt, the
// aggregated transfer lists and any side-effect payloads. Entity references accumulate on the item
// while handlers run and are drained deduplicated at the end.
type RecordItem struct {
	Body                     Body
	ChargedTxFee             int64
	ConsensusTimestamp       int64
	EntityId                 domain.EntityId
	MaxFee                   int64
	Memo                     []byte
	NodeAccountId            domain.EntityId
	NonFeeTransfers          []AccountAmount
	Nonce                    int32
	PaidStakingRewards       []AccountAmount
	ParentConsensusTimestamp int64
	PayerAccountId           domain.EntityId
	PreTransactionHooks      []HookContext
	PrePostHooks             []HookContext
	Receipt                  Receipt
	ScheduleRef              domain.EntityId
	Scheduled                bool
	Signatures               []Signature
	StorageChanges           []StorageChange
	TokenTransfers           []TokenTransferList
	TransactionBytes         []byte
	TransactionHash          []byte
	Transfers                []AccountAmount
	ValidDurationSeconds     int64
	ValidStartNs             int64

	entityIds map[int64]struct{}
	hookQueue *HookQueue
}

func (r *RecordItem) IsSuccessful() bool {
	return r.Receipt.Status == ResponseCodeSuccess
}

// AddEntityId records that the entity was referenced by this transaction. The zero id is skipped,
// repeats collapse.
func (r *RecordItem) AddEntityId(entityId domain.EntityId) {
	if entityId.IsZero() {
		return
	}

	if r.entityIds == nil {
		r.entityIds = make(map[int64]struct{})
	}
	r.entityIds[entityId.EncodedId] = struct{}{}
}

// GetEntityTransactions drains the accumulated entity references into entity transaction rows,
// one per distinct entity, in ascending entity id order
func (r *RecordItem) GetEntityTransactions() []domain.EntityTransaction {
	if len(r.entityIds) == 0 {
		return nil
	}

	ids := maps.Keys(r.entityIds)
	slices.Sort(ids)

	transactionType := domain.TransactionTypeUnknown
	if r.Body != nil {
		transactionType = r.Body.TransactionType()
	}

	entityTransactions := make([]domain.EntityTransaction, 0, len(ids))
	for _, id := range ids {
		entityTransactions = append(entityTransactions, domain.EntityTransaction{
			ConsensusTimestamp: r.ConsensusTimestamp,
			EntityId:           domain.MustDecodeEntityId(id),
			PayerAccountId:     r.PayerAccountId,
			Result:             int16(r.Receipt.Status),
			Type:               transactionType,
		})
	}

	return entityTransactions
}

// GetHookQueue returns the execution queue for the hooks declared on this record, building it on
// first use. The queue never replenishes once drained.
func (r *RecordItem) GetHookQueue() *HookQueue {
	if r.hookQueue == nil {
		r.hookQueue = NewHookQueue(r.PreTransactionHooks, r.PrePostHooks)
	}

	return r.hookQueue
}

// Body is the decoded transaction body, a closed union over the transaction kinds the importer
// understands. Dispatch is an exhaustive type switch, so a new kind is a compile-time exercise.
type Body interface {
	TransactionType() int16
}

type CryptoCreate struct {
	Alias           []byte
	AutoRenewPeriod *int64
	DeclineReward   bool
	EvmAddress      []byte
	InitialBalance  int64
	Key             []byte
	Memo            string
	ProxyAccountId  EntityRef
	StakedAccountId EntityRef
	StakedNodeId    *int64
}

type CryptoUpdate struct {
	AccountId       EntityRef
	AutoRenewPeriod *wrapperspb.Int64Value
	DeclineReward   *wrapperspb.BoolValue
	ExpirationTime  *Timestamp
	Key             *wrapperspb.BytesValue
	Memo            *wrapperspb.StringValue
	ProxyAccountId  *EntityRef
	StakedAccountId *EntityRef
	StakedNodeId    *wrapperspb.Int64Value
}

type CryptoDelete struct {
	AccountId         EntityRef
	TransferAccountId EntityRef
}

type CryptoTransfer struct {
}

type CryptoAllowanceGrant struct {
	Amount  int64
	Owner   EntityRef
	Spender EntityRef
}

type TokenAllowanceGrant struct {
	Amount  int64
	Owner   EntityRef
	Spender EntityRef
	TokenId EntityRef
}

type NftAllowanceGrant struct {
	ApprovedForAll    *wrapperspb.BoolValue
	DelegatingSpender EntityRef
	Owner             EntityRef
	SerialNumbers     []int64
	Spender           EntityRef
	TokenId           EntityRef
}

type CryptoApproveAllowance struct {
	CryptoAllowances []CryptoAllowanceGrant
	NftAllowances    []NftAllowanceGrant
	TokenAllowances  []TokenAllowanceGrant
}

type FileCreate struct {
	Contents       []byte
	ExpirationTime *Timestamp
	Key            []byte
	Memo           string
}

type FileAppend struct {
	Contents []byte
	FileId   EntityRef
}

type FileUpdate struct {
	Contents       []byte
	ExpirationTime *Timestamp
	FileId         EntityRef
	Key            *wrapperspb.BytesValue
	Memo           *wrapperspb.StringValue
}

type FileDelete struct {
	FileId EntityRef
}

type ScheduleCreate struct {
	AdminKey                 []byte
	ExpirationTime           *Timestamp
	Memo                     string
	PayerAccountId           EntityRef
	ScheduledTransactionBody []byte
	WaitForExpiry            bool
}

type ScheduleSign struct {
	ScheduleId EntityRef
}

type ScheduleDelete struct {
	ScheduleId EntityRef
}

type NodeCreate struct {
	AdminKey          []byte
	DeclineReward     bool
	GrpcProxyEndpoint *domain.ServiceEndpoint
}

type NodeUpdate struct {
	AdminKey      *wrapperspb.BytesValue
	DeclineReward *wrapperspb.BoolValue
	// nil keeps the prior endpoint, the zero-valued endpoint clears it
	GrpcProxyEndpoint *domain.ServiceEndpoint
	NodeId            int64
}

type NodeDelete struct {
	NodeId int64
}

type RegisteredNodeCreate struct {
	AccountId   EntityRef
	AdminKey    []byte
	Description string
	Endpoints   domain.ServiceEndpointSlice
}

type RegisteredNodeUpdate struct {
	AccountId   *EntityRef
	AdminKey    *wrapperspb.BytesValue
	Description *wrapperspb.StringValue
	// nil keeps the prior endpoints
	Endpoints domain.ServiceEndpointSlice
	NodeId    int64
}

type RegisteredNodeDelete struct {
	NodeId int64
}

type TokenAssociate struct {
	AccountId EntityRef
	TokenIds  []EntityRef
}

type TokenDissociate struct {
	AccountId EntityRef
	TokenIds  []EntityRef
}

// TokenMint mints Amount fungible units or one serial per metadata entry; the receipt lists the
// assigned serial numbers in the same order
type TokenMint struct {
	Amount   int64
	Metadata [][]byte
	TokenId  EntityRef
}

// FixedFeeSchedule is one flat fee line of a fee schedule update, denominated in hbar when
// DenominatingTokenId is the zero reference
type FixedFeeSchedule struct {
	Amount              int64
	CollectorAccountId  EntityRef
	DenominatingTokenId EntityRef
}

// FractionalFeeSchedule is one fractional fee line of a fee schedule update
type FractionalFeeSchedule struct {
	CollectorAccountId EntityRef
	Denominator        int64
	Maximum            *int64
	Minimum            int64
	NetOfTransfers     bool
	Numerator          int64
}

// TokenFeeScheduleUpdate replaces the token's custom fee schedule; empty fee lists clear it
type TokenFeeScheduleUpdate struct {
	FixedFees      []FixedFeeSchedule
	FractionalFees []FractionalFeeSchedule
	TokenId        EntityRef
}

type TokenUpdate struct {
	Metadata          *wrapperspb.BytesValue
	MetadataKey       *wrapperspb.BytesValue
	Name              *wrapperspb.StringValue
	Symbol            *wrapperspb.StringValue
	TokenId           EntityRef
	TreasuryAccountId *EntityRef
}

type HookCreate struct {
	AdminKey       []byte
	ContractId     EntityRef
	ExtensionPoint string
	HookId         int64
	OwnerId        EntityRef
	Type           string
}

type HookDelete struct {
	HookId  int64
	OwnerId EntityRef
}

// StorageUpdate is one slot write of a lambda sstore. Either Slot addresses the storage slot
// directly, or MappingSlot plus Key (or Preimage) address a mapping entry whose concrete slot is
// derived by hashing.
type StorageUpdate struct {
	Key         []byte
	MappingSlot []byte
	Preimage    []byte
	Slot        []byte
	Value       []byte
}

type LambdaSStore struct {
	HookId         int64
	OwnerId        EntityRef
	StorageUpdates []StorageUpdate
}

func (CryptoCreate) TransactionType() int16           { return domain.TransactionTypeCryptoCreateAccount }
func (CryptoUpdate) TransactionType() int16           { return domain.TransactionTypeCryptoUpdateAccount }
func (CryptoDelete) TransactionType() int16           { return domain.TransactionTypeCryptoDelete }
func (CryptoTransfer) TransactionType() int16         { return domain.TransactionTypeCryptoTransfer }
func (CryptoApproveAllowance) TransactionType() int16 {
	return domain.TransactionTypeCryptoApproveAllowance
}
func (FileCreate) TransactionType() int16           { return domain.TransactionTypeFileCreate }
func (FileAppend) TransactionType() int16           { return domain.TransactionTypeFileAppend }
func (FileUpdate) TransactionType() int16           { return domain.TransactionTypeFileUpdate }
func (FileDelete) TransactionType() int16           { return domain.TransactionTypeFileDelete }
func (ScheduleCreate) TransactionType() int16       { return domain.TransactionTypeScheduleCreate }
func (ScheduleSign) TransactionType() int16         { return domain.TransactionTypeScheduleSign }
func (ScheduleDelete) TransactionType() int16       { return domain.TransactionTypeScheduleDelete }
func (NodeCreate) TransactionType() int16           { return domain.TransactionTypeNodeCreate }
func (NodeUpdate) TransactionType() int16           { return domain.TransactionTypeNodeUpdate }
func (NodeDelete) TransactionType() int16           { return domain.TransactionTypeNodeDelete }
func (RegisteredNodeCreate) TransactionType() int16 { return domain.TransactionTypeRegisteredNodeCreate }
func (RegisteredNodeUpdate) TransactionType() int16 { return domain.TransactionTypeRegisteredNodeUpdate }
func (RegisteredNodeDelete) TransactionType() int16 { return domain.TransactionTypeRegisteredNodeDelete }
func (TokenAssociate) TransactionType() int16       { return domain.TransactionTypeTokenAssociate }
func (TokenDissociate) TransactionType() int16      { return domain.TransactionTypeTokenDissociate }
func (TokenFeeScheduleUpdate) TransactionType() int16 {
	return domain.TransactionTypeTokenFeeScheduleUpdate
}
func (TokenMint) TransactionType() int16   { return domain.TransactionTypeTokenMint }
func (TokenUpdate) TransactionType() int16 { return domain.TransactionTypeTokenUpdate }
func (HookCreate) TransactionType() int16           { return domain.TransactionTypeHookCreate }
func (HookDelete) TransactionType() int16           { return domain.TransactionTypeHookDelete }
func (LambdaSStore) TransactionType() int16         { return domain.TransactionTypeLambdaSStore }
