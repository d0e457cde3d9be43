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
	"context"
	"net"
	"strconv"
	"sync"

	"github.com/hashgraph/hedera-sdk-go/v2"

	"github.com/hashgraph/hedera-mirror-node/hedera-mirror-importer/app/interfaces"
	"github.com/hashgraph/hedera-mirror-node/hedera-mirror-importer/app/persistence/domain"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

const (
	addressBookFileNum101 = 101
	addressBookFileNum102 = 102

	closeCurrentAddressBook = `update address_book
                               set end_consensus_timestamp = @timestamp
                               where file_id = @file_id and end_consensus_timestamp is null`
)

// addressBookService assembles address book versions from the contents of the two address book
// system files. A create or update starts a new partial; appends extend it; the partial becomes a
// version only once it parses as a complete node address book. The last applied timestamp per
// file makes Update idempotent, a replayed batch must not extend the partial twice.
type addressBookService struct {
	applied  map[int64]int64
	dbClient interfaces.DbClient
	fileIds  map[int64]struct{}
	mu       sync.Mutex
	partial  map[int64][]byte
}

// NewAddressBookService creates the service maintaining the address book derived from the system
// files of the given shard and realm
func NewAddressBookService(dbClient interfaces.DbClient, shard, realm int64) (
	interfaces.AddressBookService,
	error,
) {
	fileIds := make(map[int64]struct{})
	for _, num := range []int64{addressBookFileNum101, addressBookFileNum102} {
		fileId, err := domain.NewEntityId(shard, realm, num)
		if err != nil {
			return nil, err
		}
		fileIds[fileId.EncodedId] = struct{}{}
	}

	return &addressBookService{
		applied:  make(map[int64]int64),
		dbClient: dbClient,
		fileIds:  fileIds,
		partial:  make(map[int64][]byte),
	}, nil
}

func (a *addressBookService) IsAddressBook(fileId domain.EntityId) bool {
	_, ok := a.fileIds[fileId.EncodedId]
	return ok
}

func (a *addressBookService) Update(ctx context.Context, fileData domain.FileData) error {
	if !a.IsAddressBook(fileData.EntityId) {
		return errors.Errorf("file %s is not an address book", fileData.EntityId.String())
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	encodedId := fileData.EntityId.EncodedId
	if fileData.ConsensusTimestamp <= a.applied[encodedId] {
		// replayed record, its contents are already buffered
		return nil
	}
	a.applied[encodedId] = fileData.ConsensusTimestamp

	if fileData.TransactionType == domain.TransactionTypeFileAppend {
		a.partial[encodedId] = append(a.partial[encodedId], fileData.FileData...)
	} else {
		a.partial[encodedId] = fileData.FileData
	}

	contents := a.partial[encodedId]
	nodeAddressBook, err := hedera.NodeAddressBookFromBytes(contents)
	if err != nil || len(nodeAddressBook.NodeAddresses) == 0 {
		// partial content, wait for the next append
		log.Debugf("Address book file %s incomplete at %d", fileData.EntityId.String(),
			fileData.ConsensusTimestamp)
		return nil
	}

	delete(a.partial, encodedId)
	return a.persist(ctx, fileData, contents, nodeAddressBook)
}

func (a *addressBookService) persist(
	ctx context.Context,
	fileData domain.FileData,
	contents []byte,
	nodeAddressBook hedera.NodeAddressBook,
) error {
	db, cancel := a.dbClient.GetDbWithContext(ctx)
	defer cancel()

	return db.Transaction(func(tx *gorm.DB) error {
		err := tx.Exec(
			closeCurrentAddressBook,
			map[string]interface{}{
				"timestamp": fileData.ConsensusTimestamp,
				"file_id":   fileData.EntityId.EncodedId,
			},
		).Error
		if err != nil {
			return errors.Wrap(err, "failed to close current address book")
		}

		addressBook := domain.AddressBook{
			FileData:                contents,
			FileId:                  fileData.EntityId,
			NodeCount:               int32(len(nodeAddressBook.NodeAddresses)),
			StartConsensusTimestamp: fileData.ConsensusTimestamp,
		}
		if err = tx.Create(&addressBook).Error; err != nil {
			return errors.Wrap(err, "failed to create address book")
		}

		for _, nodeAddress := range nodeAddressBook.NodeAddresses {
			entry, endpoints, err := a.toAddressBookEntry(fileData.ConsensusTimestamp, nodeAddress)
			if err != nil {
				return err
			}

			if err = tx.Create(&entry).Error; err != nil {
				return errors.Wrap(err, "failed to create address book entry")
			}
			if len(endpoints) > 0 {
				if err = tx.Create(&endpoints).Error; err != nil {
					return errors.Wrap(err, "failed to create address book service endpoints")
				}
			}
		}

		log.Infof("Updated address book %s with %d nodes at %d", fileData.EntityId.String(),
			len(nodeAddressBook.NodeAddresses), fileData.ConsensusTimestamp)
		return nil
	})
}

func (a *addressBookService) toAddressBookEntry(
	consensusTimestamp int64,
	nodeAddress hedera.NodeAddress,
) (domain.AddressBookEntry, []domain.AddressBookServiceEndpoint, error) {
	entry := domain.AddressBookEntry{
		ConsensusTimestamp: consensusTimestamp,
		Description:        nodeAddress.Description,
		NodeCertHash:       nodeAddress.CertHash,
		NodeId:             nodeAddress.NodeID,
		PublicKey:          nodeAddress.PublicKey,
		Stake:              nodeAddress.Stake,
	}

	if nodeAddress.AccountID != nil {
		accountId, err := domain.NewEntityId(
			int64(nodeAddress.AccountID.Shard),
			int64(nodeAddress.AccountID.Realm),
			int64(nodeAddress.AccountID.Account),
		)
		if err != nil {
			return domain.AddressBookEntry{}, nil, errors.Wrap(err, "invalid node account id")
		}
		entry.Memo = nodeAddress.AccountID.String()
		entry.NodeAccountId = accountId
	}

	endpoints := make([]domain.AddressBookServiceEndpoint, 0, len(nodeAddress.Addresses))
	for _, endpoint := range nodeAddress.Addresses {
		host, portString, err := net.SplitHostPort(endpoint.String())
		if err != nil {
			continue
		}
		port, err := strconv.ParseInt(portString, 10, 32)
		if err != nil {
			continue
		}

		endpoints = append(endpoints, domain.AddressBookServiceEndpoint{
			ConsensusTimestamp: consensusTimestamp,
			IpAddressV4:        host,
			NodeId:             nodeAddress.NodeID,
			Port:               int32(port),
		})
	}

	return entry, endpoints, nil
}
