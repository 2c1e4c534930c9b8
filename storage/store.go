// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"sync"

	"github.com/syndtr/goleveldb/leveldb"

	"github.com/licium/liciumd/fault"
)

// pool prefix bytes, one ordered table each
const (
	tokensPrefix      = 'T'
	ownerTokensPrefix = 'O'
	contentsPrefix    = 'C'
	licensingPrefix   = 'L'
	licensesPrefix    = 'E'
	operatorsPrefix   = 'A'
	contractPrefix    = 'I'
)

// KeySeparator - NUL between the parts of a compound key
//
// token ids and principals never contain NUL so the split is
// unambiguous
const KeySeparator = 0x00

// Store - handle to an opened registry database
//
// all pools are handles into the one LevelDB instance; the store is
// passed explicitly to every component that needs it
type Store struct {
	sync.RWMutex
	database *leveldb.DB

	Tokens      *PoolHandle // canonical token records
	OwnerTokens *PoolHandle // owner index of token ids
	Contents    *PoolHandle // fingerprint to content record
	Licensing   *PoolHandle // token id to licensing terms
	Licenses    *PoolHandle // licensee ++ token id to license record
	Operators   *PoolHandle // owner ++ operator to expiry
	Contract    *PoolHandle // contract info and token counter
}

// New - open the database and attach all pool handles
func New(databasePath string) (*Store, error) {

	db, err := leveldb.OpenFile(databasePath, nil)
	if nil != err {
		return nil, err
	}

	store := &Store{
		database: db,
	}
	store.Tokens = store.pool(tokensPrefix)
	store.OwnerTokens = store.pool(ownerTokensPrefix)
	store.Contents = store.pool(contentsPrefix)
	store.Licensing = store.pool(licensingPrefix)
	store.Licenses = store.pool(licensesPrefix)
	store.Operators = store.pool(operatorsPrefix)
	store.Contract = store.pool(contractPrefix)

	return store, nil
}

// create the handle for one prefixed table
func (store *Store) pool(prefix byte) *PoolHandle {
	return &PoolHandle{
		prefix: prefix,
		limit:  []byte{prefix + 1},
		store:  store,
	}
}

// Begin - start a transaction staging writes in a batch
//
// reads through the transaction see staged writes; nothing reaches
// the database until Commit
func (store *Store) Begin() *Transaction {
	return &Transaction{
		store:  store,
		batch:  new(leveldb.Batch),
		staged: make(map[string]stagedValue),
	}
}

// Close - flush and close the database
func (store *Store) Close() error {
	store.Lock()
	defer store.Unlock()

	if nil == store.database {
		return fault.NotInitialised
	}
	err := store.database.Close()
	store.database = nil
	return err
}
