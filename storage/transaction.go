// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"encoding/binary"

	"github.com/syndtr/goleveldb/leveldb"
)

// a staged write, deleted marks a pending removal
type stagedValue struct {
	value   []byte
	deleted bool
}

// Transaction - stages a batch of writes for a single command
//
// every workflow write goes through a transaction so that a command
// either commits all of its writes or none of them; reads through the
// transaction observe the staged state
type Transaction struct {
	store  *Store
	batch  *leveldb.Batch
	staged map[string]stagedValue
}

// Put - stage a key/value pair
func (trx *Transaction) Put(pool *PoolHandle, key []byte, value []byte) {
	prefixedKey := pool.prefixKey(key)
	trx.staged[string(prefixedKey)] = stagedValue{value: value}
	trx.batch.Put(prefixedKey, value)
}

// Delete - stage a key removal
func (trx *Transaction) Delete(pool *PoolHandle, key []byte) {
	prefixedKey := pool.prefixKey(key)
	trx.staged[string(prefixedKey)] = stagedValue{deleted: true}
	trx.batch.Delete(prefixedKey)
}

// Get - read a value observing staged writes
//
// returns nil if the key is absent
func (trx *Transaction) Get(pool *PoolHandle, key []byte) []byte {
	if staged, ok := trx.staged[string(pool.prefixKey(key))]; ok {
		if staged.deleted {
			return nil
		}
		return staged.value
	}
	return pool.Get(key)
}

// Has - check existence observing staged writes
func (trx *Transaction) Has(pool *PoolHandle, key []byte) bool {
	if staged, ok := trx.staged[string(pool.prefixKey(key))]; ok {
		return !staged.deleted
	}
	return pool.Has(key)
}

// PutN - stage a big endian uint64 value
func (trx *Transaction) PutN(pool *PoolHandle, key []byte, value uint64) {
	buffer := make([]byte, 8)
	binary.BigEndian.PutUint64(buffer, value)
	trx.Put(pool, key, buffer)
}

// GetN - read a big endian uint64 observing staged writes
//
// second parameter is false if record was not found
func (trx *Transaction) GetN(pool *PoolHandle, key []byte) (uint64, bool) {
	buffer := trx.Get(pool, key)
	if nil == buffer || len(buffer) < 8 {
		return 0, false
	}
	return binary.BigEndian.Uint64(buffer[:8]), true
}

// Commit - atomically write the whole batch to the database
func (trx *Transaction) Commit() error {
	trx.store.RLock()
	defer trx.store.RUnlock()

	err := trx.store.database.Write(trx.batch, nil)
	if nil == err {
		trx.reset()
	}
	return err
}

// Abort - discard all staged writes
func (trx *Transaction) Abort() {
	trx.reset()
}

func (trx *Transaction) reset() {
	trx.batch.Reset()
	trx.staged = make(map[string]stagedValue)
}
