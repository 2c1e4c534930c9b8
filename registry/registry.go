// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package registry - the canonical token registry
//
// owns the token records, the per-owner index and the global token
// counter; uniqueness of token ids is enforced here
package registry

import (
	"bytes"

	"github.com/licium/liciumd/fault"
	"github.com/licium/liciumd/storage"
	"github.com/licium/liciumd/tokenrecord"
)

// the token counter lives in the contract pool
var counterKey = []byte("tokens")

// Registry - access to the token registry pools
type Registry struct {
	store *storage.Store
}

// New - attach a registry to an opened store
func New(store *storage.Store) *Registry {
	return &Registry{
		store: store,
	}
}

// Create - stage a new token record
//
// fails with TokenAlreadyExists if the id is taken, observing writes
// already staged in the transaction; on success the token counter is
// incremented in the same transaction
func (r *Registry) Create(trx *storage.Transaction, tokenId tokenrecord.TokenId, record *tokenrecord.TokenRecord) error {

	if err := tokenId.Validate(); nil != err {
		return err
	}
	if err := record.Owner.Validate(); nil != err {
		return err
	}

	key := []byte(tokenId)
	if trx.Has(r.store.Tokens, key) {
		return fault.TokenAlreadyExists
	}

	data, err := tokenrecord.Pack(record)
	if nil != err {
		return err
	}
	trx.Put(r.store.Tokens, key, data)
	trx.Put(r.store.OwnerTokens, ownerTokenKey(record.Owner, tokenId), nil)

	count, _ := trx.GetN(r.store.Contract, counterKey)
	trx.PutN(r.store.Contract, counterKey, count+1)

	return nil
}

// Get - fetch a token record
//
// fails with TokenNotFound
func (r *Registry) Get(tokenId tokenrecord.TokenId) (*tokenrecord.TokenRecord, error) {
	data := r.store.Tokens.Get([]byte(tokenId))
	if nil == data {
		return nil, fault.TokenNotFound
	}
	record := &tokenrecord.TokenRecord{}
	if err := tokenrecord.Unpack(data, record); nil != err {
		return nil, err
	}
	return record, nil
}

// Has - check whether a token id is taken
func (r *Registry) Has(tokenId tokenrecord.TokenId) bool {
	return r.store.Tokens.Has([]byte(tokenId))
}

// Count - number of minted tokens
func (r *Registry) Count() uint64 {
	count, _ := r.store.Contract.GetN(counterKey)
	return count
}

// ListAll - token ids in ascending order
//
// startAfter is an exclusive cursor; empty string starts from the
// smallest key
func (r *Registry) ListAll(startAfter tokenrecord.TokenId, count int) ([]tokenrecord.TokenId, error) {

	cursor := r.store.Tokens.NewFetchCursor()
	if "" != startAfter {
		cursor.SeekAfter([]byte(startAfter))
	}

	elements, err := cursor.Fetch(count)
	if nil != err {
		return nil, err
	}

	tokenIds := make([]tokenrecord.TokenId, len(elements))
	for i, e := range elements {
		tokenIds[i] = tokenrecord.TokenId(e.Key)
	}
	return tokenIds, nil
}

// ListByOwner - token ids of one owner in ascending order
func (r *Registry) ListByOwner(owner tokenrecord.Principal, startAfter tokenrecord.TokenId, count int) ([]tokenrecord.TokenId, error) {

	if err := owner.Validate(); nil != err {
		return nil, err
	}

	ownerBytes := []byte(owner)
	cursor := r.store.OwnerTokens.NewFetchCursor()
	if "" == startAfter {
		// seek to the first possible key of this owner
		cursor.Seek(append(ownerBytes, storage.KeySeparator))
	} else {
		cursor.SeekAfter(ownerTokenKey(owner, startAfter))
	}

	elements, err := cursor.Fetch(count)
	if nil != err {
		return nil, err
	}

	tokenIds := make([]tokenrecord.TokenId, 0, len(elements))
loop:
	for _, e := range elements {
		keyOwner, tokenId, err := storage.SplitKey(e.Key)
		if nil != err {
			return nil, err
		}
		if !bytes.Equal(ownerBytes, keyOwner) {
			break loop
		}
		tokenIds = append(tokenIds, tokenrecord.TokenId(tokenId))
	}
	return tokenIds, nil
}

// ListOperators - operator approvals of one owner in ascending order
//
// expiry filtering is left to the caller, which holds the block
// reference
func (r *Registry) ListOperators(owner tokenrecord.Principal, startAfter tokenrecord.Principal, count int) ([]tokenrecord.Approval, error) {

	if err := owner.Validate(); nil != err {
		return nil, err
	}

	ownerBytes := []byte(owner)
	cursor := r.store.Operators.NewFetchCursor()
	if "" == startAfter {
		cursor.Seek(append(ownerBytes, storage.KeySeparator))
	} else {
		cursor.SeekAfter(operatorKey(owner, startAfter))
	}

	elements, err := cursor.Fetch(count)
	if nil != err {
		return nil, err
	}

	approvals := make([]tokenrecord.Approval, 0, len(elements))
loop:
	for _, e := range elements {
		keyOwner, _, err := storage.SplitKey(e.Key)
		if nil != err {
			return nil, err
		}
		if !bytes.Equal(ownerBytes, keyOwner) {
			break loop
		}
		approval := tokenrecord.Approval{}
		if err := tokenrecord.Unpack(e.Value, &approval); nil != err {
			return nil, err
		}
		approvals = append(approvals, approval)
	}
	return approvals, nil
}

// compound key: owner ++ NUL ++ token id
func ownerTokenKey(owner tokenrecord.Principal, tokenId tokenrecord.TokenId) []byte {
	return storage.JoinKey([]byte(owner), []byte(tokenId))
}
