// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package contentindex - bijective mapping from content fingerprint
// to token
//
// one token per asset: a fingerprint can be linked exactly once and
// is never updated or unlinked
package contentindex

import (
	"github.com/licium/liciumd/fault"
	"github.com/licium/liciumd/storage"
	"github.com/licium/liciumd/tokenrecord"
)

// Index - access to the content pool
type Index struct {
	store *storage.Store
}

// New - attach an index to an opened store
func New(store *storage.Store) *Index {
	return &Index{
		store: store,
	}
}

// Link - stage the content record for a fingerprint
//
// fails with ContentAlreadyRegistered if the fingerprint is taken,
// observing writes already staged in the transaction
func (ix *Index) Link(trx *storage.Transaction, record *tokenrecord.ContentRecord) error {

	if err := tokenrecord.ValidateFingerprint(record.Fingerprint); nil != err {
		return err
	}
	if err := record.TokenId.Validate(); nil != err {
		return err
	}

	key := []byte(record.Fingerprint)
	if trx.Has(ix.store.Contents, key) {
		return fault.ContentAlreadyRegistered
	}

	data, err := tokenrecord.Pack(record)
	if nil != err {
		return err
	}
	trx.Put(ix.store.Contents, key, data)
	return nil
}

// Resolve - look up the content record for a fingerprint
//
// absence is a normal outcome for queries: returns nil, nil
func (ix *Index) Resolve(fingerprint string) (*tokenrecord.ContentRecord, error) {
	data := ix.store.Contents.Get([]byte(fingerprint))
	if nil == data {
		return nil, nil
	}
	record := &tokenrecord.ContentRecord{}
	if err := tokenrecord.Unpack(data, record); nil != err {
		return nil, err
	}
	return record, nil
}
