// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package licensing - licensing terms and the license ledger
//
// terms are set once at mint; the ledger keeps one record per
// (licensee, token) pair, overwritten by a later purchase
package licensing

import (
	"github.com/licium/liciumd/fault"
	"github.com/licium/liciumd/storage"
	"github.com/licium/liciumd/tokenrecord"
)

// Licensing - access to the terms and ledger pools
type Licensing struct {
	store *storage.Store
}

// New - attach to an opened store
func New(store *storage.Store) *Licensing {
	return &Licensing{
		store: store,
	}
}

// SetTerms - stage the licensing terms for a token
//
// called at mint only; overwrite semantics
func (l *Licensing) SetTerms(trx *storage.Transaction, terms *tokenrecord.LicensingTerms) error {

	if err := terms.TokenId.Validate(); nil != err {
		return err
	}
	if err := terms.Price.Validate(); nil != err {
		return err
	}

	data, err := tokenrecord.Pack(terms)
	if nil != err {
		return err
	}
	trx.Put(l.store.Licensing, []byte(terms.TokenId), data)
	return nil
}

// GetTerms - fetch the licensing terms for a token
//
// fails with LicensingTermsNotFound
func (l *Licensing) GetTerms(tokenId tokenrecord.TokenId) (*tokenrecord.LicensingTerms, error) {
	data := l.store.Licensing.Get([]byte(tokenId))
	if nil == data {
		return nil, fault.LicensingTermsNotFound
	}
	terms := &tokenrecord.LicensingTerms{}
	if err := tokenrecord.Unpack(data, terms); nil != err {
		return nil, err
	}
	return terms, nil
}

// Record - stage a license record for a licensee
//
// unconditional upsert keyed licensee ++ token id
func (l *Licensing) Record(trx *storage.Transaction, license *tokenrecord.LicenseRecord) error {

	if err := license.TokenId.Validate(); nil != err {
		return err
	}
	if err := license.Licensee.Validate(); nil != err {
		return err
	}

	data, err := tokenrecord.Pack(license)
	if nil != err {
		return err
	}
	trx.Put(l.store.Licenses, licenseKey(license.Licensee, license.TokenId), data)
	return nil
}

// GetLicense - fetch the current license of a licensee for a token
//
// nil, nil when no license has been purchased
func (l *Licensing) GetLicense(licensee tokenrecord.Principal, tokenId tokenrecord.TokenId) (*tokenrecord.LicenseRecord, error) {
	data := l.store.Licenses.Get(licenseKey(licensee, tokenId))
	if nil == data {
		return nil, nil
	}
	license := &tokenrecord.LicenseRecord{}
	if err := tokenrecord.Unpack(data, license); nil != err {
		return nil, err
	}
	return license, nil
}

// compound key: licensee ++ NUL ++ token id
func licenseKey(licensee tokenrecord.Principal, tokenId tokenrecord.TokenId) []byte {
	return storage.JoinKey([]byte(licensee), []byte(tokenId))
}
