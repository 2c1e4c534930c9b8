// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package registry

import (
	"github.com/licium/liciumd/fault"
	"github.com/licium/liciumd/storage"
	"github.com/licium/liciumd/tokenrecord"
)

// Authority - the mutation surface exposed to the external ownership
// module
//
// the module decides who may transfer or approve; the registry only
// applies the resulting owner and approval changes and keeps its
// owner index consistent
type Authority struct {
	registry *Registry
}

// Authority - obtain the mutation surface of a registry
func (r *Registry) Authority() *Authority {
	return &Authority{
		registry: r,
	}
}

// TransferOwnership - move a token to a new owner
//
// clears all single-token approvals, as a transfer invalidates them
func (a *Authority) TransferOwnership(trx *storage.Transaction, tokenId tokenrecord.TokenId, newOwner tokenrecord.Principal) error {

	if err := newOwner.Validate(); nil != err {
		return err
	}

	record, err := a.get(trx, tokenId)
	if nil != err {
		return err
	}

	trx.Delete(a.registry.store.OwnerTokens, ownerTokenKey(record.Owner, tokenId))

	record.Owner = newOwner
	record.Approvals = nil

	if err := a.put(trx, tokenId, record); nil != err {
		return err
	}
	trx.Put(a.registry.store.OwnerTokens, ownerTokenKey(newOwner, tokenId), nil)

	return nil
}

// SetApproval - add or replace a spender approval on a token
func (a *Authority) SetApproval(trx *storage.Transaction, tokenId tokenrecord.TokenId, spender tokenrecord.Principal, expires *tokenrecord.Expiry) error {

	if err := spender.Validate(); nil != err {
		return err
	}

	record, err := a.get(trx, tokenId)
	if nil != err {
		return err
	}

	approvals := make([]tokenrecord.Approval, 0, len(record.Approvals)+1)
	for _, approval := range record.Approvals {
		if approval.Spender != spender {
			approvals = append(approvals, approval)
		}
	}
	record.Approvals = append(approvals, tokenrecord.Approval{
		Spender: spender,
		Expires: expires,
	})

	return a.put(trx, tokenId, record)
}

// RemoveApproval - remove a spender approval from a token
func (a *Authority) RemoveApproval(trx *storage.Transaction, tokenId tokenrecord.TokenId, spender tokenrecord.Principal) error {

	record, err := a.get(trx, tokenId)
	if nil != err {
		return err
	}

	approvals := record.Approvals[:0]
	for _, approval := range record.Approvals {
		if approval.Spender != spender {
			approvals = append(approvals, approval)
		}
	}
	record.Approvals = approvals

	return a.put(trx, tokenId, record)
}

// SetOperator - approve an operator for all of an owner's tokens
func (a *Authority) SetOperator(trx *storage.Transaction, owner tokenrecord.Principal, operator tokenrecord.Principal, expires *tokenrecord.Expiry) error {

	if err := owner.Validate(); nil != err {
		return err
	}
	if err := operator.Validate(); nil != err {
		return err
	}

	data, err := tokenrecord.Pack(&tokenrecord.Approval{
		Spender: operator,
		Expires: expires,
	})
	if nil != err {
		return err
	}
	trx.Put(a.registry.store.Operators, operatorKey(owner, operator), data)
	return nil
}

// RemoveOperator - revoke an operator approval
func (a *Authority) RemoveOperator(trx *storage.Transaction, owner tokenrecord.Principal, operator tokenrecord.Principal) error {
	trx.Delete(a.registry.store.Operators, operatorKey(owner, operator))
	return nil
}

// Record - fetch a token record observing staged writes
//
// the ownership module reads through this when checking who may act
// on a token, so that a transfer earlier in the same command is
// already visible
func (a *Authority) Record(trx *storage.Transaction, tokenId tokenrecord.TokenId) (*tokenrecord.TokenRecord, error) {
	return a.get(trx, tokenId)
}

// Operator - fetch one operator approval, nil if not present
func (a *Authority) Operator(trx *storage.Transaction, owner tokenrecord.Principal, operator tokenrecord.Principal) (*tokenrecord.Approval, error) {
	data := trx.Get(a.registry.store.Operators, operatorKey(owner, operator))
	if nil == data {
		return nil, nil
	}
	approval := &tokenrecord.Approval{}
	if err := tokenrecord.Unpack(data, approval); nil != err {
		return nil, err
	}
	return approval, nil
}

// fetch a record observing staged writes
func (a *Authority) get(trx *storage.Transaction, tokenId tokenrecord.TokenId) (*tokenrecord.TokenRecord, error) {
	data := trx.Get(a.registry.store.Tokens, []byte(tokenId))
	if nil == data {
		return nil, fault.TokenNotFound
	}
	record := &tokenrecord.TokenRecord{}
	if err := tokenrecord.Unpack(data, record); nil != err {
		return nil, err
	}
	return record, nil
}

func (a *Authority) put(trx *storage.Transaction, tokenId tokenrecord.TokenId, record *tokenrecord.TokenRecord) error {
	data, err := tokenrecord.Pack(record)
	if nil != err {
		return err
	}
	trx.Put(a.registry.store.Tokens, []byte(tokenId), data)
	return nil
}

// compound key: owner ++ NUL ++ operator
func operatorKey(owner tokenrecord.Principal, operator tokenrecord.Principal) []byte {
	return storage.JoinKey([]byte(owner), []byte(operator))
}
