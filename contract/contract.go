// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package contract

import (
	"github.com/bitmark-inc/logger"

	"github.com/licium/liciumd/contentindex"
	"github.com/licium/liciumd/fault"
	"github.com/licium/liciumd/licensing"
	"github.com/licium/liciumd/registry"
	"github.com/licium/liciumd/storage"
	"github.com/licium/liciumd/tokenrecord"
)

// contract info is a fixed row in the contract pool
var infoKey = []byte("info")

// OwnershipModule - the external collaborator handling transfer and
// approval commands
//
// it receives the command transaction so that its writes, applied
// through the registry authority, commit together with the command
type OwnershipModule interface {
	Transfer(trx *storage.Transaction, env Env, info MessageInfo, msg *TransferMsg) (*Response, error)
	Send(trx *storage.Transaction, env Env, info MessageInfo, msg *SendMsg) (*Response, error)
	Approve(trx *storage.Transaction, env Env, info MessageInfo, msg *ApproveMsg) (*Response, error)
	Revoke(trx *storage.Transaction, env Env, info MessageInfo, msg *RevokeMsg) (*Response, error)
	ApproveAll(trx *storage.Transaction, env Env, info MessageInfo, msg *ApproveAllMsg) (*Response, error)
	RevokeAll(trx *storage.Transaction, env Env, info MessageInfo, msg *RevokeAllMsg) (*Response, error)
}

// Contract - the registry command processor
type Contract struct {
	log       *logger.L
	store     *storage.Store
	registry  *registry.Registry
	index     *contentindex.Index
	licensing *licensing.Licensing
	ownership OwnershipModule
}

// New - wire the workflows to an opened store
func New(log *logger.L, store *storage.Store, ownership OwnershipModule) *Contract {
	return &Contract{
		log:       log,
		store:     store,
		registry:  registry.New(store),
		index:     contentindex.New(store),
		licensing: licensing.New(store),
		ownership: ownership,
	}
}

// Registry - the registry behind the contract
//
// exposed so the host can hand the authority surface to the ownership
// module
func (c *Contract) Registry() *registry.Registry {
	return c.registry
}

// Instantiate - store the registry metadata
func (c *Contract) Instantiate(env Env, info MessageInfo, msg InstantiateMsg) (*Response, error) {

	if "" == msg.Name || "" == msg.Symbol {
		return nil, fault.MissingParameters
	}

	// one shot: a restarted host must not clobber the stored metadata
	if nil != c.store.Contract.Get(infoKey) {
		return nil, fault.AlreadyInitialised
	}

	data, err := tokenrecord.Pack(&tokenrecord.ContractInfo{
		Name:   msg.Name,
		Symbol: msg.Symbol,
	})
	if nil != err {
		return nil, err
	}

	trx := c.store.Begin()
	trx.Put(c.store.Contract, infoKey, data)
	if err := trx.Commit(); nil != err {
		return nil, err
	}

	c.log.Infof("instantiate: name: %q  symbol: %q", msg.Name, msg.Symbol)
	return &Response{}, nil
}

// Execute - dispatch one command to exactly one workflow
//
// all writes of the command are staged in one transaction and commit
// together; any failure discards them all
func (c *Contract) Execute(env Env, info MessageInfo, msg ExecuteMsg) (*Response, error) {

	trx := c.store.Begin()

	response, err := c.dispatch(trx, env, info, msg)
	if nil != err {
		trx.Abort()
		return nil, err
	}

	if err := trx.Commit(); nil != err {
		return nil, err
	}
	return response, nil
}

func (c *Contract) dispatch(trx *storage.Transaction, env Env, info MessageInfo, msg ExecuteMsg) (*Response, error) {
	switch {
	case nil != msg.Mint:
		return c.executeMint(trx, env, info, msg.Mint)
	case nil != msg.BuyLicense:
		return c.executeBuyLicense(trx, env, info, msg.BuyLicense)
	case nil != msg.Transfer:
		return c.ownership.Transfer(trx, env, info, msg.Transfer)
	case nil != msg.Send:
		return c.ownership.Send(trx, env, info, msg.Send)
	case nil != msg.Approve:
		return c.ownership.Approve(trx, env, info, msg.Approve)
	case nil != msg.Revoke:
		return c.ownership.Revoke(trx, env, info, msg.Revoke)
	case nil != msg.ApproveAll:
		return c.ownership.ApproveAll(trx, env, info, msg.ApproveAll)
	case nil != msg.RevokeAll:
		return c.ownership.RevokeAll(trx, env, info, msg.RevokeAll)
	default:
		return nil, fault.InvalidMessage
	}
}

// contractInfo - read the stored registry metadata
func (c *Contract) contractInfo() (*tokenrecord.ContractInfo, error) {
	data := c.store.Contract.Get(infoKey)
	if nil == data {
		return nil, fault.ContractInfoNotFound
	}
	contractInfo := &tokenrecord.ContractInfo{}
	if err := tokenrecord.Unpack(data, contractInfo); nil != err {
		return nil, err
	}
	return contractInfo, nil
}
