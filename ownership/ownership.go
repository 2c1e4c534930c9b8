// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package ownership - transfer and approval workflows
//
// decides who may act on a token and applies the outcome through the
// registry authority; the registry itself never checks permissions
package ownership

import (
	"github.com/bitmark-inc/logger"

	"github.com/licium/liciumd/contract"
	"github.com/licium/liciumd/fault"
	"github.com/licium/liciumd/registry"
	"github.com/licium/liciumd/storage"
	"github.com/licium/liciumd/tokenrecord"
)

// Module - the ownership collaborator wired into the command dispatch
type Module struct {
	log       *logger.L
	authority *registry.Authority
}

// New - bind the workflows to a registry's mutation surface
func New(log *logger.L, r *registry.Registry) *Module {
	return &Module{
		log:       log,
		authority: r.Authority(),
	}
}

// Transfer - move a token to a new owner
func (m *Module) Transfer(trx *storage.Transaction, env contract.Env, info contract.MessageInfo, msg *contract.TransferMsg) (*contract.Response, error) {

	if err := m.checkCanSend(trx, env, info.Sender, msg.TokenId); nil != err {
		return nil, err
	}
	if err := m.authority.TransferOwnership(trx, msg.TokenId, msg.Recipient); nil != err {
		return nil, err
	}

	m.log.Infof("transfer: token: %q  to: %q", msg.TokenId, msg.Recipient)

	response := &contract.Response{}
	response.AddAttribute("action", "transfer_nft")
	response.AddAttribute("sender", string(info.Sender))
	response.AddAttribute("recipient", string(msg.Recipient))
	response.AddAttribute("token_id", string(msg.TokenId))
	return response, nil
}

// Send - transfer to a contract account
//
// the receive hook is carried in the event attributes for the host to
// deliver; this registry does not execute foreign code
func (m *Module) Send(trx *storage.Transaction, env contract.Env, info contract.MessageInfo, msg *contract.SendMsg) (*contract.Response, error) {

	if err := m.checkCanSend(trx, env, info.Sender, msg.TokenId); nil != err {
		return nil, err
	}
	if err := m.authority.TransferOwnership(trx, msg.TokenId, msg.Contract); nil != err {
		return nil, err
	}

	m.log.Infof("send: token: %q  to: %q", msg.TokenId, msg.Contract)

	response := &contract.Response{}
	response.AddAttribute("action", "send_nft")
	response.AddAttribute("sender", string(info.Sender))
	response.AddAttribute("recipient", string(msg.Contract))
	response.AddAttribute("token_id", string(msg.TokenId))
	if 0 != len(msg.Msg) {
		response.AddAttribute("msg", string(msg.Msg))
	}
	return response, nil
}

// Approve - grant a spender approval on one token
func (m *Module) Approve(trx *storage.Transaction, env contract.Env, info contract.MessageInfo, msg *contract.ApproveMsg) (*contract.Response, error) {

	if msg.Expires.IsExpired(env.Block) {
		return nil, fault.InvalidExpiry
	}
	if err := m.checkCanApprove(trx, env, info.Sender, msg.TokenId); nil != err {
		return nil, err
	}
	if err := m.authority.SetApproval(trx, msg.TokenId, msg.Spender, msg.Expires); nil != err {
		return nil, err
	}

	response := &contract.Response{}
	response.AddAttribute("action", "approve")
	response.AddAttribute("sender", string(info.Sender))
	response.AddAttribute("spender", string(msg.Spender))
	response.AddAttribute("token_id", string(msg.TokenId))
	return response, nil
}

// Revoke - remove a spender approval from one token
func (m *Module) Revoke(trx *storage.Transaction, env contract.Env, info contract.MessageInfo, msg *contract.RevokeMsg) (*contract.Response, error) {

	if err := m.checkCanApprove(trx, env, info.Sender, msg.TokenId); nil != err {
		return nil, err
	}
	if err := m.authority.RemoveApproval(trx, msg.TokenId, msg.Spender); nil != err {
		return nil, err
	}

	response := &contract.Response{}
	response.AddAttribute("action", "revoke")
	response.AddAttribute("sender", string(info.Sender))
	response.AddAttribute("spender", string(msg.Spender))
	response.AddAttribute("token_id", string(msg.TokenId))
	return response, nil
}

// ApproveAll - grant an operator approval over all the sender's tokens
func (m *Module) ApproveAll(trx *storage.Transaction, env contract.Env, info contract.MessageInfo, msg *contract.ApproveAllMsg) (*contract.Response, error) {

	if msg.Expires.IsExpired(env.Block) {
		return nil, fault.InvalidExpiry
	}
	if err := m.authority.SetOperator(trx, info.Sender, msg.Operator, msg.Expires); nil != err {
		return nil, err
	}

	response := &contract.Response{}
	response.AddAttribute("action", "approve_all")
	response.AddAttribute("sender", string(info.Sender))
	response.AddAttribute("operator", string(msg.Operator))
	return response, nil
}

// RevokeAll - remove an operator approval
func (m *Module) RevokeAll(trx *storage.Transaction, env contract.Env, info contract.MessageInfo, msg *contract.RevokeAllMsg) (*contract.Response, error) {

	if err := m.authority.RemoveOperator(trx, info.Sender, msg.Operator); nil != err {
		return nil, err
	}

	response := &contract.Response{}
	response.AddAttribute("action", "revoke_all")
	response.AddAttribute("sender", string(info.Sender))
	response.AddAttribute("operator", string(msg.Operator))
	return response, nil
}

// owner, an unexpired spender approval, or an unexpired operator
// approval may move a token
func (m *Module) checkCanSend(trx *storage.Transaction, env contract.Env, sender tokenrecord.Principal, tokenId tokenrecord.TokenId) error {

	record, err := m.authority.Record(trx, tokenId)
	if nil != err {
		return err
	}
	if record.Owner == sender {
		return nil
	}
	for _, approval := range record.Approvals {
		if approval.Spender == sender && !approval.Expires.IsExpired(env.Block) {
			return nil
		}
	}
	return m.checkOperator(trx, env, record.Owner, sender)
}

// only the owner or an unexpired operator may change approvals
func (m *Module) checkCanApprove(trx *storage.Transaction, env contract.Env, sender tokenrecord.Principal, tokenId tokenrecord.TokenId) error {

	record, err := m.authority.Record(trx, tokenId)
	if nil != err {
		return err
	}
	if record.Owner == sender {
		return nil
	}
	return m.checkOperator(trx, env, record.Owner, sender)
}

func (m *Module) checkOperator(trx *storage.Transaction, env contract.Env, owner tokenrecord.Principal, operator tokenrecord.Principal) error {

	approval, err := m.authority.Operator(trx, owner, operator)
	if nil != err {
		return err
	}
	if nil == approval || approval.Expires.IsExpired(env.Block) {
		return fault.Unauthorized
	}
	return nil
}
