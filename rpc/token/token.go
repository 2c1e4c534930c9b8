// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package token

import (
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"

	"github.com/licium/liciumd/contract"
	"github.com/licium/liciumd/rpc/ratelimit"
	"github.com/licium/liciumd/tokenrecord"
)

const (
	rateLimitToken = 200
	rateBurstToken = 100

	// limit for paginated replies, matching the query layer's clamp
	maximumTokenList = 30
)

// Token - RPC service for registry queries
type Token struct {
	Log      *logger.L
	Limiter  *rate.Limiter
	Contract *contract.Contract
}

// New - create the query service
func New(log *logger.L, c *contract.Contract) *Token {
	return &Token{
		Log:      log,
		Limiter:  rate.NewLimiter(rateLimitToken, rateBurstToken),
		Contract: c,
	}
}

// GetArguments - arguments for Token.Get
type GetArguments struct {
	TokenId string `json:"token_id"`
}

// GetReply - result from Token.Get
type GetReply struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Image       string `json:"image,omitempty"`
}

// Get - descriptive metadata of one token
func (t *Token) Get(arguments *GetArguments, reply *GetReply) error {

	if err := ratelimit.Limit(t.Limiter); nil != err {
		return err
	}

	response, err := t.Contract.Query(contract.HostEnv(), contract.QueryMsg{
		NftInfo: &contract.NftInfoMsg{TokenId: tokenrecord.TokenId(arguments.TokenId)},
	})
	if nil != err {
		return err
	}

	reply.Name = response.NftInfo.Name
	reply.Description = response.NftInfo.Description
	reply.Image = response.NftInfo.Image
	return nil
}

// OwnerArguments - arguments for Token.Owner
type OwnerArguments struct {
	TokenId        string `json:"token_id"`
	IncludeExpired bool   `json:"include_expired,omitempty"`
}

// OwnerReply - result from Token.Owner
type OwnerReply struct {
	Owner     string                 `json:"owner"`
	Approvals []tokenrecord.Approval `json:"approvals"`
}

// Owner - owner and approvals of one token
func (t *Token) Owner(arguments *OwnerArguments, reply *OwnerReply) error {

	if err := ratelimit.Limit(t.Limiter); nil != err {
		return err
	}

	response, err := t.Contract.Query(contract.HostEnv(), contract.QueryMsg{
		OwnerOf: &contract.OwnerOfMsg{
			TokenId:        tokenrecord.TokenId(arguments.TokenId),
			IncludeExpired: arguments.IncludeExpired,
		},
	})
	if nil != err {
		return err
	}

	reply.Owner = string(response.OwnerOf.Owner)
	reply.Approvals = response.OwnerOf.Approvals
	return nil
}

// ListArguments - arguments for Token.List and Token.All
type ListArguments struct {
	Owner      string `json:"owner,omitempty"`
	StartAfter string `json:"start_after,omitempty"`
	Count      int    `json:"count"`
}

// ListReply - result from Token.List and Token.All
type ListReply struct {
	Tokens []tokenrecord.TokenId `json:"tokens"`
}

// List - token ids of one owner, ascending, paginated
func (t *Token) List(arguments *ListArguments, reply *ListReply) error {

	if err := ratelimit.LimitN(t.Limiter, arguments.Count, maximumTokenList); nil != err {
		return err
	}

	response, err := t.Contract.Query(contract.HostEnv(), contract.QueryMsg{
		Tokens: &contract.TokensMsg{
			Owner:      tokenrecord.Principal(arguments.Owner),
			StartAfter: tokenrecord.TokenId(arguments.StartAfter),
			Limit:      arguments.Count,
		},
	})
	if nil != err {
		return err
	}

	reply.Tokens = response.Tokens.Tokens
	return nil
}

// All - token ids of the whole registry, ascending, paginated
func (t *Token) All(arguments *ListArguments, reply *ListReply) error {

	if err := ratelimit.LimitN(t.Limiter, arguments.Count, maximumTokenList); nil != err {
		return err
	}

	response, err := t.Contract.Query(contract.HostEnv(), contract.QueryMsg{
		AllTokens: &contract.AllTokensMsg{
			StartAfter: tokenrecord.TokenId(arguments.StartAfter),
			Limit:      arguments.Count,
		},
	})
	if nil != err {
		return err
	}

	reply.Tokens = response.Tokens.Tokens
	return nil
}

// ResolveArguments - arguments for Token.Resolve
type ResolveArguments struct {
	Fingerprint string `json:"iscc"`
}

// ResolveReply - result from Token.Resolve
//
// found is false for an unregistered fingerprint; this is not an
// error
type ResolveReply struct {
	Found  bool                      `json:"found"`
	Record *contract.ResolveResponse `json:"record,omitempty"`
}

// Resolve - full composite record behind a content fingerprint
func (t *Token) Resolve(arguments *ResolveArguments, reply *ResolveReply) error {

	if err := ratelimit.Limit(t.Limiter); nil != err {
		return err
	}

	response, err := t.Contract.Query(contract.HostEnv(), contract.QueryMsg{
		ResolveFingerprint: &contract.ResolveFingerprintMsg{
			Fingerprint: arguments.Fingerprint,
		},
	})
	if nil != err {
		return err
	}

	reply.Found = nil != response.ResolveFingerprint
	reply.Record = response.ResolveFingerprint
	return nil
}
