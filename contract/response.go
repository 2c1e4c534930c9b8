// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package contract

import (
	"github.com/licium/liciumd/currency"
	"github.com/licium/liciumd/tokenrecord"
)

// BankMsg - an instruction for the host to move funds
type BankMsg struct {
	ToAddress tokenrecord.Principal `json:"to_address"`
	Amount    []currency.Coin       `json:"amount"`
}

// Attribute - one key/value of an emitted event
type Attribute struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// Response - the observable outcome of a successful command
//
// messages are instructions to the execution host; attributes are
// event data for external indexers
type Response struct {
	Messages   []BankMsg   `json:"messages,omitempty"`
	Attributes []Attribute `json:"attributes,omitempty"`
}

// AddAttribute - append one event attribute
func (response *Response) AddAttribute(key string, value string) *Response {
	response.Attributes = append(response.Attributes, Attribute{
		Key:   key,
		Value: value,
	})
	return response
}

// query responses

// NftInfoResponse - descriptive metadata of one token
type NftInfoResponse struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Image       string `json:"image,omitempty"`
}

// OwnerOfResponse - owner and live approvals of one token
type OwnerOfResponse struct {
	Owner     tokenrecord.Principal  `json:"owner"`
	Approvals []tokenrecord.Approval `json:"approvals"`
}

// AllNftInfoResponse - combined ownership and metadata
type AllNftInfoResponse struct {
	Access OwnerOfResponse `json:"access"`
	Info   NftInfoResponse `json:"info"`
}

// ApprovedForAllResponse - operator approvals of an owner
type ApprovedForAllResponse struct {
	Operators []tokenrecord.Approval `json:"operators"`
}

// NumTokensResponse - total number of minted tokens
type NumTokensResponse struct {
	Count uint64 `json:"count"`
}

// TokensResponse - a page of token ids
type TokensResponse struct {
	Tokens []tokenrecord.TokenId `json:"tokens"`
}

// ResolveResponse - the composite record behind a fingerprint
//
// joins the token record, content record and licensing terms
type ResolveResponse struct {
	TokenId      tokenrecord.TokenId   `json:"token_id"`
	Owner        tokenrecord.Principal `json:"owner"`
	Name         string                `json:"name"`
	Description  string                `json:"description,omitempty"`
	Image        string                `json:"image,omitempty"`
	Fingerprint  string                `json:"iscc"`
	MetaHash     string                `json:"meta_hash,omitempty"`
	DataHash     string                `json:"data_hash,omitempty"`
	InstanceHash string                `json:"instance_hash,omitempty"`
	TopHash      string                `json:"tophash"`
	LicenseURI   string                `json:"license_uri"`
	LicensePrice currency.Coin         `json:"license_price"`
}

// QueryResponse - the closed set of query results
//
// exactly one variant is set, mirroring the query message
type QueryResponse struct {
	ContractInfo       *tokenrecord.ContractInfo `json:"contract_info,omitempty"`
	NftInfo            *NftInfoResponse          `json:"nft_info,omitempty"`
	OwnerOf            *OwnerOfResponse          `json:"owner_of,omitempty"`
	AllNftInfo         *AllNftInfoResponse       `json:"all_nft_info,omitempty"`
	ApprovedForAll     *ApprovedForAllResponse   `json:"approved_for_all,omitempty"`
	NumTokens          *NumTokensResponse        `json:"num_tokens,omitempty"`
	Tokens             *TokensResponse           `json:"tokens,omitempty"`
	ResolveFingerprint *ResolveResponse          `json:"resolve_fingerprint,omitempty"`
}
