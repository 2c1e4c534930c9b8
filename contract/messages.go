// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package contract

import (
	"github.com/licium/liciumd/currency"
	"github.com/licium/liciumd/tokenrecord"
)

// Env - the execution environment supplied with every command
type Env struct {
	Block tokenrecord.BlockInfo `json:"block"`
}

// MessageInfo - sender and attached funds of a command
type MessageInfo struct {
	Sender tokenrecord.Principal `json:"sender"`
	Funds  []currency.Coin       `json:"funds"`
}

// InstantiateMsg - set up the registry metadata
type InstantiateMsg struct {
	Name   string `json:"name"`
	Symbol string `json:"symbol"`
}

// MintMsg - create a new token for a fingerprinted asset
type MintMsg struct {
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

// BuyLicenseMsg - purchase a usage license for a token
type BuyLicenseMsg struct {
	TokenId tokenrecord.TokenId `json:"token_id"`
}

// TransferMsg - delegated: move a token to another account
type TransferMsg struct {
	Recipient tokenrecord.Principal `json:"recipient"`
	TokenId   tokenrecord.TokenId   `json:"token_id"`
}

// SendMsg - delegated: transfer to a contract and trigger an action
type SendMsg struct {
	Contract tokenrecord.Principal `json:"contract"`
	TokenId  tokenrecord.TokenId   `json:"token_id"`
	Msg      []byte                `json:"msg,omitempty"`
}

// ApproveMsg - delegated: allow a spender to act on one token
type ApproveMsg struct {
	Spender tokenrecord.Principal `json:"spender"`
	TokenId tokenrecord.TokenId   `json:"token_id"`
	Expires *tokenrecord.Expiry   `json:"expires,omitempty"`
}

// RevokeMsg - delegated: remove a spender approval
type RevokeMsg struct {
	Spender tokenrecord.Principal `json:"spender"`
	TokenId tokenrecord.TokenId   `json:"token_id"`
}

// ApproveAllMsg - delegated: allow an operator on all tokens
type ApproveAllMsg struct {
	Operator tokenrecord.Principal `json:"operator"`
	Expires  *tokenrecord.Expiry   `json:"expires,omitempty"`
}

// RevokeAllMsg - delegated: remove an operator approval
type RevokeAllMsg struct {
	Operator tokenrecord.Principal `json:"operator"`
}

// ExecuteMsg - the closed set of commands
//
// exactly one variant must be set
type ExecuteMsg struct {
	Mint       *MintMsg       `json:"mint,omitempty"`
	BuyLicense *BuyLicenseMsg `json:"buy_license,omitempty"`
	Transfer   *TransferMsg   `json:"transfer_nft,omitempty"`
	Send       *SendMsg       `json:"send_nft,omitempty"`
	Approve    *ApproveMsg    `json:"approve,omitempty"`
	Revoke     *RevokeMsg     `json:"revoke,omitempty"`
	ApproveAll *ApproveAllMsg `json:"approve_all,omitempty"`
	RevokeAll  *RevokeAllMsg  `json:"revoke_all,omitempty"`
}

// query messages

// NftInfoMsg - metadata of one token
type NftInfoMsg struct {
	TokenId tokenrecord.TokenId `json:"token_id"`
}

// OwnerOfMsg - owner and approvals of one token
type OwnerOfMsg struct {
	TokenId        tokenrecord.TokenId `json:"token_id"`
	IncludeExpired bool                `json:"include_expired,omitempty"`
}

// AllNftInfoMsg - combined metadata and ownership
type AllNftInfoMsg struct {
	TokenId        tokenrecord.TokenId `json:"token_id"`
	IncludeExpired bool                `json:"include_expired,omitempty"`
}

// ApprovedForAllMsg - paginated operator approvals of an owner
type ApprovedForAllMsg struct {
	Owner          tokenrecord.Principal `json:"owner"`
	IncludeExpired bool                  `json:"include_expired,omitempty"`
	StartAfter     tokenrecord.Principal `json:"start_after,omitempty"`
	Limit          int                   `json:"limit,omitempty"`
}

// TokensMsg - paginated token ids of an owner
type TokensMsg struct {
	Owner      tokenrecord.Principal `json:"owner"`
	StartAfter tokenrecord.TokenId   `json:"start_after,omitempty"`
	Limit      int                   `json:"limit,omitempty"`
}

// AllTokensMsg - paginated token ids of the whole registry
type AllTokensMsg struct {
	StartAfter tokenrecord.TokenId `json:"start_after,omitempty"`
	Limit      int                 `json:"limit,omitempty"`
}

// ResolveFingerprintMsg - full record lookup by content fingerprint
type ResolveFingerprintMsg struct {
	Fingerprint string `json:"iscc"`
}

// QueryMsg - the closed set of queries
//
// exactly one variant must be set
type QueryMsg struct {
	ContractInfo       *struct{}              `json:"contract_info,omitempty"`
	NftInfo            *NftInfoMsg            `json:"nft_info,omitempty"`
	OwnerOf            *OwnerOfMsg            `json:"owner_of,omitempty"`
	AllNftInfo         *AllNftInfoMsg         `json:"all_nft_info,omitempty"`
	ApprovedForAll     *ApprovedForAllMsg     `json:"approved_for_all,omitempty"`
	NumTokens          *struct{}              `json:"num_tokens,omitempty"`
	Tokens             *TokensMsg             `json:"tokens,omitempty"`
	AllTokens          *AllTokensMsg          `json:"all_tokens,omitempty"`
	ResolveFingerprint *ResolveFingerprintMsg `json:"resolve_fingerprint,omitempty"`
}
