// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package tokenrecord

import (
	"encoding/json"

	"github.com/licium/liciumd/currency"
	"github.com/licium/liciumd/fault"
)

// Approval - permission for a spender to act on a single token
type Approval struct {
	Spender Principal `json:"spender"`
	Expires *Expiry   `json:"expires,omitempty"`
}

// TokenRecord - the canonical token record
//
// created once at mint; owner and approvals are mutated only through
// the registry authority on behalf of the ownership module
type TokenRecord struct {
	Owner       Principal  `json:"owner"`
	Name        string     `json:"name"`
	Description string     `json:"description,omitempty"`
	Image       string     `json:"image,omitempty"`
	Approvals   []Approval `json:"approvals"`
}

// ContentRecord - content fingerprint linkage and derived hashes
//
// created at mint, never mutated, never deleted
type ContentRecord struct {
	TokenId      TokenId `json:"token_id"`
	Fingerprint  string  `json:"iscc"`
	MetaHash     string  `json:"meta_hash,omitempty"`
	DataHash     string  `json:"data_hash,omitempty"`
	InstanceHash string  `json:"instance_hash,omitempty"`
	TopHash      string  `json:"tophash"`
}

// LicensingTerms - price and terms for licensing a token
type LicensingTerms struct {
	TokenId    TokenId       `json:"token_id"`
	LicenseURI string        `json:"license_uri"`
	Price      currency.Coin `json:"price"`
}

// LicenseRecord - the current license entitlement of a licensee
//
// a later purchase by the same licensee for the same token overwrites
// this record; it is not a transaction log
type LicenseRecord struct {
	TokenId  TokenId       `json:"token_id"`
	Licensee Principal     `json:"licensee"`
	Price    currency.Coin `json:"price"`
}

// ContractInfo - top level metadata of the registry
type ContractInfo struct {
	Name   string `json:"name"`
	Symbol string `json:"symbol"`
}

// Pack - encode a record for storage
func Pack(record interface{}) ([]byte, error) {
	data, err := json.Marshal(record)
	if nil != err {
		return nil, fault.InvalidItem
	}
	return data, nil
}

// Unpack - decode a stored record
func Unpack(data []byte, record interface{}) error {
	if err := json.Unmarshal(data, record); nil != err {
		return fault.InvalidItem
	}
	return nil
}
