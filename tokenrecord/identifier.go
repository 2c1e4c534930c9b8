// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package tokenrecord

import (
	"github.com/licium/liciumd/fault"
)

// identifier length limits
const (
	maxTokenIdLength     = 128
	maxPrincipalLength   = 128
	maxFingerprintLength = 256
)

// TokenId - unique identifier of a token
type TokenId string

// Principal - an account identifier: owner, licensee, spender or
// operator
//
// the registry does not interpret principals beyond checking they are
// storable as key material
type Principal string

// Validate - check a token id is usable as key material
func (tokenId TokenId) Validate() error {
	if err := validateKeyString(string(tokenId), maxTokenIdLength); nil != err {
		return fault.InvalidTokenId
	}
	return nil
}

// Validate - check a principal is usable as key material
func (principal Principal) Validate() error {
	if err := validateKeyString(string(principal), maxPrincipalLength); nil != err {
		return fault.InvalidPrincipal
	}
	return nil
}

// ValidateFingerprint - check a content fingerprint is storable
//
// the fingerprint is otherwise opaque to the registry; strict ISCC
// validation belongs to the boundary that accepts client input
func ValidateFingerprint(fingerprint string) error {
	if err := validateKeyString(fingerprint, maxFingerprintLength); nil != err {
		return fault.InvalidFingerprint
	}
	return nil
}

// non-empty printable ASCII, bounded length
func validateKeyString(s string, maxLength int) error {
	if 0 == len(s) || len(s) > maxLength {
		return fault.InvalidItem
	}
	for _, r := range s {
		if r < 0x21 || r > 0x7e {
			return fault.InvalidItem
		}
	}
	return nil
}
