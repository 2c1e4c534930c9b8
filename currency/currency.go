// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package currency - coin amounts in named denominations
//
// licensing prices are quoted in a single denomination, e.g. "uatom";
// amounts are integer base units and are transported as strings to
// survive JSON number precision limits
package currency

import (
	"strconv"

	"github.com/licium/liciumd/fault"
)

// limits on a denomination name
const (
	minDenomLength = 3
	maxDenomLength = 16
)

// Coin - an amount of a single denomination
type Coin struct {
	Denom  string `json:"denom"`
	Amount uint64 `json:"amount,string"`
}

// ValidateDenom - check a denomination is acceptable
//
// lowercase letter followed by lowercase letters or digits
func ValidateDenom(denom string) error {
	if len(denom) < minDenomLength || len(denom) > maxDenomLength {
		return fault.InvalidDenomination
	}
	for i, r := range denom {
		switch {
		case r >= 'a' && r <= 'z':
		case r >= '0' && r <= '9' && i > 0:
		default:
			return fault.InvalidDenomination
		}
	}
	return nil
}

// Validate - check the coin has a valid denomination
func (coin Coin) Validate() error {
	return ValidateDenom(coin.Denom)
}

// IsZero - check for a zero amount
func (coin Coin) IsZero() bool {
	return 0 == coin.Amount
}

// String - convert a coin to its canonical "1000uatom" form
func (coin Coin) String() string {
	return strconv.FormatUint(coin.Amount, 10) + coin.Denom
}

// Parse - convert a canonical "1000uatom" string into a Coin
func Parse(s string) (Coin, error) {
	split := len(s)
scan:
	for i, r := range s {
		if r < '0' || r > '9' {
			split = i
			break scan
		}
	}
	if 0 == split || len(s) == split {
		return Coin{}, fault.InvalidDenomination
	}

	amount, err := strconv.ParseUint(s[:split], 10, 64)
	if nil != err {
		return Coin{}, fault.InvalidDenomination
	}

	denom := s[split:]
	if err := ValidateDenom(denom); nil != err {
		return Coin{}, err
	}

	return Coin{Denom: denom, Amount: amount}, nil
}
