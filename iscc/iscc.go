// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package iscc - validation of ISCC content codes
//
// a fully specified ISCC is four component codes joined by "-":
// Meta-ID, Content-ID, Data-ID and Instance-ID.  Each component is a
// 13 character string over the base58-iscc alphabet decoding to one
// header byte and an 8 byte digest.
package iscc

import (
	"strings"

	"github.com/mr-tron/base58"

	"github.com/licium/liciumd/fault"
)

// base58-iscc symbol table, ordered so that every component code
// begins with 'C'
const symbols = "C23456789rB1ZEFGTtYiAaVvMmHUPWXKDNbcdefghLjkSnopRqsJuQwxyz"

var alphabet = base58.NewAlphabet(symbols)

// component layout
const (
	componentLength = 13 // characters
	componentCount  = 4  // Meta, Content, Data, Instance
	decodedLength   = 9  // header byte + 64 bit digest
)

// Code - a fully specified ISCC code
type Code string

// Validate - check a fully specified ISCC code
func Validate(code string) error {
	components := strings.Split(code, "-")
	if componentCount != len(components) {
		return fault.InvalidFingerprint
	}
	for _, component := range components {
		if err := validateComponent(component); nil != err {
			return err
		}
	}
	return nil
}

// check a single component code
func validateComponent(component string) error {
	if componentLength != len(component) {
		return fault.InvalidFingerprint
	}
	decoded, err := base58.DecodeAlphabet(component, alphabet)
	if nil != err {
		return fault.InvalidFingerprint
	}
	if decodedLength != len(decoded) {
		return fault.InvalidFingerprint
	}
	return nil
}

// EncodeComponent - encode a header byte and digest as a component code
//
// used by tooling to construct codes; the registry itself only
// validates
func EncodeComponent(data []byte) (string, error) {
	if decodedLength != len(data) {
		return "", fault.InvalidFingerprint
	}
	return base58.EncodeAlphabet(data, alphabet), nil
}
