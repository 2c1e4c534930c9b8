// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package storage - maintain the on-disk registry store
//
// maintain separate pools of a number of elements in key->value form
//
// This maintains a LevelDB database split into a series of tables.
// Each table is defined by a single prefix byte and is an
// independently ordered key space with prefix-range scanning.
//
// Notes:
// 1. each separate pool has a single byte prefix (to spread the keys in LevelDB)
// 2. ++           = concatenation of byte data
// 3. token id     = printable token identifier (no NUL bytes)
// 4. fingerprint  = ISCC content code string
// 5. principal    = account identifier string (no NUL bytes)
// 6. records      = JSON encoded record data
// 7. compound keys use a single NUL byte separator
//
// Tokens:
//
//   T ++ token id                     - canonical token records
//                                       data: token record (owner, metadata, approvals)
//   O ++ owner ++ NUL ++ token id     - tokens grouped by current owner
//                                       data: none
//
// Content:
//
//   C ++ fingerprint                  - content fingerprint to token
//                                       data: content record (token id, derived hashes)
//
// Licensing:
//
//   L ++ token id                     - licensing terms for a token
//                                       data: terms record (license uri, price)
//   E ++ licensee ++ NUL ++ token id  - current license entitlements
//                                       data: license record (paid price)
//
// Approvals:
//
//   A ++ owner ++ NUL ++ operator     - operator approvals for all of an owner's tokens
//                                       data: expiry record
//
// Contract:
//
//   I ++ "info"                       - contract name and symbol
//                                       data: contract info record
//   I ++ "tokens"                     - number of minted tokens
//                                       data: count as big endian uint64 (8 bytes)
package storage
