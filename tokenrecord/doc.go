// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package tokenrecord - definition of the registry record types
//
// the records are stored as JSON in their respective storage pools;
// identifiers are validated on the way in so that stored keys never
// contain NUL bytes and always split cleanly
package tokenrecord
