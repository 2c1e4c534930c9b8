// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"bytes"

	"github.com/licium/liciumd/fault"
)

// JoinKey - build a compound key: first ++ NUL ++ second
func JoinKey(first []byte, second []byte) []byte {
	key := make([]byte, 0, len(first)+1+len(second))
	key = append(key, first...)
	key = append(key, KeySeparator)
	return append(key, second...)
}

// SplitKey - split a compound key at its NUL separator
//
// fails if the stored key does not contain exactly one separator
func SplitKey(key []byte) ([]byte, []byte, error) {
	i := bytes.IndexByte(key, KeySeparator)
	if i <= 0 || i == len(key)-1 {
		return nil, nil, fault.InvalidStoredKey
	}
	if bytes.IndexByte(key[i+1:], KeySeparator) >= 0 {
		return nil, nil, fault.InvalidStoredKey
	}
	return key[:i], key[i+1:], nil
}
