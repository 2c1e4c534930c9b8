// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package tokenrecord

// BlockInfo - the reference point for expiry checks
//
// supplied by the caller with each command or query; the registry has
// no clock of its own
type BlockInfo struct {
	Height uint64 `json:"height,string"`
	Time   int64  `json:"time,string"`
}

// Expiry - a time or height limit on an approval
//
// a nil *Expiry never expires; at most one of the fields is set
type Expiry struct {
	AtHeight uint64 `json:"at_height,omitempty,string"`
	AtTime   int64  `json:"at_time,omitempty,string"`
}

// IsExpired - check an expiry against a block reference
func (expiry *Expiry) IsExpired(block BlockInfo) bool {
	if nil == expiry {
		return false
	}
	if expiry.AtHeight > 0 && block.Height >= expiry.AtHeight {
		return true
	}
	if expiry.AtTime > 0 && block.Time >= expiry.AtTime {
		return true
	}
	return false
}
