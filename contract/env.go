// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package contract

import (
	"time"

	"github.com/licium/liciumd/tokenrecord"
)

// HostEnv - the execution environment of a standalone daemon
//
// there is no chain behind the daemon, so the block reference is wall
// clock time with no height; height based expiries never trigger here
func HostEnv() Env {
	return Env{
		Block: tokenrecord.BlockInfo{
			Height: 0,
			Time:   time.Now().Unix(),
		},
	}
}
