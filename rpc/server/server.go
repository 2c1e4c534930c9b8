// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package server - assemble the JSON-RPC services
package server

import (
	"net/rpc"
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/licium/liciumd/contract"
	"github.com/licium/liciumd/counter"
	"github.com/licium/liciumd/rpc/license"
	"github.com/licium/liciumd/rpc/node"
	"github.com/licium/liciumd/rpc/registry"
	"github.com/licium/liciumd/rpc/token"
)

// Create - register all services on a fresh RPC server
func Create(log *logger.L, version string, connections *counter.Counter, c *contract.Contract) *rpc.Server {

	start := time.Now().UTC()

	server := rpc.NewServer()

	_ = server.Register(registry.New(log, c))
	_ = server.Register(license.New(log, c))
	_ = server.Register(token.New(log, c))
	_ = server.Register(node.New(log, start, version, connections, c))

	return server
}
