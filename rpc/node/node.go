// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package node

import (
	"time"

	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"

	"github.com/licium/liciumd/contract"
	"github.com/licium/liciumd/counter"
	"github.com/licium/liciumd/rpc/ratelimit"
)

const (
	rateLimitNode = 200
	rateBurstNode = 100
)

// Node - RPC service for daemon status
type Node struct {
	Log      *logger.L
	Limiter  *rate.Limiter
	Start    time.Time
	Version  string
	Contract *contract.Contract
	counter  *counter.Counter
}

// New - create the status service
func New(log *logger.L, start time.Time, version string, connections *counter.Counter, c *contract.Contract) *Node {
	return &Node{
		Log:      log,
		Limiter:  rate.NewLimiter(rateLimitNode, rateBurstNode),
		Start:    start,
		Version:  version,
		Contract: c,
		counter:  connections,
	}
}

// InfoArguments - empty arguments for info request
type InfoArguments struct{}

// InfoReply - results from info request
type InfoReply struct {
	Name    string `json:"name"`
	Symbol  string `json:"symbol"`
	Tokens  uint64 `json:"tokens"`
	RPCs    uint64 `json:"rpcs"`
	Version string `json:"version"`
	Uptime  string `json:"uptime"`
}

// Info - enough information for clients to determine daemon state
func (node *Node) Info(_ *InfoArguments, reply *InfoReply) error {

	if err := ratelimit.Limit(node.Limiter); nil != err {
		return err
	}

	response, err := node.Contract.Query(contract.HostEnv(), contract.QueryMsg{
		ContractInfo: &struct{}{},
	})
	if nil != err {
		return err
	}

	reply.Name = response.ContractInfo.Name
	reply.Symbol = response.ContractInfo.Symbol
	reply.Tokens = node.Contract.Registry().Count()
	reply.RPCs = node.counter.Uint64()
	reply.Version = node.Version
	reply.Uptime = time.Since(node.Start).String()
	return nil
}
