// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package license

import (
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"

	"github.com/licium/liciumd/contract"
	"github.com/licium/liciumd/currency"
	"github.com/licium/liciumd/rpc/ratelimit"
	"github.com/licium/liciumd/tokenrecord"
)

const (
	rateLimitLicense = 200
	rateBurstLicense = 100
)

// License - RPC service for purchasing usage licenses
type License struct {
	Log      *logger.L
	Limiter  *rate.Limiter
	Contract *contract.Contract
}

// New - create the licensing service
func New(log *logger.L, c *contract.Contract) *License {
	return &License{
		Log:      log,
		Limiter:  rate.NewLimiter(rateLimitLicense, rateBurstLicense),
		Contract: c,
	}
}

// BuyArguments - arguments for License.Buy
//
// payment uses the canonical coin form, e.g. "1000uatom"
type BuyArguments struct {
	Sender  string `json:"sender"`
	TokenId string `json:"token_id"`
	Payment string `json:"payment"`
}

// BuyReply - result from License.Buy
type BuyReply struct {
	Transfers  []contract.BankMsg   `json:"transfers"`
	Attributes []contract.Attribute `json:"attributes"`
}

// Buy - purchase a usage license for a token
func (l *License) Buy(arguments *BuyArguments, reply *BuyReply) error {

	if err := ratelimit.Limit(l.Limiter); nil != err {
		return err
	}

	payment, err := currency.Parse(arguments.Payment)
	if nil != err {
		return err
	}

	response, err := l.Contract.Execute(
		contract.HostEnv(),
		contract.MessageInfo{
			Sender: tokenrecord.Principal(arguments.Sender),
			Funds:  []currency.Coin{payment},
		},
		contract.ExecuteMsg{
			BuyLicense: &contract.BuyLicenseMsg{
				TokenId: tokenrecord.TokenId(arguments.TokenId),
			},
		})
	if nil != err {
		return err
	}

	reply.Transfers = response.Messages
	reply.Attributes = response.Attributes
	return nil
}
