// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package registry

import (
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"

	"github.com/licium/liciumd/contract"
	"github.com/licium/liciumd/currency"
	"github.com/licium/liciumd/iscc"
	"github.com/licium/liciumd/rpc/ratelimit"
	"github.com/licium/liciumd/tokenrecord"
)

const (
	rateLimitRegistry = 200
	rateBurstRegistry = 100
)

// Registry - RPC service for minting tokens
type Registry struct {
	Log      *logger.L
	Limiter  *rate.Limiter
	Contract *contract.Contract
}

// New - create the minting service
func New(log *logger.L, c *contract.Contract) *Registry {
	return &Registry{
		Log:      log,
		Limiter:  rate.NewLimiter(rateLimitRegistry, rateBurstRegistry),
		Contract: c,
	}
}

// MintArguments - arguments for Registry.Mint
//
// the license price uses the canonical coin form, e.g. "1000uatom"
type MintArguments struct {
	Sender       string `json:"sender"`
	TokenId      string `json:"token_id"`
	Owner        string `json:"owner,omitempty"`
	Name         string `json:"name"`
	Description  string `json:"description,omitempty"`
	Image        string `json:"image,omitempty"`
	Fingerprint  string `json:"iscc"`
	MetaHash     string `json:"meta_hash,omitempty"`
	DataHash     string `json:"data_hash,omitempty"`
	InstanceHash string `json:"instance_hash,omitempty"`
	TopHash      string `json:"tophash"`
	LicenseURI   string `json:"license_uri"`
	LicensePrice string `json:"license_price"`
}

// MintReply - result from Registry.Mint
type MintReply struct {
	TokenId    string               `json:"token_id"`
	Attributes []contract.Attribute `json:"attributes"`
}

// Mint - register a fingerprinted asset as a new token
//
// the RPC boundary demands a well-formed ISCC code; the workflow
// itself treats fingerprints as opaque
func (r *Registry) Mint(arguments *MintArguments, reply *MintReply) error {

	if err := ratelimit.Limit(r.Limiter); nil != err {
		return err
	}

	if err := iscc.Validate(arguments.Fingerprint); nil != err {
		return err
	}
	price, err := currency.Parse(arguments.LicensePrice)
	if nil != err {
		return err
	}

	response, err := r.Contract.Execute(
		contract.HostEnv(),
		contract.MessageInfo{Sender: tokenrecord.Principal(arguments.Sender)},
		contract.ExecuteMsg{
			Mint: &contract.MintMsg{
				TokenId:      tokenrecord.TokenId(arguments.TokenId),
				Owner:        tokenrecord.Principal(arguments.Owner),
				Name:         arguments.Name,
				Description:  arguments.Description,
				Image:        arguments.Image,
				Fingerprint:  arguments.Fingerprint,
				MetaHash:     arguments.MetaHash,
				DataHash:     arguments.DataHash,
				InstanceHash: arguments.InstanceHash,
				TopHash:      arguments.TopHash,
				LicenseURI:   arguments.LicenseURI,
				LicensePrice: price,
			},
		})
	if nil != err {
		return err
	}

	reply.TokenId = arguments.TokenId
	reply.Attributes = response.Attributes
	return nil
}
