// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package contract

import (
	"github.com/licium/liciumd/fault"
	"github.com/licium/liciumd/tokenrecord"
)

// used for limiting queries
const (
	defaultLimit = 10
	maximumLimit = 30
)

// clamp a requested page size; zero selects the default
func effectiveLimit(limit int) int {
	if limit <= 0 {
		return defaultLimit
	}
	if limit > maximumLimit {
		return maximumLimit
	}
	return limit
}

// Query - dispatch one query to exactly one read-only handler
func (c *Contract) Query(env Env, msg QueryMsg) (*QueryResponse, error) {
	switch {
	case nil != msg.ContractInfo:
		contractInfo, err := c.contractInfo()
		if nil != err {
			return nil, err
		}
		return &QueryResponse{ContractInfo: contractInfo}, nil

	case nil != msg.NftInfo:
		nftInfo, err := c.queryNftInfo(msg.NftInfo.TokenId)
		if nil != err {
			return nil, err
		}
		return &QueryResponse{NftInfo: nftInfo}, nil

	case nil != msg.OwnerOf:
		ownerOf, err := c.queryOwnerOf(env, msg.OwnerOf.TokenId, msg.OwnerOf.IncludeExpired)
		if nil != err {
			return nil, err
		}
		return &QueryResponse{OwnerOf: ownerOf}, nil

	case nil != msg.AllNftInfo:
		allNftInfo, err := c.queryAllNftInfo(env, msg.AllNftInfo.TokenId, msg.AllNftInfo.IncludeExpired)
		if nil != err {
			return nil, err
		}
		return &QueryResponse{AllNftInfo: allNftInfo}, nil

	case nil != msg.ApprovedForAll:
		approved, err := c.queryApprovedForAll(env, msg.ApprovedForAll)
		if nil != err {
			return nil, err
		}
		return &QueryResponse{ApprovedForAll: approved}, nil

	case nil != msg.NumTokens:
		return &QueryResponse{
			NumTokens: &NumTokensResponse{Count: c.registry.Count()},
		}, nil

	case nil != msg.Tokens:
		tokenIds, err := c.registry.ListByOwner(msg.Tokens.Owner, msg.Tokens.StartAfter, effectiveLimit(msg.Tokens.Limit))
		if nil != err {
			return nil, err
		}
		return &QueryResponse{Tokens: &TokensResponse{Tokens: tokenIds}}, nil

	case nil != msg.AllTokens:
		tokenIds, err := c.registry.ListAll(msg.AllTokens.StartAfter, effectiveLimit(msg.AllTokens.Limit))
		if nil != err {
			return nil, err
		}
		return &QueryResponse{Tokens: &TokensResponse{Tokens: tokenIds}}, nil

	case nil != msg.ResolveFingerprint:
		resolved, err := c.queryResolveFingerprint(msg.ResolveFingerprint.Fingerprint)
		if nil != err {
			return nil, err
		}
		// absence is a valid empty result
		return &QueryResponse{ResolveFingerprint: resolved}, nil

	default:
		return nil, fault.InvalidMessage
	}
}

func (c *Contract) queryNftInfo(tokenId tokenrecord.TokenId) (*NftInfoResponse, error) {
	token, err := c.registry.Get(tokenId)
	if nil != err {
		return nil, err
	}
	return &NftInfoResponse{
		Name:        token.Name,
		Description: token.Description,
		Image:       token.Image,
	}, nil
}

func (c *Contract) queryOwnerOf(env Env, tokenId tokenrecord.TokenId, includeExpired bool) (*OwnerOfResponse, error) {
	token, err := c.registry.Get(tokenId)
	if nil != err {
		return nil, err
	}
	return &OwnerOfResponse{
		Owner:     token.Owner,
		Approvals: filterApprovals(env.Block, token.Approvals, includeExpired),
	}, nil
}

func (c *Contract) queryAllNftInfo(env Env, tokenId tokenrecord.TokenId, includeExpired bool) (*AllNftInfoResponse, error) {
	token, err := c.registry.Get(tokenId)
	if nil != err {
		return nil, err
	}
	return &AllNftInfoResponse{
		Access: OwnerOfResponse{
			Owner:     token.Owner,
			Approvals: filterApprovals(env.Block, token.Approvals, includeExpired),
		},
		Info: NftInfoResponse{
			Name:        token.Name,
			Description: token.Description,
			Image:       token.Image,
		},
	}, nil
}

func (c *Contract) queryApprovedForAll(env Env, msg *ApprovedForAllMsg) (*ApprovedForAllResponse, error) {
	operators, err := c.registry.ListOperators(msg.Owner, msg.StartAfter, effectiveLimit(msg.Limit))
	if nil != err {
		return nil, err
	}
	return &ApprovedForAllResponse{
		Operators: filterApprovals(env.Block, operators, msg.IncludeExpired),
	}, nil
}

// queryResolveFingerprint - join token, content and licensing records
//
// nil, nil when the fingerprint is not registered
func (c *Contract) queryResolveFingerprint(fingerprint string) (*ResolveResponse, error) {
	content, err := c.index.Resolve(fingerprint)
	if nil != err {
		return nil, err
	}
	if nil == content {
		return nil, nil
	}

	token, err := c.registry.Get(content.TokenId)
	if nil != err {
		return nil, err
	}
	terms, err := c.licensing.GetTerms(content.TokenId)
	if nil != err {
		return nil, err
	}

	return &ResolveResponse{
		TokenId:      content.TokenId,
		Owner:        token.Owner,
		Name:         token.Name,
		Description:  token.Description,
		Image:        token.Image,
		Fingerprint:  content.Fingerprint,
		MetaHash:     content.MetaHash,
		DataHash:     content.DataHash,
		InstanceHash: content.InstanceHash,
		TopHash:      content.TopHash,
		LicenseURI:   terms.LicenseURI,
		LicensePrice: terms.Price,
	}, nil
}

// drop expired entries unless the caller asked to keep them
func filterApprovals(block tokenrecord.BlockInfo, approvals []tokenrecord.Approval, includeExpired bool) []tokenrecord.Approval {
	filtered := make([]tokenrecord.Approval, 0, len(approvals))
	for _, approval := range approvals {
		if includeExpired || !approval.Expires.IsExpired(block) {
			filtered = append(filtered, approval)
		}
	}
	return filtered
}
