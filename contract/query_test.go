// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package contract_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/licium/liciumd/contract"
	"github.com/licium/liciumd/fault"
	"github.com/licium/liciumd/tokenrecord"
)

// mint count tokens with zero padded ids so that the store order
// matches the numeric order
func mintMany(t *testing.T, c *contract.Contract, count int) {
	t.Helper()

	for i := 1; i <= count; i += 1 {
		mintToken(t, c, fmt.Sprintf("t%02d", i), fmt.Sprintf("iscc%02d", i))
	}
}

func TestAllTokensDefaultLimit(t *testing.T) {
	c, _, teardown := setupTestContract(t, nil)
	defer teardown()

	mintMany(t, c, 15)

	response, err := c.Query(testEnv(), contract.QueryMsg{
		AllTokens: &contract.AllTokensMsg{},
	})
	assert.NoError(t, err, "all tokens")
	assert.Equal(t, 10, len(response.Tokens.Tokens), "default page size")
	assert.Equal(t, tokenrecord.TokenId("t01"), response.Tokens.Tokens[0], "first token")
	assert.Equal(t, tokenrecord.TokenId("t10"), response.Tokens.Tokens[9], "last token")
}

func TestAllTokensLimitClamp(t *testing.T) {
	c, _, teardown := setupTestContract(t, nil)
	defer teardown()

	mintMany(t, c, 35)

	response, err := c.Query(testEnv(), contract.QueryMsg{
		AllTokens: &contract.AllTokensMsg{Limit: 100},
	})
	assert.NoError(t, err, "all tokens")
	assert.Equal(t, 30, len(response.Tokens.Tokens), "page size clamped")
}

func TestAllTokensPagination(t *testing.T) {
	c, _, teardown := setupTestContract(t, nil)
	defer teardown()

	mintMany(t, c, 7)

	first, err := c.Query(testEnv(), contract.QueryMsg{
		AllTokens: &contract.AllTokensMsg{Limit: 4},
	})
	assert.NoError(t, err, "first page")
	assert.Equal(t, []tokenrecord.TokenId{"t01", "t02", "t03", "t04"}, first.Tokens.Tokens, "first page")

	second, err := c.Query(testEnv(), contract.QueryMsg{
		AllTokens: &contract.AllTokensMsg{
			StartAfter: first.Tokens.Tokens[3],
			Limit:      4,
		},
	})
	assert.NoError(t, err, "second page")
	assert.Equal(t, []tokenrecord.TokenId{"t05", "t06", "t07"}, second.Tokens.Tokens, "second page")
}

func TestTokensByOwner(t *testing.T) {
	c, _, teardown := setupTestContract(t, nil)
	defer teardown()

	// alternate ownership between two accounts
	for i := 1; i <= 6; i += 1 {
		msg := mintMsg(fmt.Sprintf("t%02d", i), fmt.Sprintf("iscc%02d", i))
		if 0 == i%2 {
			msg.Owner = "bob"
		}
		_, err := c.Execute(testEnv(), contract.MessageInfo{Sender: "alice"}, contract.ExecuteMsg{Mint: msg})
		assert.NoError(t, err, "mint: %d", i)
	}

	response, err := c.Query(testEnv(), contract.QueryMsg{
		Tokens: &contract.TokensMsg{Owner: "bob"},
	})
	assert.NoError(t, err, "tokens of bob")
	assert.Equal(t, []tokenrecord.TokenId{"t02", "t04", "t06"}, response.Tokens.Tokens, "only bob's tokens")

	response, err = c.Query(testEnv(), contract.QueryMsg{
		Tokens: &contract.TokensMsg{
			Owner:      "bob",
			StartAfter: "t02",
			Limit:      1,
		},
	})
	assert.NoError(t, err, "tokens of bob after t02")
	assert.Equal(t, []tokenrecord.TokenId{"t04"}, response.Tokens.Tokens, "cursor continuation")
}

func TestResolveFingerprint(t *testing.T) {
	c, _, teardown := setupTestContract(t, nil)
	defer teardown()

	mintToken(t, c, "t1", "iscc1")

	response, err := c.Query(testEnv(), contract.QueryMsg{
		ResolveFingerprint: &contract.ResolveFingerprintMsg{Fingerprint: "iscc1"},
	})
	assert.NoError(t, err, "resolve")
	resolved := response.ResolveFingerprint
	assert.NotNil(t, resolved, "resolved record")
	assert.Equal(t, tokenrecord.TokenId("t1"), resolved.TokenId, "token id")
	assert.Equal(t, tokenrecord.Principal("alice"), resolved.Owner, "owner")
	assert.Equal(t, "iscc1", resolved.Fingerprint, "fingerprint")
	assert.Equal(t, "tophash-t1", resolved.TopHash, "tophash")
	assert.Equal(t, "https://example.com/license/t1", resolved.LicenseURI, "license uri")
	assert.Equal(t, uint64(1000), resolved.LicensePrice.Amount, "license price")
}

func TestResolveUnknownFingerprint(t *testing.T) {
	c, _, teardown := setupTestContract(t, nil)
	defer teardown()

	mintToken(t, c, "t1", "iscc1")

	response, err := c.Query(testEnv(), contract.QueryMsg{
		ResolveFingerprint: &contract.ResolveFingerprintMsg{Fingerprint: "iscc9"},
	})
	assert.NoError(t, err, "unknown fingerprint is not an error")
	assert.Nil(t, response.ResolveFingerprint, "empty result")
}

func TestOwnerOfExpiredApprovals(t *testing.T) {
	c, store, teardown := setupTestContract(t, nil)
	defer teardown()

	mintToken(t, c, "t1", "iscc1")

	trx := store.Begin()
	authority := c.Registry().Authority()
	err := authority.SetApproval(trx, "t1", "carol", &tokenrecord.Expiry{AtHeight: 50})
	assert.NoError(t, err, "expired approval")
	err = authority.SetApproval(trx, "t1", "dave", &tokenrecord.Expiry{AtHeight: 200})
	assert.NoError(t, err, "live approval")
	assert.NoError(t, trx.Commit(), "commit approvals")

	// the query block height is 100: carol's approval is expired
	response, err := c.Query(testEnv(), contract.QueryMsg{
		OwnerOf: &contract.OwnerOfMsg{TokenId: "t1"},
	})
	assert.NoError(t, err, "owner of")
	assert.Equal(t, 1, len(response.OwnerOf.Approvals), "expired approval filtered")
	assert.Equal(t, tokenrecord.Principal("dave"), response.OwnerOf.Approvals[0].Spender, "live approval kept")

	response, err = c.Query(testEnv(), contract.QueryMsg{
		OwnerOf: &contract.OwnerOfMsg{TokenId: "t1", IncludeExpired: true},
	})
	assert.NoError(t, err, "owner of with expired")
	assert.Equal(t, 2, len(response.OwnerOf.Approvals), "expired approval included on request")
}

func TestAllNftInfo(t *testing.T) {
	c, _, teardown := setupTestContract(t, nil)
	defer teardown()

	mintToken(t, c, "t1", "iscc1")

	response, err := c.Query(testEnv(), contract.QueryMsg{
		AllNftInfo: &contract.AllNftInfoMsg{TokenId: "t1"},
	})
	assert.NoError(t, err, "all nft info")
	assert.Equal(t, tokenrecord.Principal("alice"), response.AllNftInfo.Access.Owner, "owner")
	assert.Equal(t, "work t1", response.AllNftInfo.Info.Name, "name")
}

func TestApprovedForAll(t *testing.T) {
	c, store, teardown := setupTestContract(t, nil)
	defer teardown()

	mintToken(t, c, "t1", "iscc1")

	trx := store.Begin()
	authority := c.Registry().Authority()
	err := authority.SetOperator(trx, "alice", "carol", &tokenrecord.Expiry{AtTime: 1400000000})
	assert.NoError(t, err, "expired operator")
	err = authority.SetOperator(trx, "alice", "dave", nil)
	assert.NoError(t, err, "permanent operator")
	assert.NoError(t, trx.Commit(), "commit operators")

	response, err := c.Query(testEnv(), contract.QueryMsg{
		ApprovedForAll: &contract.ApprovedForAllMsg{Owner: "alice"},
	})
	assert.NoError(t, err, "approved for all")
	assert.Equal(t, 1, len(response.ApprovedForAll.Operators), "expired operator filtered")
	assert.Equal(t, tokenrecord.Principal("dave"), response.ApprovedForAll.Operators[0].Spender, "permanent operator kept")

	response, err = c.Query(testEnv(), contract.QueryMsg{
		ApprovedForAll: &contract.ApprovedForAllMsg{Owner: "alice", IncludeExpired: true},
	})
	assert.NoError(t, err, "approved for all with expired")
	assert.Equal(t, 2, len(response.ApprovedForAll.Operators), "expired operator included on request")
}

func TestNftInfoUnknownToken(t *testing.T) {
	c, _, teardown := setupTestContract(t, nil)
	defer teardown()

	_, err := c.Query(testEnv(), contract.QueryMsg{
		NftInfo: &contract.NftInfoMsg{TokenId: "missing"},
	})
	assert.Equal(t, fault.TokenNotFound, err, "unknown token")
}
