// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package token_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/logger"

	"github.com/licium/liciumd/fault"
	"github.com/licium/liciumd/rpc/fixtures"
	"github.com/licium/liciumd/rpc/token"
	"github.com/licium/liciumd/tokenrecord"
)

func TestMain(m *testing.M) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()
	m.Run()
}

func TestGet(t *testing.T) {
	c, teardown := fixtures.NewContract(t)
	defer teardown()
	fixtures.MintToken(t, c, "t1", "iscc1")

	handler := token.New(logger.New(fixtures.LogCategory), c)

	var reply token.GetReply
	err := handler.Get(&token.GetArguments{TokenId: "t1"}, &reply)
	assert.NoError(t, err, "get")
	assert.Equal(t, "work t1", reply.Name, "name")

	err = handler.Get(&token.GetArguments{TokenId: "missing"}, &reply)
	assert.Equal(t, fault.TokenNotFound, err, "unknown token")
}

func TestOwner(t *testing.T) {
	c, teardown := fixtures.NewContract(t)
	defer teardown()
	fixtures.MintToken(t, c, "t1", "iscc1")

	handler := token.New(logger.New(fixtures.LogCategory), c)

	var reply token.OwnerReply
	err := handler.Owner(&token.OwnerArguments{TokenId: "t1"}, &reply)
	assert.NoError(t, err, "owner")
	assert.Equal(t, "alice", reply.Owner, "owner")
}

func TestAllPagination(t *testing.T) {
	c, teardown := fixtures.NewContract(t)
	defer teardown()
	fixtures.MintToken(t, c, "t1", "iscc1")
	fixtures.MintToken(t, c, "t2", "iscc2")
	fixtures.MintToken(t, c, "t3", "iscc3")

	handler := token.New(logger.New(fixtures.LogCategory), c)

	var reply token.ListReply
	err := handler.All(&token.ListArguments{Count: 2}, &reply)
	assert.NoError(t, err, "first page")
	assert.Equal(t, []tokenrecord.TokenId{"t1", "t2"}, reply.Tokens, "first page")

	err = handler.All(&token.ListArguments{StartAfter: "t2", Count: 2}, &reply)
	assert.NoError(t, err, "second page")
	assert.Equal(t, []tokenrecord.TokenId{"t3"}, reply.Tokens, "second page")

	// an out of range count is rejected after costing quota
	err = handler.All(&token.ListArguments{Count: 1000}, &reply)
	assert.Equal(t, fault.InvalidCount, err, "oversize count")
}

func TestList(t *testing.T) {
	c, teardown := fixtures.NewContract(t)
	defer teardown()
	fixtures.MintToken(t, c, "t1", "iscc1")
	fixtures.MintToken(t, c, "t2", "iscc2")

	handler := token.New(logger.New(fixtures.LogCategory), c)

	var reply token.ListReply
	err := handler.List(&token.ListArguments{Owner: "alice", Count: 10}, &reply)
	assert.NoError(t, err, "list")
	assert.Equal(t, []tokenrecord.TokenId{"t1", "t2"}, reply.Tokens, "alice's tokens")

	err = handler.List(&token.ListArguments{Owner: "nobody", Count: 10}, &reply)
	assert.NoError(t, err, "empty list")
	assert.Equal(t, 0, len(reply.Tokens), "no tokens")
}

func TestResolve(t *testing.T) {
	c, teardown := fixtures.NewContract(t)
	defer teardown()
	fixtures.MintToken(t, c, "t1", "iscc1")

	handler := token.New(logger.New(fixtures.LogCategory), c)

	var reply token.ResolveReply
	err := handler.Resolve(&token.ResolveArguments{Fingerprint: "iscc1"}, &reply)
	assert.NoError(t, err, "resolve")
	assert.True(t, reply.Found, "found")
	assert.Equal(t, tokenrecord.TokenId("t1"), reply.Record.TokenId, "token id")
	assert.Equal(t, "tophash-t1", reply.Record.TopHash, "tophash")

	reply = token.ResolveReply{}
	err = handler.Resolve(&token.ResolveArguments{Fingerprint: "iscc9"}, &reply)
	assert.NoError(t, err, "unknown fingerprint")
	assert.False(t, reply.Found, "not found")
	assert.Nil(t, reply.Record, "no record")
}
