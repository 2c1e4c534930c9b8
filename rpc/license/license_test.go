// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package license_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/logger"

	"github.com/licium/liciumd/fault"
	"github.com/licium/liciumd/rpc/fixtures"
	"github.com/licium/liciumd/rpc/license"
	"github.com/licium/liciumd/tokenrecord"
)

func TestMain(m *testing.M) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()
	m.Run()
}

func TestBuy(t *testing.T) {
	c, teardown := fixtures.NewContract(t)
	defer teardown()
	fixtures.MintToken(t, c, "t1", "iscc1")

	handler := license.New(logger.New(fixtures.LogCategory), c)

	var reply license.BuyReply
	err := handler.Buy(&license.BuyArguments{
		Sender:  "carol",
		TokenId: "t1",
		Payment: "1000uatom",
	}, &reply)
	assert.NoError(t, err, "buy")
	assert.Equal(t, 1, len(reply.Transfers), "one transfer")
	assert.Equal(t, tokenrecord.Principal("alice"), reply.Transfers[0].ToAddress, "funds go to owner")

	attributes := map[string]string{}
	for _, attribute := range reply.Attributes {
		attributes[attribute.Key] = attribute.Value
	}
	assert.Equal(t, "license", attributes["action"], "action attribute")
	assert.Equal(t, "carol", attributes["licensee"], "licensee attribute")
	assert.Equal(t, "1000uatom", attributes["price"], "price attribute")
}

func TestBuyUnderpayment(t *testing.T) {
	c, teardown := fixtures.NewContract(t)
	defer teardown()
	fixtures.MintToken(t, c, "t1", "iscc1")

	handler := license.New(logger.New(fixtures.LogCategory), c)

	var reply license.BuyReply
	err := handler.Buy(&license.BuyArguments{
		Sender:  "carol",
		TokenId: "t1",
		Payment: "500uatom",
	}, &reply)
	assert.Equal(t, fault.InsufficientPayment, err, "underpayment")
}

func TestBuyMalformedPayment(t *testing.T) {
	c, teardown := fixtures.NewContract(t)
	defer teardown()
	fixtures.MintToken(t, c, "t1", "iscc1")

	handler := license.New(logger.New(fixtures.LogCategory), c)

	var reply license.BuyReply
	err := handler.Buy(&license.BuyArguments{
		Sender:  "carol",
		TokenId: "t1",
		Payment: "a bag of coins",
	}, &reply)
	assert.Error(t, err, "malformed payment")
}

func TestBuyUnknownToken(t *testing.T) {
	c, teardown := fixtures.NewContract(t)
	defer teardown()

	handler := license.New(logger.New(fixtures.LogCategory), c)

	var reply license.BuyReply
	err := handler.Buy(&license.BuyArguments{
		Sender:  "carol",
		TokenId: "missing",
		Payment: "1000uatom",
	}, &reply)
	assert.Equal(t, fault.LicensingTermsNotFound, err, "unknown token")
}
