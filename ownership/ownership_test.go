// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ownership_test

import (
	"fmt"
	"io/ioutil"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/logger"

	"github.com/licium/liciumd/contract"
	"github.com/licium/liciumd/currency"
	"github.com/licium/liciumd/fault"
	"github.com/licium/liciumd/ownership"
	"github.com/licium/liciumd/registry"
	"github.com/licium/liciumd/storage"
	"github.com/licium/liciumd/tokenrecord"
)

func TestMain(m *testing.M) {
	directory, err := ioutil.TempDir("", "liciumd-ownership-test")
	if nil != err {
		panic(fmt.Sprintf("cannot create scratch directory: %s", err))
	}
	logConfig := logger.Configuration{
		Directory: directory,
		File:      "ownership.log",
		Size:      1048576,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	}
	if err := logger.Initialise(logConfig); nil != err {
		panic(fmt.Sprintf("logger initialization failed: %s", err))
	}
	rc := m.Run()
	logger.Finalise()
	_ = os.RemoveAll(directory)
	os.Exit(rc)
}

// a contract wired with the real ownership module
func setupContract(t *testing.T) (*contract.Contract, *storage.Store, func()) {
	t.Helper()

	directory, err := ioutil.TempDir("", "liciumd-ownership-store")
	if nil != err {
		t.Fatalf("cannot create scratch directory: %s", err)
	}

	store, err := storage.New(directory + "/ownership.leveldb")
	if nil != err {
		_ = os.RemoveAll(directory)
		t.Fatalf("cannot open store: %s", err)
	}

	log := logger.New("ownership-test")

	// the module and the contract share the store, so their registry
	// views are consistent
	c := contract.New(log, store, ownership.New(log, registry.New(store)))

	_, err = c.Instantiate(testEnv(), contract.MessageInfo{Sender: "creator"}, contract.InstantiateMsg{
		Name:   "licium",
		Symbol: "LIC",
	})
	assert.NoError(t, err, "instantiate")

	mint := &contract.MintMsg{
		TokenId:      "t1",
		Owner:        "alice",
		Name:         "work t1",
		Fingerprint:  "iscc1",
		TopHash:      "tophash-t1",
		LicenseURI:   "https://example.com/license/t1",
		LicensePrice: currency.Coin{Denom: "uatom", Amount: 1000},
	}
	_, err = c.Execute(testEnv(), contract.MessageInfo{Sender: "alice"}, contract.ExecuteMsg{Mint: mint})
	assert.NoError(t, err, "mint")

	return c, store, func() {
		_ = store.Close()
		_ = os.RemoveAll(directory)
	}
}

func testEnv() contract.Env {
	return contract.Env{
		Block: tokenrecord.BlockInfo{
			Height: 100,
			Time:   1500000000,
		},
	}
}

func owner(t *testing.T, c *contract.Contract, tokenId string) tokenrecord.Principal {
	t.Helper()

	response, err := c.Query(testEnv(), contract.QueryMsg{
		OwnerOf: &contract.OwnerOfMsg{TokenId: tokenrecord.TokenId(tokenId)},
	})
	assert.NoError(t, err, "owner of: %s", tokenId)
	return response.OwnerOf.Owner
}

func TestTransferByOwner(t *testing.T) {
	c, _, teardown := setupContract(t)
	defer teardown()

	_, err := c.Execute(testEnv(), contract.MessageInfo{Sender: "alice"}, contract.ExecuteMsg{
		Transfer: &contract.TransferMsg{Recipient: "bob", TokenId: "t1"},
	})
	assert.NoError(t, err, "transfer")
	assert.Equal(t, tokenrecord.Principal("bob"), owner(t, c, "t1"), "new owner")
}

func TestTransferByStranger(t *testing.T) {
	c, _, teardown := setupContract(t)
	defer teardown()

	_, err := c.Execute(testEnv(), contract.MessageInfo{Sender: "mallory"}, contract.ExecuteMsg{
		Transfer: &contract.TransferMsg{Recipient: "mallory", TokenId: "t1"},
	})
	assert.Equal(t, fault.Unauthorized, err, "stranger transfer")
	assert.Equal(t, tokenrecord.Principal("alice"), owner(t, c, "t1"), "owner unchanged")
}

func TestTransferByApprovedSpender(t *testing.T) {
	c, _, teardown := setupContract(t)
	defer teardown()

	_, err := c.Execute(testEnv(), contract.MessageInfo{Sender: "alice"}, contract.ExecuteMsg{
		Approve: &contract.ApproveMsg{Spender: "carol", TokenId: "t1"},
	})
	assert.NoError(t, err, "approve")

	_, err = c.Execute(testEnv(), contract.MessageInfo{Sender: "carol"}, contract.ExecuteMsg{
		Transfer: &contract.TransferMsg{Recipient: "carol", TokenId: "t1"},
	})
	assert.NoError(t, err, "approved transfer")
	assert.Equal(t, tokenrecord.Principal("carol"), owner(t, c, "t1"), "new owner")
}

func TestTransferByExpiredSpender(t *testing.T) {
	c, _, teardown := setupContract(t)
	defer teardown()

	_, err := c.Execute(testEnv(), contract.MessageInfo{Sender: "alice"}, contract.ExecuteMsg{
		Approve: &contract.ApproveMsg{
			Spender: "carol",
			TokenId: "t1",
			Expires: &tokenrecord.Expiry{AtHeight: 150},
		},
	})
	assert.NoError(t, err, "approve")

	// advance past the approval's height
	env := contract.Env{Block: tokenrecord.BlockInfo{Height: 200, Time: 1500000000}}
	_, err = c.Execute(env, contract.MessageInfo{Sender: "carol"}, contract.ExecuteMsg{
		Transfer: &contract.TransferMsg{Recipient: "carol", TokenId: "t1"},
	})
	assert.Equal(t, fault.Unauthorized, err, "expired approval")
}

func TestTransferClearsApprovals(t *testing.T) {
	c, _, teardown := setupContract(t)
	defer teardown()

	_, err := c.Execute(testEnv(), contract.MessageInfo{Sender: "alice"}, contract.ExecuteMsg{
		Approve: &contract.ApproveMsg{Spender: "carol", TokenId: "t1"},
	})
	assert.NoError(t, err, "approve")

	_, err = c.Execute(testEnv(), contract.MessageInfo{Sender: "alice"}, contract.ExecuteMsg{
		Transfer: &contract.TransferMsg{Recipient: "bob", TokenId: "t1"},
	})
	assert.NoError(t, err, "transfer")

	// carol's approval died with the transfer
	_, err = c.Execute(testEnv(), contract.MessageInfo{Sender: "carol"}, contract.ExecuteMsg{
		Transfer: &contract.TransferMsg{Recipient: "carol", TokenId: "t1"},
	})
	assert.Equal(t, fault.Unauthorized, err, "stale approval")
}

func TestOperatorCanTransferAndApprove(t *testing.T) {
	c, _, teardown := setupContract(t)
	defer teardown()

	_, err := c.Execute(testEnv(), contract.MessageInfo{Sender: "alice"}, contract.ExecuteMsg{
		ApproveAll: &contract.ApproveAllMsg{Operator: "oscar"},
	})
	assert.NoError(t, err, "approve all")

	_, err = c.Execute(testEnv(), contract.MessageInfo{Sender: "oscar"}, contract.ExecuteMsg{
		Approve: &contract.ApproveMsg{Spender: "carol", TokenId: "t1"},
	})
	assert.NoError(t, err, "operator approve")

	_, err = c.Execute(testEnv(), contract.MessageInfo{Sender: "oscar"}, contract.ExecuteMsg{
		Transfer: &contract.TransferMsg{Recipient: "bob", TokenId: "t1"},
	})
	assert.NoError(t, err, "operator transfer")
	assert.Equal(t, tokenrecord.Principal("bob"), owner(t, c, "t1"), "new owner")
}

func TestRevokeAll(t *testing.T) {
	c, _, teardown := setupContract(t)
	defer teardown()

	_, err := c.Execute(testEnv(), contract.MessageInfo{Sender: "alice"}, contract.ExecuteMsg{
		ApproveAll: &contract.ApproveAllMsg{Operator: "oscar"},
	})
	assert.NoError(t, err, "approve all")

	_, err = c.Execute(testEnv(), contract.MessageInfo{Sender: "alice"}, contract.ExecuteMsg{
		RevokeAll: &contract.RevokeAllMsg{Operator: "oscar"},
	})
	assert.NoError(t, err, "revoke all")

	_, err = c.Execute(testEnv(), contract.MessageInfo{Sender: "oscar"}, contract.ExecuteMsg{
		Transfer: &contract.TransferMsg{Recipient: "oscar", TokenId: "t1"},
	})
	assert.Equal(t, fault.Unauthorized, err, "revoked operator")
}

func TestApproveAllWithExpiredExpiry(t *testing.T) {
	c, _, teardown := setupContract(t)
	defer teardown()

	_, err := c.Execute(testEnv(), contract.MessageInfo{Sender: "alice"}, contract.ExecuteMsg{
		ApproveAll: &contract.ApproveAllMsg{
			Operator: "oscar",
			Expires:  &tokenrecord.Expiry{AtHeight: 50},
		},
	})
	assert.Equal(t, fault.InvalidExpiry, err, "already expired")
}

func TestSendCarriesMessage(t *testing.T) {
	c, _, teardown := setupContract(t)
	defer teardown()

	response, err := c.Execute(testEnv(), contract.MessageInfo{Sender: "alice"}, contract.ExecuteMsg{
		Send: &contract.SendMsg{
			Contract: "escrow",
			TokenId:  "t1",
			Msg:      []byte(`{"deposit":{}}`),
		},
	})
	assert.NoError(t, err, "send")
	assert.Equal(t, tokenrecord.Principal("escrow"), owner(t, c, "t1"), "contract owns token")

	attributes := map[string]string{}
	for _, attribute := range response.Attributes {
		attributes[attribute.Key] = attribute.Value
	}
	assert.Equal(t, "send_nft", attributes["action"], "action")
	assert.Equal(t, `{"deposit":{}}`, attributes["msg"], "receive hook payload")
}
