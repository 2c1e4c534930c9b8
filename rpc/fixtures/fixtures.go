// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package fixtures - shared scaffolding for the RPC handler tests
package fixtures

import (
	"fmt"
	"io/ioutil"
	"os"
	"testing"

	"github.com/bitmark-inc/logger"

	"github.com/licium/liciumd/contract"
	"github.com/licium/liciumd/currency"
	"github.com/licium/liciumd/ownership"
	"github.com/licium/liciumd/registry"
	"github.com/licium/liciumd/storage"
	"github.com/licium/liciumd/tokenrecord"
)

const (
	dir         = "testing"
	LogCategory = "testing"
)

func SetupTestLogger() {
	removeFiles()
	_ = os.Mkdir(dir, 0700)

	logging := logger.Configuration{
		Directory: dir,
		File:      fmt.Sprintf("%s.log", LogCategory),
		Size:      1048576,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	}

	// start logging
	_ = logger.Initialise(logging)
}

func TeardownTestLogger() {
	logger.Finalise()
	removeFiles()
}

// NewContract - an instantiated contract over a scratch store
func NewContract(t *testing.T) (*contract.Contract, func()) {
	t.Helper()

	directory, err := ioutil.TempDir("", "liciumd-rpc-test")
	if nil != err {
		t.Fatalf("cannot create scratch directory: %s", err)
	}

	store, err := storage.New(directory + "/rpc.leveldb")
	if nil != err {
		_ = os.RemoveAll(directory)
		t.Fatalf("cannot open store: %s", err)
	}

	log := logger.New(LogCategory)
	c := contract.New(log, store, ownership.New(log, registry.New(store)))

	_, err = c.Instantiate(contract.HostEnv(), contract.MessageInfo{Sender: "creator"}, contract.InstantiateMsg{
		Name:   "licium",
		Symbol: "LIC",
	})
	if nil != err {
		t.Fatalf("instantiate: %s", err)
	}

	return c, func() {
		_ = store.Close()
		_ = os.RemoveAll(directory)
	}
}

// MintToken - register one token with fixed licensing terms
func MintToken(t *testing.T, c *contract.Contract, tokenId string, fingerprint string) {
	t.Helper()

	_, err := c.Execute(contract.HostEnv(), contract.MessageInfo{Sender: "alice"}, contract.ExecuteMsg{
		Mint: &contract.MintMsg{
			TokenId:      tokenrecord.TokenId(tokenId),
			Owner:        "alice",
			Name:         "work " + tokenId,
			Fingerprint:  fingerprint,
			TopHash:      "tophash-" + tokenId,
			LicenseURI:   "https://example.com/license/" + tokenId,
			LicensePrice: currency.Coin{Denom: "uatom", Amount: 1000},
		},
	})
	if nil != err {
		t.Fatalf("mint %s: %s", tokenId, err)
	}
}

func removeFiles() {
	err := os.RemoveAll(dir)
	if nil != err {
		fmt.Println("remove dir with error: ", err)
	}
}
