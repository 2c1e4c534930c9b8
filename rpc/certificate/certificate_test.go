// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package certificate_test

import (
	"crypto/tls"
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/sha3"

	"github.com/bitmark-inc/logger"

	"github.com/licium/liciumd/fault"
	"github.com/licium/liciumd/rpc/certificate"
	"github.com/licium/liciumd/rpc/fixtures"
)

func TestMain(m *testing.M) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()
	m.Run()
}

func TestMakeSelfSignedAndGet(t *testing.T) {
	directory, err := ioutil.TempDir("", "liciumd-certificate-test")
	assert.NoError(t, err, "scratch directory")
	defer os.RemoveAll(directory)

	certificateFileName := filepath.Join(directory, "rpc.crt")
	keyFileName := filepath.Join(directory, "rpc.key")

	err = certificate.MakeSelfSigned("test", certificateFileName, keyFileName, nil)
	assert.NoError(t, err, "make self signed")

	// refuses to overwrite
	err = certificate.MakeSelfSigned("test", certificateFileName, keyFileName, nil)
	assert.Equal(t, fault.CertificateFileAlreadyExists, err, "existing certificate")

	certificatePEM, err := ioutil.ReadFile(certificateFileName)
	assert.NoError(t, err, "read certificate")
	keyPEM, err := ioutil.ReadFile(keyFileName)
	assert.NoError(t, err, "read key")

	tlsConfiguration, fingerprint, err := certificate.Get(
		logger.New(fixtures.LogCategory),
		"test",
		string(certificatePEM),
		string(keyPEM),
	)
	assert.NoError(t, err, "get")

	pair, err := tls.X509KeyPair(certificatePEM, keyPEM)
	assert.NoError(t, err, "keypair")
	assert.Equal(t, sha3.Sum256(pair.Certificate[0]), fingerprint, "fingerprint")
	assert.Equal(t, pair, tlsConfiguration.Certificates[0], "configuration")
}

func TestGetRejectsGarbage(t *testing.T) {
	_, _, err := certificate.Get(logger.New(fixtures.LogCategory), "test", "garbage", "garbage")
	assert.Error(t, err, "garbage keypair")
}
