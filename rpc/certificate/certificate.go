// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package certificate - TLS keypair loading and self-signed generation
// for the client RPC listener
package certificate

import (
	"crypto/tls"
	"io/ioutil"
	"os"
	"time"

	"golang.org/x/crypto/sha3"

	"github.com/bitmark-inc/certgen"
	"github.com/bitmark-inc/logger"

	"github.com/licium/liciumd/fault"
)

// self-signed certificates are valid for ten years
const selfSignedValidity = 10 * 365 * 24 * time.Hour

// Get - load a PEM keypair and return the TLS configuration together
// with the certificate fingerprint
func Get(log *logger.L, name string, certificatePEM string, keyPEM string) (*tls.Config, [32]byte, error) {
	var fin [32]byte

	keyPair, err := tls.X509KeyPair([]byte(certificatePEM), []byte(keyPEM))
	if nil != err {
		log.Errorf("%s failed to load keypair: %v", name, err)
		return nil, fin, err
	}

	tlsConfiguration := &tls.Config{
		Certificates: []tls.Certificate{
			keyPair,
		},
	}

	fin = fingerprint(keyPair.Certificate[0])

	return tlsConfiguration, fin, nil
}

// MakeSelfSigned - create a self-signed certificate and key file pair
//
// refuses to overwrite existing files
func MakeSelfSigned(name string, certificateFileName string, keyFileName string, extraHosts []string) error {

	if fileExists(certificateFileName) {
		return fault.CertificateFileAlreadyExists
	}
	if fileExists(keyFileName) {
		return fault.KeyFileAlreadyExists
	}

	org := "liciumd self signed cert for: " + name
	validUntil := time.Now().Add(selfSignedValidity)
	cert, key, err := certgen.NewTLSCertPair(org, validUntil, false, extraHosts)
	if nil != err {
		return err
	}

	if err = ioutil.WriteFile(certificateFileName, cert, 0666); nil != err {
		return err
	}
	if err = ioutil.WriteFile(keyFileName, key, 0600); nil != err {
		_ = os.Remove(certificateFileName)
		return err
	}
	return nil
}

// compute the SHA3-256 fingerprint of a DER certificate
//
// verify with: openssl x509 -outform DER -in rpc.crt | sha3sum -a 256
func fingerprint(certificate []byte) [32]byte {
	return sha3.Sum256(certificate)
}

func fileExists(name string) bool {
	_, err := os.Stat(name)
	return nil == err
}
