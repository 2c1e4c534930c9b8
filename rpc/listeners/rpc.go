// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package listeners - TLS transport for the JSON-RPC services
package listeners

import (
	"io"
	"io/ioutil"
	"net/rpc"
	"net/rpc/jsonrpc"

	"github.com/bitmark-inc/listener"
	"github.com/bitmark-inc/logger"

	"github.com/licium/liciumd/counter"
	"github.com/licium/liciumd/fault"
	"github.com/licium/liciumd/rpc/certificate"
)

const logName = "client_rpc"

// RPCConfiguration - configuration file data for RPC setup
//
// certificate and private key entries are file paths
type RPCConfiguration struct {
	MaximumConnections int      `gluamapper:"maximum_connections" json:"maximum_connections"`
	Listen             []string `gluamapper:"listen" json:"listen"`
	Certificate        string   `gluamapper:"certificate" json:"certificate"`
	PrivateKey         string   `gluamapper:"private_key" json:"private_key"`
}

// Listener - a started transport that can be shut down
type Listener interface {
	Start() error
	Stop()
}

type rpcListener struct {
	log      *logger.L
	multi    *listener.MultiListener
	argument *serverArgument
}

// carried through the listener to every connection callback
type serverArgument struct {
	log    *logger.L
	server *rpc.Server
	count  *counter.Counter
}

// NewRPC - validate the configuration and prepare the TLS transport
func NewRPC(
	configuration *RPCConfiguration,
	log *logger.L,
	connections *counter.Counter,
	server *rpc.Server,
) (Listener, error) {

	if configuration.MaximumConnections <= 0 {
		log.Errorf("invalid %s maximum connection limit: %d", logName, configuration.MaximumConnections)
		return nil, fault.MissingParameters
	}
	if 0 == len(configuration.Listen) {
		log.Errorf("missing %s listen", logName)
		return nil, fault.MissingParameters
	}

	certificatePEM, err := ioutil.ReadFile(configuration.Certificate)
	if nil != err {
		log.Errorf("certificate: %q error: %s", configuration.Certificate, err)
		return nil, err
	}
	keyPEM, err := ioutil.ReadFile(configuration.PrivateKey)
	if nil != err {
		log.Errorf("private key: %q error: %s", configuration.PrivateKey, err)
		return nil, err
	}

	tlsConfiguration, fingerprint, err := certificate.Get(log, logName, string(certificatePEM), string(keyPEM))
	if nil != err {
		return nil, err
	}
	log.Infof("%s: SHA3-256 fingerprint: %x", logName, fingerprint)

	limiter := listener.NewLimiter(configuration.MaximumConnections)
	multi, err := listener.NewMultiListener(logName, configuration.Listen, tlsConfiguration, limiter, serveConnection)
	if nil != err {
		log.Errorf("invalid %s listen addresses: %v", logName, configuration.Listen)
		return nil, err
	}

	return &rpcListener{
		log:   log,
		multi: multi,
		argument: &serverArgument{
			log:    log,
			server: server,
			count:  connections,
		},
	}, nil
}

// Start - begin accepting connections
func (r *rpcListener) Start() error {
	r.log.Infof("starting %s listener", logName)
	r.multi.Start(r.argument)
	return nil
}

// Stop - shut the transport down
func (r *rpcListener) Stop() {
	r.multi.Stop()
}

// per connection: serve the JSON-RPC codec until the client goes away
func serveConnection(conn io.ReadWriteCloser, argument interface{}) {
	arg := argument.(*serverArgument)

	arg.count.Increment()
	defer arg.count.Decrement()

	codec := jsonrpc.NewServerCodec(conn)
	defer codec.Close()
	arg.server.ServeCodec(codec)
}
