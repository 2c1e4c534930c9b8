// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/getoptions"
	"github.com/bitmark-inc/logger"

	"github.com/licium/liciumd/contract"
	"github.com/licium/liciumd/counter"
	"github.com/licium/liciumd/fault"
	"github.com/licium/liciumd/ownership"
	"github.com/licium/liciumd/registry"
	"github.com/licium/liciumd/rpc/listeners"
	"github.com/licium/liciumd/rpc/server"
	"github.com/licium/liciumd/storage"
)

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

// connections served by the client RPC listener
var connectionCountRPC counter.Counter

// main program
func main() {
	// ensure exit handler is first
	defer exitwithstatus.Handler()

	flags := []getoptions.Option{
		{Long: "help", HasArg: getoptions.NO_ARGUMENT, Short: 'h'},
		{Long: "verbose", HasArg: getoptions.NO_ARGUMENT, Short: 'v'},
		{Long: "quiet", HasArg: getoptions.NO_ARGUMENT, Short: 'q'},
		{Long: "version", HasArg: getoptions.NO_ARGUMENT, Short: 'V'},
		{Long: "config-file", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'c'},
	}

	program, options, arguments, err := getoptions.GetOS(flags)
	if nil != err {
		exitwithstatus.Message("%s: getoptions error: %s", program, err)
	}

	if len(options["version"]) > 0 {
		processSetupCommand(program, []string{"version"})
		return
	}

	if len(options["help"]) > 0 {
		processSetupCommand(program, []string{"help"})
		return
	}

	// these commands do not require the configuration and
	// process data needed for initial setup
	if len(arguments) > 0 && processSetupCommand(program, arguments) {
		return
	}

	if 1 != len(options["config-file"]) {
		exitwithstatus.Message("%s: only one config-file option is required, %d were detected", program, len(options["config-file"]))
	}

	// read options and parse the configuration file
	configurationFile := options["config-file"][0]
	theConfiguration, err := getConfiguration(configurationFile)
	if nil != err {
		exitwithstatus.Message("%s: failed to read configuration from: %q  error: %s", program, configurationFile, err)
	}

	// start logging
	if err = logger.Initialise(theConfiguration.Logging); nil != err {
		exitwithstatus.Message("%s: logger setup failed with error: %s", program, err)
	}
	defer logger.Finalise()

	// create a logger channel for the main program
	log := logger.New("main")
	defer log.Info("finished")
	log.Info("starting…")
	log.Infof("version: %s", version)

	// ------------------
	// start of real main
	// ------------------

	// optional PID file
	// use if not running under a supervisor program like daemon(8)
	if "" != theConfiguration.PidFile {
		lockFile, err := os.OpenFile(theConfiguration.PidFile, os.O_WRONLY|os.O_EXCL|os.O_CREATE, os.ModeExclusive|0600)
		if nil != err {
			if os.IsExist(err) {
				exitwithstatus.Message("%s: another instance is already running", program)
			}
			exitwithstatus.Message("%s: PID file: %q creation failed, error: %s", program, theConfiguration.PidFile, err)
		}
		fmt.Fprintf(lockFile, "%d\n", os.Getpid())
		lockFile.Close()
		defer os.Remove(theConfiguration.PidFile)
	}

	// open the store
	log.Infof("database: %q", theConfiguration.Database.Name)
	store, err := storage.New(theConfiguration.Database.Name)
	if nil != err {
		log.Criticalf("storage open error: %s", err)
		exitwithstatus.Message("storage open error: %s", err)
	}
	defer store.Close()

	// wire the registry workflows
	contractLog := logger.New("contract")
	c := contract.New(contractLog, store, ownership.New(logger.New("ownership"), registry.New(store)))

	// first start: store the registry metadata
	_, err = c.Instantiate(contract.HostEnv(), contract.MessageInfo{}, contract.InstantiateMsg{
		Name:   theConfiguration.Contract.Name,
		Symbol: theConfiguration.Contract.Symbol,
	})
	if nil != err && fault.AlreadyInitialised != err {
		log.Criticalf("contract instantiate error: %s", err)
		exitwithstatus.Message("contract instantiate error: %s", err)
	}

	// client RPC server and listener
	rpcLog := logger.New("rpc")
	rpcServer := server.Create(rpcLog, version, &connectionCountRPC, c)
	rpcListener, err := listeners.NewRPC(&theConfiguration.ClientRPC, rpcLog, &connectionCountRPC, rpcServer)
	if nil != err {
		log.Criticalf("rpc setup error: %s", err)
		exitwithstatus.Message("rpc setup error: %s", err)
	}
	if err := rpcListener.Start(); nil != err {
		log.Criticalf("rpc listen error: %s", err)
		exitwithstatus.Message("rpc listen error: %s", err)
	}
	defer rpcListener.Stop()

	// wait for CTRL-C before shutting down to allow manual testing
	if 0 == len(options["quiet"]) {
		fmt.Printf("Type CTRL-C to stop\n")
	}

	// turn Signals into channel messages
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, os.Interrupt, syscall.SIGTERM)
	sig := <-ch
	log.Infof("received signal: %v", sig)
	if 0 == len(options["quiet"]) {
		fmt.Printf("\nreceived signal: %v\n", sig)
		fmt.Printf("\nshutting down...\n")
	}
}
