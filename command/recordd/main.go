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
	"github.com/prometheus/client_golang/prometheus"

	"github.com/bitmark-inc/recordd/account"
	"github.com/bitmark-inc/recordd/background"
	"github.com/bitmark-inc/recordd/chain"
	"github.com/bitmark-inc/recordd/fault"
	"github.com/bitmark-inc/recordd/ledger"
	"github.com/bitmark-inc/recordd/metrics"
	"github.com/bitmark-inc/recordd/program"
	"github.com/bitmark-inc/recordd/publish"
	"github.com/bitmark-inc/recordd/rpc"
	"github.com/bitmark-inc/recordd/storage"
)

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

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
		{Long: "memory-stats", HasArg: getoptions.NO_ARGUMENT, Short: 'm'},
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

	// these commands require the configuration and
	// perform enquiries on the configuration
	if len(arguments) > 0 && processConfigCommand(arguments, theConfiguration) {
		return
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
	log.Debugf("theConfiguration: %v", theConfiguration)

	// ------------------
	// start of real main
	// ------------------

	// optional PID file
	// use if not running under a supervisor program like daemon(8)
	if "" != theConfiguration.PidFile {
		lockFile, err := os.OpenFile(theConfiguration.PidFile, os.O_WRONLY|os.O_EXCL|os.O_CREATE, os.ModeExclusive|0600)
		if err != nil {
			if os.IsExist(err) {
				exitwithstatus.Message("%s: another instance is already running", program)
			}
			exitwithstatus.Message("%s: PID file: %q creation failed, error: %s", program, theConfiguration.PidFile, err)
		}
		fmt.Fprintf(lockFile, "%d\n", os.Getpid())
		lockFile.Close()
		defer os.Remove(theConfiguration.PidFile)
	}

	// general info
	log.Infof("chain: %s", theConfiguration.Chain)
	log.Infof("test mode: %v", chain.IsTesting(theConfiguration.Chain))
	log.Infof("database: %q", theConfiguration.Database.Name)

	// connection info
	log.Debugf("%s = %#v", "ClientRPC", theConfiguration.ClientRPC)
	log.Debugf("%s = %#v", "Publishing", theConfiguration.Publishing)
	log.Debugf("%s = %#v", "Metrics", theConfiguration.Metrics)

	// the administrator identity of the program
	identity, err := account.ReadPublicKeyFile(theConfiguration.Identity.PublicKey)
	if nil != err {
		log.Criticalf("identity: %q  error: %s", theConfiguration.Identity.PublicKey, err)
		exitwithstatus.Message("identity: %q  error: %s", theConfiguration.Identity.PublicKey, err)
	}
	if identity.IsTesting() != chain.IsTesting(theConfiguration.Chain) {
		log.Criticalf("identity: %s  error: %s", identity, fault.WrongNetworkForPublicKey)
		exitwithstatus.Message("identity: %s  error: %s", identity, fault.WrongNetworkForPublicKey)
	}
	log.Infof("identity: %s", identity)

	// start the data storage
	log.Info("initialise storage")
	err = storage.Initialise(theConfiguration.Database.Name, storage.ReadWrite)
	if nil != err {
		log.Criticalf("storage initialise error: %s", err)
		exitwithstatus.Message("storage initialise error: %s", err)
	}
	defer storage.Finalise()

	l := newLedger(identity)

	// start up the publishing background processes
	err = publish.Initialise(&theConfiguration.Publishing)
	if nil != err {
		log.Criticalf("publish initialise error: %s", err)
		exitwithstatus.Message("publish initialise error: %s", err)
	}
	defer publish.Finalise()

	// start up the rpc background processes
	err = rpc.Initialise(&theConfiguration.ClientRPC, l, theConfiguration.Chain, version, publish.PublicKey())
	if nil != err {
		log.Criticalf("rpc initialise error: %s", err)
		exitwithstatus.Message("rpc initialise error: %s", err)
	}
	defer rpc.Finalise()

	// optional processes
	processes := background.Processes{}
	if "" != theConfiguration.Metrics.Listen {
		processes = append(processes, metrics.NewServer(theConfiguration.Metrics.Listen, prometheus.DefaultGatherer))
	}
	if len(options["memory-stats"]) > 0 {
		processes = append(processes, &memoryStatistics{})
	}
	optional := background.Start(processes, nil)
	defer optional.Stop()

	// wait for CTRL-C before shutting down to allow manual testing
	if 0 == len(options["quiet"]) {
		fmt.Printf("\n\nWaiting for CTRL-C (SIGINT) or 'kill <pid>' (SIGTERM)…")
	}

	// turn Signals into channel messages
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)
	sig := <-ch
	log.Infof("received signal: %v", sig)
	if 0 == len(options["quiet"]) {
		fmt.Printf("\nreceived signal: %v\n", sig)
		fmt.Printf("\nshutting down…\n")
	}

	log.Info("shutting down…")
}

// the record host, administering records for identity
func newLedger(identity *account.Account) *ledger.Ledger {
	return ledger.New(
		logger.New("ledger"),
		program.New(logger.New("program"), identity),
		storage.Pool.Records,
		metrics.New(),
	)
}
