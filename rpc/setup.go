// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpc

import (
	"sync"
	"sync/atomic"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/recordd/fault"
	"github.com/bitmark-inc/recordd/rpc/certificate"
	"github.com/bitmark-inc/recordd/rpc/listeners"
	"github.com/bitmark-inc/recordd/rpc/record"
	"github.com/bitmark-inc/recordd/rpc/server"
)

const (
	tlsName = "client_rpc"
)

// globals
type rpcData struct {
	sync.RWMutex // to allow locking

	log *logger.L // logger

	listener    *listeners.RPCListener
	connections atomic.Uint64

	// set once during initialise
	initialised bool
}

// global data
var globalData rpcData

// Initialise - start the client RPC listeners
func Initialise(configuration *listeners.RPCConfiguration, l record.Ledger, chainName string, version string, publishKey []byte) error {

	globalData.Lock()
	defer globalData.Unlock()

	// no need to start if already started
	if globalData.initialised {
		return fault.AlreadyInitialised
	}

	log := logger.New("rpc")
	globalData.log = log
	log.Info("starting…")

	tlsConfig, certificateFingerprint, err := certificate.Load(log, tlsName, configuration.Certificate, configuration.PrivateKey)
	if nil != err {
		return err
	}

	globalData.connections.Store(0)

	rpcListener, err := listeners.NewRPC(
		configuration,
		log,
		&globalData.connections,
		server.Create(log, l, chainName, version, publishKey, &globalData.connections),
		tlsConfig,
		certificateFingerprint,
	)
	if nil != err {
		return err
	}
	err = rpcListener.Serve()
	if nil != err {
		return err
	}
	globalData.listener = rpcListener

	// all data initialised
	globalData.initialised = true

	return nil
}

// Finalise - stop all listeners and drop client connections
func Finalise() error {

	globalData.Lock()
	defer globalData.Unlock()

	if !globalData.initialised {
		return fault.NotInitialised
	}

	globalData.log.Info("shutting down…")
	globalData.log.Flush()

	globalData.listener.Close()
	globalData.listener = nil

	// finally...
	globalData.initialised = false

	globalData.log.Info("finished")
	globalData.log.Flush()

	return nil
}
