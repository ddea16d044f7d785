// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package publish - broadcast record changes to ZeroMQ subscribers
package publish

import (
	"sync"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/recordd/background"
	"github.com/bitmark-inc/recordd/fault"
	"github.com/bitmark-inc/recordd/zmqutil"
)

// Configuration - a block of configuration data
//
// this is read from a Lua configuration file
type Configuration struct {
	Broadcast  []string `gluamapper:"broadcast" json:"broadcast"`
	PrivateKey string   `gluamapper:"private_key" json:"private_key"`
	PublicKey  string   `gluamapper:"public_key" json:"public_key"`
}

// globals for background process
type publishData struct {
	sync.RWMutex // to allow locking

	log *logger.L // logger

	brdc broadcaster // for broadcasting record updates

	publicKey []byte

	// for background
	background *background.T

	// set once during initialise
	initialised bool
}

// global data
var globalData publishData

// Initialise - start the broadcaster
//
// without keys the sockets are unencrypted
func Initialise(configuration *Configuration) error {
	globalData.Lock()
	defer globalData.Unlock()

	// no need to start if already started
	if globalData.initialised {
		return fault.AlreadyInitialised
	}

	log := logger.New("publish")
	globalData.log = log
	log.Info("starting…")

	privateKey := []byte(nil)
	publicKey := []byte(nil)

	if "" != configuration.PrivateKey || "" != configuration.PublicKey {
		err := zmqutil.StartAuthentication()
		if nil != err {
			log.Errorf("zmq authentication error: %s", err)
			return err
		}

		privateKey, err = zmqutil.ReadPrivateKeyFile(configuration.PrivateKey)
		if nil != err {
			log.Errorf("read private key file: %q  error: %s", configuration.PrivateKey, err)
			return err
		}
		publicKey, err = zmqutil.ReadPublicKeyFile(configuration.PublicKey)
		if nil != err {
			log.Errorf("read public key file: %q  error: %s", configuration.PublicKey, err)
			return err
		}
		log.Infof("public key: %x", publicKey)
	}

	globalData.publicKey = publicKey

	if err := globalData.brdc.initialise(privateKey, publicKey, configuration.Broadcast); nil != err {
		return err
	}

	// all data initialised
	globalData.initialised = true

	// start background processes
	log.Info("start background…")

	processes := background.Processes{
		&globalData.brdc,
	}

	globalData.background = background.Start(processes, log)

	return nil
}

// PublicKey - the CURVE public key subscribers must use, nil if unencrypted
func PublicKey() []byte {
	globalData.RLock()
	defer globalData.RUnlock()
	return globalData.publicKey
}

// Finalise - stop all background tasks
func Finalise() error {
	globalData.Lock()
	defer globalData.Unlock()

	if !globalData.initialised {
		return fault.NotInitialised
	}

	globalData.log.Info("shutting down…")
	globalData.log.Flush()

	// stop background
	globalData.background.Stop()

	// finally...
	globalData.initialised = false

	globalData.log.Info("finished")
	globalData.log.Flush()

	return nil
}
