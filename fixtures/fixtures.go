// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package fixtures - shared test setup
package fixtures

import (
	"crypto/ed25519"
	"fmt"
	"os"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/recordd/account"
)

const (
	dir         = "testing"
	LogCategory = "testing"
)

// fixed keys so failures are reproducible
var (
	ProgramKey = keyFromSeed(0x01)
	SignerKey  = keyFromSeed(0x02)
	OtherKey   = keyFromSeed(0x03)

	Program = ProgramKey.Account()
	Signer  = SignerKey.Account()
	Other   = OtherKey.Account()
)

func keyFromSeed(b byte) *account.PrivateKey {
	seed := make([]byte, ed25519.SeedSize)
	for i := range seed {
		seed[i] = b
	}
	return &account.PrivateKey{
		Test:       true,
		PrivateKey: ed25519.NewKeyFromSeed(seed),
	}
}

// SetupTestLogger - log to a scratch directory, critical messages only
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

// TeardownTestLogger - stop logging and remove the scratch directory
func TeardownTestLogger() {
	logger.Finalise()
	removeFiles()
}

func removeFiles() {
	err := os.RemoveAll(dir)
	if nil != err {
		fmt.Println("remove dir with error: ", err)
	}
}
