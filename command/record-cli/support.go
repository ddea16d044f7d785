// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"strings"

	"github.com/bitmark-inc/recordd/account"
	"github.com/bitmark-inc/recordd/command/record-cli/rpccalls"
	"github.com/bitmark-inc/recordd/record"
)

// the signing key given by the global --key option
func loadKey(m *metadata) (*account.PrivateKey, error) {
	if "" == m.keyFile {
		return nil, fmt.Errorf("missing key file, use: --key=FILE")
	}
	privateKey, err := account.ReadPrivateKeyFile(m.keyFile)
	if nil != err {
		return nil, err
	}
	if privateKey.Test != m.testnet {
		return nil, fmt.Errorf("key: %q is not for network: %s", m.keyFile, m.network)
	}
	return privateKey, nil
}

func connect(m *metadata) (*rpccalls.Client, error) {
	client, err := rpccalls.NewClient(m.testnet, m.connect, m.verbose, m.e)
	if nil != err {
		return nil, fmt.Errorf("connect to: %s  error: %s", m.connect, err)
	}
	return client, nil
}

func parseAddress(s string) (record.Address, error) {
	var address record.Address
	s = strings.TrimSpace(s)
	if "" == s {
		return address, fmt.Errorf("missing address")
	}
	err := address.UnmarshalText([]byte(s))
	return address, err
}

func parseAccount(m *metadata, s string) (*account.Account, error) {
	a, err := account.FromBase58(s)
	if nil != err {
		return nil, err
	}
	if a.IsTesting() != m.testnet {
		return nil, fmt.Errorf("account: %s is not for network: %s", a, m.network)
	}
	return a, nil
}

func checkSeed(seed string) (string, error) {
	if "" == seed {
		return "", fmt.Errorf("seed is required")
	}
	return seed, nil
}
