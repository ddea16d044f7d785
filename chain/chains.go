// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package chain - the networks a record host can serve
package chain

import (
	"net"
	"strconv"
)

// names of all chains
const (
	Bitmark = "bitmark"
	Testing = "testing"
	Local   = "local"
)

// default client RPC ports
const (
	bitmarkPort = 2130
	testingPort = 12130
	localPort   = 22130
)

// Valid - validate a chain name
func Valid(name string) bool {
	switch name {
	case Bitmark, Testing, Local:
		return true
	default:
		return false
	}
}

// IsTesting - true if accounts on this chain carry the test flag
func IsTesting(name string) bool {
	return Bitmark != name
}

// DefaultConnect - loopback RPC address of a chain, empty for an invalid name
func DefaultConnect(name string) string {
	port := 0
	switch name {
	case Bitmark:
		port = bitmarkPort
	case Testing:
		port = testingPort
	case Local:
		port = localPort
	default:
		return ""
	}
	return net.JoinHostPort("127.0.0.1", strconv.Itoa(port))
}
