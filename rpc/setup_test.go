// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpc_test

import (
	"crypto/tls"
	"net"
	"net/rpc/jsonrpc"
	"path/filepath"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/recordd/chain"
	"github.com/bitmark-inc/recordd/fault"
	"github.com/bitmark-inc/recordd/fixtures"
	"github.com/bitmark-inc/recordd/rpc"
	"github.com/bitmark-inc/recordd/rpc/certificate"
	"github.com/bitmark-inc/recordd/rpc/listeners"
	"github.com/bitmark-inc/recordd/rpc/mocks"
	"github.com/bitmark-inc/recordd/rpc/node"
)

func TestInitialise(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	l := mocks.NewMockLedger(ctl)
	l.EXPECT().Identity().Return(fixtures.Program).AnyTimes()

	dir := t.TempDir()
	configuration := &listeners.RPCConfiguration{
		MaximumConnections: 10,
		Certificate:        filepath.Join(dir, "rpc.crt"),
		PrivateKey:         filepath.Join(dir, "rpc.key"),
	}

	err := rpc.Initialise(configuration, l, chain.Testing, "1.0", nil)
	assert.NotNil(t, err, "missing certificate accepted")

	err = certificate.Generate("test", configuration.Certificate, configuration.PrivateKey, nil)
	assert.Nil(t, err, "generate error")

	err = rpc.Initialise(configuration, l, chain.Testing, "1.0", nil)
	assert.Equal(t, fault.MissingParameters, err, "missing listen accepted")

	probe, err := net.Listen("tcp4", "127.0.0.1:0")
	assert.Nil(t, err, "listen error")
	address := probe.Addr().String()
	probe.Close()

	configuration.Listen = []string{address}
	err = rpc.Initialise(configuration, l, chain.Testing, "1.0", nil)
	assert.Nil(t, err, "initialise error")

	err = rpc.Initialise(configuration, l, chain.Testing, "1.0", nil)
	assert.Equal(t, fault.AlreadyInitialised, err, "second initialise accepted")

	conn, err := tls.Dial("tcp", address, &tls.Config{InsecureSkipVerify: true})
	if assert.Nil(t, err, "dial error") {
		client := jsonrpc.NewClient(conn)
		var reply node.InfoReply
		err = client.Call("Node.Info", &node.InfoArguments{}, &reply)
		assert.Nil(t, err, "info error")
		assert.Equal(t, uint64(1), reply.RPCs, "wrong connection count")
		client.Close()
	}

	assert.Nil(t, rpc.Finalise(), "finalise error")
	assert.Equal(t, fault.NotInitialised, rpc.Finalise(), "second finalise accepted")

	_, err = net.Dial("tcp", address)
	assert.NotNil(t, err, "listener still open")
}
