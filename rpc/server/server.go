// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package server

import (
	"net/rpc"
	"sync/atomic"
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/recordd/chain"
	"github.com/bitmark-inc/recordd/rpc/node"
	"github.com/bitmark-inc/recordd/rpc/record"
)

// Create - an RPC server with all client services registered
func Create(log *logger.L, l record.Ledger, chainName string, version string, publishKey []byte, connections *atomic.Uint64) *rpc.Server {

	start := time.Now().UTC()

	server := rpc.NewServer()

	_ = server.Register(record.New(log, l, chain.IsTesting(chainName)))
	_ = server.Register(node.New(log, start, version, chainName, l.Identity(), publishKey, connections))

	return server
}
