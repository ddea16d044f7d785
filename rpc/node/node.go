// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package node

import (
	"encoding/hex"
	"sync/atomic"
	"time"

	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/recordd/account"
	"github.com/bitmark-inc/recordd/rpc/ratelimit"
)

const (
	rateLimitNode = 200
	rateBurstNode = 100
)

// Node - type for RPC calls
type Node struct {
	Log         *logger.L
	Limiter     *rate.Limiter
	Start       time.Time
	Version     string
	Chain       string
	Identity    *account.Account
	PublishKey  []byte
	connections *atomic.Uint64
}

// New - create the Node RPC service
//
// connections is the live client connection count
func New(log *logger.L, start time.Time, version string, chain string, identity *account.Account, publishKey []byte, connections *atomic.Uint64) *Node {
	return &Node{
		Log:         log,
		Limiter:     rate.NewLimiter(rateLimitNode, rateBurstNode),
		Start:       start,
		Version:     version,
		Chain:       chain,
		Identity:    identity,
		PublishKey:  publishKey,
		connections: connections,
	}
}

// InfoArguments - empty arguments for info request
type InfoArguments struct{}

// InfoReply - results from info request
type InfoReply struct {
	Chain      string           `json:"chain"`
	Version    string           `json:"version"`
	Uptime     string           `json:"uptime"`
	RPCs       uint64           `json:"rpcs"`
	Identity   *account.Account `json:"identity"`
	PublishKey string           `json:"publishKey,omitempty"`
}

// Info - return some information about this node
func (node *Node) Info(_ *InfoArguments, reply *InfoReply) error {
	if err := ratelimit.Limit(node.Limiter); nil != err {
		return err
	}

	reply.Chain = node.Chain
	reply.Version = node.Version
	reply.Uptime = time.Since(node.Start).Round(time.Second).String()
	reply.Identity = node.Identity
	if nil != node.connections {
		reply.RPCs = node.connections.Load()
	}
	if 0 != len(node.PublishKey) {
		reply.PublishKey = hex.EncodeToString(node.PublishKey)
	}

	return nil
}
