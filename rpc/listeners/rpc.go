// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package listeners - TLS JSON-RPC listeners
package listeners

import (
	"crypto/tls"
	"net"
	"net/rpc"
	"net/rpc/jsonrpc"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/recordd/fault"
)

const (
	logName            = "client_rpc"
	minConnectionCount = 1
)

// RPCConfiguration - configuration file data for RPC setup
type RPCConfiguration struct {
	MaximumConnections uint64   `gluamapper:"maximum_connections" json:"maximum_connections"`
	Listen             []string `gluamapper:"listen" json:"listen"`
	Certificate        string   `gluamapper:"certificate" json:"certificate"`
	PrivateKey         string   `gluamapper:"private_key" json:"private_key"`
}

// RPCListener - accept TLS connections and serve JSON-RPC on each
type RPCListener struct {
	sync.Mutex
	log             *logger.L
	count           *atomic.Uint64
	server          *rpc.Server
	maxConnections  uint64
	tlsConfig       *tls.Config
	ipType          []string
	listenIPAndPort []string
	listeners       []net.Listener
	connections     map[net.Conn]struct{}
	closed          bool
}

// NewRPC - validate the configuration and create a listener
//
// count tracks the number of open client connections
func NewRPC(
	configuration *RPCConfiguration,
	log *logger.L,
	count *atomic.Uint64,
	server *rpc.Server,
	tlsConfig *tls.Config,
	certificateFingerprint [32]byte,
) (*RPCListener, error) {
	if configuration.MaximumConnections < minConnectionCount {
		log.Errorf("invalid %s maximum connection limit: %d", logName, configuration.MaximumConnections)
		return nil, fault.MissingParameters
	}

	if 0 == len(configuration.Listen) {
		log.Errorf("missing %s listen", logName)
		return nil, fault.MissingParameters
	}

	log.Infof("%s: SHA3-256 fingerprint: %x", logName, certificateFingerprint)

	r := &RPCListener{
		log:             log,
		count:           count,
		server:          server,
		maxConnections:  configuration.MaximumConnections,
		tlsConfig:       tlsConfig,
		listenIPAndPort: make([]string, len(configuration.Listen)),
		connections:     make(map[net.Conn]struct{}),
	}
	copy(r.listenIPAndPort, configuration.Listen)

	// validate all listen addresses
	ipType, err := parseListenAddress(r.listenIPAndPort, log)
	if nil != err {
		return nil, err
	}
	r.ipType = ipType

	return r, nil
}

// Serve - open all listen addresses and start accepting
func (r *RPCListener) Serve() error {
	r.Lock()
	defer r.Unlock()

	for i, listen := range r.listenIPAndPort {
		r.log.Infof("starting RPC server: %s", listen)
		listener, err := tls.Listen(r.ipType[i], listen, r.tlsConfig)
		if nil != err {
			r.log.Errorf("rpc server listen error: %s", err)
			r.closeAll()
			return err
		}
		r.listeners = append(r.listeners, listener)

		go r.accept(listener)
	}
	return nil
}

// Close - stop accepting and drop all client connections
func (r *RPCListener) Close() {
	r.Lock()
	defer r.Unlock()
	r.closeAll()
}

// must hold lock
func (r *RPCListener) closeAll() {
	r.closed = true
	for _, listener := range r.listeners {
		_ = listener.Close()
	}
	r.listeners = nil
	for conn := range r.connections {
		_ = conn.Close()
	}
}

func (r *RPCListener) accept(listener net.Listener) {
	log := r.log
	for {
		conn, err := listener.Accept()
		if nil != err {
			r.Lock()
			closed := r.closed
			r.Unlock()
			if !closed {
				log.Errorf("rpc.server terminated: accept error: %s", err)
			}
			break
		}
		if r.count.Add(1) > r.maxConnections {
			r.count.Add(^uint64(0))
			log.Warnf("connection limit: %d reached, reject: %s", r.maxConnections, conn.RemoteAddr())
			_ = conn.Close()
			continue
		}

		r.Lock()
		if r.closed {
			r.Unlock()
			r.count.Add(^uint64(0))
			_ = conn.Close()
			continue
		}
		r.connections[conn] = struct{}{}
		r.Unlock()

		go r.serve(conn)
	}
	_ = listener.Close()
	log.Info("RPC accept terminated")
}

func (r *RPCListener) serve(conn net.Conn) {
	r.server.ServeCodec(jsonrpc.NewServerCodec(conn))
	_ = conn.Close()

	r.Lock()
	delete(r.connections, conn)
	r.Unlock()

	r.count.Add(^uint64(0))
}

func parseListenAddress(addrs []string, log *logger.L) ([]string, error) {
	parsed := make([]string, len(addrs))
	for i, listen := range addrs {
		if "" == listen {
			log.Errorf("rpc server listen error: empty address")
			return nil, fault.InvalidIpAddress
		}
		host := ""
		if '*' == listen[0] {
			// change "*:PORT" to "[::]:PORT"
			// on the assumption that this will listen on tcp4 and tcp6
			addrs[i] = "[::]" + ":" + strings.TrimPrefix(listen, "*:")
			host = "::"
			parsed[i] = "tcp"
		} else if '[' == listen[0] {
			host = strings.Split(listen[1:], "]:")[0]
			parsed[i] = "tcp6"
		} else {
			host = strings.Split(listen, ":")[0]
			parsed[i] = "tcp4"
		}

		if ip := net.ParseIP(host); nil == ip {
			err := fault.InvalidIpAddress
			log.Errorf("rpc server listen: %q  error: %s", listen, err)
			return nil, err
		}
	}

	return parsed, nil
}
