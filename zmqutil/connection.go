// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package zmqutil

import (
	"net"
	"strconv"
	"strings"

	"github.com/bitmark-inc/recordd/fault"
)

// CanonicalIPandPort - convert "host:port" to a zmq endpoint
//
// host must be a literal IP address, "*" binds all IPv4 interfaces
// returns:
//   endpoint with prefix
//   true if IPv6
func CanonicalIPandPort(prefix string, address string) (string, bool, error) {
	host, portString, err := net.SplitHostPort(strings.TrimSpace(address))
	if nil != err {
		return "", false, fault.InvalidIpAddress
	}

	port, err := strconv.Atoi(portString)
	if nil != err || port < 1 || port > 65535 {
		return "", false, fault.InvalidPortNumber
	}

	if "*" == host {
		return prefix + "*:" + portString, false, nil
	}

	ip := net.ParseIP(host)
	if nil == ip {
		return "", false, fault.InvalidIpAddress
	}

	if nil != ip.To4() {
		return prefix + ip.String() + ":" + portString, false, nil
	}
	return prefix + "[" + ip.String() + "]:" + portString, true, nil
}
