// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package zmqutil

import (
	"time"

	zmq "github.com/pebbe/zmq4"

	"github.com/bitmark-inc/recordd/fault"
)

// Subscriber - a SUB socket connected to one publisher
type Subscriber struct {
	socket *zmq.Socket
}

// NewSubscriber - connect to a publisher and subscribe to one command
//
// a nil serverPublicKey makes an unencrypted connection, otherwise a
// fresh client key pair is generated for the CURVE handshake; Receive
// gives up after timeout
func NewSubscriber(connect string, serverPublicKey []byte, command string, timeout time.Duration) (*Subscriber, error) {
	address, v6, err := CanonicalIPandPort("tcp://", connect)
	if nil != err {
		return nil, err
	}

	socket, err := zmq.NewSocket(zmq.SUB)
	if nil != err {
		return nil, err
	}

	fail := func(err error) (*Subscriber, error) {
		socket.Close()
		return nil, err
	}

	if nil != serverPublicKey {
		if publicLength != len(serverPublicKey) {
			return fail(fault.InvalidPublicKeyFile)
		}
		publicKey, privateKey, err := zmq.NewCurveKeypair()
		if nil != err {
			return fail(err)
		}
		err = socket.SetCurveServer(0)
		if nil == err {
			err = socket.SetCurvePublickey(publicKey)
		}
		if nil == err {
			err = socket.SetCurveSecretkey(privateKey)
		}
		if nil == err {
			err = socket.SetCurveServerkey(string(serverPublicKey))
		}
		if nil != err {
			return fail(err)
		}
	}

	socket.SetIpv6(v6)
	socket.SetLinger(0)
	socket.SetRcvtimeo(timeout)

	err = socket.SetSubscribe(command)
	if nil != err {
		return fail(err)
	}

	err = socket.Connect(address)
	if nil != err {
		return fail(err)
	}

	return &Subscriber{socket: socket}, nil
}

// Receive - the next multipart message
func (s *Subscriber) Receive() ([][]byte, error) {
	return s.socket.RecvMessageBytes(0)
}

// Close - disconnect
func (s *Subscriber) Close() error {
	return s.socket.Close()
}
