// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package publish

import (
	"github.com/bitmark-inc/logger"
	zmq "github.com/pebbe/zmq4"

	"github.com/bitmark-inc/recordd/messagebus"
	"github.com/bitmark-inc/recordd/zmqutil"
)

const (
	broadcasterZapDomain = "broadcaster"
	queueSize            = 1000
)

type broadcaster struct {
	log     *logger.L
	socket4 *zmq.Socket
	socket6 *zmq.Socket
	queue   <-chan messagebus.Message
}

// initialise the broadcaster
func (brdc *broadcaster) initialise(privateKey []byte, publicKey []byte, broadcast []string) error {
	log := logger.New("broadcaster")
	brdc.log = log

	log.Info("initialising…")

	// allocate IPv4 and IPv6 sockets
	socket4, socket6, err := zmqutil.NewBind(log, zmq.PUB, broadcasterZapDomain, privateKey, publicKey, broadcast)
	if nil != err {
		log.Errorf("bind error: %s", err)
		return err
	}
	brdc.socket4 = socket4
	brdc.socket6 = socket6

	// listen before Run so no update is missed
	brdc.queue = messagebus.Bus.Broadcast.Chan(queueSize)

	return nil
}

// Run - forward updates from the message bus to the sockets
func (brdc *broadcaster) Run(args interface{}, shutdown <-chan struct{}) {
	log := brdc.log

	log.Info("starting…")

loop:
	for {
		select {
		case <-shutdown:
			break loop
		case item, ok := <-brdc.queue:
			if !ok {
				break loop
			}
			log.Debugf("sending: %s  data: %x", item.Command, item.Parameters)
			brdc.process(brdc.socket4, &item)
			brdc.process(brdc.socket6, &item)
		}
	}

	if nil != brdc.socket4 {
		brdc.socket4.Close()
		brdc.socket4 = nil
	}
	if nil != brdc.socket6 {
		brdc.socket6.Close()
		brdc.socket6 = nil
	}
	log.Info("stopped")
}

// send one message as: command, parameters...
func (brdc *broadcaster) process(socket *zmq.Socket, item *messagebus.Message) {
	if nil == socket {
		return
	}

	flags := zmq.SNDMORE | zmq.DONTWAIT
	if 0 == len(item.Parameters) {
		flags = zmq.DONTWAIT
	}
	_, err := socket.Send(item.Command, flags)
	if nil != err {
		brdc.log.Errorf("send: %s  error: %s", item.Command, err)
		return
	}

	last := len(item.Parameters) - 1
	for i, p := range item.Parameters {
		if i == last {
			_, err = socket.SendBytes(p, zmq.DONTWAIT)
		} else {
			_, err = socket.SendBytes(p, zmq.SNDMORE|zmq.DONTWAIT)
		}
		if nil != err {
			brdc.log.Errorf("send: %s  parameter: %d  error: %s", item.Command, i, err)
			return
		}
	}
}
