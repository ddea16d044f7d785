// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package messagebus

import (
	"sync"
)

// internal constants
const (
	queueSize = 1000
)

// Message - a command and its parameters
type Message struct {
	Command    string   // type of packed data
	Parameters [][]byte // array of parameters
}

// BroadcastQueue - fan out every message to all current listeners
type BroadcastQueue struct {
	sync.RWMutex
	in  chan Message
	out []chan Message
}

// BusType - the set of queues
type BusType struct {
	Broadcast *BroadcastQueue // for subscriber notifications
}

// Bus - all available queues
var Bus = BusType{
	Broadcast: newBroadcastQueue(),
}

func newBroadcastQueue() *BroadcastQueue {
	queue := &BroadcastQueue{
		in: make(chan Message, queueSize),
	}
	go queue.distribute()
	return queue
}

// Send - queue a message for all listeners
//
// messages sent while nothing is listening are dropped
func (queue *BroadcastQueue) Send(command string, parameters ...[]byte) {
	queue.in <- Message{
		Command:    command,
		Parameters: parameters,
	}
}

// Chan - add a listener
//
// a listener whose buffer is full misses messages, so size should
// cover any expected burst
func (queue *BroadcastQueue) Chan(size int) <-chan Message {
	if size < 0 {
		size = 0
	}
	c := make(chan Message, size)

	queue.Lock()
	queue.out = append(queue.out, c)
	queue.Unlock()

	return c
}

// Release - close and remove all listeners
func (queue *BroadcastQueue) Release() {
	queue.Lock()
	defer queue.Unlock()

	for _, c := range queue.out {
		close(c)
	}
	queue.out = nil
}

func (queue *BroadcastQueue) distribute() {
	for item := range queue.in {
		queue.RLock()
		for _, c := range queue.out {
			select {
			case c <- item:
			default:
			}
		}
		queue.RUnlock()
	}
}
