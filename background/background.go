// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package background - run long lived processes and stop them cleanly
package background

import (
	"sync"
)

// Process - the type signature for a background process
//
// Run must return promptly once shutdown is closed
type Process interface {
	Run(args interface{}, shutdown <-chan struct{})
}

// Processes - list of processes to start
type Processes []Process

// T - handle for a running set of processes
type T struct {
	sync.Mutex
	shutdown []chan struct{}
	finished []chan struct{}
	stopped  bool
}

// Start - start up a set of background processes
//
// all processes receive the same args
func Start(processes Processes, args interface{}) *T {
	register := &T{
		shutdown: make([]chan struct{}, len(processes)),
		finished: make([]chan struct{}, len(processes)),
	}

	for i, p := range processes {
		shutdown := make(chan struct{})
		finished := make(chan struct{})
		register.shutdown[i] = shutdown
		register.finished[i] = finished

		go func(p Process) {
			defer close(finished)
			p.Run(args, shutdown)
		}(p)
	}
	return register
}

// Stop - stop the processes in reverse start order
//
// each process has finished before the one started ahead of it is
// signalled, calling Stop more than once is harmless
func (t *T) Stop() {
	if nil == t {
		return
	}

	t.Lock()
	defer t.Unlock()

	if t.stopped {
		return
	}
	t.stopped = true

	for i := len(t.shutdown) - 1; i >= 0; i -= 1 {
		close(t.shutdown[i])
		<-t.finished[i]
	}
}
