// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package background_test

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/recordd/background"
)

type counter struct {
	count int
	final int
}

const (
	initialCount1 = 246
	finalCount1   = 987654321
	initialCount2 = 777
	finalCount2   = 897645312
)

func TestBackground(t *testing.T) {
	proc1 := &counter{
		count: initialCount1,
		final: finalCount1,
	}
	proc2 := &counter{
		count: initialCount2,
		final: finalCount2,
	}

	// list of background processes to start
	var processes = background.Processes{
		proc1,
		proc2,
	}

	p := background.Start(processes, t)
	time.Sleep(50 * time.Millisecond)
	p.Stop()

	assert.Equal(t, finalCount1, proc1.count, "process 1 not stopped")
	assert.Equal(t, finalCount2, proc2.count, "process 2 not stopped")

	// second stop is harmless
	p.Stop()
}

func (state *counter) Run(args interface{}, shutdown <-chan struct{}) {
	t := args.(*testing.T)

loop:
	for {
		select {
		case <-shutdown:
			break loop
		default:
		}
		state.count += 9
		t.Logf("state: %v", state)
		time.Sleep(time.Millisecond)
	}

	state.count = state.final
}

type ordered struct {
	name  string
	mutex *sync.Mutex
	order *[]string
}

func (o *ordered) Run(args interface{}, shutdown <-chan struct{}) {
	<-shutdown
	o.mutex.Lock()
	*o.order = append(*o.order, o.name)
	o.mutex.Unlock()
}

func TestStopOrder(t *testing.T) {
	var mutex sync.Mutex
	order := []string{}

	processes := background.Processes{
		&ordered{name: "first", mutex: &mutex, order: &order},
		&ordered{name: "second", mutex: &mutex, order: &order},
		&ordered{name: "third", mutex: &mutex, order: &order},
	}

	p := background.Start(processes, nil)
	p.Stop()

	assert.Equal(t, []string{"third", "second", "first"}, order, "wrong stop order")
}

func TestNilStop(t *testing.T) {
	var p *background.T
	assert.NotPanics(t, p.Stop, "stop on nil handle")
}
