// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"sync"

	"github.com/bitmark-inc/recordd/record"
)

// a mutex per address, entries removed when nobody holds them
type addressLock struct {
	sync.Mutex
	entries map[record.Address]*lockEntry
}

type lockEntry struct {
	sync.Mutex
	references int
}

func newAddressLock() *addressLock {
	return &addressLock{
		entries: make(map[record.Address]*lockEntry),
	}
}

// lock - returns the unlock function
func (l *addressLock) lock(address record.Address) func() {
	l.Lock()
	entry, ok := l.entries[address]
	if !ok {
		entry = &lockEntry{}
		l.entries[address] = entry
	}
	entry.references += 1
	l.Unlock()

	entry.Lock()

	return func() {
		entry.Unlock()

		l.Lock()
		entry.references -= 1
		if 0 == entry.references {
			delete(l.entries, address)
		}
		l.Unlock()
	}
}

func (l *addressLock) size() int {
	l.Lock()
	defer l.Unlock()
	return len(l.entries)
}
