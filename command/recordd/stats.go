// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"runtime"
	"time"

	"github.com/bitmark-inc/logger"
)

const (
	statsDelay = 60 * time.Second
	mega       = 1048576
)

// periodic memory usage in the log
type memoryStatistics struct{}

func (stats *memoryStatistics) Run(args interface{}, shutdown <-chan struct{}) {

	log := logger.New("memory")

	ticker := time.NewTicker(statsDelay)
	defer ticker.Stop()

loop:
	for {
		var m runtime.MemStats
		runtime.ReadMemStats(&m)

		log.Warnf("allocated: %d M  cumulative: %d M  OS virtual: %d M  goroutines: %d", m.Alloc/mega, m.TotalAlloc/mega, m.Sys/mega, runtime.NumGoroutine())

		select {
		case <-shutdown:
			break loop
		case <-ticker.C:
		}
	}
}
