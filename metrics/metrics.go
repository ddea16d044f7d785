// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package metrics - prometheus counters for record operations
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/bitmark-inc/recordd/fault"
)

// Metrics - all record host metrics
//
// a nil *Metrics is valid and records nothing
type Metrics struct {
	Writes         *prometheus.CounterVec
	RecordsCreated prometheus.Counter
	BytesWritten   prometheus.Counter
	WriteDuration  prometheus.Histogram
}

// New - create and register on the default registry
func New() *Metrics {
	return NewWithRegistry(prometheus.DefaultRegisterer)
}

// NewWithRegistry - create and register on a specific registry
func NewWithRegistry(registerer prometheus.Registerer) *Metrics {
	factory := promauto.With(registerer)
	return &Metrics{
		Writes: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "recordd_writes_total",
			Help: "Total number of record writes by outcome",
		}, []string{"outcome"}),
		RecordsCreated: factory.NewCounter(prometheus.CounterOpts{
			Name: "recordd_records_created_total",
			Help: "Total number of records allocated",
		}),
		BytesWritten: factory.NewCounter(prometheus.CounterOpts{
			Name: "recordd_payload_bytes_written_total",
			Help: "Total payload bytes of successful writes",
		}),
		WriteDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "recordd_write_duration_seconds",
			Help:    "Duration of record writes including persistence",
			Buckets: []float64{0.0005, 0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		}),
	}
}

// ObserveWrite - count a write outcome, bytes only count on success
//
// call with time.Now() at the start of the write
func (m *Metrics) ObserveWrite(start time.Time, err error, payloadLength int) {
	if nil == m {
		return
	}
	m.Writes.WithLabelValues(fault.Kind(err)).Inc()
	if nil == err {
		m.BytesWritten.Add(float64(payloadLength))
	}
	m.WriteDuration.Observe(time.Since(start).Seconds())
}

// IncrementRecordsCreated - count one allocated record
func (m *Metrics) IncrementRecordsCreated() {
	if nil == m {
		return
	}
	m.RecordsCreated.Inc()
}
