// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package metrics

import (
	"context"
	"net/http"
	"time"

	"github.com/bitmark-inc/logger"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const shutdownTimeout = 5 * time.Second

// Server - background process serving /metrics over plain HTTP
type Server struct {
	log    *logger.L
	server *http.Server
}

// NewServer - serve the metrics in gatherer on listen
func NewServer(listen string, gatherer prometheus.Gatherer) *Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))

	return &Server{
		log: logger.New("metrics"),
		server: &http.Server{
			Addr:              listen,
			Handler:           mux,
			ReadHeaderTimeout: 10 * time.Second,
		},
	}
}

// Run - background process entry point
func (s *Server) Run(args interface{}, shutdown <-chan struct{}) {
	log := s.log

	log.Infof("starting on: %s", s.server.Addr)

	go func() {
		err := s.server.ListenAndServe()
		if nil != err && http.ErrServerClosed != err {
			log.Errorf("server error: %s", err)
		}
	}()

	<-shutdown

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := s.server.Shutdown(ctx); nil != err {
		log.Errorf("shutdown error: %s", err)
	}
	log.Info("stopped")
}
