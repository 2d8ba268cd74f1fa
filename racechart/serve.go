// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/aclements/racechart/internal/page"
)

func init() {
	registerSubcommand("serve", "serve the chart, its data, and metrics over HTTP", cmdServe)
}

func cmdServe(e *env) error {
	cc, err := e.cfg.Chart()
	if err != nil {
		return err
	}
	srv := &http.Server{
		Addr:              e.cfg.Addr,
		Handler:           page.NewServer(e.records, cc, page.Options{Debug: e.cfg.Debug}, e.log),
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errc := make(chan error, 1)
	go func() {
		e.log.Info().Str("addr", srv.Addr).Msg("serving")
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}
	e.log.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errc; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
