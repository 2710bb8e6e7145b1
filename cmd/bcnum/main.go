// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command bcnum drives the num package from the command line: it evaluates
// a single a/op/b expression in a chosen base and scale, exercising the
// number core's external interface the way a calculator interpreter's
// instruction loop would.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"

	"github.com/lmittmann/tint"

	"github.com/dnbern/bcnum/cmd/bcnum/internal/eval"
)

func main() {
	logger := slog.New(tint.NewHandler(os.Stderr, &tint.Options{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	sig := new(atomic.Bool)
	notify := make(chan os.Signal, 1)
	signal.Notify(notify, os.Interrupt, syscall.SIGTERM)
	go func() {
		for range notify {
			sig.Store(true)
			slog.Warn("interrupt received, finishing current operation")
		}
	}()

	if err := eval.Root(sig).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
