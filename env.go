// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package num

import (
	"bufio"
	"io"
	"sync/atomic"
)

// DefaultLineLen is the column at which Print wraps output with a trailing
// backslash-newline, matching the historical bc terminal width.
const DefaultLineLen = 70

// Env carries the two pieces of state this package needs from the outside
// world: a cooperative cancellation signal and a character sink for Print.
// Per-operation state (the signal flag, the output column counter) lives
// here rather than in package-level globals, so a program driving several
// independent interpreters, or running operations on multiple goroutines
// each with their own Env, never cross-talks.
//
// Env itself is not safe for concurrent use by multiple goroutines; each
// goroutine driving calculator operations should use its own Env wrapping
// its own cancellation flag.
type Env struct {
	sig     *atomic.Bool
	out     *bufio.Writer
	lineLen int
	col     int
}

// NewEnv returns an Env that writes to out and wraps lines at DefaultLineLen.
// sig may be nil, in which case the Env is never interrupted; pass a shared
// *atomic.Bool set from a SIGINT handler to support cancellation.
func NewEnv(out io.Writer, sig *atomic.Bool) *Env {
	if sig == nil {
		sig = new(atomic.Bool)
	}
	return &Env{
		sig:     sig,
		out:     bufio.NewWriter(out),
		lineLen: DefaultLineLen,
	}
}

// SetLineLen overrides the output wrap column (0 disables wrapping).
func (e *Env) SetLineLen(n int) { e.lineLen = n }

// Signaled reports whether the shared cancellation flag is currently set.
func (e *Env) Signaled() bool {
	return e != nil && e.sig != nil && e.sig.Load()
}

// checkSignal polls the cancellation flag. Every bounded inner loop in this
// package calls it once per iteration; on a nil Env (used internally by
// tests and by borrowed-number helpers that don't accept one) it never
// fires.
func (e *Env) checkSignal() bool {
	return e.Signaled()
}

// PutChar writes one byte through the sink, inserting a backslash-newline
// wrap when the column counter reaches lineLen-1, and returns any write
// error from the underlying writer.
func (e *Env) PutChar(c byte) error {
	if e.lineLen > 0 && e.col >= e.lineLen-1 {
		if err := e.out.WriteByte('\\'); err != nil {
			return err
		}
		if err := e.out.WriteByte('\n'); err != nil {
			return err
		}
		e.col = 0
	}
	if err := e.out.WriteByte(c); err != nil {
		return err
	}
	e.col++
	return nil
}

// WriteString writes s one byte at a time through PutChar, so that
// multi-character fields still respect line wrapping.
func (e *Env) WriteString(s string) error {
	for i := 0; i < len(s); i++ {
		if err := e.PutChar(s[i]); err != nil {
			return err
		}
	}
	return nil
}

// Newline resets the column counter and emits a bare newline, bypassing the
// wrap logic (a newline at column 0 never needs escaping).
func (e *Env) Newline() error {
	if err := e.out.WriteByte('\n'); err != nil {
		return err
	}
	e.col = 0
	return e.out.Flush()
}

// Flush flushes any buffered output without resetting the column counter.
func (e *Env) Flush() error {
	return e.out.Flush()
}

// ResetColumn sets the output column counter to zero without touching the
// underlying writer, for callers that track their own line discipline.
func (e *Env) ResetColumn() { e.col = 0 }

// NewSignal returns a fresh cancellation flag suitable for sharing between
// an Env and a signal handler.
func NewSignal() *atomic.Bool { return new(atomic.Bool) }
