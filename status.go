// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package num

import "github.com/pkg/errors"

// Status classifies the outcome of an operation. It is returned alongside an
// error so that callers that only care about the outcome class (for instance
// a VM deciding whether to unwind a running program) don't need to inspect
// error chains.
type Status int

const (
	// Ok indicates the operation completed normally.
	Ok Status = iota
	// Interrupted indicates the operation observed the Env's signal flag and
	// returned early. Any output Number is left in a valid but
	// undefined-value state; callers must not inspect it, only free it.
	Interrupted
	// DivideByZero indicates a division, modulo, divmod or modular
	// exponentiation operation was asked to divide by zero.
	DivideByZero
	// Negative indicates an operation received a negative operand where one
	// is mathematically disallowed (square root, the modulus of modexp's
	// exponent).
	Negative
	// NonInteger indicates an operation that requires an integer operand (an
	// exponent, a shift amount) was given one with a nonzero scale.
	NonInteger
	// Overflow indicates a result would require more cells than this
	// implementation is willing to allocate.
	Overflow
)

func (s Status) String() string {
	switch s {
	case Ok:
		return "ok"
	case Interrupted:
		return "interrupted"
	case DivideByZero:
		return "divide by zero"
	case Negative:
		return "negative"
	case NonInteger:
		return "non-integer"
	case Overflow:
		return "overflow"
	default:
		return "unknown status"
	}
}

// Sentinel errors, one per Status other than Ok. Operation-specific errors
// returned from this package wrap one of these with errors.Wrap/Wrapf so that
// callers can test the class with errors.Is while still getting a
// descriptive message.
var (
	ErrInterrupted  = errors.New("num: interrupted")
	ErrDivideByZero = errors.New("num: divide by zero")
	ErrNegative     = errors.New("num: negative operand")
	ErrNonInteger   = errors.New("num: non-integer operand")
	ErrOverflow     = errors.New("num: cell count overflow")
)

// statusErr pairs every non-Ok Status with its sentinel error.
func statusErr(s Status) error {
	switch s {
	case Ok:
		return nil
	case Interrupted:
		return ErrInterrupted
	case DivideByZero:
		return ErrDivideByZero
	case Negative:
		return ErrNegative
	case NonInteger:
		return ErrNonInteger
	case Overflow:
		return ErrOverflow
	default:
		return errors.Errorf("num: unknown status %d", s)
	}
}

// fail wraps the sentinel error for s with a caller-supplied operation name,
// producing an error such as "num: sqrt: num: negative operand".
func fail(op string, s Status) (Status, error) {
	return s, errors.Wrapf(statusErr(s), "num: %s", op)
}

// Accumulator chains a sequence of operations, short-circuiting after the
// first error. It mirrors the error-accumulation idiom used by callers that
// perform many operations in a row and only want a single check at the end.
type Accumulator struct {
	Env *Env
	Err error
}

// Add performs Add(a.Env, x, y, z, scale) unless a.Err is already set.
func (a *Accumulator) Add(x, y, z *Number, scale int) {
	if a.Err != nil {
		return
	}
	_, a.Err = Add(a.Env, x, y, z, scale)
}

// Sub performs Sub(a.Env, x, y, z, scale) unless a.Err is already set.
func (a *Accumulator) Sub(x, y, z *Number, scale int) {
	if a.Err != nil {
		return
	}
	_, a.Err = Sub(a.Env, x, y, z, scale)
}

// Mul performs Mul(a.Env, x, y, z, scale) unless a.Err is already set.
func (a *Accumulator) Mul(x, y, z *Number, scale int) {
	if a.Err != nil {
		return
	}
	_, a.Err = Mul(a.Env, x, y, z, scale)
}

// Div performs Div(a.Env, x, y, z, scale) unless a.Err is already set.
func (a *Accumulator) Div(x, y, z *Number, scale int) {
	if a.Err != nil {
		return
	}
	_, a.Err = Div(a.Env, x, y, z, scale)
}
