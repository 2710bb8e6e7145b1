// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package num implements the arbitrary-precision, fixed-point decimal number
core of a bc/dc-style calculator language: a signed, base-10 number stored as
a little-endian slice of cells, each holding D decimal digits (base B = 10^D),
together with the full suite of arithmetic, comparison and I/O (parse/print in
any base from 2 up) needed to drive a calculator interpreter.

Unlike a binary bignum, every cell holds a base-10^D digit, so decimal parsing
and printing are exact: no rounding step is ever needed to go from a decimal
string to a Number and back.

The zero value for a Number is the canonical zero and is ready to use; New and
Setup additionally pre-size or supply its cell storage:

	z := num.New(0)    // z is a *Number of value 0, with room to grow
	z := num.Setup(buf) // z borrows buf as its cell storage

Operations follow the receiver-as-destination convention used throughout this
package:

	func Add(env *Env, a, b, z *Number, scale int) (Status, error)

The first Number parameters (a, b, ...) are operands; z receives the result
and may alias a or b. Every long-running operation accepts an *Env, through
which it polls the caller's cancellation signal and (for printing) writes
characters; see the Env type.

Operations return a Status alongside an error; Ok means success, and any other
Status is accompanied by a non-nil error that wraps one of the sentinel errors
declared in this package (ErrDivideByZero, ErrNegative, ErrNonInteger,
ErrOverflow, ErrInterrupted).
*/
package num
