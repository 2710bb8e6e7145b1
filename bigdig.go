// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package num

import "math"

// BigDig converts the integer-valued n to a native uint64, for operations
// (power exponents, shift counts, printed digit values) that need a machine
// integer rather than a cell array. Callers are responsible for rejecting
// fractional operands (NonInteger) before calling; BigDig itself only
// reports Negative (n.IsNeg()) and Overflow (the magnitude exceeds what
// uint64 can hold).
func BigDig(n *Number) (uint64, Status) {
	if n.neg {
		return 0, Negative
	}
	const maxU64 = math.MaxUint64
	var v uint64
	for i := len(n.digits) - 1; i >= 0; i-- {
		if v > maxU64/uint64(B) {
			return 0, Overflow
		}
		v *= uint64(B)
		d := uint64(n.digits[i])
		if v > maxU64-d {
			return 0, Overflow
		}
		v += d
	}
	return v, Ok
}

// BigDig2Num returns a new integer Number with value v.
func BigDig2Num(v uint64) *Number {
	n := New(4)
	for v > 0 {
		n.digits = append(n.digits, int64(v%uint64(B)))
		v /= uint64(B)
	}
	return n
}
