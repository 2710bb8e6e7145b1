// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package num

// CmpZero returns -1, 0 or +1 reflecting whether n is negative, zero or
// positive.
func CmpZero(n *Number) int {
	if n.IsZero() {
		return 0
	}
	if n.neg {
		return -1
	}
	return 1
}

// Cmp returns a value reflecting a-b: negative if a<b, zero if a==b,
// positive if a>b. It polls env and returns Interrupted if the signal flag
// becomes set mid-comparison, in which case the returned int is 0 and must
// be ignored.
func Cmp(env *Env, a, b *Number) (int, Status) {
	if a == b {
		return 0, Ok
	}
	if a.IsZero() {
		if b.IsZero() {
			return 0, Ok
		}
		if b.neg {
			return 1, Ok
		}
		return -1, Ok
	}
	if b.IsZero() {
		return CmpZero(a), Ok
	}
	if a.neg != b.neg {
		if a.neg {
			return -1, Ok
		}
		return 1, Ok
	}
	neg := a.neg // both operands share this sign

	aInt, bInt := a.intDigits(), b.intDigits()
	if aInt != bInt {
		r := aInt - bInt
		if neg {
			r = -r
		}
		return sign(r), Ok
	}

	// Align by fractional length: the operand with the larger rdx has a
	// longer low-order tail that the shorter operand implicitly pads with
	// zero cells.
	var aWin, bWin []int64
	var tailLonger []int64
	var tailLen int
	if a.rdx >= b.rdx {
		diff := a.rdx - b.rdx
		aWin = a.digits[diff:]
		bWin = b.digits
		tailLonger = a.digits
		tailLen = diff
	} else {
		diff := b.rdx - a.rdx
		aWin = a.digits
		bWin = b.digits[diff:]
		tailLonger = b.digits
		tailLen = diff
	}

	c := compareCells(env, aWin, bWin)
	if c == cmpInterrupted {
		return 0, Interrupted
	}
	if c != 0 {
		// aWin and bWin are aligned to the same significance, so c already
		// reflects a-b regardless of which operand had the longer rdx; only
		// a shared negative sign flips the result.
		if neg {
			c = -c
		}
		return sign(c), Ok
	}

	for i := tailLen - 1; i >= 0; i-- {
		if env.checkSignal() {
			return 0, Interrupted
		}
		if tailLonger[i] != 0 {
			if a.rdx >= b.rdx {
				if neg {
					return -1, Ok
				}
				return 1, Ok
			}
			if neg {
				return 1, Ok
			}
			return -1, Ok
		}
	}
	return 0, Ok
}

func sign(x int) int {
	switch {
	case x < 0:
		return -1
	case x > 0:
		return 1
	default:
		return 0
	}
}
