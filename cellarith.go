// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package num

// addArrays adds b into a in place, cell by cell, propagating any carry out
// of the b-length window into the remaining cells of a (the caller must
// ensure a has room for the carry to land, typically one spare top cell).
// It polls env every iteration and returns true if interrupted, leaving a in
// a partially-updated state.
func addArrays(env *Env, a []int64, b []int64) bool {
	var carry int64
	n := len(b)
	for i := 0; i < n; i++ {
		if env.checkSignal() {
			return true
		}
		s := a[i] + b[i] + carry
		if s >= B {
			s -= B
			carry = 1
		} else {
			carry = 0
		}
		a[i] = s
	}
	for i := n; carry != 0 && i < len(a); i++ {
		if env.checkSignal() {
			return true
		}
		s := a[i] + carry
		if s >= B {
			a[i] = s - B
			carry = 1
		} else {
			a[i] = s
			carry = 0
		}
	}
	return false
}

// subArrays subtracts b from a in place over the first len(b) cells of a,
// propagating each borrow forward into the higher cells of a as far as
// needed. Callers must guarantee that the magnitude of a is >= b's so the
// borrow never runs past the end of a. It polls env every iteration and
// returns true if interrupted.
func subArrays(env *Env, a []int64, b []int64) bool {
	n := len(b)
	for i := 0; i < n; i++ {
		if env.checkSignal() {
			return true
		}
		a[i] -= b[i]
		for j := i; a[j] < 0; {
			if env.checkSignal() {
				return true
			}
			a[j] += B
			j++
			a[j]--
		}
	}
	return false
}

// addDigit adds a single cell-sized digit d plus an incoming carry c into
// *cell, storing the result mod B and returning the outgoing carry.
func addDigit(cell *int64, d, c int64) int64 {
	d += c
	*cell = d % B
	return d / B
}

// compareCells compares equal-length cell spans a and b from the most to
// least significant cell, returning -1, 0 or +1. It polls env every
// iteration; the sentinel value cmpInterrupted is returned if interrupted (no
// valid comparisons use that value, since the result otherwise is -1, 0 or
// +1).
const cmpInterrupted = -1 << 62

func compareCells(env *Env, a, b []int64) int {
	for i := len(a) - 1; i >= 0; i-- {
		if env.checkSignal() {
			return cmpInterrupted
		}
		if a[i] != b[i] {
			if a[i] < b[i] {
				return -1
			}
			return 1
		}
	}
	return 0
}
