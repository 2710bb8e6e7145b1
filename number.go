// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package num

// D is the number of decimal digits stored per cell. B = 10^D is the cell
// base. D=9 lets a single cell product plus a running carry fit comfortably
// in an int64 accumulator (see mulByDigit), since (B-1)*(B-1) is well under
// 1<<63; mulSimple's column sums, which add many such products, use a
// 128-bit accumulator instead.
const D = 9

// B is the cell base, 10^D.
const B int64 = 1_000_000_000

// pow10 is a lookup table of 10^0 .. 10^D, used throughout shifting and
// printing to split a cell into individual decimal digits.
var pow10 = [D + 1]int64{
	1, 10, 100, 1_000, 10_000, 100_000,
	1_000_000, 10_000_000, 100_000_000, 1_000_000_000,
}

// DefaultCap is the number of cells allocated by New when no larger capacity
// is requested, matching BC_NUM_DEF_SIZE in the original implementation.
const DefaultCap = 16

// maxCells bounds how many cells an operation will ever request, guarding
// against size_t-style overflow in request arithmetic. It leaves ample room
// (billions of decimal digits) while keeping growSize's addition safe.
const maxCells = int(^uint(0)>>1) / 2

// Number is a signed, arbitrary-precision, fixed-point decimal. See the
// package doc comment and the data model section of the specification this
// package implements for the invariants every Number returned from this
// package satisfies.
//
// The zero Number (as produced by `var n Number` or new(Number)) is the
// canonical zero value and is immediately usable; most constructors exist
// only to pre-size the digit buffer.
type Number struct {
	digits []int64 // cell values, least-significant first; digits[len(digits)-1] != 0 when len(digits) > 0
	rdx    int     // number of fractional cells (cells below the radix point)
	scale  int     // user-visible base-10 fractional digit count
	neg    bool    // sign; always false when len(digits) == 0
}

// New returns a Number with at least req cells of spare capacity
// pre-allocated (never less than DefaultCap), representing zero.
func New(req int) *Number {
	n := new(Number)
	n.init(req)
	return n
}

// Setup returns a Number that borrows buf as its cell storage. The returned
// Number represents zero; buf's contents are not inspected. Unlike New, no
// further allocation happens until the borrowed capacity is exceeded, at
// which point the Number transparently switches to a heap-owned buffer (Go
// slices make the C original's freed-vs-borrowed distinction unobservable;
// growth past cap(buf) simply reallocates, same as for any slice).
func Setup(buf []int64) *Number {
	n := new(Number)
	n.digits = buf[:0]
	return n
}

// init ensures n has at least max(req, DefaultCap) cells of capacity and
// resets it to zero.
func (n *Number) init(req int) {
	if req < DefaultCap {
		req = DefaultCap
	}
	n.digits = make([]int64, 0, req)
	n.rdx = 0
	n.scale = 0
	n.neg = false
}

// expand grows n's capacity to at least req cells, preserving contents.
func (n *Number) expand(req int) {
	if req > maxCells {
		return
	}
	if cap(n.digits) >= req {
		return
	}
	nd := make([]int64, len(n.digits), req)
	copy(nd, n.digits)
	n.digits = nd
}

// copy makes n an independent copy of src's value.
func (n *Number) copy(src *Number) {
	if n == src {
		return
	}
	n.expand(len(src.digits))
	n.digits = append(n.digits[:0], src.digits...)
	n.rdx = src.rdx
	n.scale = src.scale
	n.neg = src.neg
}

// createCopy returns a new Number with the same value as src.
func createCopy(src *Number) *Number {
	n := New(len(src.digits))
	n.copy(src)
	return n
}

// setToZero resets n to the value zero, keeping scale cells of (now
// nonexistent) fraction reserved, i.e. n.Scale() == scale afterward even
// though n is numerically zero.
func (n *Number) setToZero(scale int) {
	n.digits = n.digits[:0]
	n.neg = false
	n.rdx = scale
	n.scale = scale
}

// zero resets n to integer zero.
func (n *Number) zero() { n.setToZero(0) }

// one resets n to integer one.
func (n *Number) one() {
	n.setToZero(0)
	n.digits = append(n.digits[:0], 1)
}

// IsZero reports whether n represents the numeric value zero.
func (n *Number) IsZero() bool { return len(n.digits) == 0 }

// isOne reports whether n is exactly the integer 1.
func (n *Number) isOne() bool {
	return len(n.digits) == 1 && n.rdx == 0 && n.digits[0] == 1
}

// IsNeg reports whether n is negative. Zero is never negative.
func (n *Number) IsNeg() bool { return n.neg }

// Scale returns n's user-visible fractional digit count.
func (n *Number) Scale() int { return n.scale }

// intDigits returns the number of cells holding n's integer part.
func (n *Number) intDigits() int {
	if len(n.digits) == 0 {
		return 0
	}
	return len(n.digits) - n.rdx
}

// intDigitCount returns the number of decimal digits in n's integer part,
// i.e. int_digits(n) from the specification: (len-rdx)*D minus the leading
// zero digits of the top cell.
func (n *Number) intDigitCount() int {
	id := n.intDigits()
	if id == 0 {
		return 0
	}
	top := n.digits[len(n.digits)-1]
	return (id-1)*D + decDigitsOf(top)
}

// decDigitsOf returns the number of base-10 digits in 0 <= x < B.
func decDigitsOf(x int64) int {
	if x == 0 {
		return 1
	}
	n := 0
	for x > 0 {
		x /= 10
		n++
	}
	return n
}

// clean trims trailing (most-significant) zero cells, normalizes neg when
// the result is zero, and re-extends len to at least rdx so the fractional
// part stays representable, per the container invariants.
func (n *Number) clean() {
	d := n.digits
	for len(d) > 0 && d[len(d)-1] == 0 {
		d = d[:len(d)-1]
	}
	n.digits = d
	if n.IsZero() {
		n.neg = false
	} else if len(n.digits) < n.rdx {
		n.expand(n.rdx)
		n.digits = n.digits[:n.rdx]
	}
}

// set copies src's value into n and returns n, for chained construction.
func (n *Number) set(src *Number) *Number {
	n.copy(src)
	return n
}

// digit returns the base-10 digit at position p (0 = least significant) of
// n's magnitude, ignoring sign and the radix point.
func (n *Number) digit(p int) int {
	cell, off := p/D, p%D
	if cell >= len(n.digits) {
		return 0
	}
	return int(n.digits[cell] / pow10[off] % 10)
}
