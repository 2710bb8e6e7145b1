// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package num

import "math/bits"

// KaratsubaLen is the cell-length threshold below which mulCells falls back
// to the schoolbook algorithm. Tunable; chosen well above the point where
// Karatsuba's overhead (the three sub-multiplies plus the extra additions)
// stops paying for itself on cell arrays whose base is already 10^9 rather
// than a machine word.
const KaratsubaLen = 32

// mulReq returns the cell capacity a Mul of a and b needs.
func mulReq(a, b *Number) int {
	return len(a.digits) + len(b.digits) + 2
}

// Mul sets z to a*b truncated to scale fractional digits (but never truncated
// below max(a.scale, b.scale), and never given more digits than the exact
// product a.scale+b.scale has), per §4.6.
func Mul(env *Env, a, b, z *Number, scale int) (Status, error) {
	ar, br := resolveAliasing(a, b, z, mulReq(a, b))

	rscale := ar.scale + br.scale
	effScale := scale
	if ar.scale > effScale {
		effScale = ar.scale
	}
	if br.scale > effScale {
		effScale = br.scale
	}
	if effScale > rscale {
		effScale = rscale
	}

	switch {
	case len(ar.digits) == 1 && ar.rdx == 0:
		prod, interrupted := mulByDigit(env, br.digits, ar.digits[0])
		if interrupted {
			return fail("mul", Interrupted)
		}
		z.digits = append(z.digits[:0], prod...)
		z.rdx = br.rdx
	case len(br.digits) == 1 && br.rdx == 0:
		prod, interrupted := mulByDigit(env, ar.digits, br.digits[0])
		if interrupted {
			return fail("mul", Interrupted)
		}
		z.digits = append(z.digits[:0], prod...)
		z.rdx = ar.rdx
	default:
		prod, interrupted := mulCells(env, ar.digits, br.digits)
		if interrupted {
			return fail("mul", Interrupted)
		}
		z.digits = append(z.digits[:0], prod...)
		z.rdx = ar.rdx + br.rdx
	}
	z.retireMul(effScale, ar.neg, br.neg)
	return Ok, nil
}

// mulByDigit multiplies the cell array x by the single cell value d,
// returning the trimmed product. d must be in [0, B).
func mulByDigit(env *Env, x []int64, d int64) ([]int64, bool) {
	if d == 0 || len(x) == 0 {
		return nil, false
	}
	z := make([]int64, len(x)+1)
	var carry int64
	for i, v := range x {
		if env.checkSignal() {
			return nil, true
		}
		p := v*d + carry
		z[i] = p % B
		carry = p / B
	}
	z[len(x)] = carry
	return trimHigh(z), false
}

// trimHigh drops trailing (most significant) zero cells.
func trimHigh(d []int64) []int64 {
	n := len(d)
	for n > 0 && d[n-1] == 0 {
		n--
	}
	return d[:n]
}

// mulCells multiplies two plain cell arrays (no sign, no radix point;
// callers track rdx separately), dispatching to Karatsuba or schoolbook by
// length.
func mulCells(env *Env, a, b []int64) ([]int64, bool) {
	a, b = trimHigh(a), trimHigh(b)
	if len(a) == 0 || len(b) == 0 {
		return nil, false
	}
	if len(a) == 1 && a[0] == 1 {
		return append([]int64(nil), b...), false
	}
	if len(b) == 1 && b[0] == 1 {
		return append([]int64(nil), a...), false
	}
	if len(a) < KaratsubaLen || len(b) < KaratsubaLen {
		return mulSimple(env, a, b)
	}
	return karatsuba(env, a, b)
}

// mulSimple is the schoolbook O(len(a)*len(b)) multiply: column i of the
// result accumulates every a[j]*b[k] with j+k==i. Each column's raw sum can
// exceed 2^64 (up to KaratsubaLen terms of (B-1)^2 each), so the running sum
// is tracked as a 128-bit (hi, lo) pair via math/bits and reduced to a base-B
// digit and carry with bits.Div64, the decimal analogue of the teacher's
// mulAdd10WWW_g/div10W_g pair.
func mulSimple(env *Env, a, b []int64) ([]int64, bool) {
	n := len(a) + len(b)
	z := make([]int64, n)
	var carryHi, carryLo uint64
	for i := 0; i < n; i++ {
		if env.checkSignal() {
			return nil, true
		}
		lo0 := 0
		if i-len(b)+1 > 0 {
			lo0 = i - len(b) + 1
		}
		hi0 := i
		if len(a)-1 < hi0 {
			hi0 = len(a) - 1
		}
		sumHi, sumLo := carryHi, carryLo
		for j := lo0; j <= hi0; j++ {
			k := i - j
			ph, pl := bits.Mul64(uint64(a[j]), uint64(b[k]))
			var c uint64
			sumLo, c = bits.Add64(sumLo, pl, 0)
			sumHi, _ = bits.Add64(sumHi, ph, c)
		}
		q, r := bits.Div64(sumHi, sumLo, uint64(B))
		z[i] = int64(r)
		carryHi, carryLo = 0, q
	}
	return trimHigh(z), false
}

// splitAt splits d into (lo, hi) at cell offset m: lo = d[:m] (padded
// conceptually with nothing, since d might be shorter than m), hi = d[m:].
func splitAt(d []int64, m int) (lo, hi []int64) {
	if m >= len(d) {
		return d, nil
	}
	return d[:m], d[m:]
}

// karatsuba implements the recursive Karatsuba multiply described in §4.6:
// splitting a = h1*B^m + l1, b = h2*B^m + l2 and combining
// z2*B^2m + (z2+z0+z1)*B^m + z0 where z2 = h1*h2, z0 = l1*l2 and
// z1 = (h1-l1)*(l2-h2).
//
// Rather than replicate the original implementation's in-place
// add/subtract-with-borrow placement of each sub-product into a shared
// scratch buffer, this builds the combination in a signed accumulator (each
// cell may transiently go negative or exceed B) and normalizes it in a
// single low-to-high carry pass at the end — the natural shape once the
// sub-products are ordinary Go slices instead of pointer-offset views into
// one fixed-size arena.
func karatsuba(env *Env, a, b []int64) ([]int64, bool) {
	if env.checkSignal() {
		return nil, true
	}
	// Strip a common power of B from both operands first: trailing zero
	// cells contribute nothing to the split/recombine work below, only to
	// its size, so shrinking the operands here can push an otherwise
	// oversized pair back under KaratsubaLen or at least shallow the
	// recursion. The stripped cells are reattached as a plain low-end pad
	// on the final product.
	aStripped, az := stripLeadingZeroCells(a)
	bStripped, bz := stripLeadingZeroCells(b)
	if az != 0 || bz != 0 {
		prod, interrupted := mulCells(env, aStripped, bStripped)
		if interrupted {
			return nil, true
		}
		return padLow(prod, az+bz), false
	}

	m := (maxInt(len(a), len(b)) + 1) / 2
	aLo, aHi := splitAt(a, m)
	bLo, bHi := splitAt(b, m)

	z2, interrupted := mulCells(env, aHi, bHi)
	if interrupted {
		return nil, true
	}
	z0, interrupted := mulCells(env, aLo, bLo)
	if interrupted {
		return nil, true
	}
	d1, d1Neg, interrupted := subMagCells(env, aHi, aLo)
	if interrupted {
		return nil, true
	}
	d2, d2Neg, interrupted := subMagCells(env, bLo, bHi)
	if interrupted {
		return nil, true
	}
	z1, interrupted := mulCells(env, d1, d2)
	if interrupted {
		return nil, true
	}
	z1Neg := d1Neg != d2Neg

	acc := make([]int64, len(a)+len(b))
	addSignedInto(acc, z0, 0, 1)
	addSignedInto(acc, z0, m, 1)
	addSignedInto(acc, z2, m, 1)
	addSignedInto(acc, z2, 2*m, 1)
	if z1Neg {
		addSignedInto(acc, z1, m, -1)
	} else {
		addSignedInto(acc, z1, m, 1)
	}
	normalizeSigned(acc)
	return trimHigh(acc), false
}

// addSignedInto adds sign*src[i] into acc[offset+i] for every i, allowing
// acc cells to go negative or exceed B transiently; normalizeSigned cleans
// up afterward.
func addSignedInto(acc, src []int64, offset, sign int) {
	for i, v := range src {
		acc[offset+i] += int64(sign) * v
	}
}

// normalizeSigned reduces every cell of acc to [0, B) via a single low-to-
// high carry propagation pass, using floor division so negative cells borrow
// correctly from their higher neighbor.
func normalizeSigned(acc []int64) {
	var carry int64
	for i := range acc {
		v := acc[i] + carry
		q, r := v/B, v%B
		if r < 0 {
			r += B
			q--
		}
		acc[i] = r
		carry = q
	}
}

// subMagCells returns |x-y| as a trimmed cell array along with whether x<y,
// or (nil, false, true) if interrupted.
func subMagCells(env *Env, x, y []int64) ([]int64, bool, bool) {
	n := len(x)
	if len(y) > n {
		n = len(y)
	}
	xx := make([]int64, n)
	copy(xx, x)
	yy := make([]int64, n)
	copy(yy, y)
	c := compareCells(env, xx, yy)
	if c == cmpInterrupted {
		return nil, false, true
	}
	if c == 0 {
		return nil, false, false
	}
	neg := false
	if c < 0 {
		xx, yy = yy, xx
		neg = true
	}
	if subArrays(env, xx, yy) {
		return nil, false, true
	}
	return trimHigh(xx), neg, false
}
