// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package num

// Sqrt sets b to the square root of a, truncated to scale fractional digits,
// per §4.9. a must not be negative.
//
// It runs Newton's method x_{k+1} = (x_k + a/x_k)/2 from a digit-count-based
// initial estimate, terminating once successive iterates agree on enough
// leading cells. The amount of agreement is tracked the same way the
// original implementation does: sqrtCmp reports not just the sign of x1-x0
// but, when they differ, the position of the first cell (from the top) at
// which they do, and the loop raises its working scale when that position
// and sign stall for several iterations in a row, which happens when the two
// iterates are oscillating around a shared prefix instead of converging
// past it.
func Sqrt(env *Env, a, b *Number, scale int) (Status, error) {
	if a.neg {
		return fail("sqrt", Negative)
	}
	if a.IsZero() {
		b.setToZero(ceilDiv(scale, D))
		b.scale = scale
		return Ok, nil
	}
	if a.isOne() {
		b.one()
		if scale > 0 {
			b.extendScale(scale)
		}
		return Ok, nil
	}

	// §4.9's working scale is defined in terms of the requested scale alone,
	// but the original routine first folds in a's own precision (a number
	// more precise than the requested result still needs a working scale
	// deep enough to resolve it); effScale carries that fold-in forward.
	effScale := scale
	if a.scale > effScale {
		effScale = a.scale
	}
	effScale++
	resScale := (effScale + D) * 2 // decimal digits

	// Initial estimate: a decimal number with ceil(intDigitCount(a)/2)
	// digits, leading digit 2 (a's digit count odd) or 6 (even), every other
	// digit zero. This is the classic bc seed: its square lies between about
	// 0.36 and 4 times a, so the seed is within a factor of 2 of the true
	// root, a close enough start for Newton's method.
	x0 := one()
	if n := a.intDigitCount(); n > 0 {
		lead, digs := int64(6), n/2
		if n%2 == 1 {
			lead, digs = 2, (n+1)/2
		}
		x0.digits[0] = lead
		if digs > 1 {
			x0.shiftLeft(digs - 1)
		}
	}

	targetLen := (x0.intDigitCount() + resScale - 1) / D

	half := New(4)
	half.digits = append(half.digits[:0], 5*pow10[D-1])
	half.rdx = 1
	half.scale = 1

	const noMatch = 1 << 30
	cmp, cmp1, cmp2 := 1, noMatch, noMatch
	digs, digs1, times := 0, 0, 0

	for cmp != 0 || digs < targetLen {
		if env.checkSignal() {
			return fail("sqrt", Interrupted)
		}

		f := New(divReq(a, x0, resScale))
		if s, err := Div(env, a, x0, f, resScale); s != Ok {
			return s, err
		}
		fprime := New(addReq(x0, f))
		if s, err := Add(env, x0, f, fprime, resScale); s != Ok {
			return s, err
		}
		x1 := New(mulReq(fprime, half))
		if s, err := Mul(env, fprime, half, x1, resScale); s != Ok {
			return s, err
		}

		c, interrupted := sqrtCmp(env, x1, x0)
		if interrupted {
			return fail("sqrt", Interrupted)
		}
		cmp = c
		digs = len(x1.digits) - absInt(c)

		if cmp == cmp2 && digs == digs1 {
			times++
		} else {
			times = 0
		}
		if times > 2 {
			resScale++
		}

		cmp2 = cmp1
		cmp1 = cmp
		digs1 = digs

		x0 = x1
	}

	b.copy(x0)
	if b.scale > scale {
		b.truncateScale(scale)
	} else if scale > b.scale {
		b.extendScale(scale)
	}
	return Ok, nil
}

// sqrtCmp compares x1 to x0, the two most recent Newton iterates, and
// reports a signed value whose magnitude is the position (counted from the
// bottom of the shared comparison window) of the first cell at which they
// differ, per §4.9's termination oracle. The caller recovers how many
// leading cells of x1 are already settled via len(x1.digits)-abs(result).
//
// When the integer parts differ in cell count that difference is the
// magnitude instead (a coarser but cheaper signal: the iterates aren't even
// close yet). When every cell in the aligned window matches but one operand
// has extra low-order cells the other doesn't, a nonzero cell anywhere in
// that tail reports the smallest possible disagreement (magnitude 1).
func sqrtCmp(env *Env, x1, x0 *Number) (cmp int, interrupted bool) {
	x1Int, x0Int := x1.intDigits(), x0.intDigits()
	if d := x1Int - x0Int; d != 0 {
		return d, false
	}

	aMax := x1.rdx > x0.rdx
	var longTop, shortTop []int64
	var diff int
	if aMax {
		diff = x1.rdx - x0.rdx
		longTop = x1.digits[diff:]
		shortTop = x0.digits
	} else {
		diff = x0.rdx - x1.rdx
		longTop = x0.digits[diff:]
		shortTop = x1.digits
	}

	n := len(shortTop)
	for i := n - 1; i >= 0; i-- {
		if env.checkSignal() {
			return 0, true
		}
		if longTop[i] == shortTop[i] {
			continue
		}
		mag := i + 1
		longBigger := longTop[i] > shortTop[i]
		x1Bigger := longBigger == aMax
		if x1Bigger {
			return mag, false
		}
		return -mag, false
	}

	var tail []int64
	if aMax {
		tail = x1.digits
	} else {
		tail = x0.digits
	}
	for i := 0; i < diff; i++ {
		if env.checkSignal() {
			return 0, true
		}
		if tail[i] != 0 {
			if aMax {
				return 1, false
			}
			return -1, false
		}
	}
	return 0, false
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
