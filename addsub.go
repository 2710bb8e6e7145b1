// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package num

// addReq returns the cell capacity an Add or Sub of a and b needs: room for
// the wider fractional part, the wider integer part, and one carry cell.
func addReq(a, b *Number) int {
	rdx := a.rdx
	if b.rdx > rdx {
		rdx = b.rdx
	}
	aInt, bInt := a.intDigits(), b.intDigits()
	if bInt > aInt {
		aInt = bInt
	}
	s, _ := growSize(rdx, aInt)
	s, _ = growSize(s, 1)
	return s
}

// Add sets z to a+b. scale is accepted for API symmetry with the other
// binary operations but unused: per the language this package serves, + and
// - always produce every digit of the operands, never dropping precision.
func Add(env *Env, a, b, z *Number, scale int) (Status, error) {
	ar, br := resolveAliasing(a, b, z, addReq(a, b))
	var s Status
	if ar.neg == br.neg {
		s = magAdd(env, ar, br, z)
	} else {
		s = magSub(env, ar, br, z, false)
	}
	if s != Ok {
		return fail("add", s)
	}
	return Ok, nil
}

// Sub sets z to a-b.
func Sub(env *Env, a, b, z *Number, scale int) (Status, error) {
	ar, br := resolveAliasing(a, b, z, addReq(a, b))
	var s Status
	if ar.neg == br.neg {
		s = magSub(env, ar, br, z, true)
	} else {
		s = magAdd(env, ar, br, z)
	}
	if s != Ok {
		return fail("sub", s)
	}
	return Ok, nil
}

// resolveAliasing detects z==a or z==b and, when aliased, materializes a
// scratch copy of the aliased operand(s) so the binary dispatcher below
// always reads from independent storage while writing into z. It also grows
// z to req cells. This is the Go analogue of the original implementation's
// bc_num_binary entry-point aliasing check described in the design notes.
func resolveAliasing(a, b, z *Number, req int) (ra, rb *Number) {
	ra, rb = a, b
	if z == a {
		ra = createCopy(a)
	}
	if z == b {
		if z == a {
			rb = ra
		} else {
			rb = createCopy(b)
		}
	}
	if ra == a && rb == b {
		z.expand(req)
	} else {
		z.init(req)
	}
	return ra, rb
}

// magAdd adds the magnitudes of a and b into z, taking a's sign (the caller
// has already decided that's correct for the requested operation), per
// §4.5's magnitude-add algorithm.
func magAdd(env *Env, a, b *Number, z *Number) Status {
	if a.IsZero() {
		z.copy(b)
		if a.scale > z.scale {
			z.extendScale(a.scale)
		}
		return Ok
	}
	if b.IsZero() {
		z.copy(a)
		if b.scale > z.scale {
			z.extendScale(b.scale)
		}
		return Ok
	}

	z.neg = a.neg
	z.rdx = maxInt(a.rdx, b.rdx)
	z.scale = maxInt(a.scale, b.scale)
	minRdx := minInt(a.rdx, b.rdx)

	var tail []int64
	var diff int
	var aTop, bTop []int64
	if a.rdx > b.rdx {
		diff = a.rdx - b.rdx
		tail = a.digits[:diff]
		aTop = a.digits[diff:]
		bTop = b.digits
	} else {
		diff = b.rdx - a.rdx
		tail = b.digits[:diff]
		aTop = a.digits
		bTop = b.digits[diff:]
	}

	z.expand(diff + maxInt(len(aTop), len(bTop)) + 1)
	zd := z.digits[:diff]
	copy(zd, tail)

	aInt, bInt := a.intDigits(), b.intDigits()
	var longTop []int64
	var minInt_, maxInt_ int
	if aInt > bInt {
		minInt_, maxInt_ = bInt, aInt
		longTop = aTop
	} else {
		minInt_, maxInt_ = aInt, bInt
		longTop = bTop
	}

	overlap := minRdx + minInt_
	z.digits = z.digits[:diff+overlap]
	var carry int64
	for i := 0; i < overlap; i++ {
		if env.checkSignal() {
			return Interrupted
		}
		carry = addDigit(&z.digits[diff+i], aTop[i]+bTop[i], carry)
	}
	span := maxInt_ + minRdx
	z.digits = z.digits[:diff+span]
	for i := overlap; i < span; i++ {
		if env.checkSignal() {
			return Interrupted
		}
		carry = addDigit(&z.digits[diff+i], longTop[i], carry)
	}
	if carry != 0 {
		z.digits = append(z.digits[:diff+span], carry)
	}
	return Ok
}

// magSub computes |a|-|b| (or its negation, when sub flips which operand's
// sign the result should carry), per §4.5's magnitude-subtract algorithm.
func magSub(env *Env, a, b *Number, z *Number, sub bool) Status {
	if a.IsZero() {
		z.copy(b)
		if sub && !z.IsZero() {
			z.neg = !z.neg
		}
		if a.scale > z.scale {
			z.extendScale(a.scale)
		}
		return Ok
	}
	if b.IsZero() {
		z.copy(a)
		if b.scale > z.scale {
			z.extendScale(b.scale)
		}
		return Ok
	}

	aSave, bSave := a.neg, b.neg
	a.neg, b.neg = false, false
	cmp, s := Cmp(env, a, b)
	a.neg, b.neg = aSave, bSave
	if s != Ok {
		return s
	}

	if cmp == 0 {
		z.setToZero(maxInt(a.rdx, b.rdx))
		return Ok
	}

	var minuend, subtrahend *Number
	var neg bool
	if cmp > 0 {
		neg = a.neg
		minuend, subtrahend = a, b
	} else {
		neg = b.neg
		if sub {
			neg = !neg
		}
		minuend, subtrahend = b, a
	}

	z.copy(minuend)
	z.neg = neg

	start := 0
	if z.rdx < subtrahend.rdx {
		z.extend(subtrahend.rdx - z.rdx)
	} else {
		start = z.rdx - subtrahend.rdx
	}
	if subArrays(env, z.digits[start:], subtrahend.digits) {
		return Interrupted
	}
	z.clean()
	z.scale = maxInt(a.scale, b.scale)
	z.maskLowDigits()
	return Ok
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
