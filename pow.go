// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package num

// powReq returns the cell capacity a Pow of a by b to scale fractional
// digits needs.
func powReq(a, b *Number, scale int) int {
	return len(a.digits)*4 + ceilDiv(scale, D) + 8
}

// Pow sets z to a raised to the integer power b, truncated to scale
// fractional digits, per §4.8. b must have zero scale (no fractional
// digits); a negative b computes 1/a^|b|.
func Pow(env *Env, a, b, z *Number, scale int) (Status, error) {
	if b.scale != 0 {
		return fail("power", NonInteger)
	}
	if b.IsZero() {
		z.one()
		return Ok, nil
	}
	if a.IsZero() {
		z.setToZero(ceilDiv(scale, D))
		z.scale = scale
		return Ok, nil
	}
	if b.isOne() {
		if !b.neg {
			z.copy(a)
			return Ok, nil
		}
		return Div(env, one(), a, z, scale)
	}

	neg := b.neg
	bAbs := createCopy(b)
	bAbs.neg = false
	pow, st := BigDig(bAbs)
	if st != Ok {
		return fail("power", st)
	}

	if !neg {
		cap1 := scale
		if a.scale > cap1 {
			cap1 = a.scale
		}
		cap2 := a.scale * int(pow)
		if cap2 < cap1 {
			scale = cap2
		} else {
			scale = cap1
		}
	}

	copyNum := createCopy(a)
	copyNum.neg = false
	powrdx := a.scale

	for pow&1 == 0 {
		if env.checkSignal() {
			return fail("power", Interrupted)
		}
		powrdx <<= 1
		sq := New(mulReq(copyNum, copyNum))
		if s, err := Mul(env, copyNum, copyNum, sq, powrdx); s != Ok {
			return s, err
		}
		copyNum = sq
		pow >>= 1
	}

	c := createCopy(copyNum)
	resrdx := powrdx

	for {
		pow >>= 1
		if pow == 0 {
			break
		}
		if env.checkSignal() {
			return fail("power", Interrupted)
		}
		powrdx <<= 1
		sq := New(mulReq(copyNum, copyNum))
		if s, err := Mul(env, copyNum, copyNum, sq, powrdx); s != Ok {
			return s, err
		}
		copyNum = sq

		if pow&1 == 1 {
			resrdx += powrdx
			prod := New(mulReq(c, copyNum))
			if s, err := Mul(env, c, copyNum, prod, resrdx); s != Ok {
				return s, err
			}
			c = prod
		}
	}

	if neg {
		inv := New(divReq(one(), c, scale))
		if s, err := Div(env, one(), c, inv, scale); s != Ok {
			return s, err
		}
		c = inv
	}

	c.neg = resultSign(a.neg, b)

	if c.rdx > ceilDiv(scale, D) {
		c.truncate(c.rdx - ceilDiv(scale, D))
	}
	c.scale = scale
	c.maskLowDigits()
	if c.IsZero() {
		c.setToZero(scale)
	}
	z.copy(c)
	return Ok, nil
}

// resultSign computes the sign of a^b: negative iff a is negative and the
// exponent's magnitude is odd. The exponent's own sign only decides whether
// the final result is inverted (handled by the caller); it never flips the
// sign itself, since (-2)^-3 is negative, same as (-2)^3.
func resultSign(aNeg bool, b *Number) bool {
	return aNeg && b.digit(0)%2 == 1
}

// one returns a fresh Number representing the integer 1.
func one() *Number {
	n := New(4)
	n.one()
	return n
}

// ModExp sets d to a^b mod c, per §4.8. Requires a and c integer, b a
// non-negative integer, and c nonzero.
func ModExp(env *Env, a, b, c, d *Number) (Status, error) {
	if c.IsZero() {
		return fail("modexp", DivideByZero)
	}
	if b.neg {
		return fail("modexp", Negative)
	}
	if a.scale != 0 || b.scale != 0 || c.scale != 0 {
		return fail("modexp", NonInteger)
	}

	base := New(len(c.digits))
	if s, err := Rem(env, a, c, base, 0); s != Ok {
		return s, err
	}
	exp := createCopy(b)
	two := New(4)
	two.digits = append(two.digits[:0], 2)

	d.set(one())

	for !exp.IsZero() {
		if env.checkSignal() {
			return fail("modexp", Interrupted)
		}
		parity := New(4)
		nextExp := New(len(exp.digits) + 1)
		if s, err := DivMod(env, exp, two, nextExp, parity, 0); s != Ok {
			return s, err
		}
		exp = nextExp

		if parity.isOne() {
			prod := New(mulReq(d, base))
			if s, err := Mul(env, d, base, prod, 0); s != Ok {
				return s, err
			}
			if s, err := Rem(env, prod, c, d, 0); s != Ok {
				return s, err
			}
		}

		sq := New(mulReq(base, base))
		if s, err := Mul(env, base, base, sq, 0); s != Ok {
			return s, err
		}
		if s, err := Rem(env, sq, c, base, 0); s != Ok {
			return s, err
		}
	}
	return Ok, nil
}
