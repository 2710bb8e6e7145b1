// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package num

// divReq returns the cell capacity a Div of a and b to scale fractional
// digits needs.
func divReq(a, b *Number, scale int) int {
	return len(a.digits) + len(b.digits) + ceilDiv(scale, D) + 4
}

// Div sets z to a/b truncated to scale fractional digits, per §4.7.
func Div(env *Env, a, b, z *Number, scale int) (Status, error) {
	if b.IsZero() {
		return fail("divide", DivideByZero)
	}
	ar, br := resolveAliasing(a, b, z, divReq(a, b, scale))

	if ar.IsZero() {
		z.setToZero(ceilDiv(scale, D))
		z.scale = scale
		z.maskLowDigits()
		return Ok, nil
	}

	wantRdxCells := ceilDiv(scale, D)
	shift := wantRdxCells + br.rdx - ar.rdx
	if shift < 0 {
		shift = 0
	}
	aPadded := padLow(ar.digits, shift)
	q, _, interrupted := divCells(env, aPadded, br.digits)
	if interrupted {
		return fail("divide", Interrupted)
	}
	z.digits = append(z.digits[:0], q...)
	z.rdx = shift + ar.rdx - br.rdx
	z.retireMul(scale, ar.neg, br.neg)
	return Ok, nil
}

// Rem sets z to a mod b, with sign(z) == sign(a) whenever z is nonzero, per
// §4.7's rem. Internally it computes a/b truncated to the requested scale,
// then multiplies that quotient back by b and subtracts from a at the
// higher working scale ts (which folds in both operands' own scales) to
// recover the exact remainder; the quotient itself must be truncated at
// scale before the multiply, not at ts, or the subtraction cancels too much
// precision and the remainder comes out short. Matches
// original_source/src/num.c's bc_num_r/bc_num_rem, including its reporting
// the final remainder at scale ts rather than the requested scale.
func Rem(env *Env, a, b, z *Number, scale int) (Status, error) {
	if b.IsZero() {
		return fail("remainder", DivideByZero)
	}
	ts := scale + b.scale
	if a.scale > ts {
		ts = a.scale
	}
	q := New(mulReq(a, b) + divReq(a, b, scale))
	if s, err := Div(env, a, b, q, scale); s != Ok {
		return s, err
	}
	mulScale := 0
	if scale != 0 {
		mulScale = ts
	}
	prod := New(mulReq(q, b))
	if s, err := Mul(env, q, b, prod, mulScale); s != Ok {
		return s, err
	}
	if s, err := Sub(env, a, prod, z, mulScale); s != Ok {
		return s, err
	}
	if z.scale > ts {
		z.truncateScale(ts)
	} else if z.scale < ts {
		z.extendScale(ts)
	}
	if !z.IsZero() {
		z.neg = a.neg
	}
	return Ok, nil
}

// DivMod sets q to a/b (truncated to scale) and r to a mod b (reported at
// Rem's working scale, see Rem), per §4.7's divmod: it calls Div and then
// Rem, so the division is performed twice, once for q and once inside Rem.
func DivMod(env *Env, a, b, q, r *Number, scale int) (Status, error) {
	if b.IsZero() {
		return fail("divmod", DivideByZero)
	}
	if s, err := Div(env, a, b, q, scale); s != Ok {
		return s, err
	}
	if s, err := Rem(env, a, b, r, scale); s != Ok {
		return s, err
	}
	return Ok, nil
}

// padLow returns d with n zero cells prepended at the low (least
// significant) end, representing the same integer shifted left by n cells
// (multiplied by B^n). Returns d unchanged (no copy) when n is 0.
func padLow(d []int64, n int) []int64 {
	if n == 0 {
		return d
	}
	z := make([]int64, n+len(d))
	copy(z[n:], d)
	return z
}

// divCells divides the plain cell array a by b (no sign, no radix point),
// returning trimmed quotient and remainder cell arrays. b must be non-empty
// (nonzero).
//
// For multi-cell divisors this implements Knuth's Algorithm D (TAOCP vol 2,
// §4.3.1): normalize so the divisor's leading cell is at least B/2, estimate
// each quotient cell from the two leading cells of the current remainder
// window, multiply-and-subtract, and correct by at most one when the
// estimate overshoots. It is the base-B analogue of the per-decimal-digit
// refinement loop described for d_long; operating a whole cell (worth D
// decimal digits) at a time instead of one decimal digit at a time.
func divCells(env *Env, a, b []int64) (q, r []int64, interrupted bool) {
	a, b = trimHigh(a), trimHigh(b)

	if len(b) == 1 {
		qd, rd, interrupted := divByDigit(env, a, b[0])
		if interrupted {
			return nil, nil, true
		}
		var rem []int64
		if rd != 0 {
			rem = []int64{rd}
		}
		return qd, rem, false
	}

	if len(a) < len(b) {
		return nil, append([]int64(nil), a...), false
	}
	if len(a) == len(b) {
		c := compareCells(env, a, b)
		if c == cmpInterrupted {
			return nil, nil, true
		}
		if c < 0 {
			return nil, append([]int64(nil), a...), false
		}
	}

	d := B / (b[len(b)-1] + 1)
	bn := b
	if d > 1 {
		bnScaled, interrupted := mulByDigit(env, b, d)
		if interrupted {
			return nil, nil, true
		}
		bn = bnScaled
	} else {
		d = 1
	}
	an, interrupted := mulByDigit(env, a, d)
	if interrupted {
		return nil, nil, true
	}

	n := len(bn)
	m := len(an) - n
	if m < 0 {
		m = 0
	}
	if want := n + m + 1; len(an) < want {
		grown := make([]int64, want)
		copy(grown, an)
		an = grown
	}

	qd := make([]int64, m+1)
	bnTop := bn[n-1]
	var bnTop2 int64
	if n >= 2 {
		bnTop2 = bn[n-2]
	}
	for j := m; j >= 0; j-- {
		if env.checkSignal() {
			return nil, nil, true
		}
		top2 := an[j+n]*B + an[j+n-1]
		qhat := top2 / bnTop
		rhat := top2 % bnTop
		if qhat >= B {
			qhat = B - 1
			rhat = top2 - qhat*bnTop
		}
		if n >= 2 {
			for rhat < B && qhat*bnTop2 > rhat*B+an[j+n-2] {
				qhat--
				rhat += bnTop
			}
		}
		if mulSubWindow(an[j:j+n+1], bn, qhat) {
			qhat--
			addArrays(env, an[j:j+n+1], bn)
		}
		qd[j] = qhat
	}

	remScaled := trimHigh(an[:n])
	remQ, _, interrupted := divByDigit(env, remScaled, d)
	if interrupted {
		return nil, nil, true
	}
	return trimHigh(qd), trimHigh(remQ), false
}

// mulSubWindow subtracts qhat*bn from window in place (window must have one
// more cell than bn, a guard cell for the top borrow), returning true if the
// result went negative, meaning qhat was one too large.
func mulSubWindow(window, bn []int64, qhat int64) bool {
	if qhat == 0 {
		return false
	}
	var carry, borrow int64
	for i := 0; i < len(bn); i++ {
		p := bn[i]*qhat + carry
		carry = p / B
		plo := p % B
		t := window[i] - plo - borrow
		if t < 0 {
			t += B
			borrow = 1
		} else {
			borrow = 0
		}
		window[i] = t
	}
	t := window[len(bn)] - carry - borrow
	if t < 0 {
		window[len(bn)] = t + B
		return true
	}
	window[len(bn)] = t
	return false
}

// divByDigit performs short division of x by the single cell value d (0 <
// d < B), returning the trimmed quotient and the remainder.
func divByDigit(env *Env, x []int64, d int64) (q []int64, r int64, interrupted bool) {
	qd := make([]int64, len(x))
	var rem int64
	for i := len(x) - 1; i >= 0; i-- {
		if env.checkSignal() {
			return nil, 0, true
		}
		cur := rem*B + x[i]
		qd[i] = cur / d
		rem = cur % d
	}
	return trimHigh(qd), rem, false
}
