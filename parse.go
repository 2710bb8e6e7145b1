// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package num

// Parse converts text, a digit string in the given base (already validated
// by the caller; Parse does not reject malformed input), into a new,
// unsigned Number. Sign is not this function's concern: a leading '-' in a
// language's surface syntax is stripped and applied by the caller, the same
// division of labor the original implementation draws between its lexer and
// its number core.
//
// If letter is set, text's first byte is read as a single base-36 digit
// ('0'-'9', 'A'-'Z' for 10-35), clamped to base-1, and base/the rest of text
// are ignored; this is dc's single-character constant form. Otherwise base
// 10 uses the direct decimal algorithm (parseDecimal); any other base uses
// the general positional algorithm (parseBase), which needs actual number
// arithmetic since intermediate values can exceed a machine word.
func Parse(env *Env, text string, base int, letter bool) (*Number, Status, error) {
	if letter {
		v := parseChar(text[0], base)
		return BigDig2Num(uint64(v)), Ok, nil
	}
	if base == 10 {
		n, interrupted := parseDecimal(env, text)
		if interrupted {
			return nil, Interrupted, statusErr(Interrupted)
		}
		return n, Ok, nil
	}
	baseNum := BigDig2Num(uint64(base))
	n, s, err := parseBase(env, text, baseNum, base)
	if s != Ok {
		return nil, s, err
	}
	return n, Ok, nil
}

// parseChar maps a single digit character to its numeric value in base,
// clamping out-of-range upper-case letters to base-1 (so "F" in base 10
// reads as 9, not an error; the caller's lexer is responsible for rejecting
// truly invalid digits before constructing a number from them).
func parseChar(c byte, base int) int64 {
	var v int64
	if c >= 'A' && c <= 'Z' {
		v = int64(c-'A') + 10
		if int(v) >= base {
			v = int64(base) - 1
		}
	} else {
		v = int64(c - '0')
	}
	return v
}

// parseDecimal implements §4.10's direct decimal parse: it scans text from
// right to left, skipping the decimal point, accumulating digit*10^exp
// straight into the correct cell of a freshly sized Number. Unlike
// parseBase it never multiplies or divides Numbers together; base 10 is the
// storage base (give or take packing D digits per cell), so placement is
// arithmetic on the exponent alone.
//
// The fractional digits are placed high within the rdx cell region rather
// than flush against position 0: cell i always carries a fixed power of B
// relative to the radix point, so when scale isn't a multiple of D the
// digit closest to the point (the tenths digit, etc.) must land at the top
// of the boundary cell, not its bottom, or every other operation that reads
// cells positionally (printDecimal, maskLowDigits, cell-aligned add/sub)
// would disagree with where the real digits are. exp therefore starts at
// pad, the unused low end of the boundary cell, instead of 0.
func parseDecimal(env *Env, text string) (*Number, bool) {
	dot := -1
	for i := 0; i < len(text); i++ {
		if text[i] == '.' {
			dot = i
			break
		}
	}
	intEnd := dot
	if intEnd < 0 {
		intEnd = len(text)
	}
	scale := 0
	if dot >= 0 {
		scale = len(text) - dot - 1
	}

	intStart := 0
	for intStart < intEnd && text[intStart] == '0' {
		intStart++
	}
	intLen := intEnd - intStart

	rdxCells := ceilDiv(scale, D)
	intCells := ceilDiv(intLen, D)

	n := New(intCells + rdxCells + 1)
	n.digits = append(n.digits, make([]int64, intCells+rdxCells)...)
	n.rdx = rdxCells
	n.scale = scale

	pad := rdxCells*D - scale
	exp := pad
	for i := len(text) - 1; i >= intStart; i-- {
		if env.checkSignal() {
			return nil, true
		}
		c := text[i]
		if c == '.' {
			continue
		}
		d := parseChar(c, 10)
		cell, off := exp/D, exp%D
		if cell < len(n.digits) {
			n.digits[cell] += d * pow10[off]
		}
		exp++
	}
	n.clean()
	return n, false
}

// parseBase implements §4.10's general positional parse for any base other
// than 10: the integer part is built up via n = n*base + v, and the
// fractional part accumulates a separate result/mult pair (mult tracking
// base^digits) that gets divided down and added on at the end, since a
// fractional positional value is exactly that ratio.
func parseBase(env *Env, text string, base *Number, baseVal int) (*Number, Status, error) {
	dot := -1
	for i := 0; i < len(text); i++ {
		if text[i] == '.' {
			dot = i
			break
		}
	}
	intEnd := dot
	if intEnd < 0 {
		intEnd = len(text)
	}

	n := New(4)
	for i := 0; i < intEnd; i++ {
		if env.checkSignal() {
			return nil, Interrupted, statusErr(Interrupted)
		}
		v := parseChar(text[i], baseVal)
		mult := New(mulReq(n, base))
		if s, err := Mul(env, n, base, mult, 0); s != Ok {
			return nil, s, err
		}
		if s, err := Add(env, mult, BigDig2Num(uint64(v)), n, 0); s != Ok {
			return nil, s, err
		}
	}

	if dot < 0 {
		return n, Ok, nil
	}

	result := New(4)
	mult := one()
	digs := 0
	for i := dot + 1; i < len(text); i++ {
		if env.checkSignal() {
			return nil, Interrupted, statusErr(Interrupted)
		}
		v := parseChar(text[i], baseVal)
		prod := New(mulReq(result, base))
		if s, err := Mul(env, result, base, prod, 0); s != Ok {
			return nil, s, err
		}
		if s, err := Add(env, prod, BigDig2Num(uint64(v)), result, 0); s != Ok {
			return nil, s, err
		}
		m2 := New(mulReq(mult, base))
		if s, err := Mul(env, mult, base, m2, 0); s != Ok {
			return nil, s, err
		}
		mult = m2
		digs++
	}

	if digs == 0 {
		return n, Ok, nil
	}

	frac := New(divReq(result, mult, 2*digs))
	if s, err := Div(env, result, mult, frac, 2*digs); s != Ok {
		return nil, s, err
	}
	sum := New(addReq(n, frac))
	if s, err := Add(env, n, frac, sum, digs); s != Ok {
		return nil, s, err
	}
	if sum.scale > digs {
		sum.truncateScale(digs)
	} else if sum.scale < digs {
		sum.extendScale(digs)
	}
	return sum, Ok, nil
}
