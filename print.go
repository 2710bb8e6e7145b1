// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package num

import "github.com/pkg/errors"

// PosixIbaseMax is the largest base printed with one character per digit
// (via hexDigits); bases above it print each digit as a space-separated,
// zero-padded decimal group instead, per §4.11.
const PosixIbaseMax = 16

// hexDigits maps a digit value 0-15 to its single-character representation
// for bases up to PosixIbaseMax.
var hexDigits = [PosixIbaseMax]byte{
	'0', '1', '2', '3', '4', '5', '6', '7',
	'8', '9', 'A', 'B', 'C', 'D', 'E', 'F',
}

// Print writes n through env in the given base, per §4.11. base == 10 uses
// the direct decimal writer; base == 0 or 1 writes engineering (0) or
// scientific (1) notation; any other base writes n's positional
// representation in that base. newline appends a trailing newline and
// flushes the line-wrap column, matching a calculator's print statement
// rather than an expression result.
func Print(env *Env, n *Number, base int, newline bool) (Status, error) {
	var s Status
	var err error

	switch {
	case n.IsZero():
		err = env.PutChar('0')
	case base == 10:
		s, err = printDecimal(env, n)
	case base == 0 || base == 1:
		s, err = printExponent(env, n, base == 0)
	default:
		s, err = printBase(env, n, base)
	}
	if err != nil {
		return Ok, errors.Wrap(err, "num: print")
	}
	if s != Ok {
		return s, err
	}
	if newline {
		if err := env.Newline(); err != nil {
			return Ok, errors.Wrap(err, "num: print")
		}
	}
	return Ok, nil
}

// printDecimal writes n in base 10: its sign, then intDigitCount()
// undivided digits, then, if n has a nonzero scale, a point and exactly
// scale fractional digits. A purely fractional number (intDigitCount() ==
// 0) gets no leading zero, e.g. ".5" rather than "0.5", matching the
// convention of the calculator language this package serves.
func printDecimal(env *Env, n *Number) (Status, error) {
	if n.neg {
		if err := env.PutChar('-'); err != nil {
			return Ok, errors.Wrap(err, "num: print")
		}
	}

	rdxPos := n.rdx * D
	if ic := n.intDigitCount(); ic > 0 {
		for p := rdxPos + ic - 1; p >= rdxPos; p-- {
			if env.checkSignal() {
				return fail("print", Interrupted)
			}
			if err := env.PutChar(byte('0' + n.digit(p))); err != nil {
				return Ok, errors.Wrap(err, "num: print")
			}
		}
	}
	if n.scale == 0 {
		return Ok, nil
	}
	if err := env.PutChar('.'); err != nil {
		return Ok, errors.Wrap(err, "num: print")
	}
	for p := rdxPos - 1; p >= rdxPos-n.scale; p-- {
		if env.checkSignal() {
			return fail("print", Interrupted)
		}
		if err := env.PutChar(byte('0' + n.digit(p))); err != nil {
			return Ok, errors.Wrap(err, "num: print")
		}
	}
	return Ok, nil
}

// leadingDigitPos returns the digit() position of n's most significant
// nonzero digit. n must be nonzero.
func leadingDigitPos(n *Number) int {
	for p := len(n.digits)*D - 1; p >= 0; p-- {
		if n.digit(p) != 0 {
			return p
		}
	}
	return -1
}

// printExponent writes n in scientific (eng == false) or engineering
// (eng == true) notation: a mantissa (scientific: exactly one nonzero digit
// before the point; engineering: one to three digits before the point, so
// that the exponent is a multiple of 3), "e", an optional "-", and the
// exponent. Grounded on the original
// implementation's print_exponent, but the shift amount is rederived at
// decimal-digit granularity: the original computes it from rdx and len
// directly, which only gives a digit count when a cell holds a single
// decimal digit, not this package's D-digit cells.
func printExponent(env *Env, n *Number, eng bool) (Status, error) {
	temp := createCopy(n)
	fractional := n.intDigits() == 0

	var places int
	if fractional {
		rdxPos := n.rdx * D
		places = rdxPos - leadingDigitPos(n)
		if eng {
			if m := places % 3; m != 0 {
				places += 3 - m
			}
		}
		temp.shiftLeft(places)
	} else {
		places = n.intDigitCount() - 1
		if eng {
			places -= places % 3
		}
		temp.shiftRight(places)
	}

	if s, err := printDecimal(env, temp); s != Ok {
		return s, err
	}
	if err := env.PutChar('e'); err != nil {
		return Ok, errors.Wrap(err, "num: print")
	}
	if places == 0 {
		return Ok, errors.Wrap(env.PutChar('0'), "num: print")
	}
	if fractional {
		if err := env.PutChar('-'); err != nil {
			return Ok, errors.Wrap(err, "num: print")
		}
	}
	return printDecimal(env, BigDig2Num(uint64(places)))
}

// printBase writes n's positional representation in base, per §4.11: the
// sign, then the magnitude via printNum, choosing a single-character digit
// writer for bases up to PosixIbaseMax and a space-separated, zero-padded
// decimal group writer for larger bases (the width is the decimal digit
// count of base-1, enough to hold any single digit in that base).
func printBase(env *Env, n *Number, base int) (Status, error) {
	if n.neg {
		if err := env.PutChar('-'); err != nil {
			return Ok, errors.Wrap(err, "num: print")
		}
	}
	mag := createCopy(n)
	mag.neg = false

	wide := base > PosixIbaseMax
	width := 1
	if wide {
		width = decDigitsOf(int64(base - 1))
	}
	return printNum(env, mag, BigDig2Num(uint64(base)), width, wide)
}

// printDigitNarrow writes a single-character digit (base <= PosixIbaseMax),
// preceded by a radix point when radix is set.
func printDigitNarrow(env *Env, v int, radix bool) error {
	if radix {
		if err := env.PutChar('.'); err != nil {
			return err
		}
	}
	return env.PutChar(hexDigits[v])
}

// printDigitWide writes a digit group zero-padded to width characters for
// bases above PosixIbaseMax, preceded by a radix point (the first
// fractional digit) or a plain space (every other digit), the separator
// every such group needs since a lone digit can itself be multiple decimal
// characters.
func printDigitWide(env *Env, v, width int, radix bool) error {
	if radix {
		if err := env.PutChar('.'); err != nil {
			return err
		}
	} else if err := env.PutChar(' '); err != nil {
		return err
	}
	buf := make([]byte, width)
	for i := width - 1; i >= 0; i-- {
		buf[i] = byte('0' + v%10)
		v /= 10
	}
	return env.WriteString(string(buf))
}

// printNum writes mag, a non-negative Number, as a sequence of digits in
// base, via the digit writer selected by wide/width. The integer part is
// peeled off least-significant-digit-first via repeated DivMod and printed
// from a stack in reverse; the fractional part is generated by repeatedly
// multiplying the remaining fraction by base and pulling off the integer
// part of the result, continuing until the accumulated digit count (tracked
// by fracLen, which multiplies by base once per digit) has grown past the
// cell count of mag's fractional part. Grounded on the original
// implementation's print_num; that routine's rdx/len-based loop bound is
// cell-granular on both sides of the comparison and so needs no unit
// translation, unlike print_exponent's.
func printNum(env *Env, mag, base *Number, width int, wide bool) (Status, error) {
	emit := func(v int, radix bool) error {
		if wide {
			return printDigitWide(env, v, width, radix)
		}
		return printDigitNarrow(env, v, radix)
	}

	if mag.IsZero() {
		if err := emit(0, false); err != nil {
			return Ok, errors.Wrap(err, "num: print")
		}
		return Ok, nil
	}

	intp := createCopy(mag)
	intp.truncate(intp.rdx)
	fracp := New(addReq(mag, intp))
	if s, err := Sub(env, mag, intp, fracp, 0); s != Ok {
		return s, err
	}

	var stack []uint64
	for !intp.IsZero() {
		if env.checkSignal() {
			return fail("print", Interrupted)
		}
		digit := New(4)
		q := New(divReq(intp, base, 0))
		if s, err := DivMod(env, intp, base, q, digit, 0); s != Ok {
			return s, err
		}
		intp = q
		v, st := BigDig(digit)
		if st != Ok {
			return fail("print", st)
		}
		stack = append(stack, v)
	}
	for i := len(stack) - 1; i >= 0; i-- {
		if env.checkSignal() {
			return fail("print", Interrupted)
		}
		if err := emit(int(stack[i]), false); err != nil {
			return Ok, errors.Wrap(err, "num: print")
		}
	}

	if mag.rdx == 0 {
		return Ok, nil
	}

	fracLen := one()
	radix := true
	for len(fracLen.digits) <= mag.rdx {
		if env.checkSignal() {
			return fail("print", Interrupted)
		}
		prod := New(mulReq(fracp, base))
		if s, err := Mul(env, fracp, base, prod, mag.rdx*D); s != Ok {
			return s, err
		}
		fracp = prod

		dig, st := intPart(fracp)
		if st != Ok {
			return fail("print", st)
		}
		whole := BigDig2Num(dig)
		rem := New(addReq(fracp, whole))
		if s, err := Sub(env, fracp, whole, rem, 0); s != Ok {
			return s, err
		}
		fracp = rem

		if err := emit(int(dig), radix); err != nil {
			return Ok, errors.Wrap(err, "num: print")
		}
		radix = false

		next := New(mulReq(fracLen, base))
		if s, err := Mul(env, fracLen, base, next, 0); s != Ok {
			return s, err
		}
		fracLen = next
	}
	return Ok, nil
}

// intPart returns n's integer part (the cells at or above n.rdx) as a
// uint64, ignoring any fraction, mirroring the original implementation's
// bc_num_ulong. It reports Negative or Overflow the same way BigDig does.
func intPart(n *Number) (uint64, Status) {
	if n.neg {
		return 0, Negative
	}
	const maxU64 = ^uint64(0)
	var v uint64
	for i := len(n.digits) - 1; i >= n.rdx; i-- {
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
