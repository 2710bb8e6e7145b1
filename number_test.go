// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package num

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustParse(t *testing.T, env *Env, s string) *Number {
	t.Helper()
	neg := false
	if len(s) > 0 && s[0] == '-' {
		neg = true
		s = s[1:]
	}
	n, st, err := Parse(env, s, 10, false)
	if st != Ok {
		t.Fatalf("parse(%q): %v", s, err)
	}
	if neg && !n.IsZero() {
		n.neg = true
	}
	return n
}

func numString(t *testing.T, env *Env, n *Number) string {
	t.Helper()
	var buf writerBuf
	e := NewEnv(&buf, nil)
	if _, err := Print(e, n, 10, false); err != nil {
		t.Fatalf("print: %v", err)
	}
	if err := e.Flush(); err != nil {
		t.Fatalf("flush: %v", err)
	}
	return string(buf)
}

type writerBuf []byte

func (w *writerBuf) Write(p []byte) (int, error) {
	*w = append(*w, p...)
	return len(p), nil
}

func TestParsePrintRoundTrip(t *testing.T) {
	// A purely fractional value (no digits before the point) prints without
	// a leading zero, matching the calculator-language convention printDecimal
	// documents, so round-trip cases exercising that shape use the printed
	// form (".5", not "0.5") as both the parse input and the expected output.
	cases := []string{
		"0", "1", "123456789", ".5", ".000000005",
		"123456789.987654321", "1000000000", "-42", "-.25",
	}
	env := NewEnv(&writerBuf{}, nil)
	for i, s := range cases {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			n := mustParse(t, env, s)
			got := numString(t, env, n)
			if got != s {
				t.Fatalf("round trip %q: got %q", s, got)
			}
		})
	}
}

func TestAddSub(t *testing.T) {
	env := NewEnv(&writerBuf{}, nil)
	td := []struct{ a, b, sum, diff string }{
		{"1", "2", "3", "1"},
		{"1.5", "2.25", "3.75", "1.50"},
		{"-1", "1", "0", "-1"},
		{".1", ".2", ".3", ".1"},
	}
	for i, d := range td {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			a, b := mustParse(t, env, d.a), mustParse(t, env, d.b)
			z := New(4)
			if s, err := Add(env, a, b, z, 0); s != Ok {
				t.Fatalf("add: %v", err)
			}
			if got := numString(t, env, z); got != d.sum {
				t.Fatalf("got %q, want %q", got, d.sum)
			}
			z2 := New(4)
			if s, err := Sub(env, z, b, z2, 0); s != Ok {
				t.Fatalf("sub: %v", err)
			}
			if got := numString(t, env, z2); got != d.diff {
				t.Fatalf("sum-b got %q, want %q", got, d.diff)
			}
		})
	}
}

func TestMulDiv(t *testing.T) {
	env := NewEnv(&writerBuf{}, nil)
	a := mustParse(t, env, "123456789123456789")
	b := mustParse(t, env, "987654321")
	prod := New(4)
	if s, err := Mul(env, a, b, prod, 0); s != Ok {
		t.Fatalf("mul: %v", err)
	}
	q := New(4)
	if s, err := Div(env, prod, b, q, 0); s != Ok {
		t.Fatalf("div: %v", err)
	}
	if got := numString(t, env, q); got != "123456789123456789" {
		t.Fatalf("div roundtrip: got %q", got)
	}
}

func TestDivByZero(t *testing.T) {
	env := NewEnv(&writerBuf{}, nil)
	a := mustParse(t, env, "1")
	z := New(4)
	zero := New(4)
	if s, _ := Div(env, a, zero, z, 0); s != DivideByZero {
		t.Fatalf("expected DivideByZero, got %v", s)
	}
}

func TestSqrt(t *testing.T) {
	env := NewEnv(&writerBuf{}, nil)
	td := []struct {
		a, want string
		scale   int
	}{
		{"4", "2", 0},
		{"2", "1.41421356", 8},
		{"0", "0", 0},
		{"1", "1", 0},
	}
	for i, d := range td {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			a := mustParse(t, env, d.a)
			z := New(4)
			if s, err := Sqrt(env, a, z, d.scale); s != Ok {
				t.Fatalf("sqrt: %v", err)
			}
			if got := numString(t, env, z); got != d.want {
				t.Fatalf("sqrt(%s) = %q, want %q", d.a, got, d.want)
			}
		})
	}
}

func TestSqrtNegative(t *testing.T) {
	env := NewEnv(&writerBuf{}, nil)
	a := mustParse(t, env, "-4")
	z := New(4)
	if s, _ := Sqrt(env, a, z, 0); s != Negative {
		t.Fatalf("expected Negative, got %v", s)
	}
}

func TestPow(t *testing.T) {
	env := NewEnv(&writerBuf{}, nil)
	a := mustParse(t, env, "2")
	b := mustParse(t, env, "10")
	z := New(4)
	if s, err := Pow(env, a, b, z, 0); s != Ok {
		t.Fatalf("pow: %v", err)
	}
	if got := numString(t, env, z); got != "1024" {
		t.Fatalf("2^10 = %q", got)
	}
}

func TestCmp(t *testing.T) {
	env := NewEnv(&writerBuf{}, nil)
	a := mustParse(t, env, "1.5")
	b := mustParse(t, env, "1.50000001")
	c, st := Cmp(env, a, b)
	if st != Ok || c >= 0 {
		t.Fatalf("cmp(1.5, 1.50000001) = %d, %v", c, st)
	}
}

func TestPrintBase16(t *testing.T) {
	env := NewEnv(&writerBuf{}, nil)
	n := mustParse(t, env, "255")
	var buf writerBuf
	e := NewEnv(&buf, nil)
	if _, err := Print(e, n, 16, false); err != nil {
		t.Fatalf("print base 16: %v", err)
	}
	e.Flush()
	if string(buf) != "FF" {
		t.Fatalf("255 in base 16 = %q, want FF", string(buf))
	}
}

func TestPrintBaseWide(t *testing.T) {
	// Bases above PosixIbaseMax print space-separated, zero-padded groups,
	// including one before the very first group.
	env := NewEnv(&writerBuf{}, nil)
	n := mustParse(t, env, "255")
	var buf writerBuf
	e := NewEnv(&buf, nil)
	_, err := Print(e, n, 100, false)
	require.NoError(t, err)
	require.NoError(t, e.Flush())
	assert.Equal(t, " 02 55", string(buf))
}

func TestRem(t *testing.T) {
	env := NewEnv(&writerBuf{}, nil)
	td := []struct {
		a, b, want string
		scale      int
	}{
		{"10.5", "3", "1.5", 0},
		{"10", "3", "1", 0},
		{"-7", "3", "-1", 0},
	}
	for i, d := range td {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			a, b := mustParse(t, env, d.a), mustParse(t, env, d.b)
			z := New(8)
			s, err := Rem(env, a, b, z, d.scale)
			require.NoError(t, err)
			require.Equal(t, Ok, s)
			assert.Equal(t, d.want, numString(t, env, z))
		})
	}
}

func TestDivModIdentity(t *testing.T) {
	// q*b+r must reconstruct a exactly, the invariant the original review
	// comment on Rem's scale handling was ultimately protecting.
	env := NewEnv(&writerBuf{}, nil)
	td := []struct {
		a, b  string
		scale int
	}{
		{"10.5", "3", 0},
		{"123.456", "7.89", 4},
		{"-10.5", "3", 0},
	}
	for i, d := range td {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			a, b := mustParse(t, env, d.a), mustParse(t, env, d.b)
			q, r := New(16), New(16)
			s, err := DivMod(env, a, b, q, r, d.scale)
			require.NoError(t, err)
			require.Equal(t, Ok, s)

			prod := New(mulReq(q, b))
			s, err = Mul(env, q, b, prod, q.scale+b.scale)
			require.NoError(t, err)
			require.Equal(t, Ok, s)

			sum := New(addReq(prod, r))
			s, err = Add(env, prod, r, sum, 0)
			require.NoError(t, err)
			require.Equal(t, Ok, s)

			c, st := Cmp(env, sum, a)
			require.Equal(t, Ok, st)
			assert.Equalf(t, 0, c, "q*b+r = %s, want %s (q=%s r=%s)",
				numString(t, env, sum), numString(t, env, a),
				numString(t, env, q), numString(t, env, r))
		})
	}
}

func TestModExp(t *testing.T) {
	env := NewEnv(&writerBuf{}, nil)
	a := mustParse(t, env, "2")
	b := mustParse(t, env, "10")
	c := mustParse(t, env, "1000")
	d := New(8)
	s, err := ModExp(env, a, b, c, d)
	require.NoError(t, err)
	require.Equal(t, Ok, s)
	assert.Equal(t, "24", numString(t, env, d))
}

func TestModExpZeroModulus(t *testing.T) {
	env := NewEnv(&writerBuf{}, nil)
	a := mustParse(t, env, "2")
	b := mustParse(t, env, "10")
	c := mustParse(t, env, "0")
	d := New(8)
	s, _ := ModExp(env, a, b, c, d)
	assert.Equal(t, DivideByZero, s)
}

func TestModExpNegativeExponent(t *testing.T) {
	env := NewEnv(&writerBuf{}, nil)
	a := mustParse(t, env, "2")
	b := mustParse(t, env, "-10")
	b.neg = true
	c := mustParse(t, env, "1000")
	d := New(8)
	s, _ := ModExp(env, a, b, c, d)
	assert.Equal(t, Negative, s)
}

func TestParseBase(t *testing.T) {
	env := NewEnv(&writerBuf{}, nil)
	td := []struct {
		text string
		base int
		want string
	}{
		{"FF", 16, "255"},
		{"1A.8", 16, "26.5"},
		{"Z", 36, "35"},
	}
	for i, d := range td {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			n, s, err := Parse(env, d.text, d.base, false)
			require.NoError(t, err)
			require.Equal(t, Ok, s)
			assert.Equal(t, d.want, numString(t, env, n))
		})
	}
}

func TestPrintExponent(t *testing.T) {
	env := NewEnv(&writerBuf{}, nil)
	td := []struct {
		a    string
		eng  bool
		want string
	}{
		{"123456", false, "1.23456e5"},
		{"123456", true, "123.456e3"},
		{".000123", false, "1.23e-4"},
	}
	for i, d := range td {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			n := mustParse(t, env, d.a)
			var buf writerBuf
			e := NewEnv(&buf, nil)
			base := 1
			if d.eng {
				base = 0
			}
			_, err := Print(e, n, base, false)
			require.NoError(t, err)
			require.NoError(t, e.Flush())
			assert.Equal(t, d.want, string(buf))
		})
	}
}

func TestShiftLeftRight(t *testing.T) {
	env := NewEnv(&writerBuf{}, nil)

	a := mustParse(t, env, "1.5")
	b := mustParse(t, env, "3")
	z := New(8)
	s, err := ShiftLeft(env, a, b, z)
	require.NoError(t, err)
	require.Equal(t, Ok, s)
	assert.Equal(t, "1500", numString(t, env, z))

	a2 := mustParse(t, env, "123456")
	b2 := mustParse(t, env, "5")
	z2 := New(8)
	s, err = ShiftRight(env, a2, b2, z2)
	require.NoError(t, err)
	require.Equal(t, Ok, s)
	assert.Equal(t, "1.23456", numString(t, env, z2))

	negB := mustParse(t, env, "1")
	negB.neg = true
	s, _ = ShiftLeft(env, a, negB, New(8))
	assert.Equal(t, Negative, s)

	fracB := mustParse(t, env, "1.5")
	s, _ = ShiftLeft(env, a, fracB, New(8))
	assert.Equal(t, NonInteger, s)
}
