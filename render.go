// Copyright 2020 Aleksandr Demakin. All rights reserved.

package ieee754

import (
	"math/big"

	"github.com/avdva/ieee754/internal/mathutil"
)

const (
	delim = '.'

	// while shift <= maxSmallShift, frac*10 fits uint64.
	maxSmallShift = 60
	// integer digits of the largest finite value, 3.4e38.
	maxIntegerDigits = 39
)

// Text returns a textual form of the value b encodes:
// +0, -0, +INF, -INF, NaN, or the decimal text of a finite number.
func Text(b Bits, opts Options) string {
	s, e, m := split(b)
	switch Classify(e, m) {
	case Zero:
		return signed(s, "0")
	case Infinity:
		return signed(s, "INF")
	case NaN:
		return "NaN"
	default:
		return decimalText(s, e, m, opts)
	}
}

// Decimal returns the decimal text of a finite number,
// like "-173.233993530273" or "16777216.".
// The second return value is false, if b is a zero, an infinity, or a NaN.
func Decimal(b Bits, opts Options) (string, bool) {
	s, e, m := split(b)
	if Classify(e, m) != Finite {
		return "", false
	}
	return decimalText(s, e, m, opts), true
}

func signed(sign uint32, s string) string {
	if sign != 0 {
		return "-" + s
	}
	return "+" + s
}

// significand returns such full and shift, that the value is full * 2^-shift.
func significand(exponent, mantissa uint32) (full uint32, shift int) {
	if exponent == 0 { // subnormal, no hidden bit
		return mantissa, subnormalShift
	}
	return mantissa | hiddenBit, mantissaBits - (int(exponent) - bias)
}

func decimalText(sign, exponent, mantissa uint32, opts Options) string {
	full, shift := significand(exponent, mantissa)
	digits := opts.digits()
	var integer uint64
	intDigits := maxIntegerDigits
	if shift > 0 {
		integer = uint64(full >> uint(shift))
		intDigits = mathutil.DecimalDigits(integer)
	}
	// sign, integer part, delimiter, fraction, and a possible carry.
	buf := make([]byte, 0, 1+intDigits+1+digits+1)
	if sign != 0 {
		buf = append(buf, '-')
	}
	start := len(buf)
	if shift <= 0 { // no fractional bits at all
		hi, lo := mathutil.Lsh128(uint64(full), uint(-shift))
		buf = mathutil.AppendUint128(buf, hi, lo)
		return string(append(buf, delim))
	}

	buf = mathutil.AppendUint(buf, integer)
	buf = append(buf, delim)

	frac := newFraction(full, uint(shift))
	for i := 0; i < digits && !frac.isZero(); i++ {
		buf = append(buf, '0'+frac.next())
	}
	if opts.Rounding == HalfEven && !frac.isZero() && roundUp(frac, lastDigit(buf)) {
		buf = increment(buf, start)
	}
	return string(buf)
}

func lastDigit(buf []byte) byte {
	last := buf[len(buf)-1]
	if last == delim {
		last = buf[len(buf)-2]
	}
	return last - '0'
}

// roundUp consumes the next digit of a non-zero fraction
// and decides whether the printed digits must be incremented.
func roundUp(frac fraction, last byte) bool {
	next := frac.next()
	switch {
	case next > 5:
		return true
	case next < 5:
		return false
	default:
		return !frac.isZero() || last%2 == 1
	}
}

// increment adds one to the last digit of buf[start:], propagating the carry over the delimiter.
func increment(buf []byte, start int) []byte {
	for i := len(buf) - 1; i >= start; i-- {
		switch buf[i] {
		case delim:
		case '9':
			buf[i] = '0'
		default:
			buf[i]++
			return buf
		}
	}
	buf = append(buf, 0)
	copy(buf[start+1:], buf[start:])
	buf[start] = '1'
	return buf
}

// fraction is a binary fraction frac/2^shift, expanded into decimal digits by long division.
type fraction interface {
	isZero() bool
	// next multiplies the fraction by 10, and returns its integer part, keeping the rest.
	next() byte
}

func newFraction(full uint32, shift uint) fraction {
	if shift <= maxSmallShift {
		base := uint64(1) << shift
		return &smallFraction{frac: uint64(full) & (base - 1), base: base}
	}
	base := new(big.Int).Lsh(big.NewInt(1), shift)
	return &bigFraction{
		frac: new(big.Int).SetUint64(uint64(full)), // full < 2^24 < base
		base: base,
		quo:  new(big.Int),
		rem:  new(big.Int),
	}
}

type smallFraction struct {
	frac, base uint64
}

func (f *smallFraction) isZero() bool {
	return f.frac == 0
}

func (f *smallFraction) next() byte {
	f.frac *= 10
	d := f.frac / f.base
	f.frac %= f.base
	return byte(d)
}

var ten = big.NewInt(10)

type bigFraction struct {
	frac, base *big.Int
	quo, rem   *big.Int
}

func (f *bigFraction) isZero() bool {
	return f.frac.Sign() == 0
}

func (f *bigFraction) next() byte {
	f.frac.Mul(f.frac, ten)
	f.quo.QuoRem(f.frac, f.base, f.rem)
	f.frac, f.rem = f.rem, f.frac
	return byte(f.quo.Uint64())
}
