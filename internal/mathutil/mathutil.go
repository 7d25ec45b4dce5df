package mathutil

import (
	"math/bits"
	"unsafe"
)

var (
	decimalFactorTable = [...]uint64{ // up to 1e19
		1, 10, 100, 1000, 10000,
		100000, 1000000, 10000000, 100000000, 1000000000, 10000000000,
		100000000000, 1000000000000, 10000000000000, 100000000000000,
		1000000000000000, 10000000000000000, 100000000000000000,
		1000000000000000000, 10000000000000000000,
	}

	digitsHelper = [...]int{
		0, 0, 0, 0, 1, 1, 1, 2, 2, 2,
		3, 3, 3, 3, 4, 4, 4, 5, 5, 5,
		6, 6, 6, 6, 7, 7, 7, 8, 8, 8,
		9, 9, 9, 9, 10, 10, 10, 11, 11, 11,
		12, 12, 12, 12, 13, 13, 13, 14, 14, 14,
		15, 15, 15, 15, 16, 16, 16, 17, 17, 17,
		18, 18, 18, 18, 19,
	}
)

// Pow10 returns 10^pow.
func Pow10(pow int) uint64 {
	if pow < 0 || pow >= len(decimalFactorTable) {
		return 0
	}
	return decimalFactorTable[pow]
}

func BinaryDigits(value uint64) int {
	return int(8*unsafe.Sizeof(uint64(0))) - bits.LeadingZeros64(value)
}

// DecimalDigits returns the number of decimal digits in 'value'.
// see https://stackoverflow.com/a/25934909
func DecimalDigits(value uint64) int {
	if value == 0 {
		return 1
	}

	digits := digitsHelper[BinaryDigits(value)]
	if value >= Pow10(digits) {
		digits++
	}
	return digits
}

// AppendUint appends decimal digits of v to dst.
// Room for DecimalDigits(v) digits is reserved first, then filled by repeated division
// from the least significant digit to the left. A zero value produces a single '0'.
func AppendUint(dst []byte, v uint64) []byte {
	start := len(dst)
	dst = append(dst, make([]byte, DecimalDigits(v))...)
	for i := len(dst) - 1; i >= start; i-- {
		dst[i] = byte('0' + v%10)
		v /= 10
	}
	return dst
}

// Lsh128 returns v << n as a 128-bit number.
// n must be less than 128.
func Lsh128(v uint64, n uint) (hi, lo uint64) {
	switch {
	case n == 0:
		return 0, v
	case n < 64:
		return v >> (64 - n), v << n
	default:
		return v << (n - 64), 0
	}
}

// AppendUint128 appends decimal digits of a 128-bit number (hi, lo) to dst.
func AppendUint128(dst []byte, hi, lo uint64) []byte {
	if hi == 0 {
		return AppendUint(dst, lo)
	}
	start := len(dst)
	for hi != 0 || lo != 0 {
		var rem uint64
		hi, rem = hi/10, hi%10
		lo, rem = bits.Div64(rem, lo, 10)
		dst = append(dst, byte('0'+rem))
	}
	reverse(dst[start:])
	return dst
}

func reverse(b []byte) {
	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
}
