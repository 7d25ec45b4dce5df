// Copyright 2020 Aleksandr Demakin. All rights reserved.

package ieee754

import (
	"fmt"
	"math"
	"math/rand"
	"strconv"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestSplit(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		b                 Bits
		sign, exp, mant   uint32
		category          Category
		isSubnormalNumber bool
	}{
		{0x00000000, 0, 0, 0, Zero, false},
		{0x80000000, 1, 0, 0, Zero, false},
		{0x7f800000, 0, 255, 0, Infinity, false},
		{0xff800000, 1, 255, 0, Infinity, false},
		{0xffc20200, 1, 255, 0x420200, NaN, false},
		{0x7fc00000, 0, 255, 0x400000, NaN, false},
		{0xc32d3be7, 1, 134, 2964455, Finite, false},
		{0x3f800000, 0, 127, 0, Finite, false},
		{0x00000001, 0, 0, 1, Finite, true},
		{0x807fffff, 1, 0, maxMantissa, Finite, true},
		{0x7f7fffff, 0, 254, maxMantissa, Finite, false},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			s, e, m := test.b.Split()
			a.Equal(test.sign, s)
			a.Equal(test.exp, e)
			a.Equal(test.mant, m)
			a.Equal(test.sign, test.b.Sign())
			a.Equal(test.exp, test.b.Exponent())
			a.Equal(test.mant, test.b.Mantissa())
			a.Equal(test.category, test.b.Category())
			a.Equal(test.isSubnormalNumber, test.b.IsSubnormal())
			a.Equal(test.b, MustFromFields(s, e, m))
		})
	}
}

func TestSplitRandom(t *testing.T) {
	a := assert.New(t)
	r := rand.New(rand.NewSource(1))
	for i := 0; i < 10000; i++ {
		b := Bits(r.Uint32())
		s, e, m := b.Split()
		a.True(s <= 1)
		a.True(e <= 255)
		a.True(m <= 8388607)
		sb, eb, mb := NewReport(b, DefaultOptions()).Fields()
		a.Len(sb+eb+mb, 32)
		u, err := strconv.ParseUint(sb+eb+mb, 2, 32)
		if a.NoError(err) {
			a.Equal(uint32(b), uint32(u))
		}
	}
}

func TestFromFields(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		sign, exp, mant uint32
		b               Bits
		err             string
	}{
		{0, 0, 0, 0, ""},
		{1, 134, 2964455, 0xc32d3be7, ""},
		{1, 255, maxMantissa, 0xffffffff, ""},
		{2, 0, 0, 0, "sign 2: value out of range"},
		{0, 256, 0, 0, "exponent 256: value out of range"},
		{0, 0, 1 << 23, 0, "mantissa 8388608: value out of range"},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			b, err := FromFields(test.sign, test.exp, test.mant)
			if len(test.err) == 0 {
				if a.NoError(err) {
					a.Equal(test.b, b)
				}
			} else {
				a.EqualError(err, test.err)
				a.True(errors.Is(err, ErrRange))
				a.Panics(func() { MustFromFields(test.sign, test.exp, test.mant) })
			}
		})
	}
}

func TestParseBits(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		s   string
		b   Bits
		err bool
	}{
		{"0xc32d3be7", 0xc32d3be7, false},
		{"0XFFC20200", 0xffc20200, false},
		{" 0x7f80_0000 ", 0x7f800000, false},
		{"0b10000000000000000000000000000000", 0x80000000, false},
		{"0o17740000000", 0x7f800000, false},
		{"1065353216", 0x3f800000, false},
		{"0", 0, false},
		{"0x1ffffffff", 0, true},
		{"-1", 0, true},
		{"abc", 0, true},
		{"", 0, true},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			b, err := ParseBits(test.s)
			if test.err {
				a.Error(err)
			} else if a.NoError(err) {
				a.Equal(test.b, b)
			}
		})
	}
}

func TestFloat32(t *testing.T) {
	a := assert.New(t)
	tests := []float32{0, 1, -173.234, float32(math.Inf(1)), math.MaxFloat32, math.SmallestNonzeroFloat32}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			a.Equal(test, FromFloat32(test).Float32())
		})
	}
	a.Equal(Bits(0xc32d3be7), FromFloat32(-173.234))
	a.True(math.IsNaN(float64(Bits(0xffc20200).Float32())))
}

func TestGoString(t *testing.T) {
	a := assert.New(t)
	a.Equal("0xc32d3be7 {1, 134, 2964455}", Bits(0xc32d3be7).GoString())
	a.Equal("0x00000001 {0, 0, 1}", Bits(1).GoString())
	a.Equal("0xc32d3be7 {1, 134, 2964455}", fmt.Sprintf("%#v", Bits(0xc32d3be7)))
	a.Equal("-173.233993530273", fmt.Sprintf("%v", Bits(0xc32d3be7)))
}
