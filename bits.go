// Copyright 2020 Aleksandr Demakin. All rights reserved.

// Package ieee754 decodes the bit pattern of an IEEE-754 single-precision
// number and renders its fields and decimal value as text.
package ieee754

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

const (
	signBits     = 1
	exponentBits = 8
	mantissaBits = 23
	bitsInNumber = signBits + exponentBits + mantissaBits

	// SEEEEEEE EMMMMMMM MMMMMMMM MMMMMMMM
	signMask     = 1 << (bitsInNumber - 1)
	exponentMask = (1<<exponentBits - 1) << mantissaBits
	mantissaMask = 1<<mantissaBits - 1

	maxSign     = 1
	maxExponent = 1<<exponentBits - 1
	maxMantissa = mantissaMask

	bias           = 1<<(exponentBits-1) - 1
	hiddenBit      = 1 << mantissaBits
	minExponent    = 1 - bias // unbiased exponent of subnormals
	subnormalShift = mantissaBits - minExponent
)

// ErrRange is returned when a field does not fit its width.
var ErrRange = errors.New("value out of range")

// Bits is the raw encoding of a single-precision floating-point number.
//   31 30      22                     0
//   _|________|_______________________
//   seeeeeeeemmmmmmmmmmmmmmmmmmmmmmmmm
//
// Every uint32 is a valid encoding, so all methods are total.
type Bits uint32

func split(b Bits) (sign, exponent, mantissa uint32) {
	return (uint32(b) & signMask) >> (bitsInNumber - signBits),
		(uint32(b) & exponentMask) >> mantissaBits,
		uint32(b) & mantissaMask
}

func fromFields(sign, exponent, mantissa uint32) Bits {
	return Bits(sign<<(bitsInNumber-signBits) | exponent<<mantissaBits | mantissa&mantissaMask)
}

// FromFields composes a bit pattern from its fields.
// Returns an error if any of the fields exceeds its width.
func FromFields(sign, exponent, mantissa uint32) (Bits, error) {
	switch {
	case sign > maxSign:
		return 0, errors.Wrapf(ErrRange, "sign %d", sign)
	case exponent > maxExponent:
		return 0, errors.Wrapf(ErrRange, "exponent %d", exponent)
	case mantissa > maxMantissa:
		return 0, errors.Wrapf(ErrRange, "mantissa %d", mantissa)
	}
	return fromFields(sign, exponent, mantissa), nil
}

// MustFromFields is like FromFields, but panics on error.
func MustFromFields(sign, exponent, mantissa uint32) Bits {
	b, err := FromFields(sign, exponent, mantissa)
	if err != nil {
		panic(err)
	}
	return b
}

// FromFloat32 returns the encoding of f.
func FromFloat32(f float32) Bits {
	return Bits(math.Float32bits(f))
}

// ParseBits parses an unsigned integer literal into a bit pattern.
// Base prefixes (0x, 0b, 0o) and underscores are accepted, as in Go source.
func ParseBits(s string) (Bits, error) {
	u, err := strconv.ParseUint(strings.TrimSpace(s), 0, bitsInNumber)
	if err != nil {
		return 0, errors.Wrapf(err, "parsing bit pattern %q", s)
	}
	return Bits(u), nil
}

// Split returns sign, biased exponent and mantissa fields.
func (b Bits) Split() (sign, exponent, mantissa uint32) {
	return split(b)
}

// Sign returns the sign bit, 0 or 1.
func (b Bits) Sign() uint32 {
	s, _, _ := split(b)
	return s
}

// Exponent returns the biased exponent, 0..255.
func (b Bits) Exponent() uint32 {
	_, e, _ := split(b)
	return e
}

// Mantissa returns the stored fraction bits without the hidden bit.
func (b Bits) Mantissa() uint32 {
	_, _, m := split(b)
	return m
}

// Float32 returns the number b encodes.
func (b Bits) Float32() float32 {
	return math.Float32frombits(uint32(b))
}

// IsSubnormal reports whether b is a finite number without the hidden leading bit.
func (b Bits) IsSubnormal() bool {
	_, e, m := split(b)
	return e == 0 && m != 0
}

// String returns the decoded value with default options.
func (b Bits) String() string {
	return Text(b, DefaultOptions())
}

// GoString returns debug string representation.
func (b Bits) GoString() string {
	s, e, m := split(b)
	return fmt.Sprintf("0x%08x {%v, %v, %v}", uint32(b), s, e, m)
}
