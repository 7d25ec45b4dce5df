package ieee754

import (
	"strings"

	"github.com/pkg/errors"
)

// Rounding defines what happens to the digits after the last printed one.
type Rounding int

const (
	// Truncate drops the remaining digits.
	Truncate Rounding = iota
	// HalfEven rounds to the nearest printed value, ties go to an even last digit.
	HalfEven
)

const (
	// DefaultDigits is the default number of fractional digits.
	DefaultDigits = 12
	// MaxDigits is the number of fractional digits, enough to print any finite float32 exactly.
	MaxDigits = subnormalShift
)

var roundingNames = map[Rounding]string{
	Truncate: "truncate",
	HalfEven: "half-even",
}

func (r Rounding) String() string {
	if name, found := roundingNames[r]; found {
		return name
	}
	return "unknown"
}

// ParseRounding returns a rounding mode by its name.
func ParseRounding(s string) (Rounding, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for r, name := range roundingNames {
		if name == s {
			return r, nil
		}
	}
	return Truncate, errors.Errorf("unknown rounding %q", s)
}

// Options control decimal rendering.
type Options struct {
	// Digits is the maximum number of fractional digits.
	// Values outside of [0, MaxDigits] are clamped.
	Digits int
	// Rounding is applied when the fraction does not end within Digits.
	Rounding Rounding
}

// DefaultOptions returns 12 truncated fractional digits.
func DefaultOptions() Options {
	return Options{Digits: DefaultDigits, Rounding: Truncate}
}

func (o Options) digits() int {
	switch {
	case o.Digits < 0:
		return 0
	case o.Digits > MaxDigits:
		return MaxDigits
	default:
		return o.Digits
	}
}
