// Copyright 2020 Aleksandr Demakin. All rights reserved.

package ieee754

// Category is the kind of value a bit pattern encodes.
type Category int

const (
	// Finite is any number that is neither zero, nor infinite, nor NaN.
	// Subnormals are finite too, see Bits.IsSubnormal.
	Finite Category = iota
	// Zero is +0 or -0.
	Zero
	// Infinity is +INF or -INF.
	Infinity
	// NaN is not-a-number, regardless of its payload.
	NaN
)

var categoryNames = [...]string{
	Finite:   "finite",
	Zero:     "zero",
	Infinity: "infinity",
	NaN:      "nan",
}

func (c Category) String() string {
	if c < 0 || int(c) >= len(categoryNames) {
		return "unknown"
	}
	return categoryNames[c]
}

// Classify returns the category for a biased exponent and a mantissa.
func Classify(exponent, mantissa uint32) Category {
	switch exponent {
	case 0:
		if mantissa == 0 {
			return Zero
		}
	case maxExponent:
		if mantissa == 0 {
			return Infinity
		}
		return NaN
	}
	return Finite
}

// Category returns the category of b.
func (b Bits) Category() Category {
	_, e, m := split(b)
	return Classify(e, m)
}
