// Copyright 2020 Aleksandr Demakin. All rights reserved.

package ieee754

import (
	"io"
	"strconv"
	"strings"
)

const (
	signTitle     = "Sign"
	exponentTitle = "Exponent"
	mantissaTitle = "Mantissa"
	valueTitle    = "Float: "

	// enough to pad any field.
	manyZeros = "00000000000000000000000"
)

// Styler decorates the parts of a report, for example with terminal colors.
type Styler interface {
	Sign(s string) string
	Exponent(s string) string
	Mantissa(s string) string
	Value(s string) string
}

// Plain is a Styler, that leaves the text as is.
type Plain struct{}

func (Plain) Sign(s string) string     { return s }
func (Plain) Exponent(s string) string { return s }
func (Plain) Mantissa(s string) string { return s }
func (Plain) Value(s string) string    { return s }

// Report is a decoded bit pattern ready to be printed.
type Report struct {
	Bits Bits
	// Value is +0, -0, +INF, -INF, NaN, or the decimal text.
	Value string
}

// NewReport decodes b.
func NewReport(b Bits, opts Options) Report {
	return Report{Bits: b, Value: Text(b, opts)}
}

// Fields returns the sign, exponent and mantissa as zero-padded binary strings,
// the most significant bit first.
func (r Report) Fields() (sign, exponent, mantissa string) {
	s, e, m := split(r.Bits)
	return binaryString(s, signBits), binaryString(e, exponentBits), binaryString(m, mantissaBits)
}

// Write prints three lines: field titles, field bits, and the value.
func (r Report) Write(w io.Writer, st Styler) error {
	if st == nil {
		st = Plain{}
	}
	var builder strings.Builder
	r.toStringsBuilder(&builder, st)
	_, err := io.WriteString(w, builder.String())
	return err
}

// String returns the report without any styling.
func (r Report) String() string {
	var builder strings.Builder
	r.toStringsBuilder(&builder, Plain{})
	return builder.String()
}

func (r Report) toStringsBuilder(builder *strings.Builder, st Styler) {
	s, e, m := r.Fields()
	builder.WriteString(st.Sign(signTitle))
	builder.WriteRune(' ')
	builder.WriteString(st.Exponent(exponentTitle))
	builder.WriteRune(' ')
	builder.WriteString(st.Mantissa(mantissaTitle))
	builder.WriteRune('\n')

	builder.WriteString(st.Sign(s))
	builder.WriteString(st.Exponent(e))
	builder.WriteString(st.Mantissa(m))
	builder.WriteRune('\n')

	builder.WriteString(st.Value(valueTitle + r.Value))
	builder.WriteRune('\n')
}

func binaryString(v uint32, width int) string {
	s := strconv.FormatUint(uint64(v), 2)
	if diff := width - len(s); diff > 0 {
		return manyZeros[:diff] + s
	}
	return s
}
