// Package term colors the parts of a report for ANSI terminals.
package term

import (
	"strings"

	"github.com/fatih/color"
	"github.com/pkg/errors"
)

// Mode tells when colors are used.
type Mode int

const (
	// Auto enables colors if stdout is a terminal.
	Auto Mode = iota
	// Always forces colors.
	Always
	// Never disables colors.
	Never
)

var modeNames = [...]string{
	Auto:   "auto",
	Always: "always",
	Never:  "never",
}

func (m Mode) String() string {
	if m < 0 || int(m) >= len(modeNames) {
		return "unknown"
	}
	return modeNames[m]
}

// ParseMode returns a mode by its name.
func ParseMode(s string) (Mode, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for m, name := range modeNames {
		if name == s {
			return Mode(m), nil
		}
	}
	return Auto, errors.Errorf("unknown color mode %q", s)
}

// Styler paints sign red, exponent blue, mantissa green, and the value purple.
type Styler struct {
	sign, exponent, mantissa, value *color.Color
}

// NewStyler returns a styler for the given mode.
func NewStyler(mode Mode) *Styler {
	s := &Styler{
		sign:     color.New(color.FgRed),
		exponent: color.New(color.FgBlue),
		mantissa: color.New(color.FgGreen),
		value:    color.New(color.FgMagenta),
	}
	enabled := mode == Always || mode == Auto && !color.NoColor
	for _, c := range []*color.Color{s.sign, s.exponent, s.mantissa, s.value} {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return s
}

func (s *Styler) Sign(text string) string     { return s.sign.Sprint(text) }
func (s *Styler) Exponent(text string) string { return s.exponent.Sprint(text) }
func (s *Styler) Mantissa(text string) string { return s.mantissa.Sprint(text) }
func (s *Styler) Value(text string) string    { return s.value.Sprint(text) }
