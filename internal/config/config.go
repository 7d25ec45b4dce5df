// Package config loads the settings of floatbits from the environment and the command line.
// Flags that were set explicitly win over environment variables.
package config

import (
	goflag "flag"
	"io"
	"strconv"

	"github.com/pkg/errors"
	flag "github.com/spf13/pflag"
	"go-simpler.org/env"

	"github.com/avdva/ieee754"
	"github.com/avdva/ieee754/internal/term"
)

// C is the raw configuration, as it was given by the user.
type C struct {
	Bits     string `env:"FLOAT_BITS" default:"0xc32d3be7" usage:"bit pattern of a float32 (hex, binary, octal, or decimal literal)"`
	Float    string `env:"FLOAT_VALUE" usage:"decimal number to encode as a float32; overrides FLOAT_BITS"`
	Digits   int    `env:"FLOAT_DIGITS" default:"12" usage:"maximum number of fractional digits"`
	Rounding string `env:"FLOAT_ROUNDING" default:"truncate" usage:"truncate or half-even"`
	Color    string `env:"FLOAT_COLOR" default:"auto" usage:"auto, always, or never"`
}

// Settings is a validated configuration.
type Settings struct {
	Bits    ieee754.Bits
	Options ieee754.Options
	Color   term.Mode
}

// Load reads environment variables into C, then applies the flags from args.
// Go flags, like the ones glog registers, are accepted too.
func Load(name string, args []string, output io.Writer) (*C, error) {
	c := &C{}
	if err := env.Load(c, &env.Options{}); err != nil {
		return nil, errors.Wrap(err, "loading environment")
	}
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(output)
	fs.StringVarP(&c.Bits, "bits", "b", c.Bits, "bit pattern of a float32 (hex, binary, octal, or decimal literal)")
	fs.StringVarP(&c.Float, "float", "f", c.Float, "decimal number to encode as a float32; overrides --bits")
	fs.IntVarP(&c.Digits, "digits", "d", c.Digits, "maximum number of fractional digits")
	fs.StringVar(&c.Rounding, "rounding", c.Rounding, "truncate or half-even")
	fs.StringVar(&c.Color, "color", c.Color, "auto, always, or never")
	fs.AddGoFlagSet(goflag.CommandLine)
	if err := fs.Parse(args); err != nil {
		return nil, errors.Wrap(err, "parsing flags")
	}
	// glog only honours its flags once the Go flag set reports being parsed.
	if err := goflag.CommandLine.Parse(nil); err != nil {
		return nil, errors.Wrap(err, "parsing go flags")
	}
	return c, nil
}

// Usage prints the environment variables C understands.
func Usage(w io.Writer) {
	env.Usage(&C{}, w, nil)
}

// Resolve validates c.
func (c *C) Resolve() (Settings, error) {
	var s Settings
	var err error
	if c.Float != "" {
		f, err := strconv.ParseFloat(c.Float, 32)
		if err != nil {
			return s, errors.Wrap(err, "FLOAT_VALUE")
		}
		s.Bits = ieee754.FromFloat32(float32(f))
	} else if s.Bits, err = ieee754.ParseBits(c.Bits); err != nil {
		return s, errors.Wrap(err, "FLOAT_BITS")
	}
	if c.Digits < 0 || c.Digits > ieee754.MaxDigits {
		return s, errors.Errorf("FLOAT_DIGITS: %d is out of range [0, %d]", c.Digits, ieee754.MaxDigits)
	}
	s.Options.Digits = c.Digits
	if s.Options.Rounding, err = ieee754.ParseRounding(c.Rounding); err != nil {
		return s, errors.Wrap(err, "FLOAT_ROUNDING")
	}
	if s.Color, err = term.ParseMode(c.Color); err != nil {
		return s, errors.Wrap(err, "FLOAT_COLOR")
	}
	return s, nil
}
