// Command floatbits prints the sign, exponent, and mantissa of a float32 bit pattern,
// and the value it encodes.
//
//	$ FLOAT_BITS=0xc32d3be7 floatbits
//	Sign Exponent Mantissa
//	11000011001011010011101111100111
//	Float: -173.233993530273
package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/golang/glog"
	"github.com/pkg/errors"
	flag "github.com/spf13/pflag"

	"github.com/avdva/ieee754"
	"github.com/avdva/ieee754/internal/config"
	"github.com/avdva/ieee754/internal/term"
)

func main() {
	if len(os.Args) == 2 && os.Args[1] == "help" {
		fmt.Printf("\nenvironment variables that configure %s\n\n", os.Args[0])
		config.Usage(os.Stdout)
		fmt.Printf("\nflags with the same names override them, see %s --help\n", os.Args[0])
		return
	}
	defer glog.Flush()
	if err := run(context.Background(), os.Args[1:], os.Stdout); err != nil {
		glog.Exitf("got fatal error: %v", err)
	}
}

func run(_ context.Context, args []string, w io.Writer) error {
	c, err := config.Load("floatbits", args, os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		return nil
	}
	if err != nil {
		return err
	}
	s, err := c.Resolve()
	if err != nil {
		return errors.Wrap(err, "invalid configuration")
	}
	glog.V(1).Infof("settings: digits=%d rounding=%s color=%s", s.Options.Digits, s.Options.Rounding, s.Color)
	glog.V(1).Infof("decoding %#v (%s)", s.Bits, s.Bits.Category())

	return ieee754.NewReport(s.Bits, s.Options).Write(w, term.NewStyler(s.Color))
}
