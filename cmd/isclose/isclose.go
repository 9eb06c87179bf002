// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command isclose reports whether two floating-point numbers are equal
// to within a given number of significant digits, or runs a table of
// closeness cases from a TOML or YAML file.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"
	"strconv"

	"cogentcore.org/isclose"
	"cogentcore.org/isclose/harness"
	"cogentcore.org/isclose/logx"
)

// Exit codes.
const (
	exitClose    = 0
	exitNotClose = 1
	exitUsage    = 2
)

// config holds the command line options.
type config struct {
	significand uint
	f32         bool
	digits      bool
	cases       string
	defaults    bool
	stop        bool
	vv, v, q    bool
	nocolor     bool
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run runs the command with the given arguments and returns the exit code.
func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("isclose", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var c config
	fs.UintVar(&c.significand, "s", 6, "the number of significant digits the values must agree to")
	fs.BoolVar(&c.f32, "f32", false, "compare in single precision")
	fs.BoolVar(&c.digits, "digits", false, "print the number of significant digits the values agree to")
	fs.StringVar(&c.cases, "cases", "", "run the cases in the given TOML or YAML file")
	fs.BoolVar(&c.defaults, "defaults", false, "run the standard table of cases")
	fs.BoolVar(&c.stop, "stop", false, "stop at the first failing case")
	fs.BoolVar(&c.vv, "vv", false, "show debug messages")
	fs.BoolVar(&c.v, "v", false, "show info messages")
	fs.BoolVar(&c.q, "q", false, "only show error messages")
	fs.BoolVar(&c.nocolor, "nocolor", false, "do not use color in output")
	fs.Usage = func() { usage(fs) }
	if err := fs.Parse(args); err != nil {
		return exitUsage
	}

	logx.UserLevel = logx.LevelFromFlags(c.vv, c.v, c.q)
	logx.SetDefaultLogger(stderr)
	if c.nocolor {
		logx.UseColor = false
	}

	if c.cases != "" || c.defaults {
		return runCases(&c, stdout)
	}
	if fs.NArg() != 2 {
		slog.Error("expected exactly two values to compare", "got", fs.NArg())
		fs.Usage()
		return exitUsage
	}
	return compare(&c, fs.Arg(0), fs.Arg(1), stdout)
}

// compare parses and compares the two given values.
func compare(c *config, sa, sb string, w io.Writer) int {
	bits := 64
	if c.f32 {
		bits = 32
	}
	a, err := parseValue(sa, bits)
	if err != nil {
		slog.Error("invalid value", "value", sa, "err", err)
		return exitUsage
	}
	b, err := parseValue(sb, bits)
	if err != nil {
		slog.Error("invalid value", "value", sb, "err", err)
		return exitUsage
	}

	var ok bool
	var digits uint
	if c.f32 {
		ok = isclose.Float32(float32(a), float32(b), c.significand)
		digits = isclose.Digits32(float32(a), float32(b))
		slog.Debug("compared", "a", float32(a), "b", float32(b), "significand", isclose.ClampSignificand32(c.significand), "tolerance", isclose.Tolerance32(c.significand))
	} else {
		ok = isclose.Float64(a, b, c.significand)
		digits = isclose.Digits64(a, b)
		slog.Debug("compared", "a", a, "b", b, "significand", isclose.ClampSignificand64(c.significand), "tolerance", isclose.Tolerance64(c.significand))
	}

	fmt.Fprintln(w, ok)
	if c.digits {
		fmt.Fprintln(w, digits)
	}
	if ok {
		return exitClose
	}
	return exitNotClose
}

// parseValue parses s as a float of the given bit size. A value that
// overflows the bit size is accepted as the infinity it rounds to.
func parseValue(s string, bits int) (float64, error) {
	v, err := strconv.ParseFloat(s, bits)
	if errors.Is(err, strconv.ErrRange) && math.IsInf(v, 0) {
		slog.Warn("value overflows, using infinity", "value", s, "bits", bits)
		return v, nil
	}
	return v, err
}

// runCases runs the cases from the configured file or the defaults.
func runCases(c *config, w io.Writer) int {
	cases := harness.DefaultCases()
	if c.cases != "" {
		var err error
		cases, err = harness.Load(c.cases)
		if err != nil {
			slog.Error("could not load cases", "err", err)
			return exitUsage
		}
	}
	fmt.Fprintln(w, logx.TitleColor(fmt.Sprintf("Running %d cases...", len(cases))))
	rep := harness.Run(w, cases, harness.Options{StopOnFail: c.stop})
	slog.Info("ran cases", "passed", rep.Passed, "failed", rep.Failed)
	if !rep.OK() {
		return exitNotClose
	}
	return exitClose
}

// usage is a replacement usage function for the flag set.
func usage(fs *flag.FlagSet) {
	w := fs.Output()
	_, _ = fmt.Fprintf(w, "Isclose reports whether two floating-point numbers agree to a number of significant digits.\n")
	_, _ = fmt.Fprintf(w, "Usage:\n")
	_, _ = fmt.Fprintf(w, "\tisclose [flags] a b\n")
	_, _ = fmt.Fprintf(w, "\tisclose [flags] -cases file.toml\n")
	_, _ = fmt.Fprintf(w, "\tisclose [flags] -defaults\n")
	_, _ = fmt.Fprintf(w, "Flags:\n")
	fs.PrintDefaults()
}
