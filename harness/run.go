// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package harness

import (
	"fmt"
	"io"
	"log/slog"

	"cogentcore.org/isclose/logx"
)

// Options are the options for [Run].
type Options struct {

	// StopOnFail stops at the first case that does not produce
	// its expected result.
	StopOnFail bool
}

// Report is the outcome of [Run].
type Report struct {
	Passed int
	Failed int

	// Failures are the cases that did not produce their expected result.
	Failures []Case
}

// OK returns whether no case failed.
func (r Report) OK() bool {
	return r.Failed == 0
}

// Run evaluates the given cases, writing one PASS or FAIL line per case
// to w, followed by a detail line for each failure.
func Run(w io.Writer, cases []Case, opts Options) Report {
	var rep Report
	for i := range cases {
		c := &cases[i]
		got := c.Eval()
		slog.Debug("evaluated case", "name", c.Name, "case", c.String(), "got", got)
		if got == c.Expected {
			rep.Passed++
			fmt.Fprintf(w, "%s: %s -> expected: %v, got: %v\n", logx.SuccessColor("PASS"), logx.CmdColor(c.String()), c.Expected, got)
			continue
		}
		rep.Failed++
		rep.Failures = append(rep.Failures, *c)
		fmt.Fprintf(w, "%s: %s -> expected: %v, got: %v\n", logx.ErrorColor("FAIL"), logx.CmdColor(c.String()), c.Expected, got)
		ra, rb := c.Rounded()
		fmt.Fprintf(w, "\t%s\n", logx.WarnColor(fmt.Sprintf("%s: agrees to %d significant digits (%v vs %v)", c.Name, c.Digits(), ra, rb)))
		if opts.StopOnFail {
			break
		}
	}
	return rep
}
