// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package harness

import (
	"bytes"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"cogentcore.org/isclose/logx"
	"cogentcore.org/isclose/tolassert"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	logx.UseColor = false
}

func TestDefaultCases(t *testing.T) {
	cases := DefaultCases()
	var buf bytes.Buffer
	rep := Run(&buf, cases, Options{})
	assert.True(t, rep.OK(), buf.String())
	assert.Equal(t, len(cases), rep.Passed)
	assert.Empty(t, rep.Failures)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, len(cases))
	assert.Equal(t, "PASS: Float64(0.053802999999999997, 0.053802999999999997, 6) -> expected: true, got: true", lines[0])
	assert.True(t, strings.HasPrefix(lines[len(lines)-1], "PASS: Float32(NaN, NaN, 6)"), lines[len(lines)-1])
}

func TestRunFailures(t *testing.T) {
	cases := []Case{
		{Name: "wrong", A: 0.053803, B: 0.053721, Significand: 6, Expected: true},
		{Name: "right", A: 1, B: 1, Significand: 6, Expected: true},
		{Name: "also wrong", A: 1, B: 2, Significand: 6, Width: 32, Expected: true},
	}
	var buf bytes.Buffer
	rep := Run(&buf, cases, Options{})
	assert.False(t, rep.OK())
	assert.Equal(t, 1, rep.Passed)
	assert.Equal(t, 2, rep.Failed)
	require.Len(t, rep.Failures, 2)
	assert.Equal(t, "also wrong", rep.Failures[1].Name)
	assert.Contains(t, buf.String(), "FAIL: Float64(0.053802999999999997, 0.053720999999999998, 6) -> expected: true, got: false")
	assert.Contains(t, buf.String(), "wrong: agrees to 4 significant digits (0.053803 vs 0.053721)")
	assert.Contains(t, buf.String(), "also wrong: agrees to 0 significant digits")

	buf.Reset()
	rep = Run(&buf, cases, Options{StopOnFail: true})
	assert.Equal(t, 0, rep.Passed)
	assert.Equal(t, 1, rep.Failed)
	assert.NotContains(t, buf.String(), "PASS")
}

func TestReportOK(t *testing.T) {
	assert.True(t, Report{}.OK())
	assert.True(t, Run(&bytes.Buffer{}, nil, Options{}).OK())
	assert.False(t, Run(&bytes.Buffer{}, []Case{{A: 1, B: 2, Significand: 6, Expected: true}}, Options{}).OK())
}

func TestCase(t *testing.T) {
	c := Case{A: 1, B: 1.00001, Significand: 4, Width: 32}
	assert.True(t, c.Is32())
	assert.True(t, c.Eval())
	assert.Equal(t, uint(4), c.Digits())
	assert.Equal(t, "Float32(1, 1.00001001, 4)", c.String())

	c.Width = 64
	c.Significand = 15
	assert.False(t, c.Eval())
	assert.NoError(t, c.Validate())

	c = Case{A: 0.053803, B: 0.053721, Significand: 3}
	a, b := c.Rounded()
	assert.Equal(t, 0.0538, a)
	assert.Equal(t, 0.0537, b)
	c.Width = 32
	a, b = c.Rounded()
	tolassert.Close(t, 0.0538, a, 6)
	tolassert.Close(t, 0.0537, b, 6)
	c.Significand = 99
	a, _ = c.Rounded()
	assert.Equal(t, float64(float32(0.053803)), a)

	c.Width = 16
	assert.ErrorIs(t, c.Validate(), ErrInvalidWidth)
}

const casesTOML = `
[[cases]]
name = "infinity"
a = inf
b = inf
significand = 6
expected = true

[[cases]]
name = "nan"
a = nan
b = nan
significand = 6
width = 32
expected = false

[[cases]]
a = 0.053803
b = 0.053721
significand = 3
expected = true
`

const casesYAML = `
cases:
  - name: negative infinity
    a: -.inf
    b: -.inf
    significand: 6
    expected: true
  - name: nan
    a: .nan
    b: 0
    significand: 6
    width: 32
    expected: false
  - a: 1e-15
    b: 2e-15
    significand: 15
    expected: true
`

func TestDecode(t *testing.T) {
	cases, err := Decode([]byte(casesTOML), TOML)
	require.NoError(t, err)
	require.Len(t, cases, 3)
	assert.True(t, math.IsInf(cases[0].A, 1))
	assert.True(t, math.IsNaN(cases[1].B))
	assert.Equal(t, 32, cases[1].Width)
	assert.Equal(t, uint(3), cases[2].Significand)
	assert.True(t, Run(&bytes.Buffer{}, cases, Options{}).OK())

	cases, err = Decode([]byte(casesYAML), YAML)
	require.NoError(t, err)
	require.Len(t, cases, 3)
	assert.Equal(t, "negative infinity", cases[0].Name)
	assert.True(t, math.IsInf(cases[0].A, -1))
	assert.True(t, math.IsNaN(cases[1].A))
	assert.Equal(t, 1e-15, cases[2].A)
	assert.True(t, Run(&bytes.Buffer{}, cases, Options{}).OK())
}

func TestDecodeErrors(t *testing.T) {
	_, err := Decode([]byte("[[cases]]\na = 1\nb = 1\nwidth = 8\n"), TOML)
	assert.ErrorIs(t, err, ErrInvalidWidth)

	_, err = Decode([]byte("cases: [\n"), YAML)
	assert.Error(t, err)

	_, err = Decode(nil, Format(5))
	assert.ErrorIs(t, err, ErrUnknownFormat)
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	tomlPath := filepath.Join(dir, "cases.toml")
	require.NoError(t, os.WriteFile(tomlPath, []byte(casesTOML), 0666))
	cases, err := Load(tomlPath)
	require.NoError(t, err)
	assert.Len(t, cases, 3)

	ymlPath := filepath.Join(dir, "cases.YML")
	require.NoError(t, os.WriteFile(ymlPath, []byte(casesYAML), 0666))
	cases, err = Load(ymlPath)
	require.NoError(t, err)
	assert.Len(t, cases, 3)

	_, err = Load(filepath.Join(dir, "cases.json"))
	assert.ErrorIs(t, err, ErrUnknownFormat)

	_, err = Load(filepath.Join(dir, "missing.toml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	badPath := filepath.Join(dir, "bad.toml")
	require.NoError(t, os.WriteFile(badPath, []byte("[[cases]]\nwidth = 12\n"), 0666))
	_, err = Load(badPath)
	assert.ErrorIs(t, err, ErrInvalidWidth)
	assert.Contains(t, err.Error(), "bad.toml")
}

func TestTestdata(t *testing.T) {
	cases, err := Load(filepath.Join("testdata", "cases.toml"))
	require.NoError(t, err)
	require.NotEmpty(t, cases)
	var buf bytes.Buffer
	rep := Run(&buf, cases, Options{})
	assert.True(t, rep.OK(), buf.String())
}
