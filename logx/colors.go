// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package logx

import "github.com/muesli/termenv"

// UseColor is whether to use color in printed messages.
// It is on by default.
var UseColor = true

// colorProfile is the terminal color profile, read from the environment.
var colorProfile = termenv.EnvColorProfile()

// ANSI color indices.
const (
	red     = "1"
	green   = "2"
	yellow  = "3"
	cyan    = "6"
	magenta = "5"
)

func applyColor(clr, str string) string {
	if !UseColor || colorProfile == termenv.Ascii {
		return str
	}
	return termenv.String(str).Foreground(colorProfile.Color(clr)).String()
}

// SuccessColor returns the given string in the success color (green).
func SuccessColor(str string) string {
	return applyColor(green, str)
}

// ErrorColor returns the given string in the error color (red).
func ErrorColor(str string) string {
	return applyColor(red, str)
}

// WarnColor returns the given string in the warning color (yellow).
func WarnColor(str string) string {
	return applyColor(yellow, str)
}

// CmdColor returns the given string in the command color (cyan),
// used for echoing the comparison being evaluated.
func CmdColor(str string) string {
	return applyColor(cyan, str)
}

// TitleColor returns the given string in the title color (magenta).
func TitleColor(str string) string {
	return applyColor(magenta, str)
}
