// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package theme derives light and dark user interface color schemes
// from swatches of a single seed color.
package theme

import (
	"image/color"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/swatch"
)

// TheSchemes are the main global light and dark color schemes. They
// should not be used for accessing the current scheme; see [TheScheme]
// for that. Instead, they should be set if you want to define your own
// custom schemes for your app, typically through [SetSchemes]. They
// default to schemes based around a primary color of Google Blue
// (#4285f4).
var TheSchemes = NewSchemes(
	errors.Log1(swatch.NewPrimary(color.RGBA{66, 133, 244, 255}, swatch.ModeDesaturate)),
	errors.Log1(swatch.NewAccent(color.RGBA{66, 133, 244, 255}, swatch.ModeDesaturate)),
)

// TheScheme is the currently active global [Scheme]. It is the main
// way that end user code should access the theme colors. For setting
// it to be light or dark, see [SetScheme]; for setting it to something
// custom, see [SetSchemes].
var TheScheme = &TheSchemes.Light

// SchemeIsDark is whether the currently active scheme is the dark one.
// It should be set through [SetScheme].
var SchemeIsDark = false

// SetSchemes sets [TheSchemes] and [TheScheme] from the given seed
// color, deriving the primary and accent swatches with the given mode.
// It is the main way that end user code should set the theme to
// something custom.
func SetSchemes(seed color.RGBA, mode swatch.Modes) error {
	primary, err := swatch.NewPrimary(seed, mode)
	if err != nil {
		return err
	}
	accent, err := swatch.NewAccent(seed, mode)
	if err != nil {
		return err
	}
	TheSchemes = NewSchemes(primary, accent)
	SetScheme(SchemeIsDark)
	return nil
}

// SetScheme sets [TheScheme] to either the dark or light scheme of
// [TheSchemes], based on the given value of whether the scheme should
// be dark. It also sets [SchemeIsDark].
func SetScheme(isDark bool) {
	SchemeIsDark = isDark
	if isDark {
		TheScheme = &TheSchemes.Dark
	} else {
		TheScheme = &TheSchemes.Light
	}
}
