// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package theme

import (
	"image/color"

	"cogentcore.org/core/colors"
	"cogentcore.org/core/colors/cam/hsl"
	"cogentcore.org/swatch"
	"cogentcore.org/swatch/tint"
)

// Scheme contains the colors for one light or dark theme, derived
// from the swatches of a seed color.
type Scheme struct {

	// Primary is the role for the main color of the theme.
	Primary Role

	// Accent is the role for emphasized elements of the theme.
	Accent Role

	// Surface is the color applied to surfaces like cards and sheets.
	Surface color.RGBA

	// OnSurface is the color applied to content on top of [Scheme.Surface].
	OnSurface color.RGBA

	// Background is the color applied to the background of the app.
	Background color.RGBA

	// OnBackground is the color applied to content on top of
	// [Scheme.Background].
	OnBackground color.RGBA

	// Outline is the color applied to borders and dividers.
	Outline color.RGBA
}

// NewSchemeLight returns a new light theme [Scheme] from the given
// primary and accent swatches. Surfaces are made by laying the seed
// at a low opacity over white.
func NewSchemeLight(primary, accent *swatch.Swatch) Scheme {
	s := Scheme{
		Primary:    NewRoleLight(primary),
		Accent:     NewRoleLight(accent),
		Surface:    tint.Over(tint.WithOpacity(primary.Seed, 0.05), colors.White),
		Background: colors.White,
		Outline:    primary.Shade(swatch.Shade300),
	}
	s.OnSurface = hsl.ContrastColor(s.Surface)
	s.OnBackground = hsl.ContrastColor(s.Background)
	return s
}

// NewSchemeDark returns a new dark theme [Scheme] from the given
// primary and accent swatches. Surfaces are made by laying the seed
// at a low opacity over black.
func NewSchemeDark(primary, accent *swatch.Swatch) Scheme {
	s := Scheme{
		Primary:    NewRoleDark(primary),
		Accent:     NewRoleDark(accent),
		Surface:    tint.Over(tint.WithOpacity(primary.Seed, 0.1), colors.Black),
		Background: colors.Black,
		Outline:    primary.Shade(swatch.Shade700),
	}
	s.OnSurface = hsl.ContrastColor(s.Surface)
	s.OnBackground = hsl.ContrastColor(s.Background)
	return s
}
