// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package wheel generates evenly spaced complementary hues around the
// HSL color wheel.
package wheel

import (
	"image/color"

	"cogentcore.org/core/colors/cam/hsl"
	"cogentcore.org/core/math32"
)

// Complementary returns n evenly spaced hues around the color wheel,
// starting at the given color. Index 0 is the color itself, unmodified;
// each following hue is rotated by a further 360/n degrees, wrapping
// around the wheel, with saturation, lightness, and alpha preserved.
// A non-positive n returns nil.
func Complementary(c color.RGBA, n int) []color.RGBA {
	if n <= 0 {
		return nil
	}
	hues := make([]color.RGBA, n)
	hues[0] = c
	h := hsl.FromColor(c)
	delta := 360 / float32(n)
	for i := 1; i < n; i++ {
		hc := h
		hc.H = math32.Mod(h.H+float32(i)*delta, 360)
		hues[i] = hc.AsRGBA()
	}
	return hues
}
