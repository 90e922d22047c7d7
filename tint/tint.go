// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package tint provides simple linear color math over straight
// (non-premultiplied) [color.RGBA] values, such as percent mixing
// toward white and black and source over alpha compositing.
package tint

import (
	"image/color"

	"cogentcore.org/core/math32"
)

// Mix returns the given color mixed toward white for positive steps and
// toward black for negative steps, by the given percent step, clamped
// to -100 to 100. The alpha channel is preserved unchanged.
func Mix(c color.RGBA, step int) color.RGBA {
	pct := math32.Clamp(float32(step), -100, 100) / 100
	target := float32(255)
	if pct < 0 {
		target = 0
		pct = -pct
	}
	return color.RGBA{mix(c.R, target, pct), mix(c.G, target, pct), mix(c.B, target, pct), c.A}
}

func mix(c uint8, target, pct float32) uint8 {
	return uint8(math32.Lerp(float32(c), target, pct) + 0.5)
}

// WithOpacity returns the given color with its alpha set to the given
// fraction of full opacity, clamped to 0 to 1. The color channels are
// straight, not premultiplied, so they are unchanged.
func WithOpacity(c color.RGBA, fraction float32) color.RGBA {
	c.A = StrengthAlpha(fraction)
	return c
}

// StrengthAlpha converts a 0 to 1 strength fraction into a concrete
// alpha value, clamping out of range strengths.
func StrengthAlpha(strength float32) uint8 {
	return uint8(math32.Clamp(strength, 0, 1) * 255)
}

// Over composites the foreground over the background using standard
// source over alpha blending, treating both as straight alpha colors.
func Over(fg, bg color.RGBA) color.RGBA {
	fa := float32(fg.A) / 255
	ba := float32(bg.A) / 255
	oa := fa + ba*(1-fa)
	if oa == 0 {
		return color.RGBA{}
	}
	r := (float32(fg.R)*fa + float32(bg.R)*ba*(1-fa)) / oa
	g := (float32(fg.G)*fa + float32(bg.G)*ba*(1-fa)) / oa
	b := (float32(fg.B)*fa + float32(bg.B)*ba*(1-fa)) / oa
	return color.RGBA{uint8(r + 0.5), uint8(g + 0.5), uint8(b + 0.5), uint8(oa*255 + 0.5)}
}
