// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package swatch

import (
	"image/color"

	"cogentcore.org/core/base/ordmap"
	"cogentcore.org/core/colors"
	"cogentcore.org/swatch/tint"
)

// blend is the fixed compositing recipe for one shade: the seed is
// laid over bg at the given opacity weight. A weight of 1 marks the
// middle shade, which is the seed itself.
type blend struct {
	bg     color.RGBA
	weight float32
}

var primaryBlends = map[Shade]blend{
	Shade50:  {colors.White, 0.15},
	Shade100: {colors.White, 0.25},
	Shade200: {colors.White, 0.4},
	Shade300: {colors.White, 0.6},
	Shade400: {colors.White, 0.8},
	Shade500: {weight: 1},
	Shade600: {colors.Black, 0.7},
	Shade700: {colors.Black, 0.5},
	Shade800: {colors.Black, 0.3},
	Shade900: {colors.Black, 0.15},
}

var accentBlends = map[Shade]blend{
	Shade50:  {colors.White, 0.4},
	Shade100: {colors.White, 0.75},
	Shade200: {weight: 1},
	Shade400: {colors.Black, 0.6},
	Shade700: {colors.Black, 0.2},
}

// Desaturated returns a [Map] of the variant's shades made by
// compositing the seed color over white for the light shades and over
// black for the dark shades, at a fixed opacity weight per shade. The
// middle shade ([Shade500] for primary, [Shade200] for accent) is the
// seed itself. The optional strength scales the opacity of every
// shade and becomes the alpha of the resulting colors; it defaults to
// the alpha of the seed.
func Desaturated(c color.RGBA, v Variants, strength ...float32) *Map {
	alpha := c.A
	if len(strength) > 0 {
		alpha = tint.StrengthAlpha(strength[0])
	}
	frac := float32(alpha) / 255
	blends := primaryBlends
	if v == Accent {
		blends = accentBlends
	}
	m := ordmap.New[Shade, color.RGBA]()
	for _, k := range v.Shades() {
		b := blends[k]
		out := c
		if b.weight != 1 {
			out = tint.Over(tint.WithOpacity(c, b.weight*frac), b.bg)
		}
		out.A = alpha
		m.Add(k, out)
	}
	return m
}
