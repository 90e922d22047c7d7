// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package swatch

import (
	"image/color"

	"cogentcore.org/core/base/ordmap"
	"cogentcore.org/swatch/tint"
)

// Faded returns a [Map] of the variant's shades made by applying a
// linearly increasing opacity ramp to the seed color, from nearly
// transparent at the lightest shade toward opaque at the darkest. The
// first shade gets half of one ramp step; the opacity is also scaled
// by the alpha of the seed. The optional add is a percent to mix into
// the seed before fading, toward white if positive and black if
// negative. No shade reproduces the seed exactly; use [ModeDesaturate]
// when an exact seed shade is needed.
func Faded(c color.RGBA, v Variants, add ...int) *Map {
	base := c
	if len(add) > 0 {
		base = tint.Mix(c, add[0])
	}
	keys := v.Shades()
	div := len(keys)
	if v == Accent {
		div = len(keys) - 1
	}
	delta := 1 / float32(div)
	frac := float32(c.A) / 255
	m := ordmap.New[Shade, color.RGBA]()
	for i, k := range keys {
		weight := float32(i)
		if i == 0 {
			weight = 0.5
		}
		m.Add(k, tint.WithOpacity(base, frac*delta*weight))
	}
	return m
}
