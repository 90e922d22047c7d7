// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package swatch

import (
	"image/color"

	"cogentcore.org/core/base/ordmap"
	"cogentcore.org/core/math32"
	"cogentcore.org/swatch/tint"
)

// Shaded returns a [Map] of the variant's shades made by mixing the
// seed color toward white for the light shades and toward black for
// the dark shades. The mix steps run linearly from +width/2 percent
// white at the lightest shade down toward -width/2 percent black,
// truncated to integers, so the symmetric primary range crosses zero
// and leaves [Shade500] as the seed itself. The optional width is the
// total percent span of the range, defaulting to 200 (full white to
// full black).
func Shaded(c color.RGBA, v Variants, width ...float32) *Map {
	keys := v.Shades()
	max := 100
	if len(width) > 0 {
		max = int(width[0]) / 2
	}
	min := -max
	delta := float32(max-min) / float32(len(keys))
	m := ordmap.New[Shade, color.RGBA]()
	for i, k := range keys {
		step := int(math32.Trunc(float32(max) - float32(i)*delta))
		m.Add(k, tint.Mix(c, step))
	}
	return m
}
