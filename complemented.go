// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package swatch

import (
	"fmt"
	"image/color"

	"cogentcore.org/core/base/ordmap"
)

// primaryWheel and accentWheel assign each shade its hue index on the
// wheel, placing the seed (index 0) at the middle shade and the most
// rotated hues at the extremes.
var primaryWheel = map[Shade]int{
	Shade50:  5,
	Shade100: 6,
	Shade200: 7,
	Shade300: 8,
	Shade400: 9,
	Shade500: 0,
	Shade600: 1,
	Shade700: 2,
	Shade800: 3,
	Shade900: 4,
}

var accentWheel = map[Shade]int{
	Shade50:  3,
	Shade100: 4,
	Shade200: 0,
	Shade400: 1,
	Shade700: 2,
}

// Complemented returns a [Map] of the variant's shades drawn from
// evenly spaced complementary hues of the seed color, as produced by
// [Wheel]. The seed itself lands on the middle shade ([Shade500] for
// primary, [Shade200] for accent). It returns an error if [Wheel]
// fails or returns the wrong number of hues.
func Complemented(c color.RGBA, v Variants) (*Map, error) {
	keys := v.Shades()
	hues, err := Wheel(c, len(keys))
	if err != nil {
		return nil, err
	}
	if len(hues) != len(keys) {
		return nil, fmt.Errorf("swatch.Complemented: wheel returned %d hues for %d shades", len(hues), len(keys))
	}
	perm := primaryWheel
	if v == Accent {
		perm = accentWheel
	}
	m := ordmap.New[Shade, color.RGBA]()
	for _, k := range keys {
		m.Add(k, hues[perm[k]])
	}
	return m, nil
}
