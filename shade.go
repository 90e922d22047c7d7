// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package swatch

// Shade is a tonal position in a swatch, conventionally running from
// lightest (50) to darkest (900).
type Shade int

const (
	Shade50  Shade = 50
	Shade100 Shade = 100
	Shade200 Shade = 200
	Shade300 Shade = 300
	Shade400 Shade = 400
	Shade500 Shade = 500
	Shade600 Shade = 600
	Shade700 Shade = 700
	Shade800 Shade = 800
	Shade900 Shade = 900
)

// PrimaryShades is the full set of shades used for primary swatches,
// in light to dark order.
var PrimaryShades = []Shade{Shade50, Shade100, Shade200, Shade300, Shade400, Shade500, Shade600, Shade700, Shade800, Shade900}

// AccentShades is the reduced set of shades used for accent swatches,
// in light to dark order.
var AccentShades = []Shade{Shade50, Shade100, Shade200, Shade400, Shade700}

// Variants are the kinds of swatches, which determine the set of
// shades a swatch contains.
type Variants int32 //enums:enum -transform kebab

const (
	// Primary is a full ten shade swatch.
	Primary Variants = iota

	// Accent is a reduced five shade swatch.
	Accent
)

// Shades returns the ordered shade keys for the variant.
func (v Variants) Shades() []Shade {
	if v == Accent {
		return AccentShades
	}
	return PrimaryShades
}
