// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package swatch generates ordered maps of tonal shades from a single
// seed color. A swatch contains either the full set of ten primary
// shades (50 through 900) or the reduced set of five accent shades
// (50, 100, 200, 400, and 700), with the colors for each shade derived
// from the seed according to one of the [Modes] strategies.
package swatch

//go:generate core generate

import (
	"image/color"

	"cogentcore.org/core/base/ordmap"
	"cogentcore.org/swatch/wheel"
)

// Map is an ordered map from shades to colors, in light to dark
// shade order.
type Map = ordmap.Map[Shade, color.RGBA]

// Wheel returns n evenly spaced complementary hues of the given color,
// with the color itself at index 0. It is used by [Complemented] and can
// be set to a custom function to change how complementary swatches
// select their hues. The default implementation is [wheel.Complementary].
var Wheel = func(c color.RGBA, n int) ([]color.RGBA, error) {
	return wheel.Complementary(c, n), nil
}

// Swatch is a generated set of shades for a seed color.
type Swatch struct {

	// Seed is the color the shades were derived from.
	Seed color.RGBA

	// Mode is the strategy that was used to derive the shades.
	Mode Modes

	// Variant determines the set of shades the swatch contains.
	Variant Variants

	// Shades are the derived colors, keyed by shade in light to
	// dark order.
	Shades *Map
}

// New returns a new [Swatch] for the given seed color, derived using
// the given mode for the shades of the given variant. The optional
// factor adjusts the mode specific derivation parameter: the total
// percent width of the mix range for [ModeShade], the opacity strength
// for [ModeDesaturate], and the percent to mix into the seed for
// [ModeFade] (truncated to an integer). It is ignored for
// [ModeComplements]. New panics if the mode is not a valid mode value;
// errors from a custom [Wheel] are returned as is.
func New(c color.RGBA, mode Modes, variant Variants, factor ...float32) (*Swatch, error) {
	sw := &Swatch{Seed: c, Mode: mode, Variant: variant}
	var err error
	switch mode {
	case ModeShade:
		sw.Shades = Shaded(c, variant, factor...)
	case ModeDesaturate:
		sw.Shades = Desaturated(c, variant, factor...)
	case ModeFade:
		if len(factor) > 0 {
			sw.Shades = Faded(c, variant, int(factor[0]))
		} else {
			sw.Shades = Faded(c, variant)
		}
	case ModeComplements:
		sw.Shades, err = Complemented(c, variant)
		if err != nil {
			return nil, err
		}
	default:
		panic("swatch.New: unknown mode: " + mode.String())
	}
	return sw, nil
}

// NewPrimary returns a new full ten shade [Swatch] for the given seed
// color. It is equivalent to [New] with [Primary].
func NewPrimary(c color.RGBA, mode Modes, factor ...float32) (*Swatch, error) {
	return New(c, mode, Primary, factor...)
}

// NewAccent returns a new reduced five shade [Swatch] for the given
// seed color. It is equivalent to [New] with [Accent].
func NewAccent(c color.RGBA, mode Modes, factor ...float32) (*Swatch, error) {
	return New(c, mode, Accent, factor...)
}

// Shade returns the color for the given shade, or the zero color if
// the swatch does not contain the shade.
func (sw *Swatch) Shade(s Shade) color.RGBA {
	return sw.Shades.ValueByKey(s)
}

// Value returns the seed color packed as a single 0xRRGGBBAA value.
func (sw *Swatch) Value() uint32 {
	return uint32(sw.Seed.R)<<24 | uint32(sw.Seed.G)<<16 | uint32(sw.Seed.B)<<8 | uint32(sw.Seed.A)
}
