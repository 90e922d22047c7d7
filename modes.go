// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package swatch

// Modes are the strategies for deriving the shades of a swatch
// from its seed color.
type Modes int32 //enums:enum -trim-prefix Mode -transform kebab

const (
	// ModeShade mixes the seed toward white and black across a linear
	// range of percent steps.
	ModeShade Modes = iota

	// ModeDesaturate composites the seed at fixed per shade weights
	// over white for the light shades and black for the dark shades.
	ModeDesaturate

	// ModeFade applies a linear opacity ramp to the seed across the
	// shade positions.
	ModeFade

	// ModeComplements draws the shades from evenly spaced complementary
	// hues of the seed.
	ModeComplements
)
