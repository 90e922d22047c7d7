// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package theme

import (
	"image/color"

	"cogentcore.org/core/colors/cam/hsl"
	"cogentcore.org/swatch"
)

// Role contains the four standard variations of one swatch color
// as used in a [Scheme].
type Role struct {

	// Base is the main color of the role.
	Base color.RGBA

	// On is the color applied to content on top of [Role.Base].
	On color.RGBA

	// Container is the color applied to elements with less emphasis
	// than [Role.Base].
	Container color.RGBA

	// OnContainer is the color applied to content on top of
	// [Role.Container].
	OnContainer color.RGBA
}

// NewRoleLight returns a new light theme [Role] from the given swatch.
func NewRoleLight(sw *swatch.Swatch) Role {
	base, container, onContainer := swatch.Shade600, swatch.Shade100, swatch.Shade900
	if sw.Variant == swatch.Accent {
		base, container, onContainer = swatch.Shade400, swatch.Shade100, swatch.Shade700
	}
	return newRole(sw, base, container, onContainer)
}

// NewRoleDark returns a new dark theme [Role] from the given swatch.
func NewRoleDark(sw *swatch.Swatch) Role {
	base, container, onContainer := swatch.Shade200, swatch.Shade700, swatch.Shade50
	if sw.Variant == swatch.Accent {
		base, container, onContainer = swatch.Shade200, swatch.Shade400, swatch.Shade50
	}
	return newRole(sw, base, container, onContainer)
}

func newRole(sw *swatch.Swatch, base, container, onContainer swatch.Shade) Role {
	b := sw.Shade(base)
	return Role{
		Base:        b,
		On:          hsl.ContrastColor(b),
		Container:   sw.Shade(container),
		OnContainer: sw.Shade(onContainer),
	}
}
