// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package theme

import "cogentcore.org/swatch"

// Schemes contains the light and dark scheme variations derived from
// the swatches of one seed color.
type Schemes struct {
	Light Scheme
	Dark  Scheme
}

// NewSchemes returns new [Schemes] from the given primary and accent
// swatches of a seed color.
func NewSchemes(primary, accent *swatch.Swatch) *Schemes {
	return &Schemes{
		Light: NewSchemeLight(primary, accent),
		Dark:  NewSchemeDark(primary, accent),
	}
}
