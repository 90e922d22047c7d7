// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package swatch

import (
	"fmt"
	"image/color"
	"testing"

	"cogentcore.org/core/colors"
	"cogentcore.org/swatch/tint"
	"github.com/stretchr/testify/assert"
)

func TestDesaturated(t *testing.T) {
	c := color.RGBA{100, 150, 200, 255}
	m := Desaturated(c, Primary)
	assert.Equal(t, c, m.ValueByKey(Shade500))
	assert.Equal(t, color.RGBA{232, 239, 247, 255}, m.ValueByKey(Shade50))
	assert.Equal(t, color.RGBA{15, 22, 30, 255}, m.ValueByKey(Shade900))

	type data struct {
		shade  Shade
		bg     color.RGBA
		weight float32
	}
	tests := []data{
		{Shade50, colors.White, 0.15},
		{Shade100, colors.White, 0.25},
		{Shade200, colors.White, 0.4},
		{Shade300, colors.White, 0.6},
		{Shade400, colors.White, 0.8},
		{Shade600, colors.Black, 0.7},
		{Shade700, colors.Black, 0.5},
		{Shade800, colors.Black, 0.3},
		{Shade900, colors.Black, 0.15},
	}
	for i, test := range tests {
		want := tint.Over(tint.WithOpacity(c, test.weight), test.bg)
		assert.Equal(t, want, m.ValueByKey(test.shade), i)
	}
}

func TestDesaturatedAccent(t *testing.T) {
	c := color.RGBA{100, 150, 200, 255}
	m := Desaturated(c, Accent)
	assert.Equal(t, AccentShades, m.Keys())
	assert.Equal(t, c, m.ValueByKey(Shade200))
	assert.Equal(t, tint.Over(tint.WithOpacity(c, 0.4), colors.White), m.ValueByKey(Shade50))
	assert.Equal(t, tint.Over(tint.WithOpacity(c, 0.75), colors.White), m.ValueByKey(Shade100))
	assert.Equal(t, tint.Over(tint.WithOpacity(c, 0.6), colors.Black), m.ValueByKey(Shade400))
	assert.Equal(t, tint.Over(tint.WithOpacity(c, 0.2), colors.Black), m.ValueByKey(Shade700))
}

func TestDesaturatedStrength(t *testing.T) {
	c := color.RGBA{10, 60, 200, 128}
	m := Desaturated(c, Primary, 0.5)
	assert.Equal(t, color.RGBA{10, 60, 200, 127}, m.ValueByKey(Shade500))
	assert.Equal(t, color.RGBA{237, 240, 251, 127}, m.ValueByKey(Shade50))
	for i, k := range PrimaryShades {
		assert.Equal(t, uint8(127), m.ValueByKey(k).A, i)
	}
}

func ExampleDesaturated() {
	m := Desaturated(colors.Black, Primary)
	for _, kv := range m.Order {
		fmt.Println(kv.Key, kv.Value)
	}
	// Output:
	// 50 {217 217 217 255}
	// 100 {192 192 192 255}
	// 200 {153 153 153 255}
	// 300 {102 102 102 255}
	// 400 {51 51 51 255}
	// 500 {0 0 0 255}
	// 600 {0 0 0 255}
	// 700 {0 0 0 255}
	// 800 {0 0 0 255}
	// 900 {0 0 0 255}
}
