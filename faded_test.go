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

func TestFaded(t *testing.T) {
	c := colors.Blue
	m := Faded(c, Primary)
	alphas := []uint8{12, 25, 51, 76, 102, 127, 153, 178, 204, 229}
	for i, k := range PrimaryShades {
		assert.Equal(t, color.RGBA{0, 0, 255, alphas[i]}, m.ValueByKey(k), i)
	}
	assert.NotEqual(t, c, m.ValueByKey(Shade500))
}

func TestFadedAccent(t *testing.T) {
	c := color.RGBA{200, 30, 100, 255}
	m := Faded(c, Accent)
	assert.Equal(t, AccentShades, m.Keys())
	alphas := []uint8{31, 63, 127, 191, 255}
	for i, k := range AccentShades {
		assert.Equal(t, color.RGBA{200, 30, 100, alphas[i]}, m.ValueByKey(k), i)
	}
}

func TestFadedAdd(t *testing.T) {
	c := color.RGBA{100, 150, 200, 255}
	m := Faded(c, Primary, 40)
	base := tint.Mix(c, 40)
	for i, k := range PrimaryShades {
		have := m.ValueByKey(k)
		assert.Equal(t, base.R, have.R, i)
		assert.Equal(t, base.G, have.G, i)
		assert.Equal(t, base.B, have.B, i)
	}
}

func TestFadedAlpha(t *testing.T) {
	c := color.RGBA{0, 0, 255, 128}
	m := Faded(c, Primary)
	assert.Equal(t, uint8(6), m.ValueByKey(Shade50).A)
	assert.Equal(t, uint8(64), m.ValueByKey(Shade500).A)
}

func ExampleFaded() {
	m := Faded(colors.Blue, Primary)
	for _, kv := range m.Order {
		fmt.Println(kv.Key, kv.Value)
	}
	// Output:
	// 50 {0 0 255 12}
	// 100 {0 0 255 25}
	// 200 {0 0 255 51}
	// 300 {0 0 255 76}
	// 400 {0 0 255 102}
	// 500 {0 0 255 127}
	// 600 {0 0 255 153}
	// 700 {0 0 255 178}
	// 800 {0 0 255 204}
	// 900 {0 0 255 229}
}
