// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package swatch

import (
	"errors"
	"image/color"
	"testing"

	"cogentcore.org/core/colors"
	"cogentcore.org/swatch/wheel"
	"github.com/stretchr/testify/assert"
)

func TestComplemented(t *testing.T) {
	oldWheel := Wheel
	defer func() { Wheel = oldWheel }()

	hues := make([]color.RGBA, 10)
	for i := range hues {
		hues[i] = color.RGBA{uint8(i), 0, 0, 255}
	}
	Wheel = func(c color.RGBA, n int) ([]color.RGBA, error) {
		return hues[:n], nil
	}

	m, err := Complemented(color.RGBA{}, Primary)
	assert.NoError(t, err)
	wants := []int{5, 6, 7, 8, 9, 0, 1, 2, 3, 4}
	for i, k := range PrimaryShades {
		assert.Equal(t, hues[wants[i]], m.ValueByKey(k), i)
	}

	m, err = Complemented(color.RGBA{}, Accent)
	assert.NoError(t, err)
	wants = []int{3, 4, 0, 1, 2}
	for i, k := range AccentShades {
		assert.Equal(t, hues[wants[i]], m.ValueByKey(k), i)
	}
}

func TestComplementedSeed(t *testing.T) {
	c := color.RGBA{255, 0, 0, 255}
	m, err := Complemented(c, Primary)
	assert.NoError(t, err)
	assert.Equal(t, c, m.ValueByKey(Shade500))
	assert.Equal(t, wheel.Complementary(c, 10)[5], m.ValueByKey(Shade50))

	m, err = Complemented(c, Accent)
	assert.NoError(t, err)
	assert.Equal(t, c, m.ValueByKey(Shade200))
}

func TestComplementedWheelErrors(t *testing.T) {
	oldWheel := Wheel
	defer func() { Wheel = oldWheel }()

	Wheel = func(c color.RGBA, n int) ([]color.RGBA, error) {
		return make([]color.RGBA, n-1), nil
	}
	m, err := Complemented(colors.Blue, Primary)
	assert.Nil(t, m)
	assert.Error(t, err)

	werr := errors.New("no wheel")
	Wheel = func(c color.RGBA, n int) ([]color.RGBA, error) {
		return nil, werr
	}
	m, err = Complemented(colors.Blue, Primary)
	assert.Nil(t, m)
	assert.Equal(t, werr, err)

	sw, err := New(colors.Blue, ModeComplements, Primary)
	assert.Nil(t, sw)
	assert.Equal(t, werr, err)
}
