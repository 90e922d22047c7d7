// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command swatch generates tonal swatches from seed colors, with
// terminal preview and file export.
package main

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"os"
	"path/filepath"
	"strconv"

	"cogentcore.org/core/base/iox/imagex"
	"cogentcore.org/core/base/iox/jsonx"
	"cogentcore.org/core/base/iox/tomlx"
	"cogentcore.org/core/base/iox/yamlx"
	"cogentcore.org/core/base/logx"
	"cogentcore.org/core/cli"
	"cogentcore.org/core/colors"
	"cogentcore.org/core/colors/cam/hsl"
	"cogentcore.org/swatch"
	"github.com/muesli/termenv"
)

//go:generate core generate -add-types -add-funcs

// Config is the configuration information for the swatch cli.
type Config struct {

	// Color is the seed color to generate shades for. It can be
	// in any format accepted by colors.FromString, such as a hex
	// string or a named color.
	Color string `posarg:"0" required:"-" default:"#4285f4"`

	// Mode is the strategy for deriving the shades from the seed color.
	Mode swatch.Modes `flag:"m,mode"`

	// Accent generates the reduced five shade accent swatch instead
	// of the full ten shade primary one.
	Accent bool `flag:"a,accent"`

	// Factor is an optional mode specific adjustment: the total percent
	// width of the mix range for shade mode, the opacity strength for
	// desaturate mode, and the percent to mix into the seed for fade mode.
	Factor string `flag:"f,factor"`

	// Output is the file to write for the export and image commands.
	// The format is determined by the file extension.
	Output string `flag:"o,output"`

	// Cell is the pixel size of each shade cell in the image output.
	Cell int `cmd:"image" default:"64"`
}

func main() { //types:skip
	opts := cli.DefaultOptions("swatch", "Generate tonal swatches from seed colors, with terminal preview and file export.")
	cli.Run(opts, &Config{}, Preview, Export, Image)
}

// Preview prints the swatch to the terminal, one line per shade, with
// each color shown as its hex value on a cell of that color.
func Preview(c *Config) error { //cli:cmd -root
	sw, err := build(c)
	if err != nil {
		return err
	}
	out := termenv.NewOutput(os.Stdout)
	for _, kv := range sw.Shades.Order {
		hex := colors.AsHex(kv.Value)
		cell := out.String(" " + hex + " ").
			Background(out.Color(hex6(kv.Value))).
			Foreground(out.Color(hex6(hsl.ContrastColor(kv.Value))))
		fmt.Fprintf(out, "%3d %s\n", kv.Key, cell)
	}
	return nil
}

// export is the serializable form of a swatch, with the shades as an
// ordered list of hex colors.
type export struct {
	Seed    string
	Mode    swatch.Modes
	Variant swatch.Variants
	Shades  []exportShade
}

type exportShade struct {
	Shade swatch.Shade
	Color string
}

// Export writes the swatch to the output file, in a format determined
// by the file extension: .toml, .yaml, or .json.
func Export(c *Config) error {
	sw, err := build(c)
	if err != nil {
		return err
	}
	if c.Output == "" {
		return errors.New("export requires an output file (-o)")
	}
	e := &export{
		Seed:    colors.AsHex(sw.Seed),
		Mode:    sw.Mode,
		Variant: sw.Variant,
	}
	for _, kv := range sw.Shades.Order {
		e.Shades = append(e.Shades, exportShade{Shade: kv.Key, Color: colors.AsHex(kv.Value)})
	}
	switch filepath.Ext(c.Output) {
	case ".toml":
		return tomlx.Save(e, c.Output)
	case ".yaml", ".yml":
		return yamlx.Save(e, c.Output)
	case ".json":
		return jsonx.Save(e, c.Output)
	}
	return fmt.Errorf("unsupported export format: %q", filepath.Ext(c.Output))
}

// Image renders the swatch to an image file, with one square cell per
// shade, in a format determined by the file extension.
func Image(c *Config) error {
	sw, err := build(c)
	if err != nil {
		return err
	}
	if c.Output == "" {
		return errors.New("image requires an output file (-o)")
	}
	n := sw.Shades.Len()
	img := image.NewRGBA(image.Rect(0, 0, n*c.Cell, c.Cell))
	for i, kv := range sw.Shades.Order {
		r := image.Rect(i*c.Cell, 0, (i+1)*c.Cell, c.Cell)
		draw.Draw(img, r, image.NewUniform(kv.Value), image.Point{}, draw.Src)
	}
	return imagex.Save(img, c.Output)
}

// build makes the swatch specified by the config.
func build(c *Config) (*swatch.Swatch, error) {
	seed, err := colors.FromString(c.Color)
	if err != nil {
		return nil, err
	}
	variant := swatch.Primary
	if c.Accent {
		variant = swatch.Accent
	}
	var factor []float32
	if c.Factor != "" {
		f, err := strconv.ParseFloat(c.Factor, 32)
		if err != nil {
			return nil, err
		}
		factor = append(factor, float32(f))
	}
	logx.PrintfDebug("generating %s %s swatch for %s\n", c.Mode, variant, colors.AsHex(seed))
	return swatch.New(seed, c.Mode, variant, factor...)
}

// hex6 returns the color as a #RRGGBB hex string without any alpha,
// as expected by terminal color sequences.
func hex6(c color.RGBA) string {
	h := colors.AsHex(c)
	if len(h) > 7 {
		h = h[:7]
	}
	return h
}
