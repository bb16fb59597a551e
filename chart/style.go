/*
 * style.go, part of trajplot.
 *
 * Copyright 2021 Yaroslav Aulin <mail{at}yaulinDOTnet>
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

package chart

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

//Defaults for a new Style.
const (
	DefaultColor     = "mediumvioletred"
	DefaultLineWidth = 3.0 //points
	DefaultWidth     = 6.4 //inches
	DefaultHeight    = 4.8 //inches
	DefaultDPI       = 300
)

//Style contains the display settings used to render a chart. It is a plain value:
//each record and each collection keeps its own copy.
type Style struct {
	Color     color.Color //line color in single-series charts
	LineWidth float64     //in points
	Width     float64     //figure width, in inches
	Height    float64     //figure height, in inches
	DPI       int
	Save      bool          //write the chart to a PNG file
	Palette   []color.Color //series colors for overlays. nil means the default palette.
	OutDir    string        //directory for the PNG files. Empty means the working directory.
}

//DefaultStyle returns a Style with the default settings.
func DefaultStyle() Style {
	c, _ := ParseColor(DefaultColor)
	return Style{
		Color:     c,
		LineWidth: DefaultLineWidth,
		Width:     DefaultWidth,
		Height:    DefaultHeight,
		DPI:       DefaultDPI,
	}
}

//SeriesColor returns the color for the i-th series of an overlay, cycling the palette.
func (s Style) SeriesColor(i int) color.Color {
	if len(s.Palette) == 0 {
		return plotutil.Color(i)
	}
	return s.Palette[i%len(s.Palette)]
}

func (s Style) size() (vg.Length, vg.Length) {
	w, h := s.Width, s.Height
	if w <= 0 {
		w = DefaultWidth
	}
	if h <= 0 {
		h = DefaultHeight
	}
	return vg.Length(w) * vg.Inch, vg.Length(h) * vg.Inch
}

func (s Style) dpi() int {
	if s.DPI <= 0 {
		return DefaultDPI
	}
	return s.DPI
}

func (s Style) lineWidth() vg.Length {
	if s.LineWidth <= 0 {
		return vg.Points(DefaultLineWidth)
	}
	return vg.Points(s.LineWidth)
}

//ParseColor returns the color for the given name, which can be one of the
//SVG 1.1 color keywords (case-insensitive) or a #rrggbb / #rgb hex string.
func ParseColor(name string) (color.Color, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	if strings.HasPrefix(n, "#") {
		return parseHex(n)
	}
	if c, ok := colornames.Map[n]; ok {
		return c, nil
	}
	return nil, fmt.Errorf("unknown color %q", name)
}

func parseHex(s string) (color.Color, error) {
	h := s[1:]
	if len(h) == 3 {
		h = string([]byte{h[0], h[0], h[1], h[1], h[2], h[2]})
	}
	if len(h) != 6 {
		return nil, fmt.Errorf("malformed hex color %q", s)
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return nil, fmt.Errorf("malformed hex color %q: %w", s, err)
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 255}, nil
}

//ParsePalette parses a list of color names. An empty list gives a nil palette.
func ParsePalette(names []string) ([]color.Color, error) {
	if len(names) == 0 {
		return nil, nil
	}
	ret := make([]color.Color, 0, len(names))
	for _, v := range names {
		c, err := ParseColor(v)
		if err != nil {
			return nil, err
		}
		ret = append(ret, c)
	}
	return ret, nil
}
