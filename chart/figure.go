/*
 * figure.go, part of trajplot.
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
	"io"
	"os"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

//Series is one trajectory as drawn in a figure.
type Series struct {
	Label  string
	Data   [][]float64 //the columns plotted, in the chart's field order
	Points plotter.XYs //what is actually drawn (projected, for 3D charts)
	Color  color.Color
}

//Figure is a chart ready to be rendered. It is built from the data
//and a Style, and it does not keep references to the data it came from.
type Figure struct {
	Chart  Chart
	Series []Series
	Legend bool //whether the series are listed in a legend next to the axes

	plot   *plot.Plot
	legend plot.Legend
	width  vg.Length
	height vg.Length
	dpi    int
}

//Plot returns the underlying gonum plot, for further customization.
func (F *Figure) Plot() *plot.Plot {
	return F.plot
}

//legendWidth returns the width of the strip to the right of the axes
//reserved for the legend, or 0 if there is no legend.
func (F *Figure) legendWidth() vg.Length {
	if !F.Legend || len(F.Series) == 0 {
		return 0
	}
	var w vg.Length
	for _, v := range F.Series {
		if lw := F.legend.TextStyle.Width(v.Label); lw > w {
			w = lw
		}
	}
	w += F.legend.ThumbnailWidth + 3*F.legend.Padding + vg.Millimeter
	if limit := F.width / 2; w > limit {
		w = limit
	}
	return w
}

//layout splits c into the area for the axes and the strip to their right
//for the legend. Without a legend the axes take the whole canvas and ok is false.
func (F *Figure) layout(c draw.Canvas) (axes, strip draw.Canvas, ok bool) {
	lw := F.legendWidth()
	if lw == 0 {
		return c, draw.Canvas{}, false
	}
	axes = draw.Crop(c, 0, -lw, 0, 0)
	strip = draw.Crop(c, c.Max.X-c.Min.X-lw, 0, 0, 0)
	return axes, strip, true
}

//Draw draws the figure on the given canvas: the axes on the left, and
//the legend, if any, on a strip to their right, aligned to the top.
func (F *Figure) Draw(c draw.Canvas) {
	axes, strip, ok := F.layout(c)
	F.plot.Draw(axes)
	if ok {
		F.legend.Draw(strip)
	}
}

//Render draws the figure on a new raster canvas of the figure's size and resolution.
func (F *Figure) Render() *vgimg.Canvas {
	img := vgimg.NewWith(vgimg.UseWH(F.width, F.height), vgimg.UseDPI(F.dpi))
	F.Draw(draw.New(img))
	return img
}

//WriteTo renders the figure and writes it to w in PNG format.
func (F *Figure) WriteTo(w io.Writer) (int64, error) {
	png := vgimg.PngCanvas{Canvas: F.Render()}
	return png.WriteTo(w)
}

//Save renders the figure and writes it as a PNG file, replacing any
//existing file with the same name.
func (F *Figure) Save(filename string) error {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	if _, err := F.WriteTo(f); err != nil {
		f.Close()
		return fmt.Errorf("writing %s: %w", filename, err)
	}
	return f.Close()
}

func newFigure(ch Chart, st Style, legend bool) *Figure {
	F := &Figure{Chart: ch, Legend: legend}
	F.width, F.height = st.size()
	F.dpi = st.dpi()
	F.plot = plot.New()
	F.legend = plot.NewLegend()
	F.legend.Top = true
	F.legend.Left = true
	if ch.Kind.Dims() == 2 {
		F.plot.X.Label.Text = ch.Labels[0]
		F.plot.Y.Label.Text = ch.Labels[1]
		F.plot.Add(plotter.NewGrid())
	} else {
		F.plot.HideAxes()
	}
	return F
}

//addLine adds a series drawn as a line.
func (F *Figure) addLine(s Series, width vg.Length) error {
	l, err := plotter.NewLine(s.Points)
	if err != nil {
		return err
	}
	l.LineStyle.Width = width
	l.LineStyle.Color = s.Color
	F.plot.Add(l)
	F.legend.Add(s.Label, l)
	F.Series = append(F.Series, s)
	return nil
}

//addMarker adds a series drawn as circles, one per point.
func (F *Figure) addMarker(s Series) error {
	sc, err := plotter.NewScatter(s.Points)
	if err != nil {
		return err
	}
	sc.GlyphStyle.Shape = draw.CircleGlyph{}
	sc.GlyphStyle.Radius = vg.Points(4)
	sc.GlyphStyle.Color = s.Color
	F.plot.Add(sc)
	F.legend.Add(s.Label, sc)
	F.Series = append(F.Series, s)
	return nil
}

//addCube draws the three axes of a 3D chart, labeled with the axis names
//and the data range along each of them.
func (F *Figure) addCube(pr *projector, b *bounds) error {
	axes := pr.axes()
	lbl := plotter.XYLabels{XYs: make(plotter.XYs, 0, 3), Labels: make([]string, 0, 3)}
	for i, ax := range axes {
		l, err := plotter.NewLine(ax)
		if err != nil {
			return err
		}
		l.LineStyle.Color = color.Gray{Y: 100}
		l.LineStyle.Width = vg.Points(1)
		F.plot.Add(l)
		text := F.Chart.Labels[i]
		if !b.empty() {
			text = fmt.Sprintf("%s [%.4g, %.4g]", text, b.min[i], b.max[i])
		}
		lbl.XYs = append(lbl.XYs, ax[1])
		lbl.Labels = append(lbl.Labels, text)
	}
	labels, err := plotter.NewLabels(lbl)
	if err != nil {
		return err
	}
	F.plot.Add(labels)
	return nil
}
