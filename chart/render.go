/*
 * render.go, part of trajplot.
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

//Package chart renders the fixed catalog of trajectory charts, either for one
//trajectory or for several trajectories overlaid on the same axes, using gonum/plot.
//
//Every chart is one entry of a static table (see Catalog) giving the fields plotted,
//the axis labels and the drawing mode. The same code draws all of them.
package chart

import (
	"errors"
	"fmt"
	"path/filepath"

	"gonum.org/v1/plot/plotter"
)

//Source is a named table of columns that can be plotted.
//Column must return a copy of the data, or data the caller may not modify.
type Source interface {
	Name() string
	Column(field string) ([]float64, bool)
}

//columnsOf collects the columns of src needed for ch.
func columnsOf(src Source, ch Chart) ([][]float64, error) {
	if len(ch.Fields) != ch.Kind.Dims() {
		return nil, fmt.Errorf("chart %s: %d fields for a %s chart", ch.Code, len(ch.Fields), ch.Kind)
	}
	cols := make([][]float64, 0, len(ch.Fields))
	for _, f := range ch.Fields {
		c, ok := src.Column(f)
		if !ok {
			return nil, &FieldError{Chart: ch.Code, Record: src.Name(), Field: f}
		}
		if len(cols) > 0 && len(c) != len(cols[0]) {
			return nil, &SeriesError{ch.Code, src.Name(), fmt.Errorf("column %q has %d samples, expected %d", f, len(c), len(cols[0]))}
		}
		cols = append(cols, c)
	}
	if len(cols[0]) == 0 {
		return nil, &SeriesError{ch.Code, src.Name(), errors.New("no samples")}
	}
	if ch.Kind == Final2D || ch.Kind == Final3D {
		for i, c := range cols {
			cols[i] = []float64{c[len(c)-1]}
		}
	}
	return cols, nil
}

func xys(x, y []float64) plotter.XYs {
	ret := make(plotter.XYs, len(x))
	for i := range x {
		ret[i].X = x[i]
		ret[i].Y = y[i]
	}
	return ret
}

//Build prepares the figure for the chart ch over the given sources, without
//rendering it. If overlay is true, each source gets a color from the style's palette
//and the figure has a legend. Otherwise, every source is drawn with the style's color.
//No source is modified.
func Build(srcs []Source, ch Chart, st Style, overlay bool) (*Figure, error) {
	data := make([][][]float64, len(srcs))
	for i, src := range srcs {
		cols, err := columnsOf(src, ch)
		if err != nil {
			return nil, err
		}
		data[i] = cols
	}
	F := newFigure(ch, st, overlay)
	var pr *projector
	var b *bounds
	if ch.Kind.Dims() == 3 {
		pr = newProjector(Azimuth, Elevation)
		b = newBounds()
		for _, d := range data {
			b.add([3][]float64{d[0], d[1], d[2]})
		}
		if err := F.addCube(pr, b); err != nil {
			return nil, err
		}
	}
	single := st.Color
	if single == nil {
		single = DefaultStyle().Color
	}
	for i, src := range srcs {
		d := data[i]
		s := Series{Label: src.Name(), Data: d, Color: single}
		if overlay {
			s.Color = st.SeriesColor(i)
		}
		if pr != nil {
			s.Points = pr.project(b, [3][]float64{d[0], d[1], d[2]})
		} else {
			s.Points = xys(d[0], d[1])
		}
		var err error
		switch ch.Kind {
		case Line2D, Line3D:
			err = F.addLine(s, st.lineWidth())
		default:
			err = F.addMarker(s)
		}
		if err != nil {
			return nil, &SeriesError{ch.Code, src.Name(), err}
		}
	}
	return F, nil
}

//finish renders the figure and, if the style says so, writes it to filename
//in the style's output directory.
func finish(F *Figure, st Style, filename string) error {
	if !st.Save {
		F.Render()
		return nil
	}
	return F.Save(filepath.Join(st.OutDir, filename))
}

//Single draws the chart ch for one source, as a line with the style's color and
//line width. If st.Save is true, the chart is written to <name>_<code>.png.
func Single(src Source, ch Chart, st Style) (*Figure, error) {
	if ch.OverlayOnly {
		return nil, fmt.Errorf("%s: %w", ch.Code, ErrOverlayOnly)
	}
	F, err := Build([]Source{src}, ch, st, false)
	if err != nil {
		return nil, err
	}
	return F, finish(F, st, ch.SingleFile(src.Name()))
}

//Overlay draws the chart ch for all the sources on the same axes, one series each,
//in the given order, labeled by name in a legend to the right of the axes. For the
//final-state charts, only the last sample of each source is drawn.
//If st.Save is true, the chart is written to combined_<code>.png.
//An empty srcs gives an empty figure without a legend.
func Overlay(srcs []Source, ch Chart, st Style) (*Figure, error) {
	F, err := Build(srcs, ch, st, true)
	if err != nil {
		return nil, err
	}
	return F, finish(F, st, ch.OverlayFile())
}
