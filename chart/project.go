/*
 * project.go, part of trajplot.
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
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/plot/plotter"
)

//Default viewing angles for 3D charts, in degrees.
const (
	Azimuth   = -60.0
	Elevation = 30.0
)

//bounds keeps the data range of each of the 3 axes.
type bounds struct {
	min, max [3]float64
}

func newBounds() *bounds {
	b := new(bounds)
	for i := range b.min {
		b.min[i] = math.Inf(1)
		b.max[i] = math.Inf(-1)
	}
	return b
}

//add extends the bounds to contain the given columns.
func (b *bounds) add(cols [3][]float64) {
	for i, v := range cols {
		if len(v) == 0 {
			continue
		}
		b.min[i] = math.Min(b.min[i], floats.Min(v))
		b.max[i] = math.Max(b.max[i], floats.Max(v))
	}
}

func (b *bounds) empty() bool {
	return math.IsInf(b.min[0], 1)
}

//normalize maps v from axis i into [-0.5, 0.5]. A flat axis maps to 0.
func (b *bounds) normalize(i int, v float64) float64 {
	d := b.max[i] - b.min[i]
	if d == 0 {
		return 0
	}
	return (v-b.min[i])/d - 0.5
}

//projector maps points in the unit cube centered at the origin to the
//plane of the screen, for a camera at the given azimuth and elevation.
type projector struct {
	view *mat.Dense //3x2, columns are the screen's right and up vectors
}

func newProjector(azimuth, elevation float64) *projector {
	a := azimuth * math.Pi / 180
	e := elevation * math.Pi / 180
	view := mat.NewDense(3, 2, []float64{
		-math.Sin(a), -math.Sin(e) * math.Cos(a),
		math.Cos(a), -math.Sin(e) * math.Sin(a),
		0, math.Cos(e),
	})
	return &projector{view: view}
}

//project normalizes the 3 columns with b and returns the projected points.
func (p *projector) project(b *bounds, cols [3][]float64) plotter.XYs {
	n := len(cols[0])
	if n == 0 {
		return plotter.XYs{}
	}
	pts := mat.NewDense(n, 3, nil)
	for j, col := range cols {
		for i, v := range col {
			pts.Set(i, j, b.normalize(j, v))
		}
	}
	var screen mat.Dense
	screen.Mul(pts, p.view)
	ret := make(plotter.XYs, n)
	for i := range ret {
		ret[i].X = screen.At(i, 0)
		ret[i].Y = screen.At(i, 1)
	}
	return ret
}

//axes returns the projected end points of the three axes of the cube,
//all starting at the corner where every coordinate is minimal.
func (p *projector) axes() [3]plotter.XYs {
	var ret [3]plotter.XYs
	origin := mat.NewDense(1, 3, []float64{-0.5, -0.5, -0.5})
	for i := range ret {
		end := mat.DenseCopyOf(origin)
		end.Set(0, i, 0.5)
		var o, e mat.Dense
		o.Mul(origin, p.view)
		e.Mul(end, p.view)
		ret[i] = plotter.XYs{{X: o.At(0, 0), Y: o.At(0, 1)}, {X: e.At(0, 0), Y: e.At(0, 1)}}
	}
	return ret
}
