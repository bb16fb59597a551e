/*
 * catalog.go, part of trajplot.
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

	c "github.com/yaulin/trajplot/columns"
)

//Kind is the drawing mode of a chart.
type Kind int

const (
	Line2D     Kind = iota //one field against another, as a line
	Line3D                 //three fields, as a projected 3D line
	Final2D                //last sample of two fields, one marker per series
	Final3D                //last sample of three fields, projected
)

func (k Kind) String() string {
	switch k {
	case Line2D:
		return "line"
	case Line3D:
		return "line3d"
	case Final2D:
		return "final"
	case Final3D:
		return "final3d"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

//Dims returns the number of fields a chart of this kind plots.
func (k Kind) Dims() int {
	if k == Line3D || k == Final3D {
		return 3
	}
	return 2
}

//Chart is the static description of one named chart.
type Chart struct {
	Code        string   //short name, used in output file names
	Kind        Kind
	Fields      []string //X, Y and, for 3D kinds, Z
	Labels      []string //axis labels, same order as Fields
	OverlayOnly bool     //no single-record form
}

//SingleFile returns the PNG file name for the chart of a single record.
func (ch Chart) SingleFile(record string) string {
	return record + "_" + ch.Code + ".png"
}

//OverlayFile returns the PNG file name for the chart of a whole collection.
func (ch Chart) OverlayFile() string {
	return "combined_" + ch.Code + ".png"
}

func (ch Chart) String() string {
	return ch.Code
}

func timeChart(code, field, label string) Chart {
	return Chart{Code: code, Kind: Line2D, Fields: []string{c.Time, field}, Labels: []string{"Time, s", label}}
}

var catalog = []Chart{
	timeChart("xt", c.XPosition, "X Position, km"),
	timeChart("yt", c.YPosition, "Y Position, km"),
	timeChart("zt", c.ZPosition, "Z Position, km"),
	timeChart("grt", c.GroundRange, "Ground Range, km"),
	timeChart("alt", c.Altitude, "Altitude, km"),
	timeChart("drt", c.Downrange, "Downrange, km"),
	timeChart("crt", c.Crossrange, "Crossrange, km"),
	timeChart("vt", c.Velocity, "Velocity, m/s"),
	timeChart("at", c.Acceleration, "Acceleration, m/s²"),
	timeChart("axt", c.AccelerationX, "Acceleration X, m/s²"),
	timeChart("ayt", c.AccelerationY, "Acceleration Y, m/s²"),
	timeChart("azt", c.AccelerationZ, "Acceleration Z, m/s²"),
	timeChart("pat", c.Pitch, "Pitch Angle, deg"),
	timeChart("hat", c.Heading, "Heading Angle, deg"),
	timeChart("mt", c.Mach, "Mach"),
	{Code: "am", Kind: Line2D, Fields: []string{c.Mach, c.Altitude}, Labels: []string{"Mach", "Altitude, km"}},
	{Code: "av", Kind: Line2D, Fields: []string{c.Velocity, c.Altitude}, Labels: []string{"Velocity, m/s", "Altitude, km"}},
	{Code: "agr", Kind: Line2D, Fields: []string{c.GroundRange, c.Altitude}, Labels: []string{"Ground Range, km", "Altitude, km"}, OverlayOnly: true},
	{Code: "xyz", Kind: Line3D, Fields: []string{c.XPosition, c.YPosition, c.ZPosition}, Labels: []string{"X, km", "Y, km", "Z, km"}},
	{Code: "3D", Kind: Line3D, Fields: []string{c.Downrange, c.Crossrange, c.Altitude}, Labels: []string{"Downrange, km", "Crossrange, km", "Altitude, km"}},
	{Code: "end_2D", Kind: Final2D, Fields: []string{c.Downrange, c.Crossrange}, Labels: []string{"Downrange, km", "Crossrange, km"}, OverlayOnly: true},
	{Code: "end_3D", Kind: Final3D, Fields: []string{c.XPosition, c.YPosition, c.ZPosition}, Labels: []string{"X Position, km", "Y Position, km", "Z Position, km"}, OverlayOnly: true},
}

var byCode map[string]int

func init() {
	byCode = make(map[string]int, len(catalog))
	for i, v := range catalog {
		if _, ok := byCode[v.Code]; ok {
			panic("chart: duplicated chart code " + v.Code)
		}
		if len(v.Fields) != v.Kind.Dims() || len(v.Labels) != len(v.Fields) {
			panic("chart: ill-formed catalog entry " + v.Code)
		}
		byCode[v.Code] = i
	}
}

func clone(ch Chart) Chart {
	ch.Fields = append([]string(nil), ch.Fields...)
	ch.Labels = append([]string(nil), ch.Labels...)
	return ch
}

//Lookup returns the chart with the given code, and whether it exists.
func Lookup(code string) (Chart, bool) {
	i, ok := byCode[code]
	if !ok {
		return Chart{}, false
	}
	return clone(catalog[i]), true
}

//Catalog returns all the charts, in the order they are usually drawn.
func Catalog() []Chart {
	ret := make([]Chart, 0, len(catalog))
	for _, v := range catalog {
		ret = append(ret, clone(v))
	}
	return ret
}

//Codes returns the codes of all the charts in catalog order.
//If single is true, only charts with a single-record form are included.
func Codes(single bool) []string {
	ret := make([]string, 0, len(catalog))
	for _, v := range catalog {
		if single && v.OverlayOnly {
			continue
		}
		ret = append(ret, v.Code)
	}
	return ret
}
