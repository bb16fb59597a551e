/*
 * columns.go, part of trajplot.
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

//Package columns holds the canonical schema of a trajectory table: the display names
//of every column, and how each one is obtained from the header written by the simulator.
package columns

//Canonical column names.
const (
	Time          = "Time"
	XPosition     = "X Position"
	YPosition     = "Y Position"
	ZPosition     = "Z Position"
	GroundRange   = "Ground Range"
	Altitude      = "Altitude"
	Downrange     = "Downrange"
	Crossrange    = "Crossrange"
	Velocity      = "Velocity"
	Acceleration  = "Acceleration"
	AccelerationX = "Acceleration X"
	AccelerationY = "Acceleration Y"
	AccelerationZ = "Acceleration Z"
	Pitch         = "Pitch Angle"
	Heading       = "Heading Angle"
	Mach          = "Mach"
)

//MetersPerKm divides the distance columns written in meters.
const MetersPerKm = 1000.0

//Column describes one required column: its name in the simulator output,
//its canonical name, and the number its values are divided by on load.
type Column struct {
	Native    string
	Canonical string
	Divisor   float64
}

//Scaled returns true if the column is rescaled on load.
func (c Column) Scaled() bool {
	return c.Divisor != 1
}

var required = []Column{
	{"TTIME_S", Time, 1},
	{"TRXI_M", XPosition, MetersPerKm},
	{"TRYI_M", YPosition, MetersPerKm},
	{"TRZI_M", ZPosition, MetersPerKm},
	{"TGRNKM_KM", GroundRange, 1},
	{"TALTKM_KM", Altitude, 1},
	{"TDRNGE_M", Downrange, MetersPerKm},
	{"TCRNGE_M", Crossrange, MetersPerKm},
	{"TVRMAG_M/S", Velocity, 1},
	{"TAIMAG_M/S2", Acceleration, 1},
	{"TABXB_M/S2", AccelerationX, 1},
	{"TABYB_M/S2", AccelerationY, 1},
	{"TABZB_M/S2", AccelerationZ, 1},
	{"TPITCH_DEG", Pitch, 1},
	{"THEADG_DEG", Heading, 1},
	{"TAMACH", Mach, 1},
}

var byNative map[string]Column

func init() {
	byNative = make(map[string]Column, len(required))
	for _, c := range required {
		byNative[c.Native] = c
	}
}

//Required returns the required columns, in canonical order.
//The returned slice is a copy.
func Required() []Column {
	ret := make([]Column, len(required))
	copy(ret, required)
	return ret
}

//Native returns the required column with the given simulator name, and whether it exists.
func Native(name string) (Column, bool) {
	c, ok := byNative[name]
	return c, ok
}

//NativeNames returns the simulator names of all required columns.
func NativeNames() []string {
	ret := make([]string, 0, len(required))
	for _, c := range required {
		ret = append(ret, c.Native)
	}
	return ret
}
