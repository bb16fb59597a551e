/*
 * doc.go, part of trajplot.
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

/*
Package trajplot loads flight trajectories written by a 6-DOF simulator as CSV
tables, and draws a fixed catalog of charts from them, either for a single
trajectory or overlaying every trajectory found in a directory.

	**Capabilities**

	Reads simulator output files (plain, zstd- or gzip-compressed), checks that
	all the required columns are there, renames them to readable names and
	converts the distances written in meters to km.

	Builds a Collection from every *.CSV file in a directory, in sorted order.
	Any bad file makes the whole collection fail, with an *Error telling which
	file and what went wrong.

	Draws the charts in package chart (time histories, altitude against Mach and
	velocity, 3D paths and final-state scatters) to PNG files, or just renders them.

	Summarizes each trajectory (duration, maximum altitude and velocity...).

A typical use:

	C, err := trajplot.NewCollection("runs")
	if err != nil {
		//handle
	}
	C.SetOutDir("figs")
	err = C.PlotAllCombined(true) //figs/combined_xt.png, figs/combined_yt.png...

Records and collections keep their own display settings (chart.Style). Charts
never modify the loaded data.
*/
package trajplot
