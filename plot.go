/*
 * plot.go, part of trajplot.
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

package trajplot

import (
	"github.com/yaulin/trajplot/chart"
)

//Figure draws the chart with the given code for the record alone, using the
//record's style, and returns it. The chart is written to <name>_<code>.png if
//saving is enabled for the record.
func (R *Record) Figure(code string) (*chart.Figure, error) {
	ch, err := chart.Find(code)
	if err != nil {
		return nil, err
	}
	return chart.Single(R, ch, R.style)
}

//Plot is like Figure, but only returns the error.
func (R *Record) Plot(code string) error {
	_, err := R.Figure(code)
	return err
}

//PlotAll draws every chart that has a single-record form, in catalog order.
//It stops at the first failing chart.
func (R *Record) PlotAll() error {
	for _, v := range chart.Codes(true) {
		if err := R.Plot(v); err != nil {
			return err
		}
	}
	return nil
}

//Combined draws the chart with the given code overlaying all the records of the
//collection, in name order, with the collection's style, and returns it. If save
//is true the chart is written to combined_<code>.png.
func (C *Collection) Combined(code string, save bool) (*chart.Figure, error) {
	ch, err := chart.Find(code)
	if err != nil {
		return nil, err
	}
	st := C.style
	st.Save = save
	return chart.Overlay(C.sources(), ch, st)
}

//PlotCombined is like Combined, but only returns the error.
func (C *Collection) PlotCombined(code string, save bool) error {
	_, err := C.Combined(code, save)
	return err
}

//PlotAllCombined draws every chart of the catalog for the whole collection.
//It stops at the first failing chart.
func (C *Collection) PlotAllCombined(save bool) error {
	for _, v := range chart.Codes(false) {
		if err := C.PlotCombined(v, save); err != nil {
			return err
		}
	}
	return nil
}

//PlotAllSeparate enables or disables saving on every record, according to save,
//and then draws all the single-record charts of each record.
func (C *Collection) PlotAllSeparate(save bool) error {
	for _, R := range C.Records() {
		if save {
			R.EnableSaving()
		} else {
			R.DisableSaving()
		}
		if err := R.PlotAll(); err != nil {
			return err
		}
	}
	return nil
}
