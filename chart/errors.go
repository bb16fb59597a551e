/*
 * errors.go, part of trajplot.
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
	"errors"
	"fmt"
)

//ErrOverlayOnly is returned when a single-record chart is requested for
//a chart that only exists for whole collections.
var ErrOverlayOnly = errors.New("chart has no single-record form")

//FieldError is returned by a render call when a record lacks one of
//the columns the chart needs. Nothing is drawn or written in that case.
type FieldError struct {
	Chart  string
	Record string
	Field  string
}

func (err *FieldError) Error() string {
	return fmt.Sprintf("chart %s: record %s has no column %q", err.Chart, err.Record, err.Field)
}

//SeriesError is returned when a record's data for a chart can't be drawn,
//for instance because it has no samples or contains NaN values.
type SeriesError struct {
	Chart  string
	Record string
	Err    error
}

func (err *SeriesError) Error() string {
	return fmt.Sprintf("chart %s: record %s: %s", err.Chart, err.Record, err.Err)
}

func (err *SeriesError) Unwrap() error { return err.Err }

//ErrUnknownChart is returned when a chart code is not in the catalog.
var ErrUnknownChart = errors.New("unknown chart")

//Find is like Lookup, but returns an error wrapping ErrUnknownChart
//if there is no chart with the given code.
func Find(code string) (Chart, error) {
	ch, ok := Lookup(code)
	if !ok {
		return Chart{}, fmt.Errorf("%w %q", ErrUnknownChart, code)
	}
	return ch, nil
}
