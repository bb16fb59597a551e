/*
 * summary.go, part of trajplot.
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
	"fmt"
	"io"
	"text/tabwriter"

	c "github.com/yaulin/trajplot/columns"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

//Summary contains a few figures describing a whole trajectory.
type Summary struct {
	Name            string
	Samples         int
	Duration        float64 //s
	MaxAltitude     float64 //km
	MaxVelocity     float64 //m/s
	MeanVelocity    float64 //m/s
	MaxMach         float64
	FinalDownrange  float64 //km
	FinalCrossrange float64 //km
}

//Summary computes the summary of the record.
func (R *Record) Summary() Summary {
	col := func(name string) []float64 {
		v, _ := R.data.Column(name) //required columns are always there
		return v
	}
	t := col(c.Time)
	vel := col(c.Velocity)
	last := func(name string) float64 {
		v, _ := R.data.Last(name)
		return v
	}
	return Summary{
		Name:            R.name,
		Samples:         R.Len(),
		Duration:        t[len(t)-1] - t[0],
		MaxAltitude:     floats.Max(col(c.Altitude)),
		MaxVelocity:     floats.Max(vel),
		MeanVelocity:    stat.Mean(vel, nil),
		MaxMach:         floats.Max(col(c.Mach)),
		FinalDownrange:  last(c.Downrange),
		FinalCrossrange: last(c.Crossrange),
	}
}

//WriteSummaries writes the summaries of all the records of the collection to w,
//as an aligned table.
func (C *Collection) WriteSummaries(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "name\tsamples\tduration, s\tmax alt, km\tmax vel, m/s\tmean vel, m/s\tmax Mach\tdownrange, km\tcrossrange, km")
	for _, R := range C.Records() {
		s := R.Summary()
		fmt.Fprintf(tw, "%s\t%d\t%.2f\t%.3f\t%.1f\t%.1f\t%.2f\t%.3f\t%.3f\n", s.Name, s.Samples, s.Duration,
			s.MaxAltitude, s.MaxVelocity, s.MeanVelocity, s.MaxMach, s.FinalDownrange, s.FinalCrossrange)
	}
	return tw.Flush()
}
