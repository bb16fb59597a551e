/*
 * record.go, part of trajplot.
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
	"encoding/csv"
	"errors"
	"fmt"
	"image/color"
	"io"
	"math"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/yaulin/trajplot/chart"
	"github.com/yaulin/trajplot/columns"
	"gonum.org/v1/gonum/mat"
)

//Record is one trajectory: the table read from one simulator output file, with
//its columns renamed to the canonical schema and distances converted to km, plus
//the display settings used for its own charts.
type Record struct {
	name  string
	path  string
	data  *Table
	style chart.Style
}

//RecordName returns the name of the record read from the given file:
//the base name of the file without its extension.
func RecordName(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

//Load reads the trajectory in the given file. The file must be comma-separated,
//with a header row containing at least all the columns in columns.Required, and
//may be zstd- or gzip-compressed. The returned error, if any, is an *Error of kind
//LoadError or SchemaError.
func Load(path string) (*Record, error) {
	name := RecordName(path)
	if name == "" {
		return nil, newError(LoadError, path, "can't derive a record name from the file name", nil, "Load")
	}
	src, err := openSource(path)
	if err != nil {
		return nil, newError(LoadError, path, "unable to open file", err, "Load")
	}
	defer src.Close()
	T, err := readTable(path, src)
	if err != nil {
		return nil, errDecorate(err, "Load")
	}
	return &Record{name: name, path: path, data: T, style: chart.DefaultStyle()}, nil
}

//readTable reads a whole table from r, renaming and rescaling the required columns.
//Columns not in the schema are kept under their own names, unscaled.
func readTable(path string, r io.Reader) (*Table, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, newError(LoadError, path, "empty file", nil, "readTable")
	}
	if err != nil {
		return nil, newError(LoadError, path, "can't read header", err, "readTable")
	}
	names := make([]string, len(header))
	present := make(map[string]bool, len(header))
	seen := make(map[string]bool, len(header))
	for i, h := range header {
		h = strings.TrimSpace(strings.TrimPrefix(h, "\ufeff"))
		present[h] = true
		if c, ok := columns.Native(h); ok {
			h = c.Canonical
		}
		if seen[h] {
			return nil, newError(SchemaError, path, fmt.Sprintf("column %q appears more than once", h), nil, "readTable")
		}
		seen[h] = true
		names[i] = h
	}
	var missing []string
	for _, c := range columns.Required() {
		if !present[c.Native] {
			missing = append(missing, c.Native)
		}
	}
	if len(missing) > 0 {
		return nil, newError(SchemaError, path, "missing columns: "+strings.Join(missing, ", "), nil, "readTable")
	}
	data := make([]float64, 0, 256*len(names))
	var rows int
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, newError(LoadError, path, "malformed row", err, "readTable")
		}
		for j, v := range rec {
			f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
			if err != nil {
				line, _ := cr.FieldPos(j)
				return nil, newError(LoadError, path, fmt.Sprintf("line %d, column %q: can't parse %q", line, names[j], v), nil, "readTable")
			}
			if math.IsNaN(f) || math.IsInf(f, 0) {
				line, _ := cr.FieldPos(j)
				return nil, newError(LoadError, path, fmt.Sprintf("line %d, column %q: non-finite value %q", line, names[j], v), nil, "readTable")
			}
			data = append(data, f)
		}
		rows++
	}
	if rows == 0 {
		return nil, newError(LoadError, path, "no samples after the header", nil, "readTable")
	}
	T := newTable(names, mat.NewDense(rows, len(names), data))
	for _, c := range columns.Required() {
		if c.Scaled() {
			T.divide(c.Canonical, c.Divisor)
		}
	}
	return T, nil
}

//Name returns the name of the record, used as key in collections and as legend label.
func (R *Record) Name() string { return R.name }

//Path returns the file the record was read from.
func (R *Record) Path() string { return R.path }

//Data returns the table of the record.
func (R *Record) Data() *Table { return R.data }

//Len returns the number of samples in the record.
func (R *Record) Len() int { return R.data.Len() }

//Column returns a copy of the named column. It implements chart.Source.
func (R *Record) Column(field string) ([]float64, bool) {
	return R.data.Column(field)
}

//Style returns a copy of the display settings of the record.
func (R *Record) Style() chart.Style {
	st := R.style
	st.Palette = append([]color.Color(nil), R.style.Palette...)
	return st
}

//SetStyle replaces the display settings of the record.
func (R *Record) SetStyle(st chart.Style) {
	st.Palette = append([]color.Color(nil), st.Palette...)
	R.style = st
}

//SetColor sets the line color, by name or as a #rrggbb string.
func (R *Record) SetColor(name string) error {
	c, err := chart.ParseColor(name)
	if err != nil {
		return err
	}
	R.style.Color = c
	return nil
}

//SetLineWidth sets the line width, in points.
func (R *Record) SetLineWidth(w float64) { R.style.LineWidth = w }

//SetFigSize sets the size of the figures, in inches.
func (R *Record) SetFigSize(w, h float64) {
	R.style.Width = w
	R.style.Height = h
}

//SetDPI sets the resolution of the PNG files.
func (R *Record) SetDPI(dpi int) { R.style.DPI = dpi }

//SetOutDir sets the directory where the PNG files are written.
func (R *Record) SetOutDir(dir string) { R.style.OutDir = dir }

//EnableSaving makes the following charts of the record be written to files.
func (R *Record) EnableSaving() { R.style.Save = true }

//DisableSaving stops writing the charts of the record to files.
func (R *Record) DisableSaving() { R.style.Save = false }
