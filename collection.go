/*
 * collection.go, part of trajplot.
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
	"image/color"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/yaulin/trajplot/chart"
)

//Ext is the extension of the trajectory files picked up from a directory.
//The comparison is case-sensitive.
const Ext = ".CSV"

//Collection is the set of all trajectories found in one directory, indexed by
//record name, plus the display settings for the charts that overlay them.
//The set of records can't change after the collection is built.
type Collection struct {
	dir     string
	names   []string //sorted file order
	records map[string]*Record
	style   chart.Style
}

//Scan lists the trajectory files directly in dir: regular entries whose extension
//is exactly Ext, with a non-empty name before it. The names are returned sorted.
//The error, if any, is an *Error of kind DirectoryError.
func Scan(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, newError(DirectoryError, dir, "unable to list directory", err, "Scan")
	}
	files := make([]string, 0, len(entries))
	for _, v := range entries {
		//a bare ".CSV" has no stem, so it is a dotfile, not a trajectory
		if v.IsDir() || filepath.Ext(v.Name()) != Ext || strings.TrimSuffix(v.Name(), Ext) == "" {
			continue
		}
		files = append(files, v.Name())
	}
	sort.Strings(files)
	return files, nil
}

//Build loads the given files, relative to dir, in the given order, into a new
//collection. Any file that fails to load makes the whole build fail, with the
//error of the first such file. Two files giving the same record name are an error
//of kind DuplicateNameError.
func Build(dir string, files []string) (*Collection, error) {
	C := &Collection{
		dir:     dir,
		names:   make([]string, 0, len(files)),
		records: make(map[string]*Record, len(files)),
		style:   chart.DefaultStyle(),
	}
	from := make(map[string]string, len(files))
	for _, f := range files {
		path := filepath.Join(dir, f)
		name := RecordName(path)
		if prev, ok := from[name]; ok {
			return nil, newError(DuplicateNameError, path, fmt.Sprintf("record name %q already given by %s", name, prev), nil, "Build")
		}
		R, err := Load(path)
		if err != nil {
			return nil, errDecorate(err, "Build")
		}
		from[name] = path
		C.names = append(C.names, name)
		C.records[name] = R
	}
	return C, nil
}

//NewCollection scans dir and loads every trajectory file in it, in sorted order.
//A directory without trajectory files gives an empty, valid, collection.
func NewCollection(dir string) (*Collection, error) {
	files, err := Scan(dir)
	if err != nil {
		return nil, errDecorate(err, "NewCollection")
	}
	C, err := Build(dir, files)
	if err != nil {
		return nil, errDecorate(err, "NewCollection")
	}
	return C, nil
}

//Dir returns the directory the collection was built from.
func (C *Collection) Dir() string { return C.dir }

//Len returns the number of records.
func (C *Collection) Len() int { return len(C.names) }

//Names returns the record names, in the order of their files.
func (C *Collection) Names() []string {
	return append([]string(nil), C.names...)
}

//Record returns the named record, and whether it exists.
func (C *Collection) Record(name string) (*Record, bool) {
	R, ok := C.records[name]
	return R, ok
}

//Records returns all the records, in the order of their files.
func (C *Collection) Records() []*Record {
	ret := make([]*Record, 0, len(C.names))
	for _, v := range C.names {
		ret = append(ret, C.records[v])
	}
	return ret
}

func (C *Collection) sources() []chart.Source {
	ret := make([]chart.Source, 0, len(C.names))
	for _, v := range C.names {
		ret = append(ret, C.records[v])
	}
	return ret
}

//Style returns a copy of the display settings for the combined charts.
//They are independent from the settings of each record.
func (C *Collection) Style() chart.Style {
	st := C.style
	st.Palette = append([]color.Color(nil), C.style.Palette...)
	return st
}

//SetStyle replaces the display settings for the combined charts.
func (C *Collection) SetStyle(st chart.Style) {
	st.Palette = append([]color.Color(nil), st.Palette...)
	C.style = st
}

//SetLineWidth sets the line width of the combined charts, in points.
func (C *Collection) SetLineWidth(w float64) { C.style.LineWidth = w }

//SetFigSize sets the size of the combined charts, in inches.
func (C *Collection) SetFigSize(w, h float64) {
	C.style.Width = w
	C.style.Height = h
}

//SetDPI sets the resolution of the combined charts.
func (C *Collection) SetDPI(dpi int) { C.style.DPI = dpi }

//SetOutDir sets the directory where combined charts are written.
func (C *Collection) SetOutDir(dir string) { C.style.OutDir = dir }

//SetPalette sets the colors cycled through by the series of the combined charts.
//An empty list restores the default palette.
func (C *Collection) SetPalette(names []string) error {
	p, err := chart.ParsePalette(names)
	if err != nil {
		return err
	}
	C.style.Palette = p
	return nil
}
