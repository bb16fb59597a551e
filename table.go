/*
 * table.go, part of trajplot.
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

import "gonum.org/v1/gonum/mat"

//Table is an immutable table of samples: one row per time step, one named column
//per quantity. Columns are only handed out as copies.
type Table struct {
	names []string
	index map[string]int
	d     *mat.Dense
}

//newTable returns a table with the given column names over d. The table takes d over.
func newTable(names []string, d *mat.Dense) *Table {
	T := &Table{names: names, index: make(map[string]int, len(names)), d: d}
	for i, v := range names {
		T.index[v] = i
	}
	return T
}

//Len returns the number of samples (rows).
func (T *Table) Len() int {
	r, _ := T.d.Dims()
	return r
}

//Names returns the column names, in file order.
func (T *Table) Names() []string {
	return append([]string(nil), T.names...)
}

//Has returns true if the table has the named column.
func (T *Table) Has(name string) bool {
	_, ok := T.index[name]
	return ok
}

//Column returns a copy of the named column, and whether it exists.
func (T *Table) Column(name string) ([]float64, bool) {
	j, ok := T.index[name]
	if !ok {
		return nil, false
	}
	return mat.Col(nil, j, T.d), true
}

//At returns the value of the named column in row i. It panics if i is out of range.
func (T *Table) At(i int, name string) (float64, bool) {
	j, ok := T.index[name]
	if !ok {
		return 0, false
	}
	return T.d.At(i, j), true
}

//Last returns the last value of the named column.
func (T *Table) Last(name string) (float64, bool) {
	return T.At(T.Len()-1, name)
}

//divide divides the named column by s. Only used while loading.
func (T *Table) divide(name string, s float64) {
	j := T.index[name]
	T.d.Apply(func(_, c int, v float64) float64 {
		if c == j {
			return v / s
		}
		return v
	}, T.d)
}

//Clone returns a deep copy of the table.
func (T *Table) Clone() *Table {
	return newTable(T.Names(), mat.DenseCopyOf(T.d))
}

//Equal returns true if both tables have the same columns, in the same order,
//with exactly the same values.
func (T *Table) Equal(o *Table) bool {
	if len(T.names) != len(o.names) {
		return false
	}
	for i, v := range T.names {
		if o.names[i] != v {
			return false
		}
	}
	return mat.Equal(T.d, o.d)
}
