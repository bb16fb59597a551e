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

package trajplot

import (
	"errors"
	"fmt"
	"strings"
)

//Kind classifies the errors produced while building records and collections.
type Kind int

const (
	DirectoryError     Kind = iota + 1 //the collection directory can't be listed
	LoadError                          //a source file can't be opened or parsed
	SchemaError                        //a source file lacks required columns
	DuplicateNameError                 //two source files give the same record name
)

func (k Kind) String() string {
	switch k {
	case DirectoryError:
		return "directory error"
	case LoadError:
		return "load error"
	case SchemaError:
		return "schema error"
	case DuplicateNameError:
		return "duplicate name"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

//Error is the error type for everything that goes wrong while building records
//and collections. All such errors are critical: the record or collection is not built.
type Error struct {
	kind     Kind
	message  string
	filename string   //the offending file or directory
	deco     []string //the chain of callers, innermost first
	err      error    //underlying cause, if any
}

func newError(kind Kind, filename, message string, cause error, caller string) *Error {
	return &Error{kind: kind, message: message, filename: filename, deco: []string{caller}, err: cause}
}

func (err *Error) Error() string {
	msg := fmt.Sprintf("trajplot: %s in %s: %s", err.kind, err.filename, err.message)
	if err.err != nil {
		msg += ": " + err.err.Error()
	}
	return msg
}

//Decorate adds the name of a caller to the error and returns the current decoration.
//An empty string just returns the decoration.
func (err *Error) Decorate(deco string) []string {
	if deco != "" {
		err.deco = append(err.deco, deco)
	}
	return err.deco
}

//Trace returns the chain of calls the error went through, outermost first.
func (err *Error) Trace() string {
	t := make([]string, len(err.deco))
	for i, v := range err.deco {
		t[len(t)-1-i] = v
	}
	return strings.Join(t, " > ")
}

//Kind returns the class of the error.
func (err *Error) Kind() Kind { return err.kind }

//FileName returns the file or directory the error is about.
func (err *Error) FileName() string { return err.filename }

//Critical returns true. Errors of this type always abort construction.
func (err *Error) Critical() bool { return true }

//Unwrap returns the underlying cause, if any.
func (err *Error) Unwrap() error { return err.err }

//IsKind returns true if err is, or wraps, an *Error of kind k.
func IsKind(err error, k Kind) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.kind == k
	}
	return false
}

//errDecorate adds caller to err if err is an *Error, and returns it.
func errDecorate(err error, caller string) error {
	var e *Error
	if errors.As(err, &e) {
		e.Decorate(caller)
	}
	return err
}
