/*
 * open.go, part of trajplot.
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
	"bufio"
	"bytes"
	"compress/gzip"
	"io"
	"os"

	"github.com/klauspost/compress/zstd"
)

var (
	zstdMagic = []byte{0x28, 0xb5, 0x2f, 0xfd}
	gzipMagic = []byte{0x1f, 0x8b}
)

//source is an open source file, decompressed if needed.
type source struct {
	io.Reader
	closers []func() error
}

func (s *source) Close() error {
	var err error
	for i := len(s.closers) - 1; i >= 0; i-- {
		if e := s.closers[i](); e != nil && err == nil {
			err = e
		}
	}
	return err
}

//openSource opens the named file. Files that start with a zstd or gzip
//magic number are decompressed transparently, anything else is read as is.
func openSource(name string) (*source, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	S := &source{closers: []func() error{f.Close}}
	buf := bufio.NewReader(f)
	head, _ := buf.Peek(len(zstdMagic)) //a short file just can't be compressed
	switch {
	case bytes.HasPrefix(head, zstdMagic):
		z, err := zstd.NewReader(buf)
		if err != nil {
			S.Close()
			return nil, err
		}
		S.closers = append(S.closers, func() error { z.Close(); return nil })
		S.Reader = z
	case bytes.HasPrefix(head, gzipMagic):
		g, err := gzip.NewReader(buf)
		if err != nil {
			S.Close()
			return nil, err
		}
		S.closers = append(S.closers, g.Close)
		S.Reader = g
	default:
		S.Reader = buf
	}
	return S, nil
}
