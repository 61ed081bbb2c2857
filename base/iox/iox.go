// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package iox provides wrapper functions for reading and writing any
// object through pluggable encoders and decoders, so that the
// format-specific subpackages (jsonx, tomlx, yamlx) only supply the
// codec and share all the file handling.
package iox

import (
	"bufio"
	"bytes"
	"io"
	"os"
)

// Decoder is an interface for standard decoder types.
type Decoder interface {
	// Decode decodes from the stream into the given object.
	Decode(v any) error
}

// DecoderFunc is a function that creates a new [Decoder] for the
// given reader.
type DecoderFunc func(r io.Reader) Decoder

// NewDecoderFunc returns a [DecoderFunc] for the given decoder type.
func NewDecoderFunc[T Decoder](f func(r io.Reader) T) DecoderFunc {
	return func(r io.Reader) Decoder { return f(r) }
}

// Open reads the given object from the given file, using the given
// [DecoderFunc].
func Open(v any, filename string, f DecoderFunc) error {
	fp, err := os.Open(filename)
	if err != nil {
		return err
	}
	defer fp.Close()
	return Read(v, bufio.NewReader(fp), f)
}

// Read reads the given object from the given reader, using the given
// [DecoderFunc].
func Read(v any, reader io.Reader, f DecoderFunc) error {
	d := f(reader)
	return d.Decode(v)
}

// ReadBytes reads the given object from the given bytes, using the given
// [DecoderFunc].
func ReadBytes(v any, data []byte, f DecoderFunc) error {
	return Read(v, bytes.NewReader(data), f)
}
