// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package jsonx reads and writes objects as JSON.
package jsonx

import (
	"encoding/json"
	"io"

	"cogentcore.org/lace/base/iox"
)

// Open reads the given object from the given JSON file.
func Open(v any, filename string) error {
	return iox.Open(v, filename, iox.NewDecoderFunc(json.NewDecoder))
}

// Read reads the given object from the given reader as JSON.
func Read(v any, reader io.Reader) error {
	return iox.Read(v, reader, iox.NewDecoderFunc(json.NewDecoder))
}

// ReadBytes reads the given object from the given JSON bytes.
func ReadBytes(v any, data []byte) error {
	return iox.ReadBytes(v, data, iox.NewDecoderFunc(json.NewDecoder))
}

// Save writes the given object to the given file as JSON.
func Save(v any, filename string) error {
	return iox.Save(v, filename, iox.NewEncoderFunc(json.NewEncoder))
}

// SaveIndent writes the given object to the given file as
// tab-indented JSON.
func SaveIndent(v any, filename string) error {
	return iox.Save(v, filename, iox.NewEncoderFunc(NewIndentEncoder))
}

// Write writes the given object to the given writer as JSON.
func Write(v any, writer io.Writer) error {
	return iox.Write(v, writer, iox.NewEncoderFunc(json.NewEncoder))
}

// WriteBytes writes the given object to JSON bytes.
func WriteBytes(v any) ([]byte, error) {
	return iox.WriteBytes(v, iox.NewEncoderFunc(json.NewEncoder))
}

// NewIndentEncoder returns a new [json.Encoder] with tab indentation.
func NewIndentEncoder(w io.Writer) *json.Encoder {
	e := json.NewEncoder(w)
	e.SetIndent("", "\t")
	return e
}
