// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package tomlx reads and writes objects as TOML.
package tomlx

import (
	"io"

	"cogentcore.org/lace/base/iox"
	"github.com/pelletier/go-toml/v2"
)

// Open reads the given object from the given TOML file.
func Open(v any, filename string) error {
	return iox.Open(v, filename, iox.NewDecoderFunc(toml.NewDecoder))
}

// Read reads the given object from the given reader as TOML.
func Read(v any, reader io.Reader) error {
	return iox.Read(v, reader, iox.NewDecoderFunc(toml.NewDecoder))
}

// ReadBytes reads the given object from the given TOML bytes.
func ReadBytes(v any, data []byte) error {
	return iox.ReadBytes(v, data, iox.NewDecoderFunc(toml.NewDecoder))
}

// Save writes the given object to the given file as TOML.
func Save(v any, filename string) error {
	return iox.Save(v, filename, iox.NewEncoderFunc(toml.NewEncoder))
}

// Write writes the given object to the given writer as TOML.
func Write(v any, writer io.Writer) error {
	return iox.Write(v, writer, iox.NewEncoderFunc(toml.NewEncoder))
}

// WriteBytes writes the given object to TOML bytes.
func WriteBytes(v any) ([]byte, error) {
	return iox.WriteBytes(v, iox.NewEncoderFunc(toml.NewEncoder))
}
