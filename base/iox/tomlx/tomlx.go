// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package tomlx reads and writes TOML with strict field checking.
package tomlx

import (
	"io"

	"cogentcore.org/orrery/base/iox"
	"github.com/pelletier/go-toml/v2"
)

// NewDecoder returns a new [iox.Decoder] that rejects unknown fields.
func NewDecoder(r io.Reader) iox.Decoder {
	return toml.NewDecoder(r).DisallowUnknownFields()
}

// Open reads the given object from the given filename using TOML encoding
func Open(v any, filename string) error {
	return iox.Open(v, filename, NewDecoder)
}

// Read reads the given object from the given reader using TOML encoding
func Read(v any, reader io.Reader) error {
	return iox.Read(v, reader, NewDecoder)
}

// ReadBytes reads the given object from the given bytes using TOML encoding
func ReadBytes(v any, data []byte) error {
	return iox.ReadBytes(v, data, NewDecoder)
}

// NewEncoder returns a new [iox.Encoder]
func NewEncoder(w io.Writer) iox.Encoder {
	return toml.NewEncoder(w).SetIndentTables(true)
}

// Write writes the given object using TOML encoding
func Write(v any, writer io.Writer) error {
	return iox.Write(v, writer, NewEncoder)
}

// WriteBytes writes the given object, returning bytes of the encoding,
// using TOML encoding
func WriteBytes(v any) ([]byte, error) {
	return iox.WriteBytes(v, NewEncoder)
}
