// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package yamlx reads and writes YAML with strict field checking.
package yamlx

import (
	"io"

	"cogentcore.org/orrery/base/iox"
	"gopkg.in/yaml.v3"
)

// NewDecoder returns a new [iox.Decoder] that rejects unknown fields.
func NewDecoder(r io.Reader) iox.Decoder {
	d := yaml.NewDecoder(r)
	d.KnownFields(true)
	return d
}

// Open reads the given object from the given filename using YAML encoding
func Open(v any, filename string) error {
	return iox.Open(v, filename, NewDecoder)
}

// Read reads the given object from the given reader using YAML encoding
func Read(v any, reader io.Reader) error {
	return iox.Read(v, reader, NewDecoder)
}

// ReadBytes reads the given object from the given bytes using YAML encoding
func ReadBytes(v any, data []byte) error {
	return iox.ReadBytes(v, data, NewDecoder)
}

type encoder struct {
	*yaml.Encoder
}

// Encode writes v and flushes the document.
func (e encoder) Encode(v any) error {
	if err := e.Encoder.Encode(v); err != nil {
		return err
	}
	return e.Encoder.Close()
}

// NewEncoder returns a new [iox.Encoder] with two-space indentation.
func NewEncoder(w io.Writer) iox.Encoder {
	e := yaml.NewEncoder(w)
	e.SetIndent(2)
	return encoder{e}
}

// Write writes the given object using YAML encoding
func Write(v any, writer io.Writer) error {
	return iox.Write(v, writer, NewEncoder)
}

// WriteBytes writes the given object, returning bytes of the encoding,
// using YAML encoding
func WriteBytes(v any) ([]byte, error) {
	return iox.WriteBytes(v, NewEncoder)
}
