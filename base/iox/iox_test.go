// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package iox

import (
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type item struct {
	Name  string
	Count int
}

func TestOpenMissing(t *testing.T) {
	var it item
	err := Open(&it, filepath.Join(t.TempDir(), "missing.json"), NewDecoderFunc(json.NewDecoder))
	assert.Error(t, err)
}

func TestBytesRoundTrip(t *testing.T) {
	b, err := WriteBytes(item{"moon", 3}, NewEncoderFunc(json.NewEncoder))
	require.NoError(t, err)
	var it item
	require.NoError(t, ReadBytes(&it, b, NewDecoderFunc(json.NewDecoder)))
	assert.Equal(t, item{"moon", 3}, it)
}
