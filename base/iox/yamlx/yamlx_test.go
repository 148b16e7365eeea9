// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package yamlx

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type body struct {
	Name  string  `yaml:"name"`
	Scale float32 `yaml:"scale"`
}

func TestReadBytes(t *testing.T) {
	var b body
	require.NoError(t, ReadBytes(&b, []byte("name: earth\nscale: 1.5\n")))
	assert.Equal(t, body{"earth", 1.5}, b)
	assert.Error(t, ReadBytes(&b, []byte("name: earth\nradius: 2\n")))
}

func TestWriteBytes(t *testing.T) {
	data, err := WriteBytes(body{"moon", 0.25})
	require.NoError(t, err)
	assert.Equal(t, "name: moon\nscale: 0.25\n", string(data))
}
