// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLog(t *testing.T) {
	assert.NoError(t, Log(nil))
	err := New("boom")
	assert.Same(t, err, Log(err))
	assert.Equal(t, 3, Log1(3, nil))
	assert.Equal(t, 3, Log1(3, err))
}

func TestMust(t *testing.T) {
	assert.NotPanics(t, func() { Must(nil) })
	assert.Panics(t, func() { Must(New("boom")) })
	assert.Equal(t, "x", Must1("x", nil))
	assert.Panics(t, func() { Must1("x", New("boom")) })
}

func TestIs(t *testing.T) {
	base := New("base")
	wrapped := fmt.Errorf("context: %w", base)
	assert.True(t, Is(wrapped, base))
	assert.True(t, Is(Join(New("other"), wrapped), base))
}
