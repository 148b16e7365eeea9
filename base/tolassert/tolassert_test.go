// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tolassert

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEqualTol(t *testing.T) {
	assert.True(t, EqualTol(t, float32(1), 1.00005, 0.0001))
	assert.True(t, Equal(t, 3.14159, 3.1416))

	rec := &recorder{}
	assert.False(t, EqualTol(rec, 1.0, 1.1, 0.01))
	assert.Equal(t, 1, rec.failures)
}

type recorder struct {
	failures int
}

func (r *recorder) Errorf(format string, args ...any) {
	r.failures++
}
