// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package orbit

import (
	"errors"
	"testing"

	"cogentcore.org/orrery/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func solarConfig() *Config {
	return &Config{
		Name: "solar",
		Bodies: []Body{
			{Name: "sun", Scale: 5},
			{Name: "earth", Parent: "sun", OrbitRadius: 10},
			{Name: "moon", Parent: "earth", OrbitRadius: 2, Scale: 0.25},
		},
	}
}

func TestBuildCounts(t *testing.T) {
	cfg := solarConfig()
	h, err := Build(cfg)
	require.NoError(t, err)

	assert.Equal(t, 3, h.NumBodies())
	assert.Equal(t, 1+2*len(cfg.Bodies), h.Len())
	assert.Equal(t, []string{"sun", "earth", "moon"}, h.Names())
	assert.Equal(t, float32(1), h.FrameStep)

	nbody, npivot := 0, 0
	for i := 0; i < h.Len(); i++ {
		if h.Node(i).IsBody() {
			nbody++
		} else {
			npivot++
		}
	}
	assert.Equal(t, 3, nbody)
	assert.Equal(t, 4, npivot) // root plus one per body

	for _, nm := range h.Names() {
		bd, ok := h.Body(nm)
		require.True(t, ok)
		pv, ok := h.Pivot(nm)
		require.True(t, ok)
		assert.Equal(t, BodyKind, bd.Kind)
		assert.Equal(t, Pivot, pv.Kind)
		assert.Equal(t, nm+PivotSuffix, pv.Name)
		assert.Same(t, pv, h.Node(bd.Parent))
	}
	_, ok := h.Body("pluto")
	assert.False(t, ok)
}

func TestBuildLayout(t *testing.T) {
	h, err := Build(solarConfig())
	require.NoError(t, err)

	want := `root [Pivot]
  sun.orbit [Pivot]
    sun [Body] scale=5
    earth.orbit [Pivot] pos=(10, 0, 0)
      earth [Body] scale=1
      moon.orbit [Pivot] pos=(2, 0, 0)
        moon [Body] scale=0.25
`
	assert.Equal(t, want, h.String())

	earth, _ := h.Pivot("earth")
	sun, _ := h.Pivot("sun")
	moon, _ := h.Pivot("moon")
	assert.Same(t, sun, h.Node(earth.Parent))
	assert.Same(t, earth, h.Node(moon.Parent))
}

func TestBuildParentsListedLater(t *testing.T) {
	cfg := &Config{Bodies: []Body{
		{Name: "moon", Parent: "earth", OrbitRadius: 2},
		{Name: "earth", Parent: "sun", OrbitRadius: 10},
		{Name: "sun"},
	}}
	h, err := Build(cfg)
	require.NoError(t, err)
	assert.Equal(t, []string{"moon", "earth", "sun"}, h.Names())
	for i := 1; i < h.Len(); i++ {
		assert.Less(t, h.Node(i).Parent, i, "node %s", h.Node(i).Name)
	}
	pos, ok := h.WorldPos("moon")
	require.True(t, ok)
	assert.Equal(t, math32.Vec3(12, 0, 0), pos)
}

func TestBuildDeterministic(t *testing.T) {
	cfg := solarConfig()
	h1, err := Build(cfg)
	require.NoError(t, err)
	h2, err := Build(cfg)
	require.NoError(t, err)
	assert.Equal(t, h1.nodes, h2.nodes)
	assert.Equal(t, h1.bodies, h2.bodies)
	assert.Equal(t, solarConfig(), cfg, "Build must not modify its config")

	seen := map[*Node]bool{}
	for _, nm := range h1.Names() {
		bd, _ := h1.Body(nm)
		assert.False(t, seen[bd])
		seen[bd] = true
	}
}

func TestBuildDefaults(t *testing.T) {
	h, err := Build(&Config{Step: 0.5, RootRate: 0.01, Bodies: []Body{{Name: "cube", OrbitRadius: -2, SpinRate: 0.01, SpinAxis: &math32.Vector3{X: 1, Y: 1, Z: 1}}}})
	require.NoError(t, err)
	assert.Equal(t, float32(0.5), h.FrameStep)
	cube, _ := h.Body("cube")
	assert.Equal(t, math32.Vec3(1, 1, 1), cube.Pose.Scale)
	assert.Equal(t, math32.Vec3(0.01, 0.01, 0.01), cube.Rate)
	assert.Equal(t, math32.Vec3(0, 0.01, 0), h.Root().Rate)
	pos, _ := h.WorldPos("cube")
	assert.Equal(t, math32.Vec3(-2, 0, 0), pos)

	h, err = Build(&Config{Bodies: []Body{{Name: "sun", SpinRate: 0.005}}})
	require.NoError(t, err)
	sun, _ := h.Body("sun")
	assert.Equal(t, math32.Vec3(0, 0.005, 0), sun.Rate)
}

func TestBuildEmpty(t *testing.T) {
	h, err := Build(&Config{})
	require.NoError(t, err)
	assert.Equal(t, 1, h.Len())
	assert.Equal(t, 0, h.NumBodies())
	assert.Empty(t, h.Drawables())
	h.Step(1)
}

func TestBuildErrors(t *testing.T) {
	zero := math32.Vector3{}
	tests := []struct {
		name   string
		cfg    *Config
		reason error
		body   string
	}{
		{"nil", nil, ErrInvalid, ""},
		{"self parent", &Config{Bodies: []Body{{Name: "sun", Parent: "sun"}}}, ErrSelfParent, "sun"},
		{"unknown parent", &Config{Bodies: []Body{{Name: "moon", Parent: "earth"}}}, ErrUnknownParent, "moon"},
		{"duplicate", &Config{Bodies: []Body{{Name: "sun"}, {Name: "sun"}}}, ErrDuplicate, "sun"},
		{"no name", &Config{Bodies: []Body{{Name: "sun"}, {Parent: "sun"}}}, ErrNoName, ""},
		{"cycle", &Config{Bodies: []Body{{Name: "a", Parent: "b"}, {Name: "b", Parent: "a"}}}, ErrCycle, "a"},
		{"negative scale", &Config{Bodies: []Body{{Name: "sun", Scale: -1}}}, ErrInvalid, "sun"},
		{"nan rate", &Config{Bodies: []Body{{Name: "sun", SpinRate: math32.NaN()}}}, ErrInvalid, "sun"},
		{"inf radius", &Config{Bodies: []Body{{Name: "sun", OrbitRadius: math32.Inf(1)}}}, ErrInvalid, "sun"},
		{"zero axis", &Config{Bodies: []Body{{Name: "sun", SpinAxis: &zero}}}, ErrInvalid, "sun"},
		{"root rate", &Config{RootRate: math32.NaN()}, ErrInvalid, ""},
		{"negative step", &Config{Step: -1}, ErrInvalid, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, err := Build(tt.cfg)
			assert.Nil(t, h)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.reason)
			var ce *ConfigError
			require.True(t, errors.As(err, &ce))
			assert.Equal(t, tt.body, ce.Body)
		})
	}
}

func TestBuildErrorDetail(t *testing.T) {
	_, err := Build(&Config{Bodies: []Body{{Name: "earth"}, {Name: "moon", Parent: "eart"}}})
	assert.EqualError(t, err, `orbit: body "moon": unknown parent: "eart" (did you mean "earth"?)`)

	_, err = Build(&Config{Bodies: []Body{{Name: "earth"}, {Name: "moon", Parent: "zzz"}}})
	assert.EqualError(t, err, `orbit: body "moon": unknown parent: "zzz"`)

	_, err = Build(&Config{Bodies: []Body{{Name: "a", Parent: "c"}, {Name: "b", Parent: "a"}, {Name: "c", Parent: "b"}}})
	assert.EqualError(t, err, `orbit: body "a": parent cycle: a -> c -> b -> a`)
}

func TestWalk(t *testing.T) {
	h, err := Build(solarConfig())
	require.NoError(t, err)

	var visited []string
	h.Walk(func(i int, nd *Node) bool {
		visited = append(visited, nd.Name)
		if nd.Name == "earth.orbit" {
			return Break
		}
		return Continue
	})
	assert.Equal(t, []string{"root", "sun.orbit", "sun", "earth.orbit"}, visited)
}

func TestKinds(t *testing.T) {
	h, err := Build(solarConfig())
	require.NoError(t, err)
	assert.Equal(t, Pivot, h.Root().Kind)
	sun, ok := h.Body("sun")
	require.True(t, ok)
	assert.Equal(t, BodyKind, sun.Kind)
	assert.True(t, sun.IsBody())
	pv, ok := h.Pivot("sun")
	require.True(t, ok)
	assert.False(t, pv.IsBody())
	assert.Equal(t, "Pivot", Pivot.String())
	assert.Equal(t, "Body", BodyKind.String())
}
