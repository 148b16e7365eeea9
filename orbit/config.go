// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package orbit

import "cogentcore.org/orrery/math32"

// Config describes a scene: a set of bodies, each orbiting its parent
// body (or the root of the scene) on its own pivot.
type Config struct {

	// Name of the scene. It is informational only.
	Name string `toml:"name" yaml:"name" json:"name"`

	// RootRate is the rotation of the root pivot about the vertical
	// axis per tick unit, in radians. It turns the whole scene.
	// Default 0.
	RootRate float32 `toml:"root-rate" yaml:"root-rate" json:"root-rate"`

	// Step is the per-frame tick increment used by fixed-step clocks.
	// Default 1 (rates are then radians per frame).
	Step float32 `toml:"step" yaml:"step" json:"step"`

	// Bodies in the scene. Order is significant only for display;
	// parents may be listed after their children.
	Bodies []Body `toml:"bodies" yaml:"bodies" json:"bodies"`
}

// Body configures one body and the pivot it orbits on.
type Body struct {

	// Name identifies the body. It is required and must be unique.
	Name string `toml:"name" yaml:"name" json:"name"`

	// Parent is the name of the body whose pivot this body's pivot
	// is attached to. Empty attaches it to the root pivot.
	Parent string `toml:"parent" yaml:"parent" json:"parent"`

	// Scale is the visual radius of the body. Default 1; must be > 0.
	Scale float32 `toml:"scale" yaml:"scale" json:"scale"`

	// OrbitRadius offsets the body's pivot along +X from its parent's
	// pivot. Default 0 (the body sits on its parent's center).
	OrbitRadius float32 `toml:"orbit-radius" yaml:"orbit-radius" json:"orbit-radius"`

	// SpinRate is the rotation of the body about SpinAxis per tick
	// unit, in radians. It does not move any other body. Default 0.
	SpinRate float32 `toml:"spin-rate" yaml:"spin-rate" json:"spin-rate"`

	// OrbitRate is the rotation of the body's pivot about the vertical
	// axis per tick unit, in radians. It carries every body orbiting
	// this one. Default 0.
	OrbitRate float32 `toml:"orbit-rate" yaml:"orbit-rate" json:"orbit-rate"`

	// SpinAxis holds per-axis multipliers of SpinRate, applied to the
	// X, Y and Z Euler angles. It is not normalized. Default (0, 1, 0).
	SpinAxis *math32.Vector3 `toml:"spin-axis,omitempty" yaml:"spin-axis,omitempty" json:"spin-axis,omitempty"`

	// Material is passed through to renderers untouched.
	Material Material `toml:"material" yaml:"material" json:"material"`
}

// Material is the visual descriptor of a body. Every field is optional;
// renderers pick their own fallback when a field is empty.
type Material struct {

	// Color is the base color as "#rrggbb". Default: renderer choice.
	Color string `toml:"color" yaml:"color" json:"color,omitempty"`

	// Emissive is the self-illumination color as "#rrggbb". Default none.
	Emissive string `toml:"emissive" yaml:"emissive" json:"emissive,omitempty"`

	// Texture is an opaque reference to a color map. Default none.
	Texture string `toml:"texture" yaml:"texture" json:"texture,omitempty"`

	// NormalMap is an opaque reference to a normal map. Default none.
	NormalMap string `toml:"normal-map" yaml:"normal-map" json:"normal-map,omitempty"`

	// Basic selects an unlit material instead of a lit one. Default false.
	Basic bool `toml:"basic" yaml:"basic" json:"basic,omitempty"`

	// Glyph is the character used by text renderers. Default: renderer choice.
	Glyph string `toml:"glyph" yaml:"glyph" json:"glyph,omitempty"`
}

// DefaultSpinAxis is the spin axis of bodies that do not set one.
var DefaultSpinAxis = math32.Vec3(0, 1, 0)

// StepOrDefault returns Step, or 1 if it is unset.
func (c *Config) StepOrDefault() float32 {
	if c.Step == 0 {
		return 1
	}
	return c.Step
}

// ScaleOrDefault returns Scale, or 1 if it is unset.
func (b *Body) ScaleOrDefault() float32 {
	if b.Scale == 0 {
		return 1
	}
	return b.Scale
}

// SpinAxisOrDefault returns SpinAxis, or [DefaultSpinAxis] if it is unset.
func (b *Body) SpinAxisOrDefault() math32.Vector3 {
	if b.SpinAxis == nil {
		return DefaultSpinAxis
	}
	return *b.SpinAxis
}

// spinRate returns the per-axis Euler rate of the body.
func (b *Body) spinRate() math32.Vector3 {
	return b.SpinAxisOrDefault().MulScalar(b.SpinRate)
}
