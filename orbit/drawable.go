// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package orbit

import "cogentcore.org/orrery/math32"

// Drawable is what a renderer needs to draw one body.
type Drawable struct {
	Name     string
	World    math32.Matrix4
	Pos      math32.Vector3
	Scale    float32
	Material Material
}

// Drawables returns one [Drawable] per body in config order, as of the
// last [Hierarchy.UpdateWorld].
func (h *Hierarchy) Drawables() []Drawable {
	ds := make([]Drawable, 0, len(h.names))
	for _, nm := range h.names {
		nd := &h.nodes[h.bodies[nm]]
		ds = append(ds, Drawable{
			Name:     nm,
			World:    nd.Pose.WorldMatrix,
			Pos:      nd.Pose.WorldPos(),
			Scale:    nd.Pose.Scale.X,
			Material: nd.Material,
		})
	}
	return ds
}
