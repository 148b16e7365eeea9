// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package orbit

import "cogentcore.org/orrery/math32"

// Tick advances every node's local rotation by its rate times dt:
// bodies spin about their spin axis and pivots turn about the vertical
// axis. Positions never change. Each node only reads its own state, so
// the update order does not matter. A zero or non-finite dt leaves the
// hierarchy untouched. World matrices are not updated; call
// [Hierarchy.UpdateWorld] (or use [Hierarchy.Step]) before reading them.
func (h *Hierarchy) Tick(dt float32) {
	if dt == 0 || !math32.IsFinite(dt) {
		return
	}
	for i := range h.nodes {
		nd := &h.nodes[i]
		if nd.Rate.IsNil() {
			continue
		}
		nd.Pose.RotateEulerRad(nd.Rate.MulScalar(dt))
	}
}

// UpdateWorld recomputes the world matrix of every node from the root
// down. Parents precede their children in the node slice, so a single
// forward pass sees each parent's world matrix before its children.
func (h *Hierarchy) UpdateWorld() {
	for i := range h.nodes {
		nd := &h.nodes[i]
		if nd.Parent == NoParent {
			nd.Pose.UpdateWorldMatrix(nil)
			continue
		}
		nd.Pose.UpdateWorldMatrix(&h.nodes[nd.Parent].Pose.WorldMatrix)
	}
}

// Step calls [Hierarchy.Tick] and then [Hierarchy.UpdateWorld].
func (h *Hierarchy) Step(dt float32) {
	h.Tick(dt)
	h.UpdateWorld()
}

// WorldTransform computes the world matrix of node i from scratch by
// composing the local matrices of its ancestor chain, root first:
// World(i) = World(parent) * Local(i). It does not read or write the
// cached world matrices.
func (h *Hierarchy) WorldTransform(i int) math32.Matrix4 {
	var chain []int
	for j := i; j != NoParent; j = h.nodes[j].Parent {
		chain = append(chain, j)
	}
	m := math32.Identity4()
	for c := len(chain) - 1; c >= 0; c-- {
		m.MulMatrices(&m, &h.nodes[chain[c]].Pose.Matrix)
	}
	return m
}

// BodyWorldTransform returns [Hierarchy.WorldTransform] for the named body.
func (h *Hierarchy) BodyWorldTransform(name string) (math32.Matrix4, bool) {
	i, ok := h.bodies[name]
	if !ok {
		return math32.Matrix4{}, false
	}
	return h.WorldTransform(i), true
}
