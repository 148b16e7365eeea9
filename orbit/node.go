// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package orbit

import "cogentcore.org/orrery/math32"

// Kinds are the kinds of [Node].
type Kinds int32

const (
	// Pivot is an invisible node that sets the orbital center and
	// offset of its children.
	Pivot Kinds = iota

	// BodyKind is a node with a visual scale, drawn by renderers.
	BodyKind
)

func (k Kinds) String() string {
	switch k {
	case Pivot:
		return "Pivot"
	case BodyKind:
		return "Body"
	}
	return "Kinds(?)"
}

// NoParent is the parent index of the root node.
const NoParent = -1

// PivotSuffix is appended to a body name to name its pivot.
const PivotSuffix = ".orbit"

// RootName is the name of the root pivot.
const RootName = "root"

// Node is one element of a [Hierarchy]. Nodes refer to each other by
// index into the hierarchy's node slice; a parent always has a lower
// index than its children.
type Node struct {

	// Name is the body name for bodies, the body name plus
	// [PivotSuffix] for pivots, and [RootName] for the root.
	Name string

	// Kind is Pivot or BodyKind.
	Kind Kinds

	// Parent is the index of the parent node, or [NoParent].
	Parent int

	// Children are the indexes of the child nodes, in insertion order.
	Children []int

	// Pose is the local and world transform of the node.
	Pose Pose

	// Rate is the change of Pose.Euler per tick unit.
	Rate math32.Vector3

	// Material is the visual descriptor of bodies; empty for pivots.
	Material Material
}

// IsBody returns whether the node is a body.
func (nd *Node) IsBody() bool {
	return nd.Kind == BodyKind
}

// HasChildren returns whether the node has any children.
func (nd *Node) HasChildren() bool {
	return len(nd.Children) > 0
}
