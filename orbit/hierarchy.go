// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package orbit implements a hierarchy of orbiting bodies: each body
// sits on a pivot attached to its parent's pivot, and the world
// transform of every node is the composition of its ancestors' local
// transforms. Nested orbits therefore compose through rotation, so a
// moon circles its planet while the planet circles its star.
//
// A [Hierarchy] is built once from a [Config], then advanced with
// [Hierarchy.Tick] and brought up to date with [Hierarchy.UpdateWorld]
// once per frame. It is not safe for concurrent use.
package orbit

import (
	"fmt"
	"strings"

	"cogentcore.org/orrery/math32"
)

// Hierarchy is a tree of nodes stored in a slice, plus a registry of
// bodies by name.
type Hierarchy struct {

	// Name of the scene.
	Name string

	// FrameStep is the per-frame tick increment for fixed-step clocks.
	FrameStep float32

	nodes  []Node
	names  []string // body names in config order
	bodies map[string]int
	pivots map[string]int
}

// Build returns a new [Hierarchy] for cfg, or a [*ConfigError]
// if cfg is malformed. The same cfg always yields the same hierarchy.
// cfg is not modified.
func Build(cfg *Config) (*Hierarchy, error) {
	if cfg == nil {
		return nil, &ConfigError{Err: ErrInvalid, Detail: "nil config"}
	}
	if err := checkScene(cfg); err != nil {
		return nil, err
	}
	byName := make(map[string]int, len(cfg.Bodies))
	for i := range cfg.Bodies {
		b := &cfg.Bodies[i]
		if b.Name == "" {
			return nil, &ConfigError{Err: ErrNoName, Detail: fmt.Sprintf("bodies[%d]", i)}
		}
		if _, has := byName[b.Name]; has {
			return nil, &ConfigError{Body: b.Name, Err: ErrDuplicate}
		}
		byName[b.Name] = i
		if err := checkBody(b); err != nil {
			return nil, err
		}
	}
	known := make([]string, len(cfg.Bodies))
	for i := range cfg.Bodies {
		known[i] = cfg.Bodies[i].Name
	}
	for i := range cfg.Bodies {
		b := &cfg.Bodies[i]
		if b.Parent == "" {
			continue
		}
		if b.Parent == b.Name {
			return nil, &ConfigError{Body: b.Name, Err: ErrSelfParent}
		}
		if _, has := byName[b.Parent]; !has {
			detail := fmt.Sprintf("%q", b.Parent)
			if s := suggest(b.Parent, known); s != "" {
				detail += fmt.Sprintf(" (did you mean %q?)", s)
			}
			return nil, &ConfigError{Body: b.Name, Err: ErrUnknownParent, Detail: detail}
		}
	}
	order, err := parentsFirst(cfg.Bodies, byName)
	if err != nil {
		return nil, err
	}

	h := &Hierarchy{
		Name:      cfg.Name,
		FrameStep: cfg.StepOrDefault(),
		nodes:     make([]Node, 0, 1+2*len(cfg.Bodies)),
		names:     known,
		bodies:    make(map[string]int, len(cfg.Bodies)),
		pivots:    make(map[string]int, len(cfg.Bodies)),
	}
	root := h.add(Node{Name: RootName, Kind: Pivot, Parent: NoParent, Rate: math32.Vec3(0, cfg.RootRate, 0)})
	for _, bi := range order {
		b := &cfg.Bodies[bi]
		par := root
		if b.Parent != "" {
			par = h.pivots[b.Parent]
		}
		pv := h.add(Node{Name: b.Name + PivotSuffix, Kind: Pivot, Parent: par, Rate: math32.Vec3(0, b.OrbitRate, 0)})
		h.nodes[pv].Pose.Pos.Set(b.OrbitRadius, 0, 0)
		h.pivots[b.Name] = pv

		s := b.ScaleOrDefault()
		bd := h.add(Node{Name: b.Name, Kind: BodyKind, Parent: pv, Rate: b.spinRate(), Material: b.Material})
		h.nodes[bd].Pose.Scale.Set(s, s, s)
		h.bodies[b.Name] = bd
	}
	for i := range h.nodes {
		h.nodes[i].Pose.UpdateMatrix()
	}
	h.UpdateWorld()
	return h, nil
}

// add appends nd to the node slice, links it to its parent
// and returns its index.
func (h *Hierarchy) add(nd Node) int {
	idx := len(h.nodes)
	h.nodes = append(h.nodes, nd)
	if nd.Parent != NoParent {
		par := &h.nodes[nd.Parent]
		par.Children = append(par.Children, idx)
	}
	return idx
}

func checkScene(cfg *Config) error {
	if !math32.IsFinite(cfg.RootRate) {
		return &ConfigError{Err: ErrInvalid, Detail: "root-rate must be finite"}
	}
	if !math32.IsFinite(cfg.Step) || cfg.Step < 0 {
		return &ConfigError{Err: ErrInvalid, Detail: "step must be finite and not negative"}
	}
	return nil
}

func checkBody(b *Body) error {
	invalid := func(detail string) error {
		return &ConfigError{Body: b.Name, Err: ErrInvalid, Detail: detail}
	}
	for _, f := range []struct {
		name string
		v    float32
	}{
		{"scale", b.Scale},
		{"orbit-radius", b.OrbitRadius},
		{"spin-rate", b.SpinRate},
		{"orbit-rate", b.OrbitRate},
	} {
		if !math32.IsFinite(f.v) {
			return invalid(f.name + " must be finite")
		}
	}
	if b.ScaleOrDefault() <= 0 {
		return invalid("scale must be positive")
	}
	if b.SpinAxis != nil {
		if !b.SpinAxis.IsFinite() {
			return invalid("spin-axis must be finite")
		}
		if b.SpinAxis.IsNil() {
			return invalid("spin-axis must not be zero")
		}
	}
	return nil
}

// parentsFirst returns the body indexes ordered so that every body comes
// after its parent, keeping config order otherwise. It reports parent
// cycles.
func parentsFirst(bodies []Body, byName map[string]int) ([]int, error) {
	const (
		unvisited = iota
		visiting
		done
	)
	state := make([]int, len(bodies))
	order := make([]int, 0, len(bodies))
	var visit func(i int) error
	visit = func(i int) error {
		switch state[i] {
		case done:
			return nil
		case visiting:
			return &ConfigError{Body: bodies[i].Name, Err: ErrCycle, Detail: cyclePath(bodies, byName, i)}
		}
		state[i] = visiting
		if p := bodies[i].Parent; p != "" {
			if err := visit(byName[p]); err != nil {
				return err
			}
		}
		state[i] = done
		order = append(order, i)
		return nil
	}
	for i := range bodies {
		if err := visit(i); err != nil {
			return nil, err
		}
	}
	return order, nil
}

// cyclePath returns the parent chain starting and ending at body i,
// such as "a -> b -> a".
func cyclePath(bodies []Body, byName map[string]int, i int) string {
	path := []string{bodies[i].Name}
	for j := byName[bodies[i].Parent]; ; j = byName[bodies[j].Parent] {
		path = append(path, bodies[j].Name)
		if j == i || len(path) > len(bodies) {
			break
		}
	}
	return strings.Join(path, " -> ")
}

// Len returns the number of nodes, pivots included.
func (h *Hierarchy) Len() int {
	return len(h.nodes)
}

// NumBodies returns the number of bodies in the registry.
func (h *Hierarchy) NumBodies() int {
	return len(h.bodies)
}

// Node returns the node at index i. It panics if i is out of range.
// The returned pointer is valid for the life of the hierarchy.
func (h *Hierarchy) Node(i int) *Node {
	return &h.nodes[i]
}

// Root returns the root pivot.
func (h *Hierarchy) Root() *Node {
	return &h.nodes[0]
}

// Names returns the body names in config order.
func (h *Hierarchy) Names() []string {
	return append([]string(nil), h.names...)
}

// Body returns the body node with the given name.
func (h *Hierarchy) Body(name string) (*Node, bool) {
	i, ok := h.bodies[name]
	if !ok {
		return nil, false
	}
	return &h.nodes[i], true
}

// Pivot returns the pivot that the named body orbits on.
func (h *Hierarchy) Pivot(name string) (*Node, bool) {
	i, ok := h.pivots[name]
	if !ok {
		return nil, false
	}
	return &h.nodes[i], true
}

// Index returns the node index of the named body.
func (h *Hierarchy) Index(name string) (int, bool) {
	i, ok := h.bodies[name]
	return i, ok
}

// WorldPos returns the world position of the named body
// as of the last [Hierarchy.UpdateWorld].
func (h *Hierarchy) WorldPos(name string) (math32.Vector3, bool) {
	nd, ok := h.Body(name)
	if !ok {
		return math32.Vector3{}, false
	}
	return nd.Pose.WorldPos(), true
}

// Walk calls fn for each node in depth-first pre-order, starting at
// the root, so parents are always visited before their children.
// If fn returns [Break], the children of that node are skipped.
func (h *Hierarchy) Walk(fn func(i int, nd *Node) bool) {
	stack := []int{0}
	for len(stack) > 0 {
		i := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		nd := &h.nodes[i]
		if !fn(i, nd) {
			continue
		}
		for c := len(nd.Children) - 1; c >= 0; c-- {
			stack = append(stack, nd.Children[c])
		}
	}
}

const (
	// Continue tells [Hierarchy.Walk] to visit the children of a node.
	Continue = true

	// Break tells [Hierarchy.Walk] to skip the children of a node.
	Break = false
)

// String returns an indented outline of the hierarchy.
func (h *Hierarchy) String() string {
	depth := make([]int, len(h.nodes))
	var sb strings.Builder
	h.Walk(func(i int, nd *Node) bool {
		if nd.Parent != NoParent {
			depth[i] = depth[nd.Parent] + 1
		}
		sb.WriteString(strings.Repeat("  ", depth[i]))
		fmt.Fprintf(&sb, "%s [%v]", nd.Name, nd.Kind)
		if !nd.Pose.Pos.IsNil() {
			fmt.Fprintf(&sb, " pos=%v", nd.Pose.Pos)
		}
		if nd.IsBody() {
			fmt.Fprintf(&sb, " scale=%.4g", nd.Pose.Scale.X)
		}
		sb.WriteByte('\n')
		return Continue
	})
	return sb.String()
}
