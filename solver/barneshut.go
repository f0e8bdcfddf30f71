// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package solver

import (
	"math"

	"github.com/landxcape/nbody-sim-core/body"
	"github.com/landxcape/nbody-sim-core/vector"
)

// node is one cell of the Barnes-Hut quadtree. The tree is stored as a
// flat arena (a slice of node) with integer child indices rather than a
// pointer tree, per the arena-friendly layout this engine's design
// notes endorse: construction and traversal order match the recursive
// formulation exactly, but there is nothing for the garbage collector
// to chase.
type node struct {
	center    vector.Vec2
	halfSize  float64
	mass      float64
	com       vector.Vec2
	count     int
	bodyIndex int32    // valid only while this node is a single-body leaf
	children  [4]int32 // -1 when absent
	collapsed bool     // true once co-located/minimum-cell bodies were absorbed
}

const emptyChild = int32(-1)

// tree is the arena-exclusive quadtree for a single force evaluation.
type tree struct {
	nodes     []node
	positions []vector.Vec2
	masses    []float64
	minHalf   float64
}

func newNode(center vector.Vec2, halfSize float64) node {
	return node{
		center:    center,
		halfSize:  halfSize,
		bodyIndex: emptyChild,
		children:  [4]int32{emptyChild, emptyChild, emptyChild, emptyChild},
	}
}

// barnesHut builds the quadtree over alive bodies and accumulates the
// approximate acceleration on each of them into accs.
func barnesHut(bodies []*body.Body, positions []vector.Vec2, aliveIdx []int, g, epsilon, theta float64, accs []vector.Vec2) {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, i := range aliveIdx {
		p := positions[i]
		minX = math.Min(minX, p.X)
		maxX = math.Max(maxX, p.X)
		minY = math.Min(minY, p.Y)
		maxY = math.Max(maxY, p.Y)
	}

	span := math.Max(math.Abs(maxX-minX), math.Abs(maxY-minY))
	span = math.Max(span, 1e-6)
	rootHalf := 0.5*span + 1e-6
	center := vector.New((minX+maxX)/2, (minY+maxY)/2)

	t := &tree{
		positions: positions,
		masses:    make([]float64, len(bodies)),
		minHalf:   math.Max(rootHalf*1e-6, 1e-9),
	}
	for i, b := range bodies {
		t.masses[i] = b.Mass
	}
	t.nodes = append(t.nodes, newNode(center, rootHalf))

	for _, i := range aliveIdx {
		t.insert(0, i, positions[i], bodies[i].Mass)
	}

	epsSq := epsilon * epsilon
	for _, i := range aliveIdx {
		accs[i] = t.accelerationAt(0, i, positions[i], theta, g, epsSq)
	}
}

// insert adds body bi (mass m, position p) into the subtree rooted at
// nodes[idx], subdividing a leaf that already holds a body or
// collapsing near-coincident bodies into one aggregate.
func (t *tree) insert(idx int32, bi int, p vector.Vec2, m float64) {
	n := &t.nodes[idx]

	if n.count == 0 {
		n.bodyIndex = int32(bi)
		n.mass = m
		n.com = p
		n.count = 1
		return
	}

	wasSingleLeaf := n.bodyIndex >= 0 && n.children[0] == emptyChild
	wasCollapsed := n.collapsed

	n.com = n.com.Scale(n.mass).Add(p.Scale(m)).Div(n.mass + m)
	n.mass += m
	n.count++

	if wasCollapsed {
		return
	}

	if wasSingleLeaf {
		oldIdx := n.bodyIndex
		oldPos := t.positions[oldIdx]
		oldMass := t.masses[oldIdx]

		if n.halfSize <= t.minHalf || oldPos.Sub(p).LengthSq() <= 1e-18 {
			n.bodyIndex = emptyChild
			n.collapsed = true
			return
		}

		n.bodyIndex = emptyChild
		t.subdivide(idx)

		childOld := t.quadrantChild(idx, oldPos)
		t.insert(childOld, int(oldIdx), oldPos, oldMass)
		childNew := t.quadrantChild(idx, p)
		t.insert(childNew, bi, p, m)
		return
	}

	child := t.quadrantChild(idx, p)
	t.insert(child, bi, p, m)
}

// subdivide creates the four children of nodes[idx].
func (t *tree) subdivide(idx int32) {
	parent := t.nodes[idx]
	childHalf := parent.halfSize / 2

	var newIdx [4]int32
	for k := 0; k < 4; k++ {
		xBit := float64(k & 1)
		yBit := float64((k >> 1) & 1)
		offsetX := childHalf
		if xBit == 0 {
			offsetX = -childHalf
		}
		offsetY := childHalf
		if yBit == 0 {
			offsetY = -childHalf
		}
		childCenter := vector.New(parent.center.X+offsetX, parent.center.Y+offsetY)
		newIdx[k] = int32(len(t.nodes))
		t.nodes = append(t.nodes, newNode(childCenter, childHalf))
	}

	t.nodes[idx].children = newIdx
}

// quadrantChild returns the child index of nodes[idx] that point p
// falls into: xBit = (p.X >= center.X), yBit = (p.Y >= center.Y),
// index = xBit + 2*yBit.
func (t *tree) quadrantChild(idx int32, p vector.Vec2) int32 {
	n := t.nodes[idx]
	xBit := 0
	if p.X >= n.center.X {
		xBit = 1
	}
	yBit := 0
	if p.Y >= n.center.Y {
		yBit = 1
	}
	return n.children[xBit+2*yBit]
}

// accelerationAt computes the approximate acceleration on body bodyIdx
// (at position p) from the subtree rooted at nodes[idx].
func (t *tree) accelerationAt(idx int32, bodyIdx int, p vector.Vec2, theta, g, epsSq float64) vector.Vec2 {
	n := t.nodes[idx]
	if n.count == 0 || n.mass <= 0 {
		return vector.Zero
	}

	isLeaf := n.children[0] == emptyChild
	if isLeaf && n.count == 1 && n.bodyIndex == int32(bodyIdx) {
		return vector.Zero
	}

	delta := n.com.Sub(p)
	dSq := delta.LengthSq() + epsSq
	d := math.Sqrt(dSq)
	size := 2 * n.halfSize

	if isLeaf || size/d < theta {
		invD3 := 1 / (d * d * d)
		return delta.Scale(g * n.mass * invD3)
	}

	acc := vector.Zero
	for _, c := range n.children {
		if c != emptyChild {
			acc = acc.Add(t.accelerationAt(c, bodyIdx, p, theta, g, epsSq))
		}
	}
	return acc
}
