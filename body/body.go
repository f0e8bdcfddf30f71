// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package body implements the mutable state element of the simulation:
// point-mass bodies and the invariants the core relies on.
package body

import (
	"math"
	"strings"

	"github.com/landxcape/nbody-sim-core/engineerr"
	"github.com/landxcape/nbody-sim-core/vector"
)

// Metadata is opaque to physics: labels the host attaches to a body for
// its own bookkeeping (display name, visual kind, color). The core never
// reads or validates its contents.
type Metadata struct {
	Label string
	Kind  string
	Color string
}

// Body is a point mass participating in the simulation.
type Body struct {
	ID       string
	Mass     float64
	Radius   float64
	Position vector.Vec2
	Velocity vector.Vec2
	Alive    bool
	Metadata *Metadata
}

// New returns a Body with Alive set to true and no metadata.
func New(id string, mass, radius float64, position, velocity vector.Vec2) *Body {
	return &Body{
		ID:       id,
		Mass:     mass,
		Radius:   radius,
		Position: position,
		Velocity: velocity,
		Alive:    true,
	}
}

// Clone returns a deep copy; Metadata, if present, is copied by value.
func (b *Body) Clone() *Body {
	clone := *b
	if b.Metadata != nil {
		md := *b.Metadata
		clone.Metadata = &md
	}
	return &clone
}

// Validate reports an *engineerr.Error of kind InvalidBody if any
// invariant is violated: non-empty trimmed id, finite positive mass,
// finite positive radius, finite position and velocity. The core never
// clamps an offending value; the host must fix it and retry.
func (b *Body) Validate() error {
	if strings.TrimSpace(b.ID) == "" {
		return engineerr.New(engineerr.InvalidBody, "id must not be empty")
	}
	if !isFinite(b.Mass) || b.Mass <= 0 {
		return engineerr.New(engineerr.InvalidBody, "body %q: mass must be finite and > 0", b.ID)
	}
	if !isFinite(b.Radius) || b.Radius <= 0 {
		return engineerr.New(engineerr.InvalidBody, "body %q: radius must be finite and > 0", b.ID)
	}
	if !b.Position.IsFinite() {
		return engineerr.New(engineerr.InvalidBody, "body %q: position must be finite", b.ID)
	}
	if !b.Velocity.IsFinite() {
		return engineerr.New(engineerr.InvalidBody, "body %q: velocity must be finite", b.ID)
	}
	return nil
}

func isFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}

// ValidateUniqueIDs reports an *engineerr.Error of kind DuplicateBodyId
// if the set of bodies has a repeated id. Enforced at every observable
// boundary: construction, scenario load, snapshot restore, create-edit.
func ValidateUniqueIDs(bodies []*Body) error {
	seen := make(map[string]struct{}, len(bodies))
	for _, b := range bodies {
		if _, ok := seen[b.ID]; ok {
			return engineerr.New(engineerr.DuplicateBodyId, "duplicate body id %q", b.ID)
		}
		seen[b.ID] = struct{}{}
	}
	return nil
}

// CloneAll returns a deep copy of a body slice, preserving order.
func CloneAll(bodies []*Body) []*Body {
	out := make([]*Body, len(bodies))
	for i, b := range bodies {
		out[i] = b.Clone()
	}
	return out
}
