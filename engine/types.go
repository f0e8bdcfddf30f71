// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package engine implements the per-tick orchestrator: it owns the
// body list, the tick counter, and simulated time, and composes the
// integrator, the collision resolver, and the force solver's
// determinism guarantees into one stepping loop.
package engine

import (
	"github.com/landxcape/nbody-sim-core/body"
	"github.com/landxcape/nbody-sim-core/config"
	"github.com/landxcape/nbody-sim-core/vector"
)

// sentinelTimestamp is used for every Snapshot timestamp, and for a saved
// Scenario's CreatedAt when the caller leaves it empty. Using
// a fixed value instead of wall-clock time is a deliberate determinism
// choice: two runs that produce the same physical state must produce
// byte-identical documents.
const sentinelTimestamp = "1970-01-01T00:00:00Z"

// EditKind discriminates the tagged BodyEdit union. It is a finite,
// closed set — new edit kinds are added here, not through an open
// interface.
type EditKind int

const (
	EditCreate EditKind = iota
	EditUpdate
	EditDelete
)

// BodyUpdate partially mutates an existing body: only non-nil fields
// are applied.
type BodyUpdate struct {
	ID       string
	Mass     *float64
	Radius   *float64
	Position *vector.Vec2
	Velocity *vector.Vec2
	Alive    *bool
	Metadata *body.Metadata
}

// Edit is the tagged sum Create(Body) | Update(BodyUpdate) | Delete{id}.
// Exactly one of Create/Update/DeleteID is meaningful, selected by Kind.
type Edit struct {
	Kind     EditKind
	Create   *body.Body
	Update   *BodyUpdate
	DeleteID string
}

// StepSummary reports what one Step call did.
type StepSummary struct {
	TicksApplied       uint32
	FinalTick          uint64
	SimTime            float64
	CollisionEvents    uint64
	MergedEvents       uint64
	Warnings           []string
	PairwiseTicks      uint32
	BarnesHutTicks     uint32
	StepWallTimeMicros uint64
	AverageTickMicros  uint64
	MaxBodyCount       int
	LastSolverMode     string
}

// SimulationState is a deep-copied view of the engine's current tick,
// simulated time, configuration, and bodies.
type SimulationState struct {
	Tick    uint64
	SimTime float64
	Config  config.EngineConfig
	Bodies  []*body.Body
}

// ScenarioMetadata describes a scenario document for the host's benefit;
// it is opaque to physics.
type ScenarioMetadata struct {
	Name        string
	Description string
	Author      string
	CreatedAt   string
	Tags        []string
}

// Scenario bundles a configuration and an initial body population with
// host-facing metadata, keyed by a major-"1" schema version.
type Scenario struct {
	SchemaVersion string
	Metadata      ScenarioMetadata
	EngineConfig  config.EngineConfig
	Bodies        []*body.Body
}

// Snapshot is a deterministic, round-trippable capture of engine state:
// tick, sim time, a stable config digest, and bodies. It intentionally
// omits the configuration itself (ConfigHash tags it for integrity
// checking instead) and carries the sentinel timestamp rather than
// wall-clock time.
type Snapshot struct {
	SchemaVersion string
	CreatedAt     string
	Tick          uint64
	SimTime       float64
	ConfigHash    string
	Bodies        []*body.Body
}
