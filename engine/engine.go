// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package engine

import (
	"fmt"
	"time"

	"github.com/landxcape/nbody-sim-core/body"
	"github.com/landxcape/nbody-sim-core/collision"
	"github.com/landxcape/nbody-sim-core/config"
	"github.com/landxcape/nbody-sim-core/engineerr"
	"github.com/landxcape/nbody-sim-core/integrator"
	"github.com/landxcape/nbody-sim-core/internal/enginelog"
	"github.com/landxcape/nbody-sim-core/internal/enginemetrics"
)

// Engine owns a body list, a tick counter, and simulated time, and
// composes the integrator and collision stages into one stepping loop.
// It is single-threaded and synchronous: a Step call holds the engine
// exclusively for its duration, and any number of engines may be
// stepped independently and concurrently with each other (but never
// with themselves).
type Engine struct {
	config  config.EngineConfig
	bodies  []*body.Body
	tick    uint64
	simTime float64

	logger  *enginelog.Logger
	metrics *enginemetrics.Metrics
}

// Option configures an Engine at construction time.
type Option func(*Engine)

// WithLogger attaches a logger that receives WARN-level lines for
// non-fatal anomalies surfaced in StepSummary.Warnings.
func WithLogger(l *enginelog.Logger) Option {
	return func(e *Engine) { e.logger = l }
}

// WithMetrics attaches a Prometheus-backed counters/histogram sink. Pass
// nil (the default) for a silent engine.
func WithMetrics(m *enginemetrics.Metrics) Option {
	return func(e *Engine) { e.metrics = m }
}

// New validates cfg and returns an Engine with no bodies.
func New(cfg config.EngineConfig, opts ...Option) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	e := &Engine{config: cfg, bodies: nil}
	for _, opt := range opts {
		opt(e)
	}
	return e, nil
}

// NewWithBodies validates cfg and every body, checks id uniqueness, and
// returns an Engine seeded with a deep copy of bodies.
func NewWithBodies(cfg config.EngineConfig, bodies []*body.Body, opts ...Option) (*Engine, error) {
	e, err := New(cfg, opts...)
	if err != nil {
		return nil, err
	}
	if err := validateBodySet(bodies); err != nil {
		return nil, err
	}
	e.bodies = body.CloneAll(bodies)
	return e, nil
}

func validateBodySet(bodies []*body.Body) error {
	if err := body.ValidateUniqueIDs(bodies); err != nil {
		return err
	}
	for _, b := range bodies {
		if err := b.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// SetConfig validates cfg and replaces the engine's configuration. Tick
// and simulated time are left untouched.
func (e *Engine) SetConfig(cfg config.EngineConfig) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	e.config = cfg
	return nil
}

// ApplyEdit performs a single Create, Update, or Delete against the
// engine's body list.
func (e *Engine) ApplyEdit(edit Edit) error {
	switch edit.Kind {
	case EditCreate:
		return e.createBody(edit.Create)
	case EditUpdate:
		return e.updateBody(edit.Update)
	case EditDelete:
		return e.deleteBody(edit.DeleteID)
	default:
		return engineerr.New(engineerr.UnsupportedFeature, "unknown edit kind %d", edit.Kind)
	}
}

func (e *Engine) createBody(b *body.Body) error {
	if err := b.Validate(); err != nil {
		return err
	}
	for _, existing := range e.bodies {
		if existing.ID == b.ID {
			return engineerr.New(engineerr.DuplicateBodyId, "%s", b.ID)
		}
	}
	e.bodies = append(e.bodies, b.Clone())
	return nil
}

func (e *Engine) updateBody(u *BodyUpdate) error {
	var target *body.Body
	for _, existing := range e.bodies {
		if existing.ID == u.ID {
			target = existing
			break
		}
	}
	if target == nil {
		return engineerr.New(engineerr.BodyNotFound, "%s", u.ID)
	}

	if u.Mass != nil {
		target.Mass = *u.Mass
	}
	if u.Radius != nil {
		target.Radius = *u.Radius
	}
	if u.Position != nil {
		target.Position = *u.Position
	}
	if u.Velocity != nil {
		target.Velocity = *u.Velocity
	}
	if u.Alive != nil {
		target.Alive = *u.Alive
	}
	if u.Metadata != nil {
		md := *u.Metadata
		target.Metadata = &md
	}

	return target.Validate()
}

func (e *Engine) deleteBody(id string) error {
	for i, existing := range e.bodies {
		if existing.ID == id {
			e.bodies = append(e.bodies[:i], e.bodies[i+1:]...)
			return nil
		}
	}
	return engineerr.New(engineerr.BodyNotFound, "%s", id)
}

// Step advances the simulation by ticks iterations of
// integrate-then-resolve-collisions, then returns a summary. ticks=0
// returns immediately with the engine's current tick/sim time and no
// other side effects. A NumericalInstability error leaves the engine in
// the state it had at the start of the failing iteration's commit
// phase; callers should discard via a prior Snapshot.
func (e *Engine) Step(ticks uint32) (StepSummary, error) {
	summary := StepSummary{MaxBodyCount: len(e.bodies), LastSolverMode: "pairwise"}

	if ticks == 0 {
		summary.FinalTick = e.tick
		summary.SimTime = e.simTime
		return summary, nil
	}

	wallStart := time.Now()

	for t := uint32(0); t < ticks; t++ {
		tickStart := time.Now()
		report, err := integrator.Step(e.bodies, e.config)
		if err != nil {
			return StepSummary{}, err
		}

		survivors, stats := collision.Resolve(e.bodies, e.config)
		e.bodies = survivors

		summary.CollisionEvents += uint64(stats.CollisionEvents)
		summary.MergedEvents += uint64(stats.MergeEvents)
		summary.TicksApplied++
		if len(e.bodies) > summary.MaxBodyCount {
			summary.MaxBodyCount = len(e.bodies)
		}

		if report.UsedBarnesHut {
			summary.BarnesHutTicks++
			summary.LastSolverMode = "barnesHut"
		} else {
			summary.PairwiseTicks++
			summary.LastSolverMode = "pairwise"
		}

		if report.DtClamped {
			warning := fmt.Sprintf("tick %d: adaptive dt clamped to %g", e.tick, report.DtUsed)
			summary.Warnings = append(summary.Warnings, warning)
			if e.logger != nil {
				e.logger.Warnf("%s", warning)
			}
		}

		e.tick++
		e.simTime += report.DtUsed

		if e.metrics != nil {
			e.metrics.ObserveTick(summary.LastSolverMode, stats.CollisionEvents, stats.MergeEvents, time.Since(tickStart).Seconds())
		}
	}

	summary.StepWallTimeMicros = uint64(time.Since(wallStart).Microseconds())
	if summary.TicksApplied > 0 {
		summary.AverageTickMicros = summary.StepWallTimeMicros / uint64(summary.TicksApplied)
	}

	for _, b := range e.bodies {
		if !b.Position.IsFinite() || !b.Velocity.IsFinite() {
			return StepSummary{}, engineerr.New(engineerr.NumericalInstability,
				"body %q produced non-finite values after stepping", b.ID)
		}
	}

	summary.FinalTick = e.tick
	summary.SimTime = e.simTime
	return summary, nil
}

// GetState returns a deep copy of the engine's tick, sim time, config,
// and bodies.
func (e *Engine) GetState() SimulationState {
	return SimulationState{
		Tick:    e.tick,
		SimTime: e.simTime,
		Config:  e.config,
		Bodies:  body.CloneAll(e.bodies),
	}
}

// Snapshot captures a deterministic, round-trippable view of engine
// state: schema "1.0", the fixed sentinel timestamp, current
// tick/simTime, the configuration's stable digest, and a deep copy of
// bodies.
func (e *Engine) Snapshot() Snapshot {
	return Snapshot{
		SchemaVersion: "1.0",
		CreatedAt:     sentinelTimestamp,
		Tick:          e.tick,
		SimTime:       e.simTime,
		ConfigHash:    e.config.StableHash(),
		Bodies:        body.CloneAll(e.bodies),
	}
}

// RestoreSnapshot requires a schema major version of "1", validates the
// body set, and replaces tick, sim time, and bodies. The configuration
// is left untouched.
func (e *Engine) RestoreSnapshot(snap Snapshot) error {
	if err := requireSchemaV1(snap.SchemaVersion); err != nil {
		return err
	}
	if err := validateBodySet(snap.Bodies); err != nil {
		return err
	}
	e.tick = snap.Tick
	e.simTime = snap.SimTime
	e.bodies = body.CloneAll(snap.Bodies)
	return nil
}

// LoadScenario requires a schema major version of "1", validates the
// configuration and body set, then swaps in the scenario's config and
// bodies and resets tick/sim time to zero.
func (e *Engine) LoadScenario(scn Scenario) error {
	if err := requireSchemaV1(scn.SchemaVersion); err != nil {
		return err
	}
	if err := scn.EngineConfig.Validate(); err != nil {
		return err
	}
	if err := validateBodySet(scn.Bodies); err != nil {
		return err
	}

	e.config = scn.EngineConfig
	e.bodies = body.CloneAll(scn.Bodies)
	e.tick = 0
	e.simTime = 0
	return nil
}

// SaveScenario bundles the engine's current config and bodies with the
// given metadata into a schema "1.0" scenario document.
func (e *Engine) SaveScenario(meta ScenarioMetadata) Scenario {
	if meta.CreatedAt == "" {
		meta.CreatedAt = sentinelTimestamp
	}
	return Scenario{
		SchemaVersion: "1.0",
		Metadata:      meta,
		EngineConfig:  e.config,
		Bodies:        body.CloneAll(e.bodies),
	}
}

func requireSchemaV1(schemaVersion string) error {
	if len(schemaVersion) == 0 || schemaVersion[0] != '1' {
		return engineerr.New(engineerr.SchemaValidationFailed, "unsupported schema version %q, expected major version 1", schemaVersion)
	}
	return nil
}
