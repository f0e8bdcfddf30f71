// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config implements the engine's immutable-per-step parameter
// block: validation and a stable digest used to tag snapshots.
package config

import (
	"fmt"
	"math"

	"github.com/cespare/xxhash/v2"
	"github.com/landxcape/nbody-sim-core/engineerr"
)

// Integrator selects the time-integration scheme.
type Integrator int

const (
	SemiImplicitEuler Integrator = iota
	VelocityVerlet
	RK4
)

func (i Integrator) String() string {
	switch i {
	case SemiImplicitEuler:
		return "semiImplicitEuler"
	case VelocityVerlet:
		return "velocityVerlet"
	case RK4:
		return "rk4"
	default:
		return "unknown"
	}
}

// CollisionMode selects how contact events are resolved.
type CollisionMode int

const (
	Ignore CollisionMode = iota
	Elastic
	InelasticMerge
)

func (m CollisionMode) String() string {
	switch m {
	case Ignore:
		return "ignore"
	case Elastic:
		return "elastic"
	case InelasticMerge:
		return "inelasticMerge"
	default:
		return "unknown"
	}
}

// DtPolicy selects whether the step size is fixed or speed/distance
// adaptive.
type DtPolicy int

const (
	Fixed DtPolicy = iota
	Adaptive
)

func (p DtPolicy) String() string {
	if p == Adaptive {
		return "adaptive"
	}
	return "fixed"
}

// SolverMode selects the gravity force solver.
type SolverMode int

const (
	Pairwise SolverMode = iota
	BarnesHut
	Auto
)

func (s SolverMode) String() string {
	switch s {
	case Pairwise:
		return "pairwise"
	case BarnesHut:
		return "barnesHut"
	case Auto:
		return "auto"
	default:
		return "unknown"
	}
}

// EngineConfig is the engine's parameter block, validated on every
// construction and on every SetConfig call.
type EngineConfig struct {
	GravityConstant      float64
	SofteningEpsilon     float64
	Dt                   float64
	DtPolicy             DtPolicy
	Integrator           Integrator
	CollisionMode        CollisionMode
	Deterministic        bool
	SolverMode           SolverMode
	BarnesHutTheta       float64
	BarnesHutThreshold   int
}

// Default returns the engine's default configuration: a gravity
// constant roughly matching physical units, velocity-Verlet
// integration, inelastic merging, deterministic fixed stepping, and an
// Auto solver with theta=0.6 and threshold=256.
func Default() EngineConfig {
	return EngineConfig{
		GravityConstant:    6.67430e-11,
		SofteningEpsilon:   1e-3,
		Dt:                 1.0,
		DtPolicy:           Fixed,
		Integrator:         VelocityVerlet,
		CollisionMode:      InelasticMerge,
		Deterministic:      true,
		SolverMode:         Auto,
		BarnesHutTheta:     0.6,
		BarnesHutThreshold: 256,
	}
}

func isFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}

// Validate reports an *engineerr.Error of kind InvalidConfig if any
// invariant is violated.
func (c EngineConfig) Validate() error {
	if !isFinite(c.GravityConstant) || c.GravityConstant <= 0 {
		return engineerr.New(engineerr.InvalidConfig, "gravityConstant must be finite and > 0")
	}
	if !isFinite(c.SofteningEpsilon) || c.SofteningEpsilon < 0 {
		return engineerr.New(engineerr.InvalidConfig, "softeningEpsilon must be finite and >= 0")
	}
	if !isFinite(c.Dt) || c.Dt <= 0 {
		return engineerr.New(engineerr.InvalidConfig, "dt must be finite and > 0")
	}
	if c.Deterministic && c.DtPolicy == Adaptive {
		return engineerr.New(engineerr.InvalidConfig, "adaptive dt is not allowed in deterministic mode")
	}
	if !isFinite(c.BarnesHutTheta) || c.BarnesHutTheta <= 0 || c.BarnesHutTheta > 2 {
		return engineerr.New(engineerr.InvalidConfig, "barnesHutTheta must be finite and in (0, 2]")
	}
	if c.BarnesHutThreshold < 1 {
		return engineerr.New(engineerr.InvalidConfig, "barnesHutThreshold must be >= 1")
	}
	return nil
}

// StableHash returns a 16-hex-digit digest of every field that affects
// simulation outcome. It is computed with xxhash, a fixed non-random
// algorithm, so equal configurations hash equal across processes and
// configurations differing only in a float's bit pattern hash
// differently.
func (c EngineConfig) StableHash() string {
	var buf [80]byte
	n := 0
	putUint64 := func(v uint64) {
		for i := 0; i < 8; i++ {
			buf[n] = byte(v >> (8 * i))
			n++
		}
	}

	h := xxhash.New()
	putUint64(uint64(c.Integrator))
	putUint64(uint64(c.CollisionMode))
	putUint64(uint64(c.DtPolicy))
	if c.Deterministic {
		putUint64(1)
	} else {
		putUint64(0)
	}
	putUint64(uint64(c.SolverMode))
	putUint64(uint64(c.BarnesHutThreshold))
	putUint64(math.Float64bits(c.GravityConstant))
	putUint64(math.Float64bits(c.SofteningEpsilon))
	putUint64(math.Float64bits(c.Dt))
	putUint64(math.Float64bits(c.BarnesHutTheta))
	_, _ = h.Write(buf[:n])

	return fmt.Sprintf("%016x", h.Sum64())
}
