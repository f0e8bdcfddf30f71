// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package integrator implements the engine's three time-integration
// schemes (semi-implicit Euler, velocity-Verlet, classical RK4) and the
// adaptive step-size policy, each expressed in terms of package solver.
package integrator

import (
	"math"

	"github.com/landxcape/nbody-sim-core/body"
	"github.com/landxcape/nbody-sim-core/config"
	"github.com/landxcape/nbody-sim-core/engineerr"
	"github.com/landxcape/nbody-sim-core/solver"
	"github.com/landxcape/nbody-sim-core/vector"
)

// Report summarizes one integration call.
type Report struct {
	UsedBarnesHut bool
	DtUsed        float64
	DtClamped     bool
}

// Step advances every alive body by one tick according to cfg's
// integrator and dt policy. Dead bodies are presented to the solver at
// their frozen positions (they contribute no mass/force because the
// solver filters on Alive) but are never updated. It returns
// *engineerr.Error of kind NumericalInstability if any updated body's
// position or velocity becomes non-finite.
func Step(bodies []*body.Body, cfg config.EngineConfig) (Report, error) {
	dt, clamped := effectiveDt(bodies, cfg)

	var usedBarnesHut bool
	var err error

	switch cfg.Integrator {
	case config.SemiImplicitEuler:
		usedBarnesHut, err = semiImplicitEuler(bodies, cfg, dt)
	case config.RK4:
		usedBarnesHut, err = rk4(bodies, cfg, dt)
	default:
		usedBarnesHut, err = velocityVerlet(bodies, cfg, dt)
	}

	if err != nil {
		return Report{}, err
	}
	return Report{UsedBarnesHut: usedBarnesHut, DtUsed: dt, DtClamped: clamped}, nil
}

// EffectiveDt implements the adaptive dt policy: when cfg.DtPolicy is
// Fixed, the configured dt is always used. When Adaptive, it is
// clamped to 5% of the minimum alive pairwise distance over the
// maximum alive speed, bounded to [0.05*dt, dt]; if that quantity is
// undefined (no two distinct alive bodies, or every alive body is at
// rest), the configured dt is returned unchanged.
func EffectiveDt(bodies []*body.Body, cfg config.EngineConfig) float64 {
	dt, _ := effectiveDt(bodies, cfg)
	return dt
}

// effectiveDt is EffectiveDt's implementation, additionally reporting
// whether the raw candidate step needed clamping to the [0.05*dt, dt]
// band — surfaced to callers as a StepSummary warning.
func effectiveDt(bodies []*body.Body, cfg config.EngineConfig) (float64, bool) {
	if cfg.DtPolicy != config.Adaptive {
		return cfg.Dt, false
	}

	vMax := 0.0
	positions := make([]vector.Vec2, 0, len(bodies))
	for _, b := range bodies {
		if !b.Alive {
			continue
		}
		if s := b.Velocity.Length(); s > vMax {
			vMax = s
		}
		positions = append(positions, b.Position)
	}

	dMin := math.Inf(1)
	for i := 0; i < len(positions); i++ {
		for j := i + 1; j < len(positions); j++ {
			d := positions[i].Sub(positions[j]).Length()
			if d > 0 && d < dMin {
				dMin = d
			}
		}
	}

	if math.IsInf(dMin, 1) || vMax == 0 {
		return cfg.Dt, false
	}

	raw := 0.05 * dMin / vMax
	lower := 0.05 * cfg.Dt
	clamped := clamp(raw, lower, cfg.Dt)
	return clamped, clamped != raw
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func currentPositions(bodies []*body.Body) []vector.Vec2 {
	out := make([]vector.Vec2, len(bodies))
	for i, b := range bodies {
		out[i] = b.Position
	}
	return out
}

func currentVelocities(bodies []*body.Body) []vector.Vec2 {
	out := make([]vector.Vec2, len(bodies))
	for i, b := range bodies {
		out[i] = b.Velocity
	}
	return out
}

func checkFinite(b *body.Body) error {
	if !b.Position.IsFinite() || !b.Velocity.IsFinite() {
		return engineerr.New(engineerr.NumericalInstability, "body %q produced a non-finite state", b.ID)
	}
	return nil
}

func semiImplicitEuler(bodies []*body.Body, cfg config.EngineConfig, dt float64) (bool, error) {
	accs, usedBarnesHut := solver.Accelerations(bodies, currentPositions(bodies), cfg)

	for i, b := range bodies {
		if !b.Alive {
			continue
		}
		b.Velocity = b.Velocity.Add(accs[i].Scale(dt))
		b.Position = b.Position.Add(b.Velocity.Scale(dt))
		if err := checkFinite(b); err != nil {
			return usedBarnesHut, err
		}
	}
	return usedBarnesHut, nil
}

func velocityVerlet(bodies []*body.Body, cfg config.EngineConfig, dt float64) (bool, error) {
	p0 := currentPositions(bodies)
	v0 := currentVelocities(bodies)

	a0, usedBH0 := solver.Accelerations(bodies, p0, cfg)

	p1 := make([]vector.Vec2, len(bodies))
	for i, b := range bodies {
		if !b.Alive {
			p1[i] = p0[i]
			continue
		}
		p1[i] = p0[i].Add(v0[i].Scale(dt)).Add(a0[i].Scale(0.5 * dt * dt))
	}

	a1, usedBH1 := solver.Accelerations(bodies, p1, cfg)

	for i, b := range bodies {
		if !b.Alive {
			continue
		}
		b.Position = p1[i]
		b.Velocity = v0[i].Add(a0[i].Add(a1[i]).Scale(0.5 * dt))
		if err := checkFinite(b); err != nil {
			return usedBH0 || usedBH1, err
		}
	}
	return usedBH0 || usedBH1, nil
}

func rk4(bodies []*body.Body, cfg config.EngineConfig, dt float64) (bool, error) {
	p0 := currentPositions(bodies)
	v0 := currentVelocities(bodies)
	n := len(bodies)

	k1v, usedBH1 := solver.Accelerations(bodies, p0, cfg)
	k1p := v0

	p2 := make([]vector.Vec2, n)
	v2 := make([]vector.Vec2, n)
	for i, b := range bodies {
		if !b.Alive {
			p2[i], v2[i] = p0[i], v0[i]
			continue
		}
		p2[i] = p0[i].Add(k1p[i].Scale(0.5 * dt))
		v2[i] = v0[i].Add(k1v[i].Scale(0.5 * dt))
	}
	k2v, usedBH2 := solver.Accelerations(bodies, p2, cfg)
	k2p := v2

	p3 := make([]vector.Vec2, n)
	v3 := make([]vector.Vec2, n)
	for i, b := range bodies {
		if !b.Alive {
			p3[i], v3[i] = p0[i], v0[i]
			continue
		}
		p3[i] = p0[i].Add(k2p[i].Scale(0.5 * dt))
		v3[i] = v0[i].Add(k2v[i].Scale(0.5 * dt))
	}
	k3v, usedBH3 := solver.Accelerations(bodies, p3, cfg)
	k3p := v3

	p4 := make([]vector.Vec2, n)
	v4 := make([]vector.Vec2, n)
	for i, b := range bodies {
		if !b.Alive {
			p4[i], v4[i] = p0[i], v0[i]
			continue
		}
		p4[i] = p0[i].Add(k3p[i].Scale(dt))
		v4[i] = v0[i].Add(k3v[i].Scale(dt))
	}
	k4v, usedBH4 := solver.Accelerations(bodies, p4, cfg)
	k4p := v4

	for i, b := range bodies {
		if !b.Alive {
			continue
		}
		posSum := k1p[i].Add(k2p[i].Scale(2)).Add(k3p[i].Scale(2)).Add(k4p[i])
		velSum := k1v[i].Add(k2v[i].Scale(2)).Add(k3v[i].Scale(2)).Add(k4v[i])

		b.Position = p0[i].Add(posSum.Scale(dt / 6))
		b.Velocity = v0[i].Add(velSum.Scale(dt / 6))
		if err := checkFinite(b); err != nil {
			return usedBH1 || usedBH2 || usedBH3 || usedBH4, err
		}
	}
	return usedBH1 || usedBH2 || usedBH3 || usedBH4, nil
}
