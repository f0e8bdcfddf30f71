// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package solver implements the gravity force kernels: an exact
// pairwise O(N^2) solver and an approximate Barnes-Hut O(N log N)
// solver, plus the mode selector between them.
package solver

import (
	"github.com/landxcape/nbody-sim-core/body"
	"github.com/landxcape/nbody-sim-core/config"
	"github.com/landxcape/nbody-sim-core/vector"
)

// Accelerations computes the gravitational acceleration on every body
// given a caller-supplied positions slice (index-aligned with bodies,
// which may differ from body.Position to support Verlet/RK4
// sub-stages). Dead bodies receive a zero acceleration and contribute
// no mass or force. It returns the per-body accelerations and whether
// the Barnes-Hut solver was used for this call.
func Accelerations(bodies []*body.Body, positions []vector.Vec2, cfg config.EngineConfig) ([]vector.Vec2, bool) {
	accs := make([]vector.Vec2, len(bodies))

	aliveIdx := make([]int, 0, len(bodies))
	for i, b := range bodies {
		if b.Alive {
			aliveIdx = append(aliveIdx, i)
		}
	}

	useBarnesHut := selectMode(cfg.SolverMode, len(aliveIdx), cfg.BarnesHutThreshold)

	if !useBarnesHut {
		pairwise(bodies, positions, aliveIdx, cfg.GravityConstant, cfg.SofteningEpsilon, accs)
		return accs, false
	}

	if len(aliveIdx) < 2 {
		// Tree if >= 2 alive bodies; otherwise trivially zero.
		return accs, true
	}
	barnesHut(bodies, positions, aliveIdx, cfg.GravityConstant, cfg.SofteningEpsilon, cfg.BarnesHutTheta, accs)
	return accs, true
}

func selectMode(mode config.SolverMode, aliveCount, threshold int) bool {
	switch mode {
	case config.Pairwise:
		return false
	case config.BarnesHut:
		return true
	case config.Auto:
		return aliveCount >= threshold
	default:
		return false
	}
}
