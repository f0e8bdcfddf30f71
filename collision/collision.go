// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package collision implements the engine's contact resolution stage:
// elastic impulse with positional de-penetration, and perfectly
// inelastic merge with mass-weighted combination.
package collision

import (
	"math"

	"github.com/landxcape/nbody-sim-core/body"
	"github.com/landxcape/nbody-sim-core/config"
	"github.com/landxcape/nbody-sim-core/vector"
)

// Stats reports how many contact events and merges a Resolve call
// produced.
type Stats struct {
	CollisionEvents int
	MergeEvents     int
}

// Resolve iterates ordered pairs (i<j) over the current body storage
// and resolves every colliding pair according to cfg.CollisionMode. A
// body flipped to not-alive during the pass (by a merge) is skipped for
// the remainder of the pass. When mode is InelasticMerge, the returned
// slice is compacted to discard not-alive bodies, preserving the
// relative order of survivors; for other modes the input slice is
// returned unchanged (still sharing storage with bodies).
func Resolve(bodies []*body.Body, cfg config.EngineConfig) ([]*body.Body, Stats) {
	if cfg.CollisionMode == config.Ignore {
		return bodies, Stats{}
	}

	var stats Stats
	count := len(bodies)

	for i := 0; i < count; i++ {
		bi := bodies[i]
		if !bi.Alive {
			continue
		}
		for j := i + 1; j < count; j++ {
			bj := bodies[j]
			if !bj.Alive {
				continue
			}

			delta := bj.Position.Sub(bi.Position)
			distance := delta.Length()
			collisionDistance := bi.Radius + bj.Radius
			if distance > collisionDistance {
				continue
			}

			stats.CollisionEvents++

			switch cfg.CollisionMode {
			case config.Elastic:
				applyElastic(bi, bj, delta, distance, collisionDistance)
			case config.InelasticMerge:
				applyMerge(bi, bj)
				stats.MergeEvents++
			}
		}
	}

	if cfg.CollisionMode == config.InelasticMerge {
		bodies = compact(bodies)
	}
	return bodies, stats
}

func applyElastic(first, second *body.Body, delta vector.Vec2, distance, collisionDistance float64) {
	normal := delta.Normalize(vector.New(1, 0))

	relativeVelocity := second.Velocity.Sub(first.Velocity)
	velAlongNormal := relativeVelocity.Dot(normal)

	if velAlongNormal <= 0 {
		const restitution = 1.0
		inverseMassSum := 1/first.Mass + 1/second.Mass
		if inverseMassSum > 0 {
			impulseScalar := -(1 + restitution) * velAlongNormal / inverseMassSum
			impulse := normal.Scale(impulseScalar)
			first.Velocity = first.Velocity.Sub(impulse.Scale(1 / first.Mass))
			second.Velocity = second.Velocity.Add(impulse.Scale(1 / second.Mass))
		}
	}

	overlap := math.Max(collisionDistance-distance, 0)
	if overlap > 0 {
		correction := normal.Scale(0.5*overlap + 1e-9)
		first.Position = first.Position.Sub(correction)
		second.Position = second.Position.Add(correction)
	}
}

// applyMerge combines second into first (the lower-indexed slot) with
// mass-weighted position and velocity and an area-additive radius, then
// marks second not-alive.
func applyMerge(first, second *body.Body) {
	totalMass := first.Mass + second.Mass
	if totalMass <= 0 {
		return
	}

	mergedPosition := first.Position.Scale(first.Mass).Add(second.Position.Scale(second.Mass)).Div(totalMass)
	mergedVelocity := first.Velocity.Scale(first.Mass).Add(second.Velocity.Scale(second.Mass)).Div(totalMass)
	mergedRadius := math.Sqrt(first.Radius*first.Radius + second.Radius*second.Radius)

	first.Mass = totalMass
	first.Position = mergedPosition
	first.Velocity = mergedVelocity
	first.Radius = mergedRadius

	second.Alive = false
}

func compact(bodies []*body.Body) []*body.Body {
	survivors := make([]*body.Body, 0, len(bodies))
	for _, b := range bodies {
		if b.Alive {
			survivors = append(survivors, b)
		}
	}
	return survivors
}
