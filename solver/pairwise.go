// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package solver

import (
	"math"

	"github.com/landxcape/nbody-sim-core/body"
	"github.com/landxcape/nbody-sim-core/vector"
)

// pairwise accumulates the exact O(N^2) gravitational acceleration for
// every ordered pair (i<j) of alive bodies, using Newton's third law to
// halve the work. aliveIdx iterates in stored index order so that
// floating-point summation is bit-identical across identical runs.
func pairwise(bodies []*body.Body, positions []vector.Vec2, aliveIdx []int, g, epsilon float64, accs []vector.Vec2) {
	epsSq := epsilon * epsilon

	for a := 0; a < len(aliveIdx); a++ {
		i := aliveIdx[a]
		for b := a + 1; b < len(aliveIdx); b++ {
			j := aliveIdx[b]

			delta := positions[j].Sub(positions[i])
			dSq := delta.LengthSq() + epsSq
			invD3 := math.Pow(dSq, -1.5)

			accs[i] = accs[i].Add(delta.Scale(g * invD3 * bodies[j].Mass))
			accs[j] = accs[j].Sub(delta.Scale(g * invD3 * bodies[i].Mass))
		}
	}
}
