package solver

import (
	"math"
	"testing"

	"github.com/landxcape/nbody-sim-core/body"
	"github.com/landxcape/nbody-sim-core/config"
	"github.com/landxcape/nbody-sim-core/vector"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func twoBodySystem() []*body.Body {
	return []*body.Body{
		body.New("a", 10, 1, vector.New(-1, 0), vector.Zero),
		body.New("b", 10, 1, vector.New(1, 0), vector.Zero),
	}
}

func positionsOf(bodies []*body.Body) []vector.Vec2 {
	out := make([]vector.Vec2, len(bodies))
	for i, b := range bodies {
		out[i] = b.Position
	}
	return out
}

func TestPairwiseNewtonThirdLaw(t *testing.T) {
	bodies := twoBodySystem()
	cfg := config.Default()
	cfg.SolverMode = config.Pairwise
	cfg.GravityConstant = 1
	cfg.SofteningEpsilon = 0

	accs, usedBH := Accelerations(bodies, positionsOf(bodies), cfg)
	require.False(t, usedBH)

	assert.InDelta(t, accs[0].X, -accs[1].X, 1e-12)
	assert.InDelta(t, accs[0].Y, -accs[1].Y, 1e-12)
	assert.Greater(t, accs[0].X, 0.0) // a is pulled toward b (positive x)
	assert.Less(t, accs[1].X, 0.0)
}

func TestSelectModeAuto(t *testing.T) {
	assert.True(t, selectMode(config.Auto, 5, 5))
	assert.True(t, selectMode(config.Auto, 10, 5))
	assert.False(t, selectMode(config.Auto, 4, 5))
}

func TestSelectModeExplicit(t *testing.T) {
	assert.False(t, selectMode(config.Pairwise, 1000, 1))
	assert.True(t, selectMode(config.BarnesHut, 1, 1000))
}

func TestBarnesHutTrivialBelowTwoAlive(t *testing.T) {
	bodies := []*body.Body{body.New("a", 1, 1, vector.Zero, vector.Zero)}
	cfg := config.Default()
	cfg.SolverMode = config.BarnesHut

	accs, usedBH := Accelerations(bodies, positionsOf(bodies), cfg)
	require.True(t, usedBH)
	assert.Equal(t, vector.Zero, accs[0])
}

func TestBarnesHutAgreesWithPairwiseOnDisk(t *testing.T) {
	const n = 121
	bodies := make([]*body.Body, 0, n)
	bodies = append(bodies, body.New("star", 1000, 5, vector.Zero, vector.Zero))
	for i := 0; i < n-1; i++ {
		r := 20.0 + float64(i)*(16.0/float64(n-2))
		theta := float64(i) * 2.61803399 // irrational-ish spread
		pos := vector.New(r*math.Cos(theta), r*math.Sin(theta))
		speed := math.Sqrt(1000.0 / r)
		// circular velocity, perpendicular to radius
		vel := vector.New(-speed*math.Sin(theta), speed*math.Cos(theta))
		bodies = append(bodies, body.New("p", 0.001, 0.1, pos, vel))
	}

	cfgPairwise := config.Default()
	cfgPairwise.SolverMode = config.Pairwise
	cfgPairwise.GravityConstant = 1
	cfgPairwise.SofteningEpsilon = 1e-3

	cfgBH := cfgPairwise
	cfgBH.SolverMode = config.BarnesHut
	cfgBH.BarnesHutTheta = 0.6

	accsPW, _ := Accelerations(bodies, positionsOf(bodies), cfgPairwise)
	accsBH, _ := Accelerations(bodies, positionsOf(bodies), cfgBH)

	for i := range bodies {
		assert.InDelta(t, accsPW[i].X, accsBH[i].X, 5e-2)
		assert.InDelta(t, accsPW[i].Y, accsBH[i].Y, 5e-2)
	}
}
