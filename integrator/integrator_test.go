package integrator

import (
	"math"
	"testing"

	"github.com/landxcape/nbody-sim-core/body"
	"github.com/landxcape/nbody-sim-core/config"
	"github.com/landxcape/nbody-sim-core/vector"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func equalMassPair() []*body.Body {
	return []*body.Body{
		body.New("a", 1, 0.01, vector.New(-1, 0), vector.Zero),
		body.New("b", 1, 0.01, vector.New(1, 0), vector.Zero),
	}
}

// Two equal masses, zero velocity, +-1 on x-axis,
// G=1, dt=0.01, Verlet, 50 steps -> final separation < initial 2.0.
func TestSeedScenarioA_VerletAttracts(t *testing.T) {
	bodies := equalMassPair()
	cfg := config.Default()
	cfg.GravityConstant = 1
	cfg.SofteningEpsilon = 1e-5
	cfg.Dt = 0.01
	cfg.Integrator = config.VelocityVerlet
	cfg.CollisionMode = config.Ignore

	for i := 0; i < 50; i++ {
		_, err := Step(bodies, cfg)
		require.NoError(t, err)
	}

	sep := bodies[0].Position.Sub(bodies[1].Position).Length()
	assert.Less(t, sep, 2.0)
}

func TestEffectiveDtFixedPolicy(t *testing.T) {
	bodies := equalMassPair()
	cfg := config.Default()
	cfg.Dt = 0.25
	cfg.DtPolicy = config.Fixed
	assert.Equal(t, 0.25, EffectiveDt(bodies, cfg))
}

func TestEffectiveDtAdaptiveClamps(t *testing.T) {
	bodies := []*body.Body{
		body.New("a", 1, 0.01, vector.New(0, 0), vector.New(1000, 0)),
		body.New("b", 1, 0.01, vector.New(0.001, 0), vector.Zero),
	}
	cfg := config.Default()
	cfg.Dt = 1.0
	cfg.DtPolicy = config.Adaptive
	cfg.Deterministic = false

	dt := EffectiveDt(bodies, cfg)
	assert.GreaterOrEqual(t, dt, 0.05*cfg.Dt)
	assert.LessOrEqual(t, dt, cfg.Dt)
}

func TestEffectiveDtAdaptiveFallsBackWhenAtRest(t *testing.T) {
	bodies := equalMassPair()
	cfg := config.Default()
	cfg.Dt = 0.5
	cfg.DtPolicy = config.Adaptive
	cfg.Deterministic = false

	assert.Equal(t, 0.5, EffectiveDt(bodies, cfg))
}

func TestStepSkipsDeadBodiesButPresentsThemToSolver(t *testing.T) {
	bodies := equalMassPair()
	bodies[1].Alive = false
	frozen := bodies[1].Position

	cfg := config.Default()
	cfg.Integrator = config.SemiImplicitEuler
	cfg.CollisionMode = config.Ignore
	cfg.GravityConstant = 1

	_, err := Step(bodies, cfg)
	require.NoError(t, err)

	assert.Equal(t, frozen, bodies[1].Position)
	assert.Equal(t, vector.Zero, bodies[1].Velocity)
}

func TestStepReportsNumericalInstability(t *testing.T) {
	bodies := []*body.Body{
		body.New("a", 1e300, 1e-12, vector.Zero, vector.Zero),
		body.New("b", 1e300, 1e-12, vector.New(1e-12, 0), vector.Zero),
	}
	cfg := config.Default()
	cfg.Integrator = config.SemiImplicitEuler
	cfg.CollisionMode = config.Ignore
	cfg.GravityConstant = 1
	cfg.SofteningEpsilon = 0
	cfg.Dt = 1e10

	_, err := Step(bodies, cfg)
	require.Error(t, err)
}

// Escape-velocity sign of specific orbital energy.
func TestSeedScenarioE_EscapeVelocitySign(t *testing.T) {
	const gm = 100.0
	const r = 10.0
	vCirc := math.Sqrt(gm / r)
	vEsc := math.Sqrt(2*gm) / math.Sqrt(r)

	specificEnergy := func(speed float64) float64 {
		return 0.5*speed*speed - gm/r
	}

	assert.Less(t, specificEnergy(0.99*vEsc), 0.0)
	assert.Greater(t, specificEnergy(1.01*vEsc), 0.0)
	assert.Less(t, vCirc, vEsc)
}

// Velocity-Verlet drifts less than semi-implicit
// Euler on a circular orbit over many steps.
func TestVerletDriftsLessThanEulerOnCircularOrbit(t *testing.T) {
	const gm = 1.0
	const r = 1.0
	speed := math.Sqrt(gm / r)

	newOrbit := func(integ config.Integrator) []*body.Body {
		return []*body.Body{
			body.New("star", gm, 1e-6, vector.Zero, vector.Zero),
			body.New("planet", 1e-9, 1e-9, vector.New(r, 0), vector.New(0, speed)),
		}
	}

	energyDrift := func(integ config.Integrator, steps int, dt float64) float64 {
		bodies := newOrbit(integ)
		cfg := config.Default()
		cfg.Integrator = integ
		cfg.CollisionMode = config.Ignore
		cfg.GravityConstant = gm
		cfg.SofteningEpsilon = 1e-6
		cfg.Dt = dt

		initial := orbitalEnergy(bodies, gm)
		for i := 0; i < steps; i++ {
			_, err := Step(bodies, cfg)
			require.NoError(t, err)
		}
		final := orbitalEnergy(bodies, gm)
		return math.Abs((final - initial) / initial)
	}

	eulerDrift := energyDrift(config.SemiImplicitEuler, 20000, 1e-3)
	verletDrift := energyDrift(config.VelocityVerlet, 20000, 1e-3)

	assert.Less(t, verletDrift, eulerDrift)
}

func orbitalEnergy(bodies []*body.Body, gm float64) float64 {
	planet := bodies[1]
	speed := planet.Velocity.Length()
	dist := planet.Position.Sub(bodies[0].Position).Length()
	return 0.5*speed*speed - gm/dist
}
