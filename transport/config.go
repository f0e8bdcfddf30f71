package transport

import (
	"github.com/landxcape/nbody-sim-core/config"
)

// EngineConfigDoc is the wire shape of config.EngineConfig. Solver
// fields default to Auto/0.6/256 when absent from the document, so
// older documents written before solver selection existed still load.
type EngineConfigDoc struct {
	GravityConstant    float64 `yaml:"gravityConstant"`
	SofteningEpsilon   float64 `yaml:"softeningEpsilon"`
	Dt                 float64 `yaml:"dt"`
	DtPolicy           string  `yaml:"dtPolicy"`
	Integrator         string  `yaml:"integrator"`
	CollisionMode      string  `yaml:"collisionMode"`
	Deterministic      bool    `yaml:"deterministic"`
	SolverMode         string  `yaml:"solverMode,omitempty"`
	BarnesHutTheta     float64 `yaml:"barnesHutTheta,omitempty"`
	BarnesHutThreshold int     `yaml:"barnesHutThreshold,omitempty"`
}

const (
	defaultSolverMode         = "auto"
	defaultBarnesHutTheta     = 0.6
	defaultBarnesHutThreshold = 256
)

// FromConfig converts a core EngineConfig into its wire document.
func FromConfig(c config.EngineConfig) EngineConfigDoc {
	return EngineConfigDoc{
		GravityConstant:    c.GravityConstant,
		SofteningEpsilon:   c.SofteningEpsilon,
		Dt:                 c.Dt,
		DtPolicy:           dtPolicyToString(c.DtPolicy),
		Integrator:         c.Integrator.String(),
		CollisionMode:      c.CollisionMode.String(),
		Deterministic:      c.Deterministic,
		SolverMode:         c.SolverMode.String(),
		BarnesHutTheta:     c.BarnesHutTheta,
		BarnesHutThreshold: c.BarnesHutThreshold,
	}
}

// ToConfig converts a wire document into a core EngineConfig, applying
// the Auto/0.6/256 defaults for absent solver fields.
func (d EngineConfigDoc) ToConfig() config.EngineConfig {
	theta := d.BarnesHutTheta
	if theta == 0 {
		theta = defaultBarnesHutTheta
	}
	threshold := d.BarnesHutThreshold
	if threshold == 0 {
		threshold = defaultBarnesHutThreshold
	}
	solverMode := d.SolverMode
	if solverMode == "" {
		solverMode = defaultSolverMode
	}

	return config.EngineConfig{
		GravityConstant:    d.GravityConstant,
		SofteningEpsilon:   d.SofteningEpsilon,
		Dt:                 d.Dt,
		DtPolicy:           dtPolicyFromString(d.DtPolicy),
		Integrator:         integratorFromString(d.Integrator),
		CollisionMode:      collisionModeFromString(d.CollisionMode),
		Deterministic:      d.Deterministic,
		SolverMode:         solverModeFromString(solverMode),
		BarnesHutTheta:     theta,
		BarnesHutThreshold: threshold,
	}
}

func dtPolicyToString(p config.DtPolicy) string {
	if p == config.Adaptive {
		return "adaptive"
	}
	return "fixed"
}

func dtPolicyFromString(s string) config.DtPolicy {
	if s == "adaptive" {
		return config.Adaptive
	}
	return config.Fixed
}

func integratorFromString(s string) config.Integrator {
	switch s {
	case "rk4":
		return config.RK4
	case "velocityVerlet":
		return config.VelocityVerlet
	default:
		return config.SemiImplicitEuler
	}
}

func collisionModeFromString(s string) config.CollisionMode {
	switch s {
	case "elastic":
		return config.Elastic
	case "inelasticMerge":
		return config.InelasticMerge
	default:
		return config.Ignore
	}
}

func solverModeFromString(s string) config.SolverMode {
	switch s {
	case "pairwise":
		return config.Pairwise
	case "barnesHut":
		return config.BarnesHut
	default:
		return config.Auto
	}
}
