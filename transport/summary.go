package transport

import "github.com/landxcape/nbody-sim-core/engine"

// StepSummaryDoc is the wire shape of engine.StepSummary.
type StepSummaryDoc struct {
	TicksApplied       uint32   `yaml:"ticksApplied"`
	FinalTick          uint64   `yaml:"finalTick"`
	SimTime            float64  `yaml:"simTime"`
	CollisionEvents    uint64   `yaml:"collisionEvents"`
	MergedEvents       uint64   `yaml:"mergedEvents"`
	Warnings           []string `yaml:"warnings,omitempty"`
	PairwiseTicks      uint32   `yaml:"pairwiseTicks"`
	BarnesHutTicks     uint32   `yaml:"barnesHutTicks"`
	StepWallTimeMicros uint64   `yaml:"stepWallTimeMicros"`
	AverageTickMicros  uint64   `yaml:"averageTickMicros"`
	MaxBodyCount       int      `yaml:"maxBodyCount"`
	LastSolverMode     string   `yaml:"lastSolverMode"`
}

// FromStepSummary converts a core StepSummary into its wire document.
func FromStepSummary(s engine.StepSummary) StepSummaryDoc {
	return StepSummaryDoc{
		TicksApplied:       s.TicksApplied,
		FinalTick:          s.FinalTick,
		SimTime:            s.SimTime,
		CollisionEvents:    s.CollisionEvents,
		MergedEvents:       s.MergedEvents,
		Warnings:           s.Warnings,
		PairwiseTicks:      s.PairwiseTicks,
		BarnesHutTicks:     s.BarnesHutTicks,
		StepWallTimeMicros: s.StepWallTimeMicros,
		AverageTickMicros:  s.AverageTickMicros,
		MaxBodyCount:       s.MaxBodyCount,
		LastSolverMode:     s.LastSolverMode,
	}
}

// ToStepSummary converts a wire document into a core StepSummary.
func (d StepSummaryDoc) ToStepSummary() engine.StepSummary {
	return engine.StepSummary{
		TicksApplied:       d.TicksApplied,
		FinalTick:          d.FinalTick,
		SimTime:            d.SimTime,
		CollisionEvents:    d.CollisionEvents,
		MergedEvents:       d.MergedEvents,
		Warnings:           d.Warnings,
		PairwiseTicks:      d.PairwiseTicks,
		BarnesHutTicks:     d.BarnesHutTicks,
		StepWallTimeMicros: d.StepWallTimeMicros,
		AverageTickMicros:  d.AverageTickMicros,
		MaxBodyCount:       d.MaxBodyCount,
		LastSolverMode:     d.LastSolverMode,
	}
}
