package transport

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/landxcape/nbody-sim-core/body"
	"github.com/landxcape/nbody-sim-core/config"
	"github.com/landxcape/nbody-sim-core/engine"
	"github.com/landxcape/nbody-sim-core/vector"
)

func TestEngineConfigDocAppliesDefaultsWhenSolverFieldsAbsent(t *testing.T) {
	doc := EngineConfigDoc{
		GravityConstant:  6.674e-11,
		SofteningEpsilon: 1e-3,
		Dt:               1.0,
		DtPolicy:         "fixed",
		Integrator:       "velocityVerlet",
		CollisionMode:    "inelasticMerge",
		Deterministic:    true,
	}

	cfg := doc.ToConfig()

	assert.Equal(t, config.Auto, cfg.SolverMode)
	assert.Equal(t, 0.6, cfg.BarnesHutTheta)
	assert.Equal(t, 256, cfg.BarnesHutThreshold)
	require.NoError(t, cfg.Validate())
}

func TestEngineConfigDocRoundTripsExplicitSolverFields(t *testing.T) {
	cfg := config.Default()
	cfg.SolverMode = config.Pairwise
	cfg.BarnesHutTheta = 0.9
	cfg.BarnesHutThreshold = 10

	doc := FromConfig(cfg)
	back := doc.ToConfig()

	assert.Equal(t, cfg, back)
}

func TestMarshalUnmarshalScenarioDocPreservesBodies(t *testing.T) {
	scn := engine.Scenario{
		SchemaVersion: "1.0",
		Metadata: engine.ScenarioMetadata{
			Name:      "two-body",
			CreatedAt: "1970-01-01T00:00:00Z",
			Tags:      []string{"seed", "demo"},
		},
		EngineConfig: config.Default(),
		Bodies: []*body.Body{
			body.New("a", 10, 1, vector.New(0, 0), vector.New(0, 0)),
			body.New("b", 5, 1, vector.New(3, 0), vector.New(0, -1)),
		},
	}

	data, err := Marshal(FromScenario(scn))
	require.NoError(t, err)

	var doc ScenarioDoc
	require.NoError(t, Unmarshal(data, &doc))

	back := doc.ToScenario()
	require.Len(t, back.Bodies, 2)
	assert.Equal(t, "a", back.Bodies[0].ID)
	assert.Equal(t, "b", back.Bodies[1].ID)
	assert.Equal(t, 3.0, back.Bodies[1].Position.X)
	assert.Equal(t, []string{"seed", "demo"}, back.Metadata.Tags)
}

func TestBodyEditDocRoundTripsCreateUpdateDelete(t *testing.T) {
	create := engine.Edit{Kind: engine.EditCreate, Create: body.New("c1", 1, 1, vector.Zero, vector.Zero)}
	createBack := FromEdit(create).ToEdit()
	assert.Equal(t, engine.EditCreate, createBack.Kind)
	assert.Equal(t, "c1", createBack.Create.ID)

	mass := 42.0
	update := engine.Edit{Kind: engine.EditUpdate, Update: &engine.BodyUpdate{ID: "c1", Mass: &mass}}
	updateBack := FromEdit(update).ToEdit()
	assert.Equal(t, engine.EditUpdate, updateBack.Kind)
	require.NotNil(t, updateBack.Update.Mass)
	assert.Equal(t, 42.0, *updateBack.Update.Mass)

	del := engine.Edit{Kind: engine.EditDelete, DeleteID: "c1"}
	delBack := FromEdit(del).ToEdit()
	assert.Equal(t, engine.EditDelete, delBack.Kind)
	assert.Equal(t, "c1", delBack.DeleteID)
}

func TestSnapshotDocRoundTrip(t *testing.T) {
	snap := engine.Snapshot{
		SchemaVersion: "1.0",
		CreatedAt:     "1970-01-01T00:00:00Z",
		Tick:          12,
		SimTime:       12.0,
		ConfigHash:    "deadbeefcafef00d",
		Bodies:        []*body.Body{body.New("x", 1, 1, vector.Zero, vector.Zero)},
	}

	data, err := Marshal(FromSnapshot(snap))
	require.NoError(t, err)

	var doc SnapshotDoc
	require.NoError(t, Unmarshal(data, &doc))

	back := doc.ToSnapshot()
	assert.Equal(t, snap.Tick, back.Tick)
	assert.Equal(t, snap.ConfigHash, back.ConfigHash)
	require.Len(t, back.Bodies, 1)
	assert.Equal(t, "x", back.Bodies[0].ID)
}

func TestStepSummaryDocRoundTrip(t *testing.T) {
	summary := engine.StepSummary{
		TicksApplied:   10,
		FinalTick:      10,
		SimTime:        10.0,
		PairwiseTicks:  4,
		BarnesHutTicks: 6,
		LastSolverMode: "barnesHut",
		Warnings:       []string{"body drifted near escape velocity"},
	}

	doc := FromStepSummary(summary)
	back := doc.ToStepSummary()

	assert.Equal(t, summary, back)
}
