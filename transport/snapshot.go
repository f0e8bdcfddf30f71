package transport

import "github.com/landxcape/nbody-sim-core/engine"

// SnapshotDoc is the wire shape of engine.Snapshot. It carries a config
// digest rather than the configuration itself; a host restoring a
// snapshot is expected to already hold the matching configuration.
type SnapshotDoc struct {
	SchemaVersion string    `yaml:"schemaVersion"`
	CreatedAt     string    `yaml:"createdAt"`
	Tick          uint64    `yaml:"tick"`
	SimTime       float64   `yaml:"simTime"`
	ConfigHash    string    `yaml:"configHash"`
	Bodies        []BodyDoc `yaml:"bodies"`
}

// FromSnapshot converts a core Snapshot into its wire document.
func FromSnapshot(s engine.Snapshot) SnapshotDoc {
	return SnapshotDoc{
		SchemaVersion: s.SchemaVersion,
		CreatedAt:     s.CreatedAt,
		Tick:          s.Tick,
		SimTime:       s.SimTime,
		ConfigHash:    s.ConfigHash,
		Bodies:        FromBodies(s.Bodies),
	}
}

// ToSnapshot converts a wire document into a core Snapshot.
func (d SnapshotDoc) ToSnapshot() engine.Snapshot {
	return engine.Snapshot{
		SchemaVersion: d.SchemaVersion,
		CreatedAt:     d.CreatedAt,
		Tick:          d.Tick,
		SimTime:       d.SimTime,
		ConfigHash:    d.ConfigHash,
		Bodies:        ToBodies(d.Bodies),
	}
}
