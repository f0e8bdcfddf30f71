package transport

import "github.com/landxcape/nbody-sim-core/engine"

// ScenarioMetadataDoc is the wire shape of engine.ScenarioMetadata.
type ScenarioMetadataDoc struct {
	Name        string   `yaml:"name"`
	Description string   `yaml:"description,omitempty"`
	Author      string   `yaml:"author,omitempty"`
	CreatedAt   string   `yaml:"createdAt"`
	Tags        []string `yaml:"tags,omitempty"`
}

// ScenarioDoc is the wire shape of engine.Scenario: a configuration and
// an initial body population, keyed by schema version.
type ScenarioDoc struct {
	SchemaVersion string              `yaml:"schemaVersion"`
	Metadata      ScenarioMetadataDoc `yaml:"metadata"`
	EngineConfig  EngineConfigDoc     `yaml:"engineConfig"`
	Bodies        []BodyDoc           `yaml:"bodies"`
}

// FromScenario converts a core Scenario into its wire document.
func FromScenario(s engine.Scenario) ScenarioDoc {
	return ScenarioDoc{
		SchemaVersion: s.SchemaVersion,
		Metadata: ScenarioMetadataDoc{
			Name:        s.Metadata.Name,
			Description: s.Metadata.Description,
			Author:      s.Metadata.Author,
			CreatedAt:   s.Metadata.CreatedAt,
			Tags:        s.Metadata.Tags,
		},
		EngineConfig: FromConfig(s.EngineConfig),
		Bodies:       FromBodies(s.Bodies),
	}
}

// ToScenario converts a wire document into a core Scenario.
func (d ScenarioDoc) ToScenario() engine.Scenario {
	return engine.Scenario{
		SchemaVersion: d.SchemaVersion,
		Metadata: engine.ScenarioMetadata{
			Name:        d.Metadata.Name,
			Description: d.Metadata.Description,
			Author:      d.Metadata.Author,
			CreatedAt:   d.Metadata.CreatedAt,
			Tags:        d.Metadata.Tags,
		},
		EngineConfig: d.EngineConfig.ToConfig(),
		Bodies:       ToBodies(d.Bodies),
	}
}
