package transport

import "gopkg.in/yaml.v2"

// Marshal encodes any wire document (EngineConfigDoc, ScenarioDoc,
// SnapshotDoc, StepSummaryDoc, BodyEditDoc, ...) to its yaml.v2 text
// form.
func Marshal(doc interface{}) ([]byte, error) {
	return yaml.Marshal(doc)
}

// Unmarshal decodes yaml.v2 text into the wire document pointed to by
// out.
func Unmarshal(data []byte, out interface{}) error {
	return yaml.Unmarshal(data, out)
}
