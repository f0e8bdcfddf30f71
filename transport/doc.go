// Package transport defines the text-encoded document shapes a host
// embedding this engine would marshal across a foreign-function
// boundary: Body, the tagged BodyEditDoc union, EngineConfig, scenarios,
// snapshots, and step summaries, all with camelCase keys. The core
// engine package never imports transport — it consumes already-parsed
// Go values — so this package only converts between the wire shape and
// the engine/body/config types.
//
// Encoding uses gopkg.in/yaml.v2; yaml.v2 honors struct tags
// verbatim, which is what gives the documents their camelCase keys.
package transport
