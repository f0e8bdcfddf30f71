package transport

import (
	"github.com/landxcape/nbody-sim-core/body"
	"github.com/landxcape/nbody-sim-core/engine"
	"github.com/landxcape/nbody-sim-core/vector"
)

// Vec2Doc is the wire shape of vector.Vec2.
type Vec2Doc struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

func vecToDoc(v vector.Vec2) Vec2Doc   { return Vec2Doc{X: v.X, Y: v.Y} }
func vecFromDoc(d Vec2Doc) vector.Vec2 { return vector.New(d.X, d.Y) }

// MetadataDoc is the wire shape of body.Metadata; every field is
// optional and opaque to physics.
type MetadataDoc struct {
	Label string `yaml:"label,omitempty"`
	Kind  string `yaml:"kind,omitempty"`
	Color string `yaml:"color,omitempty"`
}

// BodyDoc is the wire shape of body.Body.
type BodyDoc struct {
	ID       string       `yaml:"id"`
	Mass     float64      `yaml:"mass"`
	Radius   float64      `yaml:"radius"`
	Position Vec2Doc      `yaml:"position"`
	Velocity Vec2Doc      `yaml:"velocity"`
	Alive    bool         `yaml:"alive"`
	Metadata *MetadataDoc `yaml:"metadata,omitempty"`
}

// FromBody converts a core Body into its wire document.
func FromBody(b *body.Body) BodyDoc {
	doc := BodyDoc{
		ID:       b.ID,
		Mass:     b.Mass,
		Radius:   b.Radius,
		Position: vecToDoc(b.Position),
		Velocity: vecToDoc(b.Velocity),
		Alive:    b.Alive,
	}
	if b.Metadata != nil {
		doc.Metadata = &MetadataDoc{Label: b.Metadata.Label, Kind: b.Metadata.Kind, Color: b.Metadata.Color}
	}
	return doc
}

// ToBody converts a wire document into a core Body.
func (d BodyDoc) ToBody() *body.Body {
	b := &body.Body{
		ID:       d.ID,
		Mass:     d.Mass,
		Radius:   d.Radius,
		Position: vecFromDoc(d.Position),
		Velocity: vecFromDoc(d.Velocity),
		Alive:    d.Alive,
	}
	if d.Metadata != nil {
		b.Metadata = &body.Metadata{Label: d.Metadata.Label, Kind: d.Metadata.Kind, Color: d.Metadata.Color}
	}
	return b
}

// FromBodies converts a slice of core bodies into wire documents,
// preserving order.
func FromBodies(bodies []*body.Body) []BodyDoc {
	docs := make([]BodyDoc, len(bodies))
	for i, b := range bodies {
		docs[i] = FromBody(b)
	}
	return docs
}

// ToBodies converts wire documents into core bodies, preserving order.
func ToBodies(docs []BodyDoc) []*body.Body {
	out := make([]*body.Body, len(docs))
	for i, d := range docs {
		out[i] = d.ToBody()
	}
	return out
}

// bodyEditKind is the discriminator tag of BodyEditDoc. Encoders rely on
// this explicit field, never on sniffing which optional member is set.
type bodyEditKind string

const (
	editKindCreate bodyEditKind = "create"
	editKindUpdate bodyEditKind = "update"
	editKindDelete bodyEditKind = "delete"
)

// BodyUpdateDoc is the wire shape of a partial body mutation; every
// field besides ID is optional.
type BodyUpdateDoc struct {
	ID       string       `yaml:"id"`
	Mass     *float64     `yaml:"mass,omitempty"`
	Radius   *float64     `yaml:"radius,omitempty"`
	Position *Vec2Doc     `yaml:"position,omitempty"`
	Velocity *Vec2Doc     `yaml:"velocity,omitempty"`
	Alive    *bool        `yaml:"alive,omitempty"`
	Metadata *MetadataDoc `yaml:"metadata,omitempty"`
}

// BodyEditDoc is the tagged-sum wire shape of Create(Body) |
// Update(BodyUpdate) | Delete{id}, discriminated by Kind.
type BodyEditDoc struct {
	Kind   bodyEditKind   `yaml:"kind"`
	Body   *BodyDoc       `yaml:"body,omitempty"`
	Update *BodyUpdateDoc `yaml:"update,omitempty"`
	ID     string         `yaml:"id,omitempty"`
}

// FromEdit converts a core Edit into its tagged wire document.
func FromEdit(e engine.Edit) BodyEditDoc {
	switch e.Kind {
	case engine.EditCreate:
		doc := FromBody(e.Create)
		return BodyEditDoc{Kind: editKindCreate, Body: &doc}
	case engine.EditUpdate:
		u := e.Update
		doc := &BodyUpdateDoc{ID: u.ID, Mass: u.Mass, Radius: u.Radius, Alive: u.Alive}
		if u.Position != nil {
			p := vecToDoc(*u.Position)
			doc.Position = &p
		}
		if u.Velocity != nil {
			v := vecToDoc(*u.Velocity)
			doc.Velocity = &v
		}
		if u.Metadata != nil {
			doc.Metadata = &MetadataDoc{Label: u.Metadata.Label, Kind: u.Metadata.Kind, Color: u.Metadata.Color}
		}
		return BodyEditDoc{Kind: editKindUpdate, Update: doc}
	default:
		return BodyEditDoc{Kind: editKindDelete, ID: e.DeleteID}
	}
}

// ToEdit converts a tagged wire document into a core Edit.
func (d BodyEditDoc) ToEdit() engine.Edit {
	switch d.Kind {
	case editKindCreate:
		var b *body.Body
		if d.Body != nil {
			b = d.Body.ToBody()
		}
		return engine.Edit{Kind: engine.EditCreate, Create: b}
	case editKindUpdate:
		u := &engine.BodyUpdate{}
		if d.Update != nil {
			u.ID = d.Update.ID
			u.Mass = d.Update.Mass
			u.Radius = d.Update.Radius
			u.Alive = d.Update.Alive
			if d.Update.Position != nil {
				p := vecFromDoc(*d.Update.Position)
				u.Position = &p
			}
			if d.Update.Velocity != nil {
				v := vecFromDoc(*d.Update.Velocity)
				u.Velocity = &v
			}
			if d.Update.Metadata != nil {
				u.Metadata = &body.Metadata{Label: d.Update.Metadata.Label, Kind: d.Update.Metadata.Kind, Color: d.Update.Metadata.Color}
			}
		}
		return engine.Edit{Kind: engine.EditUpdate, Update: u}
	default:
		return engine.Edit{Kind: engine.EditDelete, DeleteID: d.ID}
	}
}
