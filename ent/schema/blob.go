package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
)

// Blob is an opaque JSON document stored under a unique key. Settings and
// statistics each live under one key; readers merge the payload over
// defaults so partial or stale documents still load.
type Blob struct {
	ent.Schema
}

func (Blob) Fields() []ent.Field {
	return []ent.Field{
		field.String("key").
			Unique().
			NotEmpty().
			Comment("Namespace key: settings or statistics"),
		field.JSON("data", map[string]any{}).
			Comment("Payload as JSON"),
	}
}
