package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// LookupEvent records one advice lookup made during a check-up.
type LookupEvent struct {
	ent.Schema
}

func (LookupEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (LookupEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("checkup_id").
			NotEmpty().
			Comment("UUID of the check-up this lookup belongs to"),
		field.String("query").
			NotEmpty().
			Comment("Raw text the user entered"),
		field.String("source").
			NotEmpty().
			Comment("How the lookup resolved: exact, classifier or none"),
		field.String("condition").
			Default("").
			Comment("Matched condition name, empty on a miss"),
	}
}

func (LookupEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("checkup_id"),
		index.Fields("source"),
	}
}
