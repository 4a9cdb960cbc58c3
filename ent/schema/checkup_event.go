package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// CheckupEvent records check-up lifecycle events (start/end). Goal and
// the totals carry data on the end event only. Profile identity (name,
// age) is deliberately absent from this schema.
type CheckupEvent struct {
	ent.Schema
}

func (CheckupEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (CheckupEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("checkup_id").
			NotEmpty().
			Comment("UUID grouping events in a check-up"),
		field.String("action").
			NotEmpty().
			Comment("start or end"),
		field.Float("bmi").
			Default(0).
			Comment("Computed BMI"),
		field.String("category").
			Default("").
			Comment("BMI band label"),
		field.String("goal").
			Default("").
			Comment("Chosen goal label, empty if none picked (on end only)"),
		field.Int("lookup_count").
			Default(0).
			Comment("Advice lookups made (on end only)"),
		field.Int("duration_secs").
			Default(0).
			Comment("Check-up duration in seconds (on end only)"),
	}
}

func (CheckupEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("checkup_id"),
		index.Fields("action"),
	}
}
