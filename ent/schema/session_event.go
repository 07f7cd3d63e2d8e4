package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// SessionEvent records session lifecycle transitions (start, phase change, end).
type SessionEvent struct {
	ent.Schema
}

func (SessionEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (SessionEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty().
			Comment("UUID grouping events in a session"),
		field.String("user_id").
			NotEmpty().
			Comment("Learner the session belongs to"),
		field.String("action").
			NotEmpty().
			Comment("start, phase, or end"),
		field.String("phase").
			Default("").
			Comment("Session phase at the time of the event"),
		field.String("topic").
			Default("").
			Comment("Current topic, empty before one is set"),
		field.Int("total_interactions").
			Default(0).
			Comment("Interaction count (on end only)"),
		field.Int("adaptation_count").
			Default(0).
			Comment("Profile adaptations during the session (on end only)"),
		field.Int("duration_secs").
			Default(0).
			Comment("Actual duration in seconds (on end only)"),
	}
}

func (SessionEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("user_id"),
		index.Fields("action"),
	}
}
