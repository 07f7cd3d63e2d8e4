package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AdaptationEvent records each profile change made by the adaptation engine,
// whether rule-based or LLM-suggested.
type AdaptationEvent struct {
	ent.Schema
}

func (AdaptationEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (AdaptationEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty().
			Comment("Session the adaptation happened in"),
		field.String("user_id").
			NotEmpty().
			Comment("Learner whose profile changed"),
		field.String("trigger").
			NotEmpty().
			Comment("wrong_hard, wrong_after_explanation, low_accuracy, slow_response, low_confidence, user_request"),
		field.String("source").
			NotEmpty().
			Comment("rule or llm"),
		field.String("field").
			NotEmpty().
			Comment("Profile field that changed"),
		field.String("from_value").
			NotEmpty(),
		field.String("to_value").
			NotEmpty(),
		field.String("reasoning").
			Default(""),
	}
}

func (AdaptationEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("user_id"),
		index.Fields("trigger"),
	}
}
