package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AnswerEvent records a single diagnostic or practice answer.
type AnswerEvent struct {
	ent.Schema
}

func (AnswerEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (AnswerEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty().
			Comment("Links to SessionEvent"),
		field.String("user_id").
			NotEmpty().
			Comment("Learner who answered"),
		field.String("topic").
			NotEmpty().
			Comment("Topic the question belongs to"),
		field.String("question_id").
			NotEmpty().
			Comment("Bank or generated question ID"),
		field.String("concept").
			Default("").
			Comment("Concept the question tests"),
		field.String("difficulty").
			NotEmpty().
			Comment("easy, medium, or hard"),
		field.Int("selected_index").
			Comment("Option the learner chose"),
		field.Bool("correct").
			Comment("Whether the answer was correct"),
		field.Float("time_secs").
			Default(0).
			Comment("Seconds to answer"),
		field.Int("confidence_rating").
			Default(0).
			Comment("Self-reported 1-5, 0 when absent"),
		field.String("style_voted").
			Default("").
			Comment("Learning style vote cast by a meta question, if any"),
		field.String("depth_voted").
			Default("").
			Comment("Depth preference vote cast by a meta question, if any"),
	}
}

func (AnswerEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("user_id"),
		index.Fields("topic"),
		index.Fields("correct"),
	}
}
