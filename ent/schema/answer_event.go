package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AnswerEvent records a single answered round within a game.
type AnswerEvent struct {
	ent.Schema
}

func (AnswerEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (AnswerEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("game_id").
			NotEmpty().
			Comment("Links to GameEvent"),
		field.Int("round_index").
			Comment("0-based round position within the game"),
		field.String("difficulty").
			NotEmpty().
			Comment("Tier the round was drawn from"),
		field.String("correct_answer").
			NotEmpty().
			Comment("The real syscall name"),
		field.String("selected").
			Comment("What the player picked (may be empty on timeout)"),
		field.Bool("correct").
			Comment("Whether the answer was correct"),
		field.Int("time_ms").
			Comment("Milliseconds between round display and answer"),
	}
}

func (AnswerEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("game_id"),
		index.Fields("correct"),
	}
}
