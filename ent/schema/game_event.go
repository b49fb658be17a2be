package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// GameEvent records game lifecycle events (start/end).
type GameEvent struct {
	ent.Schema
}

func (GameEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (GameEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("game_id").
			NotEmpty().
			Comment("UUID grouping events in one game"),
		field.String("action").
			NotEmpty().
			Comment("start or end"),
		field.String("difficulty").
			NotEmpty().
			Comment("easy, normal, or hard"),
		field.Int("rounds").
			Default(0).
			Comment("Rounds answered (on end only)"),
		field.Int("correct").
			Default(0).
			Comment("Correct answers (on end only)"),
		field.Int("max_streak").
			Default(0).
			Comment("Longest streak (on end only)"),
		field.Int("duration_ms").
			Default(0).
			Comment("Wall time of the game in milliseconds (on end only)"),
	}
}

func (GameEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("game_id"),
		index.Fields("action"),
	}
}
