// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/yuiseki/sysquiz/ent/answerevent"
	"github.com/yuiseki/sysquiz/ent/blob"
	"github.com/yuiseki/sysquiz/ent/gameevent"
	"github.com/yuiseki/sysquiz/ent/schema"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	answereventMixin := schema.AnswerEvent{}.Mixin()
	answereventMixinFields0 := answereventMixin[0].Fields()
	_ = answereventMixinFields0
	answereventFields := schema.AnswerEvent{}.Fields()
	_ = answereventFields
	// answereventDescTimestamp is the schema descriptor for timestamp field.
	answereventDescTimestamp := answereventMixinFields0[1].Descriptor()
	// answerevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	answerevent.DefaultTimestamp = answereventDescTimestamp.Default.(func() time.Time)
	// answereventDescGameID is the schema descriptor for game_id field.
	answereventDescGameID := answereventFields[0].Descriptor()
	// answerevent.GameIDValidator is a validator for the "game_id" field. It is called by the builders before save.
	answerevent.GameIDValidator = answereventDescGameID.Validators[0].(func(string) error)
	// answereventDescDifficulty is the schema descriptor for difficulty field.
	answereventDescDifficulty := answereventFields[2].Descriptor()
	// answerevent.DifficultyValidator is a validator for the "difficulty" field. It is called by the builders before save.
	answerevent.DifficultyValidator = answereventDescDifficulty.Validators[0].(func(string) error)
	// answereventDescCorrectAnswer is the schema descriptor for correct_answer field.
	answereventDescCorrectAnswer := answereventFields[3].Descriptor()
	// answerevent.CorrectAnswerValidator is a validator for the "correct_answer" field. It is called by the builders before save.
	answerevent.CorrectAnswerValidator = answereventDescCorrectAnswer.Validators[0].(func(string) error)
	blobFields := schema.Blob{}.Fields()
	_ = blobFields
	// blobDescKey is the schema descriptor for key field.
	blobDescKey := blobFields[0].Descriptor()
	// blob.KeyValidator is a validator for the "key" field. It is called by the builders before save.
	blob.KeyValidator = blobDescKey.Validators[0].(func(string) error)
	gameeventMixin := schema.GameEvent{}.Mixin()
	gameeventMixinFields0 := gameeventMixin[0].Fields()
	_ = gameeventMixinFields0
	gameeventFields := schema.GameEvent{}.Fields()
	_ = gameeventFields
	// gameeventDescTimestamp is the schema descriptor for timestamp field.
	gameeventDescTimestamp := gameeventMixinFields0[1].Descriptor()
	// gameevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	gameevent.DefaultTimestamp = gameeventDescTimestamp.Default.(func() time.Time)
	// gameeventDescGameID is the schema descriptor for game_id field.
	gameeventDescGameID := gameeventFields[0].Descriptor()
	// gameevent.GameIDValidator is a validator for the "game_id" field. It is called by the builders before save.
	gameevent.GameIDValidator = gameeventDescGameID.Validators[0].(func(string) error)
	// gameeventDescAction is the schema descriptor for action field.
	gameeventDescAction := gameeventFields[1].Descriptor()
	// gameevent.ActionValidator is a validator for the "action" field. It is called by the builders before save.
	gameevent.ActionValidator = gameeventDescAction.Validators[0].(func(string) error)
	// gameeventDescDifficulty is the schema descriptor for difficulty field.
	gameeventDescDifficulty := gameeventFields[2].Descriptor()
	// gameevent.DifficultyValidator is a validator for the "difficulty" field. It is called by the builders before save.
	gameevent.DifficultyValidator = gameeventDescDifficulty.Validators[0].(func(string) error)
	// gameeventDescRounds is the schema descriptor for rounds field.
	gameeventDescRounds := gameeventFields[3].Descriptor()
	// gameevent.DefaultRounds holds the default value on creation for the rounds field.
	gameevent.DefaultRounds = gameeventDescRounds.Default.(int)
	// gameeventDescCorrect is the schema descriptor for correct field.
	gameeventDescCorrect := gameeventFields[4].Descriptor()
	// gameevent.DefaultCorrect holds the default value on creation for the correct field.
	gameevent.DefaultCorrect = gameeventDescCorrect.Default.(int)
	// gameeventDescMaxStreak is the schema descriptor for max_streak field.
	gameeventDescMaxStreak := gameeventFields[5].Descriptor()
	// gameevent.DefaultMaxStreak holds the default value on creation for the max_streak field.
	gameevent.DefaultMaxStreak = gameeventDescMaxStreak.Default.(int)
	// gameeventDescDurationMs is the schema descriptor for duration_ms field.
	gameeventDescDurationMs := gameeventFields[6].Descriptor()
	// gameevent.DefaultDurationMs holds the default value on creation for the duration_ms field.
	gameevent.DefaultDurationMs = gameeventDescDurationMs.Default.(int)
}
