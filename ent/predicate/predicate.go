// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// AnswerEvent is the predicate function for answerevent builders.
type AnswerEvent func(*sql.Selector)

// Blob is the predicate function for blob builders.
type Blob func(*sql.Selector)

// GameEvent is the predicate function for gameevent builders.
type GameEvent func(*sql.Selector)
