// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/yuiseki/sysquiz/ent/gameevent"
	"github.com/yuiseki/sysquiz/ent/predicate"
)

// GameEventUpdate is the builder for updating GameEvent entities.
type GameEventUpdate struct {
	config
	hooks    []Hook
	mutation *GameEventMutation
}

// Where appends a list predicates to the GameEventUpdate builder.
func (_u *GameEventUpdate) Where(ps ...predicate.GameEvent) *GameEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetGameID sets the "game_id" field.
func (_u *GameEventUpdate) SetGameID(v string) *GameEventUpdate {
	_u.mutation.SetGameID(v)
	return _u
}

// SetNillableGameID sets the "game_id" field if the given value is not nil.
func (_u *GameEventUpdate) SetNillableGameID(v *string) *GameEventUpdate {
	if v != nil {
		_u.SetGameID(*v)
	}
	return _u
}

// SetAction sets the "action" field.
func (_u *GameEventUpdate) SetAction(v string) *GameEventUpdate {
	_u.mutation.SetAction(v)
	return _u
}

// SetNillableAction sets the "action" field if the given value is not nil.
func (_u *GameEventUpdate) SetNillableAction(v *string) *GameEventUpdate {
	if v != nil {
		_u.SetAction(*v)
	}
	return _u
}

// SetDifficulty sets the "difficulty" field.
func (_u *GameEventUpdate) SetDifficulty(v string) *GameEventUpdate {
	_u.mutation.SetDifficulty(v)
	return _u
}

// SetNillableDifficulty sets the "difficulty" field if the given value is not nil.
func (_u *GameEventUpdate) SetNillableDifficulty(v *string) *GameEventUpdate {
	if v != nil {
		_u.SetDifficulty(*v)
	}
	return _u
}

// SetRounds sets the "rounds" field.
func (_u *GameEventUpdate) SetRounds(v int) *GameEventUpdate {
	_u.mutation.ResetRounds()
	_u.mutation.SetRounds(v)
	return _u
}

// SetNillableRounds sets the "rounds" field if the given value is not nil.
func (_u *GameEventUpdate) SetNillableRounds(v *int) *GameEventUpdate {
	if v != nil {
		_u.SetRounds(*v)
	}
	return _u
}

// AddRounds adds value to the "rounds" field.
func (_u *GameEventUpdate) AddRounds(v int) *GameEventUpdate {
	_u.mutation.AddRounds(v)
	return _u
}

// SetCorrect sets the "correct" field.
func (_u *GameEventUpdate) SetCorrect(v int) *GameEventUpdate {
	_u.mutation.ResetCorrect()
	_u.mutation.SetCorrect(v)
	return _u
}

// SetNillableCorrect sets the "correct" field if the given value is not nil.
func (_u *GameEventUpdate) SetNillableCorrect(v *int) *GameEventUpdate {
	if v != nil {
		_u.SetCorrect(*v)
	}
	return _u
}

// AddCorrect adds value to the "correct" field.
func (_u *GameEventUpdate) AddCorrect(v int) *GameEventUpdate {
	_u.mutation.AddCorrect(v)
	return _u
}

// SetMaxStreak sets the "max_streak" field.
func (_u *GameEventUpdate) SetMaxStreak(v int) *GameEventUpdate {
	_u.mutation.ResetMaxStreak()
	_u.mutation.SetMaxStreak(v)
	return _u
}

// SetNillableMaxStreak sets the "max_streak" field if the given value is not nil.
func (_u *GameEventUpdate) SetNillableMaxStreak(v *int) *GameEventUpdate {
	if v != nil {
		_u.SetMaxStreak(*v)
	}
	return _u
}

// AddMaxStreak adds value to the "max_streak" field.
func (_u *GameEventUpdate) AddMaxStreak(v int) *GameEventUpdate {
	_u.mutation.AddMaxStreak(v)
	return _u
}

// SetDurationMs sets the "duration_ms" field.
func (_u *GameEventUpdate) SetDurationMs(v int) *GameEventUpdate {
	_u.mutation.ResetDurationMs()
	_u.mutation.SetDurationMs(v)
	return _u
}

// SetNillableDurationMs sets the "duration_ms" field if the given value is not nil.
func (_u *GameEventUpdate) SetNillableDurationMs(v *int) *GameEventUpdate {
	if v != nil {
		_u.SetDurationMs(*v)
	}
	return _u
}

// AddDurationMs adds value to the "duration_ms" field.
func (_u *GameEventUpdate) AddDurationMs(v int) *GameEventUpdate {
	_u.mutation.AddDurationMs(v)
	return _u
}

// Mutation returns the GameEventMutation object of the builder.
func (_u *GameEventUpdate) Mutation() *GameEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *GameEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *GameEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *GameEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *GameEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *GameEventUpdate) check() error {
	if v, ok := _u.mutation.GameID(); ok {
		if err := gameevent.GameIDValidator(v); err != nil {
			return &ValidationError{Name: "game_id", err: fmt.Errorf(`ent: validator failed for field "GameEvent.game_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Action(); ok {
		if err := gameevent.ActionValidator(v); err != nil {
			return &ValidationError{Name: "action", err: fmt.Errorf(`ent: validator failed for field "GameEvent.action": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Difficulty(); ok {
		if err := gameevent.DifficultyValidator(v); err != nil {
			return &ValidationError{Name: "difficulty", err: fmt.Errorf(`ent: validator failed for field "GameEvent.difficulty": %w`, err)}
		}
	}
	return nil
}

func (_u *GameEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(gameevent.Table, gameevent.Columns, sqlgraph.NewFieldSpec(gameevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.GameID(); ok {
		_spec.SetField(gameevent.FieldGameID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Action(); ok {
		_spec.SetField(gameevent.FieldAction, field.TypeString, value)
	}
	if value, ok := _u.mutation.Difficulty(); ok {
		_spec.SetField(gameevent.FieldDifficulty, field.TypeString, value)
	}
	if value, ok := _u.mutation.Rounds(); ok {
		_spec.SetField(gameevent.FieldRounds, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRounds(); ok {
		_spec.AddField(gameevent.FieldRounds, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Correct(); ok {
		_spec.SetField(gameevent.FieldCorrect, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCorrect(); ok {
		_spec.AddField(gameevent.FieldCorrect, field.TypeInt, value)
	}
	if value, ok := _u.mutation.MaxStreak(); ok {
		_spec.SetField(gameevent.FieldMaxStreak, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMaxStreak(); ok {
		_spec.AddField(gameevent.FieldMaxStreak, field.TypeInt, value)
	}
	if value, ok := _u.mutation.DurationMs(); ok {
		_spec.SetField(gameevent.FieldDurationMs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDurationMs(); ok {
		_spec.AddField(gameevent.FieldDurationMs, field.TypeInt, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{gameevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// GameEventUpdateOne is the builder for updating a single GameEvent entity.
type GameEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *GameEventMutation
}

// SetGameID sets the "game_id" field.
func (_u *GameEventUpdateOne) SetGameID(v string) *GameEventUpdateOne {
	_u.mutation.SetGameID(v)
	return _u
}

// SetNillableGameID sets the "game_id" field if the given value is not nil.
func (_u *GameEventUpdateOne) SetNillableGameID(v *string) *GameEventUpdateOne {
	if v != nil {
		_u.SetGameID(*v)
	}
	return _u
}

// SetAction sets the "action" field.
func (_u *GameEventUpdateOne) SetAction(v string) *GameEventUpdateOne {
	_u.mutation.SetAction(v)
	return _u
}

// SetNillableAction sets the "action" field if the given value is not nil.
func (_u *GameEventUpdateOne) SetNillableAction(v *string) *GameEventUpdateOne {
	if v != nil {
		_u.SetAction(*v)
	}
	return _u
}

// SetDifficulty sets the "difficulty" field.
func (_u *GameEventUpdateOne) SetDifficulty(v string) *GameEventUpdateOne {
	_u.mutation.SetDifficulty(v)
	return _u
}

// SetNillableDifficulty sets the "difficulty" field if the given value is not nil.
func (_u *GameEventUpdateOne) SetNillableDifficulty(v *string) *GameEventUpdateOne {
	if v != nil {
		_u.SetDifficulty(*v)
	}
	return _u
}

// SetRounds sets the "rounds" field.
func (_u *GameEventUpdateOne) SetRounds(v int) *GameEventUpdateOne {
	_u.mutation.ResetRounds()
	_u.mutation.SetRounds(v)
	return _u
}

// SetNillableRounds sets the "rounds" field if the given value is not nil.
func (_u *GameEventUpdateOne) SetNillableRounds(v *int) *GameEventUpdateOne {
	if v != nil {
		_u.SetRounds(*v)
	}
	return _u
}

// AddRounds adds value to the "rounds" field.
func (_u *GameEventUpdateOne) AddRounds(v int) *GameEventUpdateOne {
	_u.mutation.AddRounds(v)
	return _u
}

// SetCorrect sets the "correct" field.
func (_u *GameEventUpdateOne) SetCorrect(v int) *GameEventUpdateOne {
	_u.mutation.ResetCorrect()
	_u.mutation.SetCorrect(v)
	return _u
}

// SetNillableCorrect sets the "correct" field if the given value is not nil.
func (_u *GameEventUpdateOne) SetNillableCorrect(v *int) *GameEventUpdateOne {
	if v != nil {
		_u.SetCorrect(*v)
	}
	return _u
}

// AddCorrect adds value to the "correct" field.
func (_u *GameEventUpdateOne) AddCorrect(v int) *GameEventUpdateOne {
	_u.mutation.AddCorrect(v)
	return _u
}

// SetMaxStreak sets the "max_streak" field.
func (_u *GameEventUpdateOne) SetMaxStreak(v int) *GameEventUpdateOne {
	_u.mutation.ResetMaxStreak()
	_u.mutation.SetMaxStreak(v)
	return _u
}

// SetNillableMaxStreak sets the "max_streak" field if the given value is not nil.
func (_u *GameEventUpdateOne) SetNillableMaxStreak(v *int) *GameEventUpdateOne {
	if v != nil {
		_u.SetMaxStreak(*v)
	}
	return _u
}

// AddMaxStreak adds value to the "max_streak" field.
func (_u *GameEventUpdateOne) AddMaxStreak(v int) *GameEventUpdateOne {
	_u.mutation.AddMaxStreak(v)
	return _u
}

// SetDurationMs sets the "duration_ms" field.
func (_u *GameEventUpdateOne) SetDurationMs(v int) *GameEventUpdateOne {
	_u.mutation.ResetDurationMs()
	_u.mutation.SetDurationMs(v)
	return _u
}

// SetNillableDurationMs sets the "duration_ms" field if the given value is not nil.
func (_u *GameEventUpdateOne) SetNillableDurationMs(v *int) *GameEventUpdateOne {
	if v != nil {
		_u.SetDurationMs(*v)
	}
	return _u
}

// AddDurationMs adds value to the "duration_ms" field.
func (_u *GameEventUpdateOne) AddDurationMs(v int) *GameEventUpdateOne {
	_u.mutation.AddDurationMs(v)
	return _u
}

// Mutation returns the GameEventMutation object of the builder.
func (_u *GameEventUpdateOne) Mutation() *GameEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the GameEventUpdate builder.
func (_u *GameEventUpdateOne) Where(ps ...predicate.GameEvent) *GameEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *GameEventUpdateOne) Select(field string, fields ...string) *GameEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated GameEvent entity.
func (_u *GameEventUpdateOne) Save(ctx context.Context) (*GameEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *GameEventUpdateOne) SaveX(ctx context.Context) *GameEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *GameEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *GameEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *GameEventUpdateOne) check() error {
	if v, ok := _u.mutation.GameID(); ok {
		if err := gameevent.GameIDValidator(v); err != nil {
			return &ValidationError{Name: "game_id", err: fmt.Errorf(`ent: validator failed for field "GameEvent.game_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Action(); ok {
		if err := gameevent.ActionValidator(v); err != nil {
			return &ValidationError{Name: "action", err: fmt.Errorf(`ent: validator failed for field "GameEvent.action": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Difficulty(); ok {
		if err := gameevent.DifficultyValidator(v); err != nil {
			return &ValidationError{Name: "difficulty", err: fmt.Errorf(`ent: validator failed for field "GameEvent.difficulty": %w`, err)}
		}
	}
	return nil
}

func (_u *GameEventUpdateOne) sqlSave(ctx context.Context) (_node *GameEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(gameevent.Table, gameevent.Columns, sqlgraph.NewFieldSpec(gameevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "GameEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, gameevent.FieldID)
		for _, f := range fields {
			if !gameevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != gameevent.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.GameID(); ok {
		_spec.SetField(gameevent.FieldGameID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Action(); ok {
		_spec.SetField(gameevent.FieldAction, field.TypeString, value)
	}
	if value, ok := _u.mutation.Difficulty(); ok {
		_spec.SetField(gameevent.FieldDifficulty, field.TypeString, value)
	}
	if value, ok := _u.mutation.Rounds(); ok {
		_spec.SetField(gameevent.FieldRounds, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRounds(); ok {
		_spec.AddField(gameevent.FieldRounds, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Correct(); ok {
		_spec.SetField(gameevent.FieldCorrect, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCorrect(); ok {
		_spec.AddField(gameevent.FieldCorrect, field.TypeInt, value)
	}
	if value, ok := _u.mutation.MaxStreak(); ok {
		_spec.SetField(gameevent.FieldMaxStreak, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMaxStreak(); ok {
		_spec.AddField(gameevent.FieldMaxStreak, field.TypeInt, value)
	}
	if value, ok := _u.mutation.DurationMs(); ok {
		_spec.SetField(gameevent.FieldDurationMs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDurationMs(); ok {
		_spec.AddField(gameevent.FieldDurationMs, field.TypeInt, value)
	}
	_node = &GameEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{gameevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
