// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/yuiseki/sysquiz/ent/gameevent"
)

// GameEventCreate is the builder for creating a GameEvent entity.
type GameEventCreate struct {
	config
	mutation *GameEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *GameEventCreate) SetSequence(v int64) *GameEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *GameEventCreate) SetTimestamp(v time.Time) *GameEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *GameEventCreate) SetNillableTimestamp(v *time.Time) *GameEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetGameID sets the "game_id" field.
func (_c *GameEventCreate) SetGameID(v string) *GameEventCreate {
	_c.mutation.SetGameID(v)
	return _c
}

// SetAction sets the "action" field.
func (_c *GameEventCreate) SetAction(v string) *GameEventCreate {
	_c.mutation.SetAction(v)
	return _c
}

// SetDifficulty sets the "difficulty" field.
func (_c *GameEventCreate) SetDifficulty(v string) *GameEventCreate {
	_c.mutation.SetDifficulty(v)
	return _c
}

// SetRounds sets the "rounds" field.
func (_c *GameEventCreate) SetRounds(v int) *GameEventCreate {
	_c.mutation.SetRounds(v)
	return _c
}

// SetNillableRounds sets the "rounds" field if the given value is not nil.
func (_c *GameEventCreate) SetNillableRounds(v *int) *GameEventCreate {
	if v != nil {
		_c.SetRounds(*v)
	}
	return _c
}

// SetCorrect sets the "correct" field.
func (_c *GameEventCreate) SetCorrect(v int) *GameEventCreate {
	_c.mutation.SetCorrect(v)
	return _c
}

// SetNillableCorrect sets the "correct" field if the given value is not nil.
func (_c *GameEventCreate) SetNillableCorrect(v *int) *GameEventCreate {
	if v != nil {
		_c.SetCorrect(*v)
	}
	return _c
}

// SetMaxStreak sets the "max_streak" field.
func (_c *GameEventCreate) SetMaxStreak(v int) *GameEventCreate {
	_c.mutation.SetMaxStreak(v)
	return _c
}

// SetNillableMaxStreak sets the "max_streak" field if the given value is not nil.
func (_c *GameEventCreate) SetNillableMaxStreak(v *int) *GameEventCreate {
	if v != nil {
		_c.SetMaxStreak(*v)
	}
	return _c
}

// SetDurationMs sets the "duration_ms" field.
func (_c *GameEventCreate) SetDurationMs(v int) *GameEventCreate {
	_c.mutation.SetDurationMs(v)
	return _c
}

// SetNillableDurationMs sets the "duration_ms" field if the given value is not nil.
func (_c *GameEventCreate) SetNillableDurationMs(v *int) *GameEventCreate {
	if v != nil {
		_c.SetDurationMs(*v)
	}
	return _c
}

// Mutation returns the GameEventMutation object of the builder.
func (_c *GameEventCreate) Mutation() *GameEventMutation {
	return _c.mutation
}

// Save creates the GameEvent in the database.
func (_c *GameEventCreate) Save(ctx context.Context) (*GameEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *GameEventCreate) SaveX(ctx context.Context) *GameEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *GameEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *GameEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *GameEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := gameevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
	if _, ok := _c.mutation.Rounds(); !ok {
		v := gameevent.DefaultRounds
		_c.mutation.SetRounds(v)
	}
	if _, ok := _c.mutation.Correct(); !ok {
		v := gameevent.DefaultCorrect
		_c.mutation.SetCorrect(v)
	}
	if _, ok := _c.mutation.MaxStreak(); !ok {
		v := gameevent.DefaultMaxStreak
		_c.mutation.SetMaxStreak(v)
	}
	if _, ok := _c.mutation.DurationMs(); !ok {
		v := gameevent.DefaultDurationMs
		_c.mutation.SetDurationMs(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *GameEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "GameEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "GameEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.GameID(); !ok {
		return &ValidationError{Name: "game_id", err: errors.New(`ent: missing required field "GameEvent.game_id"`)}
	}
	if v, ok := _c.mutation.GameID(); ok {
		if err := gameevent.GameIDValidator(v); err != nil {
			return &ValidationError{Name: "game_id", err: fmt.Errorf(`ent: validator failed for field "GameEvent.game_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Action(); !ok {
		return &ValidationError{Name: "action", err: errors.New(`ent: missing required field "GameEvent.action"`)}
	}
	if v, ok := _c.mutation.Action(); ok {
		if err := gameevent.ActionValidator(v); err != nil {
			return &ValidationError{Name: "action", err: fmt.Errorf(`ent: validator failed for field "GameEvent.action": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Difficulty(); !ok {
		return &ValidationError{Name: "difficulty", err: errors.New(`ent: missing required field "GameEvent.difficulty"`)}
	}
	if v, ok := _c.mutation.Difficulty(); ok {
		if err := gameevent.DifficultyValidator(v); err != nil {
			return &ValidationError{Name: "difficulty", err: fmt.Errorf(`ent: validator failed for field "GameEvent.difficulty": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Rounds(); !ok {
		return &ValidationError{Name: "rounds", err: errors.New(`ent: missing required field "GameEvent.rounds"`)}
	}
	if _, ok := _c.mutation.Correct(); !ok {
		return &ValidationError{Name: "correct", err: errors.New(`ent: missing required field "GameEvent.correct"`)}
	}
	if _, ok := _c.mutation.MaxStreak(); !ok {
		return &ValidationError{Name: "max_streak", err: errors.New(`ent: missing required field "GameEvent.max_streak"`)}
	}
	if _, ok := _c.mutation.DurationMs(); !ok {
		return &ValidationError{Name: "duration_ms", err: errors.New(`ent: missing required field "GameEvent.duration_ms"`)}
	}
	return nil
}

func (_c *GameEventCreate) sqlSave(ctx context.Context) (*GameEvent, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *GameEventCreate) createSpec() (*GameEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &GameEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(gameevent.Table, sqlgraph.NewFieldSpec(gameevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(gameevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(gameevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.GameID(); ok {
		_spec.SetField(gameevent.FieldGameID, field.TypeString, value)
		_node.GameID = value
	}
	if value, ok := _c.mutation.Action(); ok {
		_spec.SetField(gameevent.FieldAction, field.TypeString, value)
		_node.Action = value
	}
	if value, ok := _c.mutation.Difficulty(); ok {
		_spec.SetField(gameevent.FieldDifficulty, field.TypeString, value)
		_node.Difficulty = value
	}
	if value, ok := _c.mutation.Rounds(); ok {
		_spec.SetField(gameevent.FieldRounds, field.TypeInt, value)
		_node.Rounds = value
	}
	if value, ok := _c.mutation.Correct(); ok {
		_spec.SetField(gameevent.FieldCorrect, field.TypeInt, value)
		_node.Correct = value
	}
	if value, ok := _c.mutation.MaxStreak(); ok {
		_spec.SetField(gameevent.FieldMaxStreak, field.TypeInt, value)
		_node.MaxStreak = value
	}
	if value, ok := _c.mutation.DurationMs(); ok {
		_spec.SetField(gameevent.FieldDurationMs, field.TypeInt, value)
		_node.DurationMs = value
	}
	return _node, _spec
}

// GameEventCreateBulk is the builder for creating many GameEvent entities in bulk.
type GameEventCreateBulk struct {
	config
	err      error
	builders []*GameEventCreate
}

// Save creates the GameEvent entities in the database.
func (_c *GameEventCreateBulk) Save(ctx context.Context) ([]*GameEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*GameEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*GameEventMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *GameEventCreateBulk) SaveX(ctx context.Context) []*GameEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *GameEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *GameEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
