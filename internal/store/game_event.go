package store

import (
	"context"
	"fmt"

	"github.com/yuiseki/sysquiz/ent"
	"github.com/yuiseki/sysquiz/ent/answerevent"
	"github.com/yuiseki/sysquiz/ent/gameevent"
)

// eventRepo implements EventRepo using the ent client.
type eventRepo struct {
	client *ent.Client
	seq    *sequenceCounter
}

func (r *eventRepo) AppendGameEvent(ctx context.Context, data GameEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.GameEvent.Create().
		SetSequence(seqNum).
		SetGameID(data.GameID).
		SetAction(data.Action).
		SetDifficulty(data.Difficulty).
		SetRounds(data.Rounds).
		SetCorrect(data.Correct).
		SetMaxStreak(data.MaxStreak).
		SetDurationMs(data.DurationMs).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save game event: %w", err)
	}
	return nil
}

func (r *eventRepo) AppendAnswerEvent(ctx context.Context, data AnswerEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.AnswerEvent.Create().
		SetSequence(seqNum).
		SetGameID(data.GameID).
		SetRoundIndex(data.RoundIndex).
		SetDifficulty(data.Difficulty).
		SetCorrectAnswer(data.CorrectAnswer).
		SetSelected(data.Selected).
		SetCorrect(data.Correct).
		SetTimeMs(data.TimeMs).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save answer event: %w", err)
	}
	return nil
}

func (r *eventRepo) RecentGames(ctx context.Context, limit int) ([]GameRecord, error) {
	q := r.client.GameEvent.Query().
		Where(gameevent.Action("end")).
		Order(ent.Desc(gameevent.FieldSequence))
	if limit > 0 {
		q = q.Limit(limit)
	}
	events, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query recent games: %w", err)
	}

	records := make([]GameRecord, 0, len(events))
	for _, e := range events {
		records = append(records, GameRecord{
			GameID:     e.GameID,
			Finished:   e.Timestamp,
			Difficulty: e.Difficulty,
			Rounds:     e.Rounds,
			Correct:    e.Correct,
			MaxStreak:  e.MaxStreak,
			DurationMs: e.DurationMs,
		})
	}
	return records, nil
}

func (r *eventRepo) AnswerTotals(ctx context.Context) (int, int, error) {
	total, err := r.client.AnswerEvent.Query().Count(ctx)
	if err != nil {
		return 0, 0, fmt.Errorf("count answers: %w", err)
	}
	correct, err := r.client.AnswerEvent.Query().
		Where(answerevent.Correct(true)).
		Count(ctx)
	if err != nil {
		return 0, 0, fmt.Errorf("count correct answers: %w", err)
	}
	return total, correct, nil
}

func (r *eventRepo) Reset(ctx context.Context) error {
	if _, err := r.client.AnswerEvent.Delete().Exec(ctx); err != nil {
		return fmt.Errorf("delete answer events: %w", err)
	}
	if _, err := r.client.GameEvent.Delete().Exec(ctx); err != nil {
		return fmt.Errorf("delete game events: %w", err)
	}
	return nil
}
