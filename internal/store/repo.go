package store

import (
	"context"
	"time"

	"github.com/yuiseki/sysquiz/internal/quiz"
)

// SettingsRepo persists player settings. Load never fails outward: missing
// or corrupt stored data degrades to defaults, and Save is best-effort.
type SettingsRepo interface {
	// Load returns the stored settings merged over defaults.
	Load(ctx context.Context) quiz.Settings

	// Save stores the settings. Errors are returned for logging only;
	// callers are free to ignore them.
	Save(ctx context.Context, s quiz.Settings) error

	// Reset removes the stored settings.
	Reset(ctx context.Context) error
}

// StatsRepo persists lifetime statistics with the same degradation rules
// as SettingsRepo.
type StatsRepo interface {
	Load(ctx context.Context) quiz.Statistics
	Save(ctx context.Context, s quiz.Statistics) error
	Reset(ctx context.Context) error
}

// GameEventData captures a game lifecycle event for persistence.
type GameEventData struct {
	GameID     string
	Action     string // "start" or "end"
	Difficulty string
	Rounds     int
	Correct    int
	MaxStreak  int
	DurationMs int
}

// AnswerEventData captures one answered round for persistence.
type AnswerEventData struct {
	GameID        string
	RoundIndex    int
	Difficulty    string
	CorrectAnswer string
	Selected      string
	Correct       bool
	TimeMs        int
}

// GameRecord is a completed game as read back from the event log.
type GameRecord struct {
	GameID     string
	Finished   time.Time
	Difficulty string
	Rounds     int
	Correct    int
	MaxStreak  int
	DurationMs int
}

// EventRepo appends and queries the game event log.
type EventRepo interface {
	// AppendGameEvent records a game start or end.
	AppendGameEvent(ctx context.Context, data GameEventData) error

	// AppendAnswerEvent records one answered round.
	AppendAnswerEvent(ctx context.Context, data AnswerEventData) error

	// RecentGames returns the most recently finished games, newest first.
	RecentGames(ctx context.Context, limit int) ([]GameRecord, error)

	// AnswerTotals returns lifetime (answered, correct) counts from the log.
	AnswerTotals(ctx context.Context) (int, int, error)

	// Reset deletes the entire event log.
	Reset(ctx context.Context) error
}
