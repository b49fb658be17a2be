package store

import (
	"context"
	"testing"

	"github.com/yuiseki/sysquiz/internal/quiz"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so journal_mode is only meaningful with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestSettings_LoadDefaultsWhenEmpty(t *testing.T) {
	s := openTestStore(t)
	repo := s.SettingsRepo()

	got := repo.Load(context.Background())
	if got != quiz.DefaultSettings() {
		t.Errorf("Load on empty store = %+v, want defaults", got)
	}
}

func TestSettings_SaveLoadRoundTrip(t *testing.T) {
	s := openTestStore(t)
	repo := s.SettingsRepo()
	ctx := context.Background()

	want := quiz.Settings{
		QuestionCount:   20,
		Difficulty:      quiz.DifficultyHard,
		EffectIntensity: quiz.EffectSubtle,
		SoundEnabled:    false,
	}
	if err := repo.Save(ctx, want); err != nil {
		t.Fatalf("save: %v", err)
	}
	if got := repo.Load(ctx); got != want {
		t.Errorf("Load = %+v, want %+v", got, want)
	}

	// Second save overwrites, not duplicates.
	want.QuestionCount = 5
	if err := repo.Save(ctx, want); err != nil {
		t.Fatalf("second save: %v", err)
	}
	if got := repo.Load(ctx); got.QuestionCount != 5 {
		t.Errorf("QuestionCount after overwrite = %d, want 5", got.QuestionCount)
	}
}

func TestSettings_PartialDataMergesOverDefaults(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	// A document from an older version that only knows questionCount.
	err := s.Client().Blob.Create().
		SetKey(keySettings).
		SetData(map[string]any{"questionCount": 20}).
		Exec(ctx)
	if err != nil {
		t.Fatalf("seed partial blob: %v", err)
	}

	got := s.SettingsRepo().Load(ctx)
	if got.QuestionCount != 20 {
		t.Errorf("QuestionCount = %d, want stored 20", got.QuestionCount)
	}
	def := quiz.DefaultSettings()
	if got.Difficulty != def.Difficulty || got.EffectIntensity != def.EffectIntensity {
		t.Errorf("missing fields not defaulted: %+v", got)
	}
}

func TestSettings_CorruptDataFallsBackToDefaults(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	err := s.Client().Blob.Create().
		SetKey(keySettings).
		SetData(map[string]any{"questionCount": "twelve"}).
		Exec(ctx)
	if err != nil {
		t.Fatalf("seed corrupt blob: %v", err)
	}

	got := s.SettingsRepo().Load(ctx)
	if got != quiz.DefaultSettings() {
		t.Errorf("Load on corrupt data = %+v, want defaults", got)
	}
}

func TestSettings_Reset(t *testing.T) {
	s := openTestStore(t)
	repo := s.SettingsRepo()
	ctx := context.Background()

	saved := quiz.DefaultSettings()
	saved.QuestionCount = 5
	if err := repo.Save(ctx, saved); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := repo.Reset(ctx); err != nil {
		t.Fatalf("reset: %v", err)
	}
	if got := repo.Load(ctx); got != quiz.DefaultSettings() {
		t.Errorf("Load after reset = %+v, want defaults", got)
	}

	// Resetting an empty store is not an error.
	if err := repo.Reset(ctx); err != nil {
		t.Errorf("second reset: %v", err)
	}
}

func TestStats_SaveLoadAndReset(t *testing.T) {
	s := openTestStore(t)
	repo := s.StatsRepo()
	ctx := context.Background()

	if got := repo.Load(ctx); got != (quiz.Statistics{}) {
		t.Errorf("Load on empty store = %+v, want zero", got)
	}

	want := quiz.Statistics{TotalGamesPlayed: 6, TotalCorrectAnswers: 47, HighestStreak: 6}
	if err := repo.Save(ctx, want); err != nil {
		t.Fatalf("save: %v", err)
	}
	if got := repo.Load(ctx); got != want {
		t.Errorf("Load = %+v, want %+v", got, want)
	}

	if err := repo.Reset(ctx); err != nil {
		t.Fatalf("reset: %v", err)
	}
	if got := repo.Load(ctx); got != (quiz.Statistics{}) {
		t.Errorf("Load after reset = %+v, want zero", got)
	}
}

func TestEvents_AppendAndQuery(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	err := repo.AppendGameEvent(ctx, GameEventData{
		GameID: "g1", Action: "start", Difficulty: "easy",
	})
	if err != nil {
		t.Fatalf("append start: %v", err)
	}

	answers := []bool{true, false, true}
	for i, correct := range answers {
		err := repo.AppendAnswerEvent(ctx, AnswerEventData{
			GameID:        "g1",
			RoundIndex:    i,
			Difficulty:    "easy",
			CorrectAnswer: "read",
			Selected:      "read",
			Correct:       correct,
			TimeMs:        1500,
		})
		if err != nil {
			t.Fatalf("append answer %d: %v", i, err)
		}
	}

	err = repo.AppendGameEvent(ctx, GameEventData{
		GameID: "g1", Action: "end", Difficulty: "easy",
		Rounds: 3, Correct: 2, MaxStreak: 1, DurationMs: 9000,
	})
	if err != nil {
		t.Fatalf("append end: %v", err)
	}

	games, err := repo.RecentGames(ctx, 10)
	if err != nil {
		t.Fatalf("recent games: %v", err)
	}
	if len(games) != 1 {
		t.Fatalf("len(games) = %d, want 1 (start events excluded)", len(games))
	}
	g := games[0]
	if g.GameID != "g1" || g.Rounds != 3 || g.Correct != 2 || g.MaxStreak != 1 {
		t.Errorf("game record = %+v", g)
	}

	total, correct, err := repo.AnswerTotals(ctx)
	if err != nil {
		t.Fatalf("answer totals: %v", err)
	}
	if total != 3 || correct != 2 {
		t.Errorf("AnswerTotals = (%d, %d), want (3, 2)", total, correct)
	}
}

func TestEvents_RecentGamesNewestFirst(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	for _, id := range []string{"a", "b", "c"} {
		err := repo.AppendGameEvent(ctx, GameEventData{
			GameID: id, Action: "end", Difficulty: "normal", Rounds: 5,
		})
		if err != nil {
			t.Fatalf("append %s: %v", id, err)
		}
	}

	games, err := repo.RecentGames(ctx, 2)
	if err != nil {
		t.Fatalf("recent games: %v", err)
	}
	if len(games) != 2 {
		t.Fatalf("len(games) = %d, want 2", len(games))
	}
	if games[0].GameID != "c" || games[1].GameID != "b" {
		t.Errorf("order = [%s, %s], want [c, b]", games[0].GameID, games[1].GameID)
	}
}

func TestEvents_Reset(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	if err := repo.AppendGameEvent(ctx, GameEventData{GameID: "g1", Action: "end"}); err != nil {
		t.Fatalf("append game: %v", err)
	}
	if err := repo.AppendAnswerEvent(ctx, AnswerEventData{GameID: "g1", Correct: true}); err != nil {
		t.Fatalf("append answer: %v", err)
	}

	if err := repo.Reset(ctx); err != nil {
		t.Fatalf("reset: %v", err)
	}

	games, err := repo.RecentGames(ctx, 10)
	if err != nil {
		t.Fatalf("recent games: %v", err)
	}
	if len(games) != 0 {
		t.Errorf("len(games) = %d after reset, want 0", len(games))
	}
	total, _, err := repo.AnswerTotals(ctx)
	if err != nil {
		t.Fatalf("answer totals: %v", err)
	}
	if total != 0 {
		t.Errorf("AnswerTotals total = %d after reset, want 0", total)
	}
}
