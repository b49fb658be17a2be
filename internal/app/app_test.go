package app

import (
	"context"
	"strings"
	"testing"

	"github.com/yuiseki/sysquiz/internal/quiz"
	"github.com/yuiseki/sysquiz/internal/store"
)

type mockSettingsRepo struct {
	settings quiz.Settings
}

func (m *mockSettingsRepo) Load(context.Context) quiz.Settings { return m.settings }
func (m *mockSettingsRepo) Save(_ context.Context, s quiz.Settings) error {
	m.settings = s
	return nil
}
func (m *mockSettingsRepo) Reset(context.Context) error { return nil }

type mockStatsRepo struct {
	stats quiz.Statistics
}

func (m *mockStatsRepo) Load(context.Context) quiz.Statistics { return m.stats }
func (m *mockStatsRepo) Save(_ context.Context, s quiz.Statistics) error {
	m.stats = s
	return nil
}
func (m *mockStatsRepo) Reset(context.Context) error {
	m.stats = quiz.Statistics{}
	return nil
}

type mockEventRepo struct{}

func (mockEventRepo) AppendGameEvent(context.Context, store.GameEventData) error     { return nil }
func (mockEventRepo) AppendAnswerEvent(context.Context, store.AnswerEventData) error { return nil }
func (mockEventRepo) RecentGames(context.Context, int) ([]store.GameRecord, error) {
	return nil, nil
}
func (mockEventRepo) AnswerTotals(context.Context) (int, int, error) { return 0, 0, nil }
func (mockEventRepo) Reset(context.Context) error                    { return nil }

// Statistics change underneath the running app when a game finishes. The
// refresh must reach both the header and the home screen's stats bar.
func TestStatsRefreshReachesHomeScreen(t *testing.T) {
	statsRepo := &mockStatsRepo{stats: quiz.Statistics{
		TotalGamesPlayed:    4,
		TotalCorrectAnswers: 30,
		HighestStreak:       3,
	}}
	m := newAppModel(Options{
		SettingsRepo: &mockSettingsRepo{settings: quiz.DefaultSettings()},
		StatsRepo:    statsRepo,
		EventRepo:    mockEventRepo{},
	})

	statsRepo.stats = quiz.Statistics{
		TotalGamesPlayed:    5,
		TotalCorrectAnswers: 40,
		HighestStreak:       9,
	}

	cmd := m.loadStats()
	if cmd == nil {
		t.Fatal("expected a load command")
	}
	model, _ := m.Update(cmd())
	m = model.(AppModel)

	if m.stats.TotalGamesPlayed != 5 {
		t.Errorf("header stats TotalGamesPlayed = %d, want 5", m.stats.TotalGamesPlayed)
	}

	view := m.router.Active().View(120, 40)
	if !strings.Contains(view, "40 CORRECT") {
		t.Error("home screen still shows pre-refresh correct count")
	}
	if !strings.Contains(view, "9 BEST STREAK") {
		t.Error("home screen still shows pre-refresh streak")
	}
}

func TestLoadStatsNilRepo(t *testing.T) {
	m := newAppModel(Options{})
	if cmd := m.loadStats(); cmd != nil {
		t.Error("expected nil command without a stats repo")
	}
}
