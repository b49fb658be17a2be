package home

import (
	"context"
	"strings"
	"testing"

	"github.com/yuiseki/sysquiz/internal/quiz"
	"github.com/yuiseki/sysquiz/internal/store"
)

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

type mockSettingsRepo struct {
	settings quiz.Settings
}

func (m *mockSettingsRepo) Load(context.Context) quiz.Settings { return m.settings }
func (m *mockSettingsRepo) Save(_ context.Context, s quiz.Settings) error {
	m.settings = s
	return nil
}
func (m *mockSettingsRepo) Reset(context.Context) error { return nil }

type mockEventRepo struct{}

func (mockEventRepo) AppendGameEvent(context.Context, store.GameEventData) error     { return nil }
func (mockEventRepo) AppendAnswerEvent(context.Context, store.AnswerEventData) error { return nil }
func (mockEventRepo) RecentGames(context.Context, int) ([]store.GameRecord, error) {
	return nil, nil
}
func (mockEventRepo) AnswerTotals(context.Context) (int, int, error) { return 0, 0, nil }
func (mockEventRepo) Reset(context.Context) error                    { return nil }

func testHomeScreen(stats quiz.Statistics) (*HomeScreen, *mockStatsRepo) {
	statsRepo := &mockStatsRepo{stats: stats}
	settingsRepo := &mockSettingsRepo{settings: quiz.DefaultSettings()}
	return New(settingsRepo, statsRepo, mockEventRepo{}), statsRepo
}

func TestHomeScreen_LoadsStats(t *testing.T) {
	h, _ := testHomeScreen(quiz.Statistics{
		TotalGamesPlayed:    4,
		TotalCorrectAnswers: 30,
		HighestStreak:       3,
	})
	if h.stats.TotalGamesPlayed != 4 {
		t.Errorf("TotalGamesPlayed = %d, want 4", h.stats.TotalGamesPlayed)
	}
}

func TestHomeScreen_StatsRefreshed(t *testing.T) {
	h, _ := testHomeScreen(quiz.Statistics{
		TotalGamesPlayed:    4,
		TotalCorrectAnswers: 30,
		HighestStreak:       3,
	})

	// A finished game bumped the totals; the refresh message must replace
	// the values loaded at construction time.
	scr, _ := h.Update(StatsRefreshedMsg(quiz.Statistics{
		TotalGamesPlayed:    5,
		TotalCorrectAnswers: 40,
		HighestStreak:       9,
	}))
	h = scr.(*HomeScreen)

	if h.stats.TotalGamesPlayed != 5 || h.stats.TotalCorrectAnswers != 40 || h.stats.HighestStreak != 9 {
		t.Fatalf("stats = %+v, want {5 40 9}", h.stats)
	}

	view := h.View(120, 40)
	if !strings.Contains(view, "40 CORRECT") {
		t.Error("view still shows pre-refresh correct count")
	}
	if !strings.Contains(view, "9 BEST STREAK") {
		t.Error("view still shows pre-refresh streak")
	}
}

func TestHomeScreen_View(t *testing.T) {
	h, _ := testHomeScreen(quiz.Statistics{})
	if h.View(120, 40) == "" {
		t.Error("expected non-empty view")
	}
	if h.View(80, 16) == "" {
		t.Error("expected non-empty compact view")
	}
}
