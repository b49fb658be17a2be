package settings

import (
	"context"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/yuiseki/sysquiz/internal/quiz"
)

type mockSettingsRepo struct {
	settings quiz.Settings
	saves    int
}

func (m *mockSettingsRepo) Load(context.Context) quiz.Settings { return m.settings }
func (m *mockSettingsRepo) Save(_ context.Context, s quiz.Settings) error {
	m.settings = s
	m.saves++
	return nil
}
func (m *mockSettingsRepo) Reset(context.Context) error {
	m.settings = quiz.DefaultSettings()
	return nil
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func TestSettingsScreen_LoadsPersisted(t *testing.T) {
	repo := &mockSettingsRepo{settings: quiz.Settings{
		QuestionCount:   20,
		Difficulty:      quiz.DifficultyHard,
		EffectIntensity: quiz.EffectIntense,
		SoundEnabled:    false,
	}}
	s := New(repo)
	if s.settings.QuestionCount != 20 {
		t.Errorf("QuestionCount = %d, want 20", s.settings.QuestionCount)
	}
	if s.settings.Difficulty != quiz.DifficultyHard {
		t.Errorf("Difficulty = %s, want hard", s.settings.Difficulty)
	}
}

func TestSettingsScreen_CycleSaves(t *testing.T) {
	repo := &mockSettingsRepo{settings: quiz.DefaultSettings()}
	s := New(repo)

	// Right on the first row cycles 10 -> 20 and saves.
	scr, cmd := s.Update(specialKey(tea.KeyRight))
	s = scr.(*SettingsScreen)
	if s.settings.QuestionCount != 20 {
		t.Errorf("QuestionCount = %d, want 20", s.settings.QuestionCount)
	}
	if cmd == nil {
		t.Fatal("expected a save command")
	}
	if msg := cmd(); msg == nil {
		t.Fatal("expected savedMsg")
	}
	if repo.saves != 1 {
		t.Errorf("saves = %d, want 1", repo.saves)
	}
	if repo.settings.QuestionCount != 20 {
		t.Errorf("persisted QuestionCount = %d, want 20", repo.settings.QuestionCount)
	}
}

func TestSettingsScreen_CycleWraps(t *testing.T) {
	repo := &mockSettingsRepo{settings: quiz.DefaultSettings()}
	s := New(repo)

	// 10 -> 5 going left, wrapping backwards through the list.
	scr, _ := s.Update(specialKey(tea.KeyLeft))
	s = scr.(*SettingsScreen)
	if s.settings.QuestionCount != 5 {
		t.Errorf("QuestionCount = %d, want 5", s.settings.QuestionCount)
	}
	scr, _ = s.Update(specialKey(tea.KeyLeft))
	s = scr.(*SettingsScreen)
	if s.settings.QuestionCount != 20 {
		t.Errorf("QuestionCount = %d, want 20 after wrap", s.settings.QuestionCount)
	}
}

func TestSettingsScreen_SoundToggle(t *testing.T) {
	repo := &mockSettingsRepo{settings: quiz.DefaultSettings()}
	s := New(repo)
	s.selected = rowSound

	scr, _ := s.Update(specialKey(tea.KeyRight))
	s = scr.(*SettingsScreen)
	if s.settings.SoundEnabled {
		t.Error("expected sound toggled off")
	}
	scr, _ = s.Update(specialKey(tea.KeyRight))
	s = scr.(*SettingsScreen)
	if !s.settings.SoundEnabled {
		t.Error("expected sound toggled back on")
	}
}

func TestSettingsScreen_View(t *testing.T) {
	s := New(&mockSettingsRepo{settings: quiz.DefaultSettings()})
	if s.View(80, 24) == "" {
		t.Error("expected non-empty view")
	}
}
