package result

import (
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/yuiseki/sysquiz/internal/quiz"
	"github.com/yuiseki/sysquiz/internal/router"
)

func finishedSession(t *testing.T) *quiz.Session {
	t.Helper()
	settings := quiz.Settings{
		QuestionCount:   5,
		Difficulty:      quiz.DifficultyEasy,
		EffectIntensity: quiz.EffectStandard,
		SoundEnabled:    true,
	}
	session := quiz.NewSession(settings, nil)
	round := session.Start()
	for {
		if _, ok := session.SubmitAnswer(round.CorrectAnswer); !ok {
			t.Fatal("answer not accepted")
		}
		if session.Complete() {
			return session
		}
		round, _ = session.Advance()
	}
}

func keyPress(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func TestResultScreen_Navigation(t *testing.T) {
	s := New(finishedSession(t), quiz.Statistics{}, nil)

	scr, _ := s.Update(keyPress(tea.KeyDown))
	s = scr.(*ResultScreen)
	if s.selected != 1 {
		t.Errorf("selected = %d, want 1", s.selected)
	}
	// Down at the bottom stays put.
	scr, _ = s.Update(keyPress(tea.KeyDown))
	s = scr.(*ResultScreen)
	if s.selected != 1 {
		t.Errorf("selected = %d, want 1", s.selected)
	}
	scr, _ = s.Update(keyPress(tea.KeyUp))
	s = scr.(*ResultScreen)
	if s.selected != 0 {
		t.Errorf("selected = %d, want 0", s.selected)
	}
}

func TestResultScreen_PlayAgain(t *testing.T) {
	called := false
	playAgain := func() tea.Cmd {
		called = true
		return nil
	}
	s := New(finishedSession(t), quiz.Statistics{}, playAgain)

	if _, cmd := s.Update(keyPress(tea.KeyEnter)); cmd != nil {
		t.Error("expected nil cmd from the stub playAgain")
	}
	if !called {
		t.Error("expected playAgain to be invoked")
	}
}

func TestResultScreen_HomePops(t *testing.T) {
	s := New(finishedSession(t), quiz.Statistics{}, nil)
	s.selected = 1

	_, cmd := s.Update(keyPress(tea.KeyEnter))
	if cmd == nil {
		t.Fatal("expected a command")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Error("expected PopScreenMsg")
	}
}

func TestResultScreen_View(t *testing.T) {
	session := finishedSession(t)
	lifetime := quiz.Statistics{TotalGamesPlayed: 3, TotalCorrectAnswers: 12, HighestStreak: 5}
	s := New(session, lifetime, nil)

	view := s.View(80, 24)
	if view == "" {
		t.Fatal("expected non-empty view")
	}
}
