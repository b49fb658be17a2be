package play

import (
	"context"
	"errors"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/yuiseki/sysquiz/internal/quiz"
	"github.com/yuiseki/sysquiz/internal/router"
	"github.com/yuiseki/sysquiz/internal/screen"
	"github.com/yuiseki/sysquiz/internal/store"
)

// mockSettingsRepo implements store.SettingsRepo for testing.
type mockSettingsRepo struct {
	settings quiz.Settings
}

func (m *mockSettingsRepo) Load(context.Context) quiz.Settings { return m.settings }
func (m *mockSettingsRepo) Save(_ context.Context, s quiz.Settings) error {
	m.settings = s
	return nil
}
func (m *mockSettingsRepo) Reset(context.Context) error {
	m.settings = quiz.DefaultSettings()
	return nil
}

// mockStatsRepo implements store.StatsRepo for testing.
type mockStatsRepo struct {
	stats quiz.Statistics
	saves int
}

func (m *mockStatsRepo) Load(context.Context) quiz.Statistics { return m.stats }
func (m *mockStatsRepo) Save(_ context.Context, s quiz.Statistics) error {
	m.stats = s
	m.saves++
	return nil
}
func (m *mockStatsRepo) Reset(context.Context) error {
	m.stats = quiz.Statistics{}
	return nil
}

// mockEventRepo implements store.EventRepo for testing.
type mockEventRepo struct {
	gameEvents   []store.GameEventData
	answerEvents []store.AnswerEventData
}

func (m *mockEventRepo) AppendGameEvent(_ context.Context, data store.GameEventData) error {
	m.gameEvents = append(m.gameEvents, data)
	return nil
}
func (m *mockEventRepo) AppendAnswerEvent(_ context.Context, data store.AnswerEventData) error {
	m.answerEvents = append(m.answerEvents, data)
	return nil
}
func (m *mockEventRepo) RecentGames(context.Context, int) ([]store.GameRecord, error) {
	return nil, nil
}
func (m *mockEventRepo) AnswerTotals(context.Context) (int, int, error) {
	return 0, 0, nil
}
func (m *mockEventRepo) Reset(context.Context) error {
	m.gameEvents = nil
	m.answerEvents = nil
	return nil
}

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func testPlayScreen() (*PlayScreen, *mockStatsRepo, *mockEventRepo) {
	settingsRepo := &mockSettingsRepo{settings: quiz.Settings{
		QuestionCount:   5,
		Difficulty:      quiz.DifficultyEasy,
		EffectIntensity: quiz.EffectStandard,
		SoundEnabled:    false,
	}}
	statsRepo := &mockStatsRepo{}
	eventRepo := &mockEventRepo{}
	return New(settingsRepo, statsRepo, eventRepo), statsRepo, eventRepo
}

// startGameSync runs the async game setup and feeds the result back in.
func startGameSync(t *testing.T, s *PlayScreen) *PlayScreen {
	t.Helper()
	msg := s.startGame()()
	ready, ok := msg.(gameReadyMsg)
	if !ok {
		t.Fatalf("startGame returned %T, want gameReadyMsg", msg)
	}
	scr, _ := s.Update(ready)
	return scr.(*PlayScreen)
}

func TestPlayScreen_Title(t *testing.T) {
	s, _, _ := testPlayScreen()
	if s.Title() != "Play" {
		t.Errorf("Title = %q, want %q", s.Title(), "Play")
	}
}

func TestPlayScreen_View_Loading(t *testing.T) {
	s, _, _ := testPlayScreen()
	if s.View(80, 24) == "" {
		t.Error("expected non-empty view for loading state")
	}
}

func TestPlayScreen_StartRecordsGameEvent(t *testing.T) {
	s, _, eventRepo := testPlayScreen()
	s = startGameSync(t, s)

	if s.session == nil {
		t.Fatal("expected session after game start")
	}
	if got := len(s.choices.Options); got != quiz.OptionsPerRound {
		t.Errorf("options = %d, want %d", got, quiz.OptionsPerRound)
	}
	if len(eventRepo.gameEvents) != 1 || eventRepo.gameEvents[0].Action != "start" {
		t.Errorf("game events = %+v, want one start event", eventRepo.gameEvents)
	}
	if s.gameID == "" {
		t.Error("expected a game ID")
	}
}

func TestPlayScreen_StartFailureShowsError(t *testing.T) {
	s, _, _ := testPlayScreen()

	scr, _ := s.Update(gameReadyMsg{Err: errors.New("storage unavailable")})
	s = scr.(*PlayScreen)

	if s.errMsg == "" {
		t.Fatal("expected error message after failed start")
	}
	if s.HandlesEsc() {
		t.Error("error state must not intercept esc")
	}
	view := s.View(80, 24)
	if !strings.Contains(view, "storage unavailable") {
		t.Errorf("view does not show the error: %q", view)
	}

	// Any key returns to the previous screen.
	_, cmd := s.Update(keyPress('x'))
	if cmd == nil {
		t.Fatal("expected a command from the error state")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Error("expected PopScreenMsg")
	}
}

func TestPlayScreen_NumberKeySubmits(t *testing.T) {
	s, _, _ := testPlayScreen()
	s = startGameSync(t, s)

	scr, cmd := s.Update(keyPress('1'))
	s = scr.(*PlayScreen)

	if s.feedback == nil {
		t.Fatal("expected feedback after number-key submit")
	}
	if !s.choices.Revealed {
		t.Error("expected choices to be revealed")
	}
	if cmd == nil {
		t.Error("expected persist + auto-advance commands")
	}
	if len(s.session.Results()) != 1 {
		t.Errorf("results = %d, want 1", len(s.session.Results()))
	}
}

func TestPlayScreen_SubmitPersistsAnswer(t *testing.T) {
	s, _, eventRepo := testPlayScreen()
	s = startGameSync(t, s)

	scr, _ := s.Update(keyPress('1'))
	s = scr.(*PlayScreen)

	// The persist command appends off the UI loop; run it directly.
	if msg := s.persistAnswer()(); msg != nil {
		t.Errorf("persistAnswer msg = %v, want nil", msg)
	}
	if len(eventRepo.answerEvents) != 1 {
		t.Fatalf("answer events = %d, want 1", len(eventRepo.answerEvents))
	}
	ev := eventRepo.answerEvents[0]
	if ev.RoundIndex != 0 || ev.GameID != s.gameID {
		t.Errorf("unexpected answer event %+v", ev)
	}
}

func TestPlayScreen_SecondSubmitRejected(t *testing.T) {
	s, _, _ := testPlayScreen()
	s = startGameSync(t, s)

	scr, _ := s.Update(keyPress('1'))
	s = scr.(*PlayScreen)

	// Feedback is up; a second number key must not record another answer.
	scr, _ = s.Update(keyPress('2'))
	s = scr.(*PlayScreen)

	if len(s.session.Results()) != 1 {
		t.Errorf("results = %d, want 1 after duplicate submit", len(s.session.Results()))
	}
}

func TestPlayScreen_StaleAutoAdvanceIgnored(t *testing.T) {
	s, _, _ := testPlayScreen()
	s = startGameSync(t, s)

	scr, _ := s.Update(keyPress('1'))
	s = scr.(*PlayScreen)
	token := s.session.RoundToken()

	// A timer armed for an earlier round must not advance this one.
	scr, _ = s.Update(autoAdvanceMsg{Token: token - 1})
	s = scr.(*PlayScreen)
	if s.feedback == nil {
		t.Fatal("stale auto-advance should leave feedback up")
	}

	// The current round's timer does advance.
	scr, _ = s.Update(autoAdvanceMsg{Token: token})
	s = scr.(*PlayScreen)
	if s.feedback != nil {
		t.Error("expected next round after auto-advance")
	}
	if got := s.session.RoundIndex(); got != 1 {
		t.Errorf("round index = %d, want 1", got)
	}
}

func TestPlayScreen_EnterSkipsFeedbackDelay(t *testing.T) {
	s, _, _ := testPlayScreen()
	s = startGameSync(t, s)

	scr, _ := s.Update(keyPress('1'))
	s = scr.(*PlayScreen)

	scr, _ = s.Update(specialKey(tea.KeyEnter))
	s = scr.(*PlayScreen)
	if s.feedback != nil {
		t.Error("expected Enter to dismiss feedback early")
	}
}

func TestPlayScreen_QuitConfirm(t *testing.T) {
	s, _, _ := testPlayScreen()
	s = startGameSync(t, s)

	if !s.HandlesEsc() {
		t.Error("expected an in-progress game to handle Esc itself")
	}

	var scr screen.Screen = s
	scr, _ = scr.Update(specialKey(tea.KeyEscape))
	s = scr.(*PlayScreen)
	if !s.showingQuitConfirm {
		t.Error("expected quit confirmation dialog")
	}

	// N resumes the game.
	scr, _ = s.Update(keyPress('n'))
	s = scr.(*PlayScreen)
	if s.showingQuitConfirm {
		t.Error("expected quit confirmation to be dismissed")
	}

	// Y abandons it.
	scr, _ = s.Update(specialKey(tea.KeyEscape))
	s = scr.(*PlayScreen)
	_, cmd := s.Update(keyPress('y'))
	if cmd == nil {
		t.Error("expected a pop command after quit confirmation")
	}
}

func TestPlayScreen_FullGameFinalizes(t *testing.T) {
	s, statsRepo, eventRepo := testPlayScreen()
	statsRepo.stats = quiz.Statistics{TotalGamesPlayed: 2, TotalCorrectAnswers: 7, HighestStreak: 4}
	s = startGameSync(t, s)

	total := s.session.Settings().QuestionCount
	for i := 0; i < total; i++ {
		// Answer correctly via the known correct index.
		scr, _ := s.Update(keyPress(rune('1' + s.choices.CorrectIndex)))
		s = scr.(*PlayScreen)
		if s.feedback == nil {
			t.Fatalf("round %d: expected feedback", i)
		}
		scr, cmd := s.Update(autoAdvanceMsg{Token: s.session.RoundToken()})
		s = scr.(*PlayScreen)

		if i < total-1 {
			if s.feedback != nil {
				t.Fatalf("round %d: expected next round", i)
			}
			continue
		}

		// Final advance kicks off finalization.
		if !s.finishing {
			t.Fatal("expected finishing state after final round")
		}
		if cmd == nil {
			t.Fatal("expected finish command")
		}
		msg := cmd()
		fin, ok := msg.(gameFinishedMsg)
		if !ok {
			t.Fatalf("finish command returned %T, want gameFinishedMsg", msg)
		}
		if fin.Err != nil {
			t.Fatalf("finish error: %v", fin.Err)
		}
		if fin.Lifetime.TotalGamesPlayed != 3 {
			t.Errorf("lifetime games = %d, want 3", fin.Lifetime.TotalGamesPlayed)
		}
		if fin.Lifetime.TotalCorrectAnswers != 7+total {
			t.Errorf("lifetime correct = %d, want %d", fin.Lifetime.TotalCorrectAnswers, 7+total)
		}
	}

	if statsRepo.saves != 1 {
		t.Errorf("stats saves = %d, want 1", statsRepo.saves)
	}

	// A start and an end event were logged.
	var end *store.GameEventData
	for i := range eventRepo.gameEvents {
		if eventRepo.gameEvents[i].Action == "end" {
			end = &eventRepo.gameEvents[i]
		}
	}
	if end == nil {
		t.Fatal("expected an end game event")
	}
	if end.Rounds != total || end.Correct != total || end.MaxStreak != total {
		t.Errorf("unexpected end event %+v", *end)
	}
}

func TestPlayScreen_KeyHints(t *testing.T) {
	s, _, _ := testPlayScreen()
	s = startGameSync(t, s)

	if len(s.KeyHints()) == 0 {
		t.Error("expected non-empty key hints")
	}

	scr, _ := s.Update(specialKey(tea.KeyEscape))
	s = scr.(*PlayScreen)
	hints := s.KeyHints()
	if len(hints) != 2 {
		t.Errorf("quit-confirm hints = %d, want 2", len(hints))
	}
}

func TestPlayScreen_View_Game(t *testing.T) {
	s, _, _ := testPlayScreen()
	s = startGameSync(t, s)

	if s.View(80, 24) == "" {
		t.Error("expected non-empty game view")
	}

	scr, _ := s.Update(keyPress('1'))
	s = scr.(*PlayScreen)
	if s.View(80, 24) == "" {
		t.Error("expected non-empty feedback view")
	}
}
