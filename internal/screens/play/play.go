package play

import (
	"context"
	"fmt"
	"os"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/google/uuid"

	"github.com/yuiseki/sysquiz/internal/quiz"
	"github.com/yuiseki/sysquiz/internal/router"
	"github.com/yuiseki/sysquiz/internal/screen"
	"github.com/yuiseki/sysquiz/internal/screens/result"
	"github.com/yuiseki/sysquiz/internal/store"
	"github.com/yuiseki/sysquiz/internal/ui/components"
	"github.com/yuiseki/sysquiz/internal/ui/layout"
)

// feedbackDelay is how long the verdict overlay stays up before the game
// moves to the next round on its own.
const feedbackDelay = 1500 * time.Millisecond

// PlayScreen drives one game from first round to the result screen.
type PlayScreen struct {
	settingsRepo store.SettingsRepo
	statsRepo    store.StatsRepo
	eventRepo    store.EventRepo

	gameID  string
	session *quiz.Session
	choices components.ChoiceList
	spinner components.Spinner

	feedback           *quiz.Feedback
	showingQuitConfirm bool
	finishing          bool
	errMsg             string
}

var _ screen.Screen = (*PlayScreen)(nil)
var _ screen.KeyHintProvider = (*PlayScreen)(nil)
var _ screen.EscHandler = (*PlayScreen)(nil)

// New creates a new PlayScreen with injected repositories.
func New(settingsRepo store.SettingsRepo, statsRepo store.StatsRepo, eventRepo store.EventRepo) *PlayScreen {
	return &PlayScreen{
		settingsRepo: settingsRepo,
		statsRepo:    statsRepo,
		eventRepo:    eventRepo,
		spinner:      components.NewSpinner(),
	}
}

func (s *PlayScreen) Init() tea.Cmd {
	return tea.Batch(
		s.spinner.Init(),
		s.startGame(),
	)
}

func (s *PlayScreen) Title() string {
	return "Play"
}

// HandlesEsc keeps the router from popping an in-progress game; Esc shows
// the quit confirmation instead.
func (s *PlayScreen) HandlesEsc() bool {
	return s.session != nil && s.errMsg == "" && !s.finishing
}

func (s *PlayScreen) KeyHints() []layout.KeyHint {
	if s.showingQuitConfirm {
		return []layout.KeyHint{
			{Key: "Y", Description: "Quit game"},
			{Key: "N", Description: "Keep playing"},
		}
	}
	if s.feedback != nil {
		return []layout.KeyHint{
			{Key: "Any key", Description: "Next"},
		}
	}
	return []layout.KeyHint{
		{Key: "1-3", Description: "Answer"},
		{Key: "↑↓ Enter", Description: "Select"},
		{Key: "Esc", Description: "Quit"},
	}
}

func (s *PlayScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case gameReadyMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
			return s, nil
		}
		s.session = msg.Session
		s.gameID = msg.GameID
		s.armRound()
		return s, nil

	case autoAdvanceMsg:
		return s.handleAutoAdvance(msg)

	case gameFinishedMsg:
		return s.handleFinished(msg)

	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	// Spinner animation while the game loads.
	if s.session == nil {
		var cmd tea.Cmd
		s.spinner, cmd = s.spinner.Update(msg)
		return s, cmd
	}

	return s, nil
}

// startGame loads settings, builds the session, and records the start event.
func (s *PlayScreen) startGame() tea.Cmd {
	settingsRepo := s.settingsRepo
	eventRepo := s.eventRepo
	return func() tea.Msg {
		ctx := context.Background()

		if err := quiz.ValidatePools(); err != nil {
			return gameReadyMsg{Err: fmt.Errorf("question pools: %w", err)}
		}

		settings := quiz.DefaultSettings()
		if settingsRepo != nil {
			settings = settingsRepo.Load(ctx)
		}

		session := quiz.NewSession(settings, nil)
		session.Start()

		gameID := uuid.New().String()
		if eventRepo != nil {
			_ = eventRepo.AppendGameEvent(ctx, store.GameEventData{
				GameID:     gameID,
				Action:     "start",
				Difficulty: string(session.Settings().Difficulty),
			})
		}

		return gameReadyMsg{Session: session, GameID: gameID}
	}
}

// armRound binds the choice list to the session's current round.
func (s *PlayScreen) armRound() {
	round := s.session.CurrentRound()
	correct := 0
	for i, opt := range round.Options {
		if opt == round.CorrectAnswer {
			correct = i
			break
		}
	}
	s.choices = components.NewChoiceList(round.Options, correct)
	s.feedback = nil
}

func (s *PlayScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	// Error state: any key goes back.
	if s.errMsg != "" {
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	}

	if s.session == nil || s.finishing {
		return s, nil
	}

	// Quit confirmation dialog. Quitting mid-game discards the session;
	// lifetime statistics only count finished games.
	if s.showingQuitConfirm {
		switch key {
		case "y", "Y":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "n", "N", "esc":
			s.showingQuitConfirm = false
			return s, nil
		}
		return s, nil
	}

	// Feedback overlay: any key skips the delay, except Esc which still
	// offers the quit confirm.
	if s.feedback != nil {
		if key == "esc" {
			s.showingQuitConfirm = true
			return s, nil
		}
		return s.advance()
	}

	switch key {
	case "esc":
		s.showingQuitConfirm = true
		return s, nil
	case "enter":
		return s.submit(s.choices.Selected)
	case "1", "2", "3":
		idx := int(key[0] - '1')
		if idx < len(s.choices.Options) {
			return s.submit(idx)
		}
		return s, nil
	}

	var cmd tea.Cmd
	s.choices, cmd = s.choices.Update(msg)
	return s, cmd
}

// submit records the chosen option and shows the verdict.
func (s *PlayScreen) submit(idx int) (screen.Screen, tea.Cmd) {
	if idx < 0 || idx >= len(s.choices.Options) {
		return s, nil
	}

	selected := s.choices.Options[idx]
	fb, accepted := s.session.SubmitAnswer(selected)
	if !accepted {
		return s, nil
	}

	s.choices.Selected = idx
	s.choices.Reveal(idx)
	s.feedback = &fb

	cmds := []tea.Cmd{
		s.persistAnswer(),
		autoAdvanceCmd(s.session.RoundToken()),
	}
	if s.session.Settings().SoundEnabled {
		cmds = append(cmds, ringBell)
	}
	return s, tea.Batch(cmds...)
}

// ringBell sounds the terminal bell on answer reveal. BEL is a control
// character, so it never disturbs the alt-screen rendering.
func ringBell() tea.Msg {
	fmt.Fprint(os.Stdout, "\a")
	return nil
}

// persistAnswer appends the just-recorded result to the event log.
func (s *PlayScreen) persistAnswer() tea.Cmd {
	if s.eventRepo == nil {
		return nil
	}
	results := s.session.Results()
	if len(results) == 0 {
		return nil
	}
	last := results[len(results)-1]
	eventRepo := s.eventRepo
	gameID := s.gameID
	difficulty := string(s.session.Settings().Difficulty)
	return func() tea.Msg {
		_ = eventRepo.AppendAnswerEvent(context.Background(), store.AnswerEventData{
			GameID:        gameID,
			RoundIndex:    last.RoundIndex,
			Difficulty:    difficulty,
			CorrectAnswer: last.CorrectAnswer,
			Selected:      last.Selected,
			Correct:       last.Correct,
			TimeMs:        int(last.TimeMs),
		})
		return nil
	}
}

func (s *PlayScreen) handleAutoAdvance(msg autoAdvanceMsg) (screen.Screen, tea.Cmd) {
	if s.session == nil || s.feedback == nil || s.finishing {
		return s, nil
	}
	// A stale timer belongs to a round that already moved on.
	if msg.Token != s.session.RoundToken() {
		return s, nil
	}
	return s.advance()
}

// advance moves past the feedback overlay: next round, or the result
// screen once the final round is answered.
func (s *PlayScreen) advance() (screen.Screen, tea.Cmd) {
	if s.session.Complete() {
		s.finishing = true
		return s, s.finishGame()
	}
	s.session.Advance()
	s.armRound()
	return s, nil
}

// finishGame folds the session into the lifetime statistics and records
// the end event.
func (s *PlayScreen) finishGame() tea.Cmd {
	session := s.session
	statsRepo := s.statsRepo
	eventRepo := s.eventRepo
	gameID := s.gameID
	return func() tea.Msg {
		ctx := context.Background()

		var prior quiz.Statistics
		if statsRepo != nil {
			prior = statsRepo.Load(ctx)
		}
		merged := quiz.Finalize(session, prior)

		var err error
		if statsRepo != nil {
			err = statsRepo.Save(ctx, merged)
		}

		if eventRepo != nil {
			_ = eventRepo.AppendGameEvent(ctx, store.GameEventData{
				GameID:     gameID,
				Action:     "end",
				Difficulty: string(session.Settings().Difficulty),
				Rounds:     len(session.Results()),
				Correct:    session.CorrectCount(),
				MaxStreak:  session.MaxStreak(),
				DurationMs: int(session.Elapsed().Milliseconds()),
			})
		}

		return gameFinishedMsg{Lifetime: merged, Err: err}
	}
}

func (s *PlayScreen) handleFinished(msg gameFinishedMsg) (screen.Screen, tea.Cmd) {
	// A failed stats write is not worth blocking the result screen over.
	session := s.session
	lifetime := msg.Lifetime
	settingsRepo, statsRepo, eventRepo := s.settingsRepo, s.statsRepo, s.eventRepo
	playAgain := func() tea.Cmd {
		return func() tea.Msg {
			return router.ReplaceScreenMsg{
				Screen: New(settingsRepo, statsRepo, eventRepo),
			}
		}
	}
	return s, func() tea.Msg {
		return router.ReplaceScreenMsg{
			Screen: result.New(session, lifetime, playAgain),
		}
	}
}

// autoAdvanceCmd schedules the post-feedback advance for the given round.
func autoAdvanceCmd(token int) tea.Cmd {
	return tea.Tick(feedbackDelay, func(time.Time) tea.Msg {
		return autoAdvanceMsg{Token: token}
	})
}
