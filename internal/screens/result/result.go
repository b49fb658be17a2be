package result

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/yuiseki/sysquiz/internal/quiz"
	"github.com/yuiseki/sysquiz/internal/router"
	"github.com/yuiseki/sysquiz/internal/screen"
	"github.com/yuiseki/sysquiz/internal/ui/components"
	"github.com/yuiseki/sysquiz/internal/ui/layout"
	"github.com/yuiseki/sysquiz/internal/ui/theme"
)

// ResultScreen displays the finished game and the updated lifetime totals.
type ResultScreen struct {
	session   *quiz.Session
	lifetime  quiz.Statistics
	playAgain func() tea.Cmd
	selected  int
}

var _ screen.Screen = (*ResultScreen)(nil)
var _ screen.KeyHintProvider = (*ResultScreen)(nil)

// New creates a new ResultScreen. playAgain, when non-nil, is invoked for
// the PLAY AGAIN action (the play screen supplies it so this package does
// not need to construct one).
func New(session *quiz.Session, lifetime quiz.Statistics, playAgain func() tea.Cmd) *ResultScreen {
	return &ResultScreen{
		session:   session,
		lifetime:  lifetime,
		playAgain: playAgain,
	}
}

func (s *ResultScreen) Init() tea.Cmd {
	return nil
}

func (s *ResultScreen) Title() string {
	return "Game Over"
}

func (s *ResultScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Esc", Description: "Home"},
	}
}

func (s *ResultScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if s.selected > 0 {
			s.selected--
		}
	case "down", "j":
		if s.selected < 1 {
			s.selected++
		}
	case "enter":
		if s.selected == 0 && s.playAgain != nil {
			return s, s.playAgain()
		}
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	}
	return s, nil
}

func (s *ResultScreen) View(width, height int) string {
	session := s.session
	if session == nil {
		return ""
	}

	total := session.Settings().QuestionCount
	correct := session.CorrectCount()
	var accuracy float64
	if total > 0 {
		accuracy = float64(correct) / float64(total) * 100
	}

	var b strings.Builder
	b.WriteString("\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Bold(true).
		Render("GAME OVER"))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Bold(true).
		Render(fmt.Sprintf("%d / %d correct", correct, total)))
	b.WriteString("\n")

	elapsed := session.Elapsed()
	mins := int(elapsed.Minutes())
	secs := int(elapsed.Seconds()) % 60
	statsLine := fmt.Sprintf("Accuracy: %.0f%%        Best streak: %d        Time: %d:%02d",
		accuracy, session.MaxStreak(), mins, secs)
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render(statsLine))
	b.WriteString("\n\n")

	// Per-round verdicts.
	outcomes := make([]bool, 0, total)
	for _, r := range session.Results() {
		outcomes = append(outcomes, r.Correct)
	}
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		components.RoundDots(outcomes, len(outcomes), total, -1)))
	b.WriteString("\n\n")

	// Lifetime divider.
	divider := lipgloss.NewStyle().Foreground(theme.Border).Render(
		strings.Repeat("─", min(width-8, 60)))
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		lipgloss.NewStyle().Foreground(theme.TextDim).Render("Lifetime")))
	b.WriteString("\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, divider))
	b.WriteString("\n\n")

	lifetimeLine := fmt.Sprintf("Games: %d        Correct answers: %d        Best streak: %d",
		s.lifetime.TotalGamesPlayed, s.lifetime.TotalCorrectAnswers, s.lifetime.HighestStreak)
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Render(lifetimeLine))
	b.WriteString("\n\n")

	// Actions.
	for i, label := range []string{"PLAY AGAIN", "HOME"} {
		style := lipgloss.NewStyle().Foreground(theme.Text)
		line := "   " + label
		if i == s.selected {
			style = style.Foreground(theme.ArcadeYellow).Bold(true)
			line = " ▸ " + label
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, style.Render(line)))
		b.WriteString("\n")
	}

	return b.String()
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
