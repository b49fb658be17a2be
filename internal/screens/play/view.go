package play

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/yuiseki/sysquiz/internal/quiz"
	"github.com/yuiseki/sysquiz/internal/ui/components"
	"github.com/yuiseki/sysquiz/internal/ui/theme"
)

const questionPrompt = "Which of these is a real Linux system call?"

func (s *PlayScreen) View(width, height int) string {
	if s.errMsg != "" {
		return renderError(width, s.errMsg)
	}
	if s.session == nil {
		return s.renderLoading(width)
	}
	if s.showingQuitConfirm {
		return renderQuitConfirm(width)
	}
	return s.renderGame(width)
}

func (s *PlayScreen) renderGame(width int) string {
	session := s.session
	total := session.Settings().QuestionCount

	var b strings.Builder

	// Info line: round counter left, score and streak right.
	infoLeft := lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Render(fmt.Sprintf("  Round %d/%d", session.RoundIndex()+1, total))

	streakStr := ""
	if session.CurrentStreak() >= 2 {
		streakStr = lipgloss.NewStyle().
			Foreground(theme.ArcadeYellow).
			Render(fmt.Sprintf("  ⚡%d", session.CurrentStreak()))
	}
	infoRight := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("%s %d",
			lipgloss.NewStyle().Foreground(theme.Success).Render("✓"),
			session.CorrectCount(),
		)) + streakStr

	infoLine := infoLeft
	rightPad := width - lipgloss.Width(infoLeft) - lipgloss.Width(infoRight) - 4
	if rightPad > 0 {
		infoLine += strings.Repeat(" ", rightPad) + infoRight
	}

	b.WriteString(infoLine)
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", max(width-4, 0))))
	b.WriteString("\n\n")

	// Per-round dots.
	results := session.Results()
	verdicts := make([]bool, len(results))
	for i, r := range results {
		verdicts[i] = r.Correct
	}
	answered := len(results)
	current := session.RoundIndex()
	if s.feedback != nil {
		// While the verdict is up, the answered round keeps its dot hollow-free.
		current = -1
	}
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		components.RoundDots(verdicts, answered, total, current)))
	b.WriteString("\n\n")

	// Question prompt (centered).
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Bold(true).
		Render(questionPrompt))
	b.WriteString("\n\n")

	// Options.
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.choices.View()))

	// Verdict overlay below the options.
	if s.feedback != nil {
		b.WriteString("\n")
		b.WriteString(s.renderFeedback(width))
	} else {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("Select (1-3) or use arrows + Enter"))
	}

	return b.String()
}

// renderFeedback renders the verdict, scaled by the configured effect
// intensity.
func (s *PlayScreen) renderFeedback(width int) string {
	fb := s.feedback
	intensity := s.session.Settings().EffectIntensity

	var b strings.Builder

	verdict := "CORRECT!"
	color := theme.Success
	if !fb.Correct {
		verdict = "WRONG"
		color = theme.Error
	}

	switch intensity {
	case quiz.EffectSubtle:
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(color).
			Render(verdict))
	case quiz.EffectIntense:
		card := lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(color).
			Foreground(color).
			Bold(true).
			Padding(0, 3).
			Render(verdict)
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, card))
	default:
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(color).
			Bold(true).
			Render(verdict))
	}

	if !fb.Correct {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render(fmt.Sprintf("The real one is %s", fb.CorrectAnswer)))
	} else if s.session.CurrentStreak() >= 3 && intensity != quiz.EffectSubtle {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.ArcadeYellow).
			Bold(true).
			Render(fmt.Sprintf("⚡ STREAK x%d!", s.session.CurrentStreak())))
	}

	return b.String()
}

// renderQuitConfirm renders the quit confirmation dialog.
func renderQuitConfirm(width int) string {
	var b strings.Builder
	b.WriteString("\n\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Bold(true).
		Render("Quit this game?"))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("An unfinished game doesn't count toward your stats."))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Error).
		Render("[Y] Yes, quit"))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Render("[N] No, keep playing"))

	return b.String()
}

// renderLoading renders the loading state.
func (s *PlayScreen) renderLoading(width int) string {
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("\n\n\n  " + s.spinner.View() + " Shuffling syscalls...")
}

// renderError renders an error message.
func renderError(width int, errMsg string) string {
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Error).
		Render(fmt.Sprintf("\n\n\n  Error: %s\n\n  Press any key to go back.", errMsg))
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
