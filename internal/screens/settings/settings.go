package settings

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/yuiseki/sysquiz/internal/quiz"
	"github.com/yuiseki/sysquiz/internal/screen"
	"github.com/yuiseki/sysquiz/internal/store"
	"github.com/yuiseki/sysquiz/internal/ui/layout"
	"github.com/yuiseki/sysquiz/internal/ui/theme"
)

// row indexes into the settings list.
const (
	rowQuestionCount = iota
	rowDifficulty
	rowEffectIntensity
	rowSound
	rowCount
)

// savedMsg reports the outcome of a background save.
type savedMsg struct {
	Err error
}

// SettingsScreen lets the player adjust game options. Every change is
// persisted immediately, so backing out never loses an adjustment.
type SettingsScreen struct {
	repo     store.SettingsRepo
	settings quiz.Settings
	selected int
	saveErr  string
}

var _ screen.Screen = (*SettingsScreen)(nil)
var _ screen.KeyHintProvider = (*SettingsScreen)(nil)

// New creates a new SettingsScreen with the persisted settings loaded.
func New(repo store.SettingsRepo) *SettingsScreen {
	s := quiz.DefaultSettings()
	if repo != nil {
		s = repo.Load(context.Background())
	}
	return &SettingsScreen{
		repo:     repo,
		settings: s,
	}
}

func (s *SettingsScreen) Init() tea.Cmd {
	return nil
}

func (s *SettingsScreen) Title() string {
	return "Settings"
}

func (s *SettingsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "←→", Description: "Change"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *SettingsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case savedMsg:
		if msg.Err != nil {
			s.saveErr = msg.Err.Error()
		} else {
			s.saveErr = ""
		}
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if s.selected > 0 {
				s.selected--
			}
		case "down", "j":
			if s.selected < rowCount-1 {
				s.selected++
			}
		case "left", "h":
			s.cycle(-1)
			return s, s.save()
		case "right", "l", "enter", "space", " ":
			s.cycle(1)
			return s, s.save()
		}
	}
	return s, nil
}

// cycle steps the selected setting through its allowed values.
func (s *SettingsScreen) cycle(dir int) {
	switch s.selected {
	case rowQuestionCount:
		s.settings.QuestionCount = cycleInt(quiz.QuestionCounts, s.settings.QuestionCount, dir)
	case rowDifficulty:
		s.settings.Difficulty = cycleValue(quiz.Difficulties, s.settings.Difficulty, dir)
	case rowEffectIntensity:
		s.settings.EffectIntensity = cycleValue(quiz.EffectIntensities, s.settings.EffectIntensity, dir)
	case rowSound:
		s.settings.SoundEnabled = !s.settings.SoundEnabled
	}
}

// save persists the current settings off the UI loop.
func (s *SettingsScreen) save() tea.Cmd {
	if s.repo == nil {
		return nil
	}
	repo := s.repo
	settings := s.settings
	return func() tea.Msg {
		return savedMsg{Err: repo.Save(context.Background(), settings)}
	}
}

func cycleInt(allowed []int, current, dir int) int {
	for i, v := range allowed {
		if v == current {
			return allowed[(i+dir+len(allowed))%len(allowed)]
		}
	}
	return allowed[0]
}

func cycleValue[T comparable](allowed []T, current T, dir int) T {
	for i, v := range allowed {
		if v == current {
			return allowed[(i+dir+len(allowed))%len(allowed)]
		}
	}
	return allowed[0]
}

func (s *SettingsScreen) View(width, height int) string {
	var b strings.Builder
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Bold(true).
		Render("Game Settings"))
	b.WriteString("\n\n")

	sound := "OFF"
	if s.settings.SoundEnabled {
		sound = "ON"
	}
	rows := []struct {
		label string
		value string
	}{
		{"Questions per game", fmt.Sprintf("%d", s.settings.QuestionCount)},
		{"Difficulty", strings.ToUpper(string(s.settings.Difficulty))},
		{"Effect intensity", strings.ToUpper(string(s.settings.EffectIntensity))},
		{"Sound", sound},
	}

	for i, row := range rows {
		line := fmt.Sprintf("%-22s ◂ %s ▸", row.label, row.value)
		style := lipgloss.NewStyle().Foreground(theme.Text)
		if i == s.selected {
			line = "▸ " + line
			style = style.Foreground(theme.Primary).Bold(true)
		} else {
			line = "  " + line
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, style.Render(line)))
		b.WriteString("\n")
	}

	if s.saveErr != "" {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Error).
			Render("Could not save settings: " + s.saveErr))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Italic(true).
		Render("Changes are saved automatically."))

	return b.String()
}
