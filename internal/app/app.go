package app

import (
	"context"
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/yuiseki/sysquiz/internal/quiz"
	"github.com/yuiseki/sysquiz/internal/router"
	"github.com/yuiseki/sysquiz/internal/screen"
	"github.com/yuiseki/sysquiz/internal/screens/home"
	"github.com/yuiseki/sysquiz/internal/store"
	"github.com/yuiseki/sysquiz/internal/ui/layout"
)

// Options carries the repositories the TUI screens depend on.
type Options struct {
	SettingsRepo store.SettingsRepo
	StatsRepo    store.StatsRepo
	EventRepo    store.EventRepo
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router *router.Router
	opts   Options
	stats  quiz.Statistics
	width  int
	height int
}

// newAppModel creates a new AppModel with the home screen.
func newAppModel(opts Options) AppModel {
	homeScreen := home.New(opts.SettingsRepo, opts.StatsRepo, opts.EventRepo)
	return AppModel{
		router: router.New(homeScreen),
		opts:   opts,
	}
}

func (m AppModel) Init() tea.Cmd {
	return m.loadStats()
}

// loadStats reads the lifetime statistics off the UI loop.
func (m AppModel) loadStats() tea.Cmd {
	repo := m.opts.StatsRepo
	if repo == nil {
		return nil
	}
	return func() tea.Msg {
		return home.StatsRefreshedMsg(repo.Load(context.Background()))
	}
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case home.StatsRefreshedMsg:
		// Header totals, plus the home screen's own stats bar and mascot.
		m.stats = quiz.Statistics(msg)
		return m, m.router.Update(msg)

	case router.PopScreenMsg, router.ReplaceScreenMsg:
		// Screen transitions may follow a finished game; refresh the header.
		cmd := m.router.Update(msg)
		return m, tea.Batch(cmd, m.loadStats())

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			// Screens in the middle of a game handle esc themselves.
			if h, ok := m.router.Active().(screen.EscHandler); ok && h.HandlesEsc() {
				break
			}
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
			return m, nil
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	header := layout.RenderHeader(title, m.stats.TotalGamesPlayed, m.stats.HighestStreak, m.width)

	var footerHints []layout.KeyHint
	if hp, ok := active.(screen.KeyHintProvider); ok {
		footerHints = hp.KeyHints()
	}
	if footerHints == nil {
		if m.router.Depth() > 1 {
			footerHints = []layout.KeyHint{
				{Key: "Esc", Description: "Back"},
				{Key: "Ctrl+C", Description: "Quit"},
			}
		} else {
			footerHints = []layout.KeyHint{
				{Key: "↑↓", Description: "Navigate"},
				{Key: "Enter", Description: "Select"},
				{Key: "Ctrl+C", Description: "Quit"},
			}
		}
	}

	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
