package home

import (
	"context"
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/yuiseki/sysquiz/internal/quiz"
	"github.com/yuiseki/sysquiz/internal/router"
	"github.com/yuiseki/sysquiz/internal/screen"
	"github.com/yuiseki/sysquiz/internal/screens/history"
	"github.com/yuiseki/sysquiz/internal/screens/play"
	"github.com/yuiseki/sysquiz/internal/screens/settings"
	"github.com/yuiseki/sysquiz/internal/store"
	"github.com/yuiseki/sysquiz/internal/ui/components"
)

// StatsRefreshedMsg carries freshly loaded lifetime statistics. The app
// model emits it after screen transitions so the totals shown here stay
// current once a game finishes.
type StatsRefreshedMsg quiz.Statistics

// HomeScreen is the main home screen of the application.
type HomeScreen struct {
	menu       components.Menu
	menuLabels []string
	stats      quiz.Statistics
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates a new HomeScreen.
func New(settingsRepo store.SettingsRepo, statsRepo store.StatsRepo, eventRepo store.EventRepo) *HomeScreen {
	var stats quiz.Statistics
	if statsRepo != nil {
		stats = statsRepo.Load(context.Background())
	}

	menuLabels := []string{"START GAME", "SETTINGS", "HISTORY", "EXIT GAME"}

	items := []components.MenuItem{
		{Label: menuLabels[0], Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{
					Screen: play.New(settingsRepo, statsRepo, eventRepo),
				}
			}
		}},
		{Label: menuLabels[1], Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: settings.New(settingsRepo)}
			}
		}},
		{Label: menuLabels[2], Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: history.New(eventRepo)}
			}
		}},
		{Label: menuLabels[3], Action: func() tea.Cmd {
			return tea.Quit
		}},
	}

	return &HomeScreen{
		menu:       components.NewMenu(items),
		menuLabels: menuLabels,
		stats:      stats,
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if m, ok := msg.(StatsRefreshedMsg); ok {
		h.stats = quiz.Statistics(m)
		return h, nil
	}

	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	// height is the content area; estimate full terminal height
	// by adding back header (3) + footer (3) + frame gaps
	termHeight := height + 8
	compact := termHeight < 30 || width < 100

	// All sections share a uniform content width so they line up.
	cw := components.ContentWidth(width)

	var sections []string

	// 1. Title
	sections = append(sections, renderTitle(cw, compact))

	// 2. Mascot (full mode only)
	if !compact {
		variant := MascotIdle
		if h.stats.HighestStreak >= 10 {
			variant = MascotCelebrating
		}
		sections = append(sections, renderMascotBox(variant, cw))
	}

	// 3. Stats bar (double-bordered, same width)
	sections = append(sections, renderStatsBar(
		h.stats.TotalGamesPlayed, h.stats.TotalCorrectAnswers, h.stats.HighestStreak, cw, compact))

	// 4. Menu (same width box)
	sections = append(sections, renderArcadeMenu(
		h.menuLabels, h.menu.Selected, cw))

	content := strings.Join(sections, "\n\n")

	// Wrap in cabinet frame, centered in the full area
	return components.CabinetFrame(content, width, height)
}

func (h *HomeScreen) Title() string {
	return "Home"
}
