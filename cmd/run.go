package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yuiseki/sysquiz/internal/app"
	"github.com/yuiseki/sysquiz/internal/quiz"
	"github.com/yuiseki/sysquiz/internal/store"
)

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	if err := quiz.ValidatePools(); err != nil {
		return fmt.Errorf("question pools: %w", err)
	}

	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	return app.Run(app.Options{
		SettingsRepo: st.SettingsRepo(),
		StatsRepo:    st.StatsRepo(),
		EventRepo:    st.EventRepo(),
	})
}
