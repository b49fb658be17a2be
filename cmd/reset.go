package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yuiseki/sysquiz/internal/store"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Reset settings, lifetime statistics and the game history",
	RunE: func(cmd *cobra.Command, args []string) error {
		yes, _ := cmd.Flags().GetBool("yes")
		if !yes {
			fmt.Println("This wipes your settings, lifetime statistics and game history.")
			fmt.Println("Re-run with --yes to confirm.")
			return nil
		}

		ctx := cmd.Context()
		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		if err := st.SettingsRepo().Reset(ctx); err != nil {
			return fmt.Errorf("reset settings: %w", err)
		}
		if err := st.StatsRepo().Reset(ctx); err != nil {
			return fmt.Errorf("reset statistics: %w", err)
		}
		if err := st.EventRepo().Reset(ctx); err != nil {
			return fmt.Errorf("reset game history: %w", err)
		}

		fmt.Println("Settings, statistics and game history reset.")
		return nil
	},
}

func init() {
	resetCmd.Flags().Bool("yes", false, "Confirm the reset")
}
