package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yuiseki/sysquiz/internal/store"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show lifetime game statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
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

		stats := st.StatsRepo().Load(ctx)
		fmt.Printf("Games played:     %d\n", stats.TotalGamesPlayed)
		fmt.Printf("Correct answers:  %d\n", stats.TotalCorrectAnswers)
		fmt.Printf("Best streak:      %d\n", stats.HighestStreak)

		answered, correct, err := st.EventRepo().AnswerTotals(ctx)
		if err != nil {
			return fmt.Errorf("query answer totals: %w", err)
		}
		if answered > 0 {
			fmt.Printf("Rounds answered:  %d (%.0f%% correct, unfinished games included)\n",
				answered, float64(correct)/float64(answered)*100)
		}
		return nil
	},
}
