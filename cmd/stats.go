package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/joe192839/Mindduel/internal/store"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Print lifetime stats and recent games",
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		matches := st.Matches()
		sum, err := matches.Summarize()
		if err != nil {
			return err
		}
		if sum.Games == 0 {
			fmt.Println("No games recorded yet.")
			return nil
		}

		fmt.Printf("Games: %d\n", sum.Games)
		fmt.Printf("Best score: %d\n", sum.BestScore)
		fmt.Printf("Average score: %.1f\n", sum.AverageScore)
		fmt.Printf("Fastest level reached: %ds per question\n", sum.FastestLevel)

		recent, err := matches.Recent(10)
		if err != nil {
			return err
		}
		if len(recent) == 0 {
			return nil
		}

		fmt.Println("\nRecent games:")
		for _, m := range recent {
			ai := ""
			if m.UsedAIQuestions {
				ai = "  (AI)"
			}
			fmt.Printf("  %s  score %d  lives %d  fastest %ds  %s%s\n",
				m.PlayedAt.Format("2006-01-02 15:04"), m.Score, m.Lives,
				m.HighestSpeedLevel, m.Reason, ai)
		}
		return nil
	},
}
