package cmd

import (
	"context"
	"fmt"

	"github.com/prepwise/satprep/internal/studyplan"
	"github.com/spf13/cobra"
)

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Estimate your current SAT score from practice history",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		ctx := context.Background()
		userID := resolveUser(cmd)

		events, err := s.EventRepo()
		if err != nil {
			return fmt.Errorf("open event log: %w", err)
		}

		records, err := events.RecentAttempts(ctx, userID, 100)
		if err != nil {
			return fmt.Errorf("query attempts: %w", err)
		}

		score := studyplan.CurrentScore(ctx, events, userID)
		if len(records) == 0 {
			fmt.Printf("Estimated score: %d (no practice history yet, baseline estimate)\n", score)
			return nil
		}

		correct := 0
		for _, r := range records {
			if r.Correct {
				correct++
			}
		}
		fmt.Printf("Estimated score: %d\n", score)
		fmt.Printf("Based on your last %d attempts (%d correct).\n", len(records), correct)
		return nil
	},
}
