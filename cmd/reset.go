package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Wipe learner progress",
	Long:  "Delete the learner's study plan and proficiency snapshots. The attempt history is append-only and is kept; the next practice session starts from fresh skill state.",
	RunE: func(cmd *cobra.Command, args []string) error {
		force, _ := cmd.Flags().GetBool("force")
		userID := resolveUser(cmd)
		if !force {
			return fmt.Errorf("this deletes all progress for %q; re-run with --force to confirm", userID)
		}

		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		ctx := context.Background()
		if err := s.PlanRepo().Delete(ctx, userID); err != nil {
			return fmt.Errorf("delete plan: %w", err)
		}
		if err := s.SnapshotRepo().Prune(ctx, userID, 0); err != nil {
			return fmt.Errorf("delete snapshots: %w", err)
		}

		fmt.Printf("Progress for %q reset.\n", userID)
		return nil
	},
}

func init() {
	resetCmd.Flags().Bool("force", false, "Confirm the reset")
}
