package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/prepwise/satprep/internal/adaptive"
	"github.com/prepwise/satprep/internal/skillgraph"
	"github.com/prepwise/satprep/internal/store"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "satprep",
	Short: "Adaptive SAT practice engine",
	Long:  "Satprep — terminal SAT prep that tracks skill mastery, builds a study plan toward your test date, and targets practice at your weakest skills.",
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides SATPREP_DB env var)")
	rootCmd.PersistentFlags().String("user", "default", "Learner profile to operate on")

	rootCmd.AddCommand(planCmd)
	rootCmd.AddCommand(practiceCmd)
	rootCmd.AddCommand(scoreCmd)
	rootCmd.AddCommand(weaknessesCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(seedCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(updateCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then SATPREP_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

func resolveUser(cmd *cobra.Command) string {
	u, _ := cmd.Flags().GetString("user")
	if u == "" {
		return "default"
	}
	return u
}

// openStore resolves the DB path and opens the store. Callers own Close.
func openStore(cmd *cobra.Command) (*store.Store, error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, fmt.Errorf("resolve database path: %w", err)
	}
	s, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	return s, nil
}

// loadEngine restores the learner's adaptive engine from the latest
// snapshot, or starts fresh when none exists.
func loadEngine(ctx context.Context, s *store.Store, userID string, g *skillgraph.Graph) (*adaptive.Engine, error) {
	snap, err := s.SnapshotRepo().Latest(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("load snapshot: %w", err)
	}
	if snap == nil {
		return adaptive.NewEngine(g, nil), nil
	}
	return adaptive.NewEngine(g, &snap.Data), nil
}

// saveEngine snapshots the engine state and prunes old snapshots.
func saveEngine(ctx context.Context, s *store.Store, userID string, e *adaptive.Engine) error {
	seq, err := s.NextSequence(ctx)
	if err != nil {
		return fmt.Errorf("reserve sequence: %w", err)
	}
	snap := &store.Snapshot{
		UserID:    userID,
		Sequence:  seq,
		Timestamp: time.Now().UTC(),
		Data: store.SnapshotData{
			Version:  1,
			Adaptive: e.SnapshotData(),
		},
	}
	if err := s.SnapshotRepo().Save(ctx, snap); err != nil {
		return fmt.Errorf("save snapshot: %w", err)
	}
	if err := s.SnapshotRepo().Prune(ctx, userID, snapshotKeep); err != nil {
		return fmt.Errorf("prune snapshots: %w", err)
	}
	return nil
}

// snapshotKeep bounds per-learner snapshot history.
const snapshotKeep = 10
