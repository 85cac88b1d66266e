package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/prepwise/satprep/internal/adaptive"
	"github.com/prepwise/satprep/internal/skillgraph"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show per-skill mastery and practice totals",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		ctx := context.Background()
		userID := resolveUser(cmd)

		graph := skillgraph.Default()
		engine, err := loadEngine(ctx, s, userID, graph)
		if err != nil {
			return err
		}

		for _, subject := range skillgraph.AllSubjects() {
			fmt.Println(skillgraph.SubjectDisplayName(subject))
			fmt.Println(strings.Repeat("-", 92))
			fmt.Printf("%-42s  %-10s  %5s  %5s  %8s  %s\n",
				"Skill", "Level", "Prof", "Acc", "Attempts", "Status")
			fmt.Println(strings.Repeat("-", 92))

			attempted := 0
			mastered := 0
			skills := graph.BySubject(subject)
			for _, skill := range skills {
				st := engine.State(skill.ID)
				if st == nil {
					continue
				}
				status := "locked"
				if st.Unlocked {
					status = "unlocked"
				}
				if st.Level == adaptive.LevelMastered {
					mastered++
				}
				if st.Attempts > 0 {
					attempted++
				}
				fmt.Printf("%-42s  %-10s  %5.0f  %5.2f  %8d  %s\n",
					truncate(skill.Name, 42), st.Level, st.Proficiency, st.RecentAccuracy, st.Attempts, status)
			}
			fmt.Printf("\n%d of %d skills mastered, %d practiced.\n\n", mastered, len(skills), attempted)
		}

		events, err := s.EventRepo()
		if err != nil {
			return fmt.Errorf("open event log: %w", err)
		}
		records, err := events.RecentAttempts(ctx, userID, 0)
		if err != nil {
			return fmt.Errorf("query attempts: %w", err)
		}
		if len(records) == 0 {
			fmt.Println("No attempts recorded yet.")
			return nil
		}

		correct := 0
		for _, r := range records {
			if r.Correct {
				correct++
			}
		}
		fmt.Printf("Lifetime: %d attempts, %d correct (%.0f%%).\n",
			len(records), correct, 100*float64(correct)/float64(len(records)))
		return nil
	},
}
