package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/prepwise/satprep/internal/insight"
	"github.com/prepwise/satprep/internal/llm"
	"github.com/prepwise/satprep/internal/skillgraph"
	"github.com/prepwise/satprep/internal/store"
	"github.com/spf13/cobra"
)

var weaknessesCmd = &cobra.Command{
	Use:   "weaknesses",
	Short: "Rank your weakest skills",
	RunE: func(cmd *cobra.Command, args []string) error {
		useAI, _ := cmd.Flags().GetBool("ai")
		subjectStr, _ := cmd.Flags().GetString("subject")

		subject, err := parseSubject(subjectStr)
		if err != nil {
			return err
		}

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

		stats := insight.StatsFromEngine(engine, graph, subject)
		if len(stats) == 0 {
			fmt.Printf("No weaknesses detected in %s. Keep practicing.\n",
				skillgraph.SubjectDisplayName(subject))
			return nil
		}

		fmt.Printf("Weakest %s skills\n", skillgraph.SubjectDisplayName(subject))
		fmt.Println(strings.Repeat("-", 86))
		fmt.Printf("%-42s  %-9s  %5s  %5s  %8s\n", "Skill", "Priority", "Prof", "Acc", "Attempts")
		fmt.Println(strings.Repeat("-", 86))
		for _, st := range stats {
			fmt.Printf("%-42s  %-9s  %5.0f  %5.2f  %8d\n",
				truncate(st.Name, 42), st.Priority, st.Proficiency, st.RecentAccuracy, st.Attempts)
		}

		if !useAI {
			return nil
		}

		events, err := s.EventRepo()
		if err != nil {
			return fmt.Errorf("open event log: %w", err)
		}
		provider := buildProvider(ctx, events)
		svc := insight.NewService(provider, insight.DefaultConfig())

		report, err := svc.Analyze(ctx, stats)
		if err != nil {
			return fmt.Errorf("analyze weaknesses: %w", err)
		}

		fmt.Println()
		if report.Source == "heuristic" {
			fmt.Println("Analysis (offline heuristic):")
		} else {
			fmt.Println("Analysis:")
		}
		fmt.Println(report.Summary)
		fmt.Println()
		for _, d := range report.Skills {
			fmt.Printf("- %s [%s]: %s\n", d.SkillID, d.Priority, d.Diagnosis)
		}
		if len(report.FocusOrder) > 0 {
			fmt.Printf("\nSuggested order: %s\n", strings.Join(report.FocusOrder, " > "))
		}
		if report.EstimatedScoreImpact > 0 {
			fmt.Printf("Estimated score impact: +%d points\n", report.EstimatedScoreImpact)
		}
		return nil
	},
}

// buildProvider constructs an LLM provider from SATPREP_* config, falling
// back to probing the standard API key env vars. Returns nil when nothing
// is configured; the insight service degrades to its heuristic report.
func buildProvider(ctx context.Context, events store.EventRepo) llm.Provider {
	cfg := llm.ConfigFromEnv()
	if cfg.Validate() != nil {
		discovered, ok := llm.DiscoverConfig()
		if !ok {
			fmt.Fprintln(os.Stderr, "No LLM API key configured; using offline analysis.")
			return nil
		}
		cfg = discovered
	}

	provider, err := llm.NewProvider(ctx, cfg, events)
	if err != nil {
		fmt.Fprintln(os.Stderr, "LLM provider unavailable:", err)
		return nil
	}
	return provider
}

func init() {
	weaknessesCmd.Flags().Bool("ai", false, "Generate an AI weakness report")
	weaknessesCmd.Flags().StringP("subject", "s", "math", "Subject to analyze (math or reading-writing)")
}
