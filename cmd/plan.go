package cmd

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/prepwise/satprep/internal/skillgraph"
	"github.com/prepwise/satprep/internal/store"
	"github.com/prepwise/satprep/internal/studyplan"
	"github.com/spf13/cobra"
)

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Generate and track a study plan",
}

var planGenerateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a study plan toward your test date",
	RunE: func(cmd *cobra.Command, args []string) error {
		testDateStr, _ := cmd.Flags().GetString("test-date")
		dreamScore, _ := cmd.Flags().GetInt("dream-score")
		hours, _ := cmd.Flags().GetFloat64("hours")
		daysStr, _ := cmd.Flags().GetString("days")

		testDate, err := time.ParseInLocation("2006-01-02", testDateStr, time.Local)
		if err != nil {
			return fmt.Errorf("invalid --test-date %q (want YYYY-MM-DD): %w", testDateStr, err)
		}

		studyDays, err := parseStudyDays(daysStr)
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

		events, err := s.EventRepo()
		if err != nil {
			return fmt.Errorf("open event log: %w", err)
		}
		currentScore := studyplan.CurrentScore(ctx, events, userID)

		gen := studyplan.NewGenerator(skillgraph.Default())
		plan, err := gen.Generate(userID, currentScore, studyplan.Options{
			TestDate:   testDate,
			DreamScore: dreamScore,
			StudyDays:  studyDays,
			StudyHours: hours,
		})
		if err != nil {
			switch {
			case errors.Is(err, studyplan.ErrTestDateInPast):
				return fmt.Errorf("test date %s is in the past", testDateStr)
			case errors.Is(err, studyplan.ErrNoStudyDays):
				return fmt.Errorf("no study days selected; pass --days like mon,wed,fri")
			default:
				return fmt.Errorf("generate plan: %w", err)
			}
		}

		data, err := plan.Marshal()
		if err != nil {
			return fmt.Errorf("encode plan: %w", err)
		}
		if err := s.PlanRepo().Save(ctx, userID, data); err != nil {
			return fmt.Errorf("save plan: %w", err)
		}

		fmt.Printf("Plan %s generated.\n", plan.ID)
		fmt.Printf("Current score estimate: %d   Goal: %d\n", plan.CurrentScore, plan.DreamScore)
		fmt.Printf("Test date: %s   Study days: %d\n", plan.TestDate.Format("2006-01-02"), plan.StudyDaysCount)
		fmt.Printf("Phases: foundation %d, strengthening %d, mastery %d\n",
			plan.Phases.Foundation, plan.Phases.Strengthening, plan.Phases.Mastery)
		fmt.Printf("Tasks: %d (run `satprep plan show` to see them)\n", len(plan.DailyTasks))
		return nil
	},
}

var planShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show upcoming study plan tasks",
	RunE: func(cmd *cobra.Command, args []string) error {
		showAll, _ := cmd.Flags().GetBool("all")

		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		ctx := context.Background()
		plan, err := loadPlan(ctx, s.PlanRepo(), resolveUser(cmd))
		if err != nil {
			return err
		}

		today := time.Now().Truncate(24 * time.Hour)
		shown := 0
		fmt.Printf("Plan %s — test date %s\n\n", plan.ID, plan.TestDate.Format("2006-01-02"))
		fmt.Printf("%-10s  %-13s  %-10s  %-5s  %-36s  %s\n",
			"Date", "Phase", "Type", "Min", "Task", "ID")
		fmt.Println(strings.Repeat("-", 110))
		for _, task := range plan.DailyTasks {
			if !showAll && (task.Completed || task.Date.Before(today)) {
				continue
			}
			mark := " "
			if task.Completed {
				mark = "x"
			}
			fmt.Printf("%-10s  %-13s  %-10s  %5d  [%s] %-32s  %s\n",
				task.Date.Format("2006-01-02"),
				task.Phase,
				task.Type,
				task.EstimatedMinutes,
				mark,
				truncate(task.Title, 32),
				task.ID,
			)
			shown++
			if !showAll && shown >= 20 {
				fmt.Println("... (use --all to see the full plan)")
				break
			}
		}
		return nil
	},
}

var planCompleteCmd = &cobra.Command{
	Use:   "complete <task-id>",
	Short: "Mark a study plan task complete",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		ctx := context.Background()
		userID := resolveUser(cmd)
		plan, err := loadPlan(ctx, s.PlanRepo(), userID)
		if err != nil {
			return err
		}

		err = studyplan.CompleteTask(plan, plan.ID, args[0], time.Now())
		if err != nil {
			if errors.Is(err, studyplan.ErrTaskNotFound) {
				return fmt.Errorf("no task %q in the current plan", args[0])
			}
			return fmt.Errorf("complete task: %w", err)
		}

		data, err := plan.Marshal()
		if err != nil {
			return fmt.Errorf("encode plan: %w", err)
		}
		if err := s.PlanRepo().Save(ctx, userID, data); err != nil {
			return fmt.Errorf("save plan: %w", err)
		}

		fmt.Printf("Task %s marked complete.\n", args[0])
		return nil
	},
}

// loadPlan loads and decodes the learner's current plan.
func loadPlan(ctx context.Context, repo store.PlanRepo, userID string) (*studyplan.Plan, error) {
	data, err := repo.Load(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("load plan: %w", err)
	}
	if data == nil {
		return nil, fmt.Errorf("no study plan found; run `satprep plan generate` first")
	}
	plan, err := studyplan.Unmarshal(data)
	if err != nil {
		return nil, fmt.Errorf("decode plan: %w", err)
	}
	return plan, nil
}

// parseStudyDays parses a comma list like "mon,wed,fri" into a weekday set.
func parseStudyDays(s string) (map[time.Weekday]bool, error) {
	names := map[string]time.Weekday{
		"sun": time.Sunday, "mon": time.Monday, "tue": time.Tuesday,
		"wed": time.Wednesday, "thu": time.Thursday, "fri": time.Friday,
		"sat": time.Saturday,
	}
	days := make(map[time.Weekday]bool)
	for _, part := range strings.Split(s, ",") {
		part = strings.ToLower(strings.TrimSpace(part))
		if part == "" {
			continue
		}
		if len(part) > 3 {
			part = part[:3]
		}
		d, ok := names[part]
		if !ok {
			valid := make([]string, 0, len(names))
			for n := range names {
				valid = append(valid, n)
			}
			sort.Strings(valid)
			return nil, fmt.Errorf("unknown day %q (valid: %s)", part, strings.Join(valid, ", "))
		}
		days[d] = true
	}
	return days, nil
}

func init() {
	planGenerateCmd.Flags().String("test-date", "", "SAT test date (YYYY-MM-DD)")
	planGenerateCmd.Flags().Int("dream-score", 1400, "Target SAT score (400-1600)")
	planGenerateCmd.Flags().Float64("hours", 2, "Study hours per study day")
	planGenerateCmd.Flags().String("days", "mon,tue,wed,thu,fri,sat,sun", "Comma list of study days")
	_ = planGenerateCmd.MarkFlagRequired("test-date")

	planShowCmd.Flags().Bool("all", false, "Show every task, including past and completed")

	planCmd.AddCommand(planGenerateCmd)
	planCmd.AddCommand(planShowCmd)
	planCmd.AddCommand(planCompleteCmd)
}
