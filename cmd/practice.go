package cmd

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/prepwise/satprep/internal/adaptive"
	"github.com/prepwise/satprep/internal/catalog"
	"github.com/prepwise/satprep/internal/skillgraph"
	"github.com/prepwise/satprep/internal/store"
	"github.com/spf13/cobra"
)

var practiceCmd = &cobra.Command{
	Use:   "practice",
	Short: "Answer an adaptive batch of practice questions",
	RunE: func(cmd *cobra.Command, args []string) error {
		count, _ := cmd.Flags().GetInt("count")
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

		events, err := s.EventRepo()
		if err != nil {
			return fmt.Errorf("open event log: %w", err)
		}

		graph := skillgraph.Default()
		engine, err := loadEngine(ctx, s, userID, graph)
		if err != nil {
			return err
		}

		pool, err := s.QuestionRepo().Questions(ctx, catalog.Query{Subject: subject})
		if err != nil {
			return fmt.Errorf("load question bank: %w", err)
		}
		if len(pool) == 0 {
			return fmt.Errorf("question bank is empty; run `satprep seed` first")
		}

		batch := engine.SelectQuestions(pool, nil, count, subject)
		if len(batch) == 0 {
			return fmt.Errorf("no questions available for %s", skillgraph.SubjectDisplayName(subject))
		}

		fmt.Printf("%s practice: %d questions. Answer with A-D, or Q to stop.\n\n",
			skillgraph.SubjectDisplayName(subject), len(batch))

		reader := bufio.NewScanner(os.Stdin)
		correct := 0
		answered := 0
		for i, q := range batch {
			fmt.Printf("Q%d. %s\n", i+1, q.Prompt)
			fmt.Printf("  A) %s\n  B) %s\n  C) %s\n  D) %s\n", q.OptionA, q.OptionB, q.OptionC, q.OptionD)

			start := time.Now()
			answer, quit := readAnswer(reader)
			if quit {
				break
			}
			elapsed := time.Since(start)

			isCorrect := answer == q.Answer
			expected := engine.ExpectedAccuracy(q.Skill, q.Difficulty)
			change := engine.RecordResponse(q.Skill, adaptive.Response{
				IsCorrect:        isCorrect,
				TimeSpentMs:      int(elapsed.Milliseconds()),
				Difficulty:       q.Difficulty,
				ExpectedAccuracy: expected,
			})

			if err := events.AppendAttempt(ctx, attemptData(userID, q.Question, isCorrect, elapsed, expected)); err != nil {
				fmt.Fprintln(os.Stderr, "warning: failed to log attempt:", err)
			}

			answered++
			if isCorrect {
				correct++
				fmt.Println("Correct.")
			} else {
				fmt.Printf("Incorrect. Answer: %s. %s\n", q.Answer, q.Rationale)
			}
			if change != nil {
				fmt.Printf("Skill %s is now %s.\n", change.SkillID, change.To)
				for _, id := range change.Unlocked {
					fmt.Printf("Unlocked: %s\n", id)
				}
			}
			fmt.Println()
		}

		if answered > 0 {
			fmt.Printf("Session done: %d/%d correct.\n", correct, answered)
			if err := saveEngine(ctx, s, userID, engine); err != nil {
				return err
			}
		}
		return nil
	},
}

func attemptData(userID string, q catalog.Question, correct bool, elapsed time.Duration, expected float64) store.AttemptEventData {
	return store.AttemptEventData{
		UserID:           userID,
		SkillID:          q.Skill,
		Subject:          string(q.Subject),
		Difficulty:       string(q.Difficulty),
		Correct:          correct,
		TimeMs:           int(elapsed.Milliseconds()),
		ExpectedAccuracy: expected,
	}
}

// readAnswer reads one answer letter from stdin, reprompting on anything
// that isn't A-D. Returns quit=true on Q or EOF.
func readAnswer(reader *bufio.Scanner) (answer string, quit bool) {
	for {
		fmt.Print("> ")
		if !reader.Scan() {
			return "", true
		}
		in := strings.ToUpper(strings.TrimSpace(reader.Text()))
		switch in {
		case "A", "B", "C", "D":
			return in, false
		case "Q":
			return "", true
		default:
			fmt.Println("Enter A, B, C, D, or Q to stop.")
		}
	}
}

func parseSubject(s string) (skillgraph.Subject, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "math", "m":
		return skillgraph.SubjectMath, nil
	case "reading-writing", "rw", "reading", "writing":
		return skillgraph.SubjectReadingWriting, nil
	default:
		return "", fmt.Errorf("unknown subject %q (want math or reading-writing)", s)
	}
}

func init() {
	practiceCmd.Flags().IntP("count", "n", 10, "Number of questions in the batch")
	practiceCmd.Flags().StringP("subject", "s", "math", "Subject to practice (math or reading-writing)")
}
