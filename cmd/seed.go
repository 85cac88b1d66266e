package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/prepwise/satprep/internal/catalog"
	"github.com/spf13/cobra"
)

var seedCmd = &cobra.Command{
	Use:   "seed [file.json]",
	Short: "Load questions into the question bank",
	Long:  "Load the bundled starter question bank into the store, or import questions from a JSON file. Questions whose IDs already exist are skipped.",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var questions []catalog.Question
		var err error
		if len(args) == 1 {
			data, readErr := os.ReadFile(args[0])
			if readErr != nil {
				return fmt.Errorf("read %s: %w", args[0], readErr)
			}
			questions, err = catalog.ParseQuestions(data)
			if err != nil {
				return fmt.Errorf("import %s: %w", args[0], err)
			}
		} else {
			questions, err = catalog.Bundled()
			if err != nil {
				return fmt.Errorf("load bundled bank: %w", err)
			}
		}

		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		inserted, err := s.QuestionRepo().Import(context.Background(), questions)
		if err != nil {
			return fmt.Errorf("import questions: %w", err)
		}

		skipped := len(questions) - inserted
		fmt.Printf("Imported %d questions (%d already present).\n", inserted, skipped)
		return nil
	},
}
