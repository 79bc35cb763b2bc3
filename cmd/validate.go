package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/nourlabs/coach/internal/quizgen"
	"github.com/nourlabs/coach/internal/sheets"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate <payload.json>",
	Short: "Lint a quiz or sheet batch payload",
	Long: "Runs the same validator the pipeline applies to provider output.\n" +
		"All violations are reported, not just the first.",
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		kind, _ := cmd.Flags().GetString("kind")

		data, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("read %s: %w", args[0], err)
		}

		var violations []string
		switch kind {
		case "quiz":
			var batch quizgen.Batch
			if err := json.Unmarshal(data, &batch); err != nil {
				return fmt.Errorf("parse quiz batch: %w", err)
			}
			violations = quizgen.ValidateBatch(batch).Errors
		case "sheets":
			var batch sheets.Batch
			if err := json.Unmarshal(data, &batch); err != nil {
				return fmt.Errorf("parse sheet batch: %w", err)
			}
			violations = sheets.ValidateBatch(batch).Errors
		default:
			return fmt.Errorf("unknown kind %q (want quiz or sheets)", kind)
		}

		if len(violations) == 0 {
			fmt.Println("OK")
			return nil
		}
		for _, v := range violations {
			fmt.Println("✗", v)
		}
		return fmt.Errorf("%d violation(s)", len(violations))
	},
}

func init() {
	validateCmd.Flags().StringP("kind", "k", "quiz", "Payload kind: quiz or sheets")
}
