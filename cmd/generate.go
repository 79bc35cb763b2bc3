package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/nourlabs/coach/internal/coach"
	"github.com/nourlabs/coach/internal/quizgen"
	"github.com/spf13/cobra"
)

var generateCmd = &cobra.Command{
	Use:   "generate <file>",
	Short: "Generate a quiz from course notes",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		count, _ := cmd.Flags().GetInt("count")
		exam, _ := cmd.Flags().GetBool("exam")
		remote, _ := cmd.Flags().GetBool("remote")
		saveKey, _ := cmd.Flags().GetString("save")
		asJSON, _ := cmd.Flags().GetBool("json")

		raw, err := readInput(args[0])
		if err != nil {
			return err
		}

		var svc *coach.Service
		if remote || saveKey != "" {
			st, err := openStore(cmd)
			if err != nil {
				return err
			}
			defer st.Close()
			svc = newService(cmd, st)
		} else {
			svc = localService()
		}

		items := svc.GenerateQuiz(cmd.Context(), raw, coach.QuizOptions{
			Count:    count,
			ExamMode: exam,
			Remote:   remote,
		})

		if saveKey != "" {
			if err := svc.SaveQuiz(cmd.Context(), saveKey, "", items); err != nil {
				return fmt.Errorf("save quiz: %w", err)
			}
			fmt.Fprintf(os.Stderr, "Saved %d questions under %q.\n", len(items), saveKey)
		}

		if asJSON {
			batch := quizgen.Batch{Status: quizgen.StatusOK}
			for _, it := range items {
				batch.Items = append(batch.Items, quizgen.ToWire(it))
			}
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(batch)
		}

		for i, it := range items {
			fmt.Printf("%d. %s\n", i+1, it.Question)
			for j, opt := range it.Order {
				fmt.Printf("   %c) %s\n", 'a'+j, opt)
			}
			if it.Meta != nil {
				fmt.Printf("   [%s · %s · fiabilité %s]\n", it.Difficulty, it.Bloom, it.Meta.Reliability)
			}
			fmt.Println()
		}
		return nil
	},
}

func init() {
	generateCmd.Flags().IntP("count", "n", 12, "Number of questions")
	generateCmd.Flags().Bool("exam", false, "Reproducible option order (seeded)")
	generateCmd.Flags().Bool("remote", false, "Ask the configured model to refine the quiz")
	generateCmd.Flags().String("save", "", "Persist the quiz under this key")
	generateCmd.Flags().Bool("json", false, "Print the wire-format batch as JSON")
}
