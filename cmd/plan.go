package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/nourlabs/coach/internal/study"
	"github.com/spf13/cobra"
)

var planCmd = &cobra.Command{
	Use:   "plan <file>",
	Short: "Build a guided study-session plan",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		duration, _ := cmd.Flags().GetInt("duration")
		lowRaw, _ := cmd.Flags().GetString("low-confidence")

		raw, err := readInput(args[0])
		if err != nil {
			return err
		}

		var low []string
		if lowRaw != "" {
			for _, t := range strings.Split(lowRaw, ",") {
				low = append(low, strings.TrimSpace(t))
			}
		}

		// Due review cards weigh their themes toward the front of the
		// plan. Missing store or queue just means an unweighted plan.
		var duePrompts []string
		if st, err := openStore(cmd); err == nil {
			if queue, err := storeService(st).LoadReviewQueue(cmd.Context()); err == nil {
				for _, c := range queue.Due(time.Now()) {
					duePrompts = append(duePrompts, c.Prompt)
				}
			}
			st.Close()
		}

		analysis := localService().Analyze(raw)
		steps := study.BuildPlan(analysis.Titles(), duration, low, duePrompts)

		fmt.Printf("Plan de session (%d min)\n\n", duration)
		for i, s := range steps {
			fmt.Printf("%2d. %s\n", i+1, stepLabel(s))
		}
		return nil
	},
}

func stepLabel(s study.Step) string {
	switch s.Type {
	case study.StepDiagnostic:
		return fmt.Sprintf("Diagnostic (QCM rapides ×%d)", s.Size)
	case study.StepRead:
		return "Lecture guidée – " + s.Theme
	case study.StepLearn:
		return fmt.Sprintf("Apprentissage – %s (%d min)", s.Theme, s.Minutes)
	case study.StepPractice:
		return fmt.Sprintf("Pratique QCM – %s (×%d)", s.Theme, s.Size)
	case study.StepRecall:
		return fmt.Sprintf("Rappel actif – %s (%d réponses ouvertes)", s.Theme, s.Prompts)
	case study.StepTest:
		return fmt.Sprintf("Test final (×%d)", s.Size)
	}
	return string(s.Type)
}

func init() {
	planCmd.Flags().IntP("duration", "d", 60, "Session length in minutes")
	planCmd.Flags().String("low-confidence", "", "Comma-separated theme titles to prioritize")
}
