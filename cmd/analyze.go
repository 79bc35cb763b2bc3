package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze <file>",
	Short: "Segment course notes into themes and key terms",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		raw, err := readInput(args[0])
		if err != nil {
			return err
		}

		analysis := localService().Analyze(raw)
		for i, theme := range analysis.Themes {
			if i > 0 {
				fmt.Println()
			}
			fmt.Println(theme.Title)
			fmt.Println(rule(len([]rune(theme.Title))))
			if len(theme.KeyTerms) > 0 {
				fmt.Println("Termes clés :", strings.Join(theme.KeyTerms, ", "))
			}
			fmt.Printf("%d caractères\n", len([]rune(theme.Body)))
		}
		return nil
	},
}
