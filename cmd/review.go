package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

var reviewCmd = &cobra.Command{
	Use:   "review",
	Short: "List spaced-repetition cards due for review",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		svc := storeService(st)
		queue, err := svc.LoadReviewQueue(cmd.Context())
		if err != nil {
			return fmt.Errorf("load review queue: %w", err)
		}

		now := time.Now()
		due := queue.Due(now)
		if len(due) == 0 {
			fmt.Printf("Nothing due. %d card(s) scheduled.\n", queue.Len())
			return nil
		}

		fmt.Printf("%d card(s) due:\n\n", len(due))
		for _, c := range due {
			overdue := ""
			if d := c.OverdueDays(now); d >= 1 {
				overdue = fmt.Sprintf(" (en retard de %.0f j)", d)
			}
			fmt.Printf("[%s] %s%s\n", c.Kind, c.Prompt, overdue)
			if c.Reason != "" {
				fmt.Printf("      %s\n", c.Reason)
			}
		}
		return nil
	},
}
