package cmd

import (
	"fmt"
	"strings"

	"github.com/nourlabs/coach/internal/llm"
	"github.com/spf13/cobra"
)

var askCmd = &cobra.Command{
	Use:   "ask <question>",
	Short: "Ask the coach a question",
	Long: "Sends the question to the configured model. With --file, the answer\n" +
		"is grounded in the most relevant sentences of your course notes.",
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		file, _ := cmd.Flags().GetString("file")
		question := strings.Join(args, " ")

		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()
		svc := newService(cmd, st)

		var answer string
		if file != "" {
			material, err := readInput(file)
			if err != nil {
				return err
			}
			answer, err = svc.GroundedChat(cmd.Context(), question, material)
			if err != nil {
				return err
			}
		} else {
			history := []llm.Message{{Role: llm.RoleUser, Content: question}}
			answer, err = svc.Chat(cmd.Context(), history)
			if err != nil {
				return err
			}
		}

		fmt.Println(answer)
		return nil
	},
}

func init() {
	askCmd.Flags().StringP("file", "f", "", "Course notes to ground the answer in")
}
