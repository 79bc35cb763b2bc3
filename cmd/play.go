package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/nourlabs/coach/internal/coach"
	"github.com/nourlabs/coach/internal/quizgen"
	"github.com/nourlabs/coach/internal/srs"
	"github.com/spf13/cobra"
)

var playCmd = &cobra.Command{
	Use:   "play <file>",
	Short: "Run an interactive quiz session",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		count, _ := cmd.Flags().GetInt("count")
		exam, _ := cmd.Flags().GetBool("exam")
		remote, _ := cmd.Flags().GetBool("remote")

		raw, err := readInput(args[0])
		if err != nil {
			return err
		}

		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()
		svc := newService(cmd, st)

		items := svc.GenerateQuiz(cmd.Context(), raw, coach.QuizOptions{
			Count:    count,
			ExamMode: exam,
			Remote:   remote,
		})
		if len(items) == 0 {
			fmt.Println("Aucune question générée.")
			return nil
		}

		queue, err := svc.LoadReviewQueue(cmd.Context())
		if err != nil {
			return fmt.Errorf("load review queue: %w", err)
		}

		scanner := bufio.NewScanner(os.Stdin)
		correct := 0
		for i, it := range items {
			fmt.Printf("\n%d/%d  %s\n", i+1, len(items), it.Question)
			for j, opt := range it.Order {
				fmt.Printf("  %c) %s\n", 'a'+j, opt)
			}
			fmt.Print("Réponse (a-d, ! pour signaler) : ")

			if !scanner.Scan() {
				break
			}
			input := strings.TrimSpace(strings.ToLower(scanner.Text()))

			if input == "!" {
				items[i] = quizgen.Flag(it)
				enqueue(queue, items[i], "Signalé ambigu")
				fmt.Println("Question signalée et ajoutée aux révisions.")
				continue
			}

			selected := pickOptions(it.Order, input)
			items[i] = quizgen.Respond(it, selected)
			if items[i].Answered == quizgen.AnsweredCorrect {
				correct++
				fmt.Println("✔ Correct")
				queue.Record(it.Question, true, time.Now())
			} else {
				fmt.Printf("✘ Incorrect. Réponse(s) : %s\n", strings.Join(it.CorrectOptions(), " • "))
				if it.Rationale != "" {
					fmt.Println("  ", it.Rationale)
				}
				enqueue(queue, items[i], "Réponse incorrecte")
				queue.Record(it.Question, false, time.Now())
			}
		}

		fmt.Printf("\nScore : %d/%d\n", correct, len(items))
		if err := svc.SaveReviewQueue(cmd.Context(), queue); err != nil {
			return fmt.Errorf("save review queue: %w", err)
		}
		return nil
	},
}

// pickOptions maps letter input ("a", "bd") to the displayed options.
func pickOptions(order []string, input string) []string {
	var out []string
	for _, r := range input {
		idx := int(r - 'a')
		if idx >= 0 && idx < len(order) {
			out = append(out, order[idx])
		}
	}
	return out
}

func enqueue(queue *srs.Queue, it quizgen.Item, reason string) {
	queue.Add(srs.Card{
		Kind:   srs.KindQuestion,
		ID:     it.ID,
		Prompt: it.Question,
		Reason: reason,
	}, time.Now())
}

func init() {
	playCmd.Flags().IntP("count", "n", 12, "Number of questions")
	playCmd.Flags().Bool("exam", false, "Reproducible option order (seeded)")
	playCmd.Flags().Bool("remote", false, "Ask the configured model to refine the quiz")
}
