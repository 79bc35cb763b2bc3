package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/nourlabs/coach/internal/coach"
	"github.com/spf13/cobra"
)

var sheetsCmd = &cobra.Command{
	Use:   "sheets <file>",
	Short: "Build three-view revision sheets from course notes",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		remote, _ := cmd.Flags().GetBool("remote")
		saveKey, _ := cmd.Flags().GetString("save")
		asJSON, _ := cmd.Flags().GetBool("json")
		long, _ := cmd.Flags().GetBool("long")

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

		batch := svc.GenerateSheets(cmd.Context(), raw, remote)

		if saveKey != "" {
			if err := svc.SaveSheets(cmd.Context(), saveKey, "", batch); err != nil {
				return fmt.Errorf("save sheets: %w", err)
			}
			fmt.Fprintf(os.Stderr, "Saved %d sheets under %q.\n", len(batch.Sheets), saveKey)
		}

		if asJSON {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(batch)
		}

		for i, sheet := range batch.Sheets {
			if i > 0 {
				fmt.Println()
			}
			fmt.Println(sheet.Title)
			fmt.Println(rule(len([]rune(sheet.Title))))
			if long {
				fmt.Println(sheet.LongVersion.Content)
			} else {
				for _, b := range sheet.ShortVersion.Content {
					fmt.Println("•", b)
				}
			}
			if len(sheet.Citations) > 0 {
				fmt.Println("Citations :", sheet.Citations)
			}
		}
		return nil
	},
}

func init() {
	sheetsCmd.Flags().Bool("remote", false, "Ask the configured model to write the sheets")
	sheetsCmd.Flags().String("save", "", "Persist the sheets under this key")
	sheetsCmd.Flags().Bool("json", false, "Print the wire-format batch as JSON")
	sheetsCmd.Flags().Bool("long", false, "Print the developed version instead of the bullets")
}
