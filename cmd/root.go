package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/nourlabs/coach/internal/coach"
	"github.com/nourlabs/coach/internal/llm"
	"github.com/nourlabs/coach/internal/store"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "coach",
	Short: "Study coach for French course notes",
	Long: "Coach turns raw course notes into quizzes, revision sheets and study plans.\n" +
		"Everything works offline; a remote model can refine the output when configured.",
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides COACH_DB env var)")

	rootCmd.AddCommand(analyzeCmd)
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(sheetsCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(reviewCmd)
	rootCmd.AddCommand(planCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(askCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(updateCmd)
}

// resolveDBPath returns the database path using --db flag (highest
// priority), then COACH_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

// openStore opens the SQLite store for the command.
func openStore(cmd *cobra.Command) (*store.Store, error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, fmt.Errorf("resolve database path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	return st, nil
}

// localService builds a service without provider or store, for the
// purely local commands.
func localService() *coach.Service {
	return coach.New(nil, nil, coach.DefaultServiceConfig())
}

// storeService builds a service with persistence but no provider.
func storeService(st *store.Store) *coach.Service {
	return coach.New(nil, st, coach.DefaultServiceConfig())
}

// newService wires the coach service with the store and, best effort,
// a remote provider. Remote features degrade to local-only when no
// provider is configured.
func newService(cmd *cobra.Command, st *store.Store) *coach.Service {
	var repo store.EventRepo = store.NopEventRepo{}
	if st != nil {
		repo = st.EventRepo()
	}

	cfg := coach.DefaultServiceConfig()
	cfg.LLM = llm.ConfigFromEnv()

	provider, err := llm.NewProviderFromEnv(cmd.Context(), repo)
	if err != nil {
		fmt.Fprintln(os.Stderr, "LLM provider not configured:", err)
		fmt.Fprintln(os.Stderr, "Remote features will be unavailable.")
		provider = nil
	}
	return coach.New(provider, st, cfg)
}

// readInput reads the course text from the file argument, or stdin when
// the argument is "-".
func readInput(path string) (string, error) {
	if path == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", path, err)
	}
	return string(data), nil
}

func rule(n int) string {
	return strings.Repeat("─", n)
}
