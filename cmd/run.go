package cmd

import (
	"fmt"
	"os"

	"github.com/neolab/neodiag/internal/app"
	"github.com/neolab/neodiag/internal/llm"
	"github.com/neolab/neodiag/internal/report"
	"github.com/neolab/neodiag/internal/store"
	"github.com/spf13/cobra"
)

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	ctx := cmd.Context()
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	opts := app.Options{
		Sessions:       st.Sessions(),
		MasterPassword: os.Getenv("NEODIAG_MASTER_PASSWORD"),
	}

	provider, err := llm.NewProviderFromEnv(ctx, st.Events())
	if err != nil {
		fmt.Fprintln(os.Stderr, "LLM provider not configured:", err)
		fmt.Fprintln(os.Stderr, "AI reports will be unavailable.")
	} else {
		opts.Reporter = report.NewService(provider)
	}

	return app.Run(opts)
}
