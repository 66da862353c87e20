package cmd

import (
	"fmt"

	"github.com/neolab/neodiag/internal/llm"
	"github.com/neolab/neodiag/internal/report"
	"github.com/neolab/neodiag/internal/session"
	"github.com/spf13/cobra"
)

var reportCmd = &cobra.Command{
	Use:   "report <session-id>",
	Short: "Generate AI reports for a stored session and save them",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireMaster(cmd); err != nil {
			return err
		}
		st, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		rec, err := st.Sessions().Load(cmd.Context(), args[0])
		if err != nil {
			return fmt.Errorf("load session: %w", err)
		}
		if rec == nil {
			return fmt.Errorf("session %q not found", args[0])
		}

		provider, err := llm.NewProviderFromEnv(cmd.Context(), st.Events())
		if err != nil {
			return fmt.Errorf("LLM provider not configured: %w", err)
		}
		svc := report.NewService(provider)

		fmt.Printf("Generating reports with %s...\n", svc.ModelID())
		reports, err := svc.Generate(cmd.Context(), session.BuildInsightTable(rec))
		if err != nil {
			return fmt.Errorf("generate reports: %w", err)
		}

		rec.ClientReport = reports.Client
		rec.MasterReport = reports.Master
		if err := st.Sessions().Save(cmd.Context(), rec); err != nil {
			return fmt.Errorf("save session: %w", err)
		}

		fmt.Println("=== Client report ===")
		fmt.Println(reports.Client)
		fmt.Println()
		fmt.Println("=== Master report ===")
		fmt.Println(reports.Master)
		return nil
	},
	Args: cobra.ExactArgs(1),
}
