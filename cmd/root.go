package cmd

import (
	"github.com/neolab/neodiag/internal/store"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "neodiag",
	Short: "Adaptive personality diagnostics in the terminal",
	Long:  "NEO Диагностика — terminal questionnaire that maps a respondent onto nine potentials across six positions and generates AI reports.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides NEODIAG_DB env var)")
	rootCmd.PersistentFlags().String("password", "", "Master password for privileged commands (overrides NEODIAG_MASTER_PASSWORD)")

	rootCmd.AddCommand(sessionsCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(reportCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then NEODIAG_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}
