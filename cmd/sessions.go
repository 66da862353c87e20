package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/neolab/neodiag/internal/session"
	"github.com/neolab/neodiag/internal/store"
	"github.com/spf13/cobra"
)

// requireMaster checks the --password flag (or NEODIAG_MASTER_PASSWORD)
// against the configured master password. An unset master password
// blocks privileged commands entirely.
func requireMaster(cmd *cobra.Command) error {
	secret := os.Getenv("NEODIAG_MASTER_PASSWORD")
	if secret == "" {
		return errors.New("NEODIAG_MASTER_PASSWORD is not set; privileged commands are disabled")
	}
	attempt, _ := cmd.Flags().GetString("password")
	if attempt == "" {
		attempt = secret
	}
	if attempt != secret {
		return errors.New("wrong master password")
	}
	return nil
}

func openStore(cmd *cobra.Command) (*store.Store, error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, fmt.Errorf("resolve DB path: %w", err)
	}
	return store.Open(dbPath)
}

var sessionsCmd = &cobra.Command{
	Use:   "sessions",
	Short: "List stored diagnostic sessions",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireMaster(cmd); err != nil {
			return err
		}
		st, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		records, err := st.Sessions().ListAll(cmd.Context())
		if err != nil {
			return fmt.Errorf("list sessions: %w", err)
		}
		if len(records) == 0 {
			fmt.Println("No sessions stored yet.")
			return nil
		}

		for _, rec := range records {
			fmt.Println(sessionLine(rec))
		}
		return nil
	},
}

func sessionLine(rec *session.Record) string {
	name := rec.Meta.Name
	if name == "" {
		name = "—"
	}
	return fmt.Sprintf("%s  %s  %-20s  answers=%d/%d",
		rec.Meta.SessionID,
		rec.Meta.Timestamp.Format("2006-01-02 15:04"),
		name,
		rec.Meta.AnsweredCount,
		rec.Meta.QuestionCount,
	)
}
