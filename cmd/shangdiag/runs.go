package main

// #region imports
import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/percolab/shangdiag/internal/runlog"
)

// #endregion

// #region flags

var (
	runsLogPath string
	runsLimit   int
)

// #endregion flags

// #region command

var runsCmd = &cobra.Command{
	Use:   "runs",
	Short: "List recent logged diagnoses",
	RunE:  runRuns,
}

func init() {
	runsCmd.Flags().StringVar(&runsLogPath, "log", "", "path to the SQLite run log")
	runsCmd.Flags().IntVar(&runsLimit, "limit", 20, "maximum entries to show")
	_ = runsCmd.MarkFlagRequired("log")
}

// #endregion command

// #region run

func runRuns(cmd *cobra.Command, args []string) error {
	store, err := runlog.Open(runsLogPath)
	if err != nil {
		return err
	}
	defer store.Close()

	entries, err := store.Recent(runsLimit)
	if err != nil {
		return err
	}
	for _, e := range entries {
		name := e.CaseName
		if name == "" {
			name = "-"
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s  %-24s %-28s phi+=%.3f phi-=%.3f TP=%.3f\n",
			e.CreatedAt.Format(time.RFC3339), name, e.Result.Diagnosis,
			e.Result.PhiPlus, e.Result.PhiMinus, e.Result.TP)
	}
	return nil
}

// #endregion run
