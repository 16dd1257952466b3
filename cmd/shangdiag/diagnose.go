package main

// #region imports
import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/percolab/shangdiag/internal/diagnose"
	"github.com/percolab/shangdiag/internal/fixture"
	"github.com/percolab/shangdiag/internal/proxy"
	"github.com/percolab/shangdiag/internal/report"
	"github.com/percolab/shangdiag/internal/runlog"
)

// #endregion

// #region flags

var (
	diagnoseCSV     string
	diagnoseJSONIn  string
	diagnoseName    string
	diagnoseSet     []string
	diagnoseJSONOut bool
	diagnoseLogPath string
)

// #endregion flags

// #region command

var diagnoseCmd = &cobra.Command{
	Use:   "diagnose [proxy1 ... proxy15]",
	Short: "Diagnose one or more 15-proxy input vectors",
	Long: "Diagnose reads a 15-proxy input vector from positional arguments, a CSV\n" +
		"file (one vector per row), or a JSON array, runs the diagnostic pipeline,\n" +
		"and prints the report.",
	RunE: runDiagnose,
}

func init() {
	diagnoseCmd.Flags().StringVar(&diagnoseCSV, "csv", "", "CSV file with one 15-value vector per row")
	diagnoseCmd.Flags().StringVar(&diagnoseJSONIn, "input", "", "JSON file holding an array of 15 numbers")
	diagnoseCmd.Flags().StringVar(&diagnoseName, "name", "", "case name for the report and run log")
	diagnoseCmd.Flags().StringArrayVar(&diagnoseSet, "set", nil, "parameter override name=value (repeatable)")
	diagnoseCmd.Flags().BoolVar(&diagnoseJSONOut, "json", false, "emit the raw result as JSON")
	diagnoseCmd.Flags().StringVar(&diagnoseLogPath, "log", "", "append the run to this SQLite run log")
}

// #endregion command

// #region run

func runDiagnose(cmd *cobra.Command, args []string) error {
	p, err := applyOverrides(diagnoseSet)
	if err != nil {
		return err
	}

	vectors, err := collectVectors(args)
	if err != nil {
		return err
	}

	var store *runlog.Store
	if diagnoseLogPath != "" {
		store, err = runlog.Open(diagnoseLogPath)
		if err != nil {
			return err
		}
		defer store.Close()
	}

	for i, vec := range vectors {
		res, err := diagnose.Diagnose(vec, p)
		if err != nil {
			return err
		}

		name := diagnoseName
		if name == "" {
			name = fmt.Sprintf("case %d", i+1)
		}

		if diagnoseJSONOut {
			out, err := json.MarshalIndent(res, "", "  ")
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(out))
		} else {
			fmt.Fprint(cmd.OutOrStdout(), report.Render(name, vec, res, p))
		}

		if store != nil {
			runID, err := store.Record(name, vec, res)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "logged run %s\n", runID)
		}
	}
	return nil
}

// #endregion run

// #region input-collection

// collectVectors resolves the input source: positional literals, CSV, or JSON.
func collectVectors(args []string) ([][]float64, error) {
	sources := 0
	if len(args) > 0 {
		sources++
	}
	if diagnoseCSV != "" {
		sources++
	}
	if diagnoseJSONIn != "" {
		sources++
	}
	if sources != 1 {
		return nil, fmt.Errorf("provide exactly one input source: %d literals, --csv, or --input", proxy.Count)
	}

	switch {
	case diagnoseCSV != "":
		return fixture.ReadVectorsCSV(diagnoseCSV)
	case diagnoseJSONIn != "":
		data, err := os.ReadFile(diagnoseJSONIn)
		if err != nil {
			return nil, fmt.Errorf("read input %s: %w", diagnoseJSONIn, err)
		}
		var vec []float64
		if err := json.Unmarshal(data, &vec); err != nil {
			return nil, fmt.Errorf("parse input %s: %w", diagnoseJSONIn, err)
		}
		return [][]float64{vec}, nil
	default:
		vec := make([]float64, 0, len(args))
		for i, a := range args {
			v, err := strconv.ParseFloat(a, 64)
			if err != nil {
				return nil, fmt.Errorf("argument %d: %w", i+1, err)
			}
			vec = append(vec, v)
		}
		return [][]float64{vec}, nil
	}
}

// #endregion input-collection
