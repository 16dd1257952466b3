package main

// #region imports
import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/percolab/shangdiag/internal/fixture"
)

// #endregion

// #region flags

var (
	validateFixture string
	validateSet     []string
)

// #endregion flags

// #region command

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate a recorded case library against the model",
	Long: "Validate diagnoses every case in a JSON fixture and compares the results\n" +
		"against the recorded expectations. Exits non-zero on any mismatch.",
	RunE: runValidate,
}

func init() {
	validateCmd.Flags().StringVar(&validateFixture, "fixture", "", "path to the case-library JSON file")
	validateCmd.Flags().StringArrayVar(&validateSet, "set", nil, "parameter override name=value (repeatable)")
	_ = validateCmd.MarkFlagRequired("fixture")
}

// #endregion command

// #region run

func runValidate(cmd *cobra.Command, args []string) error {
	p, err := applyOverrides(validateSet)
	if err != nil {
		return err
	}

	lib, err := fixture.Load(validateFixture)
	if err != nil {
		return err
	}

	results, summary := fixture.Run(lib, p)
	for _, r := range results {
		switch {
		case r.Err != nil:
			fmt.Fprintf(cmd.OutOrStdout(), "ERROR  %-24s %v\n", r.Name, r.Err)
		case r.Matched:
			fmt.Fprintf(cmd.OutOrStdout(), "MATCH  %-24s %s\n", r.Name, r.Got.Diagnosis)
		default:
			fmt.Fprintf(cmd.OutOrStdout(), "DIFF   %-24s\n", r.Name)
			for _, m := range r.Mismatches {
				fmt.Fprintf(cmd.OutOrStdout(), "       - %s\n", m)
			}
		}
	}

	fmt.Fprintf(cmd.OutOrStdout(), "\n%d cases: %d matched, %d mismatched, %d errored\n",
		summary.Total, summary.Matched, summary.Mismatched, summary.Errored)

	if summary.Mismatched > 0 || summary.Errored > 0 {
		return fmt.Errorf("validation failed")
	}
	return nil
}

// #endregion run
