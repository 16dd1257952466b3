package main

// #region imports
import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/percolab/shangdiag/internal/params"
)

// #endregion

// #region root

var rootCmd = &cobra.Command{
	Use:   "shangdiag",
	Short: "Dual-percolation transition diagnostic",
	Long: "shangdiag computes the transition potential and percolation-connectivity\n" +
		"indicators from a 15-proxy input vector and assigns a diagnostic category.",
	SilenceUsage: true,
}

func init() {
	rootCmd.AddCommand(diagnoseCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(paramsCmd)
	rootCmd.AddCommand(runsCmd)
	rootCmd.AddCommand(versionCmd)
}

// #endregion root

// #region overrides

// applyOverrides folds repeated --set name=value flags over the defaults.
func applyOverrides(overrides []string) (params.ParameterSet, error) {
	p := params.Defaults()
	for _, o := range overrides {
		name, raw, ok := strings.Cut(o, "=")
		if !ok {
			return params.ParameterSet{}, fmt.Errorf("invalid override %q, want name=value", o)
		}
		value, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return params.ParameterSet{}, fmt.Errorf("invalid override value %q: %w", raw, err)
		}
		p, err = params.WithOverride(p, strings.TrimSpace(name), value)
		if err != nil {
			return params.ParameterSet{}, err
		}
	}
	return p, nil
}

// #endregion overrides
