package main

// #region imports
import (
	"fmt"

	"github.com/spf13/cobra"
)

// #endregion

// #region flags

var paramsSet []string

// #endregion flags

// #region command

var paramsCmd = &cobra.Command{
	Use:   "params",
	Short: "List the model parameters",
	Long:  "Params prints every recognized parameter with its effective value after overrides.",
	RunE:  runParams,
}

func init() {
	paramsCmd.Flags().StringArrayVar(&paramsSet, "set", nil, "parameter override name=value (repeatable)")
}

// #endregion command

// #region run

func runParams(cmd *cobra.Command, args []string) error {
	p, err := applyOverrides(paramsSet)
	if err != nil {
		return err
	}
	for _, e := range p.Entries() {
		fmt.Fprintf(cmd.OutOrStdout(), "%-20s %g\n", e.Name, e.Value)
	}
	return nil
}

// #endregion run
