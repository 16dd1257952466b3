package fixture

// #region imports
import (
	"fmt"
	"math"

	"github.com/percolab/shangdiag/internal/classify"
	"github.com/percolab/shangdiag/internal/diagnose"
	"github.com/percolab/shangdiag/internal/params"
)

// #endregion

// #region types

// defaultTolerance is used when a case does not set one.
const defaultTolerance = 0.001

// CaseResult is the outcome of validating one case.
type CaseResult struct {
	Name       string
	Matched    bool
	Err        error // pipeline error, nil otherwise
	Got        diagnose.Result
	Mismatches []string // empty when matched
}

// Summary aggregates a validation run.
type Summary struct {
	Total      int
	Matched    int
	Mismatched int
	Errored    int
}

// #endregion types

// #region run

// Run diagnoses every case in the library under the given parameters and
// compares against the recorded expectations. Operates entirely in memory.
func Run(lib *Library, p params.ParameterSet) ([]CaseResult, Summary) {
	results := make([]CaseResult, 0, len(lib.Cases))
	var summary Summary
	summary.Total = len(lib.Cases)

	for _, c := range lib.Cases {
		res, err := diagnose.Diagnose(c.Proxies, p)
		if err != nil {
			summary.Errored++
			results = append(results, CaseResult{Name: c.Name, Err: err})
			continue
		}

		mismatches := compare(c.Expect, res)
		if len(mismatches) == 0 {
			summary.Matched++
		} else {
			summary.Mismatched++
		}
		results = append(results, CaseResult{
			Name:       c.Name,
			Matched:    len(mismatches) == 0,
			Got:        res,
			Mismatches: mismatches,
		})
	}
	return results, summary
}

// #endregion run

// #region compare

func compare(want Expectation, got diagnose.Result) []string {
	tol := want.Tolerance
	if tol == 0 {
		tol = defaultTolerance
	}

	var mismatches []string
	if want.Diagnosis != "" && classify.Diagnosis(want.Diagnosis) != got.Diagnosis {
		mismatches = append(mismatches, fmt.Sprintf("diagnosis: want %s, got %s", want.Diagnosis, got.Diagnosis))
	}
	if want.PhiPlus != nil && math.Abs(*want.PhiPlus-got.PhiPlus) > tol {
		mismatches = append(mismatches, fmt.Sprintf("phi+: want %.4f, got %.4f", *want.PhiPlus, got.PhiPlus))
	}
	if want.PhiMinus != nil && math.Abs(*want.PhiMinus-got.PhiMinus) > tol {
		mismatches = append(mismatches, fmt.Sprintf("phi-: want %.4f, got %.4f", *want.PhiMinus, got.PhiMinus))
	}
	if want.TP != nil && math.Abs(*want.TP-got.TP) > tol {
		mismatches = append(mismatches, fmt.Sprintf("TP: want %.4f, got %.4f", *want.TP, got.TP))
	}
	return mismatches
}

// #endregion compare
