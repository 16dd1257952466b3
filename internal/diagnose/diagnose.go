// Package diagnose orchestrates the full evaluation pipeline:
// proxy mapping, the governing equations, and classification.
// Every call is independent and referentially transparent; a Result carries
// no run identity or timestamps, so repeated calls over the same input and
// parameters are bit-identical.
package diagnose

// #region imports
import (
	"github.com/percolab/shangdiag/internal/classify"
	"github.com/percolab/shangdiag/internal/equations"
	"github.com/percolab/shangdiag/internal/params"
	"github.com/percolab/shangdiag/internal/proxy"
)

// #endregion

// #region result

// Result is the packaged output of one diagnosis.
type Result struct {
	PhiPlus  float64 `json:"phi_plus"`
	PhiMinus float64 `json:"phi_minus"`
	TP       float64 `json:"tp"`

	Diagnosis classify.Diagnosis     `json:"diagnosis"`
	Risk      classify.RiskLevel     `json:"risk"`
	Met       classify.ThresholdsMet `json:"thresholds_met"`
	Warnings  []string               `json:"warnings,omitempty"`

	// Derived indicators for reporting.
	TransferPlus    float64 `json:"transfer_plus"`
	TransferMinus   float64 `json:"transfer_minus"`
	Eta             float64 `json:"eta"`
	SigmaPlusTrend  float64 `json:"sigma_plus_trend"`
	SigmaMinusTrend float64 `json:"sigma_minus_trend"`

	Mapped proxy.Mapped `json:"mapped"`
}

// #endregion result

// #region diagnose

// Diagnose runs the pipeline over one 15-proxy input vector with the default
// mapping weights. All-or-nothing: the first stage error propagates unchanged
// and no partial result is returned.
func Diagnose(values []float64, p params.ParameterSet) (Result, error) {
	return DiagnoseWithWeights(values, p, proxy.DefaultWeights())
}

// DiagnoseWithWeights is Diagnose with an explicit mapping table, for
// recalibration runs.
func DiagnoseWithWeights(values []float64, p params.ParameterSet, w proxy.Weights) (Result, error) {
	m, err := proxy.Map(values, w)
	if err != nil {
		return Result{}, err
	}

	phiPlus, err := equations.PositiveConnectivity(m, p)
	if err != nil {
		return Result{}, err
	}
	phiMinus, err := equations.NegativeConnectivity(m, p)
	if err != nil {
		return Result{}, err
	}
	tp, err := equations.TransitionPotential(m, p)
	if err != nil {
		return Result{}, err
	}
	sigmaMinusTrend, err := equations.SigmaMinusTrend(m, p)
	if err != nil {
		return Result{}, err
	}

	assessment := classify.Assess(phiPlus, phiMinus, tp, p)

	return Result{
		PhiPlus:         phiPlus,
		PhiMinus:        phiMinus,
		TP:              tp,
		Diagnosis:       assessment.Diagnosis,
		Risk:            assessment.Risk,
		Met:             assessment.Met,
		Warnings:        assessment.Warnings,
		TransferPlus:    equations.TransferPlus(m, p),
		TransferMinus:   equations.TransferMinus(m, p),
		Eta:             equations.Eta(m),
		SigmaPlusTrend:  equations.SigmaPlusTrend(m, p),
		SigmaMinusTrend: sigmaMinusTrend,
		Mapped:          m,
	}, nil
}

// #endregion diagnose
