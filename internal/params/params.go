package params

// #region imports
import (
	"errors"
	"fmt"
)

// #endregion

// #region errors

// ErrUnknownParameter is returned by WithOverride for an unrecognized key.
// Overrides fail loudly so a typo can never silently run an uncalibrated model.
var ErrUnknownParameter = errors.New("params: unknown parameter")

// #endregion errors

// #region parameter-set

// ParameterSet holds the calibrated constants used by the governing equations
// and the diagnostic thresholds. It is a value type: callers copy freely and
// no function in this module ever mutates a set it was handed.
type ParameterSet struct {
	// Survival and prosperity thresholds (normalized baselines).
	Delta float64 // minimum survival threshold
	R     float64 // social risk-aversion baseline
	RPlus float64 // prosperity surplus threshold

	// Behavioral factor coefficients.
	Alpha float64 // positive-factor risk incentive
	Rho   float64 // psychological recovery incentive
	Mu    float64 // negative-coupling suppression
	Kappa float64 // negative-factor surplus incentive
	Chi   float64 // density suppression

	// Network dynamics coefficients.
	BetaPlus  float64 // positive connectivity growth
	BetaMinus float64 // negative connectivity growth
	Tau       float64 // attraction amplifier
	Iota      float64 // division amplifier
	ZetaPlus  float64 // positive connectivity dissipation
	ZetaMinus float64 // negative connectivity dissipation
	Lambda    float64 // intertemporal discount rate
	DeltaT    float64 // transfer commitment horizon
	Scale     float64 // activity integration scale for TP

	// Diagnostic coefficients and thresholds.
	Omega           float64 // negative-activity destruction amplifier
	PhiPlusCritical float64 // positive percolation threshold
	PhiMinusSafe    float64 // negative connectivity safe ceiling
	PhiMinusDanger  float64 // negative connectivity danger band (advisory only)
	TPForward       float64 // forward transition TP target
	TPCollapse      float64 // TP stall floor (advisory only)
}

// #endregion parameter-set

// #region defaults

// Defaults returns the canonical parameter set from the Bayesian calibration
// of the historical case studies.
func Defaults() ParameterSet {
	return ParameterSet{
		Delta: 1.0,
		R:     2.0,
		RPlus: 2.2,

		Alpha: 0.1,
		Rho:   0.2,
		Mu:    0.05,
		Kappa: 0.05,
		Chi:   0.1,

		BetaPlus:  0.1,
		BetaMinus: 0.08,
		Tau:       0.15,
		Iota:      0.2,
		ZetaPlus:  0.05,
		ZetaMinus: 0.07,
		Lambda:    0.1,
		DeltaT:    1.0,
		Scale:     10.0,

		Omega:           4.1,
		PhiPlusCritical: 0.33,
		PhiMinusSafe:    0.10,
		PhiMinusDanger:  0.18,
		TPForward:       0.52,
		TPCollapse:      0.15,
	}
}

// #endregion defaults

// #region override

// WithOverride returns a copy of base with one named entry replaced.
// base is never modified. Unknown names fail with ErrUnknownParameter.
func WithOverride(base ParameterSet, name string, value float64) (ParameterSet, error) {
	out := base
	switch name {
	case "delta":
		out.Delta = value
	case "R":
		out.R = value
	case "R_plus":
		out.RPlus = value
	case "alpha":
		out.Alpha = value
	case "rho":
		out.Rho = value
	case "mu":
		out.Mu = value
	case "kappa":
		out.Kappa = value
	case "chi":
		out.Chi = value
	case "beta_plus":
		out.BetaPlus = value
	case "beta_minus":
		out.BetaMinus = value
	case "tau":
		out.Tau = value
	case "iota":
		out.Iota = value
	case "zeta_plus":
		out.ZetaPlus = value
	case "zeta_minus":
		out.ZetaMinus = value
	case "lambda":
		out.Lambda = value
	case "delta_t":
		out.DeltaT = value
	case "scale":
		out.Scale = value
	case "omega":
		out.Omega = value
	case "phi_plus_critical":
		out.PhiPlusCritical = value
	case "phi_minus_safe":
		out.PhiMinusSafe = value
	case "phi_minus_danger":
		out.PhiMinusDanger = value
	case "tp_forward":
		out.TPForward = value
	case "tp_collapse":
		out.TPCollapse = value
	default:
		return ParameterSet{}, fmt.Errorf("%w: %q", ErrUnknownParameter, name)
	}
	return out, nil
}

// #endregion override

// #region entries

// Entry pairs an override key with its current value.
type Entry struct {
	Name  string
	Value float64
}

// Entries lists every recognized override key with its value in the set,
// in documentation order.
func (p ParameterSet) Entries() []Entry {
	return []Entry{
		{"delta", p.Delta},
		{"R", p.R},
		{"R_plus", p.RPlus},
		{"alpha", p.Alpha},
		{"rho", p.Rho},
		{"mu", p.Mu},
		{"kappa", p.Kappa},
		{"chi", p.Chi},
		{"beta_plus", p.BetaPlus},
		{"beta_minus", p.BetaMinus},
		{"tau", p.Tau},
		{"iota", p.Iota},
		{"zeta_plus", p.ZetaPlus},
		{"zeta_minus", p.ZetaMinus},
		{"lambda", p.Lambda},
		{"delta_t", p.DeltaT},
		{"scale", p.Scale},
		{"omega", p.Omega},
		{"phi_plus_critical", p.PhiPlusCritical},
		{"phi_minus_safe", p.PhiMinusSafe},
		{"phi_minus_danger", p.PhiMinusDanger},
		{"tp_forward", p.TPForward},
		{"tp_collapse", p.TPCollapse},
	}
}

// #endregion entries
