// Package equations implements the seven governing equations of the
// dual-percolation transition model in their steady-state closed form.
// Every function is pure arithmetic over an already-validated mapped input;
// any arithmetic that would yield a non-finite value fails with
// ErrNumericDomain instead of poisoning downstream results.
package equations

// #region imports
import (
	"errors"
	"fmt"
	"math"

	"github.com/percolab/shangdiag/internal/params"
	"github.com/percolab/shangdiag/internal/proxy"
)

// #endregion

// #region errors

// ErrNumericDomain indicates an equation produced (or would produce) a
// non-finite result, e.g. division by a zero dissipation or density term.
var ErrNumericDomain = errors.New("equations: arithmetic outside numeric domain")

// #endregion errors

// #region connectivity-bounds

// Percolation saturation bounds from the calibration: connectivity estimates
// outside these bands are not physically meaningful for the quasi-steady state.
const (
	phiPlusFloor  = 0.05
	phiPlusCeil   = 0.80
	phiMinusFloor = 0.02
	phiMinusCeil  = 0.60
)

// #endregion connectivity-bounds

// #region transfers

// TransferPlus computes equation 1, the positive energy-packet transfer:
// T+ = sigma+ * max(P - delta, 0) * K+ * exp(-lambda * dt).
func TransferPlus(m proxy.Mapped, p params.ParameterSet) float64 {
	surplus := math.Max(m.Energy-p.Delta, 0)
	return m.SigmaPlus * surplus * m.CreditPlus * math.Exp(-p.Lambda*p.DeltaT)
}

// TransferMinus computes equation 2, the negative energy-packet transfer:
// T- = sigma- * max(P - R+, 0) * K- * exp(-lambda * dt).
func TransferMinus(m proxy.Mapped, p params.ParameterSet) float64 {
	excess := math.Max(m.Energy-p.RPlus, 0)
	return m.SigmaMinus * excess * m.CreditMinus * math.Exp(-p.Lambda*p.DeltaT)
}

// #endregion transfers

// #region factor-trends

// SigmaPlusTrend computes equation 3, the positive factor trend:
// dsigma+ = alpha * max(R - P, 0) + rho * H - mu * sigma-.
func SigmaPlusTrend(m proxy.Mapped, p params.ParameterSet) float64 {
	riskPressure := math.Max(p.R-m.Energy, 0)
	return p.Alpha*riskPressure + p.Rho*m.Recovery - p.Mu*m.SigmaMinus
}

// SigmaMinusTrend computes equation 4, the negative factor trend:
// dsigma- = kappa * max(P - R+, 0) - penalty * narrative * sigma- - chi / G.
// Fails when the energy density G is zero.
func SigmaMinusTrend(m proxy.Mapped, p params.ParameterSet) (float64, error) {
	if m.EnergyDensity == 0 {
		return 0, fmt.Errorf("%w: energy density is zero", ErrNumericDomain)
	}
	excess := math.Max(m.Energy-p.RPlus, 0)
	trend := p.Kappa*excess - m.Penalty*m.Narrative*m.SigmaMinus - p.Chi/m.EnergyDensity
	if !isFinite(trend) {
		return 0, fmt.Errorf("%w: sigma- trend is %v", ErrNumericDomain, trend)
	}
	return trend, nil
}

// #endregion factor-trends

// #region connectivity

// PositiveConnectivity computes equation 5, the quasi-steady-state positive
// network connectivity: phi+ = beta+ * T+ * (1 + tau*A) / zeta+, clamped to
// the calibration's saturation band.
func PositiveConnectivity(m proxy.Mapped, p params.ParameterSet) (float64, error) {
	if p.ZetaPlus == 0 {
		return 0, fmt.Errorf("%w: zeta_plus dissipation is zero", ErrNumericDomain)
	}
	raw := p.BetaPlus * TransferPlus(m, p) * (1 + p.Tau*m.Attraction) / p.ZetaPlus
	if !isFinite(raw) {
		return 0, fmt.Errorf("%w: phi+ is %v", ErrNumericDomain, raw)
	}
	return clampRange(raw, phiPlusFloor, phiPlusCeil), nil
}

// NegativeConnectivity computes equation 6, the quasi-steady-state negative
// network connectivity: phi- = beta- * T- * (1 + iota*D) / zeta-, clamped to
// the calibration's saturation band.
func NegativeConnectivity(m proxy.Mapped, p params.ParameterSet) (float64, error) {
	if p.ZetaMinus == 0 {
		return 0, fmt.Errorf("%w: zeta_minus dissipation is zero", ErrNumericDomain)
	}
	raw := p.BetaMinus * TransferMinus(m, p) * (1 + p.Iota*m.Division) / p.ZetaMinus
	if !isFinite(raw) {
		return 0, fmt.Errorf("%w: phi- is %v", ErrNumericDomain, raw)
	}
	return clampRange(raw, phiMinusFloor, phiMinusCeil), nil
}

// #endregion connectivity

// #region transition-potential

// Eta is the fairness-efficiency term of equation 7, the simplified
// (1 - Gini) proxy from the calibration.
func Eta(m proxy.Mapped) float64 {
	return 1 - m.Gini
}

// TransitionPotential computes equation 7, the system transition potential:
// TP = (T+ * scale) * eta - omega * (T- * scale). The transfer terms stand in
// for the time-integrated system activities at the calibrated scale.
func TransitionPotential(m proxy.Mapped, p params.ParameterSet) (float64, error) {
	activityPlus := TransferPlus(m, p) * p.Scale
	activityMinus := TransferMinus(m, p) * p.Scale
	tp := activityPlus*Eta(m) - p.Omega*activityMinus
	if !isFinite(tp) {
		return 0, fmt.Errorf("%w: TP is %v", ErrNumericDomain, tp)
	}
	return tp, nil
}

// #endregion transition-potential

// #region helpers

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func clampRange(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// #endregion helpers
