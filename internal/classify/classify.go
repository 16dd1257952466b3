package classify

// #region imports
import (
	"fmt"

	"github.com/percolab/shangdiag/internal/params"
)

// #endregion

// #region classify

// Classify assigns a diagnosis from the indicator triple via a fixed rule
// table. Rules are checked in priority order and the first match wins;
// overlapping bands are deliberately broken by this order, not by the
// incidental shape of the comparisons.
func Classify(phiPlus, phiMinus, tp float64, p params.ParameterSet) Diagnosis {
	switch {
	case phiPlus >= p.PhiPlusCritical && phiMinus < p.PhiMinusSafe && tp >= p.TPForward:
		return DeepPositive
	case phiPlus >= p.PhiPlusCritical && tp > 0:
		return FragilePositive
	case phiMinus >= p.PhiMinusSafe && tp < 0:
		return Negative
	case phiMinus >= p.PhiMinusSafe:
		return NegativeWarning
	default:
		return Indeterminate
	}
}

// #endregion classify

// #region assess

// Assess classifies the triple and attaches risk level, threshold breakdown,
// and advisory warnings. The advisory bands (phi- danger, TP stall floor)
// never influence the diagnosis itself.
func Assess(phiPlus, phiMinus, tp float64, p params.ParameterSet) Assessment {
	d := Classify(phiPlus, phiMinus, tp, p)

	var warnings []string
	if phiMinus > p.PhiMinusDanger {
		warnings = append(warnings, fmt.Sprintf(
			"negative connectivity %.3f is inside the danger band (> %.2f)", phiMinus, p.PhiMinusDanger))
	} else if phiMinus > p.PhiMinusSafe {
		warnings = append(warnings, fmt.Sprintf(
			"negative connectivity %.3f exceeds the safe ceiling %.2f", phiMinus, p.PhiMinusSafe))
	}
	if tp < p.TPForward {
		warnings = append(warnings, fmt.Sprintf(
			"transition potential %.3f is below the forward target %.2f", tp, p.TPForward))
	}

	return Assessment{
		Diagnosis: d,
		Risk:      d.Risk(),
		Met: ThresholdsMet{
			PhiPlusCritical: phiPlus >= p.PhiPlusCritical,
			PhiMinusSafe:    phiMinus <= p.PhiMinusSafe,
			TPForward:       tp >= p.TPForward,
		},
		Warnings: warnings,
	}
}

// #endregion assess
