package classify

// #region diagnosis

// Diagnosis is the discrete category assigned to a (phi+, phi-, TP) triple.
type Diagnosis string

const (
	DeepPositive    Diagnosis = "deep_positive_transition"
	FragilePositive Diagnosis = "fragile_positive_transition"
	NegativeWarning Diagnosis = "negative_transition_warning"
	Negative        Diagnosis = "negative_transition"
	Indeterminate   Diagnosis = "indeterminate"
)

// Label returns the human-readable name of the diagnosis.
func (d Diagnosis) Label() string {
	switch d {
	case DeepPositive:
		return "Deep Positive Transition"
	case FragilePositive:
		return "Fragile Positive Transition"
	case NegativeWarning:
		return "Negative-Transition Warning"
	case Negative:
		return "Negative Transition"
	case Indeterminate:
		return "Indeterminate"
	default:
		return string(d)
	}
}

// #endregion diagnosis

// #region risk

// RiskLevel grades the systemic risk implied by a diagnosis.
type RiskLevel string

const (
	RiskLow      RiskLevel = "low"
	RiskMedium   RiskLevel = "medium"
	RiskElevated RiskLevel = "elevated"
	RiskHigh     RiskLevel = "high"
	RiskVariable RiskLevel = "variable"
)

// Risk maps a diagnosis to its risk level.
func (d Diagnosis) Risk() RiskLevel {
	switch d {
	case DeepPositive:
		return RiskLow
	case FragilePositive:
		return RiskMedium
	case NegativeWarning:
		return RiskElevated
	case Negative:
		return RiskHigh
	default:
		return RiskVariable
	}
}

// #endregion risk

// #region thresholds-met

// ThresholdsMet records which of the three headline thresholds the
// indicators cleared, for reporting.
type ThresholdsMet struct {
	PhiPlusCritical bool `json:"phi_plus_critical"`
	PhiMinusSafe    bool `json:"phi_minus_safe"`
	TPForward       bool `json:"tp_forward"`
}

// #endregion thresholds-met

// #region assessment

// Assessment bundles the diagnosis with its advisory context.
type Assessment struct {
	Diagnosis Diagnosis     `json:"diagnosis"`
	Risk      RiskLevel     `json:"risk"`
	Met       ThresholdsMet `json:"thresholds_met"`
	Warnings  []string      `json:"warnings,omitempty"`
}

// #endregion assessment
