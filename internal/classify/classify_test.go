package classify

import (
	"testing"

	"github.com/percolab/shangdiag/internal/params"
)

func TestClassify(t *testing.T) {
	p := params.Defaults()

	tests := []struct {
		name     string
		phiPlus  float64
		phiMinus float64
		tp       float64
		want     Diagnosis
	}{
		// Published case table
		{"deep-published", 0.45, 0.06, 0.78, DeepPositive},
		{"warning-published", 0.31, 0.192, 0.19, NegativeWarning},
		{"negative-published", 0.27, 0.34, -0.78, Negative},

		// Threshold boundaries are inclusive on the >= side
		{"deep-exact-boundary", 0.33, 0.0, 0.52, DeepPositive},
		{"warning-exact-boundary", 0.20, 0.10, 0.05, NegativeWarning},

		// Fragile: positive threshold met but TP or phi- misses the deep band
		{"fragile-phi-minus-at-safe", 0.40, 0.10, 0.60, FragilePositive},
		{"fragile-low-tp", 0.40, 0.05, 0.30, FragilePositive},

		// Priority: fragile wins over the negative bands when tp > 0
		{"fragile-beats-warning", 0.40, 0.15, 0.30, FragilePositive},
		// Negative requires tp < 0 even with phi+ high
		{"negative-beats-fragile-check", 0.40, 0.20, -0.50, Negative},

		// Indeterminate: no strong signal either direction
		{"indeterminate-quiet", 0.20, 0.05, 0.10, Indeterminate},
		{"indeterminate-zero-tp", 0.40, 0.05, 0.0, Indeterminate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify(tt.phiPlus, tt.phiMinus, tt.tp, p)
			if got != tt.want {
				t.Errorf("got %s, want %s", got, tt.want)
			}
		})
	}
}

func TestDiagnosisRiskAndLabel(t *testing.T) {
	tests := []struct {
		d         Diagnosis
		wantRisk  RiskLevel
		wantLabel string
	}{
		{DeepPositive, RiskLow, "Deep Positive Transition"},
		{FragilePositive, RiskMedium, "Fragile Positive Transition"},
		{NegativeWarning, RiskElevated, "Negative-Transition Warning"},
		{Negative, RiskHigh, "Negative Transition"},
		{Indeterminate, RiskVariable, "Indeterminate"},
	}
	for _, tt := range tests {
		if got := tt.d.Risk(); got != tt.wantRisk {
			t.Errorf("%s risk: got %s, want %s", tt.d, got, tt.wantRisk)
		}
		if got := tt.d.Label(); got != tt.wantLabel {
			t.Errorf("%s label: got %q, want %q", tt.d, got, tt.wantLabel)
		}
	}
}

func TestAssess(t *testing.T) {
	p := params.Defaults()

	t.Run("clean-deep", func(t *testing.T) {
		a := Assess(0.45, 0.06, 0.78, p)
		if a.Diagnosis != DeepPositive {
			t.Fatalf("diagnosis: got %s", a.Diagnosis)
		}
		if !a.Met.PhiPlusCritical || !a.Met.PhiMinusSafe || !a.Met.TPForward {
			t.Errorf("thresholds met: got %+v, want all true", a.Met)
		}
		if len(a.Warnings) != 0 {
			t.Errorf("warnings: got %v, want none", a.Warnings)
		}
	})

	t.Run("danger-band", func(t *testing.T) {
		a := Assess(0.31, 0.192, 0.19, p)
		if a.Diagnosis != NegativeWarning {
			t.Fatalf("diagnosis: got %s", a.Diagnosis)
		}
		if a.Risk != RiskElevated {
			t.Errorf("risk: got %s", a.Risk)
		}
		// phi- over the danger band plus TP under target: two warnings.
		if len(a.Warnings) != 2 {
			t.Errorf("warnings: got %v, want 2", a.Warnings)
		}
	})

	t.Run("safe-ceiling-only", func(t *testing.T) {
		a := Assess(0.40, 0.15, 0.30, p)
		if a.Diagnosis != FragilePositive {
			t.Fatalf("diagnosis: got %s", a.Diagnosis)
		}
		// 0.15 is over the safe ceiling but inside the danger band.
		if len(a.Warnings) != 2 {
			t.Fatalf("warnings: got %v, want 2", a.Warnings)
		}
	})
}
