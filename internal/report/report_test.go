package report

import (
	"strings"
	"testing"

	"github.com/percolab/shangdiag/internal/diagnose"
	"github.com/percolab/shangdiag/internal/params"
)

var singapore2024 = []float64{
	0.044, 0.92, 0.012, 0.10, 0.41, 0.40, 1.5,
	0.95, 1.00, 0.96, 0.25, 0.091, 0.069, 0.05, 0.35,
}

func TestRender(t *testing.T) {
	p := params.Defaults()
	res, err := diagnose.Diagnose(singapore2024, p)
	if err != nil {
		t.Fatalf("diagnose: %v", err)
	}

	out := Render("singapore-2024", singapore2024, res, p)

	for _, want := range []string{
		"singapore-2024",
		"Deep Positive Transition",
		"risk level: LOW",
		"phi+ (positive connectivity)",
		"phi- (negative connectivity)",
		"TP (transition potential)",
		"fairness efficiency eta",
		// Gini 0.41 crosses the inequality commentary threshold.
		"income inequality",
		// NPL 1.2% earns the positive credit note.
		"non-performing loan",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("report missing %q\n%s", want, out)
		}
	}
}

func TestRender_WarningsShown(t *testing.T) {
	p := params.Defaults()

	// Push the vector into the negative-warning band: weak growth, heavy
	// shadow economy and crypto, high unemployment and polarization.
	vec := []float64{
		0.030, 0.40, 0.04, 0.45, 0.55, 0.65, -2.0,
		0.50, 0.90, 0.55, 0.05, 0.28, 0.45, 0.30, 0.60,
	}
	res, err := diagnose.Diagnose(vec, p)
	if err != nil {
		t.Fatalf("diagnose: %v", err)
	}
	if len(res.Warnings) == 0 {
		t.Fatal("stress vector produced no warnings")
	}

	out := Render("stress-case", vec, res, p)
	if !strings.Contains(out, "Warnings") {
		t.Errorf("warnings section missing\n%s", out)
	}
	if !strings.Contains(out, "Negative Transition") {
		t.Errorf("status line missing\n%s", out)
	}
}
