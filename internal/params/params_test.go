package params

import (
	"errors"
	"testing"
)

func TestDefaults(t *testing.T) {
	p := Defaults()

	checks := []struct {
		name string
		got  float64
		want float64
	}{
		{"delta", p.Delta, 1.0},
		{"R", p.R, 2.0},
		{"R_plus", p.RPlus, 2.2},
		{"omega", p.Omega, 4.1},
		{"zeta_plus", p.ZetaPlus, 0.05},
		{"zeta_minus", p.ZetaMinus, 0.07},
		{"phi_plus_critical", p.PhiPlusCritical, 0.33},
		{"phi_minus_safe", p.PhiMinusSafe, 0.10},
		{"phi_minus_danger", p.PhiMinusDanger, 0.18},
		{"tp_forward", p.TPForward, 0.52},
		{"tp_collapse", p.TPCollapse, 0.15},
	}
	for _, c := range checks {
		if c.got != c.want {
			t.Errorf("%s: got %v, want %v", c.name, c.got, c.want)
		}
	}
}

func TestWithOverride(t *testing.T) {
	base := Defaults()

	got, err := WithOverride(base, "omega", 4.5)
	if err != nil {
		t.Fatalf("override omega: %v", err)
	}
	if got.Omega != 4.5 {
		t.Errorf("override not applied: got %v, want 4.5", got.Omega)
	}
	if base.Omega != 4.1 {
		t.Errorf("base mutated: got %v, want 4.1", base.Omega)
	}

	// Other entries carry over untouched.
	if got.Delta != base.Delta || got.TPForward != base.TPForward {
		t.Error("unrelated entries changed by override")
	}
}

func TestWithOverride_EveryKey(t *testing.T) {
	base := Defaults()
	for _, e := range base.Entries() {
		out, err := WithOverride(base, e.Name, e.Value+1)
		if err != nil {
			t.Fatalf("override %s: %v", e.Name, err)
		}
		found := false
		for _, oe := range out.Entries() {
			if oe.Name == e.Name {
				found = true
				if oe.Value != e.Value+1 {
					t.Errorf("%s: got %v, want %v", e.Name, oe.Value, e.Value+1)
				}
			}
		}
		if !found {
			t.Errorf("%s missing from Entries", e.Name)
		}
	}
}

func TestWithOverride_Unknown(t *testing.T) {
	_, err := WithOverride(Defaults(), "not_a_real_param", 1.0)
	if !errors.Is(err, ErrUnknownParameter) {
		t.Fatalf("got %v, want ErrUnknownParameter", err)
	}
}
