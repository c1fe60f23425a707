package loading

import (
	"errors"
	"math"
	"testing"
)

func TestCalculateNickelExample(t *testing.T) {
	in := Input{LoadingPercent: 7, SupportMass: 10, ActiveMolarMass: 58.69, PrecursorMolarMass: 290.79}
	res, err := Calculate(in)
	if err != nil {
		t.Fatalf("Calculate: %v", err)
	}
	check := func(name string, got, want, tol float64) {
		t.Helper()
		if math.Abs(got-want) > tol {
			t.Fatalf("%s = %.12f, want %.12f", name, got, want)
		}
	}
	check("f", res.MassFraction, 0.201829499, 1e-9)
	check("active component", res.ActiveComponentMass, 0.752688172, 1e-9)
	check("total finished", res.TotalFinishedMass, 10.752688172, 1e-9)
	check("precursor", res.PrecursorMass, 3.729326862, 1e-9)
	check("total after", res.TotalAfterMass, 13.729326862, 1e-9)

	d := res.Display()
	if d.MassFraction != "0.201829499" || d.PrecursorMass != "3.729" || d.TotalAfterMass != "13.729" ||
		d.TotalFinishedMass != "10.753" || d.ActiveComponentMass != "0.752688172" {
		t.Fatalf("unexpected display: %+v", d)
	}
	r := res.Rounded()
	if r.PrecursorMass != 3.729 || r.TotalFinishedMass != 10.753 || r.MassFraction != 0.201829499 {
		t.Fatalf("unexpected rounded result: %+v", r)
	}
}

func TestCalculateTotalAfterIdentity(t *testing.T) {
	inputs := []Input{
		{0, 1, 1, 1},
		{5, 1, 58.933, 291.035},
		{99.9, 0.5, 195.084, 517.904},
		{33.3, 1234.5, 63.546, 241.602},
		{0.01, 1e-3, 26.982, 375.134},
	}
	for _, in := range inputs {
		res, err := Calculate(in)
		if err != nil {
			t.Fatalf("Calculate(%+v): %v", in, err)
		}
		diff := res.TotalAfterMass - in.SupportMass - res.PrecursorMass
		if math.Abs(diff) > 1e-9*math.Max(1, res.TotalAfterMass) {
			t.Fatalf("total after - support != precursor for %+v (diff %g)", in, diff)
		}
		again, _ := Calculate(in)
		if again != res {
			t.Fatalf("Calculate not deterministic for %+v", in)
		}
	}
}

func TestCalculateZeroLoading(t *testing.T) {
	res, err := Calculate(Input{LoadingPercent: 0, SupportMass: 2.5, ActiveMolarMass: 58.693, PrecursorMolarMass: 290.795})
	if err != nil {
		t.Fatalf("Calculate: %v", err)
	}
	if res.TotalFinishedMass != 2.5 || res.ActiveComponentMass != 0 || res.PrecursorMass != 0 || res.TotalAfterMass != 2.5 {
		t.Fatalf("unexpected result for zero loading: %+v", res)
	}
}

func TestCalculateValidation(t *testing.T) {
	valid := Input{LoadingPercent: 5, SupportMass: 1, ActiveMolarMass: 58.693, PrecursorMolarMass: 290.795}
	cases := []struct {
		name  string
		mod   func(*Input)
		field string
	}{
		{"loading 100", func(in *Input) { in.LoadingPercent = 100 }, "loading_percent"},
		{"loading above 100", func(in *Input) { in.LoadingPercent = 150 }, "loading_percent"},
		{"negative loading", func(in *Input) { in.LoadingPercent = -0.1 }, "loading_percent"},
		{"nan loading", func(in *Input) { in.LoadingPercent = math.NaN() }, "loading_percent"},
		{"zero support", func(in *Input) { in.SupportMass = 0 }, "support_mass_g"},
		{"infinite support", func(in *Input) { in.SupportMass = math.Inf(1) }, "support_mass_g"},
		{"zero mx", func(in *Input) { in.ActiveMolarMass = 0 }, "active_molar_mass"},
		{"negative mz", func(in *Input) { in.PrecursorMolarMass = -290 }, "precursor_molar_mass"},
		{"zero mz", func(in *Input) { in.PrecursorMolarMass = 0 }, "precursor_molar_mass"},
	}
	for _, tc := range cases {
		in := valid
		tc.mod(&in)
		_, err := Calculate(in)
		var verr *ValidationError
		if !errors.As(err, &verr) {
			t.Fatalf("%s: expected ValidationError, got %v", tc.name, err)
		}
		if verr.Field != tc.field {
			t.Fatalf("%s: expected field %s, got %s", tc.name, tc.field, verr.Field)
		}
	}
}

func TestCalculateTinyRatioStaysFinite(t *testing.T) {
	res, err := Calculate(Input{LoadingPercent: 10, SupportMass: 1, ActiveMolarMass: 5e-324, PrecursorMolarMass: 1e308})
	if err != nil {
		t.Fatalf("Calculate: %v", err)
	}
	if res.MassFraction != 0 || res.PrecursorMass != 0 {
		t.Fatalf("expected f underflow to give zero precursor mass, got %+v", res)
	}
}

func TestCalculateOverflowIsValidationError(t *testing.T) {
	cases := []Input{
		{LoadingPercent: 50, SupportMass: 1e308, ActiveMolarMass: 58.69, PrecursorMolarMass: 290.79},
		{LoadingPercent: 10, SupportMass: 1, ActiveMolarMass: 1e-300, PrecursorMolarMass: 1e10},
	}
	for _, in := range cases {
		res, err := Calculate(in)
		var verr *ValidationError
		if !errors.As(err, &verr) || verr.Field != "support_mass_g" {
			t.Fatalf("Calculate(%+v) = %+v, %v; want support_mass_g ValidationError", in, res, err)
		}
		if res != (Result{}) {
			t.Fatalf("expected zero result on overflow, got %+v", res)
		}
	}
}
