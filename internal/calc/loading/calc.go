// Package loading computes how much precursor to weigh out for a supported
// catalyst with a given active-component loading.
package loading

import (
	"fmt"
	"math"

	"github.com/shopspring/decimal"
)

type Input struct {
	LoadingPercent     float64 `json:"loading_percent"`      // wt.% of the finished catalyst
	SupportMass        float64 `json:"support_mass_g"`       // g
	ActiveMolarMass    float64 `json:"active_molar_mass"`    // Mx, g/mol
	PrecursorMolarMass float64 `json:"precursor_molar_mass"` // Mz, g/mol
}

type Result struct {
	MassFraction        float64 `json:"f"`
	ActiveComponentMass float64 `json:"active_component_mass_g"`
	TotalFinishedMass   float64 `json:"total_finished_mass_g"`
	TotalAfterMass      float64 `json:"total_after_mass_g"`
	PrecursorMass       float64 `json:"precursor_mass_g"`
}

// Display holds the rounded result as fixed-width strings.
type Display struct {
	MassFraction        string `json:"f"`
	ActiveComponentMass string `json:"active_component_mass_g"`
	TotalFinishedMass   string `json:"total_finished_mass_g"`
	TotalAfterMass      string `json:"total_after_mass_g"`
	PrecursorMass       string `json:"precursor_mass_g"`
}

// Names optionally describes Mx and Mz, e.g. "Ni" and "Ni(NO₃)₂·6H₂O".
type Names struct {
	Active    string `json:"active_name,omitempty"`
	Precursor string `json:"precursor_name,omitempty"`
}

const (
	FractionPlaces = 9
	MassPlaces     = 3
)

type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func invalid(field, msg string) error {
	return &ValidationError{Field: field, Message: msg}
}

func finite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }

func (in Input) Validate() error {
	switch {
	case math.IsNaN(in.LoadingPercent):
		return invalid("loading_percent", "not a number")
	case in.LoadingPercent >= 100:
		return invalid("loading_percent", "must be below 100% (the support could not carry a finite finished mass)")
	case in.LoadingPercent < 0:
		return invalid("loading_percent", "cannot be negative")
	case !(in.SupportMass > 0) || !finite(in.SupportMass):
		return invalid("support_mass_g", "must be greater than 0")
	case !(in.ActiveMolarMass > 0) || !finite(in.ActiveMolarMass):
		return invalid("active_molar_mass", "must be greater than 0")
	case !(in.PrecursorMolarMass > 0) || !finite(in.PrecursorMolarMass):
		return invalid("precursor_molar_mass", "must be greater than 0")
	}
	return nil
}

// Calculate returns the precursor mass needed to reach the requested loading.
//
//	f                     = Mx / Mz
//	total finished mass   = support / (1 - loading/100)
//	active component mass = total finished - support
//	precursor mass        = active component / f
//	total after mass      = support + precursor
//
// Values keep full precision; use Rounded or Display for output.
func Calculate(in Input) (Result, error) {
	if err := in.Validate(); err != nil {
		return Result{}, err
	}
	f := in.ActiveMolarMass / in.PrecursorMolarMass
	totalFinished := in.SupportMass / (1 - in.LoadingPercent/100)
	active := totalFinished - in.SupportMass
	precursor := 0.0
	if f != 0 {
		precursor = active / f
	}
	res := Result{
		MassFraction:        f,
		ActiveComponentMass: active,
		TotalFinishedMass:   totalFinished,
		TotalAfterMass:      in.SupportMass + precursor,
		PrecursorMass:       precursor,
	}
	if !res.Finite() {
		return Result{}, invalid("support_mass_g", "result overflows")
	}
	return res, nil
}

func round(v float64, places int32) decimal.Decimal {
	return decimal.NewFromFloat(v).Round(places)
}

// Rounded returns f and the active component mass to 9 decimals and the
// mass totals to 3 decimals.
func (r Result) Rounded() Result {
	if !r.Finite() {
		return r
	}
	return Result{
		MassFraction:        round(r.MassFraction, FractionPlaces).InexactFloat64(),
		ActiveComponentMass: round(r.ActiveComponentMass, FractionPlaces).InexactFloat64(),
		TotalFinishedMass:   round(r.TotalFinishedMass, MassPlaces).InexactFloat64(),
		TotalAfterMass:      round(r.TotalAfterMass, MassPlaces).InexactFloat64(),
		PrecursorMass:       round(r.PrecursorMass, MassPlaces).InexactFloat64(),
	}
}

func (r Result) Display() Display {
	if !r.Finite() {
		s := func(v float64) string { return fmt.Sprint(v) }
		return Display{s(r.MassFraction), s(r.ActiveComponentMass), s(r.TotalFinishedMass), s(r.TotalAfterMass), s(r.PrecursorMass)}
	}
	return Display{
		MassFraction:        round(r.MassFraction, FractionPlaces).StringFixed(FractionPlaces),
		ActiveComponentMass: round(r.ActiveComponentMass, FractionPlaces).StringFixed(FractionPlaces),
		TotalFinishedMass:   round(r.TotalFinishedMass, MassPlaces).StringFixed(MassPlaces),
		TotalAfterMass:      round(r.TotalAfterMass, MassPlaces).StringFixed(MassPlaces),
		PrecursorMass:       round(r.PrecursorMass, MassPlaces).StringFixed(MassPlaces),
	}
}

// Finite reports whether every value is a real number that can be stored.
func (r Result) Finite() bool {
	return finite(r.MassFraction) && finite(r.ActiveComponentMass) && finite(r.TotalFinishedMass) &&
		finite(r.TotalAfterMass) && finite(r.PrecursorMass)
}
