package loading

import (
	"encoding/json"
	"strconv"
	"strings"
)

// Number is a numeric form field. It accepts a JSON number, a numeric
// string, or an empty string/null for a field left blank.
type Number struct {
	value float64
	set   bool
	bad   bool
}

func Num(v float64) Number { return Number{value: v, set: true} }

// ParseNumber reads a form field as typed by a user. Surrounding space is
// ignored and an empty string is a blank field.
func ParseNumber(s string) Number {
	s = strings.TrimSpace(s)
	if s == "" {
		return Number{}
	}
	v, err := strconv.ParseFloat(s, 64)
	return Number{value: v, set: true, bad: err != nil}
}

// Bad reports a field that was filled in but is not a number.
func (n Number) Bad() bool { return n.bad }

func (n *Number) UnmarshalJSON(b []byte) error {
	s := strings.TrimSpace(string(b))
	if s == "null" {
		*n = Number{}
		return nil
	}
	if strings.HasPrefix(s, `"`) {
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
	}
	*n = ParseNumber(s)
	return nil
}

func (n Number) MarshalJSON() ([]byte, error) {
	if !n.set || n.bad {
		return []byte("null"), nil
	}
	return json.Marshal(n.value)
}

// Float resolves the field. A blank field is a ValidationError for every
// input alike; it never silently becomes 0.
func (n Number) Float(field string) (float64, error) {
	switch {
	case !n.set:
		return 0, invalid(field, "value required")
	case n.bad:
		return 0, invalid(field, "not a valid number")
	}
	return n.value, nil
}

// Request is the calculator form as submitted by a front end.
type Request struct {
	LoadingPercent     Number `json:"loading_percent"`
	SupportMass        Number `json:"support_mass_g"`
	ActiveMolarMass    Number `json:"active_molar_mass"`
	PrecursorMolarMass Number `json:"precursor_molar_mass"`
	Names
}

func (r Request) Input() (Input, error) {
	var in Input
	var err error
	if in.LoadingPercent, err = r.LoadingPercent.Float("loading_percent"); err != nil {
		return Input{}, err
	}
	if in.SupportMass, err = r.SupportMass.Float("support_mass_g"); err != nil {
		return Input{}, err
	}
	if in.ActiveMolarMass, err = r.ActiveMolarMass.Float("active_molar_mass"); err != nil {
		return Input{}, err
	}
	if in.PrecursorMolarMass, err = r.PrecursorMolarMass.Float("precursor_molar_mass"); err != nil {
		return Input{}, err
	}
	return in, nil
}
