// Package elements is the periodic-table lookup tool: atomic masses, common
// compound masses and user-added compounds persisted to a local file.
package elements

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"maps"
	"math"
	"os"
	"slices"
	"strings"
	"sync"

	"Catalyst/internal/formula"
	"Catalyst/internal/repo"

	"github.com/shopspring/decimal"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var ErrInvalidCompound = errors.New("invalid compound")

type Compound struct {
	Formula string  `json:"formula"`
	Mass    float64 `json:"mass"`
}

// Hydrate reports whether the compound carries water of crystallisation.
func (c Compound) Hydrate() bool {
	_, water, ok := strings.Cut(c.Formula, formula.Separator)
	return ok && strings.Contains(water, "H₂O")
}

type Element struct {
	Number    int        `json:"number"`
	Symbol    string     `json:"symbol"`
	Name      string     `json:"name"`
	LocalName string     `json:"local_name"`
	Mass      float64    `json:"mass"`
	Compounds []Compound `json:"compounds"`
}

// Placeholder reports whether the element was created by a compound import
// for a symbol the periodic table does not know.
func (e Element) Placeholder() bool { return e.Number == 0 }

func (e Element) clone() Element {
	e.Compounds = slices.Clone(e.Compounds)
	return e
}

// Database is the baseline periodic table overlaid with user changes.
type Database struct {
	mu       sync.RWMutex
	elements map[string]*Element
	order    []string
	baseline map[string][]Compound
	path     string
}

// Initialize builds the baseline table.
func Initialize() *Database {
	d := &Database{
		elements: make(map[string]*Element, len(periodicTable)),
		order:    make([]string, 0, len(periodicTable)),
		baseline: make(map[string][]Compound, len(catalystCompounds)),
	}
	for _, b := range periodicTable {
		el := &Element{
			Number:    b.number,
			Symbol:    b.symbol,
			Name:      b.name,
			LocalName: b.localName,
			Mass:      b.mass,
		}
		for _, c := range catalystCompounds[b.symbol] {
			el.Compounds = append(el.Compounds, Compound{
				Formula: formula.Format(c.formula),
				Mass:    roundMass(c.mass),
			})
		}
		d.elements[b.symbol] = el
		d.order = append(d.order, b.symbol)
		d.baseline[b.symbol] = slices.Clone(el.Compounds)
	}
	return d
}

func roundMass(v float64) float64 {
	return decimal.NewFromFloat(v).Round(3).InexactFloat64()
}

// NormalizeSymbol trims and title-cases a symbol, "fe " becomes "Fe".
func NormalizeSymbol(symbol string) string {
	return cases.Title(language.Und).String(strings.TrimSpace(symbol))
}

// Lookup returns a copy of the element with the given symbol.
func (d *Database) Lookup(symbol string) (Element, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	el, ok := d.elements[NormalizeSymbol(symbol)]
	if !ok {
		return Element{}, false
	}
	return el.clone(), true
}

// Symbols lists periodic-table symbols in atomic-number order followed by
// placeholder elements in the order they were created.
func (d *Database) Symbols() []string {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return slices.Clone(d.order)
}

// Search matches symbol or English name prefixes case-insensitively, or any
// part of the local name.
func (d *Database) Search(query string) []Element {
	q := strings.ToLower(strings.TrimSpace(query))
	d.mu.RLock()
	defer d.mu.RUnlock()
	var out []Element
	for _, sym := range d.order {
		el := d.elements[sym]
		if q == "" ||
			strings.HasPrefix(strings.ToLower(el.Symbol), q) ||
			strings.HasPrefix(strings.ToLower(el.Name), q) ||
			strings.Contains(el.LocalName, strings.TrimSpace(query)) {
			out = append(out, el.clone())
		}
	}
	return out
}

func (d *Database) placeholder(symbol string) *Element {
	el := &Element{Symbol: symbol, Name: symbol, LocalName: symbol}
	d.elements[symbol] = el
	d.order = append(d.order, symbol)
	return el
}

// AddCompound formats formulaText, appends it to the element's list and
// persists. It reports false without changing anything when the element
// already lists the same formatted formula. Unknown symbols get a
// placeholder element with zero atomic mass.
func (d *Database) AddCompound(symbol, formulaText string, mass float64) (bool, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	added, err := d.add(symbol, formulaText, mass)
	if err != nil || !added {
		return added, err
	}
	return true, d.persist()
}

func (d *Database) add(symbol, formulaText string, mass float64) (bool, error) {
	symbol = NormalizeSymbol(symbol)
	f := formula.Format(strings.TrimSpace(formulaText))
	if symbol == "" || f == "" {
		return false, fmt.Errorf("%w: symbol and formula are required", ErrInvalidCompound)
	}
	if !(mass > 0) || math.IsInf(mass, 0) {
		return false, fmt.Errorf("%w: molar mass must be greater than 0", ErrInvalidCompound)
	}
	el, ok := d.elements[symbol]
	if ok && slices.ContainsFunc(el.Compounds, func(c Compound) bool { return c.Formula == f }) {
		return false, nil
	}
	if !ok {
		el = d.placeholder(symbol)
	}
	el.Compounds = append(el.Compounds, Compound{Formula: f, Mass: mass})
	return true, nil
}

// DeleteCompound removes the compound whose formatted formula equals the
// formatted formulaText and persists. It reports false when nothing matched.
func (d *Database) DeleteCompound(symbol, formulaText string) (bool, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	el, ok := d.elements[NormalizeSymbol(symbol)]
	if !ok {
		return false, nil
	}
	f := formula.Format(strings.TrimSpace(formulaText))
	i := slices.IndexFunc(el.Compounds, func(c Compound) bool { return c.Formula == f })
	if i < 0 {
		return false, nil
	}
	el.Compounds = slices.Delete(el.Compounds, i, i+1)
	return true, d.persist()
}

func (d *Database) persist() error {
	if d.path == "" {
		return nil
	}
	if err := d.save(d.path); err != nil {
		log.Printf("Saving compounds to %s failed: %v", d.path, err)
		return err
	}
	return nil
}

type override struct {
	Name      string     `json:"name,omitempty"`
	Mass      float64    `json:"mass,omitempty"`
	Compounds []Compound `json:"compounds"`
	// Nitrates is the older layout: [["Fe(NO₃)₃", 241.86], ...] appended
	// to the baseline instead of replacing it.
	Nitrates []legacyPair `json:"nitrates,omitempty"`
}

type legacyPair struct {
	Formula string
	Mass    float64
}

func (p *legacyPair) UnmarshalJSON(b []byte) error {
	var raw []json.RawMessage
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	if len(raw) != 2 {
		return fmt.Errorf("expected [formula, mass], got %d values", len(raw))
	}
	if err := json.Unmarshal(raw[0], &p.Formula); err != nil {
		return err
	}
	return json.Unmarshal(raw[1], &p.Mass)
}

// LoadOverrides merges the override file at path into the table and makes
// path the persistence target. A missing, unreadable or malformed file
// leaves the table as it is.
func (d *Database) LoadOverrides(path string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.path = path
	data, err := os.ReadFile(path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			log.Printf("Reading compound overrides %s failed, using built-in table: %v", path, err)
		}
		return
	}
	var overrides map[string]override
	if err := json.Unmarshal(data, &overrides); err != nil {
		log.Printf("Parsing compound overrides %s failed, using built-in table: %v", path, err)
		return
	}
	for _, rawSymbol := range slices.Sorted(maps.Keys(overrides)) {
		o := overrides[rawSymbol]
		symbol := NormalizeSymbol(rawSymbol)
		if symbol == "" {
			continue
		}
		el, ok := d.elements[symbol]
		if !ok {
			el = d.placeholder(symbol)
			if o.Name != "" {
				el.Name, el.LocalName = o.Name, o.Name
			}
			el.Mass = o.Mass
		}
		if o.Compounds != nil {
			el.Compounds = el.Compounds[:0:0]
			for _, c := range o.Compounds {
				d.appendUnique(el, c.Formula, c.Mass)
			}
		}
		for _, n := range o.Nitrates {
			d.appendUnique(el, n.Formula, n.Mass)
		}
	}
	log.Printf("Loaded compound overrides for %d elements from %s", len(overrides), path)
}

func (d *Database) appendUnique(el *Element, formulaText string, mass float64) {
	f := formula.Format(strings.TrimSpace(formulaText))
	if f == "" || !(mass > 0) {
		return
	}
	if slices.ContainsFunc(el.Compounds, func(c Compound) bool { return c.Formula == f }) {
		return
	}
	el.Compounds = append(el.Compounds, Compound{Formula: f, Mass: mass})
}

// Save writes every element whose compound list differs from the built-in
// one, and every placeholder element, to path.
func (d *Database) Save(path string) error {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.save(path)
}

func (d *Database) save(path string) error {
	out := make(map[string]override)
	for _, sym := range d.order {
		el := d.elements[sym]
		if el.Placeholder() {
			out[sym] = override{Name: el.Name, Mass: el.Mass, Compounds: nonNil(el.Compounds)}
			continue
		}
		if !slices.Equal(el.Compounds, d.baseline[sym]) {
			out[sym] = override{Compounds: nonNil(el.Compounds)}
		}
	}
	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return err
	}
	return repo.WriteFileAtomic(path, data, 0o644)
}

func nonNil(c []Compound) []Compound {
	if c == nil {
		return []Compound{}
	}
	return c
}
