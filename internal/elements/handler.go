package elements

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"path/filepath"
	"strings"

	"Catalyst/internal/formula"
	"Catalyst/internal/metrics"

	"github.com/gorilla/mux"
)

const maxImportSize = 10 << 20 // 10MB

type Handler struct {
	DB *Database
}

type Summary struct {
	Number    int     `json:"number"`
	Symbol    string  `json:"symbol"`
	Name      string  `json:"name"`
	LocalName string  `json:"local_name"`
	Mass      float64 `json:"mass"`
	Compounds int     `json:"compounds"`
}

type CompoundView struct {
	Formula string  `json:"formula"`
	Mass    float64 `json:"mass"`
	Hydrate bool    `json:"hydrate"`
}

// Detail is an element with its compounds labelled hydrated or anhydrous.
type Detail struct {
	Number      int            `json:"number"`
	Symbol      string         `json:"symbol"`
	Name        string         `json:"name"`
	LocalName   string         `json:"local_name"`
	Mass        float64        `json:"mass"`
	Placeholder bool           `json:"placeholder"`
	Compounds   []CompoundView `json:"compounds"`
}

func detail(el Element) Detail {
	d := Detail{
		Number:      el.Number,
		Symbol:      el.Symbol,
		Name:        el.Name,
		LocalName:   el.LocalName,
		Mass:        el.Mass,
		Placeholder: el.Placeholder(),
		Compounds:   make([]CompoundView, 0, len(el.Compounds)),
	}
	for _, c := range el.Compounds {
		d.Compounds = append(d.Compounds, CompoundView{Formula: c.Formula, Mass: c.Mass, Hydrate: c.Hydrate()})
	}
	return d
}

type CompoundRequest struct {
	Formula string  `json:"formula"`
	Mass    float64 `json:"mass"`
}

type ImportResult struct {
	Count int `json:"count"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	found := h.DB.Search(r.URL.Query().Get("q"))
	out := make([]Summary, 0, len(found))
	for _, el := range found {
		out = append(out, Summary{
			Number:    el.Number,
			Symbol:    el.Symbol,
			Name:      el.Name,
			LocalName: el.LocalName,
			Mass:      el.Mass,
			Compounds: len(el.Compounds),
		})
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	el, ok := h.DB.Lookup(mux.Vars(r)["symbol"])
	if !ok {
		http.Error(w, "Element not found", http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, detail(el))
}

func (h *Handler) AddCompound(w http.ResponseWriter, r *http.Request) {
	var req CompoundRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	symbol := mux.Vars(r)["symbol"]
	added, err := h.DB.AddCompound(symbol, req.Formula, req.Mass)
	switch {
	case errors.Is(err, ErrInvalidCompound):
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	case !added:
		http.Error(w, "Compound already exists", http.StatusConflict)
		return
	}
	metrics.CompoundMutations.WithLabelValues("add").Inc()
	if err != nil {
		metrics.PersistenceErrors.WithLabelValues("compounds").Inc()
		http.Error(w, "Compound added but could not be saved", http.StatusInternalServerError)
		return
	}
	el, _ := h.DB.Lookup(symbol)
	writeJSON(w, http.StatusCreated, detail(el))
}

func (h *Handler) DeleteCompound(w http.ResponseWriter, r *http.Request) {
	removed, err := h.DB.DeleteCompound(mux.Vars(r)["symbol"], r.URL.Query().Get("formula"))
	if !removed {
		http.Error(w, "Compound not found", http.StatusNotFound)
		return
	}
	metrics.CompoundMutations.WithLabelValues("delete").Inc()
	if err != nil {
		metrics.PersistenceErrors.WithLabelValues("compounds").Inc()
		http.Error(w, "Compound removed but could not be saved", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) Import(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxImportSize)
	file, header, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "File required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	var count int
	if strings.EqualFold(filepath.Ext(header.Filename), ".xlsx") {
		count, err = h.DB.ImportXLSX(file)
	} else {
		count, err = h.DB.ImportReader(file)
	}
	metrics.CompoundMutations.WithLabelValues("import").Add(float64(count))
	if err != nil {
		log.Printf("Import of %s: %d added, error: %v", header.Filename, count, err)
		if count == 0 {
			http.Error(w, "Invalid file", http.StatusBadRequest)
			return
		}
		metrics.PersistenceErrors.WithLabelValues("compounds").Inc()
		http.Error(w, "Compounds imported but could not be saved", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, ImportResult{Count: count})
}

func (h *Handler) Format(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"formula": formula.Format(r.URL.Query().Get("raw"))})
}
