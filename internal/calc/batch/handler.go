package batch

import (
	"encoding/json"
	"net/http"

	"Catalyst/internal/metrics"
)

type Handler struct{}

func (h *Handler) Loading(w http.ResponseWriter, r *http.Request) {
	var input BatchInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	res, err := Calculate(input)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	countOutcomes(res)
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(res)
}

func countOutcomes(res BatchResult) {
	metrics.Calculations.WithLabelValues("ok").Add(float64(len(res.Results) - res.Failed))
	metrics.Calculations.WithLabelValues("invalid").Add(float64(res.Failed))
}
