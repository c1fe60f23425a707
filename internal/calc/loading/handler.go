package loading

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"Catalyst/internal/metrics"
)

// Recorder appends a finished calculation to the history log and returns
// the record ID.
type Recorder interface {
	Record(in Input, names Names, res Result) (string, error)
}

type Handler struct {
	History Recorder
}

type Response struct {
	Input    Input   `json:"input"`
	Names    Names   `json:"names"`
	Result   Result  `json:"result"`
	Display  Display `json:"display"`
	RecordID string  `json:"record_id,omitempty"`
	Warning  string  `json:"warning,omitempty"`
}

type errorResponse struct {
	Field string `json:"field"`
	Error string `json:"error"`
}

func (h *Handler) Calc(w http.ResponseWriter, r *http.Request) {
	var req Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	res, in, err := compute(req)
	if err != nil {
		var verr *ValidationError
		if errors.As(err, &verr) {
			metrics.Calculations.WithLabelValues("invalid").Inc()
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(errorResponse{Field: verr.Field, Error: verr.Message})
			return
		}
		http.Error(w, "Calculation error", http.StatusBadRequest)
		return
	}
	metrics.Calculations.WithLabelValues("ok").Inc()

	resp := Response{Input: in, Names: req.Names, Result: res.Rounded(), Display: res.Display()}
	if h.History != nil {
		id, err := h.History.Record(in, req.Names, res)
		if err != nil {
			log.Printf("Recording calculation failed: %v", err)
			resp.Warning = "calculation recorded in memory only: history could not be saved"
		}
		resp.RecordID = id
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}

func compute(req Request) (Result, Input, error) {
	in, err := req.Input()
	if err != nil {
		return Result{}, Input{}, err
	}
	res, err := Calculate(in)
	return res, in, err
}
