package history

import (
	"encoding/json"
	"strconv"

	"Catalyst/internal/calc/loading"

	"github.com/google/uuid"
)

// legacyRecord is the layout written by the first desktop release: inputs
// keyed loading/support/mx/mz and results stored as display strings.
type legacyRecord struct {
	Timestamp string             `json:"timestamp"`
	Inputs    map[string]float64 `json:"inputs"`
	Results   map[string]any     `json:"results"`
}

func decodeRecords(data []byte) ([]Record, error) {
	var records []Record
	err := json.Unmarshal(data, &records)
	if err == nil {
		for i := range records {
			if records[i].ID == "" {
				records[i].ID = uuid.NewString()
			}
		}
		return records, nil
	}
	var legacy []legacyRecord
	if json.Unmarshal(data, &legacy) != nil {
		return nil, err
	}
	records = make([]Record, 0, len(legacy))
	for _, lr := range legacy {
		records = append(records, Record{
			ID:        uuid.NewString(),
			Timestamp: lr.Timestamp,
			Inputs: Inputs{Input: loading.Input{
				LoadingPercent:     lr.Inputs["loading"],
				SupportMass:        lr.Inputs["support"],
				ActiveMolarMass:    lr.Inputs["mx"],
				PrecursorMolarMass: lr.Inputs["mz"],
			}},
			Results: loading.Result{
				MassFraction:        legacyNumber(lr.Results["f"]),
				ActiveComponentMass: legacyNumber(lr.Results["mx_mass"]),
				TotalFinishedMass:   legacyNumber(lr.Results["total_finished"]),
				TotalAfterMass:      legacyNumber(lr.Results["total_after"]),
				PrecursorMass:       legacyNumber(lr.Results["precursor_mass"]),
			},
		})
	}
	return records, nil
}

func legacyNumber(v any) float64 {
	switch t := v.(type) {
	case float64:
		return t
	case string:
		f, _ := strconv.ParseFloat(t, 64)
		return f
	}
	return 0
}
