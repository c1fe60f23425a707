package batch

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"Catalyst/internal/calc/loading"

	"github.com/xuri/excelize/v2"
)

const maxWorkbookSize = 10 << 20 // 10MB

// ReadXLSX turns the first sheet of a workbook into batch items. Columns are
// loading %, support mass, Mx, Mz and optionally the active and precursor
// names. The first row is treated as a header when its first cell is not a
// number.
func ReadXLSX(r io.Reader) (BatchInput, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return BatchInput{}, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	rows, err := f.GetRows(f.GetSheetName(0))
	if err != nil {
		return BatchInput{}, fmt.Errorf("read sheet: %w", err)
	}
	var in BatchInput
	for i, row := range rows {
		if blank(row) {
			continue
		}
		req := parseRow(row)
		if i == 0 && req.LoadingPercent.Bad() {
			continue
		}
		in.Items = append(in.Items, req)
	}
	return in, nil
}

func blank(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}

func parseRow(row []string) loading.Request {
	cell := func(i int) string {
		if i < len(row) {
			return strings.TrimSpace(row[i])
		}
		return ""
	}
	return loading.Request{
		LoadingPercent:     loading.ParseNumber(cell(0)),
		SupportMass:        loading.ParseNumber(cell(1)),
		ActiveMolarMass:    loading.ParseNumber(cell(2)),
		PrecursorMolarMass: loading.ParseNumber(cell(3)),
		Names:              loading.Names{Active: cell(4), Precursor: cell(5)},
	}
}

func (h *Handler) ImportXLSX(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxWorkbookSize)
	file, _, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "File required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	input, err := ReadXLSX(file)
	if err != nil {
		http.Error(w, "Invalid file", http.StatusBadRequest)
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
