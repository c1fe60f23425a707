package batch

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"Catalyst/internal/calc/loading"

	"github.com/xuri/excelize/v2"
)

func item(loadingPct, support, mx, mz float64) loading.Request {
	return loading.Request{
		LoadingPercent:     loading.Num(loadingPct),
		SupportMass:        loading.Num(support),
		ActiveMolarMass:    loading.Num(mx),
		PrecursorMolarMass: loading.Num(mz),
	}
}

func TestCalculatePerItemErrors(t *testing.T) {
	in := BatchInput{Items: []loading.Request{
		item(7, 10, 58.69, 290.79),
		item(100, 10, 58.69, 290.79),
		{LoadingPercent: loading.Num(5)},
		item(5, 1, 63.546, 241.6),
	}}
	out, err := Calculate(in)
	if err != nil {
		t.Fatalf("calculate: %v", err)
	}
	if len(out.Results) != 4 || out.Failed != 2 {
		t.Fatalf("expected 4 results with 2 failures, got %d/%d", len(out.Results), out.Failed)
	}
	if out.Results[0].Display == nil || out.Results[0].Display.PrecursorMass != "3.729" {
		t.Fatalf("first item: %+v", out.Results[0])
	}
	if out.Results[1].Field != "loading_percent" || out.Results[1].Result != nil {
		t.Fatalf("second item should fail on loading_percent: %+v", out.Results[1])
	}
	if out.Results[2].Field != "support_mass_g" || out.Results[2].Error != "value required" {
		t.Fatalf("third item should report the blank field: %+v", out.Results[2])
	}
	if out.Results[3].Result == nil || out.Results[3].Index != 3 {
		t.Fatalf("batch should continue after failures: %+v", out.Results[3])
	}
}

func TestCalculateEmpty(t *testing.T) {
	if _, err := Calculate(BatchInput{}); !errors.Is(err, ErrEmpty) {
		t.Fatalf("expected ErrEmpty, got %v", err)
	}
}

func TestCalculateTooMany(t *testing.T) {
	items := make([]loading.Request, MaxItems+1)
	if _, err := Calculate(BatchInput{Items: items}); err == nil {
		t.Fatalf("expected error for %d items", len(items))
	}
}

func TestHandler(t *testing.T) {
	body := `{"items":[{"loading_percent":7,"support_mass_g":10,"active_molar_mass":58.69,"precursor_molar_mass":290.79},
		{"loading_percent":"","support_mass_g":10,"active_molar_mass":58.69,"precursor_molar_mass":290.79}]}`
	rec := httptest.NewRecorder()
	(&Handler{}).Loading(rec, httptest.NewRequest(http.MethodPost, "/api/tools/loading/batch", strings.NewReader(body)))
	if rec.Code != http.StatusOK {
		t.Fatalf("status %d: %s", rec.Code, rec.Body.String())
	}
	var out BatchResult
	if err := json.NewDecoder(rec.Body).Decode(&out); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if out.Failed != 1 || out.Results[1].Field != "loading_percent" {
		t.Fatalf("unexpected response %+v", out)
	}

	rec = httptest.NewRecorder()
	(&Handler{}).Loading(rec, httptest.NewRequest(http.MethodPost, "/api/tools/loading/batch", strings.NewReader(`{"items":[]}`)))
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("empty batch status %d", rec.Code)
	}
}

func workbook(t *testing.T, rows ...[]any) *bytes.Buffer {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()
	for i, row := range rows {
		cell, _ := excelize.CoordinatesToCellName(1, i+1)
		if err := f.SetSheetRow("Sheet1", cell, &row); err != nil {
			t.Fatalf("set row: %v", err)
		}
	}
	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		t.Fatalf("write workbook: %v", err)
	}
	return &buf
}

func TestReadXLSX(t *testing.T) {
	buf := workbook(t,
		[]any{"loading", "support", "Mx", "Mz", "active", "precursor"},
		[]any{7, 10, 58.69, 290.79, "Ni", "Ni(NO3)2.6H2O"},
		[]any{},
		[]any{5, "", 63.546, 241.6},
	)
	in, err := ReadXLSX(buf)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if len(in.Items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(in.Items))
	}
	if in.Items[0].Active != "Ni" {
		t.Fatalf("names not read: %+v", in.Items[0].Names)
	}
	out, err := Calculate(in)
	if err != nil {
		t.Fatalf("calculate: %v", err)
	}
	if out.Failed != 1 || out.Results[1].Field != "support_mass_g" {
		t.Fatalf("unexpected results %+v", out)
	}
}

func TestReadXLSXRejectsGarbage(t *testing.T) {
	if _, err := ReadXLSX(strings.NewReader("not a workbook")); err == nil {
		t.Fatalf("expected error")
	}
}
