package loading

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

type fakeRecorder struct {
	calls int
	names Names
	err   error
}

func (f *fakeRecorder) Record(in Input, names Names, res Result) (string, error) {
	f.calls++
	f.names = names
	return "rec-1", f.err
}

func TestRequestInput(t *testing.T) {
	var req Request
	body := `{"loading_percent":"7","support_mass_g":10,"active_molar_mass":" 58.69 ","precursor_molar_mass":290.79,"active_name":"Ni"}`
	if err := json.Unmarshal([]byte(body), &req); err != nil {
		t.Fatalf("decode: %v", err)
	}
	in, err := req.Input()
	if err != nil {
		t.Fatalf("Input: %v", err)
	}
	if in.LoadingPercent != 7 || in.ActiveMolarMass != 58.69 || req.Active != "Ni" {
		t.Fatalf("unexpected input: %+v names=%+v", in, req.Names)
	}
}

func TestRequestBlankAndBadFields(t *testing.T) {
	cases := []struct {
		body  string
		field string
		msg   string
	}{
		{`{"loading_percent":"","support_mass_g":1,"active_molar_mass":1,"precursor_molar_mass":1}`, "loading_percent", "value required"},
		{`{"loading_percent":5,"active_molar_mass":1,"precursor_molar_mass":1}`, "support_mass_g", "value required"},
		{`{"loading_percent":5,"support_mass_g":1,"active_molar_mass":null,"precursor_molar_mass":1}`, "active_molar_mass", "value required"},
		{`{"loading_percent":5,"support_mass_g":1,"active_molar_mass":1,"precursor_molar_mass":"abc"}`, "precursor_molar_mass", "not a valid number"},
	}
	for _, tc := range cases {
		var req Request
		if err := json.Unmarshal([]byte(tc.body), &req); err != nil {
			t.Fatalf("decode %s: %v", tc.body, err)
		}
		_, err := req.Input()
		var verr *ValidationError
		if !errors.As(err, &verr) || verr.Field != tc.field || verr.Message != tc.msg {
			t.Fatalf("body %s: unexpected error %v", tc.body, err)
		}
	}
}

func TestHandlerCalcRecordsHistory(t *testing.T) {
	rec := &fakeRecorder{}
	h := &Handler{History: rec}
	body := `{"loading_percent":7,"support_mass_g":10,"active_molar_mass":58.69,"precursor_molar_mass":290.79,"active_name":"Ni","precursor_name":"Ni(NO₃)₂·6H₂O"}`
	w := httptest.NewRecorder()
	h.Calc(w, httptest.NewRequest(http.MethodPost, "/api/tools/loading/calc", strings.NewReader(body)))

	if w.Code != http.StatusOK {
		t.Fatalf("unexpected status %d: %s", w.Code, w.Body.String())
	}
	var resp Response
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Display.PrecursorMass != "3.729" || resp.RecordID != "rec-1" || resp.Warning != "" {
		t.Fatalf("unexpected response: %+v", resp)
	}
	if rec.calls != 1 || rec.names.Precursor != "Ni(NO₃)₂·6H₂O" {
		t.Fatalf("unexpected recorder state: %+v", rec)
	}
}

func TestHandlerCalcRejectsInvalid(t *testing.T) {
	rec := &fakeRecorder{}
	h := &Handler{History: rec}
	body := `{"loading_percent":100,"support_mass_g":10,"active_molar_mass":58.69,"precursor_molar_mass":290.79}`
	w := httptest.NewRecorder()
	h.Calc(w, httptest.NewRequest(http.MethodPost, "/api/tools/loading/calc", strings.NewReader(body)))

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "loading_percent") {
		t.Fatalf("expected field in error body: %s", w.Body.String())
	}
	if rec.calls != 0 {
		t.Fatalf("invalid calculation must not be recorded")
	}
}

func TestHandlerCalcSaveFailureWarns(t *testing.T) {
	h := &Handler{History: &fakeRecorder{err: errors.New("disk full")}}
	body := `{"loading_percent":5,"support_mass_g":1,"active_molar_mass":1,"precursor_molar_mass":2}`
	w := httptest.NewRecorder()
	h.Calc(w, httptest.NewRequest(http.MethodPost, "/api/tools/loading/calc", strings.NewReader(body)))
	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), "warning") {
		t.Fatalf("expected 200 with warning, got %d %s", w.Code, w.Body.String())
	}
}

func TestHandlerCalcRejectsOverflow(t *testing.T) {
	rec := &fakeRecorder{}
	h := &Handler{History: rec}
	body := `{"loading_percent":50,"support_mass_g":1e308,"active_molar_mass":58.69,"precursor_molar_mass":290.79}`
	w := httptest.NewRecorder()
	h.Calc(w, httptest.NewRequest(http.MethodPost, "/api/tools/loading/calc", strings.NewReader(body)))

	if w.Code != http.StatusBadRequest || !strings.Contains(w.Body.String(), "support_mass_g") {
		t.Fatalf("expected 400 on support_mass_g, got %d %s", w.Code, w.Body.String())
	}
	if rec.calls != 0 {
		t.Fatalf("overflowing calculation must not be recorded")
	}
}
