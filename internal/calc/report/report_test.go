package report

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"Catalyst/internal/calc/loading"
	"Catalyst/internal/history"
	"Catalyst/internal/repo"
)

func newLog(t *testing.T, n int) *history.Log {
	t.Helper()
	r, err := repo.NewFileRepository(t.TempDir())
	if err != nil {
		t.Fatalf("file repo: %v", err)
	}
	l := history.New(r, history.Options{})
	for i := 0; i < n; i++ {
		in := loading.Input{LoadingPercent: 7, SupportMass: float64(10 + i), ActiveMolarMass: 58.69, PrecursorMolarMass: 290.79}
		res, err := loading.Calculate(in)
		if err != nil {
			t.Fatalf("calculate: %v", err)
		}
		if _, err := l.Add(in, loading.Names{Active: "Ni", Precursor: "Ni(NO₃)₂·6H₂O"}, res); err != nil {
			t.Fatalf("add: %v", err)
		}
	}
	return l
}

func TestTrendChartEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := TrendChart(&buf, nil); !errors.Is(err, ErrNoData) {
		t.Fatalf("expected ErrNoData, got %v", err)
	}
}

func TestTrendChartSingleRecord(t *testing.T) {
	var buf bytes.Buffer
	if err := TrendChart(&buf, newLog(t, 1).List()); err != nil {
		t.Fatalf("render: %v", err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("\x89PNG")) {
		t.Fatalf("output is not a PNG")
	}
}

func TestBuildPDF(t *testing.T) {
	records := newLog(t, 3).List()
	idx := 1
	pdf, err := Build(records, Input{Index: &idx, Project: "Ni/Al2O3", Author: "lab", Notes: "dried at 120 C"})
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		t.Fatalf("output: %v", err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("%PDF")) {
		t.Fatalf("output is not a PDF")
	}
}

func TestBuildOutOfRange(t *testing.T) {
	records := newLog(t, 1).List()
	idx := 5
	if _, err := Build(records, Input{Index: &idx}); !errors.Is(err, ErrNoData) {
		t.Fatalf("expected ErrNoData, got %v", err)
	}
	if _, err := Build(nil, Input{}); !errors.Is(err, ErrNoData) {
		t.Fatalf("expected ErrNoData for empty history, got %v", err)
	}
}

func TestHandlers(t *testing.T) {
	empty := &Handler{History: newLog(t, 0)}
	rec := httptest.NewRecorder()
	empty.Chart(rec, httptest.NewRequest(http.MethodGet, "/api/history/chart.png", nil))
	if rec.Code != http.StatusNotFound {
		t.Fatalf("chart on empty history: status %d", rec.Code)
	}

	h := &Handler{History: newLog(t, 2)}
	rec = httptest.NewRecorder()
	h.Chart(rec, httptest.NewRequest(http.MethodGet, "/api/history/chart.png", nil))
	if rec.Code != http.StatusOK || rec.Header().Get("Content-Type") != "image/png" {
		t.Fatalf("chart status %d type %q", rec.Code, rec.Header().Get("Content-Type"))
	}

	rec = httptest.NewRecorder()
	h.Generate(rec, httptest.NewRequest(http.MethodPost, "/api/tools/report/pdf", strings.NewReader(`{"project":"p"}`)))
	if rec.Code != http.StatusOK || !strings.HasPrefix(rec.Body.String(), "%PDF") {
		t.Fatalf("pdf status %d", rec.Code)
	}

	rec = httptest.NewRecorder()
	h.Generate(rec, httptest.NewRequest(http.MethodPost, "/api/tools/report/pdf", strings.NewReader(`{"index":9}`)))
	if rec.Code != http.StatusNotFound {
		t.Fatalf("out of range index: status %d", rec.Code)
	}
}

func TestBuildPrintsPlainDecimals(t *testing.T) {
	r, err := repo.NewFileRepository(t.TempDir())
	if err != nil {
		t.Fatalf("file repo: %v", err)
	}
	l := history.New(r, history.Options{})
	in := loading.Input{LoadingPercent: 5, SupportMass: 1234567, ActiveMolarMass: 58.69, PrecursorMolarMass: 290.79}
	res, err := loading.Calculate(in)
	if err != nil {
		t.Fatalf("calculate: %v", err)
	}
	if _, err := l.Add(in, loading.Names{}, res); err != nil {
		t.Fatalf("add: %v", err)
	}

	pdf, err := Build(l.List(), Input{})
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	pdf.SetCompression(false)
	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		t.Fatalf("output: %v", err)
	}
	if !bytes.Contains(buf.Bytes(), []byte("(1234567)")) || bytes.Contains(buf.Bytes(), []byte("e+06")) {
		t.Fatalf("support mass not printed in plain decimal notation")
	}
}
