package report

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"Catalyst/internal/formula"
	"Catalyst/internal/history"

	"github.com/phpdave11/gofpdf"
)

type Input struct {
	// Index selects a history record; nil means the most recent one.
	Index   *int   `json:"index"`
	Project string `json:"project"`
	Author  string `json:"author"`
	Notes   string `json:"notes"`
}

type Handler struct {
	History *history.Log
}

// Build renders the report for one history record as a PDF document.
func Build(records []history.Record, in Input) (*gofpdf.Fpdf, error) {
	if len(records) == 0 {
		return nil, ErrNoData
	}
	idx := len(records) - 1
	if in.Index != nil {
		idx = *in.Index
	}
	if idx < 0 || idx >= len(records) {
		return nil, fmt.Errorf("%w: record %d out of range", ErrNoData, idx)
	}
	rec := records[idx]

	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	text := func(s string) string { return tr(formula.ASCII(s)) }

	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, "Catalyst Loading Report")
	pdf.Ln(12)
	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 6, text(fmt.Sprintf("Project: %s", in.Project)))
	pdf.Ln(6)
	pdf.Cell(0, 6, text(fmt.Sprintf("Author: %s", in.Author)))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Date: %s", time.Now().Format("2006-01-02")))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Calculated: %s", rec.Timestamp))
	pdf.Ln(10)

	inputs := rec.Inputs
	disp := rec.Results.Display()
	section(pdf, "Inputs", [][2]string{
		{"Loading (wt.%)", history.FormatNumber(inputs.LoadingPercent)},
		{"Support mass (g)", history.FormatNumber(inputs.SupportMass)},
		{"Active component (Mx)", text(history.Descriptor(inputs.Active, inputs.ActiveMolarMass))},
		{"Precursor (Mz)", text(history.Descriptor(inputs.Precursor, inputs.PrecursorMolarMass))},
	})
	section(pdf, "Results", [][2]string{
		{"f = Mx / Mz", disp.MassFraction},
		{"Active component mass (g)", disp.ActiveComponentMass},
		{"Finished total mass (g)", disp.TotalFinishedMass},
		{"Total mass after impregnation (g)", disp.TotalAfterMass},
		{"Precursor mass (g)", disp.PrecursorMass},
	})

	if in.Notes != "" {
		pdf.SetFont("Helvetica", "B", 12)
		pdf.Cell(0, 8, "Notes")
		pdf.Ln(8)
		pdf.SetFont("Helvetica", "", 11)
		pdf.MultiCell(0, 6, text(in.Notes), "", "L", false)
		pdf.Ln(4)
	}

	var png bytes.Buffer
	if err := TrendChart(&png, records); err != nil {
		log.Printf("Trend chart skipped: %v", err)
	} else {
		opt := gofpdf.ImageOptions{ImageType: "PNG"}
		pdf.RegisterImageOptionsReader("trend", opt, &png)
		if pdf.GetY()+90 > 280 {
			pdf.AddPage()
		}
		pdf.ImageOptions("trend", 10, pdf.GetY()+2, 190, 0, false, opt, 0, "")
	}
	return pdf, pdf.Error()
}

func section(pdf *gofpdf.Fpdf, title string, rows [][2]string) {
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, title)
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 11)
	for _, row := range rows {
		pdf.CellFormat(90, 7, row[0], "1", 0, "L", false, 0, "")
		pdf.CellFormat(90, 7, row[1], "1", 1, "R", false, 0, "")
	}
	pdf.Ln(4)
}

func (h *Handler) Generate(w http.ResponseWriter, r *http.Request) {
	var input Input
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	pdf, err := Build(h.History.List(), input)
	if errors.Is(err, ErrNoData) {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}
	var buf bytes.Buffer
	if err == nil {
		err = pdf.Output(&buf)
	}
	if err != nil {
		log.Printf("Report generation failed: %v", err)
		http.Error(w, "Report generation error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", "attachment; filename=\"catalyst_report.pdf\"")
	w.Write(buf.Bytes())
}

func (h *Handler) Chart(w http.ResponseWriter, r *http.Request) {
	var buf bytes.Buffer
	err := TrendChart(&buf, h.History.List())
	switch {
	case errors.Is(err, ErrNoData):
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	case err != nil:
		log.Printf("Chart rendering failed: %v", err)
		http.Error(w, "Chart rendering error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Write(buf.Bytes())
}
