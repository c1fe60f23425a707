package history

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"Catalyst/internal/repo"

	"github.com/xuri/excelize/v2"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

type Locale string

const (
	LocaleZH Locale = "zh"
	LocaleEN Locale = "en"
)

var csvHeaders = map[Locale][]string{
	LocaleZH: {"时间", "负载量(wt.%)", "载体质量(g)", "活性组分(Mx)", "前驱体(Mz)", "所需前驱体质量(g)"},
	LocaleEN: {"Time", "Loading (wt.%)", "Support mass (g)", "Active component (Mx)", "Precursor (Mz)", "Precursor mass (g)"},
}

var xlsxHeaders = map[Locale][]string{
	LocaleZH: {"时间", "负载量(wt.%)", "载体质量(g)", "活性组分分子量(Mx)", "前驱体分子量(Mz)",
		"f(质量分数)", "活性组分质量(g)", "成品总质量(g)", "制后总质量(g)", "所需前驱体质量(g)"},
	LocaleEN: {"Time", "Loading (wt.%)", "Support mass (g)", "Active molar mass (Mx)", "Precursor molar mass (Mz)",
		"f (mass fraction)", "Active component mass (g)", "Finished total (g)", "Total after (g)", "Precursor mass (g)"},
}

func (l *Log) headers(table map[Locale][]string) []string {
	if h, ok := table[l.locale]; ok {
		return h
	}
	return table[LocaleZH]
}

// FormatNumber prints an input value in plain decimal notation.
func FormatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// Descriptor labels a molar mass with its compound name, "name (mass)", or
// gives the mass alone when no name was chosen.
func Descriptor(name string, mass float64) string {
	if name == "" {
		return FormatNumber(mass)
	}
	return fmt.Sprintf("%s (%s)", name, FormatNumber(mass))
}

// WriteCSV writes the log as UTF-8 CSV with a byte-order mark so
// spreadsheet programs pick up the encoding.
func (l *Log) WriteCSV(w io.Writer) error {
	records := l.List()
	bw := transform.NewWriter(w, unicode.UTF8BOM.NewEncoder())
	cw := csv.NewWriter(bw)
	if err := cw.Write(l.headers(csvHeaders)); err != nil {
		return err
	}
	for _, rec := range records {
		in := rec.Inputs
		row := []string{
			rec.Timestamp,
			FormatNumber(in.LoadingPercent),
			FormatNumber(in.SupportMass),
			Descriptor(in.Active, in.ActiveMolarMass),
			Descriptor(in.Precursor, in.PrecursorMolarMass),
			rec.Results.Display().PrecursorMass,
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return err
	}
	return bw.Close()
}

// Export writes the CSV to path, replacing any existing file atomically.
func (l *Log) Export(path string) error {
	var buf bytes.Buffer
	if err := l.WriteCSV(&buf); err != nil {
		return err
	}
	if err := repo.WriteFileAtomic(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("export history: %w", err)
	}
	return nil
}

// WriteXLSX writes the detailed ten-column table as a workbook.
func (l *Log) WriteXLSX(w io.Writer) error {
	records := l.List()
	f := excelize.NewFile()
	defer f.Close()

	sheet := "History"
	if err := f.SetSheetName(f.GetSheetName(0), sheet); err != nil {
		return err
	}
	header := l.headers(xlsxHeaders)
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return err
	}
	for i, rec := range records {
		in, res := rec.Inputs, rec.Results.Rounded()
		row := []any{
			rec.Timestamp,
			in.LoadingPercent,
			in.SupportMass,
			in.ActiveMolarMass,
			in.PrecursorMolarMass,
			res.MassFraction,
			res.ActiveComponentMass,
			res.TotalFinishedMass,
			res.TotalAfterMass,
			res.PrecursorMass,
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return err
		}
	}
	return f.Write(w)
}

func (l *Log) ExportXLSX(path string) error {
	var buf bytes.Buffer
	if err := l.WriteXLSX(&buf); err != nil {
		return err
	}
	if err := repo.WriteFileAtomic(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("export history: %w", err)
	}
	return nil
}
