package elements

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"slices"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
)

// BulkImport adds one compound per "symbol,formula,mass" line. Blank lines
// and lines starting with # are ignored; malformed lines and duplicates are
// skipped. The batch always runs to the end and is persisted once. The
// returned count is the number of compounds added.
func (d *Database) BulkImport(lines []string) (int, error) {
	var rows [][]string
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		rows = append(rows, strings.Split(line, ","))
	}
	return d.importRows(rows)
}

func (d *Database) importRows(rows [][]string) (int, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	added := 0
	for _, fields := range rows {
		if d.importFields(fields) {
			added++
		}
	}
	if added == 0 {
		return 0, nil
	}
	return added, d.persist()
}

// ImportReader runs BulkImport over a text file. Lines of any length are
// read whole and go through the same per-line checks.
func (d *Database) ImportReader(r io.Reader) (int, error) {
	var lines []string
	br := bufio.NewReader(r)
	for {
		line, err := br.ReadString('\n')
		if line != "" {
			if len(lines) == 0 {
				line = strings.TrimPrefix(line, "\ufeff")
			}
			lines = append(lines, line)
		}
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return 0, fmt.Errorf("read import file: %w", err)
		}
	}
	return d.BulkImport(lines)
}

// ImportXLSX imports the first sheet of a workbook whose rows are
// symbol, formula, mass. Rows that do not parse, a header row included, are
// skipped.
func (d *Database) ImportXLSX(r io.Reader) (int, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return 0, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	rows, err := f.GetRows(f.GetSheetName(0))
	if err != nil {
		return 0, fmt.Errorf("read sheet: %w", err)
	}
	rows = slices.DeleteFunc(rows, func(row []string) bool {
		return len(row) > 0 && strings.HasPrefix(strings.TrimSpace(row[0]), "#")
	})
	return d.importRows(rows)
}

func (d *Database) importFields(fields []string) bool {
	symbol, formulaText, mass, ok := parseFields(fields)
	if !ok {
		return false
	}
	added, err := d.add(symbol, formulaText, mass)
	return err == nil && added
}

func parseFields(fields []string) (symbol, formulaText string, mass float64, ok bool) {
	if len(fields) < 3 {
		return "", "", 0, false
	}
	symbol = strings.TrimSpace(fields[0])
	formulaText = strings.TrimSpace(fields[1])
	mass, err := strconv.ParseFloat(strings.TrimSpace(fields[2]), 64)
	if err != nil || math.IsNaN(mass) || math.IsInf(mass, 0) || mass <= 0 {
		return "", "", 0, false
	}
	if symbol == "" || formulaText == "" {
		return "", "", 0, false
	}
	return symbol, formulaText, mass, true
}
