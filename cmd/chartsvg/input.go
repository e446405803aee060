package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"unicode"

	"github.com/xuri/excelize/v2"
)

var errNoValues = errors.New("no values given")

// parseValues parses numbers separated by commas, semicolons or white space.
func parseValues(s string) ([]float64, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ';' || unicode.IsSpace(r)
	})
	out := make([]float64, 0, len(fields))
	for _, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid value %q: %w", f, err)
		}
		out = append(out, v)
	}
	return out, nil
}

// readText reads values from r. Lines starting with '#' are comments.
func readText(r io.Reader) ([]float64, error) {
	var out []float64
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		vs, err := parseValues(text)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		out = append(out, vs...)
	}
	return out, sc.Err()
}

// readWorkbook reads the numeric cells of one column of an Excel workbook.
// Empty cells are skipped; a non-numeric first cell is treated as a header.
func readWorkbook(path, sheet, column string) ([]float64, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	if sheet == "" {
		sheet = f.GetSheetName(0)
	}
	col, err := excelize.ColumnNameToNumber(column)
	if err != nil {
		return nil, err
	}
	cols, err := f.GetCols(sheet)
	if err != nil {
		return nil, fmt.Errorf("sheet %q: %w", sheet, err)
	}
	if col > len(cols) {
		return nil, nil
	}

	var out []float64
	seen := false
	for row, cell := range cols[col-1] {
		cell = strings.TrimSpace(cell)
		if cell == "" {
			continue
		}
		v, err := strconv.ParseFloat(cell, 64)
		if err != nil {
			if !seen {
				seen = true
				continue
			}
			name, _ := excelize.CoordinatesToCellName(col, row+1)
			return nil, fmt.Errorf("cell %s: invalid value %q", name, cell)
		}
		seen = true
		out = append(out, v)
	}
	return out, nil
}

// loadSeries returns the values named by the input settings, or parsed from
// args if no input file is set.
func loadSeries(input, sheet, column string, args []string) ([]float64, error) {
	var (
		values []float64
		err    error
	)
	switch {
	case input == "":
		values, err = parseValues(strings.Join(args, " "))
	case strings.EqualFold(filepath.Ext(input), ".xlsx"):
		values, err = readWorkbook(input, sheet, column)
	default:
		var f *os.File
		f, err = os.Open(input)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		values, err = readText(f)
	}
	if err != nil {
		return nil, err
	}
	if len(values) == 0 {
		return nil, errNoValues
	}
	return values, nil
}
