package io

import (
	"math"
	"strconv"
	"strings"

	"github.com/pyrolayout/boardplan/pkg/errors"
	"github.com/pyrolayout/boardplan/pkg/plan"
)

// Column names of the input header row.
const (
	ColumnPIN = "PIN"
	ColumnCAL = "CAL"
	ColumnQTY = "QTY"
)

var requiredColumns = []string{ColumnPIN, ColumnCAL, ColumnQTY}

type columns struct {
	pin, cal, qty int
}

// findColumns maps the required columns to their index in the header row.
func findColumns(name string, header []string) (columns, error) {
	index := make(map[string]int, len(header))
	for i, h := range header {
		key := strings.ToUpper(strings.TrimSpace(h))
		if _, dup := index[key]; !dup {
			index[key] = i
		}
	}

	var missing []string
	for _, c := range requiredColumns {
		if _, ok := index[c]; !ok {
			missing = append(missing, c)
		}
	}
	if len(missing) > 0 {
		return columns{}, errors.New(errors.ErrCodeMissingColumn,
			"%s: missing column %s", name, strings.Join(missing, ", "))
	}
	return columns{pin: index[ColumnPIN], cal: index[ColumnCAL], qty: index[ColumnQTY]}, nil
}

func parseRows(name string, rows [][]string) ([]plan.Position, error) {
	var header []string
	if len(rows) > 0 {
		header = rows[0]
	}
	cols, err := findColumns(name, header)
	if err != nil {
		return nil, err
	}

	positions := make([]plan.Position, 0, len(rows))
	for i, row := range rows[1:] {
		line := i + 2
		pin, cal, qty := cell(row, cols.pin), cell(row, cols.cal), cell(row, cols.qty)
		if pin == "" && cal == "" && qty == "" {
			continue
		}
		p, err := parseRecord(pin, cal, qty)
		if err != nil {
			return nil, errors.New(errors.ErrCodeInvalidInput, "%s row %d: %s", name, line, errors.UserMessage(err))
		}
		positions = append(positions, p)
	}
	return positions, nil
}

func parseRecord(pin, cal, qty string) (plan.Position, error) {
	id, err := parseInt(ColumnPIN, pin)
	if err != nil {
		return plan.Position{}, err
	}
	if err := errors.ValidatePositionID(id); err != nil {
		return plan.Position{}, err
	}
	code, err := parseInt(ColumnCAL, cal)
	if err != nil {
		return plan.Position{}, err
	}
	c, err := plan.ParseCaliber(code)
	if err != nil {
		return plan.Position{}, err
	}
	n, err := parseInt(ColumnQTY, qty)
	if err != nil {
		return plan.Position{}, err
	}
	if err := errors.ValidateQuantity(n); err != nil {
		return plan.Position{}, err
	}
	return plan.Position{ID: id, Caliber: c, Quantity: n}, nil
}

func cell(row []string, i int) string {
	if i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

// parseInt accepts integers and integral decimals such as "5.0", which
// spreadsheet tools produce for numeric cells.
func parseInt(column, s string) (int, error) {
	if s == "" {
		return 0, errors.New(errors.ErrCodeInvalidInput, "%s is empty", column)
	}
	if n, err := strconv.Atoi(s); err == nil {
		return n, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || f != math.Trunc(f) || math.IsInf(f, 0) {
		return 0, errors.New(errors.ErrCodeInvalidInput, "%s %q is not an integer", column, s)
	}
	return int(f), nil
}
