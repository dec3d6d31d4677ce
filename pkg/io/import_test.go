package io

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/xuri/excelize/v2"

	"github.com/pyrolayout/boardplan/pkg/errors"
	"github.com/pyrolayout/boardplan/pkg/plan"
)

// buildXLSX returns an in-memory workbook whose first sheet holds rows.
func buildXLSX(t *testing.T, rows [][]any) []byte {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			t.Fatal(err)
		}
		if err := f.SetSheetRow("Sheet1", cell, &row); err != nil {
			t.Fatalf("SetSheetRow: %v", err)
		}
	}
	buf, err := f.WriteToBuffer()
	if err != nil {
		t.Fatalf("WriteToBuffer: %v", err)
	}
	return buf.Bytes()
}

func TestReadCSV(t *testing.T) {
	input := "QTY,note,PIN,CAL\n5,opener,1,101\n,,,\n3,,2,76\n0,,3,63\n"

	got, err := Read(strings.NewReader(input), "show.csv", FormatCSV)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	want := []plan.Position{
		{ID: 1, Caliber: plan.Caliber4in, Quantity: 5},
		{ID: 2, Caliber: plan.Caliber3in, Quantity: 3},
		{ID: 3, Caliber: plan.Caliber25in, Quantity: 0},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Read mismatch (-want +got):\n%s", diff)
	}
}

func TestReadXLSX(t *testing.T) {
	data := buildXLSX(t, [][]any{
		{"PIN", "CAL", "QTY"},
		{1, 101, 5},
		{nil, nil, nil},
		{51, 76, 2.0},
	})

	got, err := Read(bytes.NewReader(data), "show.xlsx", FormatXLSX)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	want := []plan.Position{
		{ID: 1, Caliber: plan.Caliber4in, Quantity: 5},
		{ID: 51, Caliber: plan.Caliber3in, Quantity: 2},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Read mismatch (-want +got):\n%s", diff)
	}
}

func TestReadMissingColumn(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		missing []string
	}{
		{"no QTY", "PIN,CAL\n1,101\n", []string{"QTY"}},
		{"only PIN", "PIN\n1\n", []string{"CAL", "QTY"}},
		{"empty file", "", []string{"PIN", "CAL", "QTY"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Read(strings.NewReader(tt.input), "cues.csv", FormatCSV)
			if !errors.Is(err, errors.ErrCodeMissingColumn) {
				t.Fatalf("Read() error = %v, want MISSING_COLUMN", err)
			}
			msg := errors.UserMessage(err)
			if !strings.Contains(msg, "cues.csv") {
				t.Errorf("message %q does not name the source", msg)
			}
			for _, col := range tt.missing {
				if !strings.Contains(msg, col) {
					t.Errorf("message %q does not name column %s", msg, col)
				}
			}
		})
	}
}

func TestReadMissingColumnXLSX(t *testing.T) {
	data := buildXLSX(t, [][]any{
		{"PIN", "CAL"},
		{1, 101},
	})
	_, err := Read(bytes.NewReader(data), "show.xlsx", FormatXLSX)
	if !errors.Is(err, errors.ErrCodeMissingColumn) {
		t.Fatalf("Read() error = %v, want MISSING_COLUMN", err)
	}
}

func TestReadInvalidRows(t *testing.T) {
	tests := []struct {
		name  string
		input string
		row   string
	}{
		{"text quantity", "PIN,CAL,QTY\n1,101,five\n", "row 2"},
		{"fractional pin", "PIN,CAL,QTY\n1,101,1\n1.5,101,1\n", "row 3"},
		{"zero pin", "PIN,CAL,QTY\n0,101,1\n", "row 2"},
		{"negative quantity", "PIN,CAL,QTY\n1,101,-1\n", "row 2"},
		{"unknown caliber", "PIN,CAL,QTY\n1,99,1\n", "row 2"},
		{"partial row", "PIN,CAL,QTY\n1,,1\n", "row 2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Read(strings.NewReader(tt.input), "cues.csv", FormatCSV)
			if !errors.Is(err, errors.ErrCodeInvalidInput) {
				t.Fatalf("Read() error = %v, want INVALID_INPUT", err)
			}
			if !strings.Contains(err.Error(), tt.row) {
				t.Errorf("error %q does not name %s", err, tt.row)
			}
		})
	}
}

func TestReadUnknownFormat(t *testing.T) {
	_, err := Read(strings.NewReader(""), "x", Format("ods"))
	if !errors.Is(err, errors.ErrCodeInvalidFormat) {
		t.Errorf("Read() error = %v, want INVALID_FORMAT", err)
	}
}

func TestFormatFromName(t *testing.T) {
	tests := []struct {
		name    string
		want    Format
		wantErr bool
	}{
		{"show.xlsx", FormatXLSX, false},
		{"SHOW.XLSX", FormatXLSX, false},
		{"cues.csv", FormatCSV, false},
		{"cues.txt", "", true},
		{"noext", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FormatFromName(tt.name)
			if (err != nil) != tt.wantErr {
				t.Fatalf("FormatFromName(%q) error = %v, wantErr %v", tt.name, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("FormatFromName(%q) = %q, want %q", tt.name, got, tt.want)
			}
		})
	}
}

func TestImportFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "show.csv")
	if err := os.WriteFile(path, []byte("PIN,CAL,QTY\n7,76,2\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	got, err := ImportFile(path)
	if err != nil {
		t.Fatalf("ImportFile: %v", err)
	}
	want := []plan.Position{{ID: 7, Caliber: plan.Caliber3in, Quantity: 2}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ImportFile mismatch (-want +got):\n%s", diff)
	}
}

func TestImportFileNotFound(t *testing.T) {
	_, err := ImportFile(filepath.Join(t.TempDir(), "missing.xlsx"))
	if !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("ImportFile() error = %v, want FILE_NOT_FOUND", err)
	}
}
