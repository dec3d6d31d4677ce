// Package io reads firing-position records from spreadsheets.
//
// # Overview
//
// Input is a table with a header row naming the columns PIN (position id),
// CAL (caliber code) and QTY (number of guns). The columns may appear in
// any order and other columns are ignored:
//
//	PIN,CAL,QTY,cue
//	1,101,5,opening
//	2,76,3,
//
// Two formats are supported:
//
//   - xlsx: the first worksheet of the workbook
//   - csv: comma-separated text
//
// # Import
//
// Use [ImportFile] to read a file by path (the format follows the
// extension), or [Read] to read from any io.Reader:
//
//	positions, err := io.ImportFile("show.xlsx")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// # Errors
//
// A header without one of the three columns fails with MISSING_COLUMN and
// names every absent column. Rows whose three cells are all empty are
// skipped. Any other row must hold integers with PIN >= 1, QTY >= 0 and a
// known caliber code, else the read fails with INVALID_INPUT naming the
// source row. Records are returned in input order.
package io
