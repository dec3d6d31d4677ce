package sink

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/pyrolayout/boardplan/pkg/layout"
)

// Border style indexes understood by excelize.
const (
	xlsxThin  = 1
	xlsxThick = 5
)

const borderColor = "000000"

// RenderXLSX writes the grids of each workbook as sheets of one xlsx file.
func RenderXLSX(books ...*layout.Workbook) ([]byte, error) {
	if len(books) == 0 {
		return nil, fmt.Errorf("no workbook to render")
	}

	f := excelize.NewFile()
	defer f.Close()

	w := &xlsxWriter{f: f, styles: make(map[layout.Border]int)}
	first := true
	for _, b := range books {
		for _, g := range []*layout.Grid{b.Board, b.Layout} {
			if err := w.addSheet(g, first); err != nil {
				return nil, fmt.Errorf("sheet %q: %w", g.Name, err)
			}
			first = false
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write xlsx: %w", err)
	}
	return buf.Bytes(), nil
}

type xlsxWriter struct {
	f      *excelize.File
	styles map[layout.Border]int
}

func (w *xlsxWriter) addSheet(g *layout.Grid, first bool) error {
	if first {
		if err := w.f.SetSheetName(w.f.GetSheetName(0), g.Name); err != nil {
			return err
		}
	} else if _, err := w.f.NewSheet(g.Name); err != nil {
		return err
	}

	if g.ColWidth > 0 {
		width := g.ColWidth
		base := uint8(g.ColWidth)
		if err := w.f.SetSheetProps(g.Name, &excelize.SheetPropsOptions{
			BaseColWidth:    &base,
			DefaultColWidth: &width,
		}); err != nil {
			return err
		}
	}

	for _, c := range g.Cells() {
		addr, err := excelize.CoordinatesToCellName(c.Col, c.Row)
		if err != nil {
			return err
		}
		if c.Value != nil {
			if err := w.f.SetCellValue(g.Name, addr, c.Value); err != nil {
				return err
			}
		}
		if !c.Border.IsZero() {
			id, err := w.style(c.Border)
			if err != nil {
				return err
			}
			if err := w.f.SetCellStyle(g.Name, addr, addr, id); err != nil {
				return err
			}
		}
	}
	return nil
}

// style returns a style id for b, creating it on first use.
func (w *xlsxWriter) style(b layout.Border) (int, error) {
	if id, ok := w.styles[b]; ok {
		return id, nil
	}
	var edges []excelize.Border
	for _, e := range []struct {
		side string
		edge layout.Edge
	}{
		{"left", b.Left},
		{"top", b.Top},
		{"bottom", b.Bottom},
		{"right", b.Right},
	} {
		if e.edge == layout.EdgeNone {
			continue
		}
		style := xlsxThin
		if e.edge == layout.EdgeThick {
			style = xlsxThick
		}
		edges = append(edges, excelize.Border{Type: e.side, Color: borderColor, Style: style})
	}

	id, err := w.f.NewStyle(&excelize.Style{Border: edges})
	if err != nil {
		return 0, err
	}
	w.styles[b] = id
	return id, nil
}
