package layout

import "testing"

func TestGridSetKeepsBorder(t *testing.T) {
	g := NewGrid("s", DefaultColWidth)
	g.SetBorder(2, 3, Border{Top: EdgeThin})
	g.Set(2, 3, 7)

	c, ok := g.Get(2, 3)
	if !ok {
		t.Fatal("cell missing")
	}
	if c.Value != 7 || c.Border.Top != EdgeThin {
		t.Errorf("cell = %+v", c)
	}
}

func TestGridCellsOrdered(t *testing.T) {
	g := NewGrid("s", DefaultColWidth)
	g.Set(3, 1, "c")
	g.Set(1, 2, "b")
	g.Set(1, 1, "a")

	cells := g.Cells()
	var got string
	for _, c := range cells {
		got += c.Value.(string)
	}
	if got != "abc" {
		t.Errorf("order = %q, want abc", got)
	}

	rows, cols := g.Bounds()
	if rows != 3 || cols != 2 {
		t.Errorf("Bounds() = %d,%d, want 3,2", rows, cols)
	}
}

func TestBorderIsZero(t *testing.T) {
	if !(Border{}).IsZero() {
		t.Error("empty border should be zero")
	}
	if (Border{Left: EdgeThick}).IsZero() {
		t.Error("border with an edge should not be zero")
	}
}
