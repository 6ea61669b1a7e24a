package state

// Grid tracks the cursor and scroll offset of a card grid laid out in rows
// of Columns cards. Offset is measured in rows.
type Grid struct {
	Cursor  int
	Offset  int
	Columns int
	Count   int
}

// NewGrid constructs a grid with at least one column.
func NewGrid(columns int) *Grid {
	g := &Grid{}
	g.SetColumns(columns)
	return g
}

// SetColumns changes the column count and keeps the cursor in range.
func (g *Grid) SetColumns(columns int) {
	if columns < 1 {
		columns = 1
	}
	g.Columns = columns
	g.clamp()
}

// SetCount updates the number of cards. The cursor and offset stay put when
// still valid.
func (g *Grid) SetCount(count int) {
	if count < 0 {
		count = 0
	}
	g.Count = count
	g.clamp()
}

// Reset moves the cursor and offset back to the first card.
func (g *Grid) Reset() {
	g.Cursor = 0
	g.Offset = 0
}

// Rows returns the number of rows needed for Count cards.
func (g *Grid) Rows() int {
	if g.Count == 0 {
		return 0
	}
	return (g.Count + g.cols() - 1) / g.cols()
}

// CursorRow returns the row the cursor is on.
func (g *Grid) CursorRow() int {
	return g.Cursor / g.cols()
}

// Move shifts the cursor by dx columns and dy rows. Horizontal moves wrap
// across rows; vertical moves stop at the last card.
func (g *Grid) Move(dx, dy int) bool {
	if g.Count == 0 {
		return false
	}
	old := g.Cursor
	next := g.Cursor + dx + dy*g.cols()
	if dy > 0 && next >= g.Count {
		lastRow := (g.Count - 1) / g.cols()
		if g.CursorRow() < lastRow {
			next = g.Count - 1
		} else {
			next = g.Cursor
		}
	}
	if dy < 0 && next < 0 {
		next = g.Cursor % g.cols()
	}
	g.Cursor = clampInt(next, 0, g.Count-1)
	return g.Cursor != old
}

// MoveHome moves the cursor to the first card.
func (g *Grid) MoveHome() bool {
	old := g.Cursor
	g.Cursor = 0
	return old != g.Cursor
}

// MoveEnd moves the cursor to the last card.
func (g *Grid) MoveEnd() bool {
	if g.Count == 0 {
		return false
	}
	old := g.Cursor
	g.Cursor = g.Count - 1
	return old != g.Cursor
}

// PageDown moves the cursor and offset down by a page of rows.
func (g *Grid) PageDown(visibleRows int) bool {
	rows := max(visibleRows, 1)
	moved := g.Move(0, rows)
	g.ScrollBy(rows, visibleRows)
	return moved
}

// PageUp moves the cursor and offset up by a page of rows.
func (g *Grid) PageUp(visibleRows int) bool {
	rows := max(visibleRows, 1)
	moved := g.Move(0, -rows)
	g.ScrollBy(-rows, visibleRows)
	return moved
}

// ScrollBy shifts the offset by delta rows without moving the cursor out of
// view; the cursor follows when it would scroll off screen.
func (g *Grid) ScrollBy(delta, visibleRows int) bool {
	old := g.Offset
	g.Offset = clampInt(g.Offset+delta, 0, g.maxOffset(visibleRows))
	if visibleRows > 0 && g.Count > 0 {
		row := g.CursorRow()
		col := g.Cursor % g.cols()
		switch {
		case row < g.Offset:
			g.Cursor = clampInt(g.Offset*g.cols()+col, 0, g.Count-1)
		case row > g.Offset+visibleRows-1:
			g.Cursor = clampInt((g.Offset+visibleRows-1)*g.cols()+col, 0, g.Count-1)
		}
	}
	return g.Offset != old
}

// EnsureCursorVisible adjusts the offset so the cursor row is on screen.
func (g *Grid) EnsureCursorVisible(visibleRows int) {
	g.clamp()
	if visibleRows <= 0 {
		g.Offset = 0
		return
	}
	row := g.CursorRow()
	if row < g.Offset {
		g.Offset = row
	}
	if row > g.Offset+visibleRows-1 {
		g.Offset = row - visibleRows + 1
	}
	g.Offset = clampInt(g.Offset, 0, g.maxOffset(visibleRows))
}

// VisibleRange returns the half-open card index range on screen.
func (g *Grid) VisibleRange(visibleRows int) (int, int) {
	start := g.Offset * g.cols()
	end := g.Count
	if visibleRows > 0 {
		end = min(start+visibleRows*g.cols(), g.Count)
	}
	if start > end {
		start = end
	}
	return start, end
}

// RowRange returns the half-open card index range covering rows [from, to).
func (g *Grid) RowRange(from, to int) (int, int) {
	from = max(from, 0)
	to = max(to, from)
	return min(from*g.cols(), g.Count), min(to*g.cols(), g.Count)
}

func (g *Grid) maxOffset(visibleRows int) int {
	if visibleRows <= 0 {
		return 0
	}
	return max(g.Rows()-visibleRows, 0)
}

func (g *Grid) cols() int {
	if g.Columns < 1 {
		return 1
	}
	return g.Columns
}

func (g *Grid) clamp() {
	if g.Count == 0 {
		g.Cursor = 0
		g.Offset = 0
		return
	}
	g.Cursor = clampInt(g.Cursor, 0, g.Count-1)
	g.Offset = clampInt(g.Offset, 0, max(g.Rows()-1, 0))
}

func clampInt(v, lo, hi int) int {
	if hi < lo {
		return lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
