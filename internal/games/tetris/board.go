package tetris

// Board dimensions. The board keeps SpawnMargin invisible rows above the
// VisibleHeight playfield rows; row 0 is the top of the margin.
const (
	BoardWidth    = 10
	VisibleHeight = 20
	SpawnMargin   = 4
	TotalHeight   = VisibleHeight + SpawnMargin
)

// Board is the grid of locked cells. A cell is 1 when occupied and 0 when
// empty; which piece filled it is not recorded. Coordinates outside
// [0,BoardWidth) x [0,TotalHeight) are treated as walls by IsValid.
type Board struct {
	cells [TotalHeight][BoardWidth]uint8
}

// occupied reports whether the cell at (x, y) is filled.
// Out-of-range coordinates report false.
func (b *Board) occupied(x, y int) bool {
	if !inBounds(x, y) {
		return false
	}
	return b.cells[y][x] != 0
}

// Row returns a copy of row y.
func (b *Board) Row(y int) [BoardWidth]uint8 {
	return b.cells[y]
}

// Reset empties every cell.
func (b *Board) Reset() {
	b.cells = [TotalHeight][BoardWidth]uint8{}
}

func inBounds(x, y int) bool {
	return x >= 0 && x < BoardWidth && y >= 0 && y < TotalHeight
}

// IsValid reports whether p can occupy its position. Every occupied mask cell
// must lie within the side walls and above the floor. Cells above row 0 are
// allowed and never collide; cells at row 0 or below must land on empty
// board cells.
func (b *Board) IsValid(p Piece) bool {
	valid := true
	p.eachCell(func(x, y int) bool {
		if x < 0 || x >= BoardWidth || y >= TotalHeight {
			valid = false
			return false
		}
		if y >= 0 && b.cells[y][x] != 0 {
			valid = false
			return false
		}
		return true
	})
	return valid
}

// Lock writes p's occupied cells into the board. Cells outside the board are
// skipped; callers are expected to have checked IsValid first.
func (b *Board) Lock(p Piece) {
	p.eachCell(func(x, y int) bool {
		if inBounds(x, y) {
			b.cells[y][x] = 1
		}
		return true
	})
}

// ClearCompletedRows removes every full row and returns how many were
// removed. Rows are scanned bottom-up over the visible playfield; a removed
// row lets everything above it drop by one and empties row 0. After a
// removal the same index is examined again, because a new row has just
// shifted into it. Complete rows need not be adjacent.
func (b *Board) ClearCompletedRows() int {
	cleared := 0
	for y := TotalHeight - 1; y >= SpawnMargin; {
		if !b.rowComplete(y) {
			y--
			continue
		}
		b.removeRow(y)
		cleared++
		// y is not decremented: re-examine the row that moved down into it.
	}
	return cleared
}

func (b *Board) rowComplete(y int) bool {
	for x := 0; x < BoardWidth; x++ {
		if b.cells[y][x] == 0 {
			return false
		}
	}
	return true
}

// removeRow shifts rows 0..y-1 down by one and clears row 0.
func (b *Board) removeRow(y int) {
	for row := y; row > 0; row-- {
		b.cells[row] = b.cells[row-1]
	}
	b.cells[0] = [BoardWidth]uint8{}
}

// IsOverflowed reports whether any cell of the spawn margin is occupied.
func (b *Board) IsOverflowed() bool {
	for y := 0; y < SpawnMargin; y++ {
		for x := 0; x < BoardWidth; x++ {
			if b.cells[y][x] != 0 {
				return true
			}
		}
	}
	return false
}
