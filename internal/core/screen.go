package core

import "strings"

// Cell is one character position: a rune and its color.
type Cell struct {
	Rune  rune
	Color Color
}

var blank = Cell{Rune: ' '}

// Screen is a fixed-size grid of cells that games draw into. The platform
// turns it into terminal output; games never see escape sequences.
// Writes outside the grid are dropped.
type Screen struct {
	w, h int
	buf  []Cell // row-major
}

// NewScreen returns a blank screen of w columns and h rows.
func NewScreen(w, h int) *Screen {
	s := &Screen{}
	s.Resize(w, h)
	return s
}

// Width returns the number of columns.
func (s *Screen) Width() int { return s.w }

// Height returns the number of rows.
func (s *Screen) Height() int { return s.h }

// Resize changes the dimensions. The overlapping top-left area keeps its
// content; everything else is blank.
func (s *Screen) Resize(w, h int) {
	w, h = max(w, 0), max(h, 0)
	if w == s.w && h == s.h && s.buf != nil {
		return
	}

	buf := make([]Cell, w*h)
	for i := range buf {
		buf[i] = blank
	}
	for y := 0; y < min(h, s.h); y++ {
		n := min(w, s.w)
		copy(buf[y*w:y*w+n], s.buf[y*s.w:y*s.w+n])
	}
	s.w, s.h, s.buf = w, h, buf
}

// Clear blanks every cell.
func (s *Screen) Clear() {
	for i := range s.buf {
		s.buf[i] = blank
	}
}

func (s *Screen) index(x, y int) (int, bool) {
	if x < 0 || y < 0 || x >= s.w || y >= s.h {
		return 0, false
	}
	return y*s.w + x, true
}

// Put writes r in color c at (x, y).
func (s *Screen) Put(x, y int, r rune, c Color) {
	if i, ok := s.index(x, y); ok {
		s.buf[i] = Cell{Rune: r, Color: c}
	}
}

// At returns the cell at (x, y), or a blank cell outside the grid.
func (s *Screen) At(x, y int) Cell {
	if i, ok := s.index(x, y); ok {
		return s.buf[i]
	}
	return blank
}

// Text writes text left to right from (x, y) and returns the number of
// runes written, clipped or not.
func (s *Screen) Text(x, y int, text string, c Color) int {
	n := 0
	for _, r := range text {
		s.Put(x+n, y, r, c)
		n++
	}
	return n
}

// TextCentered writes text horizontally centred on row y.
func (s *Screen) TextCentered(y int, text string, c Color) {
	s.Text((s.w-len([]rune(text)))/2, y, text, c)
}

// Box outlines r with single-line box drawing runes.
func (s *Screen) Box(r Rect, c Color) {
	if r.W < 2 || r.H < 2 {
		return
	}
	right, bottom := r.Right()-1, r.Bottom()-1
	for x := r.X + 1; x < right; x++ {
		s.Put(x, r.Y, '─', c)
		s.Put(x, bottom, '─', c)
	}
	for y := r.Y + 1; y < bottom; y++ {
		s.Put(r.X, y, '│', c)
		s.Put(right, y, '│', c)
	}
	s.Put(r.X, r.Y, '┌', c)
	s.Put(right, r.Y, '┐', c)
	s.Put(r.X, bottom, '└', c)
	s.Put(right, bottom, '┘', c)
}

// Fill sets every cell of r to fill.
func (s *Screen) Fill(r Rect, fill rune, c Color) {
	for y := r.Y; y < r.Bottom(); y++ {
		for x := r.X; x < r.Right(); x++ {
			s.Put(x, y, fill, c)
		}
	}
}

// Line returns row y as plain text. Rows outside the grid are empty.
func (s *Screen) Line(y int) string {
	if y < 0 || y >= s.h {
		return ""
	}
	var sb strings.Builder
	for _, c := range s.buf[y*s.w : (y+1)*s.w] {
		sb.WriteRune(c.Rune)
	}
	return sb.String()
}

// String returns the whole screen as plain text, one line per row.
func (s *Screen) String() string {
	lines := make([]string, s.h)
	for y := range lines {
		lines[y] = s.Line(y)
	}
	return strings.Join(lines, "\n")
}
