package tetris

import (
	"fmt"

	"github.com/vovakirdan/brick-game/internal/core"
)

// Layout of the rendered frame. Each board cell is two columns wide so the
// field looks square in a terminal.
const (
	cellW      = 2
	fieldW     = BoardWidth*cellW + 2
	fieldH     = VisibleHeight + 2
	panelGap   = 2
	panelW     = PieceSize*cellW + 8
	MinScreenW = fieldW + panelGap + panelW
	MinScreenH = fieldH
)

// Draw renders the snapshot into dst. dst is cleared first.
func (s Snapshot) Draw(dst *core.Screen) {
	dst.Clear()

	if dst.Width() < MinScreenW || dst.Height() < MinScreenH {
		dst.TextCentered(dst.Height()/2, "Window too small", core.ColorOverlay)
		return
	}

	ox := (dst.Width() - MinScreenW) / 2
	oy := (dst.Height() - MinScreenH) / 2

	field := core.NewRect(ox, oy, fieldW, fieldH)
	dst.Box(field, core.ColorBorder)
	s.drawField(dst, field.Inset(1))

	panel := core.NewRect(field.Right()+panelGap, oy, panelW, PieceSize+2)
	dst.Box(panel, core.ColorBorder)
	dst.Text(panel.X+2, panel.Y, " NEXT ", core.ColorHUD)
	s.drawNext(dst, panel.Inset(1))

	y := panel.Bottom() + 1
	for _, stat := range s.stats() {
		dst.Text(panel.X, y, stat.label, core.ColorHUD)
		dst.Text(panel.X, y+1, stat.value, core.ColorHUDValue)
		y += 3
	}

	s.drawOverlay(dst, field)
}

func (s Snapshot) drawField(dst *core.Screen, area core.Rect) {
	for y := 0; y < VisibleHeight; y++ {
		for x := 0; x < BoardWidth; x++ {
			px := area.X + x*cellW
			py := area.Y + y
			if s.Field[y][x] != 0 {
				dst.Put(px, py, '█', core.ColorBlock)
				dst.Put(px+1, py, '█', core.ColorBlock)
			} else {
				dst.Put(px, py, ' ', core.ColorDim)
				dst.Put(px+1, py, '.', core.ColorDim)
			}
		}
	}
}

func (s Snapshot) drawNext(dst *core.Screen, area core.Rect) {
	left := area.X + (area.W-PieceSize*cellW)/2
	for row := 0; row < PieceSize; row++ {
		for col := 0; col < PieceSize; col++ {
			if s.Next[row][col] == 0 {
				continue
			}
			px := left + col*cellW
			dst.Put(px, area.Y+row, '█', core.ColorPreview)
			dst.Put(px+1, area.Y+row, '█', core.ColorPreview)
		}
	}
}

type stat struct {
	label string
	value string
}

func (s Snapshot) stats() []stat {
	return []stat{
		{"SCORE", fmt.Sprintf("%d", s.Score)},
		{"HIGH", fmt.Sprintf("%d", s.HighScore)},
		{"LEVEL", fmt.Sprintf("%d", s.Level)},
		{"LINES", fmt.Sprintf("%d", s.Lines)},
	}
}

// drawOverlay writes a two-line message across the middle of the field.
func (s Snapshot) drawOverlay(dst *core.Screen, field core.Rect) {
	var title, hint string
	switch {
	case s.State == StateStart:
		title, hint = "TETRIS", "Enter to start"
	case s.State == StateGameOver:
		title, hint = "GAME OVER", "Enter: again"
	case s.Pause != 0:
		title, hint = "PAUSED", "P to resume"
	default:
		return
	}

	mid := field.Y + field.H/2
	band := core.NewRect(field.X+1, mid-1, field.W-2, 4)
	dst.Fill(band, ' ', core.ColorOverlay)
	centre := func(y int, text string) {
		x := field.X + (field.W-len([]rune(text)))/2
		dst.Text(x, y, text, core.ColorOverlay)
	}
	centre(mid, title)
	centre(mid+1, hint)
}
