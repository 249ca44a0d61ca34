package tetris

// Snapshot is a read-only view of the session for one frame. It holds only
// arrays and scalars, so a copy shares nothing with the engine.
type Snapshot struct {
	// Field is the visible playfield; the spawn margin is not included.
	// The active piece is overlaid while it is moving or shifting.
	Field [VisibleHeight][BoardWidth]uint8

	// Next is the preview of the upcoming piece at rotation 0.
	// It stays empty until the first game starts.
	Next     Mask
	NextKind Kind

	Score     int
	HighScore int
	Level     int
	Speed     int
	Pause     int // 1 while paused, 0 otherwise

	State    State
	Lines    int
	Tick     uint64
	GameOver bool
}

// Snapshot builds the current view without advancing time.
func (g *Game) Snapshot() Snapshot {
	s := Snapshot{
		Score:     g.score,
		HighScore: g.highScore,
		Level:     g.level,
		Speed:     g.speed,
		State:     g.state,
		Lines:     g.lines,
		Tick:      g.tick,
		GameOver:  g.gameOver,
	}
	if g.paused {
		s.Pause = 1
	}

	for y := 0; y < VisibleHeight; y++ {
		s.Field[y] = g.board.Row(y + SpawnMargin)
	}

	if g.state.pieceVisible() {
		g.current.eachCell(func(x, y int) bool {
			vy := y - SpawnMargin
			if vy >= 0 && vy < VisibleHeight && x >= 0 && x < BoardWidth {
				s.Field[vy][x] = 1
			}
			return true
		})
	}

	if g.nextReady {
		s.Next = g.next.Mask()
		s.NextKind = g.next.Kind
	}
	return s
}

// Filled counts occupied cells of the visible field.
func (s Snapshot) Filled() int {
	n := 0
	for y := range s.Field {
		for _, c := range s.Field[y] {
			if c != 0 {
				n++
			}
		}
	}
	return n
}
