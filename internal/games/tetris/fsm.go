package tetris

import (
	"fmt"

	"github.com/vovakirdan/brick-game/internal/core"
)

// dispatch is the single transition table of the machine. Transient states
// ignore the action; they are entered by one call and resolved by the next.
func (g *Game) dispatch(a core.Action, held bool) {
	switch g.state {
	case StateStart:
		g.handleStart(a)
	case StateSpawn:
		g.handleSpawn()
	case StateMoving:
		g.handleMoving(a, held)
	case StateShifting:
		g.handleShifting()
	case StateAttaching:
		g.handleAttaching()
	case StateGameOver:
		g.handleGameOver(a)
	case StatePaused:
		g.handlePaused(a)
	default:
		panic(fmt.Sprintf("tetris: unhandled state %d", int(g.state)))
	}
}

func (g *Game) handleStart(a core.Action) {
	switch a {
	case core.ActionStart:
		g.board.Reset()
		g.score = 0
		g.level = 1
		g.speed = SpeedForLevel(1)
		g.lines = 0
		g.timer = 0
		g.paused = false
		g.gameOver = false
		g.drawNext()
		g.setState(StateSpawn)
	case core.ActionTerminate:
		// Flag only: the driver is expected to shut down.
		g.gameOver = true
	}
}

func (g *Game) handleSpawn() {
	g.current = g.next
	g.drawNext()
	g.emit(PieceSpawned{Kind: g.current.Kind, Next: g.next.Kind})

	if !g.board.IsValid(g.current) {
		g.setState(StateGameOver)
		return
	}
	g.timer = 0
	g.setState(StateMoving)
}

func (g *Game) handleMoving(a core.Action, held bool) {
	switch a {
	case core.ActionLeft:
		g.try(g.current.Moved(-1, 0))
	case core.ActionRight:
		g.try(g.current.Moved(1, 0))
	case core.ActionDown:
		if held {
			g.current = g.dropPosition()
			g.setState(StateAttaching)
			return
		}
		if !g.try(g.current.Moved(0, 1)) {
			g.setState(StateAttaching)
		}
	case core.ActionRotate:
		g.try(g.current.Rotated())
	case core.ActionPause:
		g.paused = true
		g.setState(StatePaused)
	case core.ActionTerminate:
		g.setState(StateGameOver)
	}
}

func (g *Game) handleShifting() {
	if g.try(g.current.Moved(0, 1)) {
		g.setState(StateMoving)
		return
	}
	g.setState(StateAttaching)
}

func (g *Game) handleAttaching() {
	g.board.Lock(g.current)
	g.emit(PieceLocked{Kind: g.current.Kind, X: g.current.X, Y: g.current.Y})

	if rows := g.board.ClearCompletedRows(); rows > 0 {
		g.applyClear(rows)
	}

	if g.board.IsOverflowed() {
		g.setState(StateGameOver)
		return
	}
	g.setState(StateSpawn)
}

func (g *Game) handleGameOver(a core.Action) {
	if a == core.ActionStart {
		g.setState(StateStart)
	}
}

func (g *Game) handlePaused(a core.Action) {
	switch a {
	case core.ActionPause, core.ActionStart:
		g.paused = false
		g.setState(StateMoving)
	case core.ActionTerminate:
		g.paused = false
		g.setState(StateGameOver)
	}
}

// try commits p as the current piece when it is valid.
func (g *Game) try(p Piece) bool {
	if !g.board.IsValid(p) {
		return false
	}
	g.current = p
	return true
}

// dropPosition returns the lowest valid position straight below the
// current piece.
func (g *Game) dropPosition() Piece {
	p := g.current
	for {
		below := p.Moved(0, 1)
		if !g.board.IsValid(below) {
			return p
		}
		p = below
	}
}

func (g *Game) applyClear(rows int) {
	points := Points(rows)
	g.score += points
	g.lines += rows
	g.SetHighScore(g.score)
	g.emit(LinesCleared{Count: rows, Points: points, Score: g.score})

	if level := LevelForScore(g.score); level != g.level {
		g.level = level
		g.speed = SpeedForLevel(level)
		g.emit(LevelChanged{Level: g.level, Speed: g.speed})
	}
}
