// Package tetris is the simulation engine for the falling-block game: piece
// geometry, collision, the piece-lifecycle state machine, line clearing and
// score progression. A Game is driven only by SubmitAction and
// AdvanceAndSnapshot and reports itself through value Snapshots.
package tetris

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/brick-game/internal/core"
	"github.com/vovakirdan/brick-game/internal/registry"
)

// GameID is the registry identifier of the engine.
const GameID = "tetris"

// Game is one play session. It is not safe for concurrent use; the driver
// feeds it one call at a time.
type Game struct {
	rng      Randomizer
	observer Observer

	state     State
	board     Board
	current   Piece
	next      Piece
	nextReady bool

	score     int
	highScore int
	level     int
	speed     int
	lines     int

	paused   bool
	gameOver bool

	timer int    // frames since the last gravity step
	tick  uint64 // AdvanceAndSnapshot calls

	screenW int
	screenH int
}

// Option configures a Game at construction.
type Option func(*Game)

// WithSeed seeds the piece randomizer. Zero selects a time-based seed.
func WithSeed(seed int64) Option {
	return func(g *Game) {
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		g.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRandom replaces the piece randomizer.
func WithRandom(r Randomizer) Option {
	return func(g *Game) {
		g.rng = r
	}
}

// WithHighScore sets the best score carried over from earlier sessions.
func WithHighScore(score int) Option {
	return func(g *Game) {
		g.SetHighScore(score)
	}
}

// WithObserver registers a callback for engine events.
func WithObserver(fn Observer) Option {
	return func(g *Game) {
		g.observer = fn
	}
}

// New creates a session in the Start state.
func New(opts ...Option) *Game {
	g := &Game{
		state:   StateStart,
		level:   1,
		speed:   SpeedForLevel(1),
		screenW: 80,
		screenH: 24,
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.rng == nil {
		WithSeed(0)(g)
	}
	return g
}

func init() {
	registry.Register(GameID, func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return GameID
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Tetris"
}

// Reset returns the session to the Start state, reseeding the randomizer when
// cfg carries a seed. The high score survives.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	if cfg.Seed != 0 {
		g.rng = rand.New(rand.NewSource(cfg.Seed))
	}
	if cfg.ScreenW > 0 && cfg.ScreenH > 0 {
		g.screenW = cfg.ScreenW
		g.screenH = cfg.ScreenH
	}

	g.state = StateStart
	g.board.Reset()
	g.nextReady = false
	g.score = 0
	g.level = 1
	g.speed = SpeedForLevel(1)
	g.lines = 0
	g.paused = false
	g.gameOver = false
	g.timer = 0
	g.tick = 0
}

// SubmitAction feeds one discrete action. held only matters for Down, where
// it selects a hard drop. Unknown actions are ignored.
func (g *Game) SubmitAction(a core.Action, held bool) {
	g.settle()
	if !a.Valid() {
		return
	}
	g.dispatch(a, held)
}

// AdvanceAndSnapshot runs one driver tick: pending transient states resolve,
// the gravity timer advances, and the resulting view is returned.
func (g *Game) AdvanceAndSnapshot() Snapshot {
	g.tick++
	g.settle()
	g.advance()
	return g.Snapshot()
}

// Step implements registry.Game: the frame's action, if any, is submitted
// and the session advances one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if !in.Empty() {
		g.SubmitAction(in.Action, in.Held)
	}
	g.AdvanceAndSnapshot()
	return core.StepResult{State: g.State()}
}

// Render draws the current snapshot into dst.
func (g *Game) Render(dst *core.Screen) {
	g.Snapshot().Draw(dst)
}

// State returns the platform-level summary.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:     g.score,
		HighScore: g.highScore,
		GameOver:  g.gameOver,
		Paused:    g.paused,
	}
}

// Phase returns the current state machine node.
func (g *Game) Phase() State {
	return g.state
}

// HighScore returns the best score seen so far.
func (g *Game) HighScore() int {
	return g.highScore
}

// SetHighScore raises the high score to score. It never lowers it.
func (g *Game) SetHighScore(score int) {
	if score > g.highScore {
		g.highScore = score
	}
}

// advance increments the gravity timer while a piece is in flight.
// Pausing freezes the timer without resetting it.
func (g *Game) advance() {
	if g.paused || g.state != StateMoving {
		return
	}
	g.timer++
	if g.timer >= g.speed {
		g.timer = 0
		g.setState(StateShifting)
	}
}

// settle runs transient states until the machine waits for input or time.
func (g *Game) settle() {
	for g.state.transient() {
		g.dispatch(core.ActionNone, false)
	}
}

func (g *Game) setState(to State) {
	from := g.state
	g.state = to
	if to == StateGameOver {
		g.gameOver = true
	}
	g.emit(StateChanged{From: from, To: to})
	if to == StateGameOver && from != StateGameOver {
		g.emit(GameEnded{
			Score:     g.score,
			HighScore: g.highScore,
			Lines:     g.lines,
			Level:     g.level,
		})
	}
}

func (g *Game) emit(e Event) {
	if g.observer != nil {
		g.observer(e)
	}
}

func (g *Game) drawNext() {
	g.next = Spawn(RandomKind(g.rng))
	g.nextReady = true
}
