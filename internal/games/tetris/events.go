package tetris

// Event is a notification emitted by the engine to its observer.
type Event interface {
	tetrisEvent()
}

// StateChanged is emitted on every state transition.
type StateChanged struct {
	From, To State
}

func (StateChanged) tetrisEvent() {}

// PieceSpawned is emitted when the next piece becomes current.
type PieceSpawned struct {
	Kind Kind
	Next Kind
}

func (PieceSpawned) tetrisEvent() {}

// PieceLocked is emitted when a piece is written into the board.
type PieceLocked struct {
	Kind Kind
	X, Y int
}

func (PieceLocked) tetrisEvent() {}

// LinesCleared is emitted after a lock that completed at least one row.
type LinesCleared struct {
	Count  int
	Points int
	Score  int
}

func (LinesCleared) tetrisEvent() {}

// LevelChanged is emitted when the score crosses a level boundary.
type LevelChanged struct {
	Level int
	Speed int
}

func (LevelChanged) tetrisEvent() {}

// GameEnded is emitted once per game when the session enters game over.
type GameEnded struct {
	Score     int
	HighScore int
	Lines     int
	Level     int
}

func (GameEnded) tetrisEvent() {}

// Observer receives engine events synchronously.
type Observer func(Event)
