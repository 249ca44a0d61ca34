package tetris

// State is a node of the piece-lifecycle state machine.
type State int

const (
	StateStart State = iota
	StateSpawn
	StateMoving
	StateShifting
	StateAttaching
	StateGameOver
	StatePaused
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateStart:
		return "start"
	case StateSpawn:
		return "spawn"
	case StateMoving:
		return "moving"
	case StateShifting:
		return "shifting"
	case StateAttaching:
		return "attaching"
	case StateGameOver:
		return "game_over"
	case StatePaused:
		return "paused"
	default:
		return "unknown"
	}
}

// transient reports whether the state resolves without input.
func (s State) transient() bool {
	return s == StateSpawn || s == StateShifting || s == StateAttaching
}

// pieceVisible reports whether the active piece is drawn over the board.
func (s State) pieceVisible() bool {
	return s == StateMoving || s == StateShifting
}
