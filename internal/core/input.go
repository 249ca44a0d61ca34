package core

import "time"

// Action is one discrete player intent delivered to a game per polling tick.
// The numeric values follow the brick-game action vocabulary so a raw value
// outside the known range is simply ignored by the engine.
type Action int

const (
	ActionStart Action = iota
	ActionPause
	ActionTerminate
	ActionLeft
	ActionRight
	ActionUp // reserved, no key produces it and the engine ignores it
	ActionDown
	ActionRotate

	// ActionNone marks a tick without input.
	ActionNone Action = -1
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionStart:
		return "Start"
	case ActionPause:
		return "Pause"
	case ActionTerminate:
		return "Terminate"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionRotate:
		return "Action"
	default:
		return "Unknown"
	}
}

// Valid reports whether a belongs to the recognized vocabulary.
func (a Action) Valid() bool {
	return a >= ActionStart && a <= ActionRotate
}

// Holdable reports whether repeating a counts towards a hold.
func (a Action) Holdable() bool {
	return a == ActionLeft || a == ActionRight || a == ActionDown
}

// InputFrame is the input collected for a single simulation tick.
// At most one action is carried, the latest one observed during the tick.
type InputFrame struct {
	Action Action
	Held   bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{Action: ActionNone}
}

// Set records an action for this frame, replacing any earlier one.
func (f *InputFrame) Set(a Action, held bool) {
	f.Action = a
	f.Held = held
}

// Empty reports whether no action was triggered this frame.
func (f InputFrame) Empty() bool {
	return f.Action == ActionNone
}

// Clear resets the frame for the next tick.
func (f *InputFrame) Clear() {
	f.Action = ActionNone
	f.Held = false
}

// HoldTracker turns a stream of discrete key events into a held flag.
// A holdable action repeated more than Threshold times in a row, each repeat
// arriving within Gap of the previous one, counts as held until the streak
// breaks.
type HoldTracker struct {
	Threshold int
	Gap       time.Duration

	last  Action
	count int
	at    time.Time
}

// NewHoldTracker creates a tracker with the given threshold and gap.
func NewHoldTracker(threshold int, gap time.Duration) *HoldTracker {
	return &HoldTracker{
		Threshold: threshold,
		Gap:       gap,
		last:      ActionNone,
	}
}

// Observe records an action seen at time now and returns whether it is held.
func (h *HoldTracker) Observe(a Action, now time.Time) bool {
	if !a.Holdable() {
		h.Reset()
		return false
	}

	if a == h.last && !h.at.IsZero() && now.Sub(h.at) <= h.Gap {
		h.count++
	} else {
		h.last = a
		h.count = 0
	}
	h.at = now

	return h.count > h.Threshold
}

// Reset breaks the current streak.
func (h *HoldTracker) Reset() {
	h.last = ActionNone
	h.count = 0
	h.at = time.Time{}
}
