package sim

// RunState is the outcome of a run so far.
type RunState int

const (
	Playing RunState = iota
	Lost
	Won
)

// String returns the lowercase state name.
func (s RunState) String() string {
	switch s {
	case Playing:
		return "playing"
	case Lost:
		return "lost"
	case Won:
		return "won"
	default:
		return "unknown"
	}
}

// Terminal reports whether the run has ended.
func (s RunState) Terminal() bool {
	return s == Lost || s == Won
}

// Resolve derives the next state. A terminal state never changes. A
// collision wins over reaching the finish line in the same frame.
func (s RunState) Resolve(collided bool, playerX, finishLine float64) RunState {
	if s.Terminal() {
		return s
	}
	if collided {
		return Lost
	}
	if playerX >= finishLine {
		return Won
	}
	return Playing
}

// MarshalText encodes the state by name.
func (s RunState) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}
