package core

import "fmt"

// Cell symbols used in textual states.
const (
	On  byte = '*'
	Off byte = '.'
)

// State is one generation of the automaton, one bit (0 or 1) per cell.
type State []uint8

// ParseState converts a string of On/Off symbols into a State.
func ParseState(s string) (State, error) {
	if s == "" {
		return nil, fmt.Errorf("empty state")
	}
	st := make(State, len(s))
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case On:
			st[i] = 1
		case Off:
			st[i] = 0
		default:
			return nil, fmt.Errorf("invalid cell symbol %q at position %d", s[i], i)
		}
	}
	return st, nil
}

// Len returns the number of cells.
func (s State) Len() int { return len(s) }

// IsOn reports whether cell i is ON.
func (s State) IsOn(i int) bool { return s[i] != 0 }

// String renders the state using On/Off symbols.
func (s State) String() string {
	buf := make([]byte, len(s))
	for i, c := range s {
		if c != 0 {
			buf[i] = On
			continue
		}
		buf[i] = Off
	}
	return string(buf)
}

// Clone returns an independent copy of the state.
func (s State) Clone() State {
	return append(State(nil), s...)
}
