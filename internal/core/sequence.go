package core

import (
	"errors"
	"fmt"
	"math"
)

// MaxCells caps the number of cells a Sequence may reserve up front.
const MaxCells = 1 << 28

// ErrStorage marks a failure to acquire storage for the state sequence.
var ErrStorage = errors.New("state storage unavailable")

// AllocationError describes a storage request that could not be satisfied.
type AllocationError struct {
	Width int
	Rows  int
	Cause string
}

func (e *AllocationError) Error() string {
	return fmt.Sprintf("allocating %d states of %d cells: %s", e.Rows, e.Width, e.Cause)
}

// Unwrap lets errors.Is match ErrStorage.
func (e *AllocationError) Unwrap() error { return ErrStorage }

// Sequence is an append-only, time-indexed list of states. Entry t+1 is
// always derived from entry t; entries are never rewritten once appended.
type Sequence struct {
	grid *ByteGrid
	n    int
}

// NewSequence reserves room for the initial state plus steps successors and
// seeds time step 0 with a copy of initial.
func NewSequence(initial State, steps int) (*Sequence, error) {
	w := len(initial)
	rows := steps + 1
	switch {
	case w == 0:
		return nil, &AllocationError{Width: w, Rows: rows, Cause: "empty initial state"}
	case steps < 0:
		return nil, &AllocationError{Width: w, Rows: rows, Cause: "negative step count"}
	case steps == math.MaxInt || rows > math.MaxInt/w:
		return nil, &AllocationError{Width: w, Rows: rows, Cause: "size overflows"}
	case w*rows > MaxCells:
		return nil, &AllocationError{Width: w, Rows: rows, Cause: fmt.Sprintf("exceeds %d cells", MaxCells)}
	}
	s := &Sequence{grid: NewByteGrid(w, rows)}
	s.Append(initial)
	return s, nil
}

// Len returns the number of states recorded so far.
func (s *Sequence) Len() int { return s.n }

// Width returns the number of cells per state.
func (s *Sequence) Width() int { return s.grid.W }

// At returns the state at time step t. The returned slice aliases the
// sequence storage and must not be modified.
func (s *Sequence) At(t int) State {
	if t < 0 || t >= s.n {
		panic(fmt.Sprintf("core: time step %d outside [0,%d)", t, s.n))
	}
	return State(s.grid.Row(t))
}

// Last returns the most recent state.
func (s *Sequence) Last() State { return s.At(s.n - 1) }

// Append records st as the next time step, growing storage when the
// reservation is exhausted.
func (s *Sequence) Append(st State) {
	if len(st) != s.grid.W {
		panic(fmt.Sprintf("core: state has %d cells, sequence width is %d", len(st), s.grid.W))
	}
	copy(s.extend(), st)
}

// Extend reserves the next time step and returns its writable row. The
// caller must fill the row before reading it back.
func (s *Sequence) Extend() State { return State(s.extend()) }

func (s *Sequence) extend() []uint8 {
	if s.n == s.grid.H {
		s.grid = s.grid.Grow(s.grid.H * 2)
	}
	row := s.grid.Row(s.n)
	s.n++
	return row
}

// Cells exposes the row-major bits of every recorded state.
func (s *Sequence) Cells() []uint8 { return s.grid.Cells()[:s.n*s.grid.W] }

// StageSteps returns how many steps rules 184 and 232 run for an automaton
// of the given size.
func StageSteps(size int) (steps184, steps232 int) {
	steps184 = (size - 2) / 2
	steps232 = (size - 1) / 2
	if steps184 < 0 {
		steps184 = 0
	}
	if steps232 < 0 {
		steps232 = 0
	}
	return steps184, steps232
}

// TotalSteps is the final time step reached after all stages.
func TotalSteps(timeSteps, size int) int {
	s184, s232 := StageSteps(size)
	return timeSteps + s184 + s232
}
