package elementary

import (
	"errors"
	"fmt"

	"ca-stages/internal/core"
	"ca-stages/internal/logging"
	"ca-stages/internal/rule"
)

var (
	// ErrMissingState is returned when the start of a range has not been computed yet.
	ErrMissingState = errors.New("start state not computed")
	// ErrRewrite is returned when a range would recompute existing states.
	ErrRewrite = errors.New("range overlaps computed states")
)

// Step writes the successor of src under table into dst. Both slices must
// have the same length; the row wraps around so the first and last cells
// are neighbors. src is not modified.
func Step(dst, src core.State, table rule.Table) {
	w := len(src)
	for x := 0; x < w; x++ {
		left := src[(x-1+w)%w]
		center := src[x]
		right := src[(x+1)%w]
		dst[x] = table.Next(rule.Code(left, center, right))
	}
}

// Next returns the successor of src under table.
func Next(src core.State, table rule.Table) core.State {
	dst := make(core.State, len(src))
	Step(dst, src, table)
	return dst
}

// Run extends seq so that seq[t+1] = Step(seq[t]) for every t in [start, end).
// start must be the last recorded time step. An empty range does nothing.
func Run(seq *core.Sequence, start, end int, table rule.Table) error {
	if start >= end {
		return nil
	}
	tail := seq.Len() - 1
	if start > tail {
		return fmt.Errorf("evolving from t=%d with tail at t=%d: %w", start, tail, ErrMissingState)
	}
	if start < tail {
		return fmt.Errorf("evolving from t=%d with tail at t=%d: %w", start, tail, ErrRewrite)
	}
	for t := start; t < end; t++ {
		src := seq.At(t)
		Step(seq.Extend(), src, table)
	}
	return nil
}

// Evolver runs successive ranges of an automaton against one sequence.
type Evolver struct {
	seq *core.Sequence
	log *logging.Logger
}

// NewEvolver wraps seq. A nil logger discards output.
func NewEvolver(seq *core.Sequence, log *logging.Logger) *Evolver {
	if log == nil {
		log = logging.NopLogger()
	}
	return &Evolver{seq: seq, log: log}
}

// Sequence returns the sequence being extended.
func (e *Evolver) Sequence() *core.Sequence { return e.seq }

// Advance evolves steps generations from the current tail under table and
// returns the time step reached.
func (e *Evolver) Advance(steps int, table rule.Table) (int, error) {
	start := e.seq.Len() - 1
	end := start + steps
	if err := Run(e.seq, start, end, table); err != nil {
		return start, fmt.Errorf("rule %d: %w", table.Number(), err)
	}
	e.log.Debug("evolved range", "rule", table.Number(), "start", start, "end", end)
	return e.seq.Len() - 1, nil
}
