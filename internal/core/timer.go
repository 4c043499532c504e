package core

import "time"

// Playback reveals the rows of a Sequence at a steady rate, one row per tick.
type Playback struct {
	step        time.Duration
	accumulator time.Duration
	last        time.Time

	shown int
	total int
}

// NewPlayback constructs a Playback over total rows targeting tps rows per
// second. The first row is visible immediately.
func NewPlayback(total, tps int) *Playback {
	p := &Playback{total: total}
	p.SetTPS(tps)
	if total > 0 {
		p.shown = 1
	}
	return p
}

// SetTPS changes the reveal rate. It is safe to call from the main loop.
func (p *Playback) SetTPS(tps int) {
	if tps <= 0 {
		tps = 60
	}
	p.step = time.Second / time.Duration(tps)
}

// Advance accounts for the time elapsed since the previous call and reveals
// as many rows as whole ticks fit into it. It returns the visible row count.
func (p *Playback) Advance(now time.Time) int {
	if p.last.IsZero() {
		p.last = now
	}
	p.accumulator += now.Sub(p.last)
	p.last = now
	for p.accumulator >= p.step && p.shown < p.total {
		p.accumulator -= p.step
		p.shown++
	}
	if p.shown == p.total {
		p.accumulator = 0
	}
	return p.shown
}

// Reveal shows one more row regardless of elapsed time.
func (p *Playback) Reveal() int {
	if p.shown < p.total {
		p.shown++
	}
	return p.shown
}

// Rewind hides every row but the first.
func (p *Playback) Rewind() {
	p.accumulator = 0
	p.last = time.Time{}
	p.shown = min(p.total, 1)
}

// Shown returns the number of visible rows.
func (p *Playback) Shown() int { return p.shown }

// Done reports whether every row is visible.
func (p *Playback) Done() bool { return p.shown >= p.total }
