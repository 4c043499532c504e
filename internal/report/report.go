// Package report renders automaton runs in the staged text trace format.
package report

import (
	"fmt"
	"io"

	"ca-stages/internal/core"
	"ca-stages/internal/rule"
)

// Fixed trace lines.
const (
	separator  = "-------------------------------------"
	terminator = "==THE END============================"
)

// Printer writes trace lines to an io.Writer. The first write error is kept
// and every later call becomes a no-op; check Err once at the end.
type Printer struct {
	w   io.Writer
	err error
}

// NewPrinter returns a Printer writing to w.
func NewPrinter(w io.Writer) *Printer { return &Printer{w: w} }

// Err returns the first error encountered while writing.
func (p *Printer) Err() error { return p.err }

func (p *Printer) printf(format string, args ...any) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, format, args...)
}

func (p *Printer) fail(err error) {
	if p.err == nil {
		p.err = err
	}
}

// StageHeader starts the section for stage n.
func (p *Printer) StageHeader(n int) {
	p.printf("==STAGE %d============================\n", n)
}

// Separator writes the section separator.
func (p *Printer) Separator() { p.printf("%s\n", separator) }

// End writes the final terminator line.
func (p *Printer) End() { p.printf("%s\n", terminator) }

// StateLine writes one time step.
func (p *Printer) StateLine(t int, s core.State) {
	p.printf("%4d: %s\n", t, s)
}

// Setup writes the automaton size, rule number and the rule table, framed
// by separators.
func (p *Printer) Setup(size int, table rule.Table) {
	p.printf("SIZE: %d\n", size)
	p.printf("RULE: %d\n", table.Number())
	p.Separator()
	pairs := table.Neighborhoods()
	for _, n := range pairs {
		p.printf(" %d%d%d", n.Left, n.Current, n.Right)
	}
	p.printf("\n")
	for _, n := range pairs {
		p.printf("  %d ", n.Next)
	}
	p.printf("\n")
	p.Separator()
}

// FixedRule announces a fixed-rule run and its step count.
func (p *Printer) FixedRule(number, steps int) {
	p.printf("RULE: %d; STEPS: %d.\n", number, steps)
	p.Separator()
}

// States writes every state in the inclusive range [start, end].
func (p *Printer) States(seq *core.Sequence, start, end int) {
	if err := checkRange(seq, start, end); err != nil {
		p.fail(err)
		return
	}
	for t := start; t <= end; t++ {
		p.StateLine(t, seq.At(t))
	}
}

// OnOff writes the ON/OFF tally of one cell over the inclusive range.
func (p *Printer) OnOff(seq *core.Sequence, start, end, cell int) {
	on, off, err := CountOnOff(seq, start, end, cell)
	if err != nil {
		p.fail(err)
		return
	}
	p.printf("#ON=%d #OFF=%d CELL#%d START@%d\n", on, off, cell, start)
}

// Density writes the state at classifyTime followed by the density class
// derived from the state at finalTime.
func (p *Printer) Density(seq *core.Sequence, classifyTime, finalTime int) {
	if err := checkRange(seq, classifyTime, finalTime); err != nil {
		p.fail(err)
		return
	}
	p.StateLine(classifyTime, seq.At(classifyTime))
	p.printf("AT T=%d: #ON/#CELLS %s 1/2\n", classifyTime, Classify(seq.At(finalTime)))
}

// CountOnOff tallies how often cell is ON and OFF over the inclusive range.
func CountOnOff(seq *core.Sequence, start, end, cell int) (on, off int, err error) {
	if err := checkRange(seq, start, end); err != nil {
		return 0, 0, err
	}
	if cell < 0 || cell >= seq.Width() {
		return 0, 0, fmt.Errorf("cell %d outside [0,%d)", cell, seq.Width())
	}
	for t := start; t <= end; t++ {
		if seq.At(t).IsOn(cell) {
			on++
		} else {
			off++
		}
	}
	return on, off, nil
}

func checkRange(seq *core.Sequence, start, end int) error {
	if start < 0 || end >= seq.Len() || start > end {
		return fmt.Errorf("time range [%d,%d] outside computed steps [0,%d]", start, end, seq.Len()-1)
	}
	return nil
}
