// Package stages drives the three-stage automaton run and its trace.
//
// Stage 0 reports the configuration and the rule table. Stage 1 evolves the
// configured rule. Stage 2 applies rule 184 then rule 232 to the last stage 1
// state and classifies its density.
package stages

import (
	"fmt"
	"io"

	"ca-stages/internal/config"
	"ca-stages/internal/core"
	"ca-stages/internal/logging"
	"ca-stages/internal/report"
	"ca-stages/internal/rule"
	"ca-stages/internal/sims/elementary"
)

// Plan holds the step counts derived from a configuration.
type Plan struct {
	TimeSteps int
	Steps184  int
	Steps232  int
}

// NewPlan derives the stage step counts for cfg.
func NewPlan(cfg config.Config) Plan {
	s184, s232 := core.StageSteps(cfg.Size)
	return Plan{TimeSteps: cfg.TimeSteps, Steps184: s184, Steps232: s232}
}

// Total returns the final time step.
func (p Plan) Total() int { return p.TimeSteps + p.Steps184 + p.Steps232 }

// Runner executes a configured run.
type Runner struct {
	cfg config.Config
	log *logging.Logger

	original, traffic, majority rule.Table
}

// NewRunner prepares a run. cfg is expected to be validated; a nil logger
// discards diagnostics.
func NewRunner(cfg config.Config, log *logging.Logger) *Runner {
	if log == nil {
		log = logging.NopLogger()
	}
	return &Runner{
		cfg:      cfg,
		log:      log,
		original: rule.New(cfg.Rule),
		traffic:  rule.New(rule.TrafficRule),
		majority: rule.New(rule.MajorityRule),
	}
}

// Run writes the full trace to w and returns the computed sequence, which
// holds Plan.Total()+1 states. Storage is acquired before anything is
// written, so a storage failure leaves w untouched.
func (r *Runner) Run(w io.Writer) (*core.Sequence, error) {
	plan := NewPlan(r.cfg)
	initial, err := r.cfg.State()
	if err != nil {
		return nil, fmt.Errorf("initial state: %w", err)
	}
	seq, err := core.NewSequence(initial, plan.Total())
	if err != nil {
		return nil, err
	}
	r.log.Info("storage acquired", "size", seq.Width(), "states", plan.Total()+1)

	ev := elementary.NewEvolver(seq, r.log)
	p := report.NewPrinter(w)

	r.stage0(p, seq)
	if err := r.stage1(p, ev, plan); err != nil {
		return nil, err
	}
	if err := r.stage2(p, ev, plan); err != nil {
		return nil, err
	}
	p.End()
	if err := p.Err(); err != nil {
		return nil, fmt.Errorf("writing report: %w", err)
	}
	return seq, nil
}

func (r *Runner) stage0(p *report.Printer, seq *core.Sequence) {
	r.log.WithStage(0).Debug("reporting setup", "rule", r.original.Number())
	p.StageHeader(0)
	p.Setup(r.cfg.Size, r.original)
	p.StateLine(0, seq.At(0))
}

func (r *Runner) stage1(p *report.Printer, ev *elementary.Evolver, plan Plan) error {
	log := r.log.WithStage(1)
	p.StageHeader(1)
	end, err := ev.Advance(plan.TimeSteps, r.original)
	if err != nil {
		return fmt.Errorf("stage 1: %w", err)
	}
	log.Debug("evolved", "steps", plan.TimeSteps)

	seq := ev.Sequence()
	p.States(seq, 0, end)
	p.Separator()
	p.OnOff(seq, r.cfg.Stage1.Start, end, r.cfg.Stage1.Cell)
	return nil
}

func (r *Runner) stage2(p *report.Printer, ev *elementary.Evolver, plan Plan) error {
	log := r.log.WithStage(2)
	p.StageHeader(2)
	seq := ev.Sequence()

	start := plan.TimeSteps
	p.FixedRule(rule.TrafficRule, plan.Steps184)
	mid, err := ev.Advance(plan.Steps184, r.traffic)
	if err != nil {
		return fmt.Errorf("stage 2: %w", err)
	}
	p.States(seq, start, mid)
	p.Separator()

	p.FixedRule(rule.MajorityRule, plan.Steps232)
	end, err := ev.Advance(plan.Steps232, r.majority)
	if err != nil {
		return fmt.Errorf("stage 2: %w", err)
	}
	p.States(seq, mid, end)
	p.Separator()
	log.Debug("evolved", "steps184", plan.Steps184, "steps232", plan.Steps232)

	p.OnOff(seq, r.cfg.Stage2.Start, end, r.cfg.Stage2.Cell)
	p.Separator()
	p.Density(seq, plan.TimeSteps, end)
	return nil
}
