// Package config reads and validates the automaton run configuration.
package config

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"ca-stages/internal/core"
)

// Input formats accepted by Load.
const (
	FormatText = "text"
	FormatYAML = "yaml"
)

// ErrInvalidConfig marks configuration that cannot drive a run.
var ErrInvalidConfig = errors.New("invalid configuration")

// ValidationError lists every problem found in a configuration.
type ValidationError struct {
	Problems []string
}

func (e *ValidationError) Error() string {
	return "invalid configuration: " + strings.Join(e.Problems, "; ")
}

// Unwrap lets errors.Is match ErrInvalidConfig.
func (e *ValidationError) Unwrap() error { return ErrInvalidConfig }

// Probe selects the cell and first time step of an ON/OFF report.
type Probe struct {
	Cell  int `yaml:"cell" validate:"gte=0"`
	Start int `yaml:"start" validate:"gte=0"`
}

// Config holds one run: automaton width, rule, seed state, stage 1 length
// and the two report probes.
type Config struct {
	Size      int    `yaml:"size" validate:"gte=1"`
	Rule      int    `yaml:"rule" validate:"gte=0,lte=255"`
	Initial   string `yaml:"initial" validate:"required"`
	TimeSteps int    `yaml:"time_steps" validate:"gte=0"`
	Stage1    Probe  `yaml:"stage1"`
	Stage2    Probe  `yaml:"stage2"`
}

var validate = validator.New()

// DefaultConfig returns a small rule 30 run seeded with one ON cell.
func DefaultConfig() Config {
	return Config{
		Size:      31,
		Rule:      30,
		Initial:   strings.Repeat(".", 15) + "*" + strings.Repeat(".", 15),
		TimeSteps: 15,
	}
}

// FromMap overrides DefaultConfig with flag-style key/value pairs. Unknown
// keys and unparsable values are ignored.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	ints := map[string]*int{
		"size":         &c.Size,
		"rule":         &c.Rule,
		"time_steps":   &c.TimeSteps,
		"stage1_cell":  &c.Stage1.Cell,
		"stage1_start": &c.Stage1.Start,
		"stage2_cell":  &c.Stage2.Cell,
		"stage2_start": &c.Stage2.Start,
	}
	for key, dst := range ints {
		if v, ok := cfg[key]; ok {
			if parsed, err := strconv.Atoi(v); err == nil {
				*dst = parsed
			}
		}
	}
	if v, ok := cfg["initial"]; ok {
		c.Initial = v
	}
	return c
}

// Load reads a configuration in the given format and validates it.
func Load(r io.Reader, format string) (Config, error) {
	var (
		c   Config
		err error
	)
	switch strings.ToLower(format) {
	case "", FormatText:
		c, err = ParseText(r)
	case FormatYAML, "yml":
		c, err = ParseYAML(r)
	default:
		return Config{}, fmt.Errorf("unknown input format %q", format)
	}
	if err != nil {
		return Config{}, err
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// ParseText reads the whitespace-delimited form:
//
//	size rule initial time_steps cell1,start1 cell2,start2
func ParseText(r io.Reader) (Config, error) {
	var c Config
	if _, err := fmt.Fscan(r, &c.Size, &c.Rule, &c.Initial, &c.TimeSteps); err != nil {
		return Config{}, fmt.Errorf("reading size, rule, state and steps: %w", err)
	}
	for i, p := range []*Probe{&c.Stage1, &c.Stage2} {
		var field string
		if _, err := fmt.Fscan(r, &field); err != nil {
			return Config{}, fmt.Errorf("reading stage %d probe: %w", i+1, err)
		}
		probe, err := parseProbe(field)
		if err != nil {
			return Config{}, fmt.Errorf("stage %d probe: %w", i+1, err)
		}
		*p = probe
	}
	return c, nil
}

func parseProbe(field string) (Probe, error) {
	cell, start, ok := strings.Cut(field, ",")
	if !ok {
		return Probe{}, fmt.Errorf("expected cell,start, got %q", field)
	}
	var p Probe
	var err error
	if p.Cell, err = strconv.Atoi(cell); err != nil {
		return Probe{}, fmt.Errorf("cell %q: %w", cell, err)
	}
	if p.Start, err = strconv.Atoi(start); err != nil {
		return Probe{}, fmt.Errorf("start %q: %w", start, err)
	}
	return p, nil
}

// ParseYAML reads the configuration from a YAML document.
func ParseYAML(r io.Reader) (Config, error) {
	var c Config
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&c); err != nil {
		return Config{}, fmt.Errorf("decoding yaml config: %w", err)
	}
	return c, nil
}

// Validate checks field ranges and the relations between fields.
func (c Config) Validate() error {
	var problems []string
	if err := validate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return fmt.Errorf("validating config: %w", err)
		}
		for _, fe := range verrs {
			problems = append(problems, fmt.Sprintf("%s fails %s=%s (got %v)", fe.Namespace(), fe.Tag(), fe.Param(), fe.Value()))
		}
		return &ValidationError{Problems: problems}
	}

	if len(c.Initial) != c.Size {
		problems = append(problems, fmt.Sprintf("initial state has %d cells, size is %d", len(c.Initial), c.Size))
	}
	if _, err := core.ParseState(c.Initial); err != nil {
		problems = append(problems, err.Error())
	}
	for i, p := range []Probe{c.Stage1, c.Stage2} {
		if p.Cell >= c.Size {
			problems = append(problems, fmt.Sprintf("stage %d cell %d outside [0,%d)", i+1, p.Cell, c.Size))
		}
	}
	if c.Stage1.Start > c.TimeSteps {
		problems = append(problems, fmt.Sprintf("stage 1 start %d after last step %d", c.Stage1.Start, c.TimeSteps))
	}
	if total := c.TotalSteps(); c.Stage2.Start > total {
		problems = append(problems, fmt.Sprintf("stage 2 start %d after last step %d", c.Stage2.Start, total))
	}
	if len(problems) > 0 {
		return &ValidationError{Problems: problems}
	}
	return nil
}

// TotalSteps is the last time step reached once every stage has run.
func (c Config) TotalSteps() int { return core.TotalSteps(c.TimeSteps, c.Size) }

// State parses the initial state.
func (c Config) State() (core.State, error) { return core.ParseState(c.Initial) }
