package config

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTextReadsAllFields(t *testing.T) {
	in := "5\n150\n*....\n2\n0,0\n1,3\n"
	c, err := Load(strings.NewReader(in), FormatText)
	require.NoError(t, err)
	assert.Equal(t, Config{
		Size:      5,
		Rule:      150,
		Initial:   "*....",
		TimeSteps: 2,
		Stage1:    Probe{Cell: 0, Start: 0},
		Stage2:    Probe{Cell: 1, Start: 3},
	}, c)
	assert.Equal(t, 5, c.TotalSteps())
}

func TestParseTextToleratesArbitraryWhitespace(t *testing.T) {
	c, err := ParseText(strings.NewReader("  3 90   .*.\t4 2,1\n\n 0,5"))
	require.NoError(t, err)
	assert.Equal(t, 3, c.Size)
	assert.Equal(t, Probe{Cell: 2, Start: 1}, c.Stage1)
	assert.Equal(t, Probe{Cell: 0, Start: 5}, c.Stage2)
}

func TestParseTextErrors(t *testing.T) {
	cases := map[string]string{
		"truncated":     "5 150 *....",
		"not a number":  "five 150 *.... 2 0,0 1,3",
		"missing comma": "5 150 *.... 2 0 0 1,3",
		"bad start":     "5 150 *.... 2 0,x 1,3",
	}
	for name, in := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := ParseText(strings.NewReader(in))
			assert.Error(t, err)
		})
	}
}

func TestParseYAML(t *testing.T) {
	doc := `
size: 6
rule: 110
initial: "*.*..*"
time_steps: 3
stage1: {cell: 2, start: 1}
stage2: {cell: 5, start: 4}
`
	c, err := Load(strings.NewReader(doc), FormatYAML)
	require.NoError(t, err)
	assert.Equal(t, 110, c.Rule)
	assert.Equal(t, Probe{Cell: 5, Start: 4}, c.Stage2)

	_, err = ParseYAML(strings.NewReader("size: 3\nwidth: 4\n"))
	assert.Error(t, err, "unknown fields are rejected")
}

func TestLoadUnknownFormat(t *testing.T) {
	_, err := Load(strings.NewReader(""), "toml")
	assert.ErrorContains(t, err, "unknown input format")
}

func TestValidateRanges(t *testing.T) {
	c := Config{Size: 0, Rule: 300, Initial: "", TimeSteps: -1}
	err := c.Validate()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidConfig))

	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Len(t, verr.Problems, 4)
}

func TestValidateCrossFieldChecks(t *testing.T) {
	base := Config{Size: 5, Rule: 150, Initial: "*....", TimeSteps: 2, Stage2: Probe{Start: 5}}
	require.NoError(t, base.Validate())

	cases := map[string]func(c *Config){
		"length mismatch":   func(c *Config) { c.Initial = "*..." },
		"bad symbol":        func(c *Config) { c.Initial = "*..o." },
		"stage1 cell":       func(c *Config) { c.Stage1.Cell = 5 },
		"stage2 cell":       func(c *Config) { c.Stage2.Cell = 9 },
		"stage1 late start": func(c *Config) { c.Stage1.Start = 3 },
		"stage2 late start": func(c *Config) { c.Stage2.Start = 6 },
		"negative probe":    func(c *Config) { c.Stage1.Cell = -1 },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			c := base
			mutate(&c)
			assert.ErrorIs(t, c.Validate(), ErrInvalidConfig)
		})
	}
}

func TestFromMap(t *testing.T) {
	c := FromMap(map[string]string{
		"size":        "4",
		"initial":     "*..*",
		"rule":        "bogus",
		"stage2_cell": "3",
	})
	assert.Equal(t, 4, c.Size)
	assert.Equal(t, "*..*", c.Initial)
	assert.Equal(t, DefaultConfig().Rule, c.Rule)
	assert.Equal(t, 3, c.Stage2.Cell)

	require.NoError(t, DefaultConfig().Validate())
	assert.Equal(t, DefaultConfig(), FromMap(nil))
}
