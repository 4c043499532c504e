package report

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ca-stages/internal/core"
	"ca-stages/internal/rule"
)

func sequenceOf(t *testing.T, states ...string) *core.Sequence {
	t.Helper()
	first, err := core.ParseState(states[0])
	require.NoError(t, err)
	seq, err := core.NewSequence(first, len(states)-1)
	require.NoError(t, err)
	for _, s := range states[1:] {
		st, err := core.ParseState(s)
		require.NoError(t, err)
		seq.Append(st)
	}
	return seq
}

func TestSetupListsRuleTable(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)
	p.StageHeader(0)
	p.Setup(10, rule.New(30))
	require.NoError(t, p.Err())

	want := "==STAGE 0============================\n" +
		"SIZE: 10\n" +
		"RULE: 30\n" +
		"-------------------------------------\n" +
		" 000 001 010 011 100 101 110 111\n" +
		"  0   1   1   1   1   0   0   0 \n" +
		"-------------------------------------\n"
	assert.Equal(t, want, buf.String())
}

func TestStatesAndStateLine(t *testing.T) {
	seq := sequenceOf(t, "*.", ".*", "**")
	var buf bytes.Buffer
	p := NewPrinter(&buf)
	p.States(seq, 1, 2)
	require.NoError(t, p.Err())
	assert.Equal(t, "   1: .*\n   2: **\n", buf.String())
}

func TestOnOffCountsInclusiveRange(t *testing.T) {
	seq := sequenceOf(t, "*.", ".*", "*.")
	on, off, err := CountOnOff(seq, 0, 2, 0)
	require.NoError(t, err)
	assert.Equal(t, 2, on)
	assert.Equal(t, 1, off)

	var buf bytes.Buffer
	p := NewPrinter(&buf)
	p.OnOff(seq, 1, 2, 1)
	require.NoError(t, p.Err())
	assert.Equal(t, "#ON=1 #OFF=1 CELL#1 START@1\n", buf.String())
}

func TestOnOffRejectsBadArguments(t *testing.T) {
	seq := sequenceOf(t, "*.", ".*")
	_, _, err := CountOnOff(seq, 0, 1, 2)
	assert.Error(t, err)
	_, _, err = CountOnOff(seq, 0, 5, 0)
	assert.Error(t, err)

	var buf bytes.Buffer
	p := NewPrinter(&buf)
	p.OnOff(seq, 0, 1, -1)
	p.Separator()
	assert.Error(t, p.Err())
	assert.Empty(t, buf.String(), "nothing is written after the first error")
}

func TestClassify(t *testing.T) {
	cases := map[string]Density{
		"**...": DensityAboveHalf,
		".....": DensityBelowHalf,
		"..***": DensityBelowHalf,
		"*.*.*": DensityHalf,
		".*.*.": DensityHalf,
		"*":     DensityAboveHalf,
		".":     DensityBelowHalf,
	}
	for s, want := range cases {
		st, err := core.ParseState(s)
		require.NoError(t, err)
		assert.Equal(t, want, Classify(st), s)
	}
	assert.Equal(t, ">", DensityAboveHalf.String())
	assert.Equal(t, "<", DensityBelowHalf.String())
	assert.Equal(t, "=", DensityHalf.String())
}

func TestDensityUsesFinalStateAndPrintsClassified(t *testing.T) {
	seq := sequenceOf(t, ".*.*", "....", "**..")
	var buf bytes.Buffer
	p := NewPrinter(&buf)
	p.Density(seq, 0, 2)
	require.NoError(t, p.Err())
	assert.Equal(t, "   0: .*.*\nAT T=0: #ON/#CELLS > 1/2\n", buf.String())
}

func TestFixedRuleAndTerminators(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)
	p.FixedRule(rule.TrafficRule, 4)
	p.End()
	require.NoError(t, p.Err())
	assert.Equal(t, "RULE: 184; STEPS: 4.\n"+
		"-------------------------------------\n"+
		"==THE END============================\n", buf.String())
}

type failingWriter struct{ writes int }

func (f *failingWriter) Write(b []byte) (int, error) {
	f.writes++
	return 0, errors.New("disk full")
}

func TestPrinterStopsAfterWriteError(t *testing.T) {
	w := &failingWriter{}
	p := NewPrinter(w)
	p.StageHeader(1)
	p.Separator()
	p.End()
	assert.EqualError(t, p.Err(), "disk full")
	assert.Equal(t, 1, w.writes)
}
