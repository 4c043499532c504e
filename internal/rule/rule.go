// Package rule decodes Wolfram rule numbers for radius-1, two-state
// automata into neighborhood lookup tables.
package rule

// Count is the number of distinct radius-1 neighborhoods.
const Count = 8

// Fixed rules used by the density classification stage.
const (
	TrafficRule  = 184
	MajorityRule = 232
)

// Neighborhood pairs a (left, current, right) pattern with the state the
// centre cell takes next.
type Neighborhood struct {
	Left, Current, Right uint8
	Next                 uint8
}

// Table maps each neighborhood code to its next-state bit. Tables are plain
// values and never change after New returns.
type Table struct {
	number int
	pairs  [Count]Neighborhood
}

// New builds the table for a rule number. Code c maps to (number>>c)&1.
// The number is used as given; callers validate the 0-255 range.
func New(number int) Table {
	t := Table{number: number}
	for c := 0; c < Count; c++ {
		t.pairs[c] = Neighborhood{
			Left:    uint8(c >> 2),
			Current: uint8((c >> 1) & 1),
			Right:   uint8(c & 1),
			Next:    uint8((number >> c) & 1),
		}
	}
	return t
}

// Code packs a neighborhood into its 3-bit index.
func Code(left, current, right uint8) uint8 {
	return (left&1)<<2 | (current&1)<<1 | right&1
}

// Number returns the rule number the table was built from.
func (t Table) Number() int { return t.number }

// Next returns the next-state bit for a neighborhood code.
func (t Table) Next(code uint8) uint8 { return t.pairs[code&(Count-1)].Next }

// Neighborhoods returns the table entries in code order.
func (t Table) Neighborhoods() [Count]Neighborhood { return t.pairs }
