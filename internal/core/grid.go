package core

// ByteGrid stores a 2D grid of byte-sized cell values in row-major order.
// A Sequence uses one row per time step.
type ByteGrid struct {
	W, H int
	data []uint8
}

// NewByteGrid allocates a grid with the given dimensions.
func NewByteGrid(w, h int) *ByteGrid {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return &ByteGrid{W: w, H: h, data: make([]uint8, w*h)}
}

// Cells exposes the backing slice so callers can read/write values directly.
func (g *ByteGrid) Cells() []uint8 { return g.data }

// Row returns the slice holding row y.
func (g *ByteGrid) Row(y int) []uint8 {
	start := y * g.W
	return g.data[start : start+g.W : start+g.W]
}

// Grow returns a grid with at least h rows holding a copy of g's rows.
func (g *ByteGrid) Grow(h int) *ByteGrid {
	if h <= g.H {
		return g
	}
	ng := NewByteGrid(g.W, h)
	copy(ng.data, g.data)
	return ng
}
