package core

// Grid stores a 2D grid of values in row-major order.
type Grid[T any] struct {
	W, H int
	data []T
}

// NewGrid allocates a grid with the given dimensions, every cell set to fill.
func NewGrid[T any](w, h int, fill T) *Grid[T] {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	g := &Grid[T]{W: w, H: h, data: make([]T, w*h)}
	g.Fill(fill)
	return g
}

// Cells exposes the backing slice in row-major order.
func (g *Grid[T]) Cells() []T { return g.data }

// Index returns the linear slice index for coordinates (x, y).
func (g *Grid[T]) Index(x, y int) int { return y*g.W + x }

// InBounds reports whether (x, y) addresses a cell of the grid.
func (g *Grid[T]) InBounds(x, y int) bool {
	return x >= 0 && x < g.W && y >= 0 && y < g.H
}

// Get returns the value at (x, y) and false when the position is off-grid.
func (g *Grid[T]) Get(x, y int) (T, bool) {
	if !g.InBounds(x, y) {
		var zero T
		return zero, false
	}
	return g.data[y*g.W+x], true
}

// Set writes v at (x, y). Off-grid writes are ignored.
func (g *Grid[T]) Set(x, y int, v T) {
	if !g.InBounds(x, y) {
		return
	}
	g.data[y*g.W+x] = v
}

// At reads (x, y) without bounds synthesis. Callers must know the position is
// on the grid.
func (g *Grid[T]) At(x, y int) T { return g.data[y*g.W+x] }

// Put writes (x, y) without bounds checks.
func (g *Grid[T]) Put(x, y int, v T) { g.data[y*g.W+x] = v }

// Swap exchanges the values at two on-grid positions.
func (g *Grid[T]) Swap(ax, ay, bx, by int) {
	a, b := g.Index(ax, ay), g.Index(bx, by)
	g.data[a], g.data[b] = g.data[b], g.data[a]
}

// Fill sets every cell to v.
func (g *Grid[T]) Fill(v T) {
	for i := range g.data {
		g.data[i] = v
	}
}
