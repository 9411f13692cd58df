package core

// DefaultCellSize is the on-screen edge length of a cell in pixels.
const DefaultCellSize = 4

// Viewport maps between window pixels and grid positions for a grid drawn at
// a fixed cell size from the window origin.
type Viewport struct {
	CellSize int
	W, H     int
}

// NewViewport returns a viewport for a grid of w*h cells. Non-positive cell
// sizes fall back to DefaultCellSize.
func NewViewport(cellSize, w, h int) Viewport {
	if cellSize <= 0 {
		cellSize = DefaultCellSize
	}
	return Viewport{CellSize: cellSize, W: w, H: h}
}

// PointerToGrid converts window coordinates into a grid column and row.
func (v Viewport) PointerToGrid(px, py int) (int, int, bool) {
	return PointerToGrid(px, py, v.CellSize, v.W, v.H)
}

// GridToPointer returns the window position of the top-left pixel of (x, y).
func (v Viewport) GridToPointer(x, y int) (int, int) {
	return x * v.CellSize, y * v.CellSize
}

// ScreenSize returns the window size needed to show the whole grid.
func (v Viewport) ScreenSize() (int, int) {
	return v.W * v.CellSize, v.H * v.CellSize
}

// PointerToGrid integer-divides window coordinates by cellSize. It rejects
// negative results and positions beyond the grid; a column equal to w (or a
// row equal to h) is still accepted; placement drops those cells.
func PointerToGrid(px, py, cellSize, w, h int) (int, int, bool) {
	if cellSize <= 0 {
		return 0, 0, false
	}
	col := px / cellSize
	row := py / cellSize
	if col > w || col < 0 {
		return 0, 0, false
	}
	if row > h || row < 0 {
		return 0, 0, false
	}
	return col, row, true
}
