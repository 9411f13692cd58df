package sandbox

import (
	"slices"
	"testing"

	"rhysix/internal/core"
)

func countMaterial(s *Sandbox, m Material) int {
	total := 0
	for _, c := range s.Buffer() {
		if c.Material == m {
			total++
		}
	}
	return total
}

func allAir(w, h int) []Cell {
	cells := make([]Cell, w*h)
	for i := range cells {
		cells[i] = Air()
	}
	return cells
}

func TestNewSandboxIsAllAir(t *testing.T) {
	sb := NewWithConfig(DefaultConfig())
	size := sb.Size()
	if size.W != 200 || size.H != 150 {
		t.Fatalf("expected default 200x150 grid, got %dx%d", size.W, size.H)
	}
	if !slices.Equal(sb.Buffer(), allAir(size.W, size.H)) {
		t.Fatal("new sandbox must be all air")
	}
	if sb.ActiveMaterial() != Sand() {
		t.Fatalf("expected sand brush by default, got %v", sb.ActiveMaterial().Material)
	}
	if sb.BrushSize() != 4 {
		t.Fatalf("expected default brush size 4, got %d", sb.BrushSize())
	}
}

func TestGetRowMajorAndBounds(t *testing.T) {
	sb := New(6, 4)
	sb.Set(5, 3, Stone())
	if got := sb.Buffer()[3*6+5]; got != Stone() {
		t.Fatalf("expected row-major index 23 to hold stone, got %v", got.Material)
	}
	if c, ok := sb.Get(5, 3); !ok || c != Stone() {
		t.Fatalf("Get(5,3) = %v, %v", c.Material, ok)
	}

	outside := [][2]int{{-1, 0}, {0, -1}, {6, 0}, {0, 4}, {6, 4}, {-1, -1}}
	for _, pos := range outside {
		if _, ok := sb.Get(pos[0], pos[1]); ok {
			t.Fatalf("Get(%d,%d) should be absent", pos[0], pos[1])
		}
		if c := sb.cellOrOOB(pos[0], pos[1]); c != OutOfBounds() {
			t.Fatalf("cellOrOOB(%d,%d) = %v, want sentinel", pos[0], pos[1], c.Material)
		}
	}
}

func TestPlaceStampsBrushSquare(t *testing.T) {
	sb := New(10, 10)
	sb.SetBrushSize(3)
	sb.Place(2, 4)

	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			c, _ := sb.Get(x, y)
			inside := x >= 2 && x < 5 && y >= 4 && y < 7
			if inside && c != Sand() {
				t.Fatalf("cell (%d,%d) = %v, want sand", x, y, c.Material)
			}
			if !inside && c != Air() {
				t.Fatalf("cell (%d,%d) = %v, want air", x, y, c.Material)
			}
		}
	}

	sb.PlaceCell(3, 5, Water())
	if c, _ := sb.Get(3, 5); c != Water() {
		t.Fatalf("override cell not placed, got %v", c.Material)
	}
	if c, _ := sb.Get(2, 4); c != Sand() {
		t.Fatalf("override must not touch cells outside its square, got %v", c.Material)
	}
}

func TestPlaceStraddlingEdgesDropsOffGridCells(t *testing.T) {
	cases := []struct {
		name string
		x, y int
		want int
	}{
		{name: "bottom-right", x: 8, y: 8, want: 4},
		{name: "top-left", x: -2, y: -2, want: 4},
		{name: "left", x: -3, y: 3, want: 4},
		{name: "fully outside", x: 10, y: 10, want: 0},
		{name: "far negative", x: -20, y: -20, want: 0},
	}
	for _, tc := range cases {
		sb := New(10, 10)
		sb.SetBrushSize(4)
		sb.Place(tc.x, tc.y)
		if got := countMaterial(sb, MaterialSand); got != tc.want {
			t.Fatalf("%s: placed %d cells, want %d", tc.name, got, tc.want)
		}
	}
}

func TestClearRestoresAllAir(t *testing.T) {
	sb := New(12, 8)
	sb.SetBrushSize(5)
	sb.Place(0, 0)
	sb.PlaceCell(6, 3, Water())
	sb.Set(11, 7, Stone())
	sb.TogglePause()

	sb.Clear()

	if !slices.Equal(sb.Buffer(), allAir(12, 8)) {
		t.Fatal("Clear must leave an all-air buffer")
	}
	if !sb.Paused() {
		t.Fatal("Clear must not touch the pause flag")
	}
	if sb.BrushSize() != 5 {
		t.Fatalf("Clear must not touch the brush size, got %d", sb.BrushSize())
	}
}

func TestResetClearsGrid(t *testing.T) {
	sb := New(12, 8)
	sb.Place(3, 3)
	sb.Reset(0)
	if !slices.Equal(sb.Buffer(), allAir(12, 8)) {
		t.Fatal("Reset must leave an all-air buffer")
	}
	sb.Place(3, 3)
	sb.Reset(99)
	if !slices.Equal(sb.Buffer(), allAir(12, 8)) {
		t.Fatal("Reset with explicit seed must leave an all-air buffer")
	}
}

func TestBrushSizeClamp(t *testing.T) {
	sb := New(4, 4)
	sb.SetBrushSize(1)
	for i := 0; i < 20; i++ {
		sb.IncreaseBrushSize()
	}
	if sb.BrushSize() != MaxBrushSize {
		t.Fatalf("expected brush to clamp at %d, got %d", MaxBrushSize, sb.BrushSize())
	}
	for i := 0; i < 30; i++ {
		sb.DecreaseBrushSize()
		if sb.BrushSize() < MinBrushSize {
			t.Fatalf("brush dropped below %d", MinBrushSize)
		}
	}
	if sb.BrushSize() != MinBrushSize {
		t.Fatalf("expected brush to clamp at %d, got %d", MinBrushSize, sb.BrushSize())
	}
	sb.SetBrushSize(-5)
	if sb.BrushSize() != MinBrushSize {
		t.Fatalf("SetBrushSize(-5) = %d", sb.BrushSize())
	}
}

func TestSelectMaterial(t *testing.T) {
	sb := New(4, 4)
	if !sb.SelectMaterial("Water") {
		t.Fatal("expected water to be selectable")
	}
	if sb.ActiveMaterial() != Water() || sb.ActiveMaterialName() != "water" {
		t.Fatalf("active material = %v", sb.ActiveMaterial().Material)
	}
	if sb.SelectMaterial("oob") || sb.SelectMaterial("lava") {
		t.Fatal("sentinel and unknown names must be rejected")
	}
	sb.SetActiveMaterial(OutOfBounds())
	if sb.ActiveMaterial() != Water() {
		t.Fatal("sentinel must never become the brush material")
	}
	if !slices.Equal(sb.MaterialNames(), []string{"sand", "stone", "water", "air"}) {
		t.Fatalf("unexpected material names %v", sb.MaterialNames())
	}
}

func TestEraseUsesAir(t *testing.T) {
	sb := New(6, 6)
	sb.SetBrushSize(6)
	sb.Paint(0, 0)
	sb.SetBrushSize(2)
	sb.Erase(2, 2)
	if got := countMaterial(sb, MaterialAir); got != 4 {
		t.Fatalf("expected 4 erased cells, got %d", got)
	}
}

func TestCellsMirrorsMaterials(t *testing.T) {
	sb := New(3, 2)
	sb.Set(0, 0, Sand())
	sb.Set(1, 0, Water())
	sb.Set(2, 1, Stone())
	want := []uint8{
		uint8(MaterialSand), uint8(MaterialWater), uint8(MaterialAir),
		uint8(MaterialAir), uint8(MaterialAir), uint8(MaterialStone),
	}
	if got := sb.Cells(); !slices.Equal(got, want) {
		t.Fatalf("Cells() = %v, want %v", got, want)
	}
	palette := sb.Palette()
	if palette[MaterialWater] != MaterialColor(MaterialWater) || palette[MaterialAir] != Background {
		t.Fatal("palette must be indexed by material")
	}
}

func TestInspect(t *testing.T) {
	sb := New(3, 3)
	sb.Set(1, 1, Water())
	desc, ok := sb.Inspect(1, 1)
	if !ok || desc != "(1,1) water density=1 phase=liquid temp=20" {
		t.Fatalf("Inspect(1,1) = %q, %v", desc, ok)
	}
	if _, ok := sb.Inspect(3, 0); ok {
		t.Fatal("Inspect off-grid must fail")
	}
}

func TestParametersReflectState(t *testing.T) {
	sb := New(8, 8)
	sb.SelectMaterial("stone")
	if !sb.SetIntParameter("brush_size", 42) {
		t.Fatal("brush_size should be settable")
	}
	if sb.BrushSize() != MaxBrushSize {
		t.Fatalf("brush_size parameter must clamp, got %d", sb.BrushSize())
	}
	if sb.SetIntParameter("unknown", 1) {
		t.Fatal("unknown keys must be rejected")
	}
	snap := sb.Parameters()
	if p, ok := snap.Lookup("material"); !ok || p.Value != "stone" {
		t.Fatalf("material parameter = %+v", p)
	}
	if p, ok := snap.Lookup("brush_size"); !ok || p.Value != "10" {
		t.Fatalf("brush_size parameter = %+v", p)
	}
	controls := sb.ParameterControls()
	if len(controls) != 1 || controls[0].Clamp(0) != MinBrushSize {
		t.Fatalf("unexpected controls %+v", controls)
	}
}

func TestPlaceAtSlackColumnIsDropped(t *testing.T) {
	sb := New(20, 10)
	sb.SetBrushSize(1)
	col, row, ok := core.PointerToGrid(80, 0, 4, 20, 10)
	if !ok {
		t.Fatal("slack column should be accepted by the mapping")
	}
	sb.Place(col, row)
	if countMaterial(sb, MaterialSand) != 0 {
		t.Fatal("placement at the slack column must be dropped")
	}
}

func TestBufferIsACopy(t *testing.T) {
	sb := New(4, 4)
	buf := sb.Buffer()
	buf[0] = Stone()
	mustMaterial(t, sb, 0, 0, MaterialAir)
}
