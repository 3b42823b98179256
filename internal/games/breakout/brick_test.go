package breakout

import (
	"errors"
	"math"
	"testing"

	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/core"
)

func near(a, b float32) bool {
	return math.Abs(float64(a-b)) < 1e-3
}

func nearVec(a, b core.Vec2) bool {
	return near(a.X(), b.X()) && near(a.Y(), b.Y())
}

func mustLayout(t *testing.T, name string) config.GridConfig {
	t.Helper()
	g, ok := config.DefaultBreakoutConfig().Layout(name)
	if !ok {
		t.Fatalf("no %s layout in the defaults", name)
	}
	return g
}

// plainBricks puts a brick worth score in every cell.
func plainBricks(kind BrickKind, score uint64) Factory {
	return func(_ Cell, center, size core.Vec2) *Brick {
		return &Brick{
			Instance: core.Instance{Position: center, Size: size, Color: core.White},
			Kind:     kind,
			Score:    score,
		}
	}
}

func TestNewGridLayout(t *testing.T) {
	spec := GridSpec{
		Rows:       2,
		Cols:       3,
		TopMargin:  10,
		CellMargin: core.V(2, 4),
		CellSize:   core.V(10, 5),
	}

	var calls []Cell
	centers := map[Cell]core.Vec2{}
	g, err := NewGrid(spec, core.V(100, 100), func(c Cell, center, size core.Vec2) *Brick {
		calls = append(calls, c)
		centers[c] = center
		if size != spec.CellSize {
			t.Errorf("factory got size %v, expected %v", size, spec.CellSize)
		}
		return plainBricks(KindNormal, 1)(c, center, size)
	})
	if err != nil {
		t.Fatalf("NewGrid() error = %v", err)
	}

	if len(calls) != 6 {
		t.Fatalf("factory called %d times, expected 6", len(calls))
	}
	for i, c := range calls {
		want := Cell{Row: i / 3, Col: i % 3}
		if c != want {
			t.Errorf("call %d = %+v, expected %+v", i, c, want)
		}
	}

	// height 14, bottom row starts at 100 - (10 + 14) = 76; width 34 centered at 33.
	tests := []struct {
		cell Cell
		want core.Vec2
	}{
		{Cell{0, 0}, core.V(38, 78.5)},
		{Cell{0, 2}, core.V(62, 78.5)},
		{Cell{1, 1}, core.V(50, 87.5)},
	}
	for _, tc := range tests {
		if got := centers[tc.cell]; !nearVec(got, tc.want) {
			t.Errorf("center of %+v = %v, expected %v", tc.cell, got, tc.want)
		}
	}
	if g.Count() != 6 || g.Rows() != 2 || g.Cols() != 3 {
		t.Errorf("grid = %dx%d with %d bricks", g.Rows(), g.Cols(), g.Count())
	}
}

func TestNewGridDegenerate(t *testing.T) {
	for _, spec := range []GridSpec{{Rows: 0, Cols: 4}, {Rows: 3, Cols: 0}, {Rows: -1, Cols: -1}} {
		if _, err := NewGrid(spec, core.V(100, 100), plainBricks(KindNormal, 1)); !errors.Is(err, ErrDegenerateGrid) {
			t.Errorf("NewGrid(%+v) error = %v, expected ErrDegenerateGrid", spec, err)
		}
	}
}

func TestNewGridGaps(t *testing.T) {
	spec := GridSpec{Rows: 6, Cols: 18, TopMargin: 64, CellMargin: core.V(2, 16), CellSize: core.V(32, 16)}
	g, err := NewGrid(spec, core.V(640, 640), Striped.Build(spec.Rows, spec.Cols, true))
	if err != nil {
		t.Fatal(err)
	}
	if g.Count() != 4*18 {
		t.Errorf("Count() = %d, expected %d", g.Count(), 4*18)
	}
	for col := range spec.Cols {
		if g.At(Cell{Row: 0, Col: col}) != nil || g.At(Cell{Row: 3, Col: col}) != nil {
			t.Fatalf("rows 0 and 3 should be empty")
		}
	}
	if b := g.At(Cell{Row: 5, Col: 0}); b == nil || b.Score != 500 {
		t.Errorf("row 5 brick = %+v, expected score 500", b)
	}
}

// singleBrick is a 20x10 brick centered at (50, 50) in a 100x100 arena.
func singleBrick(t *testing.T, kind BrickKind, score uint64) *Grid {
	t.Helper()
	spec := GridSpec{Rows: 1, Cols: 1, TopMargin: 45, CellSize: core.V(20, 10)}
	g, err := NewGrid(spec, core.V(100, 100), plainBricks(kind, score))
	if err != nil {
		t.Fatal(err)
	}
	if b := g.At(Cell{}); b == nil || !nearVec(b.Position, core.V(50, 50)) {
		t.Fatalf("brick not at (50, 50): %+v", b)
	}
	return g
}

func TestGridCollideFaces(t *testing.T) {
	tests := []struct {
		name string
		path core.Segment
		face Face
		r    float32
	}{
		{"from below", core.Segment{A: core.V(50, 30), B: core.V(50, 60)}, FaceBottom, 0.5},
		{"from above", core.Segment{A: core.V(50, 70), B: core.V(50, 50)}, FaceTop, 0.75},
		{"from the left", core.Segment{A: core.V(30, 50), B: core.V(50, 50)}, FaceLeft, 0.5},
		{"from the right", core.Segment{A: core.V(70, 48), B: core.V(55, 48)}, FaceRight, 10.0 / 15.0},
		{"diagonal into bottom", core.Segment{A: core.V(45, 40), B: core.V(55, 50)}, FaceBottom, 0.5},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := singleBrick(t, KindNormal, 100)
			var s RoundState
			hit, ok := g.Collide(tc.path, &s)
			if !ok {
				t.Fatal("Collide() found no hit")
			}
			if hit.Face != tc.face {
				t.Errorf("face = %v, expected %v", hit.Face, tc.face)
			}
			if !near(hit.R, tc.r) {
				t.Errorf("r = %v, expected %v", hit.R, tc.r)
			}
			if s.Score != 100 || g.Count() != 0 {
				t.Errorf("score = %d, count = %d after hit", s.Score, g.Count())
			}
		})
	}
}

func TestGridCollideMiss(t *testing.T) {
	g := singleBrick(t, KindNormal, 100)
	var s RoundState

	misses := []core.Segment{
		{A: core.V(50, 20), B: core.V(50, 40)}, // stops short
		{A: core.V(10, 10), B: core.V(20, 90)}, // passes to the side
		{A: core.V(50, 30), B: core.V(50, 30)}, // zero length
	}
	for _, path := range misses {
		if hit, ok := g.Collide(path, &s); ok {
			t.Errorf("Collide(%v) = %+v, expected a miss", path, hit)
		}
	}
	if g.Count() != 1 || s.Score != 0 {
		t.Errorf("a miss must not change the grid or score")
	}
}

func TestGridCollideExactlyOnce(t *testing.T) {
	g := singleBrick(t, KindNormal, 100)
	var s RoundState
	path := core.Segment{A: core.V(50, 30), B: core.V(50, 60)}

	if _, ok := g.Collide(path, &s); !ok {
		t.Fatal("first Collide() should hit")
	}
	if g.Count() != 0 || g.At(Cell{}) != nil {
		t.Fatal("brick should be removed after the hit")
	}
	for range 3 {
		if _, ok := g.Collide(path, &s); ok {
			t.Fatal("a broken brick was hit again")
		}
	}
	if s.Score != 100 {
		t.Errorf("score = %d, expected 100", s.Score)
	}
}

func TestGridCollideRowMajorOrder(t *testing.T) {
	// Two stacked bricks; a path from above crosses both. The lower row is
	// scanned first, so it is the one reported.
	spec := GridSpec{Rows: 2, Cols: 1, TopMargin: 20, CellMargin: core.V(0, 10), CellSize: core.V(20, 10)}
	g, err := NewGrid(spec, core.V(100, 100), plainBricks(KindNormal, 10))
	if err != nil {
		t.Fatal(err)
	}
	var s RoundState
	hit, ok := g.Collide(core.Segment{A: core.V(50, 95), B: core.V(50, 30)}, &s)
	if !ok {
		t.Fatal("expected a hit")
	}
	if hit.Cell != (Cell{Row: 0, Col: 0}) || hit.Face != FaceTop {
		t.Errorf("hit = %+v, expected top face of row 0", hit)
	}
	if g.Count() != 1 || g.At(Cell{Row: 1}) == nil {
		t.Error("only the reported brick should break")
	}
}

func TestBrickOnHit(t *testing.T) {
	tests := []struct {
		name  string
		kind  BrickKind
		from  Difficulty
		want  Difficulty
		score uint64
	}{
		{"normal keeps tier", KindNormal, Easy, Easy, 100},
		{"upper lifts easy", KindUpper, Easy, Normal, 400},
		{"upper leaves normal", KindUpper, Normal, Normal, 400},
		{"upper never lowers", KindUpper, Hard, Hard, 400},
		{"top lifts easy", KindTop, Easy, Hard, 500},
		{"top lifts normal", KindTop, Normal, Hard, 500},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := NewRoundState(3, tc.from)
			s.Score = 7
			b := Brick{Kind: tc.kind, Score: tc.score}
			b.OnHit(&s)
			if s.Difficulty != tc.want {
				t.Errorf("tier = %v, expected %v", s.Difficulty, tc.want)
			}
			if s.Score != 7+tc.score {
				t.Errorf("score = %d, expected %d", s.Score, 7+tc.score)
			}
		})
	}
}

func TestFaceNormal(t *testing.T) {
	want := map[Face]core.Vec2{
		FaceBottom: core.V(0, -1),
		FaceTop:    core.V(0, 1),
		FaceLeft:   core.V(-1, 0),
		FaceRight:  core.V(1, 0),
	}
	for f, n := range want {
		if f.Normal() != n {
			t.Errorf("%v.Normal() = %v, expected %v", f, f.Normal(), n)
		}
	}
}

func TestTieredLayout(t *testing.T) {
	spec := GridSpecFromConfig(mustLayout(t, "tiered"))
	g, err := NewGrid(spec, core.V(640, 640), Tiered.Build(spec.Rows, spec.Cols, true))
	if err != nil {
		t.Fatal(err)
	}
	if g.Count() != 120 {
		t.Fatalf("Count() = %d, expected 120", g.Count())
	}

	kinds := []BrickKind{KindNormal, KindNormal, KindNormal, KindUpper, KindTop}
	for row, kind := range kinds {
		b := g.At(Cell{Row: row, Col: 5})
		if b.Kind != kind || b.Score != 100*uint64(row+1) {
			t.Errorf("row %d: kind %v score %d", row, b.Kind, b.Score)
		}
	}

	fixed, _ := NewGrid(spec, core.V(640, 640), Tiered.Build(spec.Rows, spec.Cols, false))
	if b := fixed.At(Cell{Row: 4}); b.Kind != KindNormal {
		t.Errorf("without escalation the top row should be normal, got %v", b.Kind)
	}

	// The layout fits inside the arena.
	first, last := g.At(Cell{Row: 0, Col: 0}), g.At(Cell{Row: 4, Col: 23})
	if first.Min().X() < 0 || last.Max().X() > 640 || last.Max().Y() > 640-32+0.01 {
		t.Errorf("layout spills out of the arena: %v .. %v", first.Min(), last.Max())
	}
}
