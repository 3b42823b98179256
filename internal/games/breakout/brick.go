package breakout

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/tui-breakout/internal/core"
)

// ErrDegenerateGrid is returned when a grid has no rows or no columns.
var ErrDegenerateGrid = errors.New("breakout: grid needs at least one row and one column")

// BrickKind selects what happens to the round when a brick breaks.
type BrickKind int

const (
	KindNormal BrickKind = iota // score only
	KindUpper                   // lifts Easy to Normal
	KindTop                     // lifts any tier to Hard
)

func (k BrickKind) String() string {
	switch k {
	case KindNormal:
		return "normal"
	case KindUpper:
		return "upper"
	case KindTop:
		return "top"
	default:
		return "unknown"
	}
}

// Brick is one destructible cell.
type Brick struct {
	core.Instance
	Kind  BrickKind
	Score uint64
}

// OnHit applies the brick's score and difficulty effect to the round.
func (b *Brick) OnHit(s *RoundState) {
	s.AddScore(b.Score)
	switch b.Kind {
	case KindUpper:
		s.Escalate(Normal)
	case KindTop:
		s.Escalate(Hard)
	}
}

// Cell addresses a grid position. Row 0 is the lowest row.
type Cell struct {
	Row, Col int
}

// Face is the side of a box a moving point crossed.
type Face int

// Faces are listed in the order Instance.Edges returns them.
const (
	FaceBottom Face = iota
	FaceTop
	FaceLeft
	FaceRight
)

func (f Face) String() string {
	switch f {
	case FaceBottom:
		return "bottom"
	case FaceTop:
		return "top"
	case FaceLeft:
		return "left"
	case FaceRight:
		return "right"
	default:
		return "unknown"
	}
}

// Normal returns the outward unit normal of the face.
func (f Face) Normal() core.Vec2 {
	switch f {
	case FaceBottom:
		return core.V(0, -1)
	case FaceTop:
		return core.V(0, 1)
	case FaceLeft:
		return core.V(-1, 0)
	default:
		return core.V(1, 0)
	}
}

// Hit describes a brick struck by a swept segment.
type Hit struct {
	Cell  Cell
	Face  Face
	R     float32 // fraction of the segment travelled before contact
	Brick Brick   // the brick as it was when struck
}

// GridSpec is the layout of a brick grid in world units.
type GridSpec struct {
	Rows       int
	Cols       int
	TopMargin  float32   // gap between the arena top and the highest row
	CellMargin core.Vec2 // gap between neighbouring cells
	CellSize   core.Vec2
}

// Factory builds the brick for a cell, or returns nil to leave the cell
// empty for the whole round. It is called exactly once per cell.
type Factory func(cell Cell, center, size core.Vec2) *Brick

// Grid is a fixed arrangement of optional bricks.
type Grid struct {
	rows, cols int
	cells      [][]*Brick // [row][col]
	live       int
}

// NewGrid lays out a grid centered horizontally in arena with its top row
// TopMargin below the arena top. Rows are built bottom-up, columns left to
// right.
func NewGrid(spec GridSpec, arena core.Vec2, factory Factory) (*Grid, error) {
	if spec.Rows < 1 || spec.Cols < 1 {
		return nil, fmt.Errorf("%w: got %dx%d", ErrDegenerateGrid, spec.Rows, spec.Cols)
	}

	size, gap := spec.CellSize, spec.CellMargin
	height := float32(spec.Rows)*size.Y() + float32(spec.Rows-1)*gap.Y()
	width := float32(spec.Cols)*size.X() + float32(spec.Cols-1)*gap.X()
	bottom := arena.Y() - (spec.TopMargin + height)
	left := (arena.X() - width) / 2

	g := &Grid{rows: spec.Rows, cols: spec.Cols, cells: make([][]*Brick, spec.Rows)}
	for row := range spec.Rows {
		g.cells[row] = make([]*Brick, spec.Cols)
		y := bottom + float32(row)*(gap.Y()+size.Y()) + size.Y()/2
		for col := range spec.Cols {
			x := left + float32(col)*(gap.X()+size.X()) + size.X()/2
			if factory == nil {
				continue
			}
			b := factory(Cell{Row: row, Col: col}, core.V(x, y), size)
			if b == nil {
				continue
			}
			g.cells[row][col] = b
			g.live++
		}
	}
	return g, nil
}

// Rows returns the number of rows.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of columns.
func (g *Grid) Cols() int { return g.cols }

// Count returns the number of bricks still standing.
func (g *Grid) Count() int { return g.live }

// At returns the brick in cell, or nil if the cell is empty.
func (g *Grid) At(c Cell) *Brick {
	if c.Row < 0 || c.Row >= g.rows || c.Col < 0 || c.Col >= g.cols {
		return nil
	}
	return g.cells[c.Row][c.Col]
}

// Collide sweeps path through the grid in row-major order. The first brick
// the path crosses is broken: its hit hook runs against state, it is
// removed, and the crossed face is reported. Within one brick the face
// with the smallest travel fraction wins; on equal fractions the earlier
// face in bottom, top, left, right order is kept.
func (g *Grid) Collide(path core.Segment, state *RoundState) (Hit, bool) {
	for row := range g.rows {
		for col, b := range g.cells[row] {
			if b == nil {
				continue
			}
			face, r, ok := sweep(path, b.Instance)
			if !ok {
				continue
			}
			hit := Hit{Cell: Cell{Row: row, Col: col}, Face: face, R: r, Brick: *b}
			b.OnHit(state)
			g.cells[row][col] = nil
			g.live--
			return hit, true
		}
	}
	return Hit{}, false
}

// sweep finds the earliest face of box crossed by path.
func sweep(path core.Segment, box core.Instance) (Face, float32, bool) {
	best, bestR, found := FaceBottom, float32(0), false
	for i, edge := range box.Edges() {
		r, s, ok := core.SegmentIntersect(path.A, path.B, edge.A, edge.B)
		if !ok || !core.InUnit(r) || !core.InUnit(s) {
			continue
		}
		if !found || r < bestR {
			best, bestR, found = Face(i), r, true
		}
	}
	return best, bestR, found
}

// AppendDrawables appends every standing brick in row-major order.
func (g *Grid) AppendDrawables(dst []core.Drawable) []core.Drawable {
	for _, row := range g.cells {
		for _, b := range row {
			if b != nil {
				dst = append(dst, b.Drawable())
			}
		}
	}
	return dst
}
