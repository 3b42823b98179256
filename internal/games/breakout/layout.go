package breakout

import (
	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/core"
)

// Layout is a named brick pattern.
type Layout struct {
	ID    string // registry and config key
	Name  string // config layouts key
	Title string
	// Build returns the brick factory for a grid of rows x cols. With
	// escalate off every brick is KindNormal.
	Build func(rows, cols int, escalate bool) Factory
}

// Layouts known to the game.
var (
	Tiered = Layout{
		ID:    "breakout",
		Name:  "tiered",
		Title: "Breakout",
		Build: tieredBricks,
	}
	Striped = Layout{
		ID:    "breakout_striped",
		Name:  "striped",
		Title: "Breakout (Striped)",
		Build: stripedBricks,
	}
)

// tieredBricks fills every cell. Higher rows are worth more, the second
// row from the top lifts Easy to Normal and the top row lifts to Hard.
func tieredBricks(rows, cols int, escalate bool) Factory {
	return func(c Cell, center, size core.Vec2) *Brick {
		kind := KindNormal
		if escalate {
			switch {
			case c.Row >= rows-1:
				kind = KindTop
			case c.Row >= rows-2:
				kind = KindUpper
			}
		}
		r := float32(c.Row) / float32(rows)
		return &Brick{
			Instance: core.Instance{
				Position: center,
				Size:     size,
				Color:    core.RGBA{1 - r, float32(c.Col) / float32(cols), r, 1},
			},
			Kind:  kind,
			Score: 100 * uint64(c.Row+1),
		}
	}
}

// stripedBricks leaves every third row empty, starting with the bottom one.
func stripedBricks(rows, cols int, _ bool) Factory {
	return func(c Cell, center, size core.Vec2) *Brick {
		if c.Row%3 == 0 {
			return nil
		}
		r := float32(c.Row) / float32(rows)
		return &Brick{
			Instance: core.Instance{
				Position: center,
				Size:     size,
				Color:    core.RGBA{r, 1 - r, float32(c.Col) / float32(cols), 1},
			},
			Kind:  KindNormal,
			Score: 100 * uint64(c.Row),
		}
	}
}

// GridSpecFromConfig converts a configured layout to world units.
func GridSpecFromConfig(g config.GridConfig) GridSpec {
	return GridSpec{
		Rows:       g.Rows,
		Cols:       g.Cols,
		TopMargin:  g.TopMargin,
		CellMargin: core.V(g.CellMargin.X, g.CellMargin.Y),
		CellSize:   core.V(g.CellSize.X, g.CellSize.Y),
	}
}

// NewSetup prepares a round of layout l from cfg.
func NewSetup(l Layout, cfg config.BreakoutConfig, sink core.AudioSink) (Setup, error) {
	t, err := TuningFromConfig(cfg)
	if err != nil {
		return Setup{}, err
	}
	gc, ok := cfg.Layout(l.Name)
	if !ok {
		gc = config.DefaultBreakoutConfig().Layouts[l.Name]
	}
	spec := GridSpecFromConfig(gc)
	return Setup{
		Tuning:  t,
		Grid:    spec,
		Factory: l.Build(spec.Rows, spec.Cols, t.Escalate),
		Sink:    sink,
	}, nil
}
