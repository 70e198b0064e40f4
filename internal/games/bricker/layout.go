package bricker

import (
	"fmt"
	"sort"
	"strings"

	"github.com/vovakirdan/tui-bricker/internal/config"
	"github.com/vovakirdan/tui-bricker/internal/engine"
)

// Layout is a named brick pattern.
//
//	'#' = brick
//	'.' = empty slot
type Layout struct {
	Name  string
	Title string
	Rows  []string
}

// Columns returns the width of the widest row.
func (l Layout) Columns() int {
	cols := 0
	for _, row := range l.Rows {
		cols = max(cols, len(row))
	}
	return cols
}

// Count returns the number of bricks in the layout.
func (l Layout) Count() int {
	n := 0
	for _, row := range l.Rows {
		n += strings.Count(row, "#")
	}
	return n
}

// Slot is the top-left position and size of one brick.
type Slot struct {
	Row, Col int
	Pos      engine.Vec2
	Size     engine.Vec2
}

// Slots places the layout's bricks in the window. Columns share the width
// between the side margins evenly.
func (l Layout) Slots(cfg config.BrickerConfig) []Slot {
	cols := l.Columns()
	if cols == 0 {
		return nil
	}
	b := cfg.Bricks
	width := (cfg.Window.Width-2*b.Left+b.ColumnGap)/float64(cols) - b.ColumnGap

	slots := make([]Slot, 0, l.Count())
	for r, row := range l.Rows {
		for c := range len(row) {
			if row[c] != '#' {
				continue
			}
			slots = append(slots, Slot{
				Row: r,
				Col: c,
				Pos: engine.NewVec2(
					b.Left+float64(c)*(width+b.ColumnGap),
					b.Top+float64(r)*(b.Height+b.RowGap),
				),
				Size: engine.NewVec2(width, b.Height),
			})
		}
	}
	return slots
}

// classicLayout is the full rows x columns grid.
func classicLayout(rows, cols int) Layout {
	lines := make([]string, rows)
	for i := range lines {
		lines[i] = strings.Repeat("#", cols)
	}
	return Layout{Name: "classic", Title: "Classic", Rows: lines}
}

var builtinLayouts = map[string]Layout{
	"pyramid": {
		Name:  "pyramid",
		Title: "Pyramid",
		Rows: []string{
			"...#...",
			"..###..",
			".#####.",
			"#######",
			"#######",
		},
	},
	"checker": {
		Name:  "checker",
		Title: "Checkerboard",
		Rows: []string{
			"#.#.#.#",
			".#.#.#.",
			"#.#.#.#",
			".#.#.#.",
			"#.#.#.#",
			".#.#.#.",
			"#.#.#.#",
			".#.#.#.",
		},
	},
	"diamond": {
		Name:  "diamond",
		Title: "Diamond",
		Rows: []string{
			"...#...",
			"..###..",
			".#####.",
			"#######",
			".#####.",
			"..###..",
			"...#...",
		},
	},
	"striped": {
		Name:  "striped",
		Title: "Striped",
		Rows: []string{
			"#######",
			".......",
			"#######",
			".......",
			"#######",
			".......",
			"#######",
		},
	},
	"invaders": {
		Name:  "invaders",
		Title: "Invaders",
		Rows: []string{
			"..#.#..",
			".#####.",
			"##.#.##",
			"#######",
			"#.#.#.#",
			".#...#.",
		},
	},
	"single": {
		Name:  "single",
		Title: "Single Brick",
		Rows:  []string{"...#..."},
	},
}

// LayoutNames returns all layout names, sorted, "classic" first.
func LayoutNames() []string {
	names := make([]string, 0, len(builtinLayouts)+1)
	for name := range builtinLayouts {
		names = append(names, name)
	}
	sort.Strings(names)
	return append([]string{"classic"}, names...)
}

// LayoutByName returns the named layout. "classic" (or "") builds the grid
// from the config's rows and columns.
func LayoutByName(name string, cfg config.BricksConfig) (Layout, error) {
	if name == "" || name == "classic" {
		return classicLayout(cfg.Rows, cfg.Columns), nil
	}
	l, ok := builtinLayouts[name]
	if !ok {
		return Layout{}, fmt.Errorf("bricker: unknown layout %q", name)
	}
	return l, nil
}
