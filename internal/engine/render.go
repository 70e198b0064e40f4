package engine

import (
	"math"

	"github.com/vovakirdan/tui-bricker/internal/core"
)

// Render draws every visible object onto dst. World layers are projected
// through world; the UI layer always uses ui.
func (c *Collection) Render(dst *core.Screen, world, ui Viewport) {
	for l := range layerCount {
		view := world
		if l == LayerUI {
			view = ui
		}
		for _, obj := range c.layers[l] {
			DrawBody(dst, obj.Body(), view)
		}
	}
}

// DrawBody draws one body. Any body that is on screen covers at least one cell.
func DrawBody(dst *core.Screen, b *Body, view Viewport) {
	if b.Hidden || view.Size.X <= 0 || view.Size.Y <= 0 {
		return
	}
	cols, rows := dst.Width(), dst.Height()

	if b.Text != "" {
		x, y := view.Project(b.Pos, cols, rows)
		dst.DrawTextColored(x, y, b.Text, b.Color)
		return
	}
	if b.Glyph == 0 {
		return
	}

	// Rects snap to the nearest cell edges so stacked rows do not overdraw.
	sx := float64(cols) / view.Size.X
	sy := float64(rows) / view.Size.Y
	x0 := int(math.Round((b.Pos.X - view.Origin.X) * sx))
	y0 := int(math.Round((b.Pos.Y - view.Origin.Y) * sy))
	x1 := max(int(math.Round((b.Pos.X+b.Size.X-view.Origin.X)*sx)), x0+1)
	y1 := max(int(math.Round((b.Pos.Y+b.Size.Y-view.Origin.Y)*sy)), y0+1)

	dst.DrawRectColored(core.NewRect(x0, y0, x1-x0, y1-y0), b.Glyph, b.Color)
}
