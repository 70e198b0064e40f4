package bricker

import (
	"fmt"
	"unicode/utf8"

	"github.com/vovakirdan/tui-bricker/internal/core"
	"github.com/vovakirdan/tui-bricker/internal/engine"
)

// Brick looks by row. Alternate columns use the second glyph so that
// neighbouring bricks stay apart on narrow terminals.
var (
	brickGlyphs = [2]rune{'█', '▓'}
	brickColors = []core.Color{
		core.ColorRed, core.ColorOrange, core.ColorYellow, core.ColorGreen,
		core.ColorCyan, core.ColorBlue, core.ColorMagenta, core.ColorBrightRed,
	}
)

func styleBrick(b *Brick, slot Slot) {
	body := b.Body()
	body.Glyph = brickGlyphs[slot.Col%2]
	body.Color = brickColors[slot.Row%len(brickColors)]
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.screenTooSmall {
		dst.DrawTextCentered(dst.Height()/2-1, "Window too small")
		dst.DrawTextCentered(dst.Height()/2+1, fmt.Sprintf("Need %dx%d", minScreenW, minScreenH))
		return
	}

	window := engine.Viewport{Size: engine.NewVec2(g.cfg.Window.Width, g.cfg.Window.Height)}
	world := window
	if g.camera != nil {
		world = g.camera.Viewport()
	}
	g.objects.Render(dst, world, window)

	g.renderHUD(dst)
	g.renderOverlay(dst)
}

// renderHUD draws score and bricks left in the bottom-right corner.
func (g *Game) renderHUD(dst *core.Screen) {
	hud := fmt.Sprintf("Score: %d  Bricks: %d", g.score(), g.bricks.Value())
	if g.camera != nil {
		hud = "[cam] " + hud
	}
	dst.DrawTextColored(dst.Width()-utf8.RuneCountInString(hud)-1, dst.Height()-1, hud, core.ColorGray)
}

func (g *Game) renderOverlay(dst *core.Screen) {
	switch g.state {
	case StatePaused:
		drawCenteredBox(dst, "PAUSED", "Press P to resume")
	case StateOver:
		title := "You Lost!"
		if g.outcome == core.OutcomeWin {
			title = "You Won!"
		}
		drawCenteredBox(dst, title, fmt.Sprintf("Score: %d  |  Play again? [y/n]", g.score()))
	}
}

// drawCenteredBox draws a centered message box.
func drawCenteredBox(dst *core.Screen, title, subtitle string) {
	titleW := utf8.RuneCountInString(title)
	subW := utf8.RuneCountInString(subtitle)

	boxW := max(titleW, subW) + 4
	boxH := 5
	boxX := (dst.Width() - boxW) / 2
	boxY := (dst.Height() - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))
	dst.DrawTextColored(boxX+(boxW-titleW)/2, boxY+1, title, core.ColorBrightYellow)
	dst.DrawHLine(boxX+1, boxY+2, boxW-2, '─')
	dst.DrawText(boxX+(boxW-subW)/2, boxY+3, subtitle)
}
