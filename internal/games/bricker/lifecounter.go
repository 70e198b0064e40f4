package bricker

import (
	"strconv"

	"github.com/vovakirdan/tui-bricker/internal/core"
	"github.com/vovakirdan/tui-bricker/internal/engine"
)

// Scene adds and removes objects at the end of the frame.
type Scene interface {
	AddObject(obj engine.Object, layer engine.Layer)
	RemoveObject(obj engine.Object, layer engine.Layer) bool
}

// GraphicLifeCounter shows one heart icon per life, up to max icons.
// It adds or removes at most one icon per frame.
type GraphicLifeCounter struct {
	engine.BaseObject
	scene  Scene
	lives  *engine.Counter
	icons  []*engine.BaseObject
	origin engine.Vec2
	size   float64
	shift  float64
	max    int
}

// NewGraphicLifeCounter creates the counter and its initial icons. The first
// icon's top-left corner is origin; each next one is shift units to the right.
func NewGraphicLifeCounter(scene Scene, lives *engine.Counter, origin engine.Vec2, size, shift float64, maxIcons int) *GraphicLifeCounter {
	g := &GraphicLifeCounter{
		scene:  scene,
		lives:  lives,
		origin: origin,
		size:   size,
		shift:  shift,
		max:    maxIcons,
	}
	for g.Icons() < min(lives.Value(), maxIcons) {
		g.addIcon()
	}
	return g
}

// Icons returns the number of hearts currently shown.
func (g *GraphicLifeCounter) Icons() int { return len(g.icons) }

func (g *GraphicLifeCounter) Update(float64) {
	switch n := g.lives.Value(); {
	case n < len(g.icons):
		last := g.icons[len(g.icons)-1]
		g.icons = g.icons[:len(g.icons)-1]
		g.scene.RemoveObject(last, engine.LayerUI)
	case n > len(g.icons) && len(g.icons) < g.max:
		g.addIcon()
	}
}

func (g *GraphicLifeCounter) addIcon() {
	pos := g.origin.Add(engine.NewVec2(g.shift*float64(len(g.icons)), 0))
	icon := engine.NewBaseObject(pos, engine.NewVec2(g.size, g.size))
	body := icon.Body()
	body.Tag = TagLifeIcon
	body.Glyph = HeartChar
	body.Color = core.ColorRed
	g.icons = append(g.icons, &icon)
	g.scene.AddObject(&icon, engine.LayerUI)
}

// Life count thresholds for the numeric display colors.
const (
	livesMedium = 2
	livesLow    = 1
)

// NumericLifeCounter shows the number of lives as colored text right after
// the heart icons.
type NumericLifeCounter struct {
	engine.BaseObject
	lives     *engine.Counter
	heartSize float64
	heartGap  float64
	y         float64
}

// NewNumericLifeCounter creates the text display on row y.
func NewNumericLifeCounter(lives *engine.Counter, heartSize, heartGap, y float64) *NumericLifeCounter {
	n := &NumericLifeCounter{
		BaseObject: engine.NewBaseObject(engine.NewVec2Zero(), engine.NewVec2(heartSize, heartSize)),
		lives:      lives,
		heartSize:  heartSize,
		heartGap:   heartGap,
		y:          y,
	}
	n.Body().Tag = TagLifeText
	n.refresh()
	return n
}

func (n *NumericLifeCounter) Update(float64) {
	n.refresh()
}

func (n *NumericLifeCounter) refresh() {
	v := n.lives.Value()
	body := n.Body()
	body.Text = strconv.Itoa(v)
	switch v {
	case livesMedium:
		body.Color = core.ColorYellow
	case livesLow:
		body.Color = core.ColorRed
	default:
		body.Color = core.ColorGreen
	}
	body.Pos = engine.NewVec2((n.heartSize+n.heartGap)*float64(v), n.y)
}
