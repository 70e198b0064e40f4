package bricker

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/tui-bricker/internal/config"
	"github.com/vovakirdan/tui-bricker/internal/engine"
)

// Effect is one side effect a brick may trigger when it is destroyed.
type Effect int

const (
	EffectPuckBalls   Effect = iota + 1 // Release extra balls from the brick
	EffectExtraPaddle                   // Spawn a temporary second paddle
	EffectCamera                        // Zoom out and follow the ball for a while
	EffectHeart                         // Drop an extra life
)

func (e Effect) String() string {
	switch e {
	case EffectPuckBalls:
		return "puck"
	case EffectExtraPaddle:
		return "paddle"
	case EffectCamera:
		return "camera"
	case EffectHeart:
		return "heart"
	default:
		return "unknown"
	}
}

// Env is the part of the running game that strategies and entities act on.
type Env interface {
	// RemoveObject takes obj out of play at the end of the frame.
	RemoveObject(obj engine.Object, layer engine.Layer) bool
	// SpawnPucks releases the configured number of puck balls centered on center.
	SpawnPucks(center engine.Vec2, size float64)
	// SpawnSecondaryPaddle adds the second paddle unless one is alive.
	SpawnSecondaryPaddle() bool
	// FollowBall attaches the follow camera if collider is the main ball
	// and no camera is active.
	FollowBall(collider engine.Object) bool
	// DropHeart spawns a falling heart centered on center.
	DropHeart(center engine.Vec2)
}

// Strategy decides what happens when a brick is hit. The brick is always
// removed and counted; Effects then run in order.
type Strategy struct {
	Effects []Effect
}

// OnCollision applies the strategy to a brick hit by other.
func (s Strategy) OnCollision(env Env, brick *Brick, other engine.Object, bricks *engine.Counter) {
	center := brick.Body().Center()
	env.RemoveObject(brick, engine.LayerStatic)
	bricks.Decrement()

	for _, e := range s.Effects {
		switch e {
		case EffectPuckBalls:
			env.SpawnPucks(center, brick.Body().Size.Y)
		case EffectExtraPaddle:
			env.SpawnSecondaryPaddle()
		case EffectCamera:
			env.FollowBall(other)
		case EffectHeart:
			env.DropHeart(center)
		}
	}
}

func (s Strategy) String() string {
	if len(s.Effects) == 0 {
		return "remove"
	}
	names := make([]string, len(s.Effects))
	for i, e := range s.Effects {
		names[i] = e.String()
	}
	return "remove+" + strings.Join(names, "+")
}

// Factory choices, in draw order. The first five map onto a single effect
// (or none); the last one builds a composite.
const (
	choiceRemove = iota
	choicePuck
	choicePaddle
	choiceCamera
	choiceHeart
	choiceComposite
	choiceCount
)

// StrategyNames lists the names accepted by ParseStrategy.
var StrategyNames = []string{"none", "puck", "paddle", "camera", "heart", "composite"}

// ParseStrategy maps a strategy name to a factory choice. The empty string
// means random selection and returns -1.
func ParseStrategy(name string) (int, error) {
	if name == "" || name == "random" {
		return -1, nil
	}
	for i, n := range StrategyNames {
		if strings.EqualFold(n, name) {
			return i, nil
		}
	}
	return 0, fmt.Errorf("bricker: unknown strategy %q (want one of %s)", name, strings.Join(StrategyNames, ", "))
}

// StrategyFactory builds one strategy per brick.
type StrategyFactory struct {
	rng           *SimpleRNG
	force         int
	compositeBase int
	compositeMax  int
}

// NewStrategyFactory creates a factory. force is a choice from ParseStrategy,
// or -1 for uniform random selection. Composite sizes are capped at
// config.MaxCompositeEffects.
func NewStrategyFactory(rng *SimpleRNG, force, compositeBase, compositeMax int) *StrategyFactory {
	base := min(compositeBase, config.MaxCompositeEffects)
	return &StrategyFactory{
		rng:           rng,
		force:         force,
		compositeBase: base,
		compositeMax:  min(max(base, compositeMax), config.MaxCompositeEffects),
	}
}

// Next returns the strategy for the next brick.
func (f *StrategyFactory) Next() Strategy {
	choice := f.force
	if choice < 0 {
		choice = f.rng.Intn(choiceCount)
	}
	if choice == choiceComposite {
		return Strategy{Effects: f.composite()}
	}
	if choice == choiceRemove {
		return Strategy{}
	}
	return Strategy{Effects: []Effect{Effect(choice)}}
}

// composite draws effects until it holds compositeBase of them. Drawing the
// composite choice again adds nothing but raises the target to compositeMax.
func (f *StrategyFactory) composite() []Effect {
	target := f.compositeBase
	effects := make([]Effect, 0, f.compositeMax)
	for len(effects) < target {
		choice := f.rng.Intn(choiceCount-1) + 1
		if choice == choiceComposite {
			target = f.compositeMax
			continue
		}
		effects = append(effects, Effect(choice))
	}
	return effects
}
