package ski

import (
	"fmt"
	"math"

	"github.com/vovakirdan/tui-ski/internal/config"
	"github.com/vovakirdan/tui-ski/internal/core"
)

// yetiSpawnLead is how far above the skier, in world units, the yeti enters
// the slope when it wakes: just beyond the top of a typical viewport.
const yetiSpawnLead = 300.0

// yetiStrideTicks is how many simulation ticks each running pose is held.
const yetiStrideTicks = 8

// Yeti is the pursuer. It sleeps until the skier has covered enough ground,
// then homes in at a fixed pace. Catching the skier ends the run.
type Yeti struct {
	X, Y float64

	speed        float64
	triggerScore int

	active bool
	caught bool
	stride int

	atlas *Atlas
}

// newYeti creates a dormant yeti.
func newYeti(atlas *Atlas, cfg config.SkiYeti) *Yeti {
	return &Yeti{
		speed:        cfg.Speed,
		triggerScore: cfg.TriggerScore,
		atlas:        atlas,
	}
}

// Active reports whether the chase is on.
func (y *Yeti) Active() bool {
	return y.active
}

// Caught reports whether the yeti has reached the skier.
func (y *Yeti) Caught() bool {
	return y.caught
}

// Update advances the chase one tick. It runs strictly after the skier's
// update so the pursuit homes in on this frame's position, and it calls
// Kill on the skier the moment they touch.
func (y *Yeti) Update(tick, score int, p *Player) {
	if y.caught {
		return
	}
	if !y.active {
		if score < y.triggerScore {
			return
		}
		y.wake(p)
	}

	if tick%yetiStrideTicks == 0 {
		y.stride = (y.stride + 1) % 2
	}

	y.chase(p)

	yb, ok := y.Bounds()
	if !ok {
		return
	}
	pb, ok := p.Bounds()
	if !ok {
		return
	}
	if yb.Intersects(pb) {
		y.caught = true
		p.Kill()
	}
}

// wake drops the yeti onto the slope straight uphill of the skier. Skiers
// outrun it downhill or die trying.
func (y *Yeti) wake(p *Player) {
	y.active = true
	y.X = p.X
	y.Y = p.Y - yetiSpawnLead
}

// chase moves one tick's worth of distance along the straight line to the
// skier, overshooting nothing when already close.
func (y *Yeti) chase(p *Player) {
	dx := p.X - y.X
	dy := p.Y - y.Y
	dist := math.Hypot(dx, dy)
	if dist == 0 {
		return
	}
	step := math.Min(y.speed, dist)
	y.X += dx / dist * step
	y.Y += dy / dist * step
}

// spriteKey returns the atlas entry for the yeti's current pose.
func (y *Yeti) spriteKey() string {
	if y.caught {
		return "yeti.eat"
	}
	frames := y.atlas.FrameCount("yeti.run")
	if frames == 0 {
		return "yeti.eat"
	}
	return fmt.Sprintf("yeti.run.%d", y.stride%frames)
}

// Bounds returns the yeti's collision box, the full sprite rect. ok is
// false when the pose has no sprite.
func (y *Yeti) Bounds() (core.RectF, bool) {
	spr, ok := y.atlas.Get(y.spriteKey())
	if !ok {
		return core.RectF{}, false
	}
	return core.NewRectF(y.X, y.Y, spr.WorldW(), spr.WorldH()), true
}
