package ski

import (
	"fmt"
	"math"

	"github.com/vovakirdan/tui-ski/internal/config"
	"github.com/vovakirdan/tui-ski/internal/core"
)

// PlayerState is the skier's movement state.
type PlayerState int

const (
	StateSkiing PlayerState = iota
	StateJumping
	StateCrashed
	StateDead
)

// String returns a human-readable name for the state.
func (s PlayerState) String() string {
	switch s {
	case StateSkiing:
		return "skiing"
	case StateJumping:
		return "jumping"
	case StateCrashed:
		return "crashed"
	case StateDead:
		return "dead"
	default:
		return "unknown"
	}
}

// diagonalNorm scales per-axis displacement on diagonal facings so the
// skier covers the same ground per tick as skiing straight down.
const diagonalNorm = math.Sqrt2

// Player is the skier: position, facing, movement state, and the collision
// rules that drive every state transition. All numbers are world units.
type Player struct {
	X, Y  float64
	Dir   Direction
	State PlayerState

	// Speed is the current pace in world units per tick. Zero while
	// crashed or dead.
	Speed float64

	// speedAtJump holds the pace at takeoff. Landing restores it, so a
	// jump neither gains nor loses speed.
	speedAtJump float64

	// lastSpeedUp remembers the score at which the ramp last fired. A
	// score parked on a threshold (the skier stopped on the exact frame
	// it crossed) must not ratchet the speed every tick.
	lastSpeedUp int

	startSpeed   float64
	sidestep     float64
	speedUpEvery int

	jump  *anim
	atlas *Atlas
}

// newPlayer creates a skier at the world origin, skiing straight down at
// the configured starting speed.
func newPlayer(atlas *Atlas, cfg config.SkiPlayer, jumpCfg config.SkiJump) *Player {
	p := &Player{
		Dir:          DirDown,
		State:        StateSkiing,
		Speed:        cfg.StartingSpeed,
		startSpeed:   cfg.StartingSpeed,
		sidestep:     cfg.Sidestep,
		speedUpEvery: cfg.SpeedUpEvery,
		atlas:        atlas,
	}
	p.jump = newAnim(jumpCfg.Frames, jumpCfg.TicksPerFrame, p.land)
	return p
}

// HandleInput applies one action to the state machine and reports whether
// the skier consumed it. Transitions happen inside this call: a crashed
// skier who receives a turn is upright again when the call returns.
func (p *Player) HandleInput(action core.Action) bool {
	if p.State == StateDead {
		return false
	}

	switch action {
	case core.ActionLeft:
		p.turn(DirLeft)
		return true

	case core.ActionRight:
		p.turn(DirRight)
		return true

	case core.ActionDown:
		// Point straight downhill. Locked mid-air and useless on the
		// ground while crashed.
		if p.State == StateSkiing {
			p.Dir = DirDown
		}
		return true

	case core.ActionUp:
		// Uphill shuffle, only from a stopped sideways stance. A jump
		// taken from a standstill stays horizontal, so it qualifies too.
		if p.State != StateCrashed && !p.Dir.HasDownward() {
			p.Y -= p.sidestep
		}
		return true

	case core.ActionJump:
		if p.State == StateSkiing {
			p.startJump()
		}
		return true
	}

	return false
}

// turn pivots the facing one step toward the requested side. At that side's
// extreme the press becomes a horizontal shuffle instead. From a crash any
// turn stands the skier back up facing that side at starting speed.
func (p *Player) turn(side Direction) {
	switch p.State {
	case StateJumping:
		// Facing is locked mid-air.

	case StateCrashed:
		p.State = StateSkiing
		p.Dir = side
		p.Speed = p.startSpeed

	case StateSkiing:
		if p.Dir == side {
			if side == DirLeft {
				p.X -= p.sidestep
			} else {
				p.X += p.sidestep
			}
			return
		}
		if side == DirLeft {
			p.Dir = p.Dir.TurnedLeft()
		} else {
			p.Dir = p.Dir.TurnedRight()
		}
	}
}

// startJump records the takeoff speed and begins the jump cycle. Jumps
// only start from skiing; mid-air ramps and jump presses are ignored by
// the callers.
func (p *Player) startJump() {
	p.speedAtJump = p.Speed
	p.State = StateJumping
	p.jump.Start()
}

// land finishes the jump cycle: back on the snow at takeoff speed. Runs as
// the jump animation's completion callback.
func (p *Player) land() {
	p.State = StateSkiing
	p.Speed = p.speedAtJump
}

// crash puts the skier down. Movement stops until a turn stands them up.
func (p *Player) crash() {
	p.State = StateCrashed
	p.Speed = 0
	p.jump.Stop()
}

// Kill is the terminal transition: no input, movement, or drawing
// afterward. Only the yeti calls it.
func (p *Player) Kill() {
	if p.State == StateDead {
		return
	}
	p.State = StateDead
	p.Speed = 0
	p.jump.Stop()
}

// Update advances the skier one tick: the speed ramp check, movement for
// the current facing, jump progression, then obstacle interaction. The
// ramp check also runs while crashed so a crossing is recorded exactly
// once even when the same tick ends in a crash; recovery must not re-fire
// a stale pre-crash crossing.
func (p *Player) Update(tick, score int, obstacles []Obstacle) {
	if p.State == StateDead {
		return
	}
	p.maybeSpeedUp(score)

	switch p.State {
	case StateSkiing, StateJumping:
		x0, y0 := p.X, p.Y
		p.move()
		if p.State == StateJumping {
			p.jump.Advance()
		}
		// Collide only on ticks that actually travel. A skier standing
		// up inside the tree they just hit must be able to sidestep
		// clear instead of crashing again on the very next tick. Landing
		// may have just returned the skier to the snow, so the check
		// runs with whatever state this tick ends in.
		if p.X != x0 || p.Y != y0 {
			p.collide(obstacles)
		}
	}
}

// maybeSpeedUp applies the score-threshold speed ramp, at most once per
// crossing.
func (p *Player) maybeSpeedUp(score int) {
	if p.speedUpEvery <= 0 {
		return
	}
	if score > 0 && score%p.speedUpEvery == 0 && score != p.lastSpeedUp {
		p.Speed++
		p.lastSpeedUp = score
	}
}

// move applies one tick of displacement for the current facing. Diagonals
// split the pace between both axes; full left and full right are stopped
// stances and move nothing.
func (p *Player) move() {
	switch p.Dir {
	case DirDown:
		p.Y += p.Speed
	case DirLeftDown:
		p.X -= p.Speed / diagonalNorm
		p.Y += p.Speed / diagonalNorm
	case DirRightDown:
		p.X += p.Speed / diagonalNorm
		p.Y += p.Speed / diagonalNorm
	}
}

// spriteKey returns the atlas entry for the skier's current pose.
func (p *Player) spriteKey() string {
	switch p.State {
	case StateJumping:
		frames := p.atlas.FrameCount("skier.jump")
		if frames == 0 {
			return p.Dir.spriteKey()
		}
		return fmt.Sprintf("skier.jump.%d", p.jump.Frame()%frames)
	case StateCrashed:
		return "skier.crash"
	default:
		return p.Dir.spriteKey()
	}
}

// Bounds returns the collision box in world units: the current sprite's
// rect with the top half shaved off. The skier visually overlaps things it
// is merely standing behind; only the skis and legs collide. ok is false
// when the pose has no sprite, in which case nothing collides this tick.
func (p *Player) Bounds() (core.RectF, bool) {
	spr, ok := p.atlas.Get(p.spriteKey())
	if !ok {
		return core.RectF{}, false
	}
	h := spr.WorldH() / 2
	return core.NewRectF(p.X, p.Y+h, spr.WorldW(), h), true
}

// collide tests the skier against the field and resolves the first
// intersecting obstacle. One interaction per tick: whatever the first hit
// does (jump, crash, nothing) decides the frame.
func (p *Player) collide(obstacles []Obstacle) {
	bounds, ok := p.Bounds()
	if !ok {
		return
	}
	for _, o := range obstacles {
		oBounds, ok := o.Bounds(p.atlas)
		if !ok || !bounds.Intersects(oBounds) {
			continue
		}
		p.resolveHit(o.Class)
		return
	}
}

// resolveHit is the whole interaction table in one switch: skiing into a
// ramp launches, skiing into anything else crashes, airborne skiers clear
// only the jumpable classes. Crashed and dead skiers stopped colliding
// before this call.
func (p *Player) resolveHit(class ObstacleClass) {
	switch p.State {
	case StateSkiing:
		if class == ClassRamp {
			p.startJump()
		} else {
			p.crash()
		}
	case StateJumping:
		if !class.Jumpable() {
			p.crash()
		}
	}
}
