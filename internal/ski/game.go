// Package ski implements an endless top-down skiing game: point the skier
// downhill, dodge what the slope grows, jump what you cannot dodge, and
// stay ahead of the thing that lives above the treeline.
//
// The package is pure simulation. It draws into a core.Screen and consumes
// core.Actions, but it knows nothing about terminals, key codes, or timers;
// the platform layer owns all of that.
package ski

import (
	"fmt"
	"math"

	"github.com/vovakirdan/tui-ski/internal/config"
	"github.com/vovakirdan/tui-ski/internal/core"
)

const (
	// UnitsPerCell converts world units to terminal cells. Config speeds
	// and distances are world units per tick; rendering divides by this,
	// so a skier at speed 5 glides half a cell per tick.
	UnitsPerCell = 10.0

	// hudRows is how many screen rows the scoreboard strip occupies.
	hudRows = 2

	// spawnClearance inflates the obstacle-free zone around the starting
	// position, in world units, so the first tick cannot be a crash.
	spawnClearance = 60.0
)

// Mode is the orchestrator's run state.
type Mode int

const (
	ModePlaying Mode = iota
	ModePaused
)

// Game owns one run down the slope: the skier, the yeti, the obstacle
// field, the camera, scoring, and difficulty ramps. The platform drives it
// through Reset, HandleInput, Step, and Render.
type Game struct {
	cfg   config.SkiConfig
	atlas *Atlas

	player *Player
	yeti   *Yeti
	field  *Field

	mode     Mode
	gameOver bool

	tick  int
	score int

	// best is the session-best score shown in the HUD. The platform owns
	// the leaderboard and pushes the value in; it survives resets because
	// the session does.
	best int

	// lastBoost remembers the score at which the spawn ramp last fired,
	// mirroring the player's speed ramp guard.
	lastBoost int

	view     core.RectF
	prevView core.RectF
	viewW    float64
	viewH    float64

	runtime core.RuntimeConfig
}

// New creates a game with a loaded sprite atlas and tuning. Call Reset
// before the first Step.
func New(atlas *Atlas, cfg config.SkiConfig) *Game {
	return &Game{atlas: atlas, cfg: cfg}
}

// Reset starts a fresh run: every world value back to its starting state,
// a new obstacle scatter from the config's seed, the yeti back to sleep.
func (g *Game) Reset(rt core.RuntimeConfig) {
	g.runtime = rt
	g.mode = ModePlaying
	g.gameOver = false
	g.tick = 0
	g.score = 0
	g.lastBoost = 0

	g.setViewSize(rt.ScreenW, rt.ScreenH)

	g.player = newPlayer(g.atlas, g.cfg.Player, g.cfg.Jump)
	g.yeti = newYeti(g.atlas, g.cfg.Yeti)
	g.field = newField(rt.Seed, g.cfg.Obstacles)

	g.view = g.viewport()
	g.prevView = g.view

	clear := core.NewRectF(
		g.player.X-spawnClearance,
		g.player.Y-spawnClearance,
		spawnClearance*2,
		// Keep the lane below the spawn open too; the skier is already
		// moving when the first frame renders.
		spawnClearance*3,
	)
	g.field.PlaceInitial(g.cfg.Obstacles.InitialCount, g.view, clear)
}

// Resize adapts the camera to a new terminal size mid-run. World state is
// untouched; only the window onto it changes.
func (g *Game) Resize(screenW, screenH int) {
	g.setViewSize(screenW, screenH)
}

func (g *Game) setViewSize(screenW, screenH int) {
	sceneH := core.Max(screenH-hudRows, 1)
	g.viewW = float64(core.Max(screenW, 1)) * UnitsPerCell
	g.viewH = float64(sceneH) * UnitsPerCell
}

// viewport returns the camera rect centered on the skier's position.
func (g *Game) viewport() core.RectF {
	return core.NewRectF(
		g.player.X-g.viewW/2,
		g.player.Y-g.viewH/2,
		g.viewW,
		g.viewH,
	)
}

// HandleInput is the single entry point for player intent. Session controls
// (pause, reset) are handled here; everything else reaches the skier only
// while the game is actually playing. Returns whether anything consumed the
// action.
func (g *Game) HandleInput(action core.Action) bool {
	switch action {
	case core.ActionPause:
		if g.gameOver {
			return false
		}
		if g.mode == ModePlaying {
			g.mode = ModePaused
		} else {
			g.mode = ModePlaying
		}
		return true

	case core.ActionReset:
		// Works in any state. Chain the next seed off the current field
		// so restarts stay deterministic for a given starting seed.
		rt := g.runtime
		rt.Seed = g.field.rng.Int63()
		g.Reset(rt)
		return true
	}

	if g.mode != ModePlaying || g.gameOver {
		return false
	}
	return g.player.HandleInput(action)
}

// Step advances the simulation one tick. Nothing moves while paused or
// after the run has ended; the platform stops scheduling ticks then too,
// this is the backstop that keeps a stray tick harmless.
func (g *Game) Step() core.StepResult {
	if g.mode == ModePaused || g.gameOver {
		return core.StepResult{State: g.State()}
	}

	g.tick++

	// Camera first: the frame's reveal is the difference between where
	// the window was and where it is now.
	g.prevView = g.view
	g.view = g.viewport()

	if g.cfg.Obstacles.BoostEvery > 0 && g.score > 0 &&
		g.score%g.cfg.Obstacles.BoostEvery == 0 && g.score != g.lastBoost {
		g.field.IncreaseSpawnChance()
		g.lastBoost = g.score
	}
	g.field.PlaceNew(g.view, g.prevView)

	g.player.Update(g.tick, g.score, g.field.Obstacles())
	g.yeti.Update(g.tick, g.score, g.player)

	// Distance is the score: count every tick spent actually descending.
	if g.player.Dir.HasDownward() && g.player.Speed > 0 {
		g.score++
	}

	if g.player.State == StateDead {
		g.gameOver = true
	}

	return core.StepResult{State: g.State()}
}

// SetBest sets the session-best score shown in the HUD.
func (g *Game) SetBest(score int) {
	g.best = score
}

// State returns the game's externally visible status.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: g.gameOver,
		Paused:   g.mode == ModePaused,
	}
}

// Player exposes the skier for the platform's HUD and for tests.
func (g *Game) Player() *Player {
	return g.player
}

// Yeti exposes the pursuer for tests.
func (g *Game) Yeti() *Yeti {
	return g.yeti
}

// Field exposes the obstacle field for tests.
func (g *Game) Field() *Field {
	return g.field
}

// Render draws the current frame. While paused it draws only the pause
// card: the slope disappears rather than sitting frozen behind an overlay,
// and resuming reproduces the exact scene the pause interrupted.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.mode == ModePaused {
		g.drawCenteredMessage(dst, "PAUSED", "Press P to resume")
		return
	}

	g.drawSnow(dst)
	g.drawHUD(dst)

	// Skier before obstacles: the slope draws over the body, so a skier
	// weaving between trees slides visually behind them.
	if g.player.State != StateDead {
		if spr, ok := g.atlas.Get(g.player.spriteKey()); ok {
			g.drawSprite(dst, spr, g.player.X, g.player.Y)
		}
	}

	if g.yeti.Active() {
		if spr, ok := g.atlas.Get(g.yeti.spriteKey()); ok {
			g.drawSprite(dst, spr, g.yeti.X, g.yeti.Y)
		}
	}

	for _, o := range g.field.Obstacles() {
		spr, ok := g.atlas.Get(o.Class.spriteKey())
		if !ok {
			continue
		}
		g.drawSprite(dst, spr, o.X, o.Y)
	}

	if g.gameOver {
		g.drawCenteredMessage(dst, "THE YETI GOT YOU",
			fmt.Sprintf("Score: %d  |  Press R to restart", g.score))
	}
}

// worldToScreen maps world coordinates to screen cells under the current
// viewport. The HUD strip offsets everything down. Floor, not truncate:
// coordinates left of or above the window must round away from it.
func (g *Game) worldToScreen(wx, wy float64) (int, int) {
	x := int(math.Floor((wx - g.view.X) / UnitsPerCell))
	y := int(math.Floor((wy-g.view.Y)/UnitsPerCell)) + hudRows
	return x, y
}

// drawSprite blits a sprite at a world position, skipping transparent
// cells. Off-screen cells clip silently in SetCell.
func (g *Game) drawSprite(dst *core.Screen, spr Sprite, wx, wy float64) {
	sx, sy := g.worldToScreen(wx, wy)
	for dy := 0; dy < spr.H(); dy++ {
		for dx := 0; dx < spr.W(); dx++ {
			r := spr.RuneAt(dx, dy)
			if r == ' ' {
				continue
			}
			if sy+dy < hudRows {
				continue // never draw the world over the HUD
			}
			dst.SetCell(sx+dx, sy+dy, r, spr.Color)
		}
	}
}

// drawSnow sprinkles faint dots tied to world coordinates. They scroll
// with the terrain and give the eye motion feedback on an otherwise blank
// slope.
func (g *Game) drawSnow(dst *core.Screen) {
	baseX := int(math.Floor(g.view.X / UnitsPerCell))
	baseY := int(math.Floor(g.view.Y / UnitsPerCell))
	for y := hudRows; y < dst.Height(); y++ {
		for x := 0; x < dst.Width(); x++ {
			cx := uint32(baseX + x)
			cy := uint32(baseY + y - hudRows)
			h := cx*2654435761 ^ cy*2246822519
			if h%43 == 0 {
				dst.SetCell(x, y, '·', core.ColorGray)
			}
		}
	}
}

// drawHUD fills the two reserved top rows: score and pace on the left,
// status warnings on the right, a rule underneath.
func (g *Game) drawHUD(dst *core.Screen) {
	dst.DrawText(1, 0, fmt.Sprintf(" Score: %d ", g.score))
	dst.DrawText(18, 0, fmt.Sprintf(" Speed: %.0f ", g.player.Speed))
	if g.best > 0 {
		dst.DrawText(31, 0, fmt.Sprintf(" Best: %d ", g.best))
	}

	if g.yeti.Active() && !g.yeti.Caught() {
		// Blink to make the warning impossible to miss.
		if (g.tick/15)%2 == 0 {
			warning := " YETI! "
			dst.DrawTextColor(dst.Width()-len(warning)-1, 0, warning, core.ColorBrightRed)
		}
	}

	dst.DrawHLine(0, 1, dst.Width(), '─')
}

// drawCenteredMessage draws a message box in the center of the screen.
func (g *Game) drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	titleX := boxX + (boxW-len(title))/2
	dst.DrawTextColor(titleX, boxY+1, title, core.ColorBrightYellow)

	subtitleX := boxX + (boxW-len(subtitle))/2
	dst.DrawText(subtitleX, boxY+3, subtitle)
}
