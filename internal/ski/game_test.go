package ski

import (
	"math"
	"reflect"
	"strings"
	"testing"

	"github.com/vovakirdan/tui-ski/internal/config"
	"github.com/vovakirdan/tui-ski/internal/core"
)

// quietConfig is the default tuning with everything random or hostile
// switched off: an empty slope and a yeti that never wakes. Tests enable
// the piece they exercise.
func quietConfig() config.SkiConfig {
	cfg := config.Default()
	cfg.Obstacles.InitialCount = 0
	cfg.Obstacles.BaseChance = 0
	cfg.Obstacles.BoostEvery = 0
	cfg.Yeti.TriggerScore = 1 << 20
	return cfg
}

func testRuntime(seed int64) core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: seed}
}

func testGame(t *testing.T, cfg config.SkiConfig, seed int64) *Game {
	t.Helper()
	g := New(testAtlas(t), cfg)
	g.Reset(testRuntime(seed))
	return g
}

func steps(g *Game, n int) {
	for i := 0; i < n; i++ {
		g.Step()
	}
}

func TestGameScoreCountsOnlyDescent(t *testing.T) {
	g := testGame(t, quietConfig(), 42)

	steps(g, 10)
	if got := g.State().Score; got != 10 {
		t.Fatalf("score = %d after 10 downhill ticks, expected 10", got)
	}

	// Park sideways: time passes, score does not.
	g.HandleInput(core.ActionLeft)
	g.HandleInput(core.ActionLeft)
	steps(g, 10)
	if got := g.State().Score; got != 10 {
		t.Errorf("score = %d while parked, expected to stay 10", got)
	}

	// Any downward component counts again.
	g.HandleInput(core.ActionRight)
	steps(g, 4)
	if got := g.State().Score; got != 14 {
		t.Errorf("score = %d after 4 diagonal ticks, expected 14", got)
	}
}

func TestGamePauseFreezesAndResumesIdentically(t *testing.T) {
	g := testGame(t, quietConfig(), 42)
	steps(g, 5)

	before := core.NewScreen(80, 24)
	g.Render(before)
	if !strings.Contains(before.String(), "Score: 5") {
		t.Fatalf("setup: frame does not show the score:\n%s", before.String())
	}

	if !g.HandleInput(core.ActionPause) {
		t.Fatal("pause not consumed while playing")
	}
	if !g.State().Paused {
		t.Fatal("State().Paused = false after pausing")
	}

	// Stray ticks while paused move nothing.
	res := g.Step()
	if !res.State.Paused {
		t.Error("StepResult while paused should report paused")
	}
	steps(g, 6)
	if got := g.State().Score; got != 5 {
		t.Errorf("score = %d after paused ticks, expected 5", got)
	}
	if g.tick != 5 {
		t.Errorf("tick = %d after paused ticks, expected 5", g.tick)
	}

	// Gameplay input dies at the pause wall.
	if g.HandleInput(core.ActionLeft) {
		t.Error("turn consumed while paused")
	}
	if g.player.Dir != DirDown {
		t.Errorf("Dir = %v changed while paused", g.player.Dir)
	}

	if !g.HandleInput(core.ActionPause) {
		t.Fatal("resume not consumed")
	}
	after := core.NewScreen(80, 24)
	g.Render(after)
	if after.String() != before.String() {
		t.Error("resumed frame differs from the frame the pause interrupted")
	}

	g.Step()
	if got := g.State().Score; got != 6 {
		t.Errorf("score = %d after resuming, expected 6", got)
	}
}

func TestGamePausedRenderShowsOnlyTheCard(t *testing.T) {
	g := testGame(t, quietConfig(), 42)
	steps(g, 5)
	g.HandleInput(core.ActionPause)

	s := core.NewScreen(80, 24)
	g.Render(s)
	frame := s.String()

	if !strings.Contains(frame, "PAUSED") {
		t.Error("paused frame missing the PAUSED card")
	}
	if strings.Contains(frame, "Score:") {
		t.Error("paused frame still shows the HUD")
	}
}

func TestGameResetRestoresTheWorld(t *testing.T) {
	g := testGame(t, quietConfig(), 7)
	steps(g, 20)
	g.HandleInput(core.ActionLeft)

	if !g.HandleInput(core.ActionReset) {
		t.Fatal("reset not consumed")
	}

	st := g.State()
	if st.Score != 0 || st.GameOver || st.Paused {
		t.Errorf("State() after reset = %+v, expected a fresh run", st)
	}
	if g.tick != 0 {
		t.Errorf("tick = %d after reset, expected 0", g.tick)
	}
	p := g.Player()
	if p.X != 0 || p.Y != 0 || p.Dir != DirDown || p.State != StateSkiing {
		t.Errorf("player after reset: pos (%v, %v) dir %v state %v", p.X, p.Y, p.Dir, p.State)
	}
	if p.Speed != 5 {
		t.Errorf("Speed = %v after reset, expected 5", p.Speed)
	}
	if g.Yeti().Active() {
		t.Error("yeti active after reset")
	}
}

func TestGameResetWhilePausedResumesPlaying(t *testing.T) {
	g := testGame(t, quietConfig(), 7)
	steps(g, 5)
	g.HandleInput(core.ActionPause)

	if !g.HandleInput(core.ActionReset) {
		t.Fatal("reset not consumed while paused")
	}
	if g.State().Paused {
		t.Error("still paused after reset")
	}

	g.Step()
	if got := g.State().Score; got != 1 {
		t.Errorf("score = %d after reset and one tick, expected 1", got)
	}
}

func TestGameOverFreezesEverything(t *testing.T) {
	cfg := quietConfig()
	cfg.Yeti.TriggerScore = 0
	cfg.Yeti.Speed = 50
	g := testGame(t, cfg, 42)

	for i := 0; i < 100 && !g.State().GameOver; i++ {
		g.Step()
	}
	if !g.State().GameOver {
		t.Fatal("a 50-speed yeti never caught the skier in 100 ticks")
	}
	if g.Player().State != StateDead {
		t.Fatalf("player State = %v at game over, expected dead", g.Player().State)
	}
	if !g.Yeti().Caught() {
		t.Error("game over without the yeti reporting a catch")
	}

	score, tick := g.State().Score, g.tick
	steps(g, 10)
	if g.State().Score != score || g.tick != tick {
		t.Errorf("score/tick advanced after game over: %d/%d -> %d/%d",
			score, tick, g.State().Score, g.tick)
	}

	if g.HandleInput(core.ActionPause) {
		t.Error("pause consumed after game over")
	}
	if g.HandleInput(core.ActionLeft) {
		t.Error("turn consumed after game over")
	}

	s := core.NewScreen(80, 24)
	g.Render(s)
	if !strings.Contains(s.String(), "THE YETI GOT YOU") {
		t.Error("game-over frame missing the end card")
	}

	if !g.HandleInput(core.ActionReset) {
		t.Fatal("reset not consumed after game over")
	}
	if st := g.State(); st.GameOver || st.Score != 0 {
		t.Errorf("State() after reset = %+v, expected a fresh run", st)
	}
	if g.Player().State != StateSkiing {
		t.Errorf("player State = %v after reset, expected skiing", g.Player().State)
	}
}

func TestGameSpawnBoostOncePerThreshold(t *testing.T) {
	cfg := quietConfig()
	cfg.Obstacles.BoostEvery = 10
	g := testGame(t, cfg, 42)

	chanceIs := func(want float64) {
		t.Helper()
		if got := g.Field().Chance(); math.Abs(got-want) > 1e-9 {
			t.Errorf("spawn chance = %v, expected %v", got, want)
		}
	}

	// The boost reads the score from the previous tick, so crossing the
	// threshold fires on the following step.
	steps(g, 10)
	chanceIs(0)

	g.HandleInput(core.ActionLeft)
	g.HandleInput(core.ActionLeft) // park so the score sits on the threshold

	g.Step()
	chanceIs(0.04)
	if g.State().Score != 10 {
		t.Fatalf("score = %d, expected to be parked at 10", g.State().Score)
	}

	steps(g, 10) // held flat on the threshold: no re-fire
	chanceIs(0.04)

	g.HandleInput(core.ActionRight) // left -> left-down, descending again
	steps(g, 10)
	if g.State().Score != 20 {
		t.Fatalf("score = %d, expected 20", g.State().Score)
	}
	chanceIs(0.04)

	g.Step()
	chanceIs(0.08)
}

func TestGameResizeKeepsTheWorld(t *testing.T) {
	g := testGame(t, quietConfig(), 42)
	steps(g, 10)

	g.Resize(120, 40)

	if g.State().Score != 10 || g.tick != 10 {
		t.Errorf("resize touched time: score %d tick %d", g.State().Score, g.tick)
	}
	if p := g.Player(); !almostEqual(p.Y, 50) {
		t.Errorf("resize moved the skier to Y=%v", p.Y)
	}
	if g.viewW != 1200 || g.viewH != 380 {
		t.Errorf("camera = %vx%v world units, expected 1200x380", g.viewW, g.viewH)
	}

	g.Step()
	if g.view.W != 1200 {
		t.Errorf("view.W = %v after the next tick, expected 1200", g.view.W)
	}
	if g.State().Score != 11 {
		t.Errorf("score = %d, expected 11", g.State().Score)
	}
}

func TestGameClearZoneProtectsTheStart(t *testing.T) {
	cfg := quietConfig()
	cfg.Obstacles.InitialCount = 200
	g := testGame(t, cfg, 99)

	if n := len(g.Field().Obstacles()); n == 0 {
		t.Fatal("setup: dense scatter placed nothing")
	}

	// However dense the slope, the spawn clearance guarantees the opening
	// seconds are survivable.
	for i := 1; i <= 15; i++ {
		g.Step()
		if got := g.Player().State; got != StateSkiing {
			t.Fatalf("tick %d: player state = %v, expected skiing", i, got)
		}
	}
}

func TestGameCrashFreezesScoreUntilRecovery(t *testing.T) {
	g := testGame(t, quietConfig(), 42)
	g.field.obstacles = append(g.field.obstacles, Obstacle{Class: ClassTree, X: 0, Y: 40})

	steps(g, 5)
	if got := g.Player().State; got != StateCrashed {
		t.Fatalf("player state = %v after skiing into the tree, expected crashed", got)
	}
	if got := g.State().Score; got != 4 {
		t.Errorf("score = %d at the crash, expected 4", got)
	}

	steps(g, 5)
	if got := g.State().Score; got != 4 {
		t.Errorf("score = %d while crashed, expected to stay 4", got)
	}

	// Stand up, shuffle clear of the trunk, point downhill.
	g.HandleInput(core.ActionRight)
	steps(g, 3) // parked sideways: upright but not scoring
	if got := g.State().Score; got != 4 {
		t.Errorf("score = %d while parked after recovery, expected 4", got)
	}
	g.HandleInput(core.ActionRight)
	g.HandleInput(core.ActionRight)
	g.HandleInput(core.ActionDown)

	steps(g, 2)
	if got := g.Player().State; got != StateSkiing {
		t.Errorf("player state = %v after sidestepping clear, expected skiing", got)
	}
	if got := g.State().Score; got != 6 {
		t.Errorf("score = %d after two downhill ticks, expected 6", got)
	}
}

func TestGameRestartChainsDeterministically(t *testing.T) {
	cfg := quietConfig()
	cfg.Obstacles.InitialCount = 30

	run := func() (first, second []Obstacle) {
		g := testGame(t, cfg, 1234)
		first = append([]Obstacle(nil), g.Field().Obstacles()...)
		steps(g, 5)
		g.HandleInput(core.ActionReset)
		second = append([]Obstacle(nil), g.Field().Obstacles()...)
		return first, second
	}

	firstA, secondA := run()
	firstB, secondB := run()

	if !reflect.DeepEqual(firstA, firstB) || !reflect.DeepEqual(secondA, secondB) {
		t.Error("identical starting seeds produced different runs")
	}
	if reflect.DeepEqual(firstA, secondA) {
		t.Error("restart reproduced the previous scatter instead of a fresh one")
	}
}

func TestGameRenderShowsHUDAndSkier(t *testing.T) {
	g := testGame(t, quietConfig(), 42)
	steps(g, 2)

	s := core.NewScreen(80, 24)
	g.Render(s)

	row0 := s.Row(0)
	if !strings.Contains(row0, "Score: 2") {
		t.Errorf("HUD row %q missing the score", row0)
	}
	if !strings.Contains(row0, "Speed: 5") {
		t.Errorf("HUD row %q missing the speed", row0)
	}
	if s.Get(0, 1) != '─' || s.Get(79, 1) != '─' {
		t.Error("HUD rule row not drawn edge to edge")
	}

	// Camera centered one tick behind the skier puts the head at (41, 13)
	// on an 80x24 screen.
	if got := s.Get(41, 13); got != 'o' {
		t.Errorf("cell (41,13) = %q, expected the skier's head", got)
	}
	if got := s.Get(41, 14); got != '║' {
		t.Errorf("cell (41,14) = %q, expected skis", got)
	}
}

func TestGameHUDShowsSessionBest(t *testing.T) {
	g := testGame(t, quietConfig(), 42)
	g.Step()

	s := core.NewScreen(80, 24)
	g.Render(s)
	if strings.Contains(s.Row(0), "Best:") {
		t.Error("HUD shows a best score before one exists")
	}

	g.SetBest(42)
	g.Render(s)
	if !strings.Contains(s.Row(0), "Best: 42") {
		t.Errorf("HUD row %q missing the session best", s.Row(0))
	}

	// The board outlives any single run.
	g.HandleInput(core.ActionReset)
	g.Render(s)
	if !strings.Contains(s.Row(0), "Best: 42") {
		t.Errorf("HUD row %q lost the session best after a reset", s.Row(0))
	}
}

func TestGameHUDWarnsWhenYetiWakes(t *testing.T) {
	cfg := quietConfig()
	cfg.Yeti.TriggerScore = 0
	cfg.Yeti.Speed = 0.001 // awake but effectively pinned uphill
	g := testGame(t, cfg, 42)

	g.Step()
	if !g.Yeti().Active() {
		t.Fatal("yeti still dormant with trigger 0")
	}

	s := core.NewScreen(80, 24)
	g.Render(s)
	if !strings.Contains(s.Row(0), "YETI!") {
		t.Errorf("HUD row %q missing the chase warning", s.Row(0))
	}
}
