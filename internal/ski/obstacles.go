package ski

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/tui-ski/internal/config"
	"github.com/vovakirdan/tui-ski/internal/core"
)

// ObstacleClass enumerates everything the slope can throw at the skier.
type ObstacleClass int

const (
	ClassTree ObstacleClass = iota
	ClassTreeCluster
	ClassStump
	ClassRock
	ClassRamp
)

// Jumpable reports whether an airborne skier clears this class. Trees,
// clusters and stumps are too tall; rocks and ramps sit low enough.
func (c ObstacleClass) Jumpable() bool {
	return c == ClassRock || c == ClassRamp
}

// String returns a human-readable name for the class.
func (c ObstacleClass) String() string {
	switch c {
	case ClassTree:
		return "tree"
	case ClassTreeCluster:
		return "tree cluster"
	case ClassStump:
		return "stump"
	case ClassRock:
		return "rock"
	case ClassRamp:
		return "ramp"
	default:
		return "unknown"
	}
}

// spriteKey maps the class to its atlas entry.
func (c ObstacleClass) spriteKey() string {
	switch c {
	case ClassTree:
		return "tree"
	case ClassTreeCluster:
		return "tree.cluster"
	case ClassStump:
		return "stump"
	case ClassRock:
		return "rock"
	case ClassRamp:
		return "ramp"
	default:
		return ""
	}
}

// Obstacle is a placed slope feature. The field owns placement; the skier
// only reads positions and classes during collision checks.
type Obstacle struct {
	Class ObstacleClass
	X, Y  float64 // sprite top-left, world units
}

// Bounds returns the obstacle's collision box. ok is false when the class
// has no sprite in the atlas, in which case the obstacle is intangible.
func (o Obstacle) Bounds(atlas *Atlas) (core.RectF, bool) {
	spr, ok := atlas.Get(o.Class.spriteKey())
	if !ok {
		return core.RectF{}, false
	}
	return core.NewRectF(o.X, o.Y, spr.WorldW(), spr.WorldH()), true
}

// classWeights biases random placement: trees dominate the slope, hazards
// and ramps stay occasional.
var classWeights = []struct {
	class  ObstacleClass
	weight int
}{
	{ClassTree, 5},
	{ClassTreeCluster, 2},
	{ClassStump, 2},
	{ClassRock, 3},
	{ClassRamp, 2},
}

// Field owns the obstacle population of the endless slope: the initial
// scatter, per-tick spawns in freshly revealed terrain, the difficulty ramp
// of the spawn chance, and pruning of terrain left far behind.
type Field struct {
	obstacles []Obstacle
	rng       *rand.Rand

	chance     float64
	chanceStep float64
	maxChance  float64
}

// newField creates an empty field seeded for deterministic placement.
func newField(seed int64, cfg config.SkiObstacles) *Field {
	return &Field{
		rng:        rand.New(rand.NewSource(seed)),
		chance:     cfg.BaseChance,
		chanceStep: cfg.ChanceStep,
		maxChance:  cfg.MaxChance,
	}
}

// Obstacles returns the live obstacle slice. Callers must treat it as
// read-only; it is reused between ticks.
func (f *Field) Obstacles() []Obstacle {
	return f.obstacles
}

// Chance returns the current per-tick spawn probability.
func (f *Field) Chance() float64 {
	return f.chance
}

// IncreaseSpawnChance bumps the spawn probability one difficulty step,
// clamped to the configured maximum.
func (f *Field) IncreaseSpawnChance() {
	f.chance = core.ClampF(f.chance+f.chanceStep, 0, f.maxChance)
}

// randomClass picks an obstacle class using the placement weights.
func (f *Field) randomClass() ObstacleClass {
	total := 0
	for _, cw := range classWeights {
		total += cw.weight
	}
	pick := f.rng.Intn(total)
	for _, cw := range classWeights {
		if pick < cw.weight {
			return cw.class
		}
		pick -= cw.weight
	}
	return ClassTree
}

// PlaceInitial scatters count obstacles across the starting viewport,
// keeping the clear rect empty so the first frame cannot be an instant
// crash. Attempts are bounded, so a clear rect covering the whole view
// degrades to an empty slope rather than spinning forever.
func (f *Field) PlaceInitial(count int, view, clear core.RectF) {
	f.obstacles = f.obstacles[:0]
	for attempts := 0; attempts < count*8 && len(f.obstacles) < count; attempts++ {
		x := view.X + f.rng.Float64()*view.W
		y := view.Y + f.rng.Float64()*view.H
		if clear.Contains(x, y) {
			continue
		}
		f.obstacles = append(f.obstacles, Obstacle{Class: f.randomClass(), X: x, Y: y})
	}
}

// PlaceNew rolls the spawn chance once for this tick and, on success, drops
// a single obstacle uniformly into the terrain revealed since the previous
// viewport. Ground the player has already seen never changes, so skiing
// back up replays the same emptiness rather than a fresh minefield.
func (f *Field) PlaceNew(current, previous core.RectF) {
	defer f.prune(current)

	if f.rng.Float64() >= f.chance {
		return
	}

	strips := revealedStrips(current, previous)
	total := 0.0
	for _, s := range strips {
		total += s.Area()
	}
	if total <= 0 {
		return
	}

	// Pick a strip weighted by area so diagonal scrolling stays uniform.
	pick := f.rng.Float64() * total
	strip := strips[len(strips)-1]
	for _, s := range strips {
		if pick < s.Area() {
			strip = s
			break
		}
		pick -= s.Area()
	}

	f.obstacles = append(f.obstacles, Obstacle{
		Class: f.randomClass(),
		X:     strip.X + f.rng.Float64()*strip.W,
		Y:     strip.Y + f.rng.Float64()*strip.H,
	})
}

// revealedStrips returns the parts of current not covered by previous:
// full-width strips above and below the overlap, plus side strips spanning
// the shared rows. The strips never overlap each other.
func revealedStrips(current, previous core.RectF) []core.RectF {
	var strips []core.RectF

	if current.Y < previous.Y {
		h := math.Min(previous.Y-current.Y, current.H)
		strips = append(strips, core.NewRectF(current.X, current.Y, current.W, h))
	}
	if current.Bottom() > previous.Bottom() {
		h := math.Min(current.Bottom()-previous.Bottom(), current.H)
		strips = append(strips, core.NewRectF(current.X, current.Bottom()-h, current.W, h))
	}

	top := math.Max(current.Y, previous.Y)
	bottom := math.Min(current.Bottom(), previous.Bottom())
	if bottom > top {
		if current.X < previous.X {
			w := math.Min(previous.X-current.X, current.W)
			strips = append(strips, core.NewRectF(current.X, top, w, bottom-top))
		}
		if current.Right() > previous.Right() {
			w := math.Min(current.Right()-previous.Right(), current.W)
			strips = append(strips, core.NewRectF(current.Right()-w, top, w, bottom-top))
		}
	}
	return strips
}

// pruneMargin is how far outside the viewport, in world units, an obstacle
// may drift before the field forgets it.
const pruneMargin = 400.0

// prune drops obstacles far outside the viewport. The population stays
// proportional to revealed area, which keeps collision scans cheap on long
// runs.
func (f *Field) prune(view core.RectF) {
	keep := f.obstacles[:0]
	for _, o := range f.obstacles {
		if o.Y < view.Y-pruneMargin || o.Y > view.Bottom()+pruneMargin ||
			o.X < view.X-pruneMargin || o.X > view.Right()+pruneMargin {
			continue
		}
		keep = append(keep, o)
	}
	f.obstacles = keep
}
