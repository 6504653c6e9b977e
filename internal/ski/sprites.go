package ski

import (
	_ "embed"
	"fmt"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-ski/internal/core"
)

//go:embed sprites.yaml
var defaultSpritesYAML []byte

// Sprite is a small rune grid with a single foreground color. Spaces are
// transparent: drawing skips them so sprites do not punch holes in the
// scenery behind them.
type Sprite struct {
	Name  string
	Color core.Color
	rows  [][]rune
}

// W returns the sprite width in cells.
func (s Sprite) W() int {
	if len(s.rows) == 0 {
		return 0
	}
	return len(s.rows[0])
}

// H returns the sprite height in cells.
func (s Sprite) H() int {
	return len(s.rows)
}

// WorldW returns the sprite width in world units.
func (s Sprite) WorldW() float64 {
	return float64(s.W()) * UnitsPerCell
}

// WorldH returns the sprite height in world units.
func (s Sprite) WorldH() float64 {
	return float64(s.H()) * UnitsPerCell
}

// RuneAt returns the rune at cell (x, y), space when out of range.
func (s Sprite) RuneAt(x, y int) rune {
	if y < 0 || y >= len(s.rows) || x < 0 || x >= len(s.rows[y]) {
		return ' '
	}
	return s.rows[y][x]
}

// Atlas holds every sprite the game draws, keyed by name. Animation frames
// use dotted numeric suffixes ("skier.jump.0", "skier.jump.1", ...).
type Atlas struct {
	sprites map[string]Sprite
}

// atlasFile matches the YAML layout of sprite asset files.
type atlasFile struct {
	Sprites []struct {
		Name  string   `yaml:"name"`
		Color string   `yaml:"color"`
		Rows  []string `yaml:"rows"`
	} `yaml:"sprites"`
}

// LoadAtlas parses the embedded sprite sheet. It must succeed before a game
// is constructed; callers treat an error as fatal.
func LoadAtlas() (*Atlas, error) {
	return ParseAtlas(defaultSpritesYAML)
}

// ParseAtlas parses and validates a YAML sprite sheet.
func ParseAtlas(data []byte) (*Atlas, error) {
	var file atlasFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse sprite sheet: %w", err)
	}
	if len(file.Sprites) == 0 {
		return nil, fmt.Errorf("sprite sheet contains no sprites")
	}

	atlas := &Atlas{sprites: make(map[string]Sprite, len(file.Sprites))}
	for _, entry := range file.Sprites {
		if entry.Name == "" {
			return nil, fmt.Errorf("sprite with empty name")
		}
		if _, exists := atlas.sprites[entry.Name]; exists {
			return nil, fmt.Errorf("duplicate sprite %q", entry.Name)
		}
		if len(entry.Rows) == 0 {
			return nil, fmt.Errorf("sprite %q has no rows", entry.Name)
		}

		color := core.ColorDefault
		if entry.Color != "" {
			c, ok := core.ParseColor(entry.Color)
			if !ok {
				return nil, fmt.Errorf("sprite %q has unknown color %q", entry.Name, entry.Color)
			}
			color = c
		}

		rows := make([][]rune, len(entry.Rows))
		width := -1
		for i, row := range entry.Rows {
			rows[i] = []rune(row)
			if width == -1 {
				width = len(rows[i])
			} else if len(rows[i]) != width {
				return nil, fmt.Errorf("sprite %q row %d is %d cells wide, expected %d",
					entry.Name, i, len(rows[i]), width)
			}
		}
		if width == 0 {
			return nil, fmt.Errorf("sprite %q has zero width", entry.Name)
		}

		atlas.sprites[entry.Name] = Sprite{Name: entry.Name, Color: color, rows: rows}
	}
	return atlas, nil
}

// Get returns the named sprite. The boolean is false when the sprite is
// missing; callers skip drawing and collision for that entity this frame.
func (a *Atlas) Get(name string) (Sprite, bool) {
	s, ok := a.sprites[name]
	return s, ok
}

// FrameCount counts the animation frames stored under prefix, i.e. the
// consecutive entries "prefix.0", "prefix.1", ...
func (a *Atlas) FrameCount(prefix string) int {
	n := 0
	for {
		if _, ok := a.sprites[fmt.Sprintf("%s.%d", prefix, n)]; !ok {
			return n
		}
		n++
	}
}

// Names returns the sorted list of sprite names, handy for diagnostics.
func (a *Atlas) Names() []string {
	names := make([]string, 0, len(a.sprites))
	for name := range a.sprites {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// String summarizes the atlas contents.
func (a *Atlas) String() string {
	return fmt.Sprintf("atlas(%d sprites: %s)", len(a.sprites), strings.Join(a.Names(), ", "))
}
