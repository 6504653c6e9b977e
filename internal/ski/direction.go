package ski

// Direction is the skier's facing: five discrete values spanning the
// half-circle from full left to full right. The order matters, turning
// moves one step through it at a time.
type Direction int

const (
	DirLeft Direction = iota
	DirLeftDown
	DirDown
	DirRightDown
	DirRight
)

// String returns a human-readable name for the direction.
func (d Direction) String() string {
	switch d {
	case DirLeft:
		return "left"
	case DirLeftDown:
		return "left-down"
	case DirDown:
		return "down"
	case DirRightDown:
		return "right-down"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}

// TurnedLeft returns the facing one step toward the left extreme,
// saturating at DirLeft.
func (d Direction) TurnedLeft() Direction {
	if d <= DirLeft {
		return DirLeft
	}
	return d - 1
}

// TurnedRight returns the facing one step toward the right extreme,
// saturating at DirRight.
func (d Direction) TurnedRight() Direction {
	if d >= DirRight {
		return DirRight
	}
	return d + 1
}

// HasDownward reports whether the facing carries a downhill component.
// Full left and full right are stopped stances.
func (d Direction) HasDownward() bool {
	return d == DirLeftDown || d == DirDown || d == DirRightDown
}

// spriteKey maps the facing to its atlas entry. Kept separate from movement
// so render lookups never leak into simulation code.
func (d Direction) spriteKey() string {
	switch d {
	case DirLeft:
		return "skier.left"
	case DirLeftDown:
		return "skier.left-down"
	case DirRightDown:
		return "skier.right-down"
	case DirRight:
		return "skier.right"
	default:
		return "skier.down"
	}
}
