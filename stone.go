package takrules

import "fmt"

// Color is the color of a stone or a player.
type Color int

// The two colors. White moves first once the opening is over.
const (
	White Color = iota
	Black
)

// Opponent returns the other color.
func (c Color) Opponent() Color {
	if c == White {
		return Black
	}
	return White
}

func (c Color) String() string {
	switch c {
	case White:
		return "white"
	case Black:
		return "black"
	}
	return fmt.Sprintf("Color(%d)", int(c))
}

// StoneKind is the role a stone plays on the board.
type StoneKind int

// Flats count for flat wins, walls block roads and stacks, caps crush walls.
const (
	Flat StoneKind = iota
	Wall
	Cap
)

// StoneFlat is a constant for a string representation of a flat stone.
const StoneFlat string = "F"

// StoneStanding is a constant for a string representation of a standing stone.
const StoneStanding string = "S"

// StoneCap is a constant for a string representation of a cap stone.
const StoneCap string = "C"

// String returns the PTN letter for the kind.
func (k StoneKind) String() string {
	switch k {
	case Flat:
		return StoneFlat
	case Wall:
		return StoneStanding
	case Cap:
		return StoneCap
	}
	return fmt.Sprintf("StoneKind(%d)", int(k))
}

// Stone is a single Tak stone. Stones are values and are never changed once
// placed.
type Stone struct {
	Color Color
	Kind  StoneKind
}

func (s Stone) String() string {
	return fmt.Sprintf("%s(%s)", s.Color, s.Kind)
}

// IsRoad reports whether the stone can be part of a road.
func (s Stone) IsRoad() bool {
	return s.Kind == Flat || s.Kind == Cap
}
