package takrules

import "fmt"

// Player tracks the stones a color still has in hand.
type Player struct {
	Color     Color
	Stones    int
	Capstones int
}

// HasCapstone reports whether the player can still place a capstone.
func (p *Player) HasCapstone() bool {
	return p.Capstones > 0
}

// OutOfStones reports whether the player has placed every flat stone.
// Capstones still in hand do not count.
func (p *Player) OutOfStones() bool {
	return p.Stones == 0
}

func (p *Player) String() string {
	return fmt.Sprintf("%s: %d stones, %d capstones", p.Color, p.Stones, p.Capstones)
}
