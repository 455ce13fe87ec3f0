package takrules

// State is a board plus both players' reserves and the notation of every
// executed ply. The length of Notation is the ply count.
type State struct {
	Board    *Board
	White    Player
	Black    Player
	Notation []string
}

// NewState returns the starting position for a board size under the given
// rules.
func NewState(size int, rules Rules) (*State, error) {
	b, err := NewBoard(size)
	if err != nil {
		return nil, err
	}

	res, err := rules.Reserve(size)
	if err != nil {
		return nil, err
	}

	return &State{
		Board: b,
		White: Player{Color: White, Stones: res.Stones, Capstones: res.Capstones},
		Black: Player{Color: Black, Stones: res.Stones, Capstones: res.Capstones},
	}, nil
}

// Player returns the reserve of a color.
func (s *State) Player(c Color) *Player {
	if c == White {
		return &s.White
	}
	return &s.Black
}

// Ply is the number of plies executed so far.
func (s *State) Ply() int {
	return len(s.Notation)
}

// Size is the board size.
func (s *State) Size() int {
	return s.Board.Size
}

// Clone returns a deep copy of the state.
func (s *State) Clone() *State {
	c := *s
	c.Board = s.Board.Clone()
	if s.Notation != nil {
		c.Notation = append([]string{}, s.Notation...)
	}
	return &c
}
