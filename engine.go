package takrules

import "fmt"

// throwPlan is a validated throw: the squares stones land on, in order.
type throwPlan struct {
	rows, cols []int
}

// CheckMove reports why a move cannot be played by color c, or nil if it can.
// It never changes the state.
func (s *State) CheckMove(m *Move, c Color) error {
	switch m.Type {
	case Place:
		return s.checkPlace(m, c)
	case Throw:
		_, err := s.checkThrow(m, c)
		return err
	}
	return reject(m, fmt.Errorf("unknown move type %d", m.Type))
}

// Execute checks a move for color c and, if it is legal, plays it: the board
// and reserves are updated and the notation is appended. A rejected move
// leaves the state exactly as it was.
func (s *State) Execute(m *Move, c Color) error {
	switch m.Type {
	case Place:
		if err := s.checkPlace(m, c); err != nil {
			return err
		}
		s.place(Stone{Color: c, Kind: m.Kind}, m.Row, m.Col)
	case Throw:
		plan, err := s.checkThrow(m, c)
		if err != nil {
			return err
		}
		s.throw(m, plan)
	default:
		return reject(m, fmt.Errorf("unknown move type %d", m.Type))
	}

	s.Notation = append(s.Notation, m.String())
	return nil
}

func (s *State) checkPlace(m *Move, c Color) error {
	if !s.Board.InBounds(m.Row, m.Col) {
		return reject(m, ErrOutOfBounds)
	}
	if !s.Board.IsEmpty(m.Row, m.Col) {
		return reject(m, ErrOccupiedSquare)
	}

	p := s.Player(c)
	if m.Kind == Cap {
		if !p.HasCapstone() {
			return reject(m, ErrNoCapstonesLeft)
		}
	} else if p.Stones <= 0 {
		return reject(m, ErrNoStonesLeft)
	}

	return nil
}

func (s *State) place(st Stone, row, col int) {
	p := s.Player(st.Color)
	if st.Kind == Cap {
		p.Capstones--
	} else {
		p.Stones--
	}
	s.Board.Push(row, col, st)
}

func (s *State) checkThrow(m *Move, c Color) (*throwPlan, error) {
	b := s.Board
	if m.Count < 1 || m.Count > b.Size || !b.InBounds(m.Row, m.Col) || len(m.Drops) == 0 {
		return nil, reject(m, ErrInvalidSignature)
	}
	for _, d := range m.Drops {
		if d < 1 {
			return nil, reject(m, ErrInvalidSignature)
		}
	}
	if m.Carried() != m.Count {
		return nil, reject(m, ErrInvalidSignature)
	}

	top := b.Top(m.Row, m.Col)
	if top == nil {
		return nil, reject(m, ErrEmptySource)
	}
	if top.Color != c {
		return nil, reject(m, ErrNotController)
	}
	if m.Count > b.Height(m.Row, m.Col) {
		return nil, reject(m, ErrInvalidSignature)
	}

	dr, dc, ok := m.Direction.Step()
	if !ok {
		return nil, reject(m, ErrUnknownDirection)
	}
	steps := len(m.Drops)
	if !b.InBounds(m.Row+dr*steps, m.Col+dc*steps) {
		return nil, reject(m, ErrTargetOffBoard)
	}

	plan := &throwPlan{rows: make([]int, steps), cols: make([]int, steps)}
	for i := 0; i < steps; i++ {
		plan.rows[i] = m.Row + dr*(i+1)
		plan.cols[i] = m.Col + dc*(i+1)
	}

	// The carried stack keeps the source's top stone on top, so only a cap
	// on the source can reach a wall.
	last := steps - 1
	if end := b.Top(plan.rows[last], plan.cols[last]); end != nil {
		switch end.Kind {
		case Wall:
			if top.Kind != Cap {
				return nil, reject(m, ErrCannotCrushWithoutCapstone)
			}
			if m.Drops[last] != 1 {
				return nil, reject(m, ErrMustCrushAlone)
			}
		case Cap:
			return nil, reject(m, ErrCannotLandOnCapstone)
		}
	}

	for i := 0; i < last; i++ {
		if t := b.Top(plan.rows[i], plan.cols[i]); t != nil && t.Kind != Flat {
			return nil, reject(m, ErrBlockedByNonFlat)
		}
	}

	return plan, nil
}

func (s *State) throw(m *Move, plan *throwPlan) {
	hand := s.Board.Split(m.Row, m.Col, m.Count)
	if len(plan.rows) != len(m.Drops) {
		panic(fmt.Sprintf("throw plan for %q has %d squares for %d drops", m, len(plan.rows), len(m.Drops)))
	}

	// Drop from the far end back towards the source so each drop takes the
	// top of what is left in hand.
	for i := len(m.Drops) - 1; i >= 0; i-- {
		n := m.Drops[i]
		at := len(hand) - n
		s.Board.Push(plan.rows[i], plan.cols[i], hand[at:]...)
		hand = hand[:at]
	}

	if len(hand) != 0 {
		panic(fmt.Sprintf("throw %q left %d stones in hand", m, len(hand)))
	}
}
