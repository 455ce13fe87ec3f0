package takrules

import (
	"fmt"

	"go.uber.org/zap"
)

// Game is a game in progress: the position, the rules it is played under and
// any meta tags. Game sequences plies and applies the opening rule on top of
// the move engine.
type Game struct {
	State *State
	Rules Rules
	Meta  []*Tag

	// Result is set by the ply that ends the game.
	Result Victory
}

// NewGame creates a game on an empty board of the given size.
func NewGame(size int, rules Rules) (*Game, error) {
	s, err := NewState(size, rules)
	if err != nil {
		return nil, err
	}

	g := &Game{State: s, Rules: rules}
	g.Meta = []*Tag{
		{Key: "Size", Value: fmt.Sprintf("%d", size)},
		{Key: "Komi", Value: fmt.Sprintf("%d", rules.Komi)},
	}

	return g, nil
}

// CurrentPly is the 0-indexed number of the next ply.
func (g *Game) CurrentPly() int {
	return g.State.Ply()
}

// IsOpening reports whether the game is in the opening, the first two plies,
// where each player places one of the opponent's flats.
func (g *Game) IsOpening() bool {
	return g.CurrentPly() < 2
}

// ToMove returns the player whose turn it is.
func (g *Game) ToMove() Color {
	if g.CurrentPly()%2 == 0 {
		return White
	}
	return Black
}

// CurrentColor is the color of a stone if one were placed now. It is the
// player to move, except in the opening where the colors are swapped.
func (g *Game) CurrentColor() Color {
	if g.IsOpening() {
		return g.ToMove().Opponent()
	}
	return g.ToMove()
}

// LegalMove reports whether a move could be played now. It does not change the
// game.
func (g *Game) LegalMove(m *Move) bool {
	if err := g.checkOpening(m); err != nil {
		return false
	}
	return g.State.CheckMove(m, g.CurrentColor()) == nil
}

// MakeMove plays a move for the current player. A rejected move returns a
// *MoveError and leaves the game unchanged.
func (g *Game) MakeMove(m *Move) error {
	if err := g.checkOpening(m); err != nil {
		return err
	}
	return g.State.Execute(m, g.CurrentColor())
}

func (g *Game) checkOpening(m *Move) error {
	if !g.IsOpening() {
		return nil
	}
	if m.Type != Place || m.Kind != Flat {
		return reject(m, ErrIllegalDuringOpening)
	}
	return nil
}

// CheckWin decides the current position after lastMover's ply.
func (g *Game) CheckWin(lastMover Color) Victory {
	return g.State.CheckWin(lastMover, g.Rules.Komi)
}

// DoPly plays one ply and reports the state of the game afterwards. Opening
// plies always report Neither.
func (g *Game) DoPly(m *Move) (Victory, error) {
	mover := g.ToMove()
	opening := g.IsOpening()

	if err := g.MakeMove(m); err != nil {
		log.Debugw("rejected move", "move", m.String(), "ply", g.CurrentPly(), "player", mover.String(), zap.Error(err))
		return Victory{Outcome: Neither}, err
	}

	if opening {
		return Victory{Outcome: Neither}, nil
	}

	v := g.CheckWin(mover)
	if v.Over() {
		g.Result = v
		log.Infow("game over", "result", v.String(), "ply", g.CurrentPly(), "flats", v.Flats)
	}
	return v, nil
}

// Turns returns the played plies grouped into numbered turns. Once the game
// is over the last turn carries the result.
func (g *Game) Turns() []*Turn {
	turns := g.State.Turns()
	if g.Result.Over() && len(turns) > 0 {
		turns[len(turns)-1].Result = g.Result.String()
	}
	return turns
}

// GetMeta does a linear search for the key specified and returns the value. It
// returns an error if the key does not exist.
func (g *Game) GetMeta(key string) (string, error) {
	for _, t := range g.Meta {
		if t != nil && t.Key == key {
			return t.Value, nil
		}
	}

	return "", fmt.Errorf("No such meta key '%s'", key)
}

// UpdateMeta sets a meta tag, adding it if it does not exist yet.
func (g *Game) UpdateMeta(key, value string) error {
	if key == "" {
		return fmt.Errorf("meta key cannot be empty")
	}

	for _, t := range g.Meta {
		if t != nil && t.Key == key {
			t.Value = value
			return nil
		}
	}

	g.Meta = append(g.Meta, &Tag{Key: key, Value: value})
	return nil
}
