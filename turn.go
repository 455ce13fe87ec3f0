package takrules

import "fmt"

// Turn is a single turn played in a game: white's ply then black's.
type Turn struct {
	Number int64
	First  string
	Second string
	Result string
}

// Text returns a PTN formated string of the turn.
func (t *Turn) Text() string {
	var move string
	switch {
	case t.First != "" && t.Second != "":
		move = fmt.Sprintf("%d. %s %s", t.Number, t.First, t.Second)
	case t.First != "":
		move = fmt.Sprintf("%d. %s", t.Number, t.First)
	}

	if t.Result != "" {
		move = fmt.Sprintf("%s %s", move, t.Result)
	}

	return move
}

// Turns groups the notation log into numbered turns of two plies.
func (s *State) Turns() []*Turn {
	var turns []*Turn
	for i, n := range s.Notation {
		if i%2 == 0 {
			turns = append(turns, &Turn{Number: int64(i/2 + 1), First: n})
			continue
		}
		turns[len(turns)-1].Second = n
	}
	return turns
}
