package takrules

import (
	"errors"
	"testing"
)

// playMoves plays each move in order and fails the test if one is rejected or
// ends the game.
func playMoves(t *testing.T, game *Game, moves ...string) {
	t.Helper()
	for _, mv := range moves {
		m, err := NewMove(mv)
		if err != nil {
			t.Fatalf("error creating move %q: %+v", mv, err)
		}
		v, err := game.DoPly(m)
		if err != nil {
			t.Fatalf("ply %d %q: %v", game.CurrentPly(), mv, err)
		}
		if v.Over() {
			t.Fatalf("%q ended the game: %s", mv, v)
		}
	}
}

func TestGameOver(t *testing.T) {
	game, err := NewGame(6, Rules{})
	if err != nil {
		t.Errorf("%+v", err)
	}

	if v := game.CheckWin(White); v.Over() {
		t.Errorf("Game over on empty board: %s", v)
	}
}

func TestOpeningColors(t *testing.T) {
	game, err := NewGame(5, Rules{})
	if err != nil {
		t.Fatalf("Failed to create game: %v", err)
	}

	if !game.IsOpening() || game.ToMove() != White || game.CurrentColor() != Black {
		t.Fatalf("ply 0: opening=%v to move=%s color=%s", game.IsOpening(), game.ToMove(), game.CurrentColor())
	}

	playMoves(t, game, "a1")
	if top := game.State.Board.Top(0, 0); top == nil || top.Color != Black {
		t.Errorf("Expected black stone at a1 (placed by white), got %v", top)
	}
	if game.ToMove() != Black || game.CurrentColor() != White {
		t.Errorf("ply 1: to move=%s color=%s", game.ToMove(), game.CurrentColor())
	}

	playMoves(t, game, "e5")
	if top := game.State.Board.Top(4, 4); top == nil || top.Color != White {
		t.Errorf("Expected white stone at e5 (placed by black), got %v", top)
	}

	if game.IsOpening() {
		t.Errorf("opening should be over at ply %d", game.CurrentPly())
	}
	if game.ToMove() != White || game.CurrentColor() != White {
		t.Errorf("ply 2: to move=%s color=%s", game.ToMove(), game.CurrentColor())
	}

	playMoves(t, game, "c1", "d1")
	if top := game.State.Board.Top(0, 2); top == nil || top.Color != White {
		t.Errorf("Expected white stone at c1, got %v", top)
	}
	if top := game.State.Board.Top(0, 3); top == nil || top.Color != Black {
		t.Errorf("Expected black stone at d1, got %v", top)
	}
}

func TestOpeningOnlyFlats(t *testing.T) {
	game, err := NewGame(5, Rules{})
	if err != nil {
		t.Fatalf("Failed to create game: %v", err)
	}

	assertRejected(t, game, MustMove("Sa1"), ErrIllegalDuringOpening)
	assertRejected(t, game, MustMove("Ca1"), ErrIllegalDuringOpening)

	playMoves(t, game, "a1")

	assertRejected(t, game, MustMove("a1+"), ErrIllegalDuringOpening)
	assertRejected(t, game, MustMove("Cb2"), ErrIllegalDuringOpening)
	assertRejected(t, game, MustMove("a1"), ErrOccupiedSquare)

	if game.CurrentPly() != 1 {
		t.Errorf("rejected moves advanced the ply to %d", game.CurrentPly())
	}
}

func TestPlyCounting(t *testing.T) {
	game, err := NewGame(5, Rules{})
	if err != nil {
		t.Fatalf("Failed to create game: %v", err)
	}

	moves := []string{"a5", "a1", "b1", "Sb5"}
	for i, mv := range moves {
		if game.CurrentPly() != i {
			t.Fatalf("before %s: ply %d, want %d", mv, game.CurrentPly(), i)
		}
		playMoves(t, game, mv)
	}

	if _, err := game.DoPly(MustMove("b1")); err == nil {
		t.Fatalf("expected b1 to be rejected")
	}
	if game.CurrentPly() != len(moves) || len(game.State.Notation) != len(moves) {
		t.Errorf("rejected ply changed the count: %d", game.CurrentPly())
	}
	for i, mv := range moves {
		if game.State.Notation[i] != mv {
			t.Errorf("notation[%d] = %q, want %q", i, game.State.Notation[i], mv)
		}
	}
}

func TestCapstoneCrushScript(t *testing.T) {
	game, err := NewGame(5, Rules{})
	if err != nil {
		t.Fatalf("Failed to create game: %v", err)
	}
	playMoves(t, game, "a5", "a1", "b1", "Sb5", "Cc2", "e5", "b3", "b2", "b3-", "d4", "c2<", "c5")

	v, err := game.DoPly(MustMove("3b2+111"))
	if err != nil {
		t.Fatalf("crush failed: %v", err)
	}
	if v.Outcome != Neither {
		t.Errorf("expected 0-0, got %s", v)
	}

	b := game.State.Board
	if !b.IsEmpty(1, 1) {
		t.Errorf("b2 should be empty, has %v", b.Squares[1][1])
	}
	if top := b.Top(2, 1); top == nil || *top != (Stone{Color: Black, Kind: Flat}) {
		t.Errorf("b3 top = %v", top)
	}
	if top := b.Top(3, 1); top == nil || *top != (Stone{Color: White, Kind: Flat}) {
		t.Errorf("b4 top = %v", top)
	}
	b5 := b.Squares[4][1]
	if len(b5) != 2 || b5[0] != (Stone{Color: Black, Kind: Wall}) || b5[1] != (Stone{Color: White, Kind: Cap}) {
		t.Errorf("b5 = %v", b5)
	}
}

func TestCapCannotFlattenCap(t *testing.T) {
	game, err := NewGame(5, Rules{})
	if err != nil {
		t.Fatalf("Failed to create game: %v", err)
	}
	playMoves(t, game, "a5", "a1", "b1", "c1", "b2", "c2", "b3", "c3", "Cb4", "Cb5")

	_, err = game.DoPly(MustMove("b4+"))
	if !errors.Is(err, ErrCannotLandOnCapstone) {
		t.Errorf("expected %v, got %v", ErrCannotLandOnCapstone, err)
	}
}

func TestMeta(t *testing.T) {
	game, err := NewGame(6, Rules{Komi: 2})
	if err != nil {
		t.Fatalf("Failed to create game: %v", err)
	}

	for k, want := range map[string]string{"Size": "6", "Komi": "2"} {
		got, err := game.GetMeta(k)
		if err != nil || got != want {
			t.Errorf("GetMeta(%s) = %q, %v", k, got, err)
		}
	}

	if _, err := game.GetMeta("Player1"); err == nil {
		t.Errorf("expected error for a missing key")
	}

	if err := game.UpdateMeta("Player1", "alice"); err != nil {
		t.Fatal(err)
	}
	if err := game.UpdateMeta("Player1", "bob"); err != nil {
		t.Fatal(err)
	}
	if got, _ := game.GetMeta("Player1"); got != "bob" {
		t.Errorf("Player1 = %q", got)
	}
	if err := game.UpdateMeta("", "x"); err == nil {
		t.Errorf("expected error for empty key")
	}
}

func TestTurns(t *testing.T) {
	game, err := NewGame(5, Rules{})
	if err != nil {
		t.Fatalf("Failed to create game: %v", err)
	}
	playMoves(t, game, "a5", "a1", "b1")

	turns := game.Turns()
	if len(turns) != 2 {
		t.Fatalf("expected 2 turns, got %d", len(turns))
	}
	if got := turns[0].Text(); got != "1. a5 a1" {
		t.Errorf("turn 1 = %q", got)
	}
	if got := turns[1].Text(); got != "2. b1" {
		t.Errorf("turn 2 = %q", got)
	}

}

func TestTurnsWithResult(t *testing.T) {
	game, err := NewGame(3, Rules{})
	if err != nil {
		t.Fatalf("Failed to create game: %v", err)
	}
	playMoves(t, game, "a3", "c3", "a1", "a2", "b1", "b2")

	v, err := game.DoPly(MustMove("c1"))
	if err != nil {
		t.Fatalf("%+v", err)
	}
	if game.Result != v || v.Outcome != WhiteRoad {
		t.Fatalf("expected the game to record R-0, got %s (returned %s)", game.Result, v)
	}

	turns := game.Turns()
	if got := turns[len(turns)-1].Text(); got != "4. c1 R-0" {
		t.Errorf("last turn = %q", got)
	}
	if got := turns[0].Text(); got != "1. a3 c3" {
		t.Errorf("turn 1 = %q", got)
	}
}
