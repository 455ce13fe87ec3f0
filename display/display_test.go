package display

import (
	"strings"
	"testing"

	"github.com/icco/takrules"
)

func newGame(t *testing.T, size int, moves ...string) *takrules.Game {
	t.Helper()
	g, err := takrules.NewGame(size, takrules.Rules{})
	if err != nil {
		t.Fatalf("Failed to create game: %v", err)
	}
	for _, mv := range moves {
		if _, err := g.DoPly(takrules.MustMove(mv)); err != nil {
			t.Fatalf("%s: %v", mv, err)
		}
	}
	return g
}

func TestStack(t *testing.T) {
	w := takrules.Stone{Color: takrules.White, Kind: takrules.Flat}
	k := takrules.Stone{Color: takrules.Black, Kind: takrules.Flat}
	kw := takrules.Stone{Color: takrules.Black, Kind: takrules.Wall}
	wc := takrules.Stone{Color: takrules.White, Kind: takrules.Cap}

	tests := []struct {
		sq   takrules.Square
		want string
	}{
		{nil, "x"},
		{takrules.Square{w}, "1"},
		{takrules.Square{k, w}, "21"},
		{takrules.Square{w, kw}, "12S"},
		{takrules.Square{k, k, wc}, "221C"},
	}

	for _, tc := range tests {
		t.Run(tc.want, func(t *testing.T) {
			if got := Stack(tc.sq); got != tc.want {
				t.Errorf("got %q, want %q", got, tc.want)
			}
		})
	}
}

func TestTPS(t *testing.T) {
	g := newGame(t, 5)
	if got, want := TPS(g), "x5/x5/x5/x5/x5 1 1"; got != want {
		t.Errorf("empty board: got %q, want %q", got, want)
	}

	g = newGame(t, 5, "a5", "a1", "b1", "Sb5", "Cc2")
	if got, want := TPS(g), "2,2S,x3/x5/x5/x2,1C,x2/1,1,x3 2 3"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestRenderResult(t *testing.T) {
	g := newGame(t, 3, "a3", "c3", "a1", "a2", "b1", "b2")
	if _, err := g.DoPly(takrules.MustMove("c1")); err != nil {
		t.Fatalf("%+v", err)
	}

	if out := Render(g); !strings.Contains(out, "4. c1 R-0") {
		t.Errorf("render is missing the result:\n%s", out)
	}
}

func TestRender(t *testing.T) {
	g := newGame(t, 5, "a5", "a1", "b1", "Sb5", "Cc2")
	out := Render(g)

	for _, want := range []string{"2S", "1C", "1. a5 a1", "3. Cc2", "black to move", "white: 19 stones, 0 capstones"} {
		if !strings.Contains(out, want) {
			t.Errorf("render is missing %q:\n%s", want, out)
		}
	}
}
