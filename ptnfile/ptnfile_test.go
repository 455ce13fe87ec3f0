package ptnfile

import (
	"testing"
)

const crushGame = `[Player1 "alice"]
[Player2 "bob"]
[Size "5"]
[Komi "0"]

1. a5 a1
2. b1 Sb5
3. Cc2 e5
4. b3 b2
5. b3- d4 {cap comes over}
6. c2< c5
7. 3b2+111
`

const roadGame = `[Size "3"]
[Result "R-0"]

1. a3 c3
2. a1 a2
3. b1 b2
4. c1 R-0
`

func TestLoad(t *testing.T) {
	rec, err := LoadString(crushGame)
	if err != nil {
		t.Fatalf("%+v", err)
	}

	if rec.Size != 5 || rec.Komi != 0 {
		t.Errorf("size %d komi %d", rec.Size, rec.Komi)
	}
	if len(rec.Moves) != 13 {
		t.Fatalf("expected 13 moves, got %d", len(rec.Moves))
	}
	if got := rec.Moves[12].String(); got != "3b2+111" {
		t.Errorf("last move %q", got)
	}
	if rec.Result != "" {
		t.Errorf("unexpected result %q", rec.Result)
	}

	var players int
	for _, tag := range rec.Meta {
		if tag.Key == "Player1" || tag.Key == "Player2" {
			players++
		}
	}
	if players != 2 {
		t.Errorf("expected both player tags, got %+v", rec.Meta)
	}
}

func TestLoadResult(t *testing.T) {
	rec, err := LoadString(roadGame)
	if err != nil {
		t.Fatalf("%+v", err)
	}
	if rec.Result != "R-0" {
		t.Errorf("result %q", rec.Result)
	}
	if len(rec.Moves) != 7 {
		t.Errorf("expected 7 moves, got %d", len(rec.Moves))
	}
}

func TestLoadErrors(t *testing.T) {
	tests := map[string]string{
		"no size":  "[Player1 \"alice\"]\n\n1. a1 a2\n",
		"bad size": "[Size \"five\"]\n\n1. a1 a2\n",
		"bad komi": "[Size \"5\"]\n[Komi \"half\"]\n\n1. a1 a2\n",
	}

	for name, text := range tests {
		t.Run(name, func(t *testing.T) {
			if _, err := LoadString(text); err == nil {
				t.Errorf("expected error")
			}
		})
	}
}
