package playtak

import (
	"fmt"
	"strings"

	"github.com/nelhage/taktician/playtak"
	"github.com/nelhage/taktician/ptn"

	"github.com/icco/takrules"
)

// DecodeNotation turns the server's comma separated move list into moves.
// Placements look like "P A1", "P A1 W" or "P A1 C"; throws look like
// "M A1 A3 1 2", naming the source, the last square and the drop counts.
func DecodeNotation(notation string) ([]*takrules.Move, error) {
	var moves []*takrules.Move
	if strings.TrimSpace(notation) == "" {
		return moves, nil
	}

	for i, raw := range strings.Split(notation, ",") {
		text, err := ToPTN(raw)
		if err != nil {
			return nil, fmt.Errorf("ply %d: %w", i, err)
		}
		mv, err := takrules.NewMove(text)
		if err != nil {
			return nil, fmt.Errorf("ply %d: %w", i, err)
		}
		moves = append(moves, mv)
	}

	return moves, nil
}

// ToPTN converts one server move into PTN.
func ToPTN(raw string) (string, error) {
	m, err := playtak.ParseServer(strings.TrimSpace(raw))
	if err != nil {
		return "", fmt.Errorf("server move %q: %w", raw, err)
	}
	return ptn.FormatMove(m), nil
}
