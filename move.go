package takrules

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// MoveType says whether a move places a new stone or throws a stack.
type MoveType int

// Move types.
const (
	Place MoveType = iota
	Throw
)

// Direction is the direction a stack is thrown in, as written in PTN.
type Direction byte

// Directions
const (
	MoveUp    Direction = '+'
	MoveDown  Direction = '-'
	MoveLeft  Direction = '<'
	MoveRight Direction = '>'
)

// Step returns the row and col offset of one step in the direction. ok is
// false for anything that is not one of the four PTN directions.
func (d Direction) Step() (dr, dc int, ok bool) {
	switch d {
	case MoveUp:
		return 1, 0, true
	case MoveDown:
		return -1, 0, true
	case MoveLeft:
		return 0, -1, true
	case MoveRight:
		return 0, 1, true
	}
	return 0, 0, false
}

func (d Direction) String() string {
	return string(d)
}

// Move is a single move in Tak, either a placement or a stack throw.
type Move struct {
	Type MoveType

	// Place only
	Kind StoneKind

	// Both. For a throw this is the source square.
	Row int
	Col int

	// Throw only
	Count     int
	Direction Direction
	Drops     []int

	Text string
}

// (stone)(square)
var placeRegex = regexp.MustCompile(`^([CSFcsf])?([a-h][1-8])$`)

// (count)(square)(direction)(drop counts)(stone)(crush)
var moveRegex = regexp.MustCompile(`^([1-8])?([a-h][1-8])([<>+\-])([1-8]*)([CSF])?(\*)?$`)

// NewMove takes in a move string and returns a move object that has been
// parsed.
func NewMove(mv string) (*Move, error) {
	// Strip quote marks, question marks, and exclamation marks from moves (PTN annotations)
	mv = strings.Trim(strings.TrimSpace(mv), "\"'?!")
	m := &Move{Text: mv}
	err := m.Parse()
	return m, err
}

// MustMove is NewMove for notation known to be valid. It panics otherwise.
func MustMove(mv string) *Move {
	m, err := NewMove(mv)
	if err != nil {
		panic(err)
	}
	return m
}

// NewPlace builds a placement move and its notation.
func NewPlace(kind StoneKind, row, col int) *Move {
	m := &Move{Type: Place, Kind: kind, Row: row, Col: col}
	m.Text = m.Format()
	return m
}

// NewThrow builds a throw of sum(drops) stones from a square and its notation.
func NewThrow(row, col int, dir Direction, drops ...int) *Move {
	count := 0
	for _, d := range drops {
		count += d
	}
	m := &Move{Type: Throw, Row: row, Col: col, Count: count, Direction: dir, Drops: drops}
	m.Text = m.Format()
	return m
}

// Parse takes the Text of a move and fills the rest of the attributes of the
// Move object. It will overright past parses or data stored in the move.
func (m *Move) Parse() error {
	if m.Text == "" {
		return fmt.Errorf("move cannot be empty")
	}

	if placeRegex.MatchString(m.Text) {
		return m.parsePlace()
	}

	if moveRegex.MatchString(m.Text) {
		return m.parseThrow()
	}

	return fmt.Errorf("invalid move format: %s", m.Text)
}

func (m *Move) parsePlace() error {
	parts := placeRegex.FindStringSubmatch(m.Text)

	row, col, err := ParseSquare(parts[2])
	if err != nil {
		return err
	}

	m.Type = Place
	m.Row, m.Col = row, col
	m.Count, m.Direction, m.Drops = 0, 0, nil

	switch strings.ToUpper(parts[1]) {
	case StoneStanding:
		m.Kind = Wall
	case StoneCap:
		m.Kind = Cap
	default:
		m.Kind = Flat
	}

	return nil
}

// parseThrow reads a stack move. An omitted drop list drops the whole carried
// stack on the first square, so "3a1+" is "3a1+3" rather than "3a1+1".
func (m *Move) parseThrow() error {
	parts := moveRegex.FindStringSubmatch(m.Text)

	countStr := parts[1]
	if countStr == "" {
		countStr = "1"
	}
	count, err := strconv.Atoi(countStr)
	if err != nil {
		return err
	}

	row, col, err := ParseSquare(parts[2])
	if err != nil {
		return err
	}

	m.Type = Throw
	m.Kind = Flat
	m.Row, m.Col = row, col
	m.Count = count
	m.Direction = Direction(parts[3][0])
	m.Drops = []int{}

	drpCountStr := parts[4]
	if drpCountStr == "" {
		drpCountStr = countStr
	}
	total := 0
	for _, ch := range drpCountStr {
		drop := int(ch - '0')
		total += drop
		if total > count {
			return fmt.Errorf("tried to drop more pieces than available: %d > %d", total, count)
		}
		m.Drops = append(m.Drops, drop)
	}

	if total != count {
		return fmt.Errorf("did not drop same pieces picked up: %d != %d", total, count)
	}

	return nil
}

// Format renders the move in canonical PTN, ignoring Text.
func (m *Move) Format() string {
	sq := SquareName(m.Row, m.Col)
	if m.Type == Place {
		if m.Kind == Flat {
			return sq
		}
		return m.Kind.String() + sq
	}

	var b strings.Builder
	if m.Count != 1 {
		b.WriteString(strconv.Itoa(m.Count))
	}
	b.WriteString(sq)
	b.WriteByte(byte(m.Direction))
	if len(m.Drops) != 1 || m.Drops[0] != m.Count {
		for _, d := range m.Drops {
			b.WriteString(strconv.Itoa(d))
		}
	}
	return b.String()
}

// String returns the notation the move was created from, or its canonical
// form when it was built in code without one.
func (m *Move) String() string {
	if m.Text != "" {
		return m.Text
	}
	return m.Format()
}

// Carried is the number of stones a throw picks up.
func (m *Move) Carried() int {
	sum := 0
	for _, d := range m.Drops {
		sum += d
	}
	return sum
}
