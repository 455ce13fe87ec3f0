package takrules

import (
	"fmt"
)

// Square is a stack of stones, bottom first. The top stone is the last one.
type Square []Stone

// Top returns the top stone, or nil for an empty square.
func (s Square) Top() *Stone {
	if len(s) == 0 {
		return nil
	}
	return &s[len(s)-1]
}

// Board is a square grid of stacks. Squares is indexed [row][col], where row 0
// is rank 1 and col 0 is file a.
type Board struct {
	Size    int
	Squares [][]Square
}

// MinBoardSize and MaxBoardSize bound what PTN square names can address.
const (
	MinBoardSize = 3
	MaxBoardSize = 8
)

// NewBoard returns an empty board of the given size.
func NewBoard(size int) (*Board, error) {
	if size < MinBoardSize || size > MaxBoardSize {
		return nil, fmt.Errorf("%d is not a valid board size", size)
	}

	b := &Board{Size: size}
	b.Squares = make([][]Square, size)
	for r := range b.Squares {
		b.Squares[r] = make([]Square, size)
	}

	return b, nil
}

// InBounds reports whether row and col address a square on the board.
func (b *Board) InBounds(row, col int) bool {
	return row >= 0 && col >= 0 && row < b.Size && col < b.Size
}

// IsEmpty reports whether the square holds no stones.
func (b *Board) IsEmpty(row, col int) bool {
	return len(b.Squares[row][col]) == 0
}

// Top returns the top stone of a square, or nil if it is empty.
func (b *Board) Top(row, col int) *Stone {
	return b.Squares[row][col].Top()
}

// Height is the number of stones in a square.
func (b *Board) Height(row, col int) int {
	return len(b.Squares[row][col])
}

// Push puts stones on top of a square in the order given.
func (b *Board) Push(row, col int, stones ...Stone) {
	b.Squares[row][col] = append(b.Squares[row][col], stones...)
}

// Split removes the top n stones of a square and returns them bottom first.
func (b *Board) Split(row, col, n int) []Stone {
	sq := b.Squares[row][col]
	at := len(sq) - n
	out := make([]Stone, n)
	copy(out, sq[at:])
	b.Squares[row][col] = sq[:at:at]
	return out
}

// IsEdge reports whether a square lies on the edge of the board.
func (b *Board) IsEdge(row, col int) bool {
	last := b.Size - 1
	return row == 0 || col == 0 || row == last || col == last
}

// Full reports whether every square holds at least one stone.
func (b *Board) Full() bool {
	for _, row := range b.Squares {
		for _, sq := range row {
			if len(sq) == 0 {
				return false
			}
		}
	}
	return true
}

// Clone returns a deep copy of the board.
func (b *Board) Clone() *Board {
	c := &Board{Size: b.Size, Squares: make([][]Square, b.Size)}
	for r, row := range b.Squares {
		c.Squares[r] = make([]Square, b.Size)
		for col, sq := range row {
			if sq != nil {
				c.Squares[r][col] = append(Square{}, sq...)
			}
		}
	}
	return c
}

// SquareName returns the PTN name of a square, e.g. "a1" for row 0 col 0.
func SquareName(row, col int) string {
	return fmt.Sprintf("%c%d", 'a'+col, row+1)
}

// ParseSquare turns a PTN square name into row and col.
func ParseSquare(name string) (row, col int, err error) {
	if len(name) != 2 {
		return 0, 0, fmt.Errorf("invalid square %q", name)
	}
	f, r := name[0], name[1]
	if f >= 'A' && f <= 'H' {
		f += 'a' - 'A'
	}
	if f < 'a' || f > 'h' || r < '1' || r > '8' {
		return 0, 0, fmt.Errorf("invalid square %q", name)
	}
	return int(r - '1'), int(f - 'a'), nil
}
