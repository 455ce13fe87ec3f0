package takrules

import "fmt"

// Outcome is how a game stands after a ply.
type Outcome int

// Outcomes. Neither means the game goes on.
const (
	Neither Outcome = iota
	WhiteRoad
	BlackRoad
	WhiteFlat
	BlackFlat
	Draw
)

// Victory is the result of checking a position for a win. Flats is the
// winner's flat count, komi included, for flat wins.
type Victory struct {
	Outcome Outcome
	Flats   int
}

// String renders the victory as a PTN result.
func (v Victory) String() string {
	switch v.Outcome {
	case Neither:
		return "0-0"
	case WhiteRoad:
		return "R-0"
	case BlackRoad:
		return "0-R"
	case WhiteFlat:
		return "F-0"
	case BlackFlat:
		return "0-F"
	case Draw:
		return "1/2-1/2"
	}
	return fmt.Sprintf("Outcome(%d)", int(v.Outcome))
}

// Over reports whether the game has ended.
func (v Victory) Over() bool {
	return v.Outcome != Neither
}

// Winner returns the winning color. ok is false for draws and unfinished
// games.
func (v Victory) Winner() (c Color, ok bool) {
	switch v.Outcome {
	case WhiteRoad, WhiteFlat:
		return White, true
	case BlackRoad, BlackFlat:
		return Black, true
	}
	return White, false
}

type point struct {
	row, col int
}

// reached records which board edges a connected group touches.
type reached struct {
	north, south, east, west bool
}

func (r *reached) touch(b *Board, p point) {
	last := b.Size - 1
	if p.row == last {
		r.north = true
	}
	if p.row == 0 {
		r.south = true
	}
	if p.col == 0 {
		r.west = true
	}
	if p.col == last {
		r.east = true
	}
}

func (r *reached) road() bool {
	return (r.north && r.south) || (r.east && r.west)
}

// CheckWin decides the game after lastMover's ply. Roads are checked first;
// if both colors have one, lastMover wins. Without a road the game goes to a
// flat count, with komi added for black, once a player has run out of stones
// or the board is full. Capstones left in hand do not delay the count.
func (s *State) CheckWin(lastMover Color, komi int) Victory {
	white, black := s.roads()
	switch {
	case white && black:
		if lastMover == White {
			return Victory{Outcome: WhiteRoad}
		}
		return Victory{Outcome: BlackRoad}
	case white:
		return Victory{Outcome: WhiteRoad}
	case black:
		return Victory{Outcome: BlackRoad}
	}

	if s.White.OutOfStones() || s.Black.OutOfStones() || s.Board.Full() {
		return s.flatCount(komi)
	}

	return Victory{Outcome: Neither}
}

// roads scans every edge square for a road of either color. The visited set is
// shared by every group search, so each square is expanded at most once.
func (s *State) roads() (white, black bool) {
	b := s.Board
	visited := make([][]bool, b.Size)
	for r := range visited {
		visited[r] = make([]bool, b.Size)
	}

	for row := 0; row < b.Size; row++ {
		for col := 0; col < b.Size; col++ {
			if !b.IsEdge(row, col) || visited[row][col] {
				continue
			}
			top := b.Top(row, col)
			if top == nil {
				continue
			}
			if !top.IsRoad() {
				visited[row][col] = true
				continue
			}
			if (top.Color == White && white) || (top.Color == Black && black) {
				continue
			}

			if s.searchRoad(top.Color, point{row, col}, visited) {
				if top.Color == White {
					white = true
				} else {
					black = true
				}
				if white && black {
					return white, black
				}
			}
		}
	}

	return white, black
}

var neighbors = [...]point{{1, 0}, {0, 1}, {0, -1}, {-1, 0}}

// searchRoad walks the group of c's road stones containing start with an
// explicit stack and reports whether it joins two opposite edges.
func (s *State) searchRoad(c Color, start point, visited [][]bool) bool {
	b := s.Board
	var edges reached
	stack := []point{start}
	visited[start.row][start.col] = true

	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		edges.touch(b, p)
		if edges.road() {
			return true
		}

		for _, d := range neighbors {
			n := point{p.row + d.row, p.col + d.col}
			if !b.InBounds(n.row, n.col) || visited[n.row][n.col] {
				continue
			}
			top := b.Top(n.row, n.col)
			if top == nil || top.Color != c {
				continue
			}
			visited[n.row][n.col] = true
			if top.IsRoad() {
				stack = append(stack, n)
			}
		}
	}

	return false
}

func (s *State) flatCount(komi int) Victory {
	white, black := s.Flats()
	black += komi

	switch {
	case white > black:
		return Victory{Outcome: WhiteFlat, Flats: white}
	case black > white:
		return Victory{Outcome: BlackFlat, Flats: black}
	}
	return Victory{Outcome: Draw}
}

// Flats counts the flat stones on top of each square, without komi.
func (s *State) Flats() (white, black int) {
	for _, row := range s.Board.Squares {
		for _, sq := range row {
			top := sq.Top()
			if top == nil || top.Kind != Flat {
				continue
			}
			if top.Color == White {
				white++
			} else {
				black++
			}
		}
	}
	return white, black
}
