// Package display renders games as text for terminals and logs.
package display

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/icco/takrules"
)

var (
	boardStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)

	cellStyle = lipgloss.NewStyle().
			Width(6).
			Align(lipgloss.Center)

	labelStyle = lipgloss.NewStyle().
			Width(2).
			Foreground(lipgloss.Color("245"))

	whiteStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("230")).Bold(true)
	blackStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("99")).Bold(true)
)

// Stack renders a square bottom to top in TPS style: 1 for white, 2 for
// black, with S or C after the top stone if it is a wall or capstone.
func Stack(sq takrules.Square) string {
	if len(sq) == 0 {
		return "x"
	}

	var b strings.Builder
	for _, st := range sq {
		if st.Color == takrules.White {
			b.WriteByte('1')
		} else {
			b.WriteByte('2')
		}
	}
	if top := sq.Top(); top.Kind != takrules.Flat {
		b.WriteString(top.Kind.String())
	}
	return b.String()
}

// TPS renders the position in Tak Positional System notation: ranks from the
// top of the board down, runs of empty squares collapsed, then the player to
// move and the move number.
func TPS(g *takrules.Game) string {
	b := g.State.Board
	rows := make([]string, 0, b.Size)
	for r := b.Size - 1; r >= 0; r-- {
		var cells []string
		empty := 0
		for c := 0; c < b.Size; c++ {
			sq := b.Squares[r][c]
			if len(sq) == 0 {
				empty++
				continue
			}
			if empty > 0 {
				cells = append(cells, emptyRun(empty))
				empty = 0
			}
			cells = append(cells, Stack(sq))
		}
		if empty > 0 {
			cells = append(cells, emptyRun(empty))
		}
		rows = append(rows, strings.Join(cells, ","))
	}

	player := 1
	if g.ToMove() == takrules.Black {
		player = 2
	}
	return fmt.Sprintf("%s %d %d", strings.Join(rows, "/"), player, g.CurrentPly()/2+1)
}

func emptyRun(n int) string {
	if n == 1 {
		return "x"
	}
	return fmt.Sprintf("x%d", n)
}

// Render draws the board with rank and file labels, followed by both reserves,
// whose turn it is and the move list.
func Render(g *takrules.Game) string {
	b := g.State.Board

	var lines []string
	for r := b.Size - 1; r >= 0; r-- {
		cells := []string{labelStyle.Render(fmt.Sprintf("%d", r+1))}
		for c := 0; c < b.Size; c++ {
			cells = append(cells, cellStyle.Render(styleStack(b.Squares[r][c])))
		}
		lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}

	files := []string{labelStyle.Render("")}
	for c := 0; c < b.Size; c++ {
		files = append(files, cellStyle.Render(string(rune('a'+c))))
	}
	lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top, files...))

	board := boardStyle.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))

	footer := []string{
		g.State.White.String(),
		g.State.Black.String(),
		fmt.Sprintf("ply %d, %s to move", g.CurrentPly(), g.ToMove()),
	}
	for _, t := range g.Turns() {
		footer = append(footer, t.Text())
	}

	return lipgloss.JoinVertical(lipgloss.Left, board, strings.Join(footer, "\n"))
}

func styleStack(sq takrules.Square) string {
	s := Stack(sq)
	top := sq.Top()
	switch {
	case top == nil:
		return "·"
	case top.Color == takrules.White:
		return whiteStyle.Render(s)
	default:
		return blackStyle.Render(s)
	}
}
