package tui

import (
	"strconv"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/vancomm/sapper/internal/mines"
)

var countColors = [...]tcell.Color{
	1: tcell.ColorBlue,
	2: tcell.ColorGreen,
	3: tcell.ColorRed,
	4: tcell.ColorNavy,
	5: tcell.ColorMaroon,
	6: tcell.ColorTeal,
	7: tcell.ColorWhite,
	8: tcell.ColorGray,
}

// Board renders a game into a tview table, one table cell per board cell.
type Board struct {
	table  *tview.Table
	status *tview.TextView
	board  *mines.Board
	banner string
}

func NewBoard() *Board {
	b := &Board{
		table:  tview.NewTable(),
		status: tview.NewTextView(),
	}
	b.table.SetSelectable(true, true)
	b.table.SetBorder(true).SetTitle(" sapper ")
	return b
}

func (b *Board) Table() *tview.Table { return b.table }

func (b *Board) Status() *tview.TextView { return b.status }

func (b *Board) SetBoard(board *mines.Board) {
	b.board = board
	b.table.Clear()
	b.table.Select(0, 0)
}

func (b *Board) DrawBoard() {
	b.banner = ""
	b.redraw(false)
}

func (b *Board) DrawLose() {
	b.banner = "BANG"
	b.redraw(true)
}

func (b *Board) DrawWin() {
	b.banner = "CONGRATULATE"
	b.redraw(true)
}

// SetStatus replaces the line shown under the board.
func (b *Board) SetStatus(text string) {
	b.status.SetText(text)
}

func (b *Board) redraw(unfold bool) {
	if b.board == nil {
		return
	}
	for y, row := range b.board.Cells {
		for x, cell := range row {
			text, color := cellText(cell, unfold)
			b.table.SetCell(y, x, tview.NewTableCell(text).
				SetTextColor(color).
				SetAlign(tview.AlignCenter))
		}
	}
}

func cellText(c mines.Cell, unfold bool) (string, tcell.Color) {
	switch {
	case unfold && c.HasBomb():
		return "*", tcell.ColorRed
	case !unfold && c.IsFlagged():
		return "?", tcell.ColorYellow
	case !unfold && !c.IsRevealed():
		return "X", tcell.ColorDarkGray
	}
	n := c.NeighborBombCount()
	if n == 0 {
		return " ", tcell.ColorDefault
	}
	return strconv.Itoa(n), countColors[n]
}

// statusText describes the game state for the status line.
func statusText(l *mines.Logic, banner string) string {
	if l.IsOver() {
		return "***** " + banner + " *****  n: new game  q: quit"
	}
	return "Bombs remained: " + strconv.Itoa(l.RemainingBombCount()) +
		"  enter/space: open  f: flag  n: new game  q: quit"
}
