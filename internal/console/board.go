package console

import (
	"fmt"
	"io"

	"github.com/vancomm/sapper/internal/mines"
)

// Board draws a game on a text stream, one "[c] " token per cell.
type Board struct {
	out   io.Writer
	board *mines.Board
}

func NewBoard(out io.Writer) *Board {
	return &Board{out: out}
}

func (b *Board) SetBoard(board *mines.Board) {
	b.board = board
}

func (b *Board) DrawBoard() {
	b.redraw(false)
}

func (b *Board) DrawLose() {
	fmt.Fprintln(b.out, "***** BANG *****")
	b.redraw(true)
}

func (b *Board) DrawWin() {
	fmt.Fprintln(b.out, "***** CONGRATULATE *****")
	b.redraw(true)
}

// redraw prints the player's view, or the real contents of every cell when
// unfold is set.
func (b *Board) redraw(unfold bool) {
	if b.board == nil {
		return
	}
	for _, row := range b.board.Cells {
		for _, cell := range row {
			if unfold {
				fmt.Fprint(b.out, cellUnfold(cell))
			} else {
				fmt.Fprint(b.out, cellSuggest(cell))
			}
		}
		fmt.Fprintln(b.out)
	}
	fmt.Fprintln(b.out)
}

func cellSuggest(c mines.Cell) string {
	switch c.Suggestion() {
	case mines.Flagged:
		return "[?] "
	case mines.Revealed:
		return cellEmpty(c)
	default:
		return "[X] "
	}
}

func cellUnfold(c mines.Cell) string {
	if c.HasBomb() {
		return "[*] "
	}
	return cellEmpty(c)
}

func cellEmpty(c mines.Cell) string {
	if c.NeighborBombCount() == 0 {
		return "[ ] "
	}
	return fmt.Sprintf("[%d] ", c.NeighborBombCount())
}
