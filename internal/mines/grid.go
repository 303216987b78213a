package mines

import (
	"fmt"
	"strconv"
	"strings"
)

type Bomb int8

const (
	NoBomb Bomb = iota
	HasBomb
)

type Suggestion int8

const (
	Hidden Suggestion = iota
	Flagged
	Revealed
)

func (s Suggestion) String() string {
	switch s {
	case Hidden:
		return "hidden"
	case Flagged:
		return "flagged"
	case Revealed:
		return "revealed"
	default:
		return "unknown"
	}
}

// Cell is a single square of the board. Its bomb and neighbor count are fixed
// at generation time; the suggestion is changed only by [Logic].
type Cell struct {
	bomb       Bomb
	neighbors  int
	suggestion Suggestion
}

func NewCell(bomb Bomb, neighborBombCount int) Cell {
	return Cell{bomb: bomb, neighbors: neighborBombCount}
}

func (c Cell) Bomb() Bomb { return c.bomb }

func (c Cell) HasBomb() bool { return c.bomb != NoBomb }

func (c Cell) NeighborBombCount() int { return c.neighbors }

func (c Cell) Suggestion() Suggestion { return c.suggestion }

func (c Cell) IsRevealed() bool { return c.suggestion == Revealed }

func (c Cell) IsFlagged() bool { return c.suggestion == Flagged }

// String renders the player's view of the cell.
func (c Cell) String() string {
	switch c.suggestion {
	case Flagged:
		return "?"
	case Revealed:
		if c.HasBomb() {
			return "*"
		}
		return strconv.Itoa(c.neighbors)
	default:
		return "X"
	}
}

// Board is a row-major grid of cells: Cells[y][x].
type Board struct {
	Cells [][]Cell
}

func NewBoard(cells [][]Cell) *Board {
	return &Board{Cells: cells}
}

func (b *Board) Height() int {
	return len(b.Cells)
}

func (b *Board) Width() int {
	if len(b.Cells) == 0 {
		return 0
	}
	return len(b.Cells[0])
}

func (b *Board) InBounds(x, y int) bool {
	return 0 <= x && x < b.Width() && 0 <= y && y < b.Height()
}

// Cell returns a copy of the cell at x:y.
func (b *Board) Cell(x, y int) (Cell, bool) {
	if !b.InBounds(x, y) {
		return Cell{}, false
	}
	return b.Cells[y][x], true
}

func (b *Board) cell(x, y int) *Cell {
	return &b.Cells[y][x]
}

func (b *Board) BombCount() (n int) {
	for _, row := range b.Cells {
		for _, c := range row {
			if c.HasBomb() {
				n++
			}
		}
	}
	return
}

// Validate checks that the board is non-empty and rectangular.
func (b *Board) Validate() error {
	if b == nil || len(b.Cells) == 0 {
		return &BoardError{"board can't have zero height"}
	}
	if len(b.Cells[0]) == 0 {
		return &BoardError{"board can't have zero width"}
	}
	for y, row := range b.Cells {
		if len(row) != len(b.Cells[0]) {
			return &BoardError{fmt.Sprintf(
				"wrong board dimensions: row %d has %d cells, expected %d",
				y, len(row), len(b.Cells[0]),
			)}
		}
	}
	return nil
}

// neighbors calls fn for every in-bounds cell at Chebyshev distance 1 of x:y.
func (b *Board) neighbors(x, y int, fn func(xx, yy int)) {
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			if b.InBounds(x+dx, y+dy) {
				fn(x+dx, y+dy)
			}
		}
	}
}

func (b *Board) String() string {
	var sb strings.Builder
	for _, row := range b.Cells {
		for x, c := range row {
			if x > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(c.String())
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Layout renders bomb placement in the format read by [ParseLayout].
func (b *Board) Layout() string {
	var sb strings.Builder
	for y, row := range b.Cells {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for _, c := range row {
			if c.HasBomb() {
				sb.WriteByte('*')
			} else {
				sb.WriteByte('.')
			}
		}
	}
	return sb.String()
}

// ParseLayout builds a hidden board from rows of '*' (bomb) and '.' (empty)
// separated by newlines. Surrounding whitespace on each row is ignored.
func ParseLayout(layout string) (*Board, error) {
	var bombs [][]bool
	for _, line := range strings.Split(strings.TrimSpace(layout), "\n") {
		line = strings.TrimSpace(line)
		row := make([]bool, 0, len(line))
		for _, r := range line {
			switch r {
			case '*':
				row = append(row, true)
			case '.':
				row = append(row, false)
			default:
				return nil, &BoardError{fmt.Sprintf("unexpected layout symbol %q", r)}
			}
		}
		bombs = append(bombs, row)
	}
	shape := &Board{Cells: make([][]Cell, len(bombs))}
	for y, row := range bombs {
		shape.Cells[y] = make([]Cell, len(row))
	}
	if err := shape.Validate(); err != nil {
		return nil, err
	}
	return fromBombs(bombs), nil
}

// fromBombs builds cells from a rectangular bomb mask, counting neighbor bombs
// for every empty cell.
func fromBombs(bombs [][]bool) *Board {
	mask := &Board{Cells: make([][]Cell, len(bombs))}
	for y, row := range bombs {
		mask.Cells[y] = make([]Cell, len(row))
		for x, bomb := range row {
			if bomb {
				mask.Cells[y][x].bomb = HasBomb
			}
		}
	}
	for y, row := range mask.Cells {
		for x := range row {
			if row[x].HasBomb() {
				continue
			}
			c := 0
			mask.neighbors(x, y, func(xx, yy int) {
				if mask.Cells[yy][xx].HasBomb() {
					c++
				}
			})
			row[x].neighbors = c
		}
	}
	return mask
}
