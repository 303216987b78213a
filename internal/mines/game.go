package mines

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

var Log = logrus.New()

type Phase int8

const (
	Active Phase = iota
	Won
	Lost
)

func (p Phase) String() string {
	switch p {
	case Active:
		return "active"
	case Won:
		return "won"
	case Lost:
		return "lost"
	default:
		return "unknown"
	}
}

type SuggestKind int8

const (
	Reveal SuggestKind = iota + 1
	Flag
	Unflag
)

func (k SuggestKind) String() string {
	switch k {
	case Reveal:
		return "reveal"
	case Flag:
		return "flag"
	case Unflag:
		return "unflag"
	default:
		return "unknown"
	}
}

func (k SuggestKind) suggestion() Suggestion {
	switch k {
	case Reveal:
		return Revealed
	case Flag:
		return Flagged
	default:
		return Hidden
	}
}

// Logic owns one board and applies the player's suggestions to it. A Logic is
// used by a single game session and is not safe for concurrent use.
type Logic struct {
	board         *Board
	width, height int

	bombCount           int /* total bombs on board */
	suggestedBombCount  int /* cells currently flagged */
	correctSuggestCount int /* flags on bombs plus reveals of empty cells */
	phase               Phase
}

func NewLogic() *Logic {
	return &Logic{}
}

// Reset adopts board and starts a new game on it. The board is used in place
// and every cell on it is hidden again; callers must not change it afterwards.
func (l *Logic) Reset(board *Board) error {
	if err := board.Validate(); err != nil {
		return err
	}
	for _, row := range board.Cells {
		for x := range row {
			row[x].suggestion = Hidden
		}
	}

	l.board = board
	l.height = board.Height()
	l.width = board.Width()
	l.bombCount = board.BombCount()
	l.suggestedBombCount = 0
	l.correctSuggestCount = 0
	l.phase = Active

	Log.WithFields(logrus.Fields{
		"width":  l.width,
		"height": l.height,
		"bombs":  l.bombCount,
	}).Debug("board reset")
	return nil
}

func (l *Logic) Board() *Board { return l.board }

func (l *Logic) Width() int { return l.width }

func (l *Logic) Height() int { return l.height }

func (l *Logic) TotalBombCount() int { return l.bombCount }

func (l *Logic) SuggestedBombCount() int { return l.suggestedBombCount }

func (l *Logic) CorrectSuggestCount() int { return l.correctSuggestCount }

func (l *Logic) RemainingBombCount() int { return l.bombCount - l.suggestedBombCount }

func (l *Logic) Phase() Phase { return l.phase }

func (l *Logic) IsWon() bool { return l.phase == Won }

func (l *Logic) IsLost() bool { return l.phase == Lost }

func (l *Logic) IsOver() bool { return l.phase != Active }

func (l *Logic) Cell(x, y int) (Cell, bool) {
	if l.board == nil {
		return Cell{}, false
	}
	return l.board.Cell(x, y)
}

// Suggest records the player's guess about the cell at x:y. Rejected moves
// return a [*MoveError] and leave the game untouched.
func (l *Logic) Suggest(x, y int, kind SuggestKind) error {
	if kind < Reveal || kind > Unflag {
		return fmt.Errorf("unknown suggest kind %d", kind)
	}
	if err := l.checkSuggest(x, y); err != nil {
		return err
	}

	l.apply(x, y, kind.suggestion())

	if kind == Reveal && l.board.cell(x, y).neighbors == 0 {
		l.cascade(x, y)
	}

	Log.WithFields(logrus.Fields{
		"x":     x,
		"y":     y,
		"kind":  kind.String(),
		"phase": l.phase.String(),
	}).Debug("suggest")
	return nil
}

// Toggle flags a hidden cell or unflags a flagged one.
func (l *Logic) Toggle(x, y int) error {
	if err := l.checkSuggest(x, y); err != nil {
		return err
	}
	if l.board.cell(x, y).IsFlagged() {
		return l.Suggest(x, y, Unflag)
	}
	return l.Suggest(x, y, Flag)
}

func (l *Logic) checkSuggest(x, y int) error {
	if l.phase != Active {
		return &MoveError{Kind: GameOver, X: x, Y: y}
	}
	if x < 0 || x >= l.width || y < 0 || y >= l.height {
		return &MoveError{Kind: OutOfBounds, X: x, Y: y}
	}
	if l.board.cell(x, y).IsRevealed() {
		return &MoveError{Kind: AlreadyRevealed, X: x, Y: y}
	}
	return nil
}

// apply sets a new suggestion on an already validated cell and updates the
// counters and phase accordingly.
func (l *Logic) apply(x, y int, s Suggestion) {
	cell := l.board.cell(x, y)
	old := cell.suggestion
	cell.suggestion = s

	if s != old {
		if isSuggestCorrect(cell, s) {
			l.correctSuggestCount++
		} else if isSuggestCorrect(cell, old) {
			l.correctSuggestCount--
		}

		if s == Flagged {
			l.suggestedBombCount++
		} else if old == Flagged {
			l.suggestedBombCount--
		}
	}

	l.checkForFinish(cell)
}

func isSuggestCorrect(cell *Cell, s Suggestion) bool {
	return (s == Revealed && !cell.HasBomb()) ||
		(s == Flagged && cell.HasBomb())
}

// checkForFinish ends the game after a suggestion about cell.
//
// The win test compares unresolved cells with unflagged bombs. A flag on an
// empty cell both leaves that cell unresolved and hides a bomb from the count,
// so the test only passes once every empty cell is open and unflagged.
func (l *Logic) checkForFinish(cell *Cell) {
	if cell.suggestion == Revealed && cell.HasBomb() {
		l.phase = Lost
		Log.Debug("game lost")
	} else if l.width*l.height-l.correctSuggestCount <= l.bombCount-l.suggestedBombCount {
		l.phase = Won
		Log.Debug("game won")
	}
}

// cascade opens every cell reachable from the zero cell at x:y through other
// zero cells, together with their numbered border. Revealed cells are never
// queued, so each cell is processed at most once.
func (l *Logic) cascade(x, y int) {
	todo := newCellTodo(l.width * l.height)
	push := func(xx, yy int) {
		if !l.board.cell(xx, yy).IsRevealed() {
			todo.add(yy*l.width + xx)
		}
	}

	l.board.neighbors(x, y, push)
	for l.phase == Active && !todo.empty() {
		i, _ := todo.pop()
		xx, yy := i%l.width, i/l.width
		if l.board.cell(xx, yy).IsRevealed() {
			continue
		}
		l.apply(xx, yy, Revealed)
		if l.board.cell(xx, yy).neighbors == 0 {
			l.board.neighbors(xx, yy, push)
		}
	}
}
