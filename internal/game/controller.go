package game

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/vancomm/sapper/internal/mines"
)

// View renders a game. It only reads the board; the controller tells it
// when to redraw.
type View interface {
	SetBoard(board *mines.Board)
	DrawBoard()
	DrawLose()
	DrawWin()
}

type Controller struct {
	log       *logrus.Logger
	generator mines.Generator
	logic     *mines.Logic
	view      View

	id     uuid.UUID
	params mines.GameParams
}

func NewController(log *logrus.Logger, generator mines.Generator, view View) *Controller {
	return &Controller{
		log:       log,
		generator: generator,
		logic:     mines.NewLogic(),
		view:      view,
	}
}

// Init starts a new game with a freshly generated board.
func (c *Controller) Init(params mines.GameParams) error {
	board, err := c.generator.Generate(params.Unpack())
	if err != nil {
		return fmt.Errorf("unable to generate board: %w", err)
	}
	if err := c.logic.Reset(board); err != nil {
		return fmt.Errorf("unable to start game: %w", err)
	}

	c.id = uuid.New()
	c.params = params
	c.entry().Info("new game")

	c.view.SetBoard(board)
	c.view.DrawBoard()
	return nil
}

func (c *Controller) Suggest(x, y int, kind mines.SuggestKind) error {
	if err := c.logic.Suggest(x, y, kind); err != nil {
		return err
	}
	c.draw()
	return nil
}

func (c *Controller) Toggle(x, y int) error {
	if err := c.logic.Toggle(x, y); err != nil {
		return err
	}
	c.draw()
	return nil
}

func (c *Controller) draw() {
	switch {
	case c.logic.IsLost():
		c.entry().Info("game lost")
		c.view.DrawLose()
	case c.logic.IsWon():
		c.entry().Info("game won")
		c.view.DrawWin()
	default:
		c.view.DrawBoard()
	}
}

func (c *Controller) entry() *logrus.Entry {
	return c.log.WithFields(logrus.Fields{
		"game":   c.id.String(),
		"params": c.params.String(),
	})
}

func (c *Controller) Logic() *mines.Logic {
	return c.logic
}

func (c *Controller) ID() uuid.UUID {
	return c.id
}

func (c *Controller) Params() mines.GameParams {
	return c.params
}
