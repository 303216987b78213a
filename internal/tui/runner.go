package tui

import (
	"context"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
	"github.com/sirupsen/logrus"

	"github.com/vancomm/sapper/internal/game"
	"github.com/vancomm/sapper/internal/mines"
)

// Runner plays games in a full-screen terminal UI.
type Runner struct {
	log       *logrus.Logger
	generator mines.Generator
	screen    tcell.Screen /* nil selects the real terminal */
}

func NewRunner(log *logrus.Logger, generator mines.Generator) *Runner {
	return &Runner{log: log, generator: generator}
}

// WithScreen makes the runner draw on screen instead of the terminal.
func (r *Runner) WithScreen(screen tcell.Screen) *Runner {
	r.screen = screen
	return r
}

// Run shows the game until the player quits or ctx is done.
func (r *Runner) Run(ctx context.Context, params mines.GameParams) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	app := tview.NewApplication()
	if r.screen != nil {
		app.SetScreen(r.screen)
	}

	view := NewBoard()
	ctrl := game.NewController(r.log, r.generator, view)
	if err := ctrl.Init(params); err != nil {
		return err
	}

	s := &session{log: r.log, app: app, view: view, ctrl: ctrl}
	s.refresh()

	view.Table().SetSelectedFunc(func(row, col int) {
		s.do(func() error { return ctrl.Suggest(col, row, mines.Reveal) })
	})
	view.Table().SetInputCapture(s.handleKey)

	layout := tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(view.Table(), 0, 1, true).
		AddItem(view.Status(), 1, 0, false)

	stop := context.AfterFunc(ctx, app.Stop)
	defer stop()

	if err := app.SetRoot(layout, true).Run(); err != nil {
		return err
	}
	return ctx.Err()
}

type session struct {
	log  *logrus.Logger
	app  *tview.Application
	view *Board
	ctrl *game.Controller
	err  string
}

func (s *session) handleKey(ev *tcell.EventKey) *tcell.EventKey {
	row, col := s.view.Table().GetSelection()
	switch ev.Rune() {
	case ' ':
		s.do(func() error { return s.ctrl.Suggest(col, row, mines.Reveal) })
	case 'f':
		s.do(func() error { return s.ctrl.Toggle(col, row) })
	case 'n':
		s.do(func() error { return s.ctrl.Init(s.ctrl.Params()) })
	case 'q':
		s.app.Stop()
	default:
		return ev
	}
	return nil
}

// do runs a move and refreshes the status line. Rejected moves are shown
// instead of the usual status.
func (s *session) do(move func() error) {
	s.err = ""
	if err := move(); err != nil {
		s.log.WithError(err).Debug("move rejected")
		s.err = err.Error()
	}
	s.refresh()
}

func (s *session) refresh() {
	if s.err != "" {
		s.view.SetStatus(s.err)
		return
	}
	s.view.SetStatus(statusText(s.ctrl.Logic(), s.view.banner))
}
