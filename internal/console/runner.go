package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/vancomm/sapper/internal/game"
	"github.com/vancomm/sapper/internal/mines"
)

// Runner plays games on a line-oriented text stream.
type Runner struct {
	log       *logrus.Logger
	generator mines.Generator
	in        io.Reader
	out       io.Writer
}

func NewRunner(
	log *logrus.Logger,
	generator mines.Generator,
	in io.Reader,
	out io.Writer,
) *Runner {
	return &Runner{log: log, generator: generator, in: in, out: out}
}

// Run plays until the player quits, input ends or ctx is done. When params is
// nil the board size is asked first.
func (r *Runner) Run(ctx context.Context, params *mines.GameParams) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	lines := make(chan string)
	go r.scan(ctx, lines)
	in := &prompter{ctx: ctx, lines: lines, out: r.out}

	if params == nil {
		p, err := in.askParams()
		if err != nil {
			return ignoreEOF(err)
		}
		params = &p
	}

	ctrl := game.NewController(r.log, r.generator, NewBoard(r.out))
	if err := ctrl.Init(*params); err != nil {
		in.println(describe(err) + ".")
		return err
	}

	for {
		if ctrl.Logic().IsOver() {
			in.println("Type n to play again or q to quit.")
		} else {
			in.println(fmt.Sprintf("Bombs remained: %d", ctrl.Logic().RemainingBombCount()))
		}

		line, err := in.next()
		if err != nil {
			return ignoreEOF(err)
		}
		if line == "" {
			continue
		}
		cmd, err := parseCommand(line)
		if err != nil {
			in.println(describe(err) + ".")
			continue
		}
		r.log.WithField("command", line).Debug("console command")

		switch cmd.name {
		case "q":
			return nil
		case "h":
			in.println(helpText)
		case "o":
			err = ctrl.Suggest(cmd.x, cmd.y, mines.Reveal)
		case "f":
			err = ctrl.Toggle(cmd.x, cmd.y)
		case "u":
			err = ctrl.Suggest(cmd.x, cmd.y, mines.Unflag)
		case "n":
			p := ctrl.Params()
			if cmd.params != nil {
				p = *cmd.params
			}
			err = ctrl.Init(p)
		}
		if err != nil {
			in.println(describe(err) + ".")
		}
	}
}

// scan feeds input lines to the game loop until input ends or ctx is done.
func (r *Runner) scan(ctx context.Context, lines chan<- string) {
	defer close(lines)
	s := bufio.NewScanner(r.in)
	for s.Scan() {
		select {
		case lines <- s.Text():
		case <-ctx.Done():
			return
		}
	}
	if err := s.Err(); err != nil {
		r.log.WithError(err).Warn("unable to read input")
	}
}

func ignoreEOF(err error) error {
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}

type prompter struct {
	ctx   context.Context
	lines <-chan string
	out   io.Writer
}

func (p *prompter) println(s string) {
	fmt.Fprintln(p.out, s)
}

func (p *prompter) next() (string, error) {
	select {
	case <-p.ctx.Done():
		return "", p.ctx.Err()
	case line, ok := <-p.lines:
		if !ok {
			return "", io.EOF
		}
		return strings.TrimSpace(line), nil
	}
}

func (p *prompter) askNumber(question string) (int, error) {
	for {
		p.println(question)
		line, err := p.next()
		if err != nil {
			return 0, err
		}
		n, err := strconv.Atoi(line)
		if err == nil {
			return n, nil
		}
		p.println("Not a number.")
	}
}

func (p *prompter) askParams() (params mines.GameParams, err error) {
	if params.Width, err = p.askNumber("Board width:"); err != nil {
		return
	}
	if params.Height, err = p.askNumber("Board height:"); err != nil {
		return
	}
	params.BombCount, err = p.askNumber("Bomb count:")
	return
}
