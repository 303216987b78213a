package console

import (
	"errors"
	"net/url"
	"strconv"
	"strings"

	"github.com/vancomm/sapper/internal/mines"
)

type command struct {
	name   string
	x, y   int               /* zero-based */
	params *mines.GameParams /* n only; nil means replay current params */
}

// Maps known commands to number of arguments; -1 means optional single arg.
var commandNargs = map[string]int{
	"o": 2, /* open */
	"f": 2, /* toggle flag */
	"u": 2, /* unflag */
	"n": -1,
	"h": 0,
	"q": 0,
}

const helpText = `Commands:
  o x y    open cell (coordinates start at 1)
  f x y    flag or unflag cell
  u x y    unflag cell
  n        new game with the same parameters
  n easy   new game on a built-in level (easy, medium, hard)
  n width=9&height=9&bombs=10
           new game with custom parameters
  h        this help
  q        quit`

func parseXY(twoStrings []string) (x int, y int, err error) {
	if x, err = strconv.Atoi(twoStrings[0]); err != nil {
		err = errors.New("first argument must be an int")
		return
	}
	if y, err = strconv.Atoi(twoStrings[1]); err != nil {
		err = errors.New("second argument must be an int")
		return
	}
	return x - 1, y - 1, nil
}

func parseNewGame(arg string) (*mines.GameParams, error) {
	if p, ok := mines.Level(arg); ok {
		return &p, nil
	}
	values, err := url.ParseQuery(arg)
	if err != nil {
		return nil, errors.New("invalid game parameters")
	}
	p, err := mines.ParseParams(values)
	if err != nil {
		return nil, errors.New("game parameters must include width, height and bombs")
	}
	return &p, nil
}

func parseCommand(line string) (cmd command, err error) {
	parts := strings.Fields(line)
	if len(parts) == 0 {
		return cmd, errors.New("empty command")
	}
	cmd.name = strings.ToLower(parts[0])
	nargs, ok := commandNargs[cmd.name]
	if !ok {
		return cmd, errors.New("unknown command")
	}
	args := parts[1:]
	if (nargs >= 0 && nargs != len(args)) || (nargs < 0 && len(args) > 1) {
		return cmd, errors.New("invalid number of arguments")
	}
	switch cmd.name {
	case "o", "f", "u":
		cmd.x, cmd.y, err = parseXY(args)
	case "n":
		if len(args) == 1 {
			cmd.params, err = parseNewGame(args[0])
		}
	}
	return cmd, err
}

// describe turns core errors into messages that use the player's one-based
// coordinates.
func describe(err error) string {
	var me *mines.MoveError
	if errors.As(err, &me) {
		switch me.Kind {
		case mines.OutOfBounds:
			return "Provided coordinates are out of bounds"
		case mines.AlreadyRevealed:
			return "Cell already opened"
		case mines.GameOver:
			return "Game is already over"
		}
	}
	msg := err.Error()
	if msg == "" {
		return msg
	}
	return strings.ToUpper(msg[:1]) + msg[1:]
}
