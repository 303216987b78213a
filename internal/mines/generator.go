package mines

import (
	"fmt"
	"strings"

	"github.com/gorilla/schema"
)

type GameParams struct {
	Width     int `schema:"width,required"`
	Height    int `schema:"height,required"`
	BombCount int `schema:"bombs,required"`
}

func (p GameParams) Unpack() (w int, h int, n int) {
	return p.Width, p.Height, p.BombCount
}

func (p GameParams) Validate() error {
	if p.Width <= 0 || p.Height <= 0 || p.BombCount <= 0 ||
		p.BombCount > p.Width*p.Height {
		return &ParameterError{p.Width, p.Height, p.BombCount}
	}
	return nil
}

func (p GameParams) Seed() string {
	return fmt.Sprintf("%d:%d:%d", p.Width, p.Height, p.BombCount)
}

func (p GameParams) String() string {
	return fmt.Sprintf("%dx%d(%d)", p.Width, p.Height, p.BombCount)
}

func ParseSeed(seed string) (*GameParams, error) {
	p := &GameParams{}
	sseed := strings.ReplaceAll(seed, ":", " ")
	n, err := fmt.Sscanf(sseed, "%d %d %d", &p.Width, &p.Height, &p.BombCount)
	if n != 3 || err != nil {
		return nil, fmt.Errorf(
			`invalid game params seed (sseed = "%s", n = %d, err = %w)`,
			sseed, n, err,
		)
	}
	return p, nil
}

// ParseParams decodes width, height and bombs from query-style values such as
// url.Values. The result is not validated.
func ParseParams(src map[string][]string) (GameParams, error) {
	dec := schema.NewDecoder()
	dec.IgnoreUnknownKeys(true)
	var p GameParams
	err := dec.Decode(&p, src)
	return p, err
}

var (
	Easy   = GameParams{Width: 9, Height: 9, BombCount: 10}
	Medium = GameParams{Width: 16, Height: 16, BombCount: 40}
	Hard   = GameParams{Width: 20, Height: 16, BombCount: 64}
)

// Level returns the built-in parameters for easy, medium or hard.
func Level(name string) (GameParams, bool) {
	switch strings.ToLower(name) {
	case "easy":
		return Easy, true
	case "medium":
		return Medium, true
	case "hard":
		return Hard, true
	}
	return GameParams{}, false
}
