package mines

import (
	"fmt"
	"hash/maphash"
	"math/rand/v2"

	"github.com/sirupsen/logrus"
)

// Generator produces a fresh hidden board for the given parameters.
type Generator interface {
	Generate(width, height, bombCount int) (*Board, error)
}

// GeneratorFunc adapts an ordinary function to [Generator].
type GeneratorFunc func(width, height, bombCount int) (*Board, error)

func (f GeneratorFunc) Generate(width, height, bombCount int) (*Board, error) {
	return f(width, height, bombCount)
}

func NewRand() *rand.Rand {
	return rand.New(rand.NewPCG(
		new(maphash.Hash).Sum64(), new(maphash.Hash).Sum64(),
	))
}

// NewSeededRand returns a deterministic source for replaying a game.
func NewSeededRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// RandomGenerator places bombs uniformly at random. It is not safe for
// concurrent use since it owns its random source.
type RandomGenerator struct {
	r *rand.Rand
}

func NewRandomGenerator(r *rand.Rand) *RandomGenerator {
	if r == nil {
		r = NewRand()
	}
	return &RandomGenerator{r: r}
}

func (g *RandomGenerator) Generate(width, height, bombCount int) (*Board, error) {
	params := GameParams{width, height, bombCount}
	if err := params.Validate(); err != nil {
		return nil, err
	}

	bombs := make([][]bool, height)
	for y := range bombs {
		bombs[y] = make([]bool, width)
	}

	/*
	 * Write down the list of possible bomb locations, then pick n off
	 * the list at random, moving the last candidate into the hole each
	 * time so every remaining location stays equally likely.
	 */
	candidates := make([]int, width*height)
	for i := range candidates {
		candidates[i] = i
	}
	k := len(candidates)
	for range bombCount {
		i := g.r.IntN(k)
		c := candidates[i]
		bombs[c/width][c%width] = true
		k--
		candidates[i] = candidates[k]
	}

	board := fromBombs(bombs)
	Log.WithFields(logrus.Fields{
		"params": params.String(),
	}).Debug("generated board")
	return board, nil
}

// LayoutGenerator always returns a fresh copy of a fixed layout. Requested
// parameters must match the layout.
type LayoutGenerator struct {
	layout string
	params GameParams
}

func NewLayoutGenerator(layout string) (*LayoutGenerator, error) {
	b, err := ParseLayout(layout)
	if err != nil {
		return nil, err
	}
	return &LayoutGenerator{
		layout: b.Layout(),
		params: GameParams{b.Width(), b.Height(), b.BombCount()},
	}, nil
}

func (g *LayoutGenerator) Params() GameParams {
	return g.params
}

func (g *LayoutGenerator) Generate(width, height, bombCount int) (*Board, error) {
	requested := GameParams{width, height, bombCount}
	if err := requested.Validate(); err != nil {
		return nil, err
	}
	if requested != g.params {
		return nil, fmt.Errorf(
			"layout is %s, requested %s", g.params, requested,
		)
	}
	return ParseLayout(g.layout)
}
