package mines

import (
	"errors"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func naiveNeighborBombCount(b *Board, x, y int) (count int) {
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			xx, yy := x+dx, y+dy
			if (dx != 0 || dy != 0) &&
				0 <= xx && xx < b.Width() && 0 <= yy && yy < b.Height() &&
				b.Cells[yy][xx].HasBomb() {
				count++
			}
		}
	}
	return
}

func TestRandomGeneration(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		params GameParams
	}{
		{name: "1x1(1)", params: GameParams{Width: 1, Height: 1, BombCount: 1}},
		{name: "4x2(3)", params: GameParams{Width: 4, Height: 2, BombCount: 3}},
		{name: "4x2(8)", params: GameParams{Width: 4, Height: 2, BombCount: 8}},
		{name: "9x9(10)", params: GameParams{Width: 9, Height: 9, BombCount: 10}},
		{name: "16x16(40)", params: GameParams{Width: 16, Height: 16, BombCount: 40}},
		{name: "30x16(99)", params: GameParams{Width: 30, Height: 16, BombCount: 99}},
		{name: "30x16(170)", params: GameParams{Width: 30, Height: 16, BombCount: 170}},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()
			g := NewRandomGenerator(rand.New(rand.NewPCG(1, 2)))
			for range 20 {
				b, err := g.Generate(test.params.Unpack())
				require.NoError(t, err)

				require.Equal(t, test.params.Height, b.Height())
				require.Equal(t, test.params.Width, b.Width())
				require.NoError(t, b.Validate())
				assert.Equal(t, test.params.BombCount, b.BombCount())

				for y, row := range b.Cells {
					for x, c := range row {
						assert.Equal(t, Hidden, c.Suggestion())
						if c.HasBomb() {
							continue
						}
						assert.Equal(t,
							naiveNeighborBombCount(b, x, y), c.NeighborBombCount(),
							"neighbor count at %d:%d", x, y,
						)
					}
				}
			}
		})
	}
}

func TestGenerateInvalidParams(t *testing.T) {
	g := NewRandomGenerator(rand.New(rand.NewPCG(1, 2)))
	for _, p := range []GameParams{
		{0, 2, 1},
		{4, 0, 1},
		{4, 2, 0},
		{4, 2, -1},
		{4, 2, 10},
	} {
		b, err := g.Generate(p.Unpack())
		assert.Nil(t, b)
		var pe *ParameterError
		assert.True(t, errors.As(err, &pe), "params %v", p)
	}
}

func TestGenerateThenReset(t *testing.T) {
	g := NewRandomGenerator(nil)
	b, err := g.Generate(4, 2, 3)
	require.NoError(t, err)

	l := NewLogic()
	require.NoError(t, l.Reset(b))
	assert.Equal(t, 2, l.Height())
	assert.Equal(t, 4, l.Width())
	assert.Equal(t, 3, l.TotalBombCount())
	assert.Equal(t, Active, l.Phase())
}

func TestGenerateUniformSpread(t *testing.T) {
	const draws = 900
	g := NewRandomGenerator(rand.New(rand.NewPCG(1, 2)))
	hits := make([]int, 9)
	for range draws {
		b, err := g.Generate(3, 3, 1)
		require.NoError(t, err)
		for y, row := range b.Cells {
			for x, c := range row {
				if c.HasBomb() {
					hits[y*3+x]++
				}
			}
		}
	}
	for i, n := range hits {
		// expected 100 per cell
		assert.True(t, 50 < n && n < 150, "cell %d got %d bombs", i, n)
	}
}

func TestSeededRandIsDeterministic(t *testing.T) {
	a, err := NewRandomGenerator(NewSeededRand(42)).Generate(16, 16, 40)
	require.NoError(t, err)
	b, err := NewRandomGenerator(NewSeededRand(42)).Generate(16, 16, 40)
	require.NoError(t, err)
	assert.Equal(t, a.Layout(), b.Layout())
}

func TestLayoutGenerator(t *testing.T) {
	g, err := NewLayoutGenerator(`
		**
		..
		..
		*.
	`)
	require.NoError(t, err)
	assert.Equal(t, GameParams{2, 4, 3}, g.Params())

	b, err := g.Generate(2, 4, 3)
	require.NoError(t, err)
	assert.Equal(t, "**\n..\n..\n*.", b.Layout())
	assert.Equal(t, 2, b.Cells[1][0].NeighborBombCount())
	assert.Equal(t, 1, b.Cells[3][1].NeighborBombCount())

	// every call returns an independent board
	b.Cells[1][0].suggestion = Revealed
	again, err := g.Generate(2, 4, 3)
	require.NoError(t, err)
	assert.Equal(t, Hidden, again.Cells[1][0].Suggestion())

	_, err = g.Generate(4, 2, 3)
	assert.Error(t, err)

	_, err = g.Generate(2, 4, 0)
	var pe *ParameterError
	assert.ErrorAs(t, err, &pe)
}

func TestGeneratorFunc(t *testing.T) {
	var calls int
	var g Generator = GeneratorFunc(func(w, h, n int) (*Board, error) {
		calls++
		return ParseLayout("*.")
	})
	b, err := g.Generate(2, 1, 1)
	require.NoError(t, err)
	assert.Equal(t, 1, calls)
	assert.Equal(t, 1, b.BombCount())
}
