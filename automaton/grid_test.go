package automaton_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/judgekit/automaton"
)

func TestBeats_EveryPairing(t *testing.T) {
	all := []automaton.Lifeform{automaton.Rock, automaton.Paper, automaton.Scissors}
	wins := map[[2]automaton.Lifeform]bool{
		{automaton.Rock, automaton.Scissors}:  true,
		{automaton.Scissors, automaton.Paper}: true,
		{automaton.Paper, automaton.Rock}:     true,
	}
	for _, a := range all {
		for _, b := range all {
			assert.Equal(t, wins[[2]automaton.Lifeform{a, b}], automaton.Beats(a, b), "%c vs %c", a, b)
		}
	}
}

func TestBeats_PaperDoesNotFallThrough(t *testing.T) {
	// paper against scissors and paper must stay false on its own
	assert.False(t, automaton.Beats(automaton.Paper, automaton.Scissors))
	assert.False(t, automaton.Beats(automaton.Paper, automaton.Paper))
	assert.False(t, automaton.Beats('X', automaton.Rock))
}

func TestNew_Errors(t *testing.T) {
	_, err := automaton.New(nil)
	assert.ErrorIs(t, err, automaton.ErrEmptyGrid)

	_, err = automaton.New([]string{""})
	assert.ErrorIs(t, err, automaton.ErrEmptyGrid)

	_, err = automaton.New([]string{"RS", "P"})
	assert.ErrorIs(t, err, automaton.ErrNonRectangular)

	_, err = automaton.New([]string{"RX"})
	assert.ErrorIs(t, err, automaton.ErrUnknownLifeform)
}

func TestRun_SampleOne(t *testing.T) {
	g, err := automaton.New([]string{"RRR", "RSR", "RRR"})
	require.NoError(t, err)
	require.NoError(t, g.Run(1))
	assert.Equal(t, []string{"RRR", "RRR", "RRR"}, g.Rows())
}

func TestRun_SampleTwo(t *testing.T) {
	g, err := automaton.New([]string{"RSPR", "SPRS", "PRSP"})
	require.NoError(t, err)
	require.NoError(t, g.Run(2))
	assert.Equal(t, []string{"RRRS", "RRSP", "RSPR"}, g.Rows())
}

func TestStep_UsesStartOfDaySnapshot(t *testing.T) {
	// R takes S while S, still scissors at dawn, takes P.
	g, err := automaton.New([]string{"RSP"})
	require.NoError(t, err)
	g.Step()
	assert.Equal(t, []string{"RRS"}, g.Rows())
}

func TestRun_ZeroAndNegativeDays(t *testing.T) {
	g, err := automaton.New([]string{"RS"})
	require.NoError(t, err)
	require.NoError(t, g.Run(0))
	assert.Equal(t, []string{"RS"}, g.Rows())
	assert.ErrorIs(t, g.Run(-1), automaton.ErrNegativeDays)
}

func TestAt_AndSize(t *testing.T) {
	g, err := automaton.New([]string{"RP", "SR"})
	require.NoError(t, err)
	r, c := g.Size()
	assert.Equal(t, 2, r)
	assert.Equal(t, 2, c)
	assert.Equal(t, automaton.Scissors, g.At(1, 0))
	assert.Panics(t, func() { g.At(2, 0) })
}
