package stacks_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/stacklab/bracelet/deck"
	"github.com/stacklab/bracelet/stacks"
)

// TestReferenceStacks_FullDecks verifies each reference stack is a
// complete 52-card deck with no repeats.
func TestReferenceStacks_FullDecks(t *testing.T) {
	for name, s := range map[string]deck.Stack{
		"red":    stacks.Red,
		"cherry": stacks.Cherry,
		"sample": stacks.Sample,
	} {
		require.Equal(t, 52, s.Len(), name)
		seen := make(map[deck.Card]bool, 52)
		for _, c := range s {
			require.True(t, c.Valid(), "%s: %s", name, c)
			require.False(t, seen[c], "%s: duplicate %s", name, c)
			seen[c] = true
		}
	}
}

func TestReferenceStacks_Anchors(t *testing.T) {
	require.Equal(t, "AD", stacks.Red.At(0).String())
	require.Equal(t, "9D", stacks.Red.At(51).String())
	require.Equal(t, "9H", stacks.Cherry.At(0).String())
	require.Equal(t, "9D", stacks.Cherry.At(51).String())
	require.Equal(t, "QH", stacks.Sample.At(0).String())
	require.Equal(t, "9S", stacks.Sample.At(51).String())
}

func TestByName(t *testing.T) {
	s, err := stacks.ByName(" Red ")
	require.NoError(t, err)
	require.Equal(t, "AD", s.At(0).String())

	s, err = stacks.ByName("CHERRY")
	require.NoError(t, err)
	require.Equal(t, "9H", s.At(0).String())

	_, err = stacks.ByName("blue")
	require.ErrorIs(t, err, stacks.ErrUnknownStack)
}
