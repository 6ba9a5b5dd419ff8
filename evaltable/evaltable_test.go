package evaltable_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/stacklab/bracelet/classifier"
	"github.com/stacklab/bracelet/evaltable"
)

func TestParseCodes(t *testing.T) {
	names, err := evaltable.ParseCodes("ODD,7K,8K,4T")
	require.NoError(t, err)
	require.Equal(t, []string{"ODD", "7K", "8K", "4T"}, names)

	// Whole-argument normalization.
	names, err = evaltable.ParseCodes("  odd,7k,8k,4t ")
	require.NoError(t, err)
	require.Equal(t, []string{"ODD", "7K", "8K", "4T"}, names)

	_, err = evaltable.ParseCodes("A6,7K,8K")
	require.ErrorIs(t, err, evaltable.ErrCodeCount)

	_, err = evaltable.ParseCodes("A6,7K,8K,4T,5T")
	require.ErrorIs(t, err, evaltable.ErrCodeCount)

	// Duplicates are rejected before any computation.
	_, err = evaltable.ParseCodes("A,A,B,C")
	require.ErrorIs(t, err, evaltable.ErrDuplicateCode)
}

func TestBuild_Validation(t *testing.T) {
	_, err := evaltable.Build("A6", "7K", "8K")
	require.ErrorIs(t, err, evaltable.ErrCodeCount)

	_, err = evaltable.Build("A6", "A6", "7K", "8K")
	require.ErrorIs(t, err, evaltable.ErrDuplicateCode)

	_, err = evaltable.Build("A6", "7K", "8K", "NOPE")
	require.ErrorIs(t, err, classifier.ErrUnknownClassifier)
}

// TestBuild_ReferenceTable pins the classic ODD,7K,8K,4T table.
func TestBuild_ReferenceTable(t *testing.T) {
	tab, err := evaltable.Build("ODD", "7K", "8K", "4T")
	require.NoError(t, err)
	require.Equal(t, [4]string{"ODD", "7K", "8K", "4T"}, tab.Codes)

	want := [16][]string{
		{"TWO"},
		{"FOUR", "SIX"},
		nil,
		nil,
		nil,
		nil,
		{"QUEEN"},
		{"EIGHT", "TEN"},
		{"ACE", "THREE"},
		{"FIVE"},
		nil,
		nil,
		nil,
		{"SEVEN"},
		{"JACK", "KING"},
		{"NINE"},
	}
	for pattern, names := range want {
		require.Equal(t, names, tab.Rows[pattern], "pattern %04b", pattern)
	}
}

func TestRender_ReferenceTable(t *testing.T) {
	tab, err := evaltable.Build("ODD", "7K", "8K", "4T")
	require.NoError(t, err)

	const want = `----------------------------
ODD   7K   8K   4T   Card Values
----------------------------
  0    0    0    0   TWO
  0    0    0    1   FOUR, SIX
  0    0    1    0   NONE
  0    0    1    1   NONE
  0    1    0    0   NONE
  0    1    0    1   NONE
  0    1    1    0   QUEEN
  0    1    1    1   EIGHT, TEN
  1    0    0    0   ACE, THREE
  1    0    0    1   FIVE
  1    0    1    0   NONE
  1    0    1    1   NONE
  1    1    0    0   NONE
  1    1    0    1   SEVEN
  1    1    1    0   JACK, KING
  1    1    1    1   NINE
`
	require.Equal(t, want, tab.Render())
}

// TestBuild_SuitClassifierQuirk pins the rank-only enumeration edge
// case: a suit classifier's bit is rank-independent (always 0), so
// every pattern demanding it be 1 is NONE.
func TestBuild_SuitClassifierQuirk(t *testing.T) {
	tab, err := evaltable.Build("EV", "A6", "RED", "4T")
	require.NoError(t, err)

	for pattern := 0; pattern < 16; pattern++ {
		if pattern&2 != 0 { // RED's polarity bit
			require.Empty(t, tab.Rows[pattern], "pattern %04b", pattern)
		}
	}
	// The complementary rows still partition the ranks.
	require.Equal(t, []string{"JACK", "KING"}, tab.Rows[0])
	require.Equal(t, []string{"ACE", "THREE"}, tab.Rows[4])
	require.Equal(t, []string{"QUEEN"}, tab.Rows[8])
	require.Equal(t, []string{"TWO"}, tab.Rows[12])
}

// TestBuild_RowsPartitionRanks: with four rank classifiers every rank
// lands in exactly one of the 16 rows.
func TestBuild_RowsPartitionRanks(t *testing.T) {
	tab, err := evaltable.Build("A6", "27", "EV", "PR")
	require.NoError(t, err)
	var all []string
	for _, row := range tab.Rows {
		all = append(all, row...)
	}
	require.Len(t, all, 13)
	require.Len(t, uniqueStrings(all), 13)
}

func uniqueStrings(in []string) map[string]bool {
	out := make(map[string]bool, len(in))
	for _, s := range in {
		out[s] = true
	}
	return out
}

func TestRender_NoneUsesFixedColumns(t *testing.T) {
	tab, err := evaltable.Build("ODD", "7K", "8K", "4T")
	require.NoError(t, err)
	lines := strings.Split(tab.Render(), "\n")
	require.Equal(t, "  0    0    1    0   NONE", lines[5])
}
