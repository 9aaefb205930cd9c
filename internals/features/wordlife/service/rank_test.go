package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func boardOf(values ...int) []RankedEntry {
	entries := make([]RankedEntry, len(values))
	for i, v := range values {
		entries[i] = RankedEntry{
			Name:     string(rune('A' + i)),
			District: 41,
			Value:    v,
		}
	}
	return entries
}

func TestAssignRanksCompetitionStyle(t *testing.T) {
	// deliberately unsorted input
	ranked := AssignRanks(boardOf(10, 50, 10, 30, 50, 10))

	values := make([]int, len(ranked))
	ranks := make([]int, len(ranked))
	for i, e := range ranked {
		values[i] = e.Value
		ranks[i] = e.Rank
	}
	assert.Equal(t, []int{50, 50, 30, 10, 10, 10}, values)
	assert.Equal(t, []int{1, 1, 3, 4, 4, 4}, ranks)
}

func TestAssignRanksDoesNotMutateInput(t *testing.T) {
	in := boardOf(1, 2, 3)
	_ = AssignRanks(in)
	assert.Equal(t, 1, in[0].Value)
	assert.Equal(t, 0, in[0].Rank)
}

func TestAssignRanksEmpty(t *testing.T) {
	assert.Empty(t, AssignRanks(nil))
}

func TestRankRange(t *testing.T) {
	ranked := AssignRanks(boardOf(50, 50, 30, 10, 10, 10))

	assert.Equal(t, "1~2", RankRange(ranked, 1))
	assert.Equal(t, "3", RankRange(ranked, 3))
	assert.Equal(t, "4~6", RankRange(ranked, 4))
	// rank 2 is skipped by the tie at the top
	assert.Equal(t, "", RankRange(ranked, 2))
}

func TestTopAndAboveSkipsMissingRanks(t *testing.T) {
	ranked := AssignRanks(boardOf(50, 50, 30, 10, 10, 10))

	top, above := TopAndAbove(ranked, 4)
	require.NotNil(t, top)
	assert.Equal(t, 1, top.Rank)
	require.NotNil(t, above)
	// just above rank 4 is the rank-3 holder, not a nonexistent rank 3.5
	assert.Equal(t, 3, above.Rank)

	// rank 3 looks up past the skipped rank 2 to the tied leaders
	_, above = TopAndAbove(ranked, 3)
	require.NotNil(t, above)
	assert.Equal(t, 1, above.Rank)
}

func TestTopAndAboveForLeader(t *testing.T) {
	ranked := AssignRanks(boardOf(50, 30))

	top, above := TopAndAbove(ranked, 1)
	require.NotNil(t, top)
	assert.Equal(t, 50, top.Value)
	assert.Nil(t, above)
}

func TestTopAndAboveEmptyBoard(t *testing.T) {
	top, above := TopAndAbove(nil, 1)
	assert.Nil(t, top)
	assert.Nil(t, above)
}
