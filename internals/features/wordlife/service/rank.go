package service

import (
	"fmt"
	"sort"
	"strconv"
)

// RankedEntry is one row of a leaderboard after competition ranking.
type RankedEntry struct {
	Name     string `json:"name"`
	District int    `json:"district"`
	Value    int    `json:"value"`
	Rank     int    `json:"rank"`
}

// AssignRanks sorts entries descending by value and applies competition
// ("1224") ranking: tied values share a rank, the next distinct value resumes
// at its true 1-based position. Empty input yields an empty slice.
func AssignRanks(entries []RankedEntry) []RankedEntry {
	out := make([]RankedEntry, len(entries))
	copy(out, entries)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Value > out[j].Value
	})

	currentRank := 1
	for i := range out {
		if i > 0 && out[i].Value != out[i-1].Value {
			currentRank = i + 1
		}
		out[i].Rank = currentRank
	}
	return out
}

// RankRange formats the display span for a rank: "3" when the rank is held
// by a single entry, otherwise the inclusive 1-based position range of the
// tied group, e.g. "1~2". Returns "" when the rank does not occur.
func RankRange(ranked []RankedEntry, target int) string {
	first, last := -1, -1
	for i := range ranked {
		if ranked[i].Rank == target {
			if first < 0 {
				first = i
			}
			last = i
		}
	}
	if first < 0 {
		return ""
	}
	if first == last {
		return strconv.Itoa(target)
	}
	return fmt.Sprintf("%d~%d", first+1, last+1)
}

// TopAndAbove returns the #1 entry and the entry holding the nearest rank
// strictly above myRank. Ranks can skip values because of ties, so "just
// above" is the largest rank below mine, not necessarily myRank-1. At most
// one neighbor is returned.
func TopAndAbove(ranked []RankedEntry, myRank int) (top *RankedEntry, above *RankedEntry) {
	if len(ranked) == 0 {
		return nil, nil
	}
	t := ranked[0]
	top = &t

	if myRank <= 1 {
		return top, nil
	}
	best := 0
	for i := range ranked {
		if ranked[i].Rank < myRank && ranked[i].Rank > best {
			best = ranked[i].Rank
			e := ranked[i]
			above = &e
		}
	}
	return top, above
}
