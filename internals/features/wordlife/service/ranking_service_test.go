package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wordlife_backend/internals/constants"
)

func TestComputeRankingsEndToEnd(t *testing.T) {
	// 김철수 reads 3+5 pages over two days, 이영희 reads 4 on one day
	store := newFakeStore(
		recFull("2026-03-04", 41, "김철수", 3, constants.AttendanceOnSite, constants.AttendanceOnline),
		recFull("2026-03-05", 41, "김철수", 5, constants.AttendanceNone, constants.AttendanceOnSite),
		recFull("2026-03-04", 42, "이영희", 4, constants.AttendanceNone, constants.AttendanceOnSite),
	)
	svc := NewRankingService(store)

	res, err := svc.Compute(context.Background(), 41, "김철수")
	require.NoError(t, err)

	assert.Equal(t, 2, res.TotalParticipants)

	require.NotNil(t, res.Personal)
	br := res.Personal.BibleReading
	assert.Equal(t, 8, br.Value)
	require.NotNil(t, br.Rank)
	assert.Equal(t, 1, *br.Rank)
	require.NotNil(t, br.RankRange)
	assert.Equal(t, "1", *br.RankRange)
	require.NotNil(t, br.TopAndAbove.Top)
	assert.Equal(t, "김철수", br.TopAndAbove.Top.Name)
	assert.Empty(t, br.TopAndAbove.Above) // the leader has nobody above

	dr := res.Personal.DailyReading
	assert.Equal(t, 2, dr.Value)

	// district Wednesday boards: 41 has 2 attendances (1 on-site), 42 has 1 (1 on-site)
	require.Len(t, res.District.Total, 2)
	assert.Equal(t, 41, res.District.Total[0].District)
	assert.Equal(t, 1, res.District.Total[0].Rank)
	onSiteRanks := map[int]int{}
	for _, e := range res.District.OnSite {
		onSiteRanks[e.District] = e.Rank
	}
	// both districts have exactly one on-site attendance: tied at rank 1
	assert.Equal(t, map[int]int{41: 1, 42: 1}, onSiteRanks)
}

func TestComputeRankingsDedupsBeforeAggregating(t *testing.T) {
	older := recFull("2026-03-04", 41, "김철수", 3, constants.AttendanceNone, constants.AttendanceNone)
	newerRow := recFull("2026-03-04", 41, "김철수", 7, constants.AttendanceNone, constants.AttendanceNone)
	newerRow.RecordID = "legacy-id"
	newerRow.RecordTimestamp = older.RecordTimestamp.Add(time.Hour)

	svc := NewRankingService(newFakeStore(older, newerRow))
	res, err := svc.Compute(context.Background(), 41, "김철수")
	require.NoError(t, err)

	// the duplicate pair counts once, with the newer value
	assert.Equal(t, 7, res.Personal.BibleReading.Value)
	assert.Equal(t, 1, res.Personal.DailyReading.Value)
}

func TestComputeRankingsNonParticipant(t *testing.T) {
	store := newFakeStore(
		recFull("2026-03-04", 41, "김철수", 3, constants.AttendanceNone, constants.AttendanceNone),
	)
	svc := NewRankingService(store)

	res, err := svc.Compute(context.Background(), 42, "신규인")
	require.NoError(t, err)

	require.NotNil(t, res.Personal)
	br := res.Personal.BibleReading
	assert.Equal(t, 0, br.Value)
	assert.Nil(t, br.Rank) // not participating: no rank, never 0
	assert.Nil(t, br.RankRange)
	require.NotNil(t, br.TopAndAbove.Top) // the board leader still shows
}

func TestComputeRankingsWithoutCaller(t *testing.T) {
	store := newFakeStore(
		recFull("2026-03-04", 41, "김철수", 3, constants.AttendanceNone, constants.AttendanceNone),
	)
	svc := NewRankingService(store)

	res, err := svc.Compute(context.Background(), 0, "")
	require.NoError(t, err)
	assert.Nil(t, res.Personal)
	assert.Equal(t, 1, res.TotalParticipants)
}

func TestComputeRankingsStoreErrorAborts(t *testing.T) {
	store := newFakeStore()
	store.err = errors.New("store down")
	svc := NewRankingService(store)

	res, err := svc.Compute(context.Background(), 41, "김철수")
	assert.Error(t, err)
	assert.Nil(t, res) // never "everyone has zero"
}

func TestComputeRankingsEmptyStore(t *testing.T) {
	svc := NewRankingService(newFakeStore())

	res, err := svc.Compute(context.Background(), 41, "김철수")
	require.NoError(t, err)
	assert.Equal(t, 0, res.TotalParticipants)
	assert.Empty(t, res.District.Total)
	require.NotNil(t, res.Personal)
	assert.Nil(t, res.Personal.BibleReading.Rank)
	assert.Nil(t, res.Personal.BibleReading.TopAndAbove.Top)
}
