package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wordlife_backend/internals/constants"
	"wordlife_backend/internals/features/wordlife/model"
)

func recFull(date string, district int, name string, bible int, sun, wed constants.Attendance) model.ActivityRecordModel {
	r := rec(date, district, name, bible, time.Date(2026, 3, 4, 9, 0, 0, 0, time.UTC))
	r.RecordSunday = sun
	r.RecordWednesday = wed
	return r
}

func TestAggregatePersonalStats(t *testing.T) {
	personal, _ := Aggregate([]model.ActivityRecordModel{
		recFull("2026-03-04", 41, "김철수", 3, constants.AttendanceOnSite, constants.AttendanceOnline),
		recFull("2026-03-05", 41, "김철수", 0, constants.AttendanceNone, constants.AttendanceOnSite),
		recFull("2026-03-06", 41, "김철수", 5, constants.AttendanceNone, constants.AttendanceNone),
	})

	p := personal[model.PersonKey{District: 41, Name: "김철수"}]
	require.NotNil(t, p)
	assert.Equal(t, 8, p.BibleReadingTotal)
	assert.Equal(t, 2, p.BibleReadingDays) // the zero-page day does not count
	assert.Equal(t, 1, p.SundayCount)
	assert.Equal(t, 2, p.WednesdayCount)
}

func TestAggregateDistrictReconciliation(t *testing.T) {
	_, districts := Aggregate([]model.ActivityRecordModel{
		recFull("2026-03-04", 41, "김철수", 0, constants.AttendanceNone, constants.AttendanceOnSite),
		recFull("2026-03-04", 41, "이영희", 0, constants.AttendanceNone, constants.AttendanceOnline),
		recFull("2026-03-04", 41, "박민수", 0, constants.AttendanceNone, constants.AttendanceOnline),
		recFull("2026-03-04", 42, "최지훈", 0, constants.AttendanceNone, constants.AttendanceNone),
	})

	d := districts[41]
	require.NotNil(t, d)
	assert.Equal(t, 3, d.WednesdayTotal)
	assert.Equal(t, 2, d.WednesdayOnline)
	assert.Equal(t, 1, d.WednesdayOnSite)
	assert.Equal(t, d.WednesdayTotal, d.WednesdayOnline+d.WednesdayOnSite)

	// district 42 never attended Wednesday, so it has no entry at all
	assert.Nil(t, districts[42])
}

func TestAggregateSkipsEmptyNames(t *testing.T) {
	personal, _ := Aggregate([]model.ActivityRecordModel{
		recFull("2026-03-04", 41, "   ", 3, constants.AttendanceNone, constants.AttendanceNone),
	})
	assert.Empty(t, personal)
}

func TestTotalParticipantsCountsReadersOnly(t *testing.T) {
	personal, _ := Aggregate([]model.ActivityRecordModel{
		recFull("2026-03-04", 41, "김철수", 3, constants.AttendanceNone, constants.AttendanceNone),
		recFull("2026-03-04", 41, "이영희", 0, constants.AttendanceOnSite, constants.AttendanceOnSite),
	})
	// attendance without pages read does not make a participant
	assert.Equal(t, 1, TotalParticipants(personal))
}
