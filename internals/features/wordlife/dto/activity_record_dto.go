package dto

import (
	"strings"
	"time"

	"wordlife_backend/internals/features/wordlife/model"
)

/* ===================== REQUESTS ===================== */

type SaveRecordRequest struct {
	Date                string `json:"date" validate:"required,datetime=2006-01-02"`
	District            int    `json:"district" validate:"required,gt=0"`
	Name                string `json:"name" validate:"required,max=80"`
	BibleReading        int    `json:"bible_reading" validate:"gte=0"`
	SundayAttendance    string `json:"sunday_attendance" validate:"omitempty,oneof=현장참석 온라인"`
	WednesdayAttendance string `json:"wednesday_attendance" validate:"omitempty,oneof=현장참석 온라인"`
}

// Normalize canonicalizes the submitted name before any key construction.
func (r *SaveRecordRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
}

/* ===================== RESPONSES ===================== */

type ActivityRecordResponse struct {
	Date                string    `json:"date"`
	District            int       `json:"district"`
	Name                string    `json:"name"`
	BibleReading        int       `json:"bible_reading"`
	SundayAttendance    string    `json:"sunday_attendance"`
	WednesdayAttendance string    `json:"wednesday_attendance"`
	Timestamp           time.Time `json:"timestamp"`
}

func FromRecordModel(m *model.ActivityRecordModel) *ActivityRecordResponse {
	if m == nil {
		return nil
	}
	return &ActivityRecordResponse{
		Date:                m.RecordDate,
		District:            m.RecordDistrict,
		Name:                m.TrimmedName(),
		BibleReading:        m.RecordBibleReading,
		SundayAttendance:    string(m.RecordSunday),
		WednesdayAttendance: string(m.RecordWednesday),
		Timestamp:           m.RecordTimestamp,
	}
}
