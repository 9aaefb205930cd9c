package model

import (
	"fmt"
	"strings"
	"time"

	"wordlife_backend/internals/constants"
)

// One submission of a person's daily activity. The row id follows the
// original document convention date_district_trimmedName, so same-identity
// writes collapse onto the same row; record_timestamp is the write instant
// and only decides authority between duplicates, never a business date.
type ActivityRecordModel struct {
	RecordID            string               `gorm:"type:varchar(128);primaryKey;column:record_id" json:"record_id"`
	RecordDate          string               `gorm:"type:varchar(10);not null;column:record_date;index:idx_activity_identity,priority:1" json:"record_date"`
	RecordDistrict      int                  `gorm:"not null;column:record_district;index:idx_activity_identity,priority:2" json:"record_district"`
	RecordName          string               `gorm:"type:varchar(80);not null;column:record_name;index:idx_activity_identity,priority:3;index:idx_activity_name" json:"record_name"`
	RecordBibleReading  int                  `gorm:"not null;default:0;column:record_bible_reading" json:"record_bible_reading"`
	RecordSunday        constants.Attendance `gorm:"type:varchar(16);not null;default:'';column:record_sunday_attendance" json:"record_sunday_attendance"`
	RecordWednesday     constants.Attendance `gorm:"type:varchar(16);not null;default:'';column:record_wednesday_attendance" json:"record_wednesday_attendance"`
	RecordTimestamp     time.Time            `gorm:"not null;column:record_timestamp;index" json:"record_timestamp"`
}

func (ActivityRecordModel) TableName() string {
	return "activity_records"
}

// IdentityKey builds the logical identity key (date, district, trimmed name).
func IdentityKey(date string, district int, name string) string {
	return fmt.Sprintf("%s_%d_%s", date, district, strings.TrimSpace(name))
}

// PersonKey identifies a person across dates: within one district a trimmed
// name denotes exactly one person.
type PersonKey struct {
	District int
	Name     string
}

func (r *ActivityRecordModel) IdentityKey() string {
	return IdentityKey(r.RecordDate, r.RecordDistrict, r.RecordName)
}

func (r *ActivityRecordModel) PersonKey() PersonKey {
	return PersonKey{District: r.RecordDistrict, Name: strings.TrimSpace(r.RecordName)}
}

// TrimmedName is the canonical display name.
func (r *ActivityRecordModel) TrimmedName() string {
	return strings.TrimSpace(r.RecordName)
}
