package service

import (
	"wordlife_backend/internals/features/wordlife/model"
)

// PersonalStats is the per-person fold over the authoritative record set.
type PersonalStats struct {
	Name              string `json:"name"`
	District          int    `json:"district"`
	BibleReadingTotal int    `json:"bible_reading_total"`
	BibleReadingDays  int    `json:"bible_reading_days"`
	SundayCount       int    `json:"sunday_count"`
	WednesdayCount    int    `json:"wednesday_count"`
}

// DistrictStats tracks the one district-level competition axis: Wednesday
// attendance. OnSite is derived (total − online), so the subcounts always
// reconcile exactly to the total.
type DistrictStats struct {
	District        int `json:"district"`
	WednesdayTotal  int `json:"wednesday_total"`
	WednesdayOnline int `json:"wednesday_online"`
	WednesdayOnSite int `json:"wednesday_on_site"`
}

// Aggregate folds an already de-duplicated snapshot into per-person and
// per-district stats. Pure function; records with an empty trimmed name
// cannot be attributed to anyone and are skipped. People with no qualifying
// records simply do not appear; absence is the "no data" representation.
func Aggregate(records []model.ActivityRecordModel) (map[model.PersonKey]*PersonalStats, map[int]*DistrictStats) {
	personal := make(map[model.PersonKey]*PersonalStats)
	districts := make(map[int]*DistrictStats)

	for _, r := range records {
		name := r.TrimmedName()
		if name == "" {
			continue
		}

		pk := r.PersonKey()
		p, ok := personal[pk]
		if !ok {
			p = &PersonalStats{Name: name, District: r.RecordDistrict}
			personal[pk] = p
		}
		p.BibleReadingTotal += r.RecordBibleReading
		if r.RecordBibleReading > 0 {
			p.BibleReadingDays++
		}
		if r.RecordSunday.Present() {
			p.SundayCount++
		}
		if r.RecordWednesday.Present() {
			p.WednesdayCount++
		}

		if r.RecordWednesday.Present() {
			d, ok := districts[r.RecordDistrict]
			if !ok {
				d = &DistrictStats{District: r.RecordDistrict}
				districts[r.RecordDistrict] = d
			}
			d.WednesdayTotal++
			if r.RecordWednesday.IsOnline() {
				d.WednesdayOnline++
			}
		}
	}

	for _, d := range districts {
		d.WednesdayOnSite = d.WednesdayTotal - d.WednesdayOnline
	}
	return personal, districts
}

// TotalParticipants counts distinct people with at least one page read.
func TotalParticipants(personal map[model.PersonKey]*PersonalStats) int {
	n := 0
	for _, p := range personal {
		if p.BibleReadingTotal > 0 {
			n++
		}
	}
	return n
}
