package service

import (
	"sort"

	"wordlife_backend/internals/constants"
	"wordlife_backend/internals/features/wordlife/model"
)

// newer: latest timestamp wins; identical timestamps fall back to the larger
// row id so the winner is deterministic across runs.
func newer(a, b model.ActivityRecordModel) bool {
	if a.RecordTimestamp.After(b.RecordTimestamp) {
		return true
	}
	if a.RecordTimestamp.Equal(b.RecordTimestamp) {
		return a.RecordID > b.RecordID
	}
	return false
}

// Authoritative collapses a raw snapshot down to one record per logical
// identity (date, district, trimmed name). Pure; never touches the store.
func Authoritative(records []model.ActivityRecordModel) []model.ActivityRecordModel {
	byKey := make(map[string]model.ActivityRecordModel, len(records))
	for _, r := range records {
		key := r.IdentityKey()
		cur, ok := byKey[key]
		if !ok || newer(r, cur) {
			byKey[key] = r
		}
	}
	out := make([]model.ActivityRecordModel, 0, len(byKey))
	for _, r := range byKey {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].IdentityKey() < out[j].IdentityKey()
	})
	return out
}

// AuthoritativeOne picks the winner among records of a single identity.
func AuthoritativeOne(records []model.ActivityRecordModel) *model.ActivityRecordModel {
	var win *model.ActivityRecordModel
	for i := range records {
		if win == nil || newer(records[i], *win) {
			win = &records[i]
		}
	}
	return win
}

// StaleDuplicates returns every record that loses to the authoritative one of
// its identity group, i.e. the rows the write path is allowed to prune.
func StaleDuplicates(records []model.ActivityRecordModel) []model.ActivityRecordModel {
	winners := make(map[string]model.ActivityRecordModel, len(records))
	for _, r := range records {
		key := r.IdentityKey()
		cur, ok := winners[key]
		if !ok || newer(r, cur) {
			winners[key] = r
		}
	}
	var stale []model.ActivityRecordModel
	for _, r := range records {
		if winners[r.IdentityKey()].RecordID != r.RecordID {
			stale = append(stale, r)
		}
	}
	return stale
}

// CrossDateSweepTargets is the conservative cross-date backstop: it only
// looks at rows whose stored id drifted from the canonical identity id
// (legacy id schemes, pre-trimming writes) and, per person, keeps the single
// most recent drifted row, marking the rest for deletion. Well-formed rows
// are never touched; this runs from the opt-in maintenance sweep only.
func CrossDateSweepTargets(records []model.ActivityRecordModel) []model.ActivityRecordModel {
	drifted := make(map[model.PersonKey][]model.ActivityRecordModel)
	for _, r := range records {
		if r.RecordID != r.IdentityKey() {
			pk := r.PersonKey()
			drifted[pk] = append(drifted[pk], r)
		}
	}

	var targets []model.ActivityRecordModel
	for _, group := range drifted {
		if len(group) < 2 {
			continue
		}
		keep := *AuthoritativeOne(group)
		for _, r := range group {
			if r.RecordID != keep.RecordID {
				targets = append(targets, r)
			}
		}
	}
	sort.Slice(targets, func(i, j int) bool {
		return targets[i].RecordID < targets[j].RecordID
	})
	return targets
}

// HasChanges compares a submission against the existing authoritative record
// for its identity. A brand-new identity only counts as a change when the
// submission actually carries data, matching the original form behaviour.
func HasChanges(existing *model.ActivityRecordModel, bibleReading int, sunday, wednesday constants.Attendance) bool {
	if existing == nil {
		return bibleReading > 0 || sunday.Present() || wednesday.Present()
	}
	return existing.RecordBibleReading != bibleReading ||
		existing.RecordSunday != sunday ||
		existing.RecordWednesday != wednesday
}
