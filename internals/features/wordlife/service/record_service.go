package service

import (
	"context"
	"log"
	"sort"
	"strings"
	"time"

	"wordlife_backend/internals/constants"
	"wordlife_backend/internals/features/wordlife/cache"
	"wordlife_backend/internals/features/wordlife/dto"
	"wordlife_backend/internals/features/wordlife/model"
	"wordlife_backend/internals/features/wordlife/repository"
)

// SaveOutcome distinguishes a real write from a no-op resubmission. The
// no-op case is neither an error nor a normal success: callers surface it so
// the client can skip write side effects but still refresh the view.
type SaveOutcome string

const (
	SaveOutcomeSaved     SaveOutcome = "saved"
	SaveOutcomeNoChanges SaveOutcome = "no_changes"
)

// RecordService owns the store-touching save/read path. Everything below it
// (dedup, aggregation, ranking) is pure.
type RecordService struct {
	Store repository.RecordStore
	Cache cache.RecordCache
	Now   func() time.Time
}

func NewRecordService(store repository.RecordStore, recordCache cache.RecordCache) *RecordService {
	return &RecordService{
		Store: store,
		Cache: recordCache,
		Now:   time.Now,
	}
}

// Save runs the write-path reconciliation: fetch all records for the
// identity, detect a no-op resubmission, prune stale duplicate rows
// (best-effort: a failed delete is logged and self-heals on the next pass),
// then upsert the canonical row and refresh the cache overlay.
func (s *RecordService) Save(ctx context.Context, in dto.SaveRecordRequest) (SaveOutcome, *model.ActivityRecordModel, error) {
	name := strings.TrimSpace(in.Name)
	sunday := constants.Attendance(in.SundayAttendance)
	wednesday := constants.Attendance(in.WednesdayAttendance)

	matches, err := s.Store.FindByIdentity(ctx, in.Date, in.District, name)
	if err != nil {
		return "", nil, err
	}
	auth := AuthoritativeOne(matches)

	if !HasChanges(auth, in.BibleReading, sunday, wednesday) {
		// keep the stored timestamp untouched; no authority churn on no-ops
		if auth != nil {
			s.Cache.Put(ctx, auth)
		}
		return SaveOutcomeNoChanges, auth, nil
	}

	canonicalID := model.IdentityKey(in.Date, in.District, name)
	for _, m := range matches {
		if m.RecordID == canonicalID {
			continue
		}
		if err := s.Store.Delete(ctx, m.RecordID); err != nil {
			log.Printf("⚠️ duplicate cleanup failed for %s: %v", m.RecordID, err)
		}
	}

	rec := &model.ActivityRecordModel{
		RecordID:           canonicalID,
		RecordDate:         in.Date,
		RecordDistrict:     in.District,
		RecordName:         name,
		RecordBibleReading: in.BibleReading,
		RecordSunday:       sunday,
		RecordWednesday:    wednesday,
		RecordTimestamp:    s.Now(),
	}
	if err := s.Store.Upsert(ctx, rec); err != nil {
		return "", nil, err
	}
	s.Cache.Put(ctx, rec)
	return SaveOutcomeSaved, rec, nil
}

// Latest resolves the authoritative record for one identity through the
// cache overlay. The store copy only replaces a live cached one when it is
// strictly newer; a slow fetch must never regress a more current value.
func (s *RecordService) Latest(ctx context.Context, date string, district int, name string) (*model.ActivityRecordModel, error) {
	key := model.IdentityKey(date, district, name)
	cached, hit := s.Cache.Get(ctx, key)

	matches, err := s.Store.FindByIdentity(ctx, date, district, name)
	if err != nil {
		if hit {
			// store is down but we hold a live entry; serve the optimistic copy
			return cached, nil
		}
		return nil, err
	}

	auth := AuthoritativeOne(matches)
	if auth == nil {
		return cached, nil
	}
	if hit && cached.RecordTimestamp.After(auth.RecordTimestamp) {
		return cached, nil
	}
	s.Cache.Put(ctx, auth)
	return auth, nil
}

// Names lists every distinct trimmed name in the store, sorted.
func (s *RecordService) Names(ctx context.Context) ([]string, error) {
	records, err := s.Store.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	set := make(map[string]struct{})
	for _, r := range records {
		if n := r.TrimmedName(); n != "" {
			set[n] = struct{}{}
		}
	}
	names := make([]string, 0, len(set))
	for n := range set {
		names = append(names, n)
	}
	sort.Strings(names)
	return names, nil
}

/* ===================== MAINTENANCE SWEEP ===================== */

type SweepResult struct {
	StaleDeleted     int `json:"stale_deleted"`
	CrossDateDeleted int `json:"cross_date_deleted"`
	Failed           int `json:"failed"`
}

// Sweep is the opt-in maintenance pass: store-wide stale-duplicate cleanup
// followed by the conservative cross-date backstop. Never runs from the save
// path.
func (s *RecordService) Sweep(ctx context.Context) (*SweepResult, error) {
	records, err := s.Store.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	res := &SweepResult{}
	deleted := make(map[string]struct{})

	for _, r := range StaleDuplicates(records) {
		if err := s.Store.Delete(ctx, r.RecordID); err != nil {
			log.Printf("⚠️ sweep: delete %s failed: %v", r.RecordID, err)
			res.Failed++
			continue
		}
		deleted[r.RecordID] = struct{}{}
		res.StaleDeleted++
	}

	remaining := records[:0:0]
	for _, r := range records {
		if _, gone := deleted[r.RecordID]; !gone {
			remaining = append(remaining, r)
		}
	}
	for _, r := range CrossDateSweepTargets(remaining) {
		if err := s.Store.Delete(ctx, r.RecordID); err != nil {
			log.Printf("⚠️ sweep: delete %s failed: %v", r.RecordID, err)
			res.Failed++
			continue
		}
		res.CrossDateDeleted++
	}
	return res, nil
}
