package service

import (
	"context"
	"errors"
	"sort"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wordlife_backend/internals/features/wordlife/cache"
	"wordlife_backend/internals/features/wordlife/dto"
	"wordlife_backend/internals/features/wordlife/model"
)

// fakeRecordStore is the in-memory test double for the store boundary.
type fakeRecordStore struct {
	rows map[string]model.ActivityRecordModel
	err  error
}

func newFakeStore(records ...model.ActivityRecordModel) *fakeRecordStore {
	s := &fakeRecordStore{rows: make(map[string]model.ActivityRecordModel)}
	for _, r := range records {
		s.rows[r.RecordID] = r
	}
	return s
}

func (s *fakeRecordStore) GetAll(ctx context.Context) ([]model.ActivityRecordModel, error) {
	if s.err != nil {
		return nil, s.err
	}
	out := make([]model.ActivityRecordModel, 0, len(s.rows))
	for _, r := range s.rows {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].RecordID < out[j].RecordID })
	return out, nil
}

func (s *fakeRecordStore) FindByIdentity(ctx context.Context, date string, district int, name string) ([]model.ActivityRecordModel, error) {
	if s.err != nil {
		return nil, s.err
	}
	name = strings.TrimSpace(name)
	var out []model.ActivityRecordModel
	for _, r := range s.rows {
		if r.RecordDate == date && r.RecordDistrict == district && r.TrimmedName() == name {
			out = append(out, r)
		}
	}
	return out, nil
}

func (s *fakeRecordStore) FindByName(ctx context.Context, name string) ([]model.ActivityRecordModel, error) {
	if s.err != nil {
		return nil, s.err
	}
	name = strings.TrimSpace(name)
	var out []model.ActivityRecordModel
	for _, r := range s.rows {
		if r.TrimmedName() == name {
			out = append(out, r)
		}
	}
	return out, nil
}

func (s *fakeRecordStore) FindByPerson(ctx context.Context, district int, name string) ([]model.ActivityRecordModel, error) {
	if s.err != nil {
		return nil, s.err
	}
	name = strings.TrimSpace(name)
	var out []model.ActivityRecordModel
	for _, r := range s.rows {
		if r.RecordDistrict == district && r.TrimmedName() == name {
			out = append(out, r)
		}
	}
	return out, nil
}

func (s *fakeRecordStore) Upsert(ctx context.Context, rec *model.ActivityRecordModel) error {
	if s.err != nil {
		return s.err
	}
	s.rows[rec.RecordID] = *rec
	return nil
}

func (s *fakeRecordStore) Delete(ctx context.Context, id string) error {
	if s.err != nil {
		return s.err
	}
	delete(s.rows, id)
	return nil
}

func newTestRecordService(store *fakeRecordStore, now time.Time) *RecordService {
	svc := NewRecordService(store, cache.NewMemoryRecordCache())
	svc.Now = func() time.Time { return now }
	return svc
}

func saveReq(date string, district int, name string, bible int, sunday, wednesday string) dto.SaveRecordRequest {
	return dto.SaveRecordRequest{
		Date:                date,
		District:            district,
		Name:                name,
		BibleReading:        bible,
		SundayAttendance:    sunday,
		WednesdayAttendance: wednesday,
	}
}

func TestSaveNewRecord(t *testing.T) {
	store := newFakeStore()
	svc := newTestRecordService(store, baseTime)

	outcome, saved, err := svc.Save(context.Background(), saveReq("2026-03-04", 41, " 김철수 ", 3, "현장참석", ""))
	require.NoError(t, err)
	assert.Equal(t, SaveOutcomeSaved, outcome)

	require.NotNil(t, saved)
	assert.Equal(t, "2026-03-04_41_김철수", saved.RecordID)
	assert.Equal(t, "김철수", saved.RecordName) // stored trimmed
	assert.Equal(t, baseTime, saved.RecordTimestamp)
	assert.Len(t, store.rows, 1)
}

func TestSaveIdenticalResubmissionIsNoOp(t *testing.T) {
	store := newFakeStore()
	svc := newTestRecordService(store, baseTime)
	req := saveReq("2026-03-04", 41, "김철수", 3, "현장참석", "온라인")

	_, _, err := svc.Save(context.Background(), req)
	require.NoError(t, err)

	// same payload again, an hour later
	svc.Now = func() time.Time { return baseTime.Add(time.Hour) }
	outcome, saved, err := svc.Save(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, SaveOutcomeNoChanges, outcome)

	// the stored timestamp must not move: no authority churn on no-ops
	require.NotNil(t, saved)
	assert.Equal(t, baseTime, saved.RecordTimestamp)
	assert.Equal(t, baseTime, store.rows[saved.RecordID].RecordTimestamp)
}

func TestSaveCleansDriftedDuplicates(t *testing.T) {
	drifted := rec("2026-03-04", 41, "김철수", 3, baseTime)
	drifted.RecordID = "legacy-id"
	store := newFakeStore(drifted)
	svc := newTestRecordService(store, baseTime.Add(time.Hour))

	outcome, saved, err := svc.Save(context.Background(), saveReq("2026-03-04", 41, "김철수", 7, "", ""))
	require.NoError(t, err)
	assert.Equal(t, SaveOutcomeSaved, outcome)

	// the legacy row is gone, only the canonical row remains
	require.Len(t, store.rows, 1)
	_, ok := store.rows["legacy-id"]
	assert.False(t, ok)
	assert.Equal(t, saved.RecordID, "2026-03-04_41_김철수")
	assert.Equal(t, 7, store.rows[saved.RecordID].RecordBibleReading)
}

func TestSaveEmptySubmissionForNewIdentityIsNoOp(t *testing.T) {
	store := newFakeStore()
	svc := newTestRecordService(store, baseTime)

	outcome, saved, err := svc.Save(context.Background(), saveReq("2026-03-04", 41, "김철수", 0, "", ""))
	require.NoError(t, err)
	assert.Equal(t, SaveOutcomeNoChanges, outcome)
	assert.Nil(t, saved)
	assert.Empty(t, store.rows)
}

func TestLatestReadThrough(t *testing.T) {
	r := rec("2026-03-04", 41, "김철수", 3, baseTime)
	store := newFakeStore(r)
	svc := newTestRecordService(store, baseTime)

	got, err := svc.Latest(context.Background(), "2026-03-04", 41, "김철수")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, r.RecordID, got.RecordID)

	// populated cache now serves reads even when the store goes down
	store.err = errors.New("store down")
	got, err = svc.Latest(context.Background(), "2026-03-04", 41, "김철수")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, r.RecordID, got.RecordID)
}

func TestLatestStoreErrorWithoutCacheFails(t *testing.T) {
	store := newFakeStore()
	store.err = errors.New("store down")
	svc := newTestRecordService(store, baseTime)

	_, err := svc.Latest(context.Background(), "2026-03-04", 41, "김철수")
	assert.Error(t, err)
}

func TestLatestMissingEverywhere(t *testing.T) {
	svc := newTestRecordService(newFakeStore(), baseTime)

	got, err := svc.Latest(context.Background(), "2026-03-04", 41, "김철수")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestNamesDistinctTrimmedSorted(t *testing.T) {
	store := newFakeStore(
		rec("2026-03-04", 41, "김철수", 3, baseTime),
		rec("2026-03-05", 41, " 김철수 ", 2, baseTime),
		rec("2026-03-04", 42, "이영희", 1, baseTime),
	)
	svc := newTestRecordService(store, baseTime)

	names, err := svc.Names(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"김철수", "이영희"}, names)
}

func TestSweep(t *testing.T) {
	winner := rec("2026-03-04", 41, "김철수", 7, baseTime.Add(time.Hour))
	stale := rec("2026-03-04", 41, "김철수", 3, baseTime)
	stale.RecordID = "legacy-stale"

	driftedOld := rec("2026-03-01", 42, "이영희", 1, baseTime.Add(-48*time.Hour))
	driftedOld.RecordID = "drifted-old"
	driftedNew := rec("2026-03-02", 42, "이영희", 2, baseTime)
	driftedNew.RecordID = "drifted-new"

	store := newFakeStore(winner, stale, driftedOld, driftedNew)
	svc := newTestRecordService(store, baseTime)

	res, err := svc.Sweep(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, res.StaleDeleted)
	assert.Equal(t, 1, res.CrossDateDeleted)
	assert.Equal(t, 0, res.Failed)

	remaining := make([]string, 0, len(store.rows))
	for id := range store.rows {
		remaining = append(remaining, id)
	}
	sort.Strings(remaining)
	assert.Equal(t, []string{"2026-03-04_41_김철수", "drifted-new"}, remaining)
}
