package repository

import (
	"context"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"wordlife_backend/internals/features/wordlife/model"
)

// RecordStore is the boundary to the activity-record collection. The pure
// dedup/aggregation/ranking core never talks to it directly; services receive
// a snapshot and controllers inject this interface so tests can swap a fake.
type RecordStore interface {
	GetAll(ctx context.Context) ([]model.ActivityRecordModel, error)
	FindByIdentity(ctx context.Context, date string, district int, name string) ([]model.ActivityRecordModel, error)
	FindByName(ctx context.Context, name string) ([]model.ActivityRecordModel, error)
	FindByPerson(ctx context.Context, district int, name string) ([]model.ActivityRecordModel, error)
	Upsert(ctx context.Context, rec *model.ActivityRecordModel) error
	Delete(ctx context.Context, id string) error
}

type gormRecordStore struct {
	db *gorm.DB
}

func NewGormRecordStore(db *gorm.DB) RecordStore {
	return &gormRecordStore{db: db}
}

func (s *gormRecordStore) GetAll(ctx context.Context) ([]model.ActivityRecordModel, error) {
	var out []model.ActivityRecordModel
	if err := s.db.WithContext(ctx).Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (s *gormRecordStore) FindByIdentity(ctx context.Context, date string, district int, name string) ([]model.ActivityRecordModel, error) {
	var out []model.ActivityRecordModel
	if err := s.db.WithContext(ctx).
		Where("record_date = ? AND record_district = ? AND trim(record_name) = ?",
			date, district, strings.TrimSpace(name)).
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (s *gormRecordStore) FindByName(ctx context.Context, name string) ([]model.ActivityRecordModel, error) {
	var out []model.ActivityRecordModel
	if err := s.db.WithContext(ctx).
		Where("trim(record_name) = ?", strings.TrimSpace(name)).
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (s *gormRecordStore) FindByPerson(ctx context.Context, district int, name string) ([]model.ActivityRecordModel, error) {
	var out []model.ActivityRecordModel
	if err := s.db.WithContext(ctx).
		Where("record_district = ? AND trim(record_name) = ?", district, strings.TrimSpace(name)).
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (s *gormRecordStore) Upsert(ctx context.Context, rec *model.ActivityRecordModel) error {
	return s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "record_id"}},
			UpdateAll: true,
		}).
		Create(rec).Error
}

func (s *gormRecordStore) Delete(ctx context.Context, id string) error {
	return s.db.WithContext(ctx).
		Delete(&model.ActivityRecordModel{}, "record_id = ?", id).Error
}
