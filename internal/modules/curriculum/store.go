package curriculum

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/jhkim-dev/teaching-agent-backend/internal/data/repos"
	types "github.com/jhkim-dev/teaching-agent-backend/internal/domain"
	"github.com/jhkim-dev/teaching-agent-backend/internal/platform/apperr"
	"github.com/jhkim-dev/teaching-agent-backend/internal/platform/logger"
)

// Store is the persistence boundary for the week mapping. A year's records
// are replaced wholesale; there is no per-record mutation.
type Store interface {
	YearIsReady(ctx context.Context, year int) (bool, error)
	// ReplaceYear atomically swaps the year's records and marks the year
	// completed. Readers never observe a half-replaced year.
	ReplaceYear(ctx context.Context, year int, records []*types.WeekRecord) error
	// GetYear returns records sorted ascending by end date.
	GetYear(ctx context.Context, year int) ([]*types.WeekRecord, error)
}

type gormStore struct {
	db     *gorm.DB
	weeks  repos.WeekRecordRepo
	status repos.YearStatusRepo
	log    *logger.Logger
}

func NewStore(db *gorm.DB, baseLog *logger.Logger) Store {
	return &gormStore{
		db:     db,
		weeks:  repos.NewWeekRecordRepo(db, baseLog),
		status: repos.NewYearStatusRepo(db, baseLog),
		log:    baseLog.With("component", "CurriculumStore"),
	}
}

func (s *gormStore) YearIsReady(ctx context.Context, year int) (bool, error) {
	status, err := s.status.Get(ctx, nil, year)
	if err != nil {
		return false, fmt.Errorf("year status %d: %v: %w", year, err, apperr.ErrStorageUnavailable)
	}
	return status.Ready(), nil
}

func (s *gormStore) ReplaceYear(ctx context.Context, year int, records []*types.WeekRecord) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.weeks.DeleteByYear(ctx, tx, year); err != nil {
			return err
		}
		if _, err := s.weeks.Create(ctx, tx, records); err != nil {
			return err
		}
		return s.status.Upsert(ctx, tx, year, types.YearStatusCompleted, len(records), time.Now().UTC())
	})
	if err != nil {
		return fmt.Errorf("replace year %d: %v: %w", year, err, apperr.ErrStorageUnavailable)
	}
	s.log.Info("replaced year mapping", "year", year, "weeks", len(records))
	return nil
}

func (s *gormStore) GetYear(ctx context.Context, year int) ([]*types.WeekRecord, error) {
	records, err := s.weeks.GetByYear(ctx, nil, year)
	if err != nil {
		return nil, fmt.Errorf("get year %d: %v: %w", year, err, apperr.ErrStorageUnavailable)
	}
	return records, nil
}
