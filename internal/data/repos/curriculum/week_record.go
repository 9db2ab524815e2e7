package curriculum

import (
	"context"

	types "github.com/jhkim-dev/teaching-agent-backend/internal/domain"
	"github.com/jhkim-dev/teaching-agent-backend/internal/platform/logger"
	"gorm.io/gorm"
)

type WeekRecordRepo interface {
	Create(ctx context.Context, tx *gorm.DB, records []*types.WeekRecord) ([]*types.WeekRecord, error)
	GetByYear(ctx context.Context, tx *gorm.DB, year int) ([]*types.WeekRecord, error)
	DeleteByYear(ctx context.Context, tx *gorm.DB, year int) error
	CountByYear(ctx context.Context, tx *gorm.DB, year int) (int64, error)
}

type weekRecordRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewWeekRecordRepo(db *gorm.DB, baseLog *logger.Logger) WeekRecordRepo {
	repoLog := baseLog.With("repo", "WeekRecordRepo")
	return &weekRecordRepo{db: db, log: repoLog}
}

func (r *weekRecordRepo) Create(ctx context.Context, tx *gorm.DB, records []*types.WeekRecord) ([]*types.WeekRecord, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	if len(records) == 0 {
		return []*types.WeekRecord{}, nil
	}

	if err := transaction.WithContext(ctx).Create(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

// GetByYear returns the year's records sorted ascending by end date, the
// order lookups and listings rely on.
func (r *weekRecordRepo) GetByYear(ctx context.Context, tx *gorm.DB, year int) ([]*types.WeekRecord, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var results []*types.WeekRecord
	if err := transaction.WithContext(ctx).
		Where("year = ?", year).
		Order("end_date ASC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *weekRecordRepo) DeleteByYear(ctx context.Context, tx *gorm.DB, year int) error {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	if err := transaction.WithContext(ctx).
		Where("year = ?", year).
		Delete(&types.WeekRecord{}).Error; err != nil {
		return err
	}
	return nil
}

func (r *weekRecordRepo) CountByYear(ctx context.Context, tx *gorm.DB, year int) (int64, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var count int64
	if err := transaction.WithContext(ctx).
		Model(&types.WeekRecord{}).
		Where("year = ?", year).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
