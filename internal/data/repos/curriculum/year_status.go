package curriculum

import (
	"context"
	"errors"
	"time"

	types "github.com/jhkim-dev/teaching-agent-backend/internal/domain"
	"github.com/jhkim-dev/teaching-agent-backend/internal/platform/logger"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type YearStatusRepo interface {
	Get(ctx context.Context, tx *gorm.DB, year int) (*types.YearStatus, error)
	Upsert(ctx context.Context, tx *gorm.DB, year int, status string, totalWeeks int, at time.Time) error
}

type yearStatusRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewYearStatusRepo(db *gorm.DB, baseLog *logger.Logger) YearStatusRepo {
	repoLog := baseLog.With("repo", "YearStatusRepo")
	return &yearStatusRepo{db: db, log: repoLog}
}

// Get returns nil, nil when the year has no status row yet.
func (r *yearStatusRepo) Get(ctx context.Context, tx *gorm.DB, year int) (*types.YearStatus, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var result types.YearStatus
	err := transaction.WithContext(ctx).
		Where("year = ?", year).
		First(&result).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &result, nil
}

func (r *yearStatusRepo) Upsert(ctx context.Context, tx *gorm.DB, year int, status string, totalWeeks int, at time.Time) error {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	row := &types.YearStatus{
		Year:        year,
		Status:      status,
		TotalWeeks:  totalWeeks,
		LastUpdated: at,
	}
	return transaction.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "year"}},
			DoUpdates: clause.AssignmentColumns([]string{"status", "total_weeks", "last_updated"}),
		}).
		Create(row).Error
}
