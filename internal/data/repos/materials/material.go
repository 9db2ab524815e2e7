package materials

import (
	"context"
	"errors"

	types "github.com/jhkim-dev/teaching-agent-backend/internal/domain"
	"github.com/jhkim-dev/teaching-agent-backend/internal/platform/logger"
	"gorm.io/gorm"
)

type GeneratedMaterialRepo interface {
	Create(ctx context.Context, tx *gorm.DB, m *types.GeneratedMaterial) error
	// FindCached returns nil, nil when no material matches.
	FindCached(ctx context.Context, tx *gorm.DB, weekRange, audience, lessonTitle string) (*types.GeneratedMaterial, error)
	ListByWeek(ctx context.Context, tx *gorm.DB, weekRange string) ([]*types.GeneratedMaterial, error)
}

type generatedMaterialRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewGeneratedMaterialRepo(db *gorm.DB, baseLog *logger.Logger) GeneratedMaterialRepo {
	repoLog := baseLog.With("repo", "GeneratedMaterialRepo")
	return &generatedMaterialRepo{db: db, log: repoLog}
}

func (r *generatedMaterialRepo) Create(ctx context.Context, tx *gorm.DB, m *types.GeneratedMaterial) error {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	return transaction.WithContext(ctx).Create(m).Error
}

func (r *generatedMaterialRepo) FindCached(ctx context.Context, tx *gorm.DB, weekRange, audience, lessonTitle string) (*types.GeneratedMaterial, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var result types.GeneratedMaterial
	err := transaction.WithContext(ctx).
		Where("week_range = ? AND target_audience = ? AND lesson_title = ?", weekRange, audience, lessonTitle).
		Order("created_at DESC").
		First(&result).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &result, nil
}

func (r *generatedMaterialRepo) ListByWeek(ctx context.Context, tx *gorm.DB, weekRange string) ([]*types.GeneratedMaterial, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var results []*types.GeneratedMaterial
	if err := transaction.WithContext(ctx).
		Where("week_range = ?", weekRange).
		Order("created_at DESC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}
