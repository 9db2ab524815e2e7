package materials

import (
	"context"

	types "github.com/jhkim-dev/teaching-agent-backend/internal/domain"
	"github.com/jhkim-dev/teaching-agent-backend/internal/platform/logger"
	"gorm.io/gorm"
)

type ChatExchangeRepo interface {
	Create(ctx context.Context, tx *gorm.DB, e *types.ChatExchange) error
	ListByWeekAndAudience(ctx context.Context, tx *gorm.DB, weekRange, audience string) ([]*types.ChatExchange, error)
}

type chatExchangeRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewChatExchangeRepo(db *gorm.DB, baseLog *logger.Logger) ChatExchangeRepo {
	repoLog := baseLog.With("repo", "ChatExchangeRepo")
	return &chatExchangeRepo{db: db, log: repoLog}
}

func (r *chatExchangeRepo) Create(ctx context.Context, tx *gorm.DB, e *types.ChatExchange) error {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	return transaction.WithContext(ctx).Create(e).Error
}

func (r *chatExchangeRepo) ListByWeekAndAudience(ctx context.Context, tx *gorm.DB, weekRange, audience string) ([]*types.ChatExchange, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var results []*types.ChatExchange
	if err := transaction.WithContext(ctx).
		Where("week_range = ? AND target_audience = ?", weekRange, audience).
		Order("created_at DESC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}
