package repos

import (
	"github.com/jhkim-dev/teaching-agent-backend/internal/data/repos/curriculum"
	"github.com/jhkim-dev/teaching-agent-backend/internal/data/repos/materials"
	"github.com/jhkim-dev/teaching-agent-backend/internal/platform/logger"
	"gorm.io/gorm"
)

type WeekRecordRepo = curriculum.WeekRecordRepo
type YearStatusRepo = curriculum.YearStatusRepo

type GeneratedMaterialRepo = materials.GeneratedMaterialRepo
type ChatExchangeRepo = materials.ChatExchangeRepo

func NewWeekRecordRepo(db *gorm.DB, baseLog *logger.Logger) WeekRecordRepo {
	return curriculum.NewWeekRecordRepo(db, baseLog)
}

func NewYearStatusRepo(db *gorm.DB, baseLog *logger.Logger) YearStatusRepo {
	return curriculum.NewYearStatusRepo(db, baseLog)
}

func NewGeneratedMaterialRepo(db *gorm.DB, baseLog *logger.Logger) GeneratedMaterialRepo {
	return materials.NewGeneratedMaterialRepo(db, baseLog)
}

func NewChatExchangeRepo(db *gorm.DB, baseLog *logger.Logger) ChatExchangeRepo {
	return materials.NewChatExchangeRepo(db, baseLog)
}
