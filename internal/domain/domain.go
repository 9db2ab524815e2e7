package domain

import (
	"github.com/jhkim-dev/teaching-agent-backend/internal/domain/curriculum"
	"github.com/jhkim-dev/teaching-agent-backend/internal/domain/materials"
)

type WeekRecord = curriculum.WeekRecord
type YearStatus = curriculum.YearStatus
type LessonReference = curriculum.LessonReference
type WeekSummary = curriculum.WeekSummary
type LessonContent = curriculum.LessonContent

type GeneratedMaterial = materials.GeneratedMaterial
type ChatExchange = materials.ChatExchange

const (
	YearStatusPending   = curriculum.YearStatusPending
	YearStatusCompleted = curriculum.YearStatusCompleted
)

var DateOnly = curriculum.DateOnly
