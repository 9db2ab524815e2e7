package materials

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhkim-dev/teaching-agent-backend/internal/data/repos"
	types "github.com/jhkim-dev/teaching-agent-backend/internal/domain"
	"github.com/jhkim-dev/teaching-agent-backend/internal/platform/logger"
	"github.com/jhkim-dev/teaching-agent-backend/internal/platform/openai"
)

const (
	answerMaxRunes = 600
	answerMinCut   = 500
)

// GenerateRequest identifies a lesson and audience for material generation.
type GenerateRequest struct {
	WeekRange      string
	TargetAudience string
	LessonTitle    string
	LessonContent  string
	Week           *types.WeekRecord
}

// ChatRequest is one grounded question against a lesson and its material.
type ChatRequest struct {
	WeekRange         string
	TargetAudience    string
	LessonTitle       string
	LessonContent     string
	ReferenceMaterial string
	Question          string
}

// Service generates teaching materials and chat answers, caching materials
// by week, audience and title.
type Service struct {
	llm       openai.Client
	materials repos.GeneratedMaterialRepo
	chats     repos.ChatExchangeRepo
	log       *logger.Logger
}

func NewService(llm openai.Client, materials repos.GeneratedMaterialRepo, chats repos.ChatExchangeRepo, baseLog *logger.Logger) *Service {
	return &Service{
		llm:       llm,
		materials: materials,
		chats:     chats,
		log:       baseLog.With("service", "MaterialsService"),
	}
}

// GenerateMaterial serves a cached material when one exists for the same
// week, audience and title, otherwise generates and persists a new one.
// Persistence failures are logged and do not fail the request.
func (s *Service) GenerateMaterial(ctx context.Context, req GenerateRequest) (string, bool, error) {
	cached, err := s.materials.FindCached(ctx, nil, req.WeekRange, req.TargetAudience, req.LessonTitle)
	if err != nil {
		s.log.Warn("material cache lookup failed", "week", req.WeekRange, "error", err)
	} else if cached != nil {
		s.log.Info("serving cached material", "week", req.WeekRange, "audience", req.TargetAudience)
		return cached.Content, true, nil
	}

	prompt := fmt.Sprintf(curriculumUserTemplate, req.TargetAudience, req.LessonTitle, req.LessonContent)
	content, err := s.llm.GenerateText(ctx, curriculumSystemPrompt, prompt)
	if err != nil {
		return "", false, fmt.Errorf("generate material: %w", err)
	}

	material := &types.GeneratedMaterial{
		ID:             uuid.New(),
		WeekRange:      req.WeekRange,
		TargetAudience: req.TargetAudience,
		LessonTitle:    req.LessonTitle,
		Content:        content,
		CreatedAt:      time.Now().UTC(),
	}
	if req.Week != nil {
		if snapshot, err := json.Marshal(req.Week); err == nil {
			material.WeekSnapshot = snapshot
		}
	}
	if err := s.materials.Create(ctx, nil, material); err != nil {
		s.log.Warn("material save failed", "week", req.WeekRange, "error", err)
	}
	return content, false, nil
}

// Chat answers a question about the lesson, bounded to 600 characters, and
// records the exchange.
func (s *Service) Chat(ctx context.Context, req ChatRequest) (string, error) {
	prompt := fmt.Sprintf(chatUserTemplate, req.LessonTitle, req.LessonContent, req.ReferenceMaterial, req.Question)
	raw, err := s.llm.GenerateText(ctx, chatSystemPrompt, prompt)
	if err != nil {
		return "", fmt.Errorf("chat answer: %w", err)
	}
	answer := truncateAnswer(raw)

	exchange := &types.ChatExchange{
		ID:             uuid.New(),
		WeekRange:      req.WeekRange,
		TargetAudience: req.TargetAudience,
		Question:       req.Question,
		Answer:         answer,
		CreatedAt:      time.Now().UTC(),
	}
	if err := s.chats.Create(ctx, nil, exchange); err != nil {
		s.log.Warn("chat exchange save failed", "week", req.WeekRange, "error", err)
	}
	return answer, nil
}

// History lists past exchanges for a week and audience, newest first.
func (s *Service) History(ctx context.Context, weekRange, audience string) ([]*types.ChatExchange, error) {
	return s.chats.ListByWeekAndAudience(ctx, nil, weekRange, audience)
}

var sentenceEndings = []rune{'.', '!', '?', '。', '！', '？'}

// truncateAnswer bounds the answer to 600 characters, preferring to cut at
// the last sentence ending past position 500 so the text stays readable.
func truncateAnswer(text string) string {
	runes := []rune(text)
	if len(runes) <= answerMaxRunes {
		return text
	}
	truncated := runes[:answerMaxRunes]

	cut := -1
	for i, r := range truncated {
		for _, ending := range sentenceEndings {
			if r == ending && i > cut {
				cut = i
			}
		}
	}
	if cut > answerMinCut {
		return string(truncated[:cut+1])
	}
	return strings.TrimRight(string(truncated), " \t\n") + "..."
}
