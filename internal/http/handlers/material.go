package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/jhkim-dev/teaching-agent-backend/internal/http/response"
	"github.com/jhkim-dev/teaching-agent-backend/internal/modules/curriculum"
	"github.com/jhkim-dev/teaching-agent-backend/internal/modules/materials"
)

// targetAudiences is the fixed set of audiences materials can be tailored
// to; the client populates its selector from this list.
var targetAudiences = []string{"성인", "신회원", "청소년", "초등회"}

type MaterialHandler struct {
	svc   *materials.Service
	weeks *curriculum.Service
}

func NewMaterialHandler(svc *materials.Service, weeks *curriculum.Service) *MaterialHandler {
	return &MaterialHandler{svc: svc, weeks: weeks}
}

// GET /api/target-audiences
func (h *MaterialHandler) TargetAudiences(c *gin.Context) {
	response.RespondOK(c, targetAudiences)
}

type generateMaterialRequest struct {
	WeekRange      string `json:"week_range" binding:"required"`
	TargetAudience string `json:"target_audience" binding:"required"`
	LessonTitle    string `json:"lesson_title" binding:"required"`
	LessonContent  string `json:"lesson_content"`
}

// POST /api/generate-material
func (h *MaterialHandler) GenerateMaterial(c *gin.Context) {
	var req generateMaterialRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "bad_request", err)
		return
	}

	// Attach the stored week so the material carries a snapshot of the
	// schedule it was generated against.
	week := h.weeks.WeekByRange(c.Request.Context(), time.Now().Year(), req.WeekRange)

	material, cached, err := h.svc.GenerateMaterial(c.Request.Context(), materials.GenerateRequest{
		WeekRange:      req.WeekRange,
		TargetAudience: req.TargetAudience,
		LessonTitle:    req.LessonTitle,
		LessonContent:  req.LessonContent,
		Week:           week,
	})
	if err != nil {
		response.RespondError(c, http.StatusInternalServerError, "generation_failed", err)
		return
	}
	response.RespondOK(c, gin.H{"material": material, "is_cached": cached})
}

type chatRequest struct {
	WeekRange         string `json:"week_range" binding:"required"`
	TargetAudience    string `json:"target_audience" binding:"required"`
	LessonTitle       string `json:"lesson_title"`
	LessonContent     string `json:"lesson_content"`
	ReferenceMaterial string `json:"reference_material"`
	UserQuestion      string `json:"user_question" binding:"required"`
}

// POST /api/chat
func (h *MaterialHandler) Chat(c *gin.Context) {
	var req chatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "bad_request", err)
		return
	}

	answer, err := h.svc.Chat(c.Request.Context(), materials.ChatRequest{
		WeekRange:         req.WeekRange,
		TargetAudience:    req.TargetAudience,
		LessonTitle:       req.LessonTitle,
		LessonContent:     req.LessonContent,
		ReferenceMaterial: req.ReferenceMaterial,
		Question:          req.UserQuestion,
	})
	if err != nil {
		response.RespondError(c, http.StatusInternalServerError, "chat_failed", err)
		return
	}
	response.RespondOK(c, gin.H{"answer": answer})
}

// GET /api/qa-history?week_range=...&target_audience=...
func (h *MaterialHandler) QAHistory(c *gin.Context) {
	weekRange := c.Query("week_range")
	audience := c.Query("target_audience")
	if weekRange == "" || audience == "" {
		response.RespondError(c, http.StatusBadRequest, "bad_request",
			fmt.Errorf("week_range and target_audience are required"))
		return
	}

	history, err := h.svc.History(c.Request.Context(), weekRange, audience)
	if err != nil {
		response.RespondError(c, http.StatusInternalServerError, "history_unavailable", err)
		return
	}
	response.RespondOK(c, gin.H{"items": history})
}
