package handlers

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/jhkim-dev/teaching-agent-backend/internal/http/response"
	"github.com/jhkim-dev/teaching-agent-backend/internal/modules/curriculum"
)

type CurriculumHandler struct {
	svc *curriculum.Service
}

func NewCurriculumHandler(svc *curriculum.Service) *CurriculumHandler {
	return &CurriculumHandler{svc: svc}
}

// GET /api/weeks?year=2025
func (h *CurriculumHandler) ListWeeks(c *gin.Context) {
	year := time.Now().Year()
	if raw := c.Query("year"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			response.RespondError(c, http.StatusBadRequest, "bad_year", fmt.Errorf("invalid year %q", raw))
			return
		}
		year = parsed
	}

	weeks, err := h.svc.ListAvailableWeeks(c.Request.Context(), year)
	if err != nil {
		response.RespondError(c, http.StatusInternalServerError, "weeks_unavailable", err)
		return
	}
	response.RespondOK(c, gin.H{"weeks": weeks})
}

// GET /api/weeks/current
func (h *CurriculumHandler) CurrentWeek(c *gin.Context) {
	now := time.Now()
	record, idx, ok := h.svc.CurrentWeek(c.Request.Context(), now)
	if !ok {
		response.RespondOK(c, gin.H{"index": 0, "week": nil})
		return
	}
	response.RespondOK(c, gin.H{"index": idx, "week": record})
}

type curriculumRequest struct {
	StartDate string `json:"start_date" binding:"required"`
}

// POST /api/curriculum
func (h *CurriculumHandler) GetCurriculum(c *gin.Context) {
	var req curriculumRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "bad_request", err)
		return
	}
	date, err := time.Parse("2006-01-02", req.StartDate)
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "bad_date", fmt.Errorf("invalid start_date %q", req.StartDate))
		return
	}

	ref := h.svc.ResolveDate(c.Request.Context(), date)
	response.RespondOK(c, ref)
}
