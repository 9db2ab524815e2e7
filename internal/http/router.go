package http

import (
	"github.com/gin-gonic/gin"

	httpH "github.com/jhkim-dev/teaching-agent-backend/internal/http/handlers"
	httpMW "github.com/jhkim-dev/teaching-agent-backend/internal/http/middleware"
)

type RouterConfig struct {
	HealthHandler     *httpH.HealthHandler
	CurriculumHandler *httpH.CurriculumHandler
	MaterialHandler   *httpH.MaterialHandler
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	r := gin.Default()
	r.Use(httpMW.CORS())

	// Health
	if cfg.HealthHandler != nil {
		r.GET("/", cfg.HealthHandler.Root)
		r.GET("/healthcheck", cfg.HealthHandler.HealthCheck)
	}

	api := r.Group("/api")
	{
		if cfg.CurriculumHandler != nil {
			api.GET("/weeks", cfg.CurriculumHandler.ListWeeks)
			api.GET("/weeks/current", cfg.CurriculumHandler.CurrentWeek)
			api.POST("/curriculum", cfg.CurriculumHandler.GetCurriculum)
		}

		if cfg.MaterialHandler != nil {
			api.GET("/target-audiences", cfg.MaterialHandler.TargetAudiences)
			api.POST("/generate-material", cfg.MaterialHandler.GenerateMaterial)
			api.POST("/chat", cfg.MaterialHandler.Chat)
			api.GET("/qa-history", cfg.MaterialHandler.QAHistory)
		}
	}

	return r
}
