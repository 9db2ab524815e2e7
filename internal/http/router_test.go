package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sort"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	types "github.com/jhkim-dev/teaching-agent-backend/internal/domain"
	httpserver "github.com/jhkim-dev/teaching-agent-backend/internal/http"
	"github.com/jhkim-dev/teaching-agent-backend/internal/http/handlers"
	"github.com/jhkim-dev/teaching-agent-backend/internal/modules/curriculum"
	"github.com/jhkim-dev/teaching-agent-backend/internal/modules/materials"
	"github.com/jhkim-dev/teaching-agent-backend/internal/platform/logger"
)

type memStore struct {
	years map[int][]*types.WeekRecord
}

func (s *memStore) YearIsReady(_ context.Context, year int) (bool, error) {
	return len(s.years[year]) > 0, nil
}

func (s *memStore) ReplaceYear(_ context.Context, year int, records []*types.WeekRecord) error {
	s.years[year] = records
	return nil
}

func (s *memStore) GetYear(_ context.Context, year int) ([]*types.WeekRecord, error) {
	records := append([]*types.WeekRecord{}, s.years[year]...)
	sort.Slice(records, func(i, j int) bool { return records[i].EndDate.Before(records[j].EndDate) })
	return records, nil
}

type noopExtractor struct{}

func (noopExtractor) ExtractYear(context.Context, int) []*types.WeekRecord {
	return []*types.WeekRecord{}
}

type noopFallback struct{}

func (noopFallback) Weeks(int) []*types.WeekRecord { return []*types.WeekRecord{} }

type staticFetcher struct{ content string }

func (f staticFetcher) Fetch(context.Context, string) string { return f.content }

type staticLLM struct{ response string }

func (l staticLLM) GenerateText(context.Context, string, string) (string, error) {
	return l.response, nil
}

type memMaterialRepo struct {
	stored []*types.GeneratedMaterial
}

func (r *memMaterialRepo) Create(_ context.Context, _ *gorm.DB, m *types.GeneratedMaterial) error {
	r.stored = append(r.stored, m)
	return nil
}

func (r *memMaterialRepo) FindCached(_ context.Context, _ *gorm.DB, weekRange, audience, title string) (*types.GeneratedMaterial, error) {
	for _, m := range r.stored {
		if m.WeekRange == weekRange && m.TargetAudience == audience && m.LessonTitle == title {
			return m, nil
		}
	}
	return nil, nil
}

func (r *memMaterialRepo) ListByWeek(_ context.Context, _ *gorm.DB, weekRange string) ([]*types.GeneratedMaterial, error) {
	return nil, nil
}

type memChatRepo struct {
	stored []*types.ChatExchange
}

func (r *memChatRepo) Create(_ context.Context, _ *gorm.DB, e *types.ChatExchange) error {
	r.stored = append(r.stored, e)
	return nil
}

func (r *memChatRepo) ListByWeekAndAudience(_ context.Context, _ *gorm.DB, weekRange, audience string) ([]*types.ChatExchange, error) {
	var out []*types.ChatExchange
	for _, e := range r.stored {
		if e.WeekRange == weekRange && e.TargetAudience == audience {
			out = append(out, e)
		}
	}
	return out, nil
}

func seededWeek() *types.WeekRecord {
	return &types.WeekRecord{
		Year:           2025,
		StartDate:      time.Date(2025, 9, 8, 0, 0, 0, 0, time.UTC),
		EndDate:        time.Date(2025, 9, 14, 0, 0, 0, 0, time.UTC),
		WeekRange:      "9월8일~14일",
		ScriptureRange: "교리와 성약 98~101편",
		LessonTitle:    "9월 8일~14일 교리와 성약 98~101편",
		LessonURL:      "https://www.churchofjesuschrist.org/study/manual/come-follow-me-for-home-and-church-doctrine-and-covenants-2025/36-doctrine-and-covenants-98-101?lang=kor",
		Section:        "9월",
	}
}

func testRouter(t *testing.T, materialRepo *memMaterialRepo, chatRepo *memChatRepo) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	log, err := logger.New("test")
	if err != nil {
		t.Fatalf("logger.New: %v", err)
	}

	// The week is stored under the current year too so week lookups keyed
	// on today's calendar find it.
	store := &memStore{years: map[int][]*types.WeekRecord{
		2025:              {seededWeek()},
		time.Now().Year(): {seededWeek()},
	}}
	curriculumSvc := curriculum.NewService(store, noopExtractor{}, noopFallback{},
		staticFetcher{content: "제목: 교리와 성약 98~101편"}, nil, log)
	materialsSvc := materials.NewService(staticLLM{response: "생성된 자료"}, materialRepo, chatRepo, log)

	return httpserver.NewRouter(httpserver.RouterConfig{
		HealthHandler:     handlers.NewHealthHandler("sqlite"),
		CurriculumHandler: handlers.NewCurriculumHandler(curriculumSvc),
		MaterialHandler:   handlers.NewMaterialHandler(materialsSvc, curriculumSvc),
	})
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	var reader *bytes.Buffer
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewBuffer(raw)
	} else {
		reader = bytes.NewBuffer(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	out := map[string]any{}
	if w.Body.Len() > 0 {
		if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
			t.Fatalf("decode response %q: %v", w.Body.String(), err)
		}
	}
	return w, out
}

func TestHealthcheck(t *testing.T) {
	r := testRouter(t, &memMaterialRepo{}, &memChatRepo{})
	w, out := doJSON(t, r, http.MethodGet, "/healthcheck", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status %d", w.Code)
	}
	if out["status"] != "healthy" || out["storage"] != "sqlite" {
		t.Fatalf("body: %v", out)
	}
}

func TestListWeeks(t *testing.T) {
	r := testRouter(t, &memMaterialRepo{}, &memChatRepo{})
	w, out := doJSON(t, r, http.MethodGet, "/api/weeks?year=2025", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status %d: %v", w.Code, out)
	}
	weeks, ok := out["weeks"].([]any)
	if !ok || len(weeks) != 1 {
		t.Fatalf("weeks: %v", out)
	}
	week := weeks[0].(map[string]any)
	if week["week_range"] != "9월8일~14일" || week["title_keywords"] != "교리와 성약 98~101편" {
		t.Fatalf("week: %v", week)
	}
}

func TestListWeeksBadYear(t *testing.T) {
	r := testRouter(t, &memMaterialRepo{}, &memChatRepo{})
	w, _ := doJSON(t, r, http.MethodGet, "/api/weeks?year=abc", nil)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status %d", w.Code)
	}
}

func TestGetCurriculumResolvesDate(t *testing.T) {
	r := testRouter(t, &memMaterialRepo{}, &memChatRepo{})
	w, out := doJSON(t, r, http.MethodPost, "/api/curriculum", map[string]string{"start_date": "2025-09-10"})
	if w.Code != http.StatusOK {
		t.Fatalf("status %d: %v", w.Code, out)
	}
	url, _ := out["url"].(string)
	if !strings.Contains(url, "/36-doctrine-and-covenants-98-101") {
		t.Fatalf("url: %q", url)
	}
	if out["content"] != "제목: 교리와 성약 98~101편" {
		t.Fatalf("content: %v", out["content"])
	}
}

func TestGetCurriculumPlaceholderForUncoveredDate(t *testing.T) {
	r := testRouter(t, &memMaterialRepo{}, &memChatRepo{})
	w, out := doJSON(t, r, http.MethodPost, "/api/curriculum", map[string]string{"start_date": "2026-03-01"})
	if w.Code != http.StatusOK {
		t.Fatalf("resolution must never fail, status %d: %v", w.Code, out)
	}
	title, _ := out["title"].(string)
	if !strings.Contains(title, "2026년") || !strings.Contains(title, "주차 공과") {
		t.Fatalf("placeholder title: %q", title)
	}
}

func TestGenerateMaterialCaching(t *testing.T) {
	r := testRouter(t, &memMaterialRepo{}, &memChatRepo{})
	body := map[string]string{
		"week_range":      "9월8일~14일",
		"target_audience": "청년",
		"lesson_title":    "교리와 성약 98~101편",
		"lesson_content":  "공과 내용",
	}

	w, out := doJSON(t, r, http.MethodPost, "/api/generate-material", body)
	if w.Code != http.StatusOK {
		t.Fatalf("status %d: %v", w.Code, out)
	}
	if out["material"] != "생성된 자료" || out["is_cached"] != false {
		t.Fatalf("first call: %v", out)
	}

	_, out = doJSON(t, r, http.MethodPost, "/api/generate-material", body)
	if out["is_cached"] != true {
		t.Fatalf("second call must hit cache: %v", out)
	}
}

func TestGenerateMaterialStoresWeekSnapshot(t *testing.T) {
	materialRepo := &memMaterialRepo{}
	r := testRouter(t, materialRepo, &memChatRepo{})

	w, out := doJSON(t, r, http.MethodPost, "/api/generate-material", map[string]string{
		"week_range":      "9월8일~14일",
		"target_audience": "성인",
		"lesson_title":    "교리와 성약 98~101편",
		"lesson_content":  "공과 내용",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("status %d: %v", w.Code, out)
	}
	if len(materialRepo.stored) != 1 {
		t.Fatalf("material not stored")
	}

	snapshot := materialRepo.stored[0].WeekSnapshot
	if len(snapshot) == 0 {
		t.Fatalf("week snapshot not stored")
	}
	var snap map[string]any
	if err := json.Unmarshal(snapshot, &snap); err != nil {
		t.Fatalf("decode snapshot: %v", err)
	}
	if snap["week_range"] != "9월8일~14일" {
		t.Fatalf("snapshot: %v", snap)
	}
}

func TestTargetAudiences(t *testing.T) {
	r := testRouter(t, &memMaterialRepo{}, &memChatRepo{})

	req := httptest.NewRequest(http.MethodGet, "/api/target-audiences", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("status %d", w.Code)
	}

	var audiences []string
	if err := json.Unmarshal(w.Body.Bytes(), &audiences); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(audiences) != 4 || audiences[0] != "성인" {
		t.Fatalf("audiences: %v", audiences)
	}
}

func TestRoot(t *testing.T) {
	r := testRouter(t, &memMaterialRepo{}, &memChatRepo{})
	w, out := doJSON(t, r, http.MethodGet, "/", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status %d", w.Code)
	}
	if out["status"] != "running" {
		t.Fatalf("body: %v", out)
	}
}

func TestChatAndHistory(t *testing.T) {
	chatRepo := &memChatRepo{}
	r := testRouter(t, &memMaterialRepo{}, chatRepo)

	w, out := doJSON(t, r, http.MethodPost, "/api/chat", map[string]string{
		"week_range":      "9월8일~14일",
		"target_audience": "청년",
		"user_question":   "핵심 교리는 무엇인가요?",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("status %d: %v", w.Code, out)
	}
	if out["answer"] != "생성된 자료" {
		t.Fatalf("answer: %v", out)
	}
	if len(chatRepo.stored) != 1 {
		t.Fatalf("exchange not stored")
	}

	w, out = doJSON(t, r, http.MethodGet,
		"/api/qa-history?week_range=9월8일~14일&target_audience=청년", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("history status %d: %v", w.Code, out)
	}
	items, ok := out["items"].([]any)
	if !ok || len(items) != 1 {
		t.Fatalf("items: %v", out)
	}
}

func TestChatValidation(t *testing.T) {
	r := testRouter(t, &memMaterialRepo{}, &memChatRepo{})
	w, _ := doJSON(t, r, http.MethodPost, "/api/chat", map[string]string{"week_range": "9월8일~14일"})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status %d", w.Code)
	}
}
