package curriculum

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/singleflight"

	types "github.com/jhkim-dev/teaching-agent-backend/internal/domain"
	"github.com/jhkim-dev/teaching-agent-backend/internal/platform/logger"
	"github.com/jhkim-dev/teaching-agent-backend/internal/platform/redisx"
	"github.com/jhkim-dev/teaching-agent-backend/internal/scraper"
)

// PlaceholderLessonContent matches the copy shown when a date cannot be
// mapped to a stored week.
const PlaceholderLessonContent = "이번 주 공과는 교리와 성약의 가르침에 관한 내용입니다."

// YearExtractor produces a year's records from the live site. Empty slice
// on failure, never an error.
type YearExtractor interface {
	ExtractYear(ctx context.Context, year int) []*types.WeekRecord
}

// ContentFetcher turns a lesson URL into a readable digest.
type ContentFetcher interface {
	Fetch(ctx context.Context, url string) string
}

// Service resolves calendar dates to lessons, refreshing the year mapping
// on demand.
type Service struct {
	store     Store
	extractor YearExtractor
	fallback  scraper.FallbackProvider
	fetcher   ContentFetcher
	cache     *redisx.Cache
	group     singleflight.Group
	log       *logger.Logger
}

func NewService(store Store, extractor YearExtractor, fallback scraper.FallbackProvider, fetcher ContentFetcher, cache *redisx.Cache, baseLog *logger.Logger) *Service {
	return &Service{
		store:     store,
		extractor: extractor,
		fallback:  fallback,
		fetcher:   fetcher,
		cache:     cache,
		log:       baseLog.With("service", "CurriculumService"),
	}
}

// EnsureYear makes the year's mapping available, refreshing from the live
// site and then the static fallback when the store has nothing. Racing
// calls for the same year collapse into one refresh. The bool reports
// readiness; an unready year is not an error.
func (s *Service) EnsureYear(ctx context.Context, year int) (bool, error) {
	v, err, _ := s.group.Do(fmt.Sprintf("ensure-%d", year), func() (interface{}, error) {
		return s.ensureYear(ctx, year)
	})
	if err != nil {
		return false, err
	}
	return v.(bool), nil
}

func (s *Service) ensureYear(ctx context.Context, year int) (bool, error) {
	ready, err := s.store.YearIsReady(ctx, year)
	if err != nil {
		return false, err
	}
	if ready {
		return true, nil
	}

	records := s.extractor.ExtractYear(ctx, year)
	if len(records) == 0 {
		s.log.Warn("live extraction produced nothing, trying fallback", "year", year)
		records = s.fallback.Weeks(year)
	}
	if len(records) == 0 {
		s.log.Warn("year has no data from any source", "year", year)
		return false, nil
	}

	if err := s.store.ReplaceYear(ctx, year, records); err != nil {
		return false, err
	}
	return true, nil
}

// ResolveDate maps a date to its week's lesson. It never fails: dates
// outside the stored mapping, or an entirely unready year, get a
// synthesized placeholder reference.
func (s *Service) ResolveDate(ctx context.Context, date time.Time) *types.LessonReference {
	year := date.Year()
	if _, err := s.EnsureYear(ctx, year); err != nil {
		s.log.Error("ensure year failed during resolve", "year", year, "error", err)
		return s.placeholderReference(date)
	}

	records, err := s.store.GetYear(ctx, year)
	if err != nil {
		s.log.Error("get year failed during resolve", "year", year, "error", err)
		return s.placeholderReference(date)
	}

	for _, record := range records {
		if record.Contains(date) {
			return &types.LessonReference{
				Title:   fmt.Sprintf("%s: %s", record.WeekRange, record.ScriptureRange),
				URL:     record.LessonURL,
				Content: s.FetchContent(ctx, record.LessonURL),
				Week:    record,
			}
		}
	}

	s.log.Warn("no week covers date", "date", date.Format("2006-01-02"))
	return s.placeholderReference(date)
}

func (s *Service) placeholderReference(date time.Time) *types.LessonReference {
	return &types.LessonReference{
		Title:   fmt.Sprintf("%d년 %02d월 %02d일 주차 공과", date.Year(), int(date.Month()), date.Day()),
		URL:     scraper.DefaultIndexURL(date.Year()),
		Content: PlaceholderLessonContent,
	}
}

// ListAvailableWeeks returns the year's weeks as display summaries, sorted
// ascending by end date. Date substrings are stripped from the scripture
// label; date and label render in separate UI fields.
func (s *Service) ListAvailableWeeks(ctx context.Context, year int) ([]types.WeekSummary, error) {
	if _, err := s.EnsureYear(ctx, year); err != nil {
		return nil, err
	}
	records, err := s.store.GetYear(ctx, year)
	if err != nil {
		return nil, err
	}

	summaries := make([]types.WeekSummary, 0, len(records))
	for _, r := range records {
		label := scraper.StripDateRange(r.ScriptureRange)
		if label == "" {
			label = r.ScriptureRange
		}
		summaries = append(summaries, types.WeekSummary{
			WeekRange:      r.WeekRange,
			ScriptureRange: label,
			StartDate:      r.StartDate.Format("2006-01-02"),
			EndDate:        r.EndDate.Format("2006-01-02"),
			Section:        r.Section,
			DisplayText:    fmt.Sprintf("%s - %s", r.WeekRange, label),
		})
	}
	return summaries, nil
}

// CurrentWeek returns the record containing t and its position in the
// year's sorted listing. ok is false when no stored week covers t.
func (s *Service) CurrentWeek(ctx context.Context, t time.Time) (*types.WeekRecord, int, bool) {
	year := t.Year()
	if _, err := s.EnsureYear(ctx, year); err != nil {
		s.log.Error("ensure year failed during current-week lookup", "year", year, "error", err)
		return nil, 0, false
	}
	records, err := s.store.GetYear(ctx, year)
	if err != nil {
		s.log.Error("get year failed during current-week lookup", "year", year, "error", err)
		return nil, 0, false
	}
	for i, record := range records {
		if record.Contains(t) {
			return record, i, true
		}
	}
	return nil, 0, false
}

// WeekByRange finds the stored week whose range label matches label within
// year. Labels are compared in canonical separator form, so client input
// with spaces or dash variants still matches. Returns nil when no week
// matches.
func (s *Service) WeekByRange(ctx context.Context, year int, label string) *types.WeekRecord {
	if _, err := s.EnsureYear(ctx, year); err != nil {
		s.log.Warn("ensure year failed during week lookup", "year", year, "error", err)
		return nil
	}
	records, err := s.store.GetYear(ctx, year)
	if err != nil {
		s.log.Warn("get year failed during week lookup", "year", year, "error", err)
		return nil
	}

	want := scraper.NormalizeDateRange(label)
	for _, record := range records {
		if scraper.NormalizeDateRange(record.WeekRange) == want {
			return record
		}
	}
	return nil
}

// FetchContent returns the digest for a lesson URL, serving from the
// optional redis cache when possible. Placeholder results are not cached;
// a later fetch may succeed.
func (s *Service) FetchContent(ctx context.Context, url string) string {
	if cached, ok := s.cache.Get(ctx, url); ok {
		return cached
	}
	content := s.fetcher.Fetch(ctx, url)
	if content != scraper.PlaceholderContent {
		s.cache.Set(ctx, url, content)
	}
	return content
}
