package scraper

import (
	"context"
	"fmt"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	types "github.com/jhkim-dev/teaching-agent-backend/internal/domain"
	"github.com/jhkim-dev/teaching-agent-backend/internal/platform/httpx"
	"github.com/jhkim-dev/teaching-agent-backend/internal/platform/logger"
)

const indexUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"

// Link-based extraction below this count triggers the text-scan pass; the
// site renders some months as plain text rather than anchors.
const minLinkRecords = 10

// Extractor turns a year's index page into week records. All failure modes
// collapse to an empty slice so the caller can fall through to static data.
type Extractor struct {
	baseURL     string
	series      *SeriesResolver
	client      *http.Client
	log         *logger.Logger
	maxAttempts int
	retryDelay  time.Duration
}

func NewExtractor(baseURL string, client *http.Client, baseLog *logger.Logger) *Extractor {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if client == nil {
		client = &http.Client{Timeout: 30 * time.Second}
	}
	return &Extractor{
		baseURL: baseURL,
		// Probing gets its own short-timeout client; a candidate miss
		// should fail fast instead of waiting out the page-fetch timeout.
		series:      NewSeriesResolver(baseURL, nil, baseLog),
		client:      client,
		log:         baseLog.With("component", "Extractor"),
		maxAttempts: 3,
		retryDelay:  2 * time.Second,
	}
}

// ExtractYear fetches and parses the year's index page. Returns an empty
// slice when the URL cannot be resolved, the page cannot be fetched, or no
// candidate links parse.
func (e *Extractor) ExtractYear(ctx context.Context, year int) []*types.WeekRecord {
	indexURL, err := e.series.Resolve(ctx, year)
	if err != nil {
		e.log.Warn("no index url for year", "year", year, "error", err)
		return []*types.WeekRecord{}
	}

	doc, err := e.fetchIndex(ctx, indexURL)
	if err != nil {
		e.log.Warn("index fetch failed", "year", year, "url", indexURL, "error", err)
		return []*types.WeekRecord{}
	}

	records := e.extractFromLinks(doc, year)
	if len(records) < minLinkRecords {
		e.log.Info("link extraction under threshold, scanning page text",
			"year", year, "records", len(records))
		records = e.mergeTextScan(doc, year, indexURL, records)
	}

	e.log.Info("extracted year", "year", year, "records", len(records))
	return records
}

// fetchIndex retries transient transport failures with doubling backoff.
// HTTP status errors fail fast; a bad status will not improve on retry.
func (e *Extractor) fetchIndex(ctx context.Context, url string) (*goquery.Document, error) {
	delay := e.retryDelay
	for attempt := 1; ; attempt++ {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return nil, err
		}
		req.Header.Set("User-Agent", indexUserAgent)
		req.Header.Set("Accept-Language", "ko-KR,ko;q=0.8,en-US;q=0.5,en;q=0.3")

		resp, err := e.client.Do(req)
		if err != nil {
			if attempt < e.maxAttempts && httpx.IsRetryableError(err) {
				e.log.Warn("index fetch attempt failed, retrying",
					"attempt", attempt, "url", url, "error", err)
				timer := time.NewTimer(httpx.JitterSleep(delay))
				select {
				case <-ctx.Done():
					timer.Stop()
					return nil, ctx.Err()
				case <-timer.C:
				}
				delay *= 2
				continue
			}
			return nil, err
		}

		if resp.StatusCode < 200 || resp.StatusCode >= 300 {
			resp.Body.Close()
			return nil, fmt.Errorf("index fetch: unexpected status %d", resp.StatusCode)
		}

		doc, err := goquery.NewDocumentFromReader(resp.Body)
		resp.Body.Close()
		if err != nil {
			return nil, fmt.Errorf("index parse: %w", err)
		}
		return doc, nil
	}
}

// extractFromLinks walks every anchor and keeps the ones that look like
// lesson links, either by href shape or by a date-range in the visible
// text. Markup varies across corpora and years, so both heuristics run.
func (e *Extractor) extractFromLinks(doc *goquery.Document, year int) []*types.WeekRecord {
	yearToken := fmt.Sprintf("%d", year)
	seen := map[string]bool{}
	var records []*types.WeekRecord

	doc.Find("a[href]").Each(func(_ int, sel *goquery.Selection) {
		href, _ := sel.Attr("href")
		text := strings.TrimSpace(sel.Text())
		if text == "" {
			return
		}

		hrefCandidate := strings.Contains(href, yearToken) && strings.Contains(href, "/study/manual/")
		textCandidate := FindDateRange(text) != ""
		if !hrefCandidate && !textCandidate {
			return
		}
		if seen[href] {
			return
		}
		seen[href] = true

		record := e.buildRecord(href, text, year)
		if record != nil {
			records = append(records, record)
		}
	})

	if records == nil {
		return []*types.WeekRecord{}
	}
	return records
}

func (e *Extractor) buildRecord(href, text string, year int) *types.WeekRecord {
	weekRange := FindDateRange(text)
	if weekRange == "" {
		return nil
	}
	start, end, err := ParseDateRange(weekRange, year)
	if err != nil {
		e.log.Debug("skipping candidate with unparseable date", "text", text, "error", err)
		return nil
	}

	lessonURL := href
	if strings.HasPrefix(href, "/") {
		lessonURL = e.baseURL + href
	}

	return &types.WeekRecord{
		Year:           year,
		StartDate:      start,
		EndDate:        end,
		WeekRange:      weekRange,
		ScriptureRange: ExtractScriptureRange(text, year),
		LessonTitle:    text,
		LessonURL:      lessonURL,
		Section:        fmt.Sprintf("%d월", int(start.Month())),
	}
}

// textPattern recognizes one week rendered as plain page text.
type textPattern struct {
	re             *regexp.Regexp
	weekRange      string
	scriptureRange string
	slug           string
}

// Hand-maintained per-year patterns for months the site is known to render
// outside anchors.
var textScanPatterns = map[int][]textPattern{
	2025: {
		{regexp.MustCompile(`9월\s*1일[~\-–～\\]*\s*7일[\s\S]*?교리와\s*성약\s*94[~\-–～\\]*97편`), "9월1일~7일", "교리와 성약 94~97편", "35-doctrine-and-covenants-94-97"},
		{regexp.MustCompile(`9월\s*8일[~\-–～\\]*\s*14일[\s\S]*?교리와\s*성약\s*98[~\-–～\\]*101편`), "9월8일~14일", "교리와 성약 98~101편", "36-doctrine-and-covenants-98-101"},
		{regexp.MustCompile(`9월\s*15일[~\-–～\\]*\s*21일[\s\S]*?교리와\s*성약\s*102[~\-–～\\]*105편`), "9월15일~21일", "교리와 성약 102~105편", "37-doctrine-and-covenants-102-105"},
		{regexp.MustCompile(`9월\s*22일[~\-–～\\]*\s*28일[\s\S]*?교리와\s*성약\s*106[~\-–～\\]*108편`), "9월22일~28일", "교리와 성약 106~108편", "38-doctrine-and-covenants-106-108"},
	},
}

// mergeTextScan runs the plain-text pass and appends weeks not already
// covered by link extraction. Link-based records win on overlap.
func (e *Extractor) mergeTextScan(doc *goquery.Document, year int, indexURL string, records []*types.WeekRecord) []*types.WeekRecord {
	patterns := textScanPatterns[year]
	if len(patterns) == 0 {
		return records
	}

	existing := map[string]bool{}
	for _, r := range records {
		existing[r.WeekRange] = true
	}

	pageText := doc.Text()
	lessonBase := strings.TrimSuffix(indexURL, "?lang=kor")

	for _, p := range patterns {
		if existing[p.weekRange] || !p.re.MatchString(pageText) {
			continue
		}
		start, end, err := ParseDateRange(p.weekRange, year)
		if err != nil {
			continue
		}
		records = append(records, &types.WeekRecord{
			Year:           year,
			StartDate:      start,
			EndDate:        end,
			WeekRange:      p.weekRange,
			ScriptureRange: p.scriptureRange,
			LessonTitle:    p.weekRange + " " + p.scriptureRange,
			LessonURL:      fmt.Sprintf("%s/%s?lang=kor", lessonBase, p.slug),
			Section:        fmt.Sprintf("%d월", int(start.Month())),
		})
		existing[p.weekRange] = true
		e.log.Info("text scan recovered week", "week", p.weekRange)
	}
	return records
}
