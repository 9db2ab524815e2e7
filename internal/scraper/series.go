package scraper

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/jhkim-dev/teaching-agent-backend/internal/platform/apperr"
	"github.com/jhkim-dev/teaching-agent-backend/internal/platform/logger"
)

const DefaultBaseURL = "https://www.churchofjesuschrist.org"

// knownSeries maps years whose curriculum corpus is already published.
var knownSeries = map[int]string{
	2025: "doctrine-and-covenants",
}

// candidateSeries is the rotation the publisher cycles through; probed in
// order when a year is not in knownSeries or its known entry stops
// resolving.
var candidateSeries = []string{
	"doctrine-and-covenants",
	"old-testament",
	"new-testament",
	"book-of-mormon",
}

// SeriesResolver discovers the index-page URL for a year by probing
// candidate series identifiers. Results are memoized for the resolver's
// lifetime so one extraction pass probes each year at most once.
type SeriesResolver struct {
	baseURL string
	client  *http.Client
	log     *logger.Logger
	cache   map[int]string
}

func NewSeriesResolver(baseURL string, client *http.Client, baseLog *logger.Logger) *SeriesResolver {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if client == nil {
		client = &http.Client{Timeout: 10 * time.Second}
	}
	return &SeriesResolver{
		baseURL: baseURL,
		client:  client,
		log:     baseLog.With("component", "SeriesResolver"),
		cache:   map[int]string{},
	}
}

// DefaultIndexURL is the best-effort index URL used for placeholder
// references when live resolution is unavailable.
func DefaultIndexURL(year int) string {
	series, ok := knownSeries[year]
	if !ok {
		series = candidateSeries[0]
	}
	return fmt.Sprintf("%s/study/manual/come-follow-me-for-home-and-church-%s-%d?lang=kor", DefaultBaseURL, series, year)
}

// IndexURL builds the yearly index-page URL for a series identifier.
func (r *SeriesResolver) IndexURL(series string, year int) string {
	return fmt.Sprintf("%s/study/manual/come-follow-me-for-home-and-church-%s-%d?lang=kor", r.baseURL, series, year)
}

// Resolve returns the index-page URL for year, probing the known series
// first and then the candidate rotation. apperr.ErrNoKnownPattern when
// nothing resolves.
func (r *SeriesResolver) Resolve(ctx context.Context, year int) (string, error) {
	if series, ok := r.cache[year]; ok {
		return r.IndexURL(series, year), nil
	}

	if series, ok := knownSeries[year]; ok {
		if r.probe(ctx, r.IndexURL(series, year)) {
			r.cache[year] = series
			return r.IndexURL(series, year), nil
		}
		r.log.Warn("known series did not resolve, probing candidates", "year", year, "series", series)
	}

	for _, series := range candidateSeries {
		if r.probe(ctx, r.IndexURL(series, year)) {
			r.log.Info("resolved series by probing", "year", year, "series", series)
			r.cache[year] = series
			return r.IndexURL(series, year), nil
		}
	}
	return "", fmt.Errorf("year %d: %w", year, apperr.ErrNoKnownPattern)
}

func (r *SeriesResolver) probe(ctx context.Context, url string) bool {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return false
	}
	req.Header.Set("User-Agent", indexUserAgent)

	resp, err := r.client.Do(req)
	if err != nil {
		r.log.Debug("probe failed", "url", url, "error", err)
		return false
	}
	defer resp.Body.Close()
	return resp.StatusCode >= 200 && resp.StatusCode < 300
}
