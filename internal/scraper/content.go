package scraper

import (
	"context"
	"net/http"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
	"github.com/jhkim-dev/teaching-agent-backend/internal/platform/logger"
)

// PlaceholderContent is returned whenever a lesson page cannot be fetched
// or yields no usable text.
const PlaceholderContent = "이번 주 공과의 상세 내용을 가져올 수 없습니다."

const (
	maxParagraphs   = 15
	maxSubheadings  = 10
	maxListItems    = 10
	minSnippetRunes = 20
	minDigestRunes  = 40
	maxDigestRunes  = 8000
)

// Fetcher assembles a readable digest from a lesson page. Fetch never
// returns an error; failures degrade to PlaceholderContent.
type Fetcher struct {
	client *http.Client
	log    *logger.Logger
}

func NewFetcher(client *http.Client, baseLog *logger.Logger) *Fetcher {
	if client == nil {
		client = &http.Client{Timeout: 30 * time.Second}
	}
	return &Fetcher{client: client, log: baseLog.With("component", "Fetcher")}
}

func (f *Fetcher) Fetch(ctx context.Context, url string) string {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		f.log.Warn("lesson fetch: bad url", "url", url, "error", err)
		return PlaceholderContent
	}
	req.Header.Set("User-Agent", indexUserAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		f.log.Warn("lesson fetch failed", "url", url, "error", err)
		return PlaceholderContent
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		f.log.Warn("lesson fetch: unexpected status", "url", url, "status", resp.StatusCode)
		return PlaceholderContent
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		f.log.Warn("lesson parse failed", "url", url, "error", err)
		return PlaceholderContent
	}
	return f.digest(doc)
}

func (f *Fetcher) digest(doc *goquery.Document) string {
	var sections []string

	if title := strings.TrimSpace(doc.Find("h1").First().Text()); title != "" {
		sections = append(sections, "제목: "+title)
	}
	if subtitle := strings.TrimSpace(doc.Find("h2").First().Text()); subtitle != "" {
		sections = append(sections, "부제목: "+subtitle)
	}

	// Short paragraphs are navigation furniture and footnote markers.
	count := 0
	doc.Find("p").EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		text := strings.TrimSpace(sel.Text())
		if utf8.RuneCountInString(text) > minSnippetRunes {
			sections = append(sections, text)
			count++
		}
		return count < maxParagraphs
	})

	count = 0
	doc.Find("li").EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		text := strings.TrimSpace(sel.Text())
		if utf8.RuneCountInString(text) > minSnippetRunes {
			sections = append(sections, "- "+text)
			count++
		}
		return count < maxListItems
	})

	count = 0
	doc.Find("h3").EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		text := strings.TrimSpace(sel.Text())
		if utf8.RuneCountInString(text) > 5 {
			sections = append(sections, "## "+text)
			count++
		}
		return count < maxSubheadings
	})

	if main := doc.Find("main, article, .body-block").First(); main.Length() > 0 {
		text := strings.Join(strings.Fields(main.Text()), " ")
		if utf8.RuneCountInString(text) > minSnippetRunes {
			sections = append(sections, truncateRunes(text, maxDigestRunes))
		}
	}

	digest := strings.Join(sections, "\n\n")
	if utf8.RuneCountInString(digest) < minDigestRunes {
		return PlaceholderContent
	}
	return truncateRunes(digest, maxDigestRunes)
}

func truncateRunes(s string, max int) string {
	if utf8.RuneCountInString(s) <= max {
		return s
	}
	runes := []rune(s)
	return string(runes[:max])
}
