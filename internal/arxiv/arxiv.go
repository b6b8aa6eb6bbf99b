// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package arxiv queries the arXiv Atom API for papers submitted inside a
// publication window.
package arxiv

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/mmcdole/gofeed"
	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"

	"github.com/pdiddy/arxiv-weekly/internal/httputil"
	"github.com/pdiddy/arxiv-weekly/pkg/types"
)

// apiBase is the arXiv search endpoint. Declared as a var so tests can
// substitute an httptest server.
var apiBase = "https://export.arxiv.org/api/query"

// submittedLayout is the timestamp layout arXiv accepts in submittedDate
// ranges.
const submittedLayout = "200601021504"

const (
	defaultMaxResults      = 400
	defaultPageSize        = 100
	defaultRequestInterval = 3 * time.Second
	defaultUserAgent       = "arxiv-weekly/0.1"
)

// Client fetches papers from the arXiv API. A Client paces its own requests
// and is not meant to be shared between goroutines.
type Client struct {
	HTTP *http.Client

	cfg     types.FetchConfig
	limiter *rate.Limiter
	parser  *gofeed.Parser
	log     logrus.FieldLogger
}

// NewClient returns a Client with zero-valued settings in cfg replaced by
// defaults.
func NewClient(cfg types.FetchConfig, log logrus.FieldLogger) *Client {
	if cfg.MaxResults <= 0 {
		cfg.MaxResults = defaultMaxResults
	}
	if cfg.PageSize <= 0 {
		cfg.PageSize = defaultPageSize
	}
	if cfg.RequestInterval <= 0 {
		cfg.RequestInterval = defaultRequestInterval
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = defaultUserAgent
	}
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Client{
		HTTP:    &http.Client{Timeout: cfg.Timeout},
		cfg:     cfg,
		limiter: rate.NewLimiter(rate.Every(cfg.RequestInterval), 1),
		parser:  gofeed.NewParser(),
		log:     log,
	}
}

// Fetch returns up to req.MaxResults papers matching req.Keyword that were
// submitted inside req.Window, paging through the API as needed.
func (c *Client) Fetch(ctx context.Context, req types.FetchRequest) ([]types.Paper, error) {
	if !req.Window.Valid() {
		return nil, fmt.Errorf("invalid window %s", req.Window)
	}
	keyword := strings.TrimSpace(req.Keyword)
	if keyword == "" {
		return nil, fmt.Errorf("empty search keyword")
	}

	max := req.MaxResults
	if max <= 0 {
		max = c.cfg.MaxResults
	}

	query := BuildQuery(keyword, req.Window)
	log := c.log.WithFields(logrus.Fields{"keyword": keyword, "window": req.Window.String()})
	log.Info("searching arXiv")

	var papers []types.Paper
	seen := make(map[string]bool)
	dups := 0
	for start := 0; len(papers) < max; {
		size := c.cfg.PageSize
		if remaining := max - len(papers); remaining < size {
			size = remaining
		}

		page, total, err := c.fetchPage(ctx, query, req.Sort, start, size)
		if err != nil {
			return nil, err
		}
		log.WithFields(logrus.Fields{"start": start, "got": len(page), "total": total}).Debug("fetched page")

		for _, p := range page {
			if len(papers) == max {
				break
			}
			key := dedupKey(p)
			if seen[key] {
				dups++
				continue
			}
			seen[key] = true
			papers = append(papers, p)
		}
		start += len(page)
		if len(page) < size || (total >= 0 && start >= total) {
			break
		}
	}

	log.WithFields(logrus.Fields{"papers": len(papers), "duplicates": dups}).Info("search complete")
	return papers, nil
}

// fetchPage requests one page and returns its papers and the total hit
// count reported by the feed (-1 when absent).
func (c *Client) fetchPage(ctx context.Context, query string, sort types.SortOrder, start, size int) ([]types.Paper, int, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, 0, err
	}

	params := url.Values{}
	params.Set("search_query", query)
	params.Set("start", strconv.Itoa(start))
	params.Set("max_results", strconv.Itoa(size))
	params.Set("sortBy", sortParam(sort))
	params.Set("sortOrder", "descending")

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, apiBase+"?"+params.Encode(), nil)
	if err != nil {
		return nil, 0, fmt.Errorf("creating request: %w", err)
	}
	httpReq.Header.Set("User-Agent", c.cfg.UserAgent)

	resp, err := httputil.DoWithRetry(ctx, c.HTTP, httpReq, c.cfg.MaxRetries, c.log)
	if err != nil {
		return nil, 0, fmt.Errorf("arXiv API request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, 0, fmt.Errorf("arXiv API returned HTTP %d", resp.StatusCode)
	}

	feed, err := c.parser.Parse(resp.Body)
	if err != nil {
		return nil, 0, fmt.Errorf("parsing arXiv response: %w", err)
	}

	papers := make([]types.Paper, 0, len(feed.Items))
	for _, item := range feed.Items {
		papers = append(papers, toPaper(item))
	}
	return papers, totalResults(feed), nil
}

// BuildQuery returns the search_query expression for keyword restricted to
// submissions inside w.
func BuildQuery(keyword string, w types.Window) string {
	return fmt.Sprintf("all:%s AND submittedDate:[%s TO %s]",
		keyword,
		w.Start.UTC().Format(submittedLayout),
		w.End.UTC().Format(submittedLayout))
}

func sortParam(s types.SortOrder) string {
	switch s {
	case types.SortRelevance:
		return "relevance"
	case types.SortLastUpdated:
		return "lastUpdatedDate"
	default:
		return "submittedDate"
	}
}

func toPaper(item *gofeed.Item) types.Paper {
	p := types.Paper{
		Title:   collapse(item.Title),
		Summary: collapse(item.Description),
		URL:     strings.TrimSpace(item.GUID),
	}
	if p.URL == "" {
		p.URL = strings.TrimSpace(item.Link)
	}

	for _, a := range item.Authors {
		if a == nil {
			continue
		}
		if name := collapse(a.Name); name != "" {
			p.Authors = append(p.Authors, name)
		}
	}

	if item.PublishedParsed != nil {
		p.Published = item.PublishedParsed.UTC()
	} else if t, err := time.Parse(time.RFC3339, item.Published); err == nil {
		p.Published = t.UTC()
	}

	if exts, ok := item.Extensions["arxiv"]; ok {
		if pc := exts["primary_category"]; len(pc) > 0 {
			p.PrimaryCategory = pc[0].Attrs["term"]
		}
	}
	if p.PrimaryCategory == "" && len(item.Categories) > 0 {
		p.PrimaryCategory = item.Categories[0]
	}
	return p
}

func totalResults(feed *gofeed.Feed) int {
	exts, ok := feed.Extensions["opensearch"]
	if !ok {
		return -1
	}
	tr := exts["totalResults"]
	if len(tr) == 0 {
		return -1
	}
	n, err := strconv.Atoi(strings.TrimSpace(tr[0].Value))
	if err != nil {
		return -1
	}
	return n
}

// dedupKey identifies a paper across pages. Consecutive pages can overlap
// when new submissions shift the result offsets mid-query.
func dedupKey(p types.Paper) string {
	if id := p.ID(); id != "" {
		return "id:" + id
	}
	return "title:" + strings.ToLower(p.Title)
}

func collapse(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
