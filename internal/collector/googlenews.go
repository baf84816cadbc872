package collector

import (
	"log/slog"
	"net/url"
	"time"

	"regnews/internal/model"
	"regnews/pkg/feed"
)

// Search operators (AND, OR, NOT) maximize relevance and coverage; entries are
// not keyword-filtered because the query already selects regulatory news.
var defaultSearchQueries = []string{
	`"CBN" AND (policy OR circular OR licensing)`,
	`"SEC Nigeria" AND (enforcement OR fraud OR market)`,
	`("NDIC" OR "NAICOM" OR "FIRS") AND regulation`,
	`Nigeria banking fintech policy`,
}

type GoogleNewsCollector struct {
	fetcher feed.Fetcher
	queries []string
}

func NewGoogleNewsCollector(fetcher feed.Fetcher) *GoogleNewsCollector {
	return &GoogleNewsCollector{fetcher: fetcher, queries: defaultSearchQueries}
}

func (c *GoogleNewsCollector) Name() string {
	return "GoogleNews"
}

func (c *GoogleNewsCollector) Run(store ArticleSaver) Stats {
	var stats Stats

	for _, query := range c.queries {
		entries, err := c.fetcher.Fetch(searchFeedURL(query))
		if err != nil {
			slog.Error("error fetching search feed", "source", c.Name(), "query", query, "error", err)
			stats.Errors++
			continue
		}

		now := time.Now()
		for _, entry := range entries {
			article, ok := normalizeEntry(entry, model.CategoryGoogleNews, now)
			if !ok {
				stats.Filtered++
				continue
			}

			saveArticle(store, &article, c.Name(), &stats)
		}
	}

	return stats
}

// searchFeedURL builds a Google News RSS search URL for Nigeria/English,
// restricted to the trailing week.
func searchFeedURL(query string) string {
	params := url.Values{}
	params.Set("q", query+" when:7d")
	params.Set("hl", "en-NG")
	params.Set("gl", "NG")
	params.Set("ceid", "NG:en")
	return "https://news.google.com/rss/search?" + params.Encode()
}
