package collector

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"regnews/internal/model"
	"regnews/pkg/feed"
)

// Official accounts of the regulatory bodies, mirrored over Nitter RSS.
var defaultNitterHandles = []string{
	"cenbank",        // CBN
	"officialSECngr", // SEC Nigeria
	"NdicNigeria",    // NDIC
	"NAICOM_Nigeria", // NAICOM
}

type NitterCollector struct {
	fetcher feed.Fetcher
	baseURL string
	handles []string
}

func NewNitterCollector(fetcher feed.Fetcher, baseURL string) *NitterCollector {
	return &NitterCollector{
		fetcher: fetcher,
		baseURL: strings.TrimRight(baseURL, "/"),
		handles: defaultNitterHandles,
	}
}

func (c *NitterCollector) Name() string {
	return "Nitter"
}

func (c *NitterCollector) Run(store ArticleSaver) Stats {
	var stats Stats

	for _, handle := range c.handles {
		entries, err := c.fetcher.Fetch(fmt.Sprintf("%s/%s/rss", c.baseURL, handle))
		if err != nil {
			slog.Error("error fetching mirror feed", "source", c.Name(), "handle", handle, "error", err)
			stats.Errors++
			continue
		}

		now := time.Now()
		for _, entry := range entries {
			text := strings.TrimSpace(entry.Title)
			if !matchesRegulatoryKeywords(text) {
				stats.Filtered++
				continue
			}

			article, ok := normalizeEntry(entry, model.CategoryTwitter, now)
			if !ok {
				stats.Filtered++
				continue
			}

			article.Title = socialTitle(handle, text)
			article.Content = text

			saveArticle(store, &article, c.Name(), &stats)
		}
	}

	return stats
}
