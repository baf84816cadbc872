package feed

import (
	"fmt"
	"net/http"
	"time"

	"github.com/mmcdole/gofeed"
)

// Entry is one item from an RSS/Atom feed. Published is nil when the feed
// omits the date or it cannot be parsed.
type Entry struct {
	Title     string
	Link      string
	Summary   string
	Published *time.Time
}

type Fetcher interface {
	Fetch(url string) ([]Entry, error)
}

type Client struct {
	httpClient *http.Client
}

func NewClient() *Client {
	return &Client{
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

func (c *Client) Fetch(url string) ([]Entry, error) {
	fp := gofeed.NewParser()
	fp.Client = c.httpClient

	parsed, err := fp.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("feed fetch: %w", err)
	}

	entries := make([]Entry, 0, len(parsed.Items))
	for _, item := range parsed.Items {
		e := Entry{
			Title:   item.Title,
			Link:    item.Link,
			Summary: item.Description,
		}

		if item.PublishedParsed != nil {
			published := *item.PublishedParsed
			e.Published = &published
		}

		entries = append(entries, e)
	}

	return entries, nil
}
