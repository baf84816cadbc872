package collector

import (
	"errors"
	"strings"
	"testing"
	"time"

	"regnews/internal/model"
	"regnews/internal/repository"
	"regnews/pkg/feed"

	"github.com/go-playground/assert/v2"
)

// fakeFetcher serves canned entries keyed by a URL substring and fails for
// URLs matching failOn.
type fakeFetcher struct {
	entries map[string][]feed.Entry
	failOn  string
	fetched []string
}

func (f *fakeFetcher) Fetch(url string) ([]feed.Entry, error) {
	f.fetched = append(f.fetched, url)

	if f.failOn != "" && strings.Contains(url, f.failOn) {
		return nil, errors.New("connection refused")
	}

	for key, entries := range f.entries {
		if strings.Contains(url, key) {
			return entries, nil
		}
	}
	return nil, nil
}

// fakeSaver records saved articles and reports Duplicate for URLs seen before.
type fakeSaver struct {
	saved  []model.Article
	seen   map[string]bool
	errOn  string
	nextID int64
}

func newFakeSaver() *fakeSaver {
	return &fakeSaver{seen: map[string]bool{}}
}

func (s *fakeSaver) Save(a *model.Article) (repository.InsertResult, error) {
	if s.errOn != "" && strings.Contains(a.SourceURL, s.errOn) {
		return 0, errors.New("insert failed")
	}

	if s.seen[a.SourceURL] {
		return repository.Duplicate, nil
	}

	s.seen[a.SourceURL] = true
	s.nextID++
	a.ID = s.nextID
	s.saved = append(s.saved, *a)
	return repository.Inserted, nil
}

func entryAt(title, link string, published time.Time) feed.Entry {
	return feed.Entry{Title: title, Link: link, Published: &published}
}

func TestGoogleNewsCollector_SavesEntries(t *testing.T) {
	now := time.Now()
	fetcher := &fakeFetcher{entries: map[string][]feed.Entry{
		"news.google.com": {
			entryAt("CBN policy update", "https://example.com/a", now),
			entryAt("SEC enforcement", "https://example.com/b", now),
		},
	}}
	saver := newFakeSaver()

	stats := NewGoogleNewsCollector(fetcher).Run(saver)

	// the same canned feed is served for all four queries, so repeats dedup
	assert.Equal(t, 2, stats.Saved)
	assert.Equal(t, 6, stats.Duplicated)
	assert.Equal(t, 0, stats.Errors)
	assert.Equal(t, 4, len(fetcher.fetched))
	assert.Equal(t, "External-GoogleNews", saver.saved[0].SourceCategory)
}

func TestGoogleNewsCollector_NoKeywordFilter(t *testing.T) {
	now := time.Now()
	fetcher := &fakeFetcher{entries: map[string][]feed.Entry{
		"news.google.com": {
			entryAt("Completely unrelated headline", "https://example.com/unrelated", now),
		},
	}}
	saver := newFakeSaver()

	stats := NewGoogleNewsCollector(fetcher).Run(saver)

	assert.Equal(t, 1, stats.Saved)
	assert.Equal(t, 0, stats.Filtered)
}

func TestGoogleNewsCollector_RejectsMissingLink(t *testing.T) {
	fetcher := &fakeFetcher{entries: map[string][]feed.Entry{
		"news.google.com": {{Title: "No link here"}},
	}}
	saver := newFakeSaver()

	stats := NewGoogleNewsCollector(fetcher).Run(saver)

	assert.Equal(t, 0, stats.Saved)
	assert.Equal(t, 4, stats.Filtered)
}

func TestNitterCollector_FiltersAndNormalizes(t *testing.T) {
	now := time.Now()
	fetcher := &fakeFetcher{entries: map[string][]feed.Entry{
		"/cenbank/rss": {
			entryAt("New circular on agent banking licensing", "https://nitter.net/cenbank/status/1", now),
			entryAt("Happy independence day to all Nigerians", "https://nitter.net/cenbank/status/2", now),
		},
	}}
	saver := newFakeSaver()

	stats := NewNitterCollector(fetcher, "https://nitter.net").Run(saver)

	assert.Equal(t, 1, stats.Saved)
	assert.Equal(t, 1, stats.Filtered)
	assert.Equal(t, 1, len(saver.saved))

	got := saver.saved[0]
	assert.Equal(t, "[cenbank] New circular on agent banking licensing...", got.Title)
	assert.Equal(t, "New circular on agent banking licensing", got.Content)
	assert.Equal(t, "Social-X", got.SourceCategory)
}

func TestNitterCollector_PerHandleIsolation(t *testing.T) {
	now := time.Now()
	fetcher := &fakeFetcher{
		failOn: "/cenbank/",
		entries: map[string][]feed.Entry{
			"/officialSECngr/rss": {
				entryAt("SEC issues enforcement directive", "https://nitter.net/officialSECngr/status/9", now),
			},
		},
	}
	saver := newFakeSaver()

	stats := NewNitterCollector(fetcher, "https://nitter.net").Run(saver)

	// cenbank fails, the remaining handles are still fetched
	assert.Equal(t, 1, stats.Errors)
	assert.Equal(t, 1, stats.Saved)
	assert.Equal(t, 4, len(fetcher.fetched))
}

func TestSaveArticle_StoreErrorCounted(t *testing.T) {
	now := time.Now()
	fetcher := &fakeFetcher{entries: map[string][]feed.Entry{
		"news.google.com": {
			entryAt("Bad row", "https://example.com/bad", now),
		},
	}}
	saver := newFakeSaver()
	saver.errOn = "/bad"

	stats := NewGoogleNewsCollector(fetcher).Run(saver)

	assert.Equal(t, 0, stats.Saved)
	assert.Equal(t, 4, stats.Errors)
}
