package collector

import (
	"fmt"
	"regexp"
	"time"

	"regnews/internal/model"
	"regnews/pkg/feed"
)

// Social post text must mention at least one of these to be stored.
var regulatoryKeywords = regexp.MustCompile(`(?i)(circular|policy|regulation|fintech|licensing|enforcement|fraud|tax|directive)`)

const socialTitleMax = 100

func matchesRegulatoryKeywords(text string) bool {
	return regulatoryKeywords.MatchString(text)
}

// normalizeEntry maps a raw feed entry to a canonical article. An entry without
// a link cannot be deduplicated and is rejected. A missing publication date
// falls back to the collection time, a missing summary to the placeholder.
func normalizeEntry(entry feed.Entry, category string, now time.Time) (model.Article, bool) {
	if entry.Link == "" {
		return model.Article{}, false
	}

	published := now
	if entry.Published != nil {
		published = *entry.Published
	}

	content := entry.Summary
	if content == "" {
		content = model.PlaceholderContent
	}

	return model.Article{
		Title:           entry.Title,
		SourceURL:       entry.Link,
		PublicationDate: published,
		Content:         content,
		SourceCategory:  category,
	}, true
}

// socialTitle builds a display title from a post: originating handle in
// brackets, then the first 100 characters of the text and an ellipsis.
func socialTitle(handle, text string) string {
	runes := []rune(text)
	if len(runes) > socialTitleMax {
		runes = runes[:socialTitleMax]
	}
	return fmt.Sprintf("[%s] %s...", handle, string(runes))
}
