package model

import "time"

const (
	CategoryGoogleNews = "External-GoogleNews"
	CategoryTwitter    = "Social-X"

	// Consumers filter by prefix so new providers need no schema change.
	CategoryPrefixExternal = "External"
	CategoryPrefixSocial   = "Social"

	PlaceholderContent = "No summary available."
)

type Article struct {
	ID              int64
	Title           string
	SourceURL       string
	PublicationDate time.Time
	Content         string
	SourceCategory  string
	CreatedAt       time.Time
}
