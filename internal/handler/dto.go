package handler

import (
	"time"

	"regnews/internal/model"
)

type NewsArticleResponse struct {
	ID              int64  `json:"id"`
	Title           string `json:"title"`
	SourceURL       string `json:"source_url"`
	PublicationDate string `json:"publication_date"`
	Content         string `json:"content"`
	SourceCategory  string `json:"source_category"`
	CreatedAt       string `json:"created_at"`
}

func toArticleResponse(a model.Article) NewsArticleResponse {
	return NewsArticleResponse{
		ID:              a.ID,
		Title:           a.Title,
		SourceURL:       a.SourceURL,
		PublicationDate: formatTime(a.PublicationDate),
		Content:         a.Content,
		SourceCategory:  a.SourceCategory,
		CreatedAt:       formatTime(a.CreatedAt),
	}
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(time.RFC3339)
}
