package collector

import (
	"log/slog"

	"regnews/internal/model"
	"regnews/internal/repository"
)

type ArticleSaver interface {
	Save(*model.Article) (repository.InsertResult, error)
}

// Source is one configured feed group (all search queries, or all mirror
// handles). Run never returns an error: failures are contained per item and
// reflected in the counters.
type Source interface {
	Name() string
	Run(store ArticleSaver) Stats
}

type Stats struct {
	Saved      int
	Duplicated int
	Filtered   int
	Errors     int
}

func saveArticle(store ArticleSaver, article *model.Article, source string, stats *Stats) {
	result, err := store.Save(article)
	if err != nil {
		slog.Error("error saving article", "source", source, "url", article.SourceURL, "error", err)
		stats.Errors++
		return
	}

	if result == repository.Duplicate {
		slog.Info("duplicate article skipped", "source", source, "url", article.SourceURL)
		stats.Duplicated++
		return
	}

	stats.Saved++
}
