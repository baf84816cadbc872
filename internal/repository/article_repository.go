package repository

import (
	"database/sql"
	"fmt"
	"time"

	"regnews/internal/model"
)

// InsertResult is the outcome of a Save call. A duplicate URL is a normal
// outcome, not an error; errors are reported separately.
type InsertResult int

const (
	Inserted InsertResult = iota + 1
	Duplicate
)

type ArticleRepository struct {
	db *sql.DB
}

func NewArticleRepository(db *sql.DB) *ArticleRepository {
	return &ArticleRepository{db: db}
}

// EnsureSchema creates the article table if it does not exist. Safe to call on
// every connection open.
func (r *ArticleRepository) EnsureSchema() error {
	_, err := r.db.Exec(`
		CREATE TABLE IF NOT EXISTS news_article (
			id SERIAL PRIMARY KEY,
			title TEXT NOT NULL,
			source_url TEXT UNIQUE NOT NULL,
			publication_date TIMESTAMP,
			content TEXT,
			source_category TEXT NOT NULL,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)
	`)
	return err
}

// Save inserts the article unless its source_url already exists. The insert and
// the uniqueness check are a single statement, so it holds under concurrent
// writers. On success the generated id is written back to the article.
func (r *ArticleRepository) Save(article *model.Article) (InsertResult, error) {
	var id int64
	err := r.db.QueryRow(`
		INSERT INTO news_article(title, source_url, publication_date, content, source_category)
		VALUES($1, $2, $3, $4, $5)
		ON CONFLICT (source_url) DO NOTHING
		RETURNING id
	`, article.Title, article.SourceURL, article.PublicationDate, article.Content, article.SourceCategory).Scan(&id)

	if err == sql.ErrNoRows {
		return Duplicate, nil
	}

	if err != nil {
		return 0, err
	}

	article.ID = id
	return Inserted, nil
}

// FetchLatest returns up to limit articles ordered by publication_date
// descending, NULLs last. When categoryPrefix is non-empty only articles whose
// source_category starts with it are returned.
func (r *ArticleRepository) FetchLatest(limit int, categoryPrefix string) ([]model.Article, error) {
	query := `
		SELECT id, title, source_url, publication_date, content, source_category, created_at
		FROM news_article
	`
	args := []interface{}{}

	if categoryPrefix != "" {
		query += ` WHERE source_category LIKE $1 || '%'`
		args = append(args, categoryPrefix)
	}

	query += fmt.Sprintf(` ORDER BY publication_date DESC NULLS LAST LIMIT $%d`, len(args)+1)
	args = append(args, limit)

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanArticles(rows)
}

// FetchSince returns articles with publication_date at or after cutoff, newest
// first, capped at limit. Rows with a NULL publication_date never fall inside a
// window.
func (r *ArticleRepository) FetchSince(cutoff time.Time, limit int) ([]model.Article, error) {
	rows, err := r.db.Query(`
		SELECT id, title, source_url, publication_date, content, source_category, created_at
		FROM news_article
		WHERE publication_date >= $1
		ORDER BY publication_date DESC
		LIMIT $2
	`, cutoff, limit)

	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanArticles(rows)
}

func scanArticles(rows *sql.Rows) ([]model.Article, error) {
	var articles []model.Article
	for rows.Next() {
		var a model.Article
		var pubDate sql.NullTime
		var content sql.NullString

		err := rows.Scan(&a.ID, &a.Title, &a.SourceURL, &pubDate, &content, &a.SourceCategory, &a.CreatedAt)
		if err != nil {
			return nil, err
		}

		if pubDate.Valid {
			a.PublicationDate = pubDate.Time
		}
		if content.Valid {
			a.Content = content.String
		}

		articles = append(articles, a)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return articles, nil
}
