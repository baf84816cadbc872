package collector

import (
	"fmt"
	"log/slog"
	"time"

	"regnews/db"
	"regnews/internal/config"
	"regnews/internal/digest"
	"regnews/internal/model"
	"regnews/internal/repository"
	"regnews/pkg/feed"
)

type Store interface {
	ArticleSaver
	FetchSince(cutoff time.Time, limit int) ([]model.Article, error)
}

// Runner executes one collection cycle: every source in order, then digest
// selection and delivery. Nothing a source or the mailer does can abort the
// cycle.
type Runner struct {
	store      Store
	sources    []Source
	mailer     digest.Mailer
	windowDays int
	limit      int
}

func NewRunner(store Store, sources []Source, mailer digest.Mailer, windowDays, limit int) *Runner {
	return &Runner{
		store:      store,
		sources:    sources,
		mailer:     mailer,
		windowDays: windowDays,
		limit:      limit,
	}
}

func (r *Runner) Run() {
	start := time.Now()
	slog.Info("collection run starting")

	for _, source := range r.sources {
		stats := source.Run(r.store)
		slog.Info("collection complete", "source", source.Name(),
			"saved", stats.Saved, "duplicated", stats.Duplicated,
			"filtered", stats.Filtered, "errors", stats.Errors)
	}

	r.sendDigest()

	slog.Info("collection run finished", "duration", time.Since(start).String())
}

func (r *Runner) sendDigest() {
	cutoff := time.Now().AddDate(0, 0, -r.windowDays)

	articles, err := r.store.FetchSince(cutoff, r.limit)
	if err != nil {
		slog.Error("error fetching digest window", "error", err)
		return
	}

	if len(articles) == 0 {
		slog.Info("no articles in digest window, skipping delivery")
		return
	}

	if r.mailer == nil {
		slog.Warn("mail transport not configured, skipping delivery", "articles", len(articles))
		return
	}

	subject := fmt.Sprintf("Regulatory News Digest for %s", time.Now().Format("2006-01-02"))
	if err := r.mailer.Send(subject, digest.Format(articles)); err != nil {
		slog.Error("error sending digest", "error", err)
		return
	}

	slog.Info("digest sent", "articles", len(articles))
}

// RunAll opens a store connection, runs every collector against it and sends
// the digest. The connection is released however far the run gets; only a
// connect failure skips collection entirely.
func RunAll(cfg *config.Config) error {
	conn, err := db.Connect(cfg.DatabaseURL)
	if err != nil {
		slog.Error("error connecting to DB, skipping collection run", "error", err)
		return err
	}
	defer conn.Close()

	repo := repository.NewArticleRepository(conn)
	if err := repo.EnsureSchema(); err != nil {
		slog.Error("error ensuring schema", "error", err)
		return err
	}

	fetcher := feed.NewClient()
	sources := []Source{
		NewGoogleNewsCollector(fetcher),
		NewNitterCollector(fetcher, cfg.NitterBaseURL),
	}

	var mailer digest.Mailer
	if cfg.MailConfigured() {
		mailer = digest.NewSendGridMailer(cfg.SendGridAPIKey, cfg.SenderEmail, cfg.RecipientEmail)
	} else {
		slog.Warn("missing SendGrid configuration, digest delivery disabled")
	}

	NewRunner(repo, sources, mailer, cfg.DigestWindowDays, cfg.DigestLimit).Run()
	return nil
}
