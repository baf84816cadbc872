package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"regnews/internal/model"

	"github.com/gin-gonic/gin"
)

type NewsStore interface {
	FetchLatest(limit int, categoryPrefix string) ([]model.Article, error)
}

type NewsHandler struct {
	repository NewsStore
}

func NewNewsHandler(repository NewsStore) *NewsHandler {
	return &NewsHandler{repository: repository}
}

func (h *NewsHandler) GetLatestNews(c *gin.Context) {
	h.respondLatest(c, "")
}

func (h *NewsHandler) GetSocialNews(c *gin.Context) {
	h.respondLatest(c, model.CategoryPrefixSocial)
}

func (h *NewsHandler) GetExternalNews(c *gin.Context) {
	h.respondLatest(c, model.CategoryPrefixExternal)
}

func (h *NewsHandler) respondLatest(c *gin.Context, categoryPrefix string) {
	limit := getQueryLimit(c)

	articles, err := h.repository.FetchLatest(limit, categoryPrefix)
	if err != nil {
		slog.Error("error fetching news", "category_prefix", categoryPrefix, "error", err)
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Database service unavailable"})
		return
	}

	res := make([]NewsArticleResponse, 0, len(articles))
	for _, a := range articles {
		res = append(res, toArticleResponse(a))
	}

	c.JSON(http.StatusOK, res)
}

func (h *NewsHandler) GetHealth(c *gin.Context) {
	_, err := h.repository.FetchLatest(1, "")
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":   "unhealthy",
			"database": "disconnected",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":   "healthy",
		"database": "connected",
	})
}

func getQueryLimit(c *gin.Context) int {
	const (
		defaultLimit = 20
		maxLimit     = 100
	)

	paramLimit := c.Query("limit")
	if paramLimit == "" {
		return defaultLimit
	}

	limit, err := strconv.Atoi(paramLimit)
	if err != nil || limit < 1 {
		slog.Warn("invalid query parameter, using default", "param", "limit", "value", paramLimit, "default", defaultLimit)
		return defaultLimit
	}

	if limit > maxLimit {
		slog.Warn("query parameter exceeds max, clamping", "param", "limit", "value", limit, "max", maxLimit)
		return maxLimit
	}

	return limit
}
