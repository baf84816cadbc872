package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
)

// TriggerHandler exposes the collection run to an external scheduler. The
// caller authenticates with a shared secret, passed either as the token query
// parameter or the X-Cron-Token header.
type TriggerHandler struct {
	secret string
	run    func() error
}

func NewTriggerHandler(secret string, run func() error) *TriggerHandler {
	if secret == "" {
		slog.Warn("CRON_SECRET_TOKEN is not set, trigger endpoints will reject all requests")
	}
	return &TriggerHandler{secret: secret, run: run}
}

// RunCollectors dispatches the run in the background and acknowledges
// immediately, so slow feeds cannot time out the scheduler's request.
func (h *TriggerHandler) RunCollectors(c *gin.Context) {
	if !h.authorized(c) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized: invalid or missing authentication token"})
		return
	}

	go func() {
		if err := h.run(); err != nil {
			slog.Error("background collection run failed", "error", err)
		}
	}()

	c.JSON(http.StatusOK, gin.H{
		"status":  "started",
		"message": "News collection run started in background",
	})
}

// RunCollectorsSync blocks until the run completes and reports its terminal
// status.
func (h *TriggerHandler) RunCollectorsSync(c *gin.Context) {
	if !h.authorized(c) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized: invalid or missing authentication token"})
		return
	}

	if err := h.run(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "News collection run failed",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "News collection run completed successfully",
	})
}

func (h *TriggerHandler) authorized(c *gin.Context) bool {
	token := c.Query("token")
	if token == "" {
		token = c.GetHeader("X-Cron-Token")
	}
	return h.secret != "" && token == h.secret
}
