package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/bessnews/rss-digest/app/cfg"
)

type Handler struct {
	store *Store
}

func NewHandler(store *Store) *Handler {
	return &Handler{store: store}
}

// GetNews serves the items document of the latest run.
func (h *Handler) GetNews(c *gin.Context) {
	result := h.store.Get()
	if result == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "no aggregation run completed yet"})
		return
	}

	c.JSON(http.StatusOK, result.Items)
}

// GetMeta serves the run summary document of the latest run.
func (h *Handler) GetMeta(c *gin.Context) {
	result := h.store.Get()
	if result == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "no aggregation run completed yet"})
		return
	}

	c.JSON(http.StatusOK, result.Meta)
}

func (h *Handler) GetHealth(c *gin.Context) {
	health := gin.H{
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"version":   cfg.Get().Version,
	}

	if result := h.store.Get(); result != nil {
		health["last_run"] = h.store.UpdatedAt().Format(time.RFC3339)
		health["items"] = len(result.Items)
	}

	c.JSON(http.StatusOK, health)
}
