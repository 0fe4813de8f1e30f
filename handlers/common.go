package handlers

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/zbjgrhr/personal-site/auth"
	"github.com/zbjgrhr/personal-site/config"
	"github.com/zbjgrhr/personal-site/database"
)

// Handler carries the content store and configuration into the route
// handlers. Store may be nil when MONGODB_URI is unset; read paths then
// serve empty content and write paths answer 503.
type Handler struct {
	Store database.KV
	Cfg   config.Config
}

func New(store database.KV, cfg config.Config) *Handler {
	return &Handler{Store: store, Cfg: cfg}
}

const kvTimeout = 10 * time.Second

func (h *Handler) isAdmin(c *gin.Context) bool {
	token, err := c.Cookie(auth.CookieName)
	if err != nil {
		return false
	}
	return auth.VerifyToken(token, auth.SessionToken(h.Cfg.AdminSecret))
}

// storageReady rejects a mutation when no content store is configured.
func (h *Handler) storageReady(c *gin.Context) bool {
	if h.Store == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"error": "Storage is not configured. Set MONGODB_URI.",
		})
		return false
	}
	return true
}

// readRaw fetches a stored value for a read path. Failures degrade to
// absent so pages and public lists render as "no content".
func (h *Handler) readRaw(c *gin.Context, key string) json.RawMessage {
	if h.Store == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(c.Request.Context(), kvTimeout)
	defer cancel()

	raw, err := h.Store.Get(ctx, key)
	if err != nil {
		log.Printf("KV get error for %s: %v", key, err)
		return nil
	}
	return raw
}

// saveJSON marshals and persists a whole value under a key.
func (h *Handler) saveJSON(ctx context.Context, key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return h.Store.Set(ctx, key, raw)
}

func nonNil(urls []string) []string {
	if urls == nil {
		return []string{}
	}
	return urls
}
