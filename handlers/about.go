package handlers

import (
	"context"
	"encoding/json"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/zbjgrhr/personal-site/models"
)

type aboutPhotoRequest struct {
	URL string `json:"url"`
}

// aboutPhotoURL reads the stored about photo, nil when absent, unset,
// or unreadable.
func (h *Handler) aboutPhotoURL(c *gin.Context) *string {
	raw := h.readRaw(c, models.AboutPhotoKey)
	if len(raw) == 0 {
		return nil
	}
	var url string
	if err := json.Unmarshal(raw, &url); err != nil || url == "" {
		return nil
	}
	return &url
}

func (h *Handler) GetAboutPhoto(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"url": h.aboutPhotoURL(c)})
}

// SetAboutPhoto stores the photo URL; an empty url clears it.
func (h *Handler) SetAboutPhoto(c *gin.Context) {
	var req aboutPhotoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !h.storageReady(c) {
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), kvTimeout)
	defer cancel()

	value := json.RawMessage("null")
	if req.URL != "" {
		raw, err := json.Marshal(req.URL)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid url"})
			return
		}
		value = raw
	}

	if err := h.Store.Set(ctx, models.AboutPhotoKey, value); err != nil {
		log.Printf("KV set error for %s: %v", models.AboutPhotoKey, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}
