package handlers

import (
	"context"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/zbjgrhr/personal-site/models"
)

type musicPostRequest struct {
	Title     string   `json:"title"`
	Content   string   `json:"content"`
	Slug      string   `json:"slug"`
	ImageUrls []string `json:"imageUrls"`
	VideoUrls []string `json:"videoUrls"`
	Tag       string   `json:"tag"`
}

func (h *Handler) ListMusicPosts(c *gin.Context) {
	posts := models.ParseMusicPosts(h.readRaw(c, models.MusicKey))
	models.SortMusicPosts(posts)
	c.JSON(http.StatusOK, gin.H{"posts": posts})
}

func (h *Handler) CreateMusicPost(c *gin.Context) {
	var req musicPostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	title := strings.TrimSpace(req.Title)
	if title == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Title required"})
		return
	}
	if !h.storageReady(c) {
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), kvTimeout)
	defer cancel()

	raw, err := h.Store.Get(ctx, models.MusicKey)
	if err != nil {
		log.Printf("KV get error for %s: %v", models.MusicKey, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save"})
		return
	}
	posts := models.ParseMusicPosts(raw)

	post := models.MusicPost{
		ID:        models.NewPostID(),
		Slug:      models.ResolveSlug(req.Slug, title),
		Title:     title,
		Content:   req.Content,
		ImageUrls: nonNil(req.ImageUrls),
		VideoUrls: nonNil(req.VideoUrls),
		Tag:       models.NormalizeTag(req.Tag),
		CreatedAt: models.Now(),
	}
	posts = append([]models.MusicPost{post}, posts...)

	if err := h.saveJSON(ctx, models.MusicKey, posts); err != nil {
		log.Printf("KV set error for %s: %v", models.MusicKey, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"post": post})
}

func (h *Handler) UpdateMusicPost(c *gin.Context) {
	id := c.Query("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id required"})
		return
	}
	var req musicPostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	title := strings.TrimSpace(req.Title)
	if title == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Title required"})
		return
	}
	if !h.storageReady(c) {
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), kvTimeout)
	defer cancel()

	raw, err := h.Store.Get(ctx, models.MusicKey)
	if err != nil {
		log.Printf("KV get error for %s: %v", models.MusicKey, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save"})
		return
	}
	posts := models.ParseMusicPosts(raw)

	idx := -1
	for i := range posts {
		if posts[i].ID == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
		return
	}

	posts[idx].Title = title
	posts[idx].Content = req.Content
	posts[idx].Slug = models.ResolveSlug(req.Slug, title)
	posts[idx].ImageUrls = nonNil(req.ImageUrls)
	posts[idx].VideoUrls = nonNil(req.VideoUrls)
	posts[idx].Tag = models.NormalizeTag(req.Tag)

	if err := h.saveJSON(ctx, models.MusicKey, posts); err != nil {
		log.Printf("KV set error for %s: %v", models.MusicKey, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"post": posts[idx]})
}

func (h *Handler) DeleteMusicPost(c *gin.Context) {
	id := c.Query("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id required"})
		return
	}
	if !h.storageReady(c) {
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), kvTimeout)
	defer cancel()

	raw, err := h.Store.Get(ctx, models.MusicKey)
	if err != nil {
		log.Printf("KV get error for %s: %v", models.MusicKey, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete"})
		return
	}
	posts := models.ParseMusicPosts(raw)

	kept := posts[:0]
	for _, p := range posts {
		if p.ID != id {
			kept = append(kept, p)
		}
	}

	if err := h.saveJSON(ctx, models.MusicKey, kept); err != nil {
		log.Printf("KV set error for %s: %v", models.MusicKey, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}
