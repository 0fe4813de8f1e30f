package handlers

import (
	"context"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/zbjgrhr/personal-site/models"
)

type workPostRequest struct {
	Title     string   `json:"title"`
	Content   string   `json:"content"`
	Slug      string   `json:"slug"`
	ImageUrls []string `json:"imageUrls"`
	VideoUrls []string `json:"videoUrls"`
	AudioUrls []string `json:"audioUrls"`
	PdfUrls   []string `json:"pdfUrls"`
	ZipUrls   []string `json:"zipUrls"`
}

func (h *Handler) ListWorkPosts(c *gin.Context) {
	posts := models.ParseWorkPosts(h.readRaw(c, models.WorkKey))
	models.SortWorkPosts(posts)
	c.JSON(http.StatusOK, gin.H{"posts": posts})
}

func (h *Handler) CreateWorkPost(c *gin.Context) {
	var req workPostRequest
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

	raw, err := h.Store.Get(ctx, models.WorkKey)
	if err != nil {
		log.Printf("KV get error for %s: %v", models.WorkKey, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save"})
		return
	}
	posts := models.ParseWorkPosts(raw)

	post := models.WorkPost{
		ID:        models.NewPostID(),
		Slug:      models.ResolveSlug(req.Slug, title),
		Title:     title,
		Content:   req.Content,
		ImageUrls: nonNil(req.ImageUrls),
		VideoUrls: nonNil(req.VideoUrls),
		AudioUrls: nonNil(req.AudioUrls),
		PdfUrls:   nonNil(req.PdfUrls),
		ZipUrls:   nonNil(req.ZipUrls),
		CreatedAt: models.Now(),
	}
	posts = append([]models.WorkPost{post}, posts...)

	if err := h.saveJSON(ctx, models.WorkKey, posts); err != nil {
		log.Printf("KV set error for %s: %v", models.WorkKey, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"post": post})
}

func (h *Handler) UpdateWorkPost(c *gin.Context) {
	id := c.Query("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id required"})
		return
	}
	var req workPostRequest
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

	raw, err := h.Store.Get(ctx, models.WorkKey)
	if err != nil {
		log.Printf("KV get error for %s: %v", models.WorkKey, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save"})
		return
	}
	posts := models.ParseWorkPosts(raw)

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
	posts[idx].AudioUrls = nonNil(req.AudioUrls)
	posts[idx].PdfUrls = nonNil(req.PdfUrls)
	posts[idx].ZipUrls = nonNil(req.ZipUrls)

	if err := h.saveJSON(ctx, models.WorkKey, posts); err != nil {
		log.Printf("KV set error for %s: %v", models.WorkKey, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"post": posts[idx]})
}

func (h *Handler) DeleteWorkPost(c *gin.Context) {
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

	raw, err := h.Store.Get(ctx, models.WorkKey)
	if err != nil {
		log.Printf("KV get error for %s: %v", models.WorkKey, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete"})
		return
	}
	posts := models.ParseWorkPosts(raw)

	kept := posts[:0]
	for _, p := range posts {
		if p.ID != id {
			kept = append(kept, p)
		}
	}

	if err := h.saveJSON(ctx, models.WorkKey, kept); err != nil {
		log.Printf("KV set error for %s: %v", models.WorkKey, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}
