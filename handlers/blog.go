package handlers

import (
	"context"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/zbjgrhr/personal-site/models"
)

type blogPostRequest struct {
	Title     string   `json:"title"`
	Content   string   `json:"content"`
	Slug      string   `json:"slug"`
	ImageUrls []string `json:"imageUrls"`
}

// ListBlogPosts serves the blog list, newest first. It never fails:
// storage errors degrade to an empty list.
func (h *Handler) ListBlogPosts(c *gin.Context) {
	posts := models.ParseBlogPosts(h.readRaw(c, models.BlogKey))
	models.SortBlogPosts(posts)
	c.JSON(http.StatusOK, gin.H{"posts": posts})
}

func (h *Handler) CreateBlogPost(c *gin.Context) {
	var req blogPostRequest
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

	raw, err := h.Store.Get(ctx, models.BlogKey)
	if err != nil {
		log.Printf("KV get error for %s: %v", models.BlogKey, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save"})
		return
	}
	posts := models.ParseBlogPosts(raw)

	post := models.BlogPost{
		ID:        models.NewPostID(),
		Slug:      models.ResolveSlug(req.Slug, title),
		Title:     title,
		Content:   req.Content,
		ImageUrls: nonNil(req.ImageUrls),
		CreatedAt: models.Now(),
	}
	posts = append([]models.BlogPost{post}, posts...)

	if err := h.saveJSON(ctx, models.BlogKey, posts); err != nil {
		log.Printf("KV set error for %s: %v", models.BlogKey, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"post": post})
}

func (h *Handler) UpdateBlogPost(c *gin.Context) {
	id := c.Query("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id required"})
		return
	}
	var req blogPostRequest
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

	raw, err := h.Store.Get(ctx, models.BlogKey)
	if err != nil {
		log.Printf("KV get error for %s: %v", models.BlogKey, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save"})
		return
	}
	posts := models.ParseBlogPosts(raw)

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

	// id and createdAt are immutable; everything else is replaced.
	posts[idx].Title = title
	posts[idx].Content = req.Content
	posts[idx].Slug = models.ResolveSlug(req.Slug, title)
	posts[idx].ImageUrls = nonNil(req.ImageUrls)

	if err := h.saveJSON(ctx, models.BlogKey, posts); err != nil {
		log.Printf("KV set error for %s: %v", models.BlogKey, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"post": posts[idx]})
}

// DeleteBlogPost removes a post by id. Deleting an id that is already
// gone is not an error.
func (h *Handler) DeleteBlogPost(c *gin.Context) {
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

	raw, err := h.Store.Get(ctx, models.BlogKey)
	if err != nil {
		log.Printf("KV get error for %s: %v", models.BlogKey, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete"})
		return
	}
	posts := models.ParseBlogPosts(raw)

	kept := posts[:0]
	for _, p := range posts {
		if p.ID != id {
			kept = append(kept, p)
		}
	}

	if err := h.saveJSON(ctx, models.BlogKey, kept); err != nil {
		log.Printf("KV set error for %s: %v", models.BlogKey, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}
