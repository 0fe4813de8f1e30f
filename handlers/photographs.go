package handlers

import (
	"fmt"
	"net/http"
	"sort"

	"github.com/gin-gonic/gin"

	"github.com/zbjgrhr/personal-site/models"
)

// mediaItem is one gallery entry. Link points back at the page the
// media came from.
type mediaItem struct {
	ID        string
	Type      string // "image" or "video"
	URL       string
	Source    string
	CreatedAt string
	Title     string
	Link      string
}

// Photographs aggregates images and videos from blog posts, music
// posts, and the about photo into one gallery, newest first. The about
// photo carries no timestamp of its own, so it is stamped with the
// current time and sorts to the top.
func (h *Handler) Photographs(c *gin.Context) {
	items := []mediaItem{}

	for _, p := range h.blogPosts(c) {
		for i, url := range p.ImageUrls {
			items = append(items, mediaItem{
				ID:        fmt.Sprintf("blog-%s-%d", p.ID, i),
				Type:      "image",
				URL:       url,
				Source:    "Blog",
				CreatedAt: p.CreatedAt,
				Title:     p.Title,
				Link:      "/blog/" + p.Slug,
			})
		}
	}

	for _, p := range h.musicPosts(c) {
		for i, url := range p.ImageUrls {
			items = append(items, mediaItem{
				ID:        fmt.Sprintf("music-%s-img-%d", p.ID, i),
				Type:      "image",
				URL:       url,
				Source:    "Music",
				CreatedAt: p.CreatedAt,
				Title:     p.Title,
				Link:      "/music/" + p.Slug,
			})
		}
		for i, url := range p.VideoUrls {
			items = append(items, mediaItem{
				ID:        fmt.Sprintf("music-%s-vid-%d", p.ID, i),
				Type:      "video",
				URL:       url,
				Source:    "Music",
				CreatedAt: p.CreatedAt,
				Title:     p.Title,
				Link:      "/music/" + p.Slug,
			})
		}
	}

	if url := h.aboutPhotoURL(c); url != nil {
		items = append(items, mediaItem{
			ID:        "about-photo",
			Type:      "image",
			URL:       *url,
			Source:    "About",
			CreatedAt: models.Now(),
			Title:     "About",
			Link:      "/about",
		})
	}

	sort.SliceStable(items, func(i, j int) bool { return items[i].CreatedAt > items[j].CreatedAt })

	c.HTML(http.StatusOK, "photographs.html", gin.H{"Title": "Photographs", "Items": items})
}
