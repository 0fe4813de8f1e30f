package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/zbjgrhr/personal-site/models"
)

// postView is the template-facing shape shared by every post type.
// Fields a type does not have stay empty and the templates skip them.
type postView struct {
	ID        string
	Slug      string
	Title     string
	Content   string
	Tag       string
	CreatedAt string
	ImageUrls []string
	VideoUrls []string
	AudioUrls []string
	PdfUrls   []string
	ZipUrls   []string
}

func blogView(p models.BlogPost) postView {
	return postView{
		ID: p.ID, Slug: p.Slug, Title: p.Title, Content: p.Content,
		CreatedAt: p.CreatedAt, ImageUrls: p.ImageUrls,
	}
}

func musicView(p models.MusicPost) postView {
	return postView{
		ID: p.ID, Slug: p.Slug, Title: p.Title, Content: p.Content, Tag: p.Tag,
		CreatedAt: p.CreatedAt, ImageUrls: p.ImageUrls, VideoUrls: p.VideoUrls,
	}
}

func workView(p models.WorkPost) postView {
	return postView{
		ID: p.ID, Slug: p.Slug, Title: p.Title, Content: p.Content,
		CreatedAt: p.CreatedAt, ImageUrls: p.ImageUrls, VideoUrls: p.VideoUrls,
		AudioUrls: p.AudioUrls, PdfUrls: p.PdfUrls, ZipUrls: p.ZipUrls,
	}
}

func (h *Handler) Home(c *gin.Context) {
	c.HTML(http.StatusOK, "home.html", gin.H{"Title": "Home"})
}

func (h *Handler) notFoundPage(c *gin.Context) {
	c.HTML(http.StatusNotFound, "notfound.html", gin.H{"Title": "Not found"})
}

func (h *Handler) blogPosts(c *gin.Context) []models.BlogPost {
	posts := models.ParseBlogPosts(h.readRaw(c, models.BlogKey))
	models.SortBlogPosts(posts)
	return posts
}

func (h *Handler) musicPosts(c *gin.Context) []models.MusicPost {
	posts := models.ParseMusicPosts(h.readRaw(c, models.MusicKey))
	models.SortMusicPosts(posts)
	return posts
}

func (h *Handler) workPosts(c *gin.Context) []models.WorkPost {
	posts := models.ParseWorkPosts(h.readRaw(c, models.WorkKey))
	models.SortWorkPosts(posts)
	return posts
}

func (h *Handler) BlogIndex(c *gin.Context) {
	posts := h.blogPosts(c)
	views := make([]postView, len(posts))
	for i, p := range posts {
		views[i] = blogView(p)
	}
	c.HTML(http.StatusOK, "posts.html", gin.H{"Title": "Blog", "Section": "blog", "Posts": views})
}

// BlogShow renders the first post whose slug matches; slugs are not
// guaranteed unique, so later posts with the same slug are shadowed.
func (h *Handler) BlogShow(c *gin.Context) {
	slug := c.Param("slug")
	for _, p := range h.blogPosts(c) {
		if p.Slug == slug {
			c.HTML(http.StatusOK, "post.html", gin.H{"Title": p.Title, "Section": "blog", "Post": blogView(p)})
			return
		}
	}
	h.notFoundPage(c)
}

func (h *Handler) MusicIndex(c *gin.Context) {
	posts := h.musicPosts(c)
	views := make([]postView, len(posts))
	for i, p := range posts {
		views[i] = musicView(p)
	}
	c.HTML(http.StatusOK, "posts.html", gin.H{"Title": "Music", "Section": "music", "Posts": views})
}

func (h *Handler) MusicShow(c *gin.Context) {
	slug := c.Param("slug")
	for _, p := range h.musicPosts(c) {
		if p.Slug == slug {
			c.HTML(http.StatusOK, "post.html", gin.H{"Title": p.Title, "Section": "music", "Post": musicView(p)})
			return
		}
	}
	h.notFoundPage(c)
}

func (h *Handler) WorkIndex(c *gin.Context) {
	posts := h.workPosts(c)
	views := make([]postView, len(posts))
	for i, p := range posts {
		views[i] = workView(p)
	}
	c.HTML(http.StatusOK, "posts.html", gin.H{"Title": "Work", "Section": "work", "Posts": views})
}

func (h *Handler) WorkShow(c *gin.Context) {
	slug := c.Param("slug")
	for _, p := range h.workPosts(c) {
		if p.Slug == slug {
			c.HTML(http.StatusOK, "post.html", gin.H{"Title": p.Title, "Section": "work", "Post": workView(p)})
			return
		}
	}
	h.notFoundPage(c)
}

func (h *Handler) About(c *gin.Context) {
	url := ""
	if u := h.aboutPhotoURL(c); u != nil {
		url = *u
	}
	c.HTML(http.StatusOK, "about.html", gin.H{"Title": "About", "PhotoURL": url})
}

func (h *Handler) AdminLogin(c *gin.Context) {
	c.HTML(http.StatusOK, "admin_login.html", gin.H{"Title": "Admin login"})
}

func (h *Handler) AdminHome(c *gin.Context) {
	c.HTML(http.StatusOK, "admin_home.html", gin.H{"Title": "Admin"})
}

func (h *Handler) AdminBlog(c *gin.Context) {
	posts := h.blogPosts(c)
	views := make([]postView, len(posts))
	for i, p := range posts {
		views[i] = blogView(p)
	}
	c.HTML(http.StatusOK, "admin_posts.html", gin.H{
		"Title": "Manage blog", "Section": "blog", "API": "/api/blog/posts", "Posts": views,
	})
}

func (h *Handler) AdminMusic(c *gin.Context) {
	posts := h.musicPosts(c)
	views := make([]postView, len(posts))
	for i, p := range posts {
		views[i] = musicView(p)
	}
	c.HTML(http.StatusOK, "admin_posts.html", gin.H{
		"Title": "Manage music", "Section": "music", "API": "/api/music/posts", "Posts": views,
	})
}

func (h *Handler) AdminWork(c *gin.Context) {
	posts := h.workPosts(c)
	views := make([]postView, len(posts))
	for i, p := range posts {
		views[i] = workView(p)
	}
	c.HTML(http.StatusOK, "admin_posts.html", gin.H{
		"Title": "Manage work", "Section": "work", "API": "/api/work/posts", "Posts": views,
	})
}

func (h *Handler) AdminAbout(c *gin.Context) {
	url := ""
	if u := h.aboutPhotoURL(c); u != nil {
		url = *u
	}
	c.HTML(http.StatusOK, "admin_about.html", gin.H{"Title": "Manage about", "PhotoURL": url})
}
