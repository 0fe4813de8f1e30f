package routes

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/zbjgrhr/personal-site/config"
	"github.com/zbjgrhr/personal-site/handlers"
	"github.com/zbjgrhr/personal-site/middleware"
	"github.com/zbjgrhr/personal-site/web"
)

// SetupRouter assembles the page and API surface. Every mutating API
// route carries its own RequireAdmin guard; admin pages sit behind the
// redirect gate.
func SetupRouter(h *handlers.Handler, cfg config.Config) *gin.Engine {
	router := gin.Default()
	router.SetHTMLTemplate(web.Templates())

	router.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
			"time":   time.Now().Unix(),
		})
	})

	corsConfig := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	if len(cfg.CorsAllowedOrigins) == 1 && cfg.CorsAllowedOrigins[0] == "*" {
		// Credentials cannot be combined with a wildcard origin.
		corsConfig.AllowAllOrigins = true
		corsConfig.AllowCredentials = false
	} else {
		corsConfig.AllowOrigins = cfg.CorsAllowedOrigins
	}
	router.Use(cors.New(corsConfig))

	router.Use(middleware.AdminPageGate(cfg.AdminSecret))

	admin := middleware.RequireAdmin(cfg.AdminSecret)

	api := router.Group("/api")

	api.POST("/auth/login", middleware.RateLimit(10, time.Minute), h.Login)
	api.POST("/auth/logout", h.Logout)
	api.GET("/auth/me", h.Me)

	api.GET("/about/photo", h.GetAboutPhoto)
	api.POST("/about/photo", admin, h.SetAboutPhoto)

	api.GET("/blog/posts", h.ListBlogPosts)
	api.POST("/blog/posts", admin, h.CreateBlogPost)
	api.PUT("/blog/posts", admin, h.UpdateBlogPost)
	api.DELETE("/blog/posts", admin, h.DeleteBlogPost)

	api.GET("/music/posts", h.ListMusicPosts)
	api.POST("/music/posts", admin, h.CreateMusicPost)
	api.PUT("/music/posts", admin, h.UpdateMusicPost)
	api.DELETE("/music/posts", admin, h.DeleteMusicPost)

	api.GET("/work/posts", h.ListWorkPosts)
	api.POST("/work/posts", admin, h.CreateWorkPost)
	api.PUT("/work/posts", admin, h.UpdateWorkPost)
	api.DELETE("/work/posts", admin, h.DeleteWorkPost)

	api.POST("/upload", admin, h.Upload)

	// Pages
	router.GET("/", h.Home)
	router.GET("/blog", h.BlogIndex)
	router.GET("/blog/:slug", h.BlogShow)
	router.GET("/music", h.MusicIndex)
	router.GET("/music/:slug", h.MusicShow)
	router.GET("/work", h.WorkIndex)
	router.GET("/work/:slug", h.WorkShow)
	router.GET("/about", h.About)
	router.GET("/photographs", h.Photographs)

	router.GET("/admin/login", h.AdminLogin)
	router.GET("/admin", h.AdminHome)
	router.GET("/admin/blog", h.AdminBlog)
	router.GET("/admin/music", h.AdminMusic)
	router.GET("/admin/work", h.AdminWork)
	router.GET("/admin/about", h.AdminAbout)

	router.NoRoute(func(c *gin.Context) {
		if strings.HasPrefix(c.Request.URL.Path, "/api") {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Endpoint not found",
				"path":  c.Request.URL.Path,
			})
			return
		}
		c.HTML(http.StatusNotFound, "notfound.html", gin.H{"Title": "Not found"})
	})

	return router
}
