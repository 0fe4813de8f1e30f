package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/zbjgrhr/personal-site/config"
	"github.com/zbjgrhr/personal-site/database"
	"github.com/zbjgrhr/personal-site/handlers"
	"github.com/zbjgrhr/personal-site/routes"
)

func main() {
	log.Println("🚀 Starting personal-site server...")

	cfg := config.Load()

	if cfg.AdminSecret == "" {
		log.Println("⚠️ ADMIN_SECRET not set, admin login is disabled")
	}
	if cfg.CloudinaryURL == "" {
		log.Println("⚠️ CLOUDINARY_URL not set, uploads are disabled")
	}

	// Content store is optional: without it, reads serve empty content
	// and writes answer 503.
	var store database.KV
	if cfg.MongoURI == "" {
		log.Println("⚠️ MONGODB_URI not set, content storage is disabled")
	} else {
		var err error
		for i := 1; i <= 3; i++ {
			store, err = database.Connect(cfg.MongoURI)
			if err == nil {
				break
			}
			log.Printf("❌ MongoDB connection attempt %d failed: %v", i, err)
			time.Sleep(2 * time.Second)
		}
		if err != nil {
			log.Fatal("❌ Failed to connect to MongoDB:", err)
		}
		defer func() {
			if err := database.Disconnect(); err != nil {
				log.Printf("MongoDB disconnect error: %v", err)
			}
		}()
	}

	if os.Getenv("GIN_MODE") == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := routes.SetupRouter(handlers.New(store, cfg), cfg)

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("🌐 Server running on port %s", cfg.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("❌ Server error:", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("🛑 Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Println("❌ Forced shutdown:", err)
	}

	log.Println("👋 Server stopped gracefully")
}
