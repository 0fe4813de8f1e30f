package handlers

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const uploadFolder = "personal-site/uploads"

// Upload relays one multipart file to Cloudinary and returns its public
// delivery URL. The file and the post that will reference it are saved
// in two independent steps; a post save that fails afterwards leaves
// the uploaded file orphaned.
func (h *Handler) Upload(c *gin.Context) {
	if h.Cfg.CloudinaryURL == "" {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"error": "Upload storage is not configured. Set CLOUDINARY_URL.",
		})
		return
	}

	file, header, err := c.Request.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing file"})
		return
	}
	defer file.Close()

	name := header.Filename
	if name == "" {
		name = "upload-" + uuid.NewString()
	}

	cld, err := cloudinary.NewFromURL(h.Cfg.CloudinaryURL)
	if err != nil {
		log.Printf("Cloudinary configuration error: %v", err)
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Upload storage is misconfigured"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 30*time.Second)
	defer cancel()

	result, err := cld.Upload.Upload(ctx, file, uploader.UploadParams{
		Folder:       uploadFolder,
		PublicID:     name,
		ResourceType: "auto",
	})
	if err != nil {
		log.Printf("Upload error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Upload failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"url": result.SecureURL})
}
