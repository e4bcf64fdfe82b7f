package handler

import (
	"os"
	"path/filepath"
	"strings"

	"main/config"
	"main/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

var allowedImageExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
}

// UploadImageHandler stores an uploaded image and returns the opaque
// reference string that goes into a note's image field. The core never
// interprets the reference beyond storing it.
func UploadImageHandler(c *gin.Context, storage config.StorageConfig) {
	file, err := c.FormFile("image")
	if err != nil {
		utils.BadRequest(c, "No file uploaded")
		return
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !allowedImageExtensions[ext] {
		utils.BadRequest(c, "Only image files are allowed")
		return
	}

	if err := os.MkdirAll(storage.UploadPath, 0o755); err != nil {
		utils.InternalError(c, "Failed to prepare upload directory")
		return
	}

	filename := uuid.New().String() + ext
	dst := filepath.Join(storage.UploadPath, filename)
	if err := c.SaveUploadedFile(file, dst); err != nil {
		utils.InternalError(c, "Failed to store file")
		return
	}

	utils.Success(c, gin.H{
		"image_url": storage.PublicPath + "/" + filename,
	})
}
