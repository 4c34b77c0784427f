package api

import (
	"errors"
	"io"
	"net/http"
	"os"

	"fstop/portfolio-api/model"
	"fstop/portfolio-api/validators"

	"github.com/gin-gonic/gin"
	gonanoid "github.com/matoous/go-nanoid/v2"
	"go.uber.org/zap"
)

// PhotoUpload stores the uploaded bytes first and only then records
// the photo. A record pointing at a file that was never written can't
// exist, an orphaned file from a failed insert is cleaned up below.
func (a *API) PhotoUpload(c *gin.Context) {
	requestID := c.MustGet("requestID").(string)
	albumID := c.Param("id")

	var exists bool

	r := a.DB.Model(model.Album{}).
		Select("count(*) > 0").
		Where("id = ?", albumID).
		Find(&exists)
	if r.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "internal_server_error",
			"message":   "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to check if album exists", zap.Error(r.Error), zap.String("requestID", requestID))
		return
	}

	if !exists {
		c.JSON(http.StatusNotFound, gin.H{
			"error":     "not_found",
			"message":   "Album not found",
			"requestID": requestID,
		})
		return
	}

	fh, err := c.FormFile("file")
	if err != nil {
		// A chunked upload may only trip the body limit during the
		// multipart parse
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			c.JSON(http.StatusRequestEntityTooLarge, gin.H{
				"error":     "validation_error",
				"message":   "Request body size exceeds limit",
				"requestID": requestID,
			})
			return
		}

		c.JSON(http.StatusBadRequest, gin.H{
			"error":     "validation_error",
			"message":   "No file provided",
			"requestID": requestID,
		})
		return
	}

	code, f, err := validators.FileValidator(fh)
	if err != nil {
		kind := "validation_error"
		if code == http.StatusInternalServerError {
			kind = "internal_server_error"
			zap.L().Error("Failed to validate upload", zap.Error(err), zap.String("requestID", requestID))
		}

		c.JSON(code, gin.H{
			"error":     kind,
			"message":   err.Error(),
			"requestID": requestID,
		})
		return
	}
	defer f.Close()

	physical, public, err := a.Storage.Allocate(albumID, fh.Filename)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "internal_server_error",
			"message":   "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to allocate storage", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	dst, err := os.Create(physical)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "internal_server_error",
			"message":   "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to create file", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	if _, err := io.Copy(dst, f); err != nil {
		dst.Close()
		os.Remove(physical)

		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "internal_server_error",
			"message":   "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to write file", zap.Error(err), zap.String("requestID", requestID))
		return
	}
	dst.Close()

	// Size comes from what actually landed on disk, not from the
	// multipart header
	stat, err := os.Stat(physical)
	if err != nil {
		os.Remove(physical)

		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "internal_server_error",
			"message":   "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to stat written file", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	photoID, err := gonanoid.New()
	if err != nil {
		os.Remove(physical)

		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "internal_server_error",
			"message":   "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to generate photo ID", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	photo := model.Photo{
		ID:           photoID,
		AlbumID:      albumID,
		Title:        c.PostForm("title"),
		Description:  c.PostForm("description"),
		FileURL:      public,
		FileName:     fh.Filename,
		FileSize:     stat.Size(),
		Downloadable: true,
	}

	if err := a.DB.Create(&photo).Error; err != nil {
		os.Remove(physical)

		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "internal_server_error",
			"message":   "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to create photo record", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	c.JSON(http.StatusOK, photo)
}
