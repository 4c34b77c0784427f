package api

import (
	"errors"
	"net/http"
	"os"
	"path/filepath"

	"fstop/portfolio-api/model"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func (a *API) PhotoDownload(c *gin.Context) {
	requestID := c.MustGet("requestID").(string)
	photoID := c.Param("id")

	var photo model.Photo

	if err := a.DB.Where("id = ?", photoID).First(&photo).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error":     "not_found",
				"message":   "Photo not found",
				"requestID": requestID,
			})
			return
		}

		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "internal_server_error",
			"message":   "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to fetch photo", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	physical, err := a.Storage.Resolve(photo.FileURL)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"error":     "not_found",
			"message":   "File not found",
			"requestID": requestID,
		})

		zap.L().Warn("Photo record has an unresolvable file URL",
			zap.String("photoID", photo.ID),
			zap.String("fileURL", photo.FileURL),
			zap.String("requestID", requestID))
		return
	}

	// Resolve is purely syntactic, the file may have been removed
	// from under us
	if _, err := os.Stat(physical); err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"error":     "not_found",
			"message":   "File not found",
			"requestID": requestID,
		})
		return
	}

	name := photo.FileName
	if name == "" {
		name = filepath.Base(physical)
	}

	c.FileAttachment(physical, name)
}
