package api

import (
	"errors"
	"fmt"
	"net/http"

	"fstop/portfolio-api/model"
	"fstop/portfolio-api/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// AlbumDownload streams every photo of an album as a single zip.
// Individual missing files are tolerated, an album with no photo
// records at all is a 404.
func (a *API) AlbumDownload(c *gin.Context) {
	requestID := c.MustGet("requestID").(string)
	albumID := c.Param("id")

	var album model.Album

	if err := a.DB.Where("id = ?", albumID).First(&album).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error":     "not_found",
				"message":   "Album not found",
				"requestID": requestID,
			})
			return
		}

		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "internal_server_error",
			"message":   "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to fetch album", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	var photos []model.Photo

	if err := a.DB.Where("album_id = ?", albumID).Find(&photos).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "internal_server_error",
			"message":   "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to fetch album photos", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	if len(photos) == 0 {
		c.JSON(http.StatusNotFound, gin.H{
			"error":     "empty_album",
			"message":   "No photos to download",
			"requestID": requestID,
		})
		return
	}

	c.Header("Content-Type", "application/zip")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", album.Title+".zip"))
	c.Status(http.StatusOK)

	written, err := service.BuildAlbumZip(c.Writer, a.Storage, photos)
	if err != nil {
		// Headers are long gone, all we can do is log. A client
		// disconnect lands here too.
		zap.L().Warn("Album zip stream aborted",
			zap.Error(err),
			zap.Int("written", written),
			zap.String("albumID", albumID),
			zap.String("requestID", requestID))
	}
}
