package api

import (
	"errors"
	"net/http"

	"fstop/portfolio-api/model"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func (a *API) AlbumFetch(c *gin.Context) {
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

	if err := a.DB.Where("album_id = ?", albumID).Find(&album.Photos).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "internal_server_error",
			"message":   "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to fetch album photos", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	c.JSON(http.StatusOK, album)
}
