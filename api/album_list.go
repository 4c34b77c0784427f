package api

import (
	"net/http"

	"fstop/portfolio-api/model"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func (a *API) AlbumList(c *gin.Context) {
	requestID := c.MustGet("requestID").(string)

	albums := []model.Album{}

	if err := a.DB.Order("created_at DESC").Find(&albums).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "internal_server_error",
			"message":   "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to list albums", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	c.JSON(http.StatusOK, albums)
}
