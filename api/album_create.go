package api

import (
	"net/http"

	"fstop/portfolio-api/model"
	"fstop/portfolio-api/validators"

	"github.com/gin-gonic/gin"
	gonanoid "github.com/matoous/go-nanoid/v2"
	"go.uber.org/zap"
)

type albumBody struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	CoverURL    string   `json:"cover_url"`
	Tags        []string `json:"tags"`
}

func (a *API) AlbumCreate(c *gin.Context) {
	requestID := c.MustGet("requestID").(string)
	userID := c.MustGet("userID").(string)

	var data albumBody
	if err := c.ShouldBind(&data); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     "validation_error",
			"message":   "Invalid request body",
			"requestID": requestID,
		})
		return
	}

	if err := validators.AlbumTitleValidator(data.Title); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     "validation_error",
			"message":   err.Error(),
			"requestID": requestID,
		})
		return
	}

	albumID, err := gonanoid.New()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "internal_server_error",
			"message":   "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to generate album ID", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	album := model.Album{
		ID:          albumID,
		Title:       data.Title,
		Description: data.Description,
		CoverURL:    data.CoverURL,
		OwnerID:     userID,
		Tags:        data.Tags,
	}

	if err := a.DB.Create(&album).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "internal_server_error",
			"message":   "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to create album", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	c.JSON(http.StatusOK, album)
}
