package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/spf13/viper"
)

// Status reports database connectivity so a fresh deployment can be
// checked without poking real endpoints.
func (a *API) Status(c *gin.Context) {
	status := gin.H{
		"backend":  "running",
		"database": "not_connected",
		"driver":   viper.GetString("db.driver"),
	}

	sqlDB, err := a.DB.DB()
	if err == nil {
		if err := sqlDB.Ping(); err == nil {
			status["database"] = "connected"
		}
	}

	c.JSON(http.StatusOK, status)
}
