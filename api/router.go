// Package api contains all endpoints available
package api

import (
	"fmt"
	"time"

	"fstop/portfolio-api/db"
	"fstop/portfolio-api/middleware"
	"fstop/portfolio-api/security"
	"fstop/portfolio-api/storage"

	cache "github.com/chenyahui/gin-cache"
	"github.com/chenyahui/gin-cache/persist"
	"github.com/gin-contrib/cors"
	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gorm.io/gorm"
)

const (
	gray  = "\x1b[90m"
	reset = "\x1b[0m"
)

var store = persist.NewMemoryStore(time.Minute)

type API struct {
	DB      *gorm.DB
	Router  *gin.Engine
	Argon   *security.ArgonHash
	Storage *storage.Store
}

func NewRouter() (*API, error) {
	a := &API{
		Argon: security.New(),
	}

	database, err := db.New()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database, %w", err)
	}
	a.DB = database

	makeLogger()

	st, err := storage.New(viper.GetString("storage.root"))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize storage, %w", err)
	}
	a.Storage = st

	router := gin.New()
	a.Router = router

	router.Use(
		cors.New(cors.Config{
			AllowOrigins:     []string{"*"},
			AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
			ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
			AllowCredentials: false,
			MaxAge:           12 * time.Hour,
		}),
		gin.Recovery(),
		middleware.NewRequestIDMiddleware(),
		ginzap.GinzapWithConfig(zap.L(), &ginzap.Config{
			TimeFormat: "15:04:05.000",
			UTC:        true,
			Skipper: func(c *gin.Context) bool {
				return c.Request.Method == "HEAD"
			},
			Context: func(c *gin.Context) []zapcore.Field {
				fields := []zapcore.Field{}

				if v := c.GetString("requestID"); v != "" {
					fields = append(fields, zap.String("requestID", v))
				}

				if v := c.GetString("userID"); v != "" {
					fields = append(fields, zap.String("userID", v))
				}

				return fields
			},
		}),
	)

	router.HandleMethodNotAllowed = true
	router.MaxMultipartMemory = 5 << 20

	auth := middleware.NewAuthMiddleware()
	admin := middleware.RequireAdmin()

	// The multipart framing and form fields need a little room on top
	// of the file itself
	uploadLimit := middleware.NewBodySizeLimiter(viper.GetInt64("upload.max_size") + 64<<10)

	// GET /heartbeat			-> Used to check if the server is alive
	router.GET("/heartbeat", a.Heartbeat)
	router.HEAD("/heartbeat", a.Heartbeat)

	// GET /status				-> Database connectivity diagnostics
	router.GET("/status", a.Status)

	authGroup := router.Group("/auth", middleware.NewBodySizeLimiter(1<<20))
	{
		// POST /auth/register 		-> Registers a new user, first one becomes the admin
		authGroup.POST("/register", a.AuthRegister)

		// POST /auth/login 		-> Logs in a user and returns a token
		authGroup.POST("/login", a.AuthLogin)
	}

	// GET /me				-> Returns the authenticated user's profile
	router.GET("/me", auth, a.UserMe)

	albums := router.Group("/albums")
	{
		// GET /albums			-> Public album listing
		albums.GET("", cacheFor(30), a.AlbumList)

		// POST /albums			-> Creates an album (admin)
		albums.POST("", auth, admin, a.AlbumCreate)

		// GET /albums/:id		-> Album detail including its photos
		albums.GET("/:id", a.AlbumFetch)

		// POST /albums/:id/photos	-> Uploads a photo into an album (admin)
		albums.POST("/:id/photos", auth, admin, uploadLimit, a.PhotoUpload)

		// GET /albums/:id/download	-> Streams a zip of all the album's photos
		albums.GET("/:id/download", a.AlbumDownload)
	}

	// GET /photos/:id/download		-> Serves a single photo as an attachment
	router.GET("/photos/:id/download", a.PhotoDownload)

	// The storage tree is also served directly so file_url values
	// work as plain links
	router.Static(st.Prefix(), st.Root())

	return a, nil
}

func makeLogger() {
	cfg := zap.NewDevelopmentConfig()
	cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	cfg.EncoderConfig.EncodeTime = func(t time.Time, pae zapcore.PrimitiveArrayEncoder) {
		pae.AppendString(gray + t.Format("15:04:05.000") + reset)
	}
	cfg.EncoderConfig.EncodeCaller = func(ec zapcore.EntryCaller, pae zapcore.PrimitiveArrayEncoder) {
		pae.AppendString(gray + ec.TrimmedPath() + reset)
	}

	cfg.DisableStacktrace = true

	log, _ := cfg.Build()
	zap.ReplaceGlobals(log)
}

func cacheFor(sec int) gin.HandlerFunc {
	return cache.CacheByRequestURI(store, time.Second*time.Duration(sec))
}
