package http

import (
	"github.com/gin-gonic/gin"

	"github.com/openmuseum/collections-import/internal/store"
)

// RouterConfig carries the dependencies for the operational endpoints.
type RouterConfig struct {
	Store       *store.Store
	Checkpoints *store.Checkpoints
	MediaDir    string
	Version     string
}

// NewRouter configures the operational HTTP surface: health, import progress
// and the derivative files. The public website consumes the store and the
// media directory directly and is not served here.
func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())

	healthController := NewHealthController(cfg.Store, cfg.Version)
	router.GET("/health", healthController.Status)

	importsController := NewImportsController(cfg.Checkpoints)
	router.GET("/imports", importsController.List)

	if cfg.MediaDir != "" {
		router.Static("/media", cfg.MediaDir)
	}

	return router
}
