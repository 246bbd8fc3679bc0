package app

import (
	"go-workforce/internal/config"
	"go-workforce/internal/middleware"
	"go-workforce/internal/shared/apperror"
	"go-workforce/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BuildApp connects infrastructure, migrates the schema and mounts every
// module on router. The returned cleanup closes the connections.
func BuildApp(router *gin.Engine, cfg *config.Config, logger *zap.Logger) (func(), error) {
	st, err := openStores(cfg, true, logger)
	if err != nil {
		return nil, err
	}
	m, err := st.modules(cfg, logger)
	if err != nil {
		st.Close()
		return nil, err
	}

	router.Use(middleware.RequestID())
	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})
	router.NoRoute(func(c *gin.Context) {
		e := apperror.ToHTTP(apperror.ErrNotFound)
		response.Error(c, e.Status, e.Code, e.Message, nil)
	})
	registerRoutes(router, m, st.rdb, cfg, logger)

	return st.Close, nil
}
