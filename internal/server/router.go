// Package server assembles the gin engine: recovery, request ids, zap
// request logging, CORS, language negotiation and the /v1 converter routes.
package server

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/textvcard/backend/internal/config"
	"github.com/textvcard/backend/internal/infra"
	"github.com/textvcard/backend/internal/server/handlers"
	"github.com/textvcard/backend/internal/server/mw"
)

func NewRouter(cfg *config.Config, deps *infra.Infra, logger *zap.Logger) http.Handler {
	if cfg.AppEnv == "local" {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(mw.RequestID())
	r.Use(mw.RequestLogger(logger))

	r.Use(cors.New(cors.Config{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{"GET", "POST", "OPTIONS"},
		AllowHeaders: []string{"*"},
	}))

	r.GET("/health", handlers.Health)

	convertH := handlers.NewConvertHandler(logger)

	v1 := r.Group("/v1")
	v1.Use(mw.Language())
	if deps != nil && deps.Redis != nil && cfg.Security.RateLimitRPS > 0 {
		v1.Use(mw.RateLimit(deps.Redis, cfg.Security.RateLimitRPS))
	}
	v1.POST("/convert", convertH.Convert)
	v1.POST("/normalize", convertH.Normalize)

	return r
}
