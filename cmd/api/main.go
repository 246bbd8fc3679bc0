package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"go-workforce/internal/app"
	"go-workforce/internal/audit"
	"go-workforce/internal/bootstrap"
	"go-workforce/internal/config"
	"go-workforce/internal/shared/apperror"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load(os.Getenv("WF_CONFIG_FILE"))
	if err != nil {
		panic(err)
	}
	logger, err := bootstrap.NewLogger(cfg.Log)
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	apperror.Init()
	r := gin.New()
	r.Use(gin.Recovery())

	cleanup, err := app.BuildApp(r, cfg, logger)
	if err != nil {
		logger.Fatal("build app failed", zap.Error(err))
	}
	defer cleanup()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := bootstrap.Serve(ctx, r, cfg.Server, audit.NewZapSink(logger), logger); err != nil {
		logger.Error("api server exited", zap.Error(err))
	}
}
