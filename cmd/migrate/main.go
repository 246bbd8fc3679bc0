// Command migrate applies the embedded schema migrations. Run it as
// "migrate" to go up or "migrate down N" to revert the newest N.
package main

import (
	"os"
	"strconv"

	"go-workforce/internal/bootstrap"
	"go-workforce/internal/config"
	"go-workforce/internal/database"
	"go-workforce/internal/shared/connection"

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

	gormDB, err := connection.ConnectGORMWithRetry(cfg.Database)
	if err != nil {
		logger.Fatal("connect database failed", zap.Error(err))
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		logger.Fatal("get sql.DB failed", zap.Error(err))
	}
	defer sqlDB.Close()

	if len(os.Args) > 1 && os.Args[1] == "down" {
		steps := 1
		if len(os.Args) > 2 {
			if steps, err = strconv.Atoi(os.Args[2]); err != nil {
				logger.Fatal("invalid step count", zap.String("arg", os.Args[2]))
			}
		}
		err = database.Rollback(sqlDB, steps, logger)
	} else {
		err = database.RunMigrations(sqlDB, logger)
	}
	if err != nil {
		logger.Fatal("migrate failed", zap.Error(err))
	}
}
