package app

import (
	"database/sql"
	"errors"

	"go-workforce/internal/config"
	"go-workforce/internal/database"
	"go-workforce/internal/shared/connection"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// stores are the connections every process opens before building modules.
type stores struct {
	gormDB *gorm.DB
	sqlDB  *sql.DB
	rdb    *redis.Client
}

func openStores(cfg *config.Config, migrate bool, logger *zap.Logger) (*stores, error) {
	gormDB, err := connection.ConnectGORMWithRetry(cfg.Database)
	if err != nil {
		return nil, err
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		return nil, err
	}
	if migrate {
		if err := database.RunMigrations(sqlDB, logger); err != nil {
			return nil, errors.Join(err, sqlDB.Close())
		}
	}
	rdb, err := connection.ConnectRedisWithRetry(cfg.Redis, cfg.Database.MaxRetries)
	if err != nil {
		return nil, errors.Join(err, sqlDB.Close())
	}
	return &stores{gormDB: gormDB, sqlDB: sqlDB, rdb: rdb}, nil
}

func (s *stores) modules(cfg *config.Config, logger *zap.Logger) (*modules, error) {
	return buildModules(s.sqlDB, s.gormDB, s.rdb, cfg, logger)
}

func (s *stores) Close() {
	_ = s.rdb.Close()
	_ = s.sqlDB.Close()
}
