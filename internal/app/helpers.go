package app

import (
	"context"

	goredis "github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/MrSnakeDoc/bookhive/internal/config"
	"github.com/MrSnakeDoc/bookhive/internal/httpserver/handlers"
	"github.com/MrSnakeDoc/bookhive/internal/logger"
	"github.com/MrSnakeDoc/bookhive/internal/redis"
)

func redisOptions(cfg *config.Config) redis.ConnectOptions {
	return redis.ConnectOptions{
		Addr:           cfg.RedisAddr,
		User:           cfg.RedisUser,
		Password:       cfg.RedisPassword,
		RedisDB:        cfg.RedisDB,
		DialTimeout:    cfg.RedisDT,
		ReadTimeout:    cfg.RedisRT,
		WriteTimeout:   cfg.RedisWT,
		PoolSize:       cfg.RedisPoolSize,
		ConnectTimeout: cfg.RedisConnectTimeout,
		RetryInterval:  cfg.RedisRetryInterval,
		MaxWait:        cfg.RedisMaxWait,
		PingTimeout:    cfg.RedisPingTimeout,
		WarnThreshold:  cfg.RedisWarnThreshold,
	}
}

func pingPostgres(db *gorm.DB) handlers.Check {
	return func(ctx context.Context) error {
		sqlDB, err := db.DB()
		if err != nil {
			return err
		}
		return sqlDB.PingContext(ctx)
	}
}

func pingRedis(client *goredis.Client) handlers.Check {
	return func(ctx context.Context) error {
		return client.Ping(ctx).Err()
	}
}

func closeQuiet(log logger.Logger, name string, close func() error) {
	if err := close(); err != nil {
		log.Warnf("failed to close %s: %v", name, err)
	}
}

// awaitStop blocks until a background component signals completion, giving
// up when the shutdown context expires.
func awaitStop(ctx context.Context, log logger.Logger, name string, done <-chan struct{}) {
	select {
	case <-done:
	case <-ctx.Done():
		log.Warnf("%s did not stop within the shutdown timeout", name)
	}
}
