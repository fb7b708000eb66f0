package main

import (
	"context"
	"os"

	entsql "entgo.io/ent/dialect/sql"
	"github.com/MirrorChyan/ota-backend/internal/application"
	"github.com/MirrorChyan/ota-backend/internal/cache"
	"github.com/MirrorChyan/ota-backend/internal/config"
	"github.com/MirrorChyan/ota-backend/internal/db"
	"github.com/MirrorChyan/ota-backend/internal/interfaces/rest"
	"github.com/MirrorChyan/ota-backend/internal/logger"
	"github.com/MirrorChyan/ota-backend/internal/metrics"
	"github.com/MirrorChyan/ota-backend/internal/pkg/restserver"
	"github.com/MirrorChyan/ota-backend/internal/wire"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	_ "github.com/MirrorChyan/ota-backend/internal/banner"
)

func main() {

	conf := setUpConfigAndLog()

	mysql, err := db.NewDataSource(conf)
	if err != nil {
		zap.L().Fatal("failed to connect to database",
			zap.Error(err),
		)
	}

	defer func(m *entsql.Driver) {
		if err := m.Close(); err != nil {
			zap.L().Error("failed to close database", zap.Error(err))
		}
	}(mysql)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if conf.Database.AutoMigrate {
		if err := db.EnsureSchema(ctx, mysql); err != nil {
			zap.L().Fatal("failed creating schema resources",
				zap.Error(err),
			)
		}
	}

	// deps
	var (
		redis  = db.NewRedis(conf)
		dx     = db.NewSqlx(mysql)
		group  = cache.NewMultiCacheGroup(conf)
		m      = metrics.NewMetrics(prometheus.DefaultRegisterer)
		router = rest.NewRouter()
	)

	cache.SubscribeEvict(ctx, redis, group)

	handlerSet, err := wire.NewHandlerSet(zap.L(), conf, dx, redis, group, m, prometheus.DefaultGatherer)
	if err != nil {
		zap.L().Fatal("failed to build handlers",
			zap.Error(err),
		)
	}

	rest.InitRoutes(ctx, router, handlerSet, redis)

	app := application.New()
	app.AddAdapter(restserver.NewAdapter(router, conf.Server.Port))

	zap.L().Info("ota-backend started",
		zap.Int("port", conf.Server.Port),
		zap.String("rollout strategy", conf.Rollout.Strategy),
		zap.String("distribute type", conf.Distribute.Type),
	)

	if err := app.Run(ctx); err != nil {
		zap.L().Error("ota-backend stopped with error", zap.Error(err))
		cancel()
		os.Exit(1)
	}
}

func setUpConfigAndLog() *config.Config {
	conf := config.New()
	zap.ReplaceGlobals(logger.New(conf))
	return conf
}
