//go:build wireinject
// +build wireinject

package wire

import (
	"github.com/MirrorChyan/ota-backend/internal/cache"
	"github.com/MirrorChyan/ota-backend/internal/config"
	"github.com/MirrorChyan/ota-backend/internal/handler"
	"github.com/MirrorChyan/ota-backend/internal/metrics"
	"github.com/MirrorChyan/ota-backend/internal/provider"
	"github.com/google/wire"
	"github.com/jmoiron/sqlx"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

type HandlerSet struct {
	AcquisitionHandler *handler.AcquisitionHandler
	MetricsHandler     *handler.MetricsHandler
	HeathCheckHandler  *handler.HeathCheckHandler
}

func NewHandlerSet(
	logger *zap.Logger,
	conf *config.Config,
	dx *sqlx.DB,
	rdb *redis.Client,
	cg *cache.MultiCacheGroup,
	m *metrics.Metrics,
	gatherer prometheus.Gatherer,
) (*HandlerSet, error) {
	panic(wire.Build(
		provider.RepoSet,
		provider.LogicSet,
		provider.HandlerSet,
		wire.Struct(new(HandlerSet), "*"),
	))
}
