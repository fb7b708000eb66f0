package cache

import (
	"context"

	"github.com/MirrorChyan/ota-backend/internal/config"
	"github.com/MirrorChyan/ota-backend/internal/model"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const EvictChannel = "evict"

type MultiCacheGroup struct {
	// value store pointer don't modify it

	// key: deploymentKey
	DeploymentCache *Cache[string, *model.Deployment]
	// key: deploymentKey, a snapshot is replaced as a whole, never patched
	HistoryCache *Cache[string, *model.History]
}

func (g *MultiCacheGroup) EvictAll() {
	g.DeploymentCache.EvictAll()
	g.HistoryCache.EvictAll()
}

// Evict drops a single deployment, an empty key drops everything.
func (g *MultiCacheGroup) Evict(deploymentKey string) {
	if deploymentKey == "" {
		g.EvictAll()
		return
	}
	g.DeploymentCache.Delete(deploymentKey)
	g.HistoryCache.Delete(deploymentKey)
}

func NewMultiCacheGroup(conf *config.Config) *MultiCacheGroup {
	c := conf.Cache
	return &MultiCacheGroup{
		DeploymentCache: NewCache[string, *model.Deployment](c.DeploymentTTL, c.MaxEntries),
		HistoryCache:    NewCache[string, *model.History](c.HistoryTTL, c.MaxEntries),
	}
}

// SubscribeEvict evicts the group on every message of the evict channel
// until ctx is done. The payload is the deployment key.
func SubscribeEvict(ctx context.Context, rdb *redis.Client, group *MultiCacheGroup) {
	var (
		logger    = zap.L()
		subscribe = rdb.Subscribe(ctx, EvictChannel)
	)

	go func() {
		defer func() {
			_ = subscribe.Close()
		}()
		for {
			msg, err := subscribe.ReceiveMessage(ctx)
			if err != nil {
				if ctx.Err() != nil {
					return
				}
				logger.Error("failed to receive message",
					zap.Error(err),
				)
				continue
			}
			group.Evict(msg.Payload)
			logger.Info("cache evict",
				zap.String("key", msg.Payload),
			)
		}
	}()
}
