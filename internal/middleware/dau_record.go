package middleware

import (
	"context"
	"strings"
	"time"

	"github.com/MirrorChyan/ota-backend/internal/logic/misc"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const (
	clientIDQueryKey = "clientUniqueId"
	dauQueueSize     = 1024
)

type dailyActiveUserRecorder struct {
	rdb    *redis.Client
	logger *zap.Logger
	ch     chan string
}

func newDailyActiveUserRecorder(rdb *redis.Client) *dailyActiveUserRecorder {
	return &dailyActiveUserRecorder{
		rdb:    rdb,
		logger: zap.L(),
		ch:     make(chan string, dauQueueSize),
	}
}

// NewDailyActiveUserRecorder counts unique clients per day in a redis
// HyperLogLog until ctx is done. Recording is best effort, a full queue
// drops the sample.
func NewDailyActiveUserRecorder(ctx context.Context, rdb *redis.Client) fiber.Handler {
	r := newDailyActiveUserRecorder(rdb)
	go r.run(ctx)
	return r.handle
}

func (r *dailyActiveUserRecorder) run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case id := <-r.ch:
			key := DailyKey(time.Now())
			if err := r.rdb.PFAdd(ctx, key, id).Err(); err != nil && ctx.Err() == nil {
				r.logger.Warn("Update DAU error", zap.Error(err))
			}
		}
	}
}

func (r *dailyActiveUserRecorder) handle(c *fiber.Ctx) error {
	id := c.Query(clientIDQueryKey)
	if id == "" {
		id = c.IP()
	}
	select {
	// fiber reuses the request buffers
	case r.ch <- utils.CopyString(id):
	default:
	}
	return c.Next()
}

func DailyKey(t time.Time) string {
	return strings.Join([]string{misc.DAUPrefix, t.Format(time.DateOnly)}, ":")
}
