package rest

import (
	"context"

	"github.com/MirrorChyan/ota-backend/internal/config"
	"github.com/MirrorChyan/ota-backend/internal/handler"
	"github.com/MirrorChyan/ota-backend/internal/middleware"
	"github.com/MirrorChyan/ota-backend/internal/wire"
	"github.com/bytedance/sonic"
	"github.com/gofiber/contrib/fiberzap/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const BodyLimit = 1024 * 1024

func NewRouter() *fiber.App {

	router := fiber.New(fiber.Config{
		AppName:     config.ServiceName,
		BodyLimit:   BodyLimit,
		ProxyHeader: fiber.HeaderXForwardedFor,

		JSONEncoder: sonic.Marshal,
		JSONDecoder: sonic.Unmarshal,

		ErrorHandler: handler.Error,
	})

	return router
}

func InitRoutes(ctx context.Context, router *fiber.App, handlerSet *wire.HandlerSet, rdb *redis.Client) {

	router.Use(fiberzap.New(fiberzap.Config{
		Logger: zap.L(),
		SkipURIs: []string{
			"/metrics",
			"/health",
			"/ready",
		},
	}))

	router.Use("/updateCheck", middleware.NewDailyActiveUserRecorder(ctx, rdb))

	r := router.Group("/")

	handlerSet.AcquisitionHandler.Register(r)

	handlerSet.MetricsHandler.Register(r)

	handlerSet.HeathCheckHandler.Register(r)
}
