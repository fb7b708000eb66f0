package handler

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const readyTimeout = 2 * time.Second

type HeathCheckHandler struct {
	logger *zap.Logger
	dx     *sqlx.DB
	rdb    *redis.Client
}

func NewHeathCheckHandler(logger *zap.Logger, dx *sqlx.DB, rdb *redis.Client) *HeathCheckHandler {
	return &HeathCheckHandler{
		logger: logger,
		dx:     dx,
		rdb:    rdb,
	}
}

func (h *HeathCheckHandler) Register(r fiber.Router) {
	r.Get("/health", func(ctx *fiber.Ctx) error {
		return ctx.SendString("OK")
	})
	r.Get("/ready", h.Ready)
}

// Ready reports whether mysql and redis answer.
func (h *HeathCheckHandler) Ready(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.UserContext(), readyTimeout)
	defer cancel()

	if err := h.dx.PingContext(ctx); err != nil {
		h.logger.Warn("mysql not ready", zap.Error(err))
		return c.Status(fiber.StatusServiceUnavailable).SendString("mysql unavailable")
	}
	if err := h.rdb.Ping(ctx).Err(); err != nil {
		h.logger.Warn("redis not ready", zap.Error(err))
		return c.Status(fiber.StatusServiceUnavailable).SendString("redis unavailable")
	}
	return c.SendString("OK")
}
