package restserver

import (
	"context"
	"fmt"

	"github.com/MirrorChyan/ota-backend/internal/application"
	"github.com/gofiber/fiber/v2"
)

func NewAdapter(restServer *fiber.App, port int) application.Adapter {
	return &Adapter{
		restServer: restServer,
		addr:       fmt.Sprintf(":%d", port),
	}
}

type Adapter struct {
	restServer *fiber.App
	addr       string
}

func (a *Adapter) Start(ctx context.Context) error {
	return a.restServer.Listen(a.addr)
}

func (a *Adapter) Stop(ctx context.Context) error {
	return a.restServer.ShutdownWithContext(ctx)
}
