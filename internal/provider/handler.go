package provider

import (
	"github.com/MirrorChyan/ota-backend/internal/handler"
	"github.com/google/wire"
)

var HandlerSet = wire.NewSet(
	handler.NewAcquisitionHandler,
	handler.NewMetricsHandler,
	handler.NewHeathCheckHandler,
)
