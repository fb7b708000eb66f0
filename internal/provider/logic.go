package provider

import (
	"github.com/MirrorChyan/ota-backend/internal/logic"
	"github.com/MirrorChyan/ota-backend/internal/logic/dispense"
	"github.com/google/wire"
)

var LogicSet = wire.NewSet(
	logic.NewRolloutGate,
	logic.NewAcquisitionLogic,
	dispense.NewDistributeLogic,
	dispense.NewDistributor,
)
