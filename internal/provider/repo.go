package provider

import (
	"github.com/MirrorChyan/ota-backend/internal/logic"
	"github.com/MirrorChyan/ota-backend/internal/repo"
	"github.com/google/wire"
)

var RepoSet = wire.NewSet(
	repo.NewRepo,
	repo.NewDeployment,
	repo.NewPackage,
	repo.NewStore,
	wire.Bind(new(logic.DeploymentStore), new(*repo.Store)),
)
