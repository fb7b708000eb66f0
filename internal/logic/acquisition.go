package logic

import (
	"context"
	"errors"
	"time"

	"github.com/MirrorChyan/ota-backend/internal/cache"
	"github.com/MirrorChyan/ota-backend/internal/config"
	"github.com/MirrorChyan/ota-backend/internal/logic/delivery"
	"github.com/MirrorChyan/ota-backend/internal/logic/dispense"
	"github.com/MirrorChyan/ota-backend/internal/logic/resolver"
	"github.com/MirrorChyan/ota-backend/internal/logic/rollout"
	"github.com/MirrorChyan/ota-backend/internal/metrics"
	"github.com/MirrorChyan/ota-backend/internal/model"
	"github.com/MirrorChyan/ota-backend/internal/pkg/errs"
	"go.uber.org/zap"
)

// DeploymentStore is the read side of the deployment data layer.
// Missing rows are reported as model.ErrRecordNotFound.
type DeploymentStore interface {
	FindDeploymentByKey(ctx context.Context, key string) (*model.Deployment, error)
	PackageHistory(ctx context.Context, d *model.Deployment) (*model.History, error)
}

type AcquisitionLogic struct {
	logger      *zap.Logger
	store       DeploymentStore
	cg          *cache.MultiCacheGroup
	admitter    rollout.Admitter
	resolver    *resolver.Resolver
	distributor dispense.Distributor
	metrics     *metrics.Metrics
	// report no update when the resolved package is already installed
	suppressCurrent bool
}

func NewAcquisitionLogic(
	logger *zap.Logger,
	store DeploymentStore,
	cg *cache.MultiCacheGroup,
	admitter rollout.Admitter,
	distributor dispense.Distributor,
	m *metrics.Metrics,
	conf *config.Config,
) *AcquisitionLogic {
	return &AcquisitionLogic{
		logger:          logger,
		store:           store,
		cg:              cg,
		admitter:        admitter,
		resolver:        resolver.NewResolver(logger, admitter),
		distributor:     distributor,
		metrics:         m,
		suppressCurrent: conf.Rollout.SuppressCurrentPackage,
	}
}

// NewRolloutGate builds the admission gate with the configured hash strategy.
func NewRolloutGate(conf *config.Config) (rollout.Admitter, error) {
	h, err := rollout.Strategy(conf.Rollout.Strategy)
	if err != nil {
		return nil, err
	}
	return rollout.NewGate(h), nil
}

// UpdateCheck tells the client whether a package should be installed.
// "No update" is a normal result with IsAvailable false, never an error.
func (l *AcquisitionLogic) UpdateCheck(ctx context.Context, req *model.UpdateCheckRequest) (*model.UpdateCheckResult, error) {
	var (
		start   = time.Now()
		outcome = metrics.OutcomeError
	)
	defer func() {
		l.metrics.ObserveUpdateCheck(outcome, start)
	}()

	deployment, err := l.findDeployment(ctx, req.DeploymentKey)
	if err != nil {
		return nil, err
	}

	history, err := l.packageHistory(ctx, deployment)
	if err != nil {
		return nil, err
	}

	candidate, err := l.resolver.Resolve(history, req)
	if err != nil {
		return nil, err
	}

	if candidate != nil && l.suppressCurrent && candidate.Package.PackageHash == req.PackageHash {
		l.logger.Debug("client already runs the resolved package",
			zap.String("deployment key", req.DeploymentKey),
			zap.String("package hash", req.PackageHash),
		)
		candidate = nil
	}

	if candidate == nil {
		outcome = metrics.OutcomeUnavailable
		return &model.UpdateCheckResult{IsAvailable: false}, nil
	}

	result, err := l.assemble(ctx, deployment, candidate, req)
	if err != nil {
		return nil, err
	}

	outcome = metrics.OutcomeAvailable
	l.metrics.ObserveDelivery(result.Delivery.Type.String())
	return result, nil
}

// IsUpdateAble is the bare admission decision, any client tag admits.
func (l *AcquisitionLogic) IsUpdateAble(clientUniqueID, packageHash string, percentage int, tags []string) bool {
	if len(tags) > 0 {
		return true
	}
	return l.admitter.Admit(clientUniqueID, packageHash, percentage)
}

func (l *AcquisitionLogic) findDeployment(ctx context.Context, key string) (*model.Deployment, error) {
	// the load is shared by coalesced callers and outlives the first request
	shared := context.WithoutCancel(ctx)
	val, err := l.cg.DeploymentCache.ComputeIfAbsent(key, func() (*model.Deployment, error) {
		return l.store.FindDeploymentByKey(shared, key)
	})
	switch {
	case errors.Is(err, model.ErrRecordNotFound):
		return nil, errs.ErrUnknownDeployment.WithDetails(key)
	case err != nil:
		l.logger.Error("Failed to find deployment",
			zap.String("deployment key", key),
			zap.Error(err),
		)
		return nil, err
	}
	return *val, nil
}

func (l *AcquisitionLogic) packageHistory(ctx context.Context, d *model.Deployment) (*model.History, error) {
	shared := context.WithoutCancel(ctx)
	val, err := l.cg.HistoryCache.ComputeIfAbsent(d.Key, func() (*model.History, error) {
		return l.store.PackageHistory(shared, d)
	})
	if err != nil {
		l.logger.Error("Failed to load package history",
			zap.String("deployment key", d.Key),
			zap.Error(err),
		)
		return nil, err
	}
	return *val, nil
}

func (l *AcquisitionLogic) assemble(ctx context.Context, d *model.Deployment, c *resolver.Candidate, req *model.UpdateCheckRequest) (*model.UpdateCheckResult, error) {
	var (
		p          = c.Package
		descriptor = delivery.Select(p, req.PackageHash)
	)

	url, err := l.distributor.Distribute(ctx, &model.DistributeInfo{
		DeploymentKey: d.Key,
		ClientID:      req.ClientUniqueID,
		BlobKey:       descriptor.BlobKey,
		PackageHash:   descriptor.PackageHash,
		Size:          descriptor.Size,
	})
	if err != nil {
		l.logger.Error("Failed to distribute package",
			zap.String("distributor", l.distributor.Name()),
			zap.String("blob key", descriptor.BlobKey),
			zap.Error(err),
		)
		return nil, err
	}

	return &model.UpdateCheckResult{
		IsAvailable: true,
		PackageHash: p.PackageHash,
		Label:       p.Label,
		AppVersion:  c.AppVersion,
		Description: p.Description,
		IsMandatory: p.IsMandatory,
		PackageSize: descriptor.Size,
		DownloadURL: url,
		Delivery:    &descriptor,
	}, nil
}
