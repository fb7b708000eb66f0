package dispense

import (
	"context"
	"fmt"

	"github.com/MirrorChyan/ota-backend/internal/config"
	"github.com/MirrorChyan/ota-backend/internal/model"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const (
	TypeNone = "none"
	TypeCDN  = "cdn"
	TypeWRR  = "wrr"
	TypeS3   = "s3"
)

// Distributor turns a selected blob into a URL the client downloads from.
type Distributor interface {
	Distribute(ctx context.Context, info *model.DistributeInfo) (string, error)
	Name() string
}

type DistributeLogic struct {
	logger *zap.Logger
	rdb    *redis.Client
}

func NewDistributeLogic(
	logger *zap.Logger,
	rdb *redis.Client,
) *DistributeLogic {
	return &DistributeLogic{
		logger: logger,
		rdb:    rdb,
	}
}

// NewDistributor builds the distributor named by distribute.type.
func NewDistributor(base *DistributeLogic, conf *config.Config) (Distributor, error) {
	cfg := conf.Distribute
	switch cfg.Type {
	case "", TypeNone:
		return &NopDistributor{}, nil
	case TypeCDN:
		return NewContentDeliveryNetworkDistributor(base, cfg.CdnPrefix, cfg.PrivateKey), nil
	case TypeWRR:
		return NewWeightedRoundRobinDistributor(base, cfg.DownloadPrefix, cfg.DownloadEffectiveTime)
	case TypeS3:
		return NewObjectStorageDistributor(base, cfg.S3)
	default:
		return nil, fmt.Errorf("unknown distribute type %q", cfg.Type)
	}
}

// NopDistributor leaves the download to the client, only the descriptor is returned.
type NopDistributor struct{}

func (d *NopDistributor) Name() string {
	return TypeNone
}

func (d *NopDistributor) Distribute(context.Context, *model.DistributeInfo) (string, error) {
	return "", nil
}
