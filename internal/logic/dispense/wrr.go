package dispense

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MirrorChyan/ota-backend/internal/lb"
	"github.com/MirrorChyan/ota-backend/internal/logic/misc"
	"github.com/MirrorChyan/ota-backend/internal/model"
	"github.com/bytedance/sonic"
	"github.com/segmentio/ksuid"
	"go.uber.org/zap"
)

type WeightedRoundRobinDistributor struct {
	*DistributeLogic
	wrr *lb.WeightedRoundRobin
	ttl time.Duration
}

func NewWeightedRoundRobinDistributor(base *DistributeLogic, prefixes []string, ttl time.Duration) (*WeightedRoundRobinDistributor, error) {
	if len(prefixes) == 0 {
		return nil, errors.New("wrr distributor needs at least one download prefix")
	}
	return &WeightedRoundRobinDistributor{
		DistributeLogic: base,
		wrr:             lb.NewWeightedRoundRobin(lb.ParseServers(prefixes)),
		ttl:             ttl,
	}, nil
}

func (d *WeightedRoundRobinDistributor) Name() string {
	return TypeWRR
}

// Distribute stores a one-time ticket in redis that the mirror exchanges
// for the blob, the ticket expires after the configured effective time.
func (d *WeightedRoundRobinDistributor) Distribute(ctx context.Context, info *model.DistributeInfo) (string, error) {
	d.logger.Debug("Distribute Use By",
		zap.String("name", d.Name()),
		zap.String("blob key", info.BlobKey),
	)

	key := ksuid.New().String()
	sk := strings.Join([]string{misc.DownloadPrefix, key}, ":")

	value, err := sonic.Marshal(info)
	if err != nil {
		return "", err
	}

	if err = d.rdb.Set(ctx, sk, value, d.ttl).Err(); err != nil {
		return "", err
	}

	prefix := d.wrr.Next().Url
	root := strings.Join([]string{prefix, strings.TrimLeft(info.BlobKey, "/")}, "/")
	return fmt.Sprintf("%s?key=%s", root, key), nil
}
