package dispense

import (
	"context"
	"crypto/md5"
	"encoding/hex"
	"strconv"
	"strings"
	"time"

	"github.com/MirrorChyan/ota-backend/internal/model"
	"github.com/segmentio/ksuid"
	"go.uber.org/zap"
)

type ContentDeliveryNetworkDistributor struct {
	*DistributeLogic
	prefix     string
	privateKey string
	now        func() time.Time
}

func NewContentDeliveryNetworkDistributor(base *DistributeLogic, prefix, privateKey string) *ContentDeliveryNetworkDistributor {
	return &ContentDeliveryNetworkDistributor{
		DistributeLogic: base,
		prefix:          strings.TrimRight(prefix, "/"),
		privateKey:      privateKey,
		now:             time.Now,
	}
}

func (d *ContentDeliveryNetworkDistributor) Name() string {
	return TypeCDN
}

func (d *ContentDeliveryNetworkDistributor) Distribute(_ context.Context, info *model.DistributeInfo) (string, error) {
	d.logger.Debug("Distribute Use By",
		zap.String("name", d.Name()),
		zap.String("blob key", info.BlobKey),
	)
	return d.getAuthURL(info), nil
}

// getAuthURL signs the path as "<path>-<ts>-<rand>-0-<key>" with md5.
func (d *ContentDeliveryNetworkDistributor) getAuthURL(info *model.DistributeInfo) string {
	var (
		ts   = strconv.FormatInt(d.now().Unix(), 10)
		rand = ksuid.New().String()
		rel  = "/" + strings.TrimLeft(info.BlobKey, "/")
	)

	token := md5.Sum([]byte(strings.Join([]string{rel, ts, rand, "0", d.privateKey}, "-")))
	ak := strings.Join([]string{ts, rand, "0", hex.EncodeToString(token[:])}, "-")

	return d.prefix + rel + "?auth_key=" + ak + "&r=" + strconv.FormatInt(info.Size, 10)
}
