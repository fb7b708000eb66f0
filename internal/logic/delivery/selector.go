package delivery

import (
	"github.com/MirrorChyan/ota-backend/internal/model"
	"github.com/MirrorChyan/ota-backend/internal/model/types"
)

// Select returns the patch from the client's current package when one was
// precomputed, otherwise the full package.
func Select(p *model.Package, clientPackageHash string) model.Descriptor {
	if clientPackageHash != "" {
		if diff, ok := p.DiffPackageMap[clientPackageHash]; ok {
			return model.Descriptor{
				Type:              types.DeliveryDiff,
				PackageHash:       p.PackageHash,
				BlobKey:           diff.BlobKey,
				Size:              diff.Size,
				SourcePackageHash: clientPackageHash,
			}
		}
	}

	return model.Descriptor{
		Type:        types.DeliveryFull,
		PackageHash: p.PackageHash,
		BlobKey:     p.BlobKey,
		Size:        p.Size,
	}
}
