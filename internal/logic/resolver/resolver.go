package resolver

import (
	"github.com/MirrorChyan/ota-backend/internal/logic/rollout"
	"github.com/MirrorChyan/ota-backend/internal/logic/tagmatch"
	"github.com/MirrorChyan/ota-backend/internal/model"
	"github.com/MirrorChyan/ota-backend/internal/pkg/errs"
	"github.com/MirrorChyan/ota-backend/internal/pkg/vercomp"
	"go.uber.org/zap"
)

type Candidate struct {
	Package *model.Package
	Flags   model.PackageFlags
	// AppVersion is the normalized target version of Package
	AppVersion string
}

type Resolver struct {
	logger   *zap.Logger
	admitter rollout.Admitter
}

func NewResolver(logger *zap.Logger, admitter rollout.Admitter) *Resolver {
	return &Resolver{
		logger:   logger,
		admitter: admitter,
	}
}

// Resolve picks the single package the client may install, or nil when no update
// is available. Only the most recently uploaded package on the client's release line
// is considered. If it is disabled or rejected by tags or rollout, no older package
// is offered instead.
func (r *Resolver) Resolve(history *model.History, req *model.UpdateCheckRequest) (*Candidate, error) {
	current, err := vercomp.Normalize(req.AppVersion)
	if err != nil {
		return nil, errs.ErrInvalidVersion.Wrap(err).WithDetails(req.AppVersion)
	}

	selected, target := r.latestOnReleaseLine(history, current)
	if selected == nil {
		return nil, nil
	}

	flags := history.Flags(selected.ID)
	if flags.IsDisabled {
		r.logger.Debug("latest package is disabled",
			zap.String("package hash", selected.PackageHash),
			zap.String("label", selected.Label),
		)
		return nil, nil
	}
	if !r.eligible(selected, flags, req) {
		r.logger.Debug("latest package rejected for client",
			zap.String("package hash", selected.PackageHash),
			zap.String("label", selected.Label),
			zap.Int("rollout", flags.Rollout),
			zap.Strings("tags", selected.Tags),
		)
		return nil, nil
	}

	return &Candidate{
		Package:    selected,
		Flags:      flags,
		AppVersion: target.String(),
	}, nil
}

func (r *Resolver) latestOnReleaseLine(history *model.History, current *vercomp.Version) (*model.Package, *vercomp.Version) {
	line := current.ReleaseLine()

	for i := history.Len() - 1; i >= 0; i-- {
		p := history.At(i)
		v, err := vercomp.Normalize(p.AppVersion)
		if err != nil {
			r.logger.Warn("skip package with unparsable app version",
				zap.Int64("package id", p.ID),
				zap.String("app version", p.AppVersion),
				zap.Error(err),
			)
			continue
		}

		if v.ReleaseLine() != line {
			continue
		}
		if v.Compare(current) < vercomp.Equal {
			continue
		}
		return p, v
	}
	return nil, nil
}

func (r *Resolver) eligible(p *model.Package, flags model.PackageFlags, req *model.UpdateCheckRequest) bool {
	if d := tagmatch.Match(req.Tags, p.Tags); d.Bypass {
		return d.Eligible
	}
	return r.admitter.Admit(req.ClientUniqueID, p.PackageHash, flags.Rollout)
}
