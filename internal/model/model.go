package model

import (
	"errors"
	"time"

	"github.com/MirrorChyan/ota-backend/internal/model/types"
)

const (
	MinRollout     = 0
	MaxRollout     = 100
	DefaultRollout = MaxRollout
)

var ErrRecordNotFound = errors.New("record not found")

type Deployment struct {
	ID        int64
	AppID     int64
	Name      string
	Key       string
	CreatedAt time.Time
}

// Package is an uploaded release. Everything here is immutable once created,
// the mutable part lives in PackageFlags.
type Package struct {
	// ID grows with upload order
	ID          int64
	PackageHash string
	Label       string
	// AppVersion is the native binary version line the package targets
	AppVersion  string
	Description string
	IsMandatory bool
	Size        int64
	BlobKey     string
	Tags        []string
	// key: source package hash
	DiffPackageMap map[string]DiffPackage
	UploadTime     time.Time
}

type DiffPackage struct {
	PackageHash string
	BlobKey     string
	Size        int64
}

type PackageFlags struct {
	IsDisabled bool
	Rollout    int
}

func DefaultFlags() PackageFlags {
	return PackageFlags{
		IsDisabled: false,
		Rollout:    DefaultRollout,
	}
}

func ClampRollout(rollout int) int {
	switch {
	case rollout < MinRollout:
		return MinRollout
	case rollout > MaxRollout:
		return MaxRollout
	default:
		return rollout
	}
}

type Descriptor struct {
	Type        types.Delivery
	PackageHash string
	BlobKey     string
	Size        int64
	// only for diff
	SourcePackageHash string
}
