package rollout

import (
	"github.com/MirrorChyan/ota-backend/internal/model"
)

const buckets = 100

// Admitter decides whether a client may receive a package at the given rollout percentage.
type Admitter interface {
	Admit(clientUniqueID, packageHash string, rollout int) bool
}

type AdmitFunc func(clientUniqueID, packageHash string, rollout int) bool

func (f AdmitFunc) Admit(clientUniqueID, packageHash string, rollout int) bool {
	return f(clientUniqueID, packageHash, rollout)
}

// Gate places every (client, package) pair in a stable bucket in [0,100)
// and admits it when the bucket is below the rollout percentage.
type Gate struct {
	hash HashFunc
}

func NewGate(hash HashFunc) *Gate {
	if hash == nil {
		hash = XXHash
	}
	return &Gate{
		hash: hash,
	}
}

func (g *Gate) Admit(clientUniqueID, packageHash string, rollout int) bool {
	switch {
	case rollout >= model.MaxRollout:
		return true
	case rollout <= model.MinRollout:
		return false
	}
	return g.Bucket(clientUniqueID, packageHash) < rollout
}

func (g *Gate) Bucket(clientUniqueID, packageHash string) int {
	key := make([]byte, 0, len(clientUniqueID)+len(packageHash)+1)
	key = append(key, clientUniqueID...)
	key = append(key, ':')
	key = append(key, packageHash...)
	return int(g.hash(key) % buckets)
}
