package rollout

import (
	"encoding/binary"
	"fmt"
	"hash/fnv"

	"github.com/cespare/xxhash/v2"
	"github.com/minio/sha256-simd"
)

const (
	StrategyXXHash = "xxhash"
	StrategyFNV    = "fnv"
	StrategySHA256 = "sha256"
)

// HashFunc maps a bucketing key to a uniformly distributed integer.
type HashFunc func(key []byte) uint64

func XXHash(key []byte) uint64 {
	return xxhash.Sum64(key)
}

func FNV(key []byte) uint64 {
	h := fnv.New64a()
	_, _ = h.Write(key)
	return h.Sum64()
}

func SHA256(key []byte) uint64 {
	sum := sha256.Sum256(key)
	return binary.BigEndian.Uint64(sum[:8])
}

var strategies = map[string]HashFunc{
	"":             XXHash,
	StrategyXXHash: XXHash,
	StrategyFNV:    FNV,
	StrategySHA256: SHA256,
}

func Strategy(name string) (HashFunc, error) {
	h, ok := strategies[name]
	if !ok {
		return nil, fmt.Errorf("unknown rollout strategy %q", name)
	}
	return h, nil
}
