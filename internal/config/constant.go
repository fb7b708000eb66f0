package config

import "time"

const (
	DefaultPort       = 8000
	DefaultConfigName = "config"
	DefaultConfigType = "yaml"
	EnvPrefix         = "OTA"
	ServiceName       = "ota-backend"
)

const (
	ServerPortKey            = "server.port"
	LogLevelKey              = "log.level"
	RolloutStrategyKey       = "rollout.strategy"
	CacheHistoryTTLKey       = "cache.history_ttl"
	CacheDeploymentTTLKey    = "cache.deployment_ttl"
	CacheMaxEntriesKey       = "cache.max_entries"
	DistributeTypeKey        = "distribute.type"
	DownloadEffectiveTimeKey = "distribute.download_effective_time"
	PresignExpiresKey        = "distribute.s3.presign_expires"
	RegistryGroupKey         = "registry.group"
)

const (
	DefaultHistoryTTL     = 10 * time.Minute
	DefaultDeploymentTTL  = time.Hour
	DefaultMaxEntries     = 10000
	DefaultEffectiveTime  = 10 * time.Minute
	DefaultPresignExpires = 15 * time.Minute
	DefaultRegistryGroup  = "DEFAULT_GROUP"
)
