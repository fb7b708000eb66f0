package config

import "time"

type (
	Config struct {
		Server     ServerConfig     `mapstructure:"server"`
		Log        LogConfig        `mapstructure:"log"`
		Registry   Registration     `mapstructure:"registry"`
		Database   DatabaseConfig   `mapstructure:"database"`
		Redis      RedisConfig      `mapstructure:"redis"`
		Rollout    RolloutConfig    `mapstructure:"rollout"`
		Cache      CacheConfig      `mapstructure:"cache"`
		Distribute DistributeConfig `mapstructure:"distribute"`
		Extra      ExtraConfig      `mapstructure:"extra"`
	}
	ServerConfig struct {
		Port int `mapstructure:"port"`
	}

	// Registration points at a nacos config server, remote config is skipped when Host is empty
	Registration struct {
		Host        string `mapstructure:"host"`
		Port        uint64 `mapstructure:"port"`
		GrpcPort    uint64 `mapstructure:"grpc_port"`
		NamespaceId string `mapstructure:"namespace_id"`
		Group       string `mapstructure:"group"`
		DataId      string `mapstructure:"data_id"`
		Username    string `mapstructure:"username"`
		Password    string `mapstructure:"password"`
	}

	LogConfig struct {
		Level      string `mapstructure:"level"`
		MaxSize    int    `mapstructure:"max_size"`
		MaxBackups int    `mapstructure:"max_backups"`
		MaxAge     int    `mapstructure:"max_age"`
		Compress   bool   `mapstructure:"compress"`
		// rotate into this file besides stdout
		File string `mapstructure:"file"`
	}
	DatabaseConfig struct {
		Host        string `mapstructure:"host"`
		Port        string `mapstructure:"port"`
		Username    string `mapstructure:"username"`
		Password    string `mapstructure:"password"`
		Name        string `mapstructure:"name"`
		AutoMigrate bool   `mapstructure:"auto_migrate"`
	}
	RedisConfig struct {
		Addr     string `mapstructure:"addr"`
		Username string `mapstructure:"username"`
		Password string `mapstructure:"password"`
		DB       int    `mapstructure:"db"`
	}
	RolloutConfig struct {
		// xxhash, fnv or sha256
		Strategy string `mapstructure:"strategy"`
		// report no update when the resolved package is the one the client runs
		SuppressCurrentPackage bool `mapstructure:"suppress_current_package"`
	}
	CacheConfig struct {
		HistoryTTL    time.Duration `mapstructure:"history_ttl"`
		DeploymentTTL time.Duration `mapstructure:"deployment_ttl"`
		MaxEntries    int64         `mapstructure:"max_entries"`
	}
	DistributeConfig struct {
		// none, cdn, wrr or s3
		Type                  string        `mapstructure:"type"`
		DownloadPrefix        []string      `mapstructure:"download_prefix"`
		DownloadEffectiveTime time.Duration `mapstructure:"download_effective_time"`
		CdnPrefix             string        `mapstructure:"cdn_prefix"`
		PrivateKey            string        `mapstructure:"private_key"`
		S3                    S3Config      `mapstructure:"s3"`
	}
	S3Config struct {
		Endpoint       string        `mapstructure:"endpoint"`
		Region         string        `mapstructure:"region"`
		Bucket         string        `mapstructure:"bucket"`
		AccessKey      string        `mapstructure:"access_key"`
		SecretKey      string        `mapstructure:"secret_key"`
		PresignExpires time.Duration `mapstructure:"presign_expires"`
	}
	ExtraConfig struct {
		SqlDebugMode bool `mapstructure:"sql_debug_mode"`
	}
)
