package config

import (
	"log"
	"strings"

	"github.com/fsnotify/fsnotify"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

var (
	GConfig *Config
	vp      *viper.Viper
)

// New loads .env, the local config file and, when a registry is configured,
// the remote nacos config. Local file changes are watched afterwards.
func New() *Config {
	if err := godotenv.Load(); err != nil {
		log.Printf("no .env file loaded, %v\n", err)
	}

	vp = loadLocalConfig()

	GConfig = new(Config)
	if err := vp.Unmarshal(GConfig); err != nil {
		log.Fatalf("Failed to unmarshal config file, %v", err)
	}
	takeSnapshot()

	if GConfig.Registry.Host != "" {
		loadRemoteConfig()
	}

	watchLocalConfig()
	return GConfig
}

func loadLocalConfig() *viper.Viper {
	v := viper.New()
	setDefaults(v)

	v.SetConfigName(DefaultConfigName)
	v.SetConfigType(DefaultConfigType)
	v.AddConfigPath(".")
	v.AddConfigPath("config")

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		log.Fatalf("Failed to read config file, %v", err)
	}
	return v
}

func setDefaults(v *viper.Viper) {
	v.SetDefault(ServerPortKey, DefaultPort)
	v.SetDefault(LogLevelKey, "info")
	v.SetDefault(RolloutStrategyKey, "xxhash")
	v.SetDefault(CacheHistoryTTLKey, DefaultHistoryTTL)
	v.SetDefault(CacheDeploymentTTLKey, DefaultDeploymentTTL)
	v.SetDefault(CacheMaxEntriesKey, DefaultMaxEntries)
	v.SetDefault(DistributeTypeKey, "none")
	v.SetDefault(DownloadEffectiveTimeKey, DefaultEffectiveTime)
	v.SetDefault(PresignExpiresKey, DefaultPresignExpires)
	v.SetDefault(RegistryGroupKey, DefaultRegistryGroup)
}

func watchLocalConfig() {
	vp.OnConfigChange(func(e fsnotify.Event) {
		if !e.Has(fsnotify.Write) && !e.Has(fsnotify.Create) {
			return
		}
		log.Printf("config file changed, %s\n", e.Name)
		// viper replaced its config layer, put the remote overrides back
		triggerUpdate(func() error {
			if remoteContent == "" {
				return nil
			}
			return vp.MergeConfig(strings.NewReader(remoteContent))
		})
	})
	vp.WatchConfig()
}
