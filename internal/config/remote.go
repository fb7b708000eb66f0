package config

import (
	"log"
	"strings"

	"github.com/nacos-group/nacos-sdk-go/v2/clients"
	"github.com/nacos-group/nacos-sdk-go/v2/clients/config_client"
	"github.com/nacos-group/nacos-sdk-go/v2/common/constant"
	"github.com/nacos-group/nacos-sdk-go/v2/vo"
)

// last content pulled from nacos
var remoteContent string

func loadRemoteConfig() {
	var (
		cfg    = GConfig.Registry
		client = newNacosConfigClient(cfg)
		param  = vo.ConfigParam{
			DataId: remoteDataId(cfg),
			Group:  cfg.Group,
		}
	)

	content, err := client.GetConfig(param)
	if err != nil {
		log.Fatalf("Failed to load remote config, %v", err)
	}
	triggerUpdate(func() error {
		remoteContent = content
		return vp.MergeConfig(strings.NewReader(content))
	})

	param.OnChange = func(namespace, group, dataId, data string) {
		log.Printf("Remote Config Update %s/%s\n", group, dataId)
		triggerUpdate(func() error {
			remoteContent = data
			return vp.MergeConfig(strings.NewReader(data))
		})
	}
	if err := client.ListenConfig(param); err != nil {
		log.Fatalf("Failed to listen remote config, %v", err)
	}
}

func newNacosConfigClient(cfg Registration) config_client.IConfigClient {
	sc := []constant.ServerConfig{
		{
			IpAddr:   cfg.Host,
			Port:     cfg.Port,
			GrpcPort: cfg.GrpcPort,
		},
	}
	cc := constant.ClientConfig{
		NamespaceId:         cfg.NamespaceId,
		Username:            cfg.Username,
		Password:            cfg.Password,
		TimeoutMs:           5000,
		NotLoadCacheAtStart: true,
		LogLevel:            "warn",
	}

	client, err := clients.NewConfigClient(vo.NacosClientParam{
		ClientConfig:  &cc,
		ServerConfigs: sc,
	})
	if err != nil {
		log.Fatalf("Failed to create nacos client, %v", err)
	}
	return client
}

func remoteDataId(cfg Registration) string {
	if cfg.DataId != "" {
		return cfg.DataId
	}
	return ServiceName + "." + DefaultConfigType
}
