package service

import (
	"github.com/mirrorlake/docsync/internal/config"
	"github.com/mirrorlake/docsync/internal/logger"
	"github.com/mirrorlake/docsync/internal/store"
)

type Services struct {
	Replication EndpointService
	AppInfo     AppInfoService
}

func NewServices(documents store.DocumentStore, cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	appInfo, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, err
	}

	codec := store.NewJSONCodec(cfg.Sync.PrimaryKey)

	return &Services{
		Replication: NewEndpointService(documents, codec, cfg.Endpoint.Collection, logger),
		AppInfo:     appInfo,
	}, nil
}
