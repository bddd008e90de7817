package service

import (
	"github.com/xolan/worklog/internal/config"
	"github.com/xolan/worklog/internal/storage"
)

// Services holds all service instances used by the application
type Services struct {
	Entry   *EntryService
	Summary *SummaryService
	Config  *ConfigService
}

// NewServices wires the services around an already opened store.
// configPath is where ConfigService persists changes.
func NewServices(store storage.Store, cfg config.Config, configPath string) *Services {
	return &Services{
		Entry:   NewEntryService(store, cfg.Rules()),
		Summary: NewSummaryService(store, cfg.TargetMinutes),
		Config:  NewConfigService(configPath, cfg),
	}
}
