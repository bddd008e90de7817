package service

import (
	"fmt"
	"os"
	"sync"

	"github.com/xolan/worklog/internal/config"
)

// ConfigService reads and persists the config file. The TUI saves themes
// from command goroutines, so access to the current config is locked.
type ConfigService struct {
	configPath string

	mu     sync.RWMutex
	config config.Config
}

// NewConfigService creates a new ConfigService
func NewConfigService(configPath string, cfg config.Config) *ConfigService {
	return &ConfigService{
		configPath: configPath,
		config:     cfg,
	}
}

// Get returns the current configuration
func (s *ConfigService) Get() config.Config {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.config
}

// GetPath returns the path to the config file
func (s *ConfigService) GetPath() string {
	return s.configPath
}

// Exists checks if the config file exists
func (s *ConfigService) Exists() bool {
	_, err := os.Stat(s.configPath)
	return err == nil
}

// Update validates cfg, writes it to disk and makes it current.
func (s *ConfigService) Update(cfg config.Config) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.update(cfg)
}

func (s *ConfigService) update(cfg config.Config) error {
	cfg.Normalize()
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	if err := cfg.Save(s.configPath); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	s.config = cfg
	return nil
}

// SetTheme persists a new TUI theme.
func (s *ConfigService) SetTheme(theme string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	cfg := s.config
	cfg.Theme = theme
	return s.update(cfg)
}

// Init creates a sample config file
func (s *ConfigService) Init() error {
	if s.Exists() {
		return fmt.Errorf("config file already exists at %s", s.configPath)
	}

	if err := os.WriteFile(s.configPath, []byte(config.GenerateSampleConfig()), 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// Reload re-reads the config file, falling back to defaults when it is missing.
func (s *ConfigService) Reload() error {
	cfg, err := config.LoadOrDefault(s.configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	s.mu.Lock()
	s.config = cfg
	s.mu.Unlock()
	return nil
}
