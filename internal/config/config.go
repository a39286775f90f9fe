package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
)

type ListConfig struct {
	PageSize int `json:"page_size"`
}

type HeatmapConfig struct {
	LookbackDays int `json:"lookback_days"`
}

type Config struct {
	// Endpoint is the base URL of the proxy's management API.
	Endpoint string `json:"endpoint"`
	// ManagementKey is sent as a bearer token on every request. Optional.
	ManagementKey          string        `json:"management_key,omitempty"`
	RefreshIntervalSeconds int           `json:"refresh_interval_seconds"`
	List                   ListConfig    `json:"list"`
	Heatmap                HeatmapConfig `json:"heatmap"`
}

func DefaultConfig() Config {
	return Config{
		Endpoint:               "http://127.0.0.1:8317",
		RefreshIntervalSeconds: 5,
		List:                   ListConfig{PageSize: 20},
		Heatmap:                HeatmapConfig{LookbackDays: 112},
	}
}

func ConfigDir() string {
	if runtime.GOOS == "windows" {
		return filepath.Join(os.Getenv("APPDATA"), "usagedeck")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "usagedeck")
}

func ConfigPath() string {
	return filepath.Join(ConfigDir(), "config.json")
}

func Load() (Config, error) {
	return LoadFrom(ConfigPath())
}

func LoadFrom(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config: %w", err)
	}

	if err := json.Unmarshal(data, &cfg); err != nil {
		return DefaultConfig(), fmt.Errorf("parsing config %s: %w", path, err)
	}

	if cfg.Endpoint == "" {
		cfg.Endpoint = DefaultConfig().Endpoint
	}
	if cfg.RefreshIntervalSeconds <= 0 {
		cfg.RefreshIntervalSeconds = DefaultConfig().RefreshIntervalSeconds
	}
	if cfg.List.PageSize <= 0 {
		cfg.List.PageSize = DefaultConfig().List.PageSize
	}
	if cfg.Heatmap.LookbackDays <= 0 {
		cfg.Heatmap.LookbackDays = DefaultConfig().Heatmap.LookbackDays
	}

	return cfg, nil
}

func Save(cfg Config) error {
	return SaveTo(ConfigPath(), cfg)
}

func SaveTo(path string, cfg Config) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	data = append(data, '\n')

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}
