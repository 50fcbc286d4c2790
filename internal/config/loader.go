package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"adsd/internal/common/fsutil"
)

// AdConfig holds per-kind display settings.
// Zero values mean "unspecified" and will be replaced by defaults in main.
type AdConfig struct {
	DurationMS   int    `json:"duration_ms" yaml:"duration_ms" toml:"duration_ms"`
	AutoClose    bool   `json:"auto_close" yaml:"auto_close" toml:"auto_close"`
	ShowTimeLeft bool   `json:"show_time_left" yaml:"show_time_left" toml:"show_time_left"`
	Background   string `json:"background" yaml:"background" toml:"background"`
	Text         string `json:"text" yaml:"text" toml:"text"`
	Image        string `json:"image" yaml:"image" toml:"image"`
}

// RewardConfig holds the rewarded-ad reward settings.
type RewardConfig struct {
	Amount int    `json:"amount" yaml:"amount" toml:"amount"`
	Kind   string `json:"kind" yaml:"kind" toml:"kind"`
}

// Config holds runtime parameters for the daemon.
type Config struct {
	Addr          string       `json:"addr" yaml:"addr" toml:"addr"`
	LogLevel      string       `json:"log_level" yaml:"log_level" toml:"log_level"`
	TickMS        int          `json:"tick_ms" yaml:"tick_ms" toml:"tick_ms"`
	LoadingTimeMS int          `json:"loading_time_ms" yaml:"loading_time_ms" toml:"loading_time_ms"`
	Interstitial  AdConfig     `json:"interstitial" yaml:"interstitial" toml:"interstitial"`
	Rewarded      AdConfig     `json:"rewarded" yaml:"rewarded" toml:"rewarded"`
	Reward        RewardConfig `json:"reward" yaml:"reward" toml:"reward"`
}

// Load reads a configuration file based on its extension.
// Supports: .yaml/.yml, .json, .toml
func Load(path string) (Config, error) {
	var cfg Config
	if path == "" {
		return cfg, fmt.Errorf("empty config path")
	}
	path, err := fsutil.ExpandHome(path)
	if err != nil {
		return cfg, err
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(b, &cfg); err != nil {
			return cfg, err
		}
	case ".json":
		if err := json.Unmarshal(b, &cfg); err != nil {
			return cfg, err
		}
	case ".toml":
		if err := toml.Unmarshal(b, &cfg); err != nil {
			return cfg, err
		}
	default:
		return cfg, fmt.Errorf("unsupported config extension: %s", ext)
	}
	return cfg, nil
}
