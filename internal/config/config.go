// Package config resolves tool settings from an optional YAML file plus
// environment overrides. No file is required; with nothing set the compiled
// defaults apply, and the PACRF_* environment variables always win over the
// file. Empty environment values are treated as unset.
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Remote RemoteConfig `yaml:"remote"`
	GPS    GPSConfig    `yaml:"gps"`
}

// RemoteConfig selects the ssh endpoint for remote execution. Zero values
// defer to the streamer defaults (host "pacrf", user "root", the on-device
// binary path).
type RemoteConfig struct {
	Host    string `yaml:"host"`
	User    string `yaml:"user"`
	Path    string `yaml:"path"`
	KeyFile string `yaml:"key_file"`
}

type GPSConfig struct {
	Device string        `yaml:"device"`
	Bauds  []int         `yaml:"bauds"`
	Window time.Duration `yaml:"window"`
}

// Load reads the file named by PACRF_CONFIG when set, then applies the
// environment overrides and GPS defaults.
func Load() (Config, error) {
	var cfg Config

	if path := getenv("PACRF_CONFIG"); path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("config read: %w", err)
		}
		if err := yaml.Unmarshal(b, &cfg); err != nil {
			return Config{}, fmt.Errorf("config parse: %w", err)
		}
	}

	if v := getenv("PACRF_REMOTE_HOST"); v != "" {
		cfg.Remote.Host = v
	}
	if v := getenv("PACRF_REMOTE_USER"); v != "" {
		cfg.Remote.User = v
	}
	if v := getenv("PACRF_REMOTE_PATH"); v != "" {
		cfg.Remote.Path = v
	}
	if v := getenv("PACRF_SSH_KEY"); v != "" {
		cfg.Remote.KeyFile = v
	}

	if cfg.GPS.Device == "" {
		cfg.GPS.Device = "/dev/ttyPS1"
	}
	if len(cfg.GPS.Bauds) == 0 {
		cfg.GPS.Bauds = []int{9600, 115200}
	}
	for _, b := range cfg.GPS.Bauds {
		if b <= 0 {
			return Config{}, fmt.Errorf("gps.bauds entries must be > 0")
		}
	}
	if cfg.GPS.Window <= 0 {
		cfg.GPS.Window = 2 * time.Second
	}

	return cfg, nil
}

func getenv(key string) string {
	return strings.TrimSpace(os.Getenv(key))
}
