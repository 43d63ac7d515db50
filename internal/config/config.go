package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	toml "github.com/pelletier/go-toml/v2"
)

// Config captures the fields the shortlist client needs.
type Config struct {
	APIBind    string
	PageSize   int
	DebounceMS int
	ThrottleMS int
}

const (
	defaultConfigPath = "~/.config/shortlist/config.toml"
	defaultAPIBind    = "127.0.0.1:7607"
	defaultPageSize   = 20
	defaultDebounceMS = 200
	defaultThrottleMS = 200
)

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		APIBind:    defaultAPIBind,
		PageSize:   defaultPageSize,
		DebounceMS: defaultDebounceMS,
		ThrottleMS: defaultThrottleMS,
	}
}

// DebounceWindow returns the search debounce window as a duration.
func (c *Config) DebounceWindow() time.Duration {
	if c.DebounceMS <= 0 {
		return time.Duration(defaultDebounceMS) * time.Millisecond
	}
	return time.Duration(c.DebounceMS) * time.Millisecond
}

// ThrottleInterval returns the scroll throttle interval as a duration.
func (c *Config) ThrottleInterval() time.Duration {
	if c.ThrottleMS <= 0 {
		return time.Duration(defaultThrottleMS) * time.Millisecond
	}
	return time.Duration(c.ThrottleMS) * time.Millisecond
}

// Load locates and parses the shortlist config, falling back to
// defaults when missing. A missing file is not an error; the client
// should work out of the box against a local item service.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		APIBind:    defaultAPIBind,
		PageSize:   defaultPageSize,
		DebounceMS: defaultDebounceMS,
		ThrottleMS: defaultThrottleMS,
	}

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var raw struct {
		APIBind    string `toml:"api_bind"`
		PageSize   int    `toml:"page_size"`
		DebounceMS int    `toml:"debounce_ms"`
		ThrottleMS int    `toml:"throttle_ms"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	if bind := strings.TrimSpace(raw.APIBind); bind != "" {
		cfg.APIBind = bind
	}
	if raw.PageSize > 0 {
		cfg.PageSize = raw.PageSize
	}
	if raw.DebounceMS > 0 {
		cfg.DebounceMS = raw.DebounceMS
	}
	if raw.ThrottleMS > 0 {
		cfg.ThrottleMS = raw.ThrottleMS
	}

	return cfg, nil
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
