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

	"github.com/five82/pawprint/internal/adopt"
)

// Config holds pawprint's runtime settings.
type Config struct {
	APIURL         string
	PageSize       int
	BreedPageSize  int
	Sort           adopt.Sort
	Debounce       time.Duration
	Refresh        time.Duration // zero disables background refresh
	RequestTimeout time.Duration
	ImageCache     ImageCacheConfig
	Log            LogConfig
}

// ImageCacheConfig bounds the breed image cache.
type ImageCacheConfig struct {
	Size int
	TTL  time.Duration // zero disables expiry
}

// LogConfig locates the TUI log file.
type LogConfig struct {
	File  string
	Level string
}

const (
	defaultConfigPath     = "~/.config/pawprint/config.toml"
	defaultLogFile        = "~/.local/state/pawprint/pawprint.log"
	defaultLogLevel       = "info"
	defaultPageSize       = 10
	defaultBreedPageSize  = 12
	defaultDebounceMS     = 500
	defaultTimeoutSeconds = 5
	defaultCacheSize      = 256
	defaultCacheTTLMin    = 60
	maxPageSize           = 100
)

type rawConfig struct {
	APIURL                string `toml:"api_url"`
	PageSize              int    `toml:"page_size"`
	BreedPageSize         int    `toml:"breed_page_size"`
	Sort                  string `toml:"sort"`
	DebounceMS            *int   `toml:"debounce_ms"`
	RefreshSeconds        int    `toml:"refresh_seconds"`
	RequestTimeoutSeconds int    `toml:"request_timeout_seconds"`
	ImageCache            struct {
		Size       int  `toml:"size"`
		TTLMinutes *int `toml:"ttl_minutes"`
	} `toml:"image_cache"`
	Log struct {
		File  string `toml:"file"`
		Level string `toml:"level"`
	} `toml:"log"`
}

// DefaultPath returns the config file used when none is given.
func DefaultPath() string {
	return defaultConfigPath
}

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		APIURL:         adopt.DefaultBaseURL,
		PageSize:       defaultPageSize,
		BreedPageSize:  defaultBreedPageSize,
		Sort:           adopt.DefaultSort,
		Debounce:       defaultDebounceMS * time.Millisecond,
		RequestTimeout: defaultTimeoutSeconds * time.Second,
		ImageCache: ImageCacheConfig{
			Size: defaultCacheSize,
			TTL:  defaultCacheTTLMin * time.Minute,
		},
		Log: LogConfig{File: mustExpand(defaultLogFile), Level: defaultLogLevel},
	}
}

// Load locates and parses the pawprint config, falling back to defaults when missing.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Default()

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

	var raw rawConfig
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	if v := strings.TrimSpace(raw.APIURL); v != "" {
		cfg.APIURL = v
	}
	if raw.PageSize > 0 {
		cfg.PageSize = min(raw.PageSize, maxPageSize)
	}
	if raw.BreedPageSize > 0 {
		cfg.BreedPageSize = min(raw.BreedPageSize, maxPageSize)
	}
	if v := strings.TrimSpace(raw.Sort); v != "" {
		sort, err := adopt.ParseSort(v)
		if err != nil {
			return Config{}, fmt.Errorf("parse config: sort: %w", err)
		}
		cfg.Sort = sort
	}
	if raw.DebounceMS != nil && *raw.DebounceMS >= 0 {
		cfg.Debounce = time.Duration(*raw.DebounceMS) * time.Millisecond
	}
	if raw.RefreshSeconds > 0 {
		cfg.Refresh = time.Duration(raw.RefreshSeconds) * time.Second
	}
	if raw.RequestTimeoutSeconds > 0 {
		cfg.RequestTimeout = time.Duration(raw.RequestTimeoutSeconds) * time.Second
	}
	if raw.ImageCache.Size > 0 {
		cfg.ImageCache.Size = raw.ImageCache.Size
	}
	if raw.ImageCache.TTLMinutes != nil && *raw.ImageCache.TTLMinutes >= 0 {
		cfg.ImageCache.TTL = time.Duration(*raw.ImageCache.TTLMinutes) * time.Minute
	}
	if v := strings.TrimSpace(raw.Log.File); v != "" {
		cfg.Log.File = mustExpand(v)
	}
	if v := strings.TrimSpace(raw.Log.Level); v != "" {
		cfg.Log.Level = strings.ToLower(v)
	}

	return cfg, nil
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return ExpandPath(defaultConfigPath)
	}
	return ExpandPath(path)
}

func mustExpand(path string) string {
	expanded, err := ExpandPath(path)
	if err != nil {
		return path
	}
	return expanded
}

// ExpandPath resolves a leading tilde and returns an absolute path.
func ExpandPath(path string) (string, error) {
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
