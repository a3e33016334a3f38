package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/five82/pawprint/internal/adopt"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	return path
}

func TestLoad_MissingConfigFallsBackToDefaults(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	cfg, err := Load(filepath.Join(home, "does-not-exist.toml"))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.APIURL != adopt.DefaultBaseURL {
		t.Fatalf("APIURL = %q, want %q", cfg.APIURL, adopt.DefaultBaseURL)
	}
	if cfg.PageSize != 10 || cfg.BreedPageSize != 12 {
		t.Fatalf("page sizes = %d/%d, want 10/12", cfg.PageSize, cfg.BreedPageSize)
	}
	if cfg.Debounce != 500*time.Millisecond || cfg.Refresh != 0 || cfg.RequestTimeout != 5*time.Second {
		t.Fatalf("durations = %v/%v/%v", cfg.Debounce, cfg.Refresh, cfg.RequestTimeout)
	}
	if cfg.Sort != adopt.DefaultSort {
		t.Fatalf("Sort = %v, want %v", cfg.Sort, adopt.DefaultSort)
	}
	if cfg.ImageCache.Size != 256 || cfg.ImageCache.TTL != time.Hour {
		t.Fatalf("ImageCache = %+v", cfg.ImageCache)
	}

	wantLog, err := ExpandPath(defaultLogFile)
	if err != nil {
		t.Fatalf("ExpandPath(defaultLogFile) returned error: %v", err)
	}
	if cfg.Log.File != wantLog || cfg.Log.Level != "info" {
		t.Fatalf("Log = %+v, want file %q at info", cfg.Log, wantLog)
	}
}

func TestLoad_ParsesAndTrimsConfig(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	path := writeConfig(t, `
api_url = "  http://pets.local:9000  "
page_size = 25
breed_page_size = 500
sort = "name,asc"
debounce_ms = 0
refresh_seconds = 30
request_timeout_seconds = 2

[image_cache]
size = 64
ttl_minutes = 0

[log]
file = "  ~/logs/pawprint.log  "
level = "DEBUG"
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.APIURL != "http://pets.local:9000" {
		t.Fatalf("APIURL = %q", cfg.APIURL)
	}
	if cfg.PageSize != 25 || cfg.BreedPageSize != maxPageSize {
		t.Fatalf("page sizes = %d/%d, want 25/%d", cfg.PageSize, cfg.BreedPageSize, maxPageSize)
	}
	if cfg.Sort != (adopt.Sort{Field: "name"}) {
		t.Fatalf("Sort = %v, want name,asc", cfg.Sort)
	}
	if cfg.Debounce != 0 || cfg.Refresh != 30*time.Second || cfg.RequestTimeout != 2*time.Second {
		t.Fatalf("durations = %v/%v/%v", cfg.Debounce, cfg.Refresh, cfg.RequestTimeout)
	}
	if cfg.ImageCache.Size != 64 || cfg.ImageCache.TTL != 0 {
		t.Fatalf("ImageCache = %+v, want size 64 without expiry", cfg.ImageCache)
	}
	if !strings.HasPrefix(cfg.Log.File, home) || cfg.Log.Level != "debug" {
		t.Fatalf("Log = %+v, want file under HOME %q at debug", cfg.Log, home)
	}
}

func TestLoad_EmptyValuesUseDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	path := writeConfig(t, `
api_url = "   "
page_size = 0
sort = ""
request_timeout_seconds = -3

[log]
file = ""
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	def := Default()
	if cfg.APIURL != def.APIURL || cfg.PageSize != def.PageSize || cfg.Sort != def.Sort {
		t.Fatalf("cfg = %+v, want defaults", cfg)
	}
	if cfg.RequestTimeout != def.RequestTimeout || cfg.Log.File != def.Log.File {
		t.Fatalf("cfg = %+v, want defaults", cfg)
	}
}

func TestLoad_InvalidTOMLFails(t *testing.T) {
	_, err := Load(writeConfig(t, `api_url = [`))
	if err == nil {
		t.Fatalf("Load returned nil error, want parse error")
	}
	if !strings.Contains(err.Error(), "parse config") {
		t.Fatalf("Load error = %q, want it to mention parse config", err.Error())
	}
}

func TestLoad_InvalidSortFails(t *testing.T) {
	_, err := Load(writeConfig(t, `sort = "weight,asc"`))
	if !errors.Is(err, adopt.ErrInvalidSort) {
		t.Fatalf("Load error = %v, want ErrInvalidSort", err)
	}
}

func TestExpandPath_ExpandsTildeAndReturnsAbs(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	got, err := ExpandPath("~/a/b")
	if err != nil {
		t.Fatalf("ExpandPath returned error: %v", err)
	}
	want := filepath.Join(home, "a/b")
	if got != want {
		t.Fatalf("ExpandPath = %q, want %q", got, want)
	}
}

func TestExpandPath_EmptyErrors(t *testing.T) {
	if _, err := ExpandPath("   "); err == nil {
		t.Fatalf("ExpandPath returned nil error, want error")
	}
}
