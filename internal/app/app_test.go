package app

import (
	"context"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/five82/pawprint/internal/adopt"
	"github.com/five82/pawprint/internal/fixture"
)

func TestLoadConfig_APIOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	if err := os.WriteFile(path, []byte("api_url = \"http://pets.example:9000\"\npage_size = 20\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path, "")
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.APIURL != "http://pets.example:9000" || cfg.PageSize != 20 {
		t.Fatalf("config = %+v", cfg)
	}

	cfg, err = LoadConfig(path, "  http://127.0.0.1:8081 ")
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.APIURL != "http://127.0.0.1:8081" {
		t.Fatalf("APIURL = %q, want override", cfg.APIURL)
	}
}

func TestLoadConfig_BadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("sort = \"weight,asc\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadConfig(path, ""); err == nil {
		t.Fatal("expected error for invalid sort")
	}
}

func TestBuild_WiresCatalogToAPI(t *testing.T) {
	srv := httptest.NewServer(fixture.NewRouter(fixture.Options{}))
	defer srv.Close()

	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "absent.toml"), srv.URL)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	svc, err := Build(cfg, nil)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	ctx := context.Background()
	listing := svc.Catalog.LoadPets(ctx, adopt.PetQuery{Size: 5, Sort: adopt.DefaultSort})
	if listing.Degraded || listing.Err != nil {
		t.Fatalf("listing degraded: %v", listing.Err)
	}
	if listing.Page.Total != len(fixture.Pets()) || len(listing.Page.Items) != 5 {
		t.Fatalf("page = %d items of %d", len(listing.Page.Items), listing.Page.Total)
	}

	buddy, err := svc.Catalog.Pet(ctx, fixture.PetID("Buddy"))
	if err != nil {
		t.Fatalf("Pet: %v", err)
	}
	info, ok := svc.Catalog.BreedInfo(ctx, buddy.Species, buddy.Breed)
	if !ok || info.ImageURL == "" {
		t.Fatalf("expected a breed image for Buddy, got %+v", info)
	}
	if svc.Images.Len() != 1 {
		t.Fatalf("image cache holds %d entries, want 1", svc.Images.Len())
	}
}

func TestBuild_RejectsBadURL(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "absent.toml"), "://nope")
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if _, err := Build(cfg, nil); err == nil {
		t.Fatal("expected error for invalid api url")
	}
}
