package app

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/five82/pawprint/internal/adopt"
	"github.com/five82/pawprint/internal/breeds"
	"github.com/five82/pawprint/internal/cache"
	"github.com/five82/pawprint/internal/catalog"
	"github.com/five82/pawprint/internal/config"
	"github.com/five82/pawprint/internal/logging"
	"github.com/five82/pawprint/internal/prefs"
	"github.com/five82/pawprint/internal/state"
	"github.com/five82/pawprint/internal/ui"
)

// Options configure the pawprint TUI.
type Options struct {
	ConfigPath string
	PrefsPath  string // empty uses default ~/.config/pawprint/prefs.toml
	APIURL     string // overrides api_url from the config file
	Verbose    bool   // log at debug regardless of config
}

// Services are the long-lived collaborators shared by the TUI and the CLI.
type Services struct {
	Config   config.Config
	Client   *adopt.Client
	Images   *cache.Cache[string]
	Finder   *breeds.Finder
	Resolver *breeds.ImageResolver
	Catalog  *catalog.Service
}

// LoadConfig reads the config file and applies an API URL override.
func LoadConfig(path, apiURL string) (config.Config, error) {
	cfg, err := config.Load(path)
	if err != nil {
		return config.Config{}, fmt.Errorf("load config: %w", err)
	}
	if v := strings.TrimSpace(apiURL); v != "" {
		cfg.APIURL = v
	}
	return cfg, nil
}

// Build wires the API client, image cache and catalog for cfg.
func Build(cfg config.Config, log *zap.Logger) (*Services, error) {
	log = logging.OrNop(log)

	client, err := adopt.NewClient(cfg.APIURL, cfg.RequestTimeout)
	if err != nil {
		return nil, fmt.Errorf("init api client: %w", err)
	}

	images := cache.New[string](cfg.ImageCache.Size, cfg.ImageCache.TTL)
	finder := breeds.NewFinder(client, log.Named("breeds"))
	resolver := breeds.NewImageResolver(finder, images, log.Named("images"))

	return &Services{
		Config:   cfg,
		Client:   client,
		Images:   images,
		Finder:   finder,
		Resolver: resolver,
		Catalog:  catalog.New(client, finder, resolver, log.Named("catalog")),
	}, nil
}

// Run boots the pawprint TUI until the user quits or the context is cancelled.
func Run(ctx context.Context, opts Options) error {
	cfg, err := LoadConfig(opts.ConfigPath, opts.APIURL)
	if err != nil {
		return err
	}

	level := cfg.Log.Level
	if opts.Verbose {
		level = "debug"
	}
	log, err := logging.New(logging.Options{Path: cfg.Log.File, Level: level})
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	svc, err := Build(cfg, log)
	if err != nil {
		return err
	}

	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}
	userPrefs, _ := prefs.Load(prefsPath)

	store := &state.Store{}
	StartPoller(ctx, store, svc.Catalog, cfg.Refresh, log.Named("poller"))

	log.Info("pawprint started",
		zap.String("api", svc.Client.BaseURL()),
		zap.Duration("refresh", cfg.Refresh))

	return ui.Run(ui.Options{
		Context:   ctx,
		Catalog:   svc.Catalog,
		Store:     store,
		Log:       log.Named("ui"),
		Config:    cfg,
		Prefs:     userPrefs,
		PrefsPath: prefsPath,
	})
}
