// Command loader prefetches map tiles into the proxy cache so the viewer
// works offline for the configured zoom range.
package main

import (
	"context"
	"crypto/tls"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/woozymasta/snapmap/internal/config"
	"github.com/woozymasta/snapmap/internal/logger"
	"github.com/woozymasta/snapmap/internal/tiles"

	"github.com/jessevdk/go-flags"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

type Options struct {
	Logger logger.Logger `group:"Logger options"`

	ConfigFile  string   `short:"c" long:"config"      env:"CONFIG_FILE"  description:"Path to configuration file" default:"config.yaml"`
	TileKey     string   `short:"k" long:"tile-key"    env:"MAPTILER_KEY" description:"Tile provider API key"`
	Styles      []string `short:"s" long:"style"       env:"STYLES" env-delim:"," description:"Map styles to prefetch (default: outdoor)"`
	Concurrency int      `short:"p" long:"concurrency" env:"CONCURRENCY"  description:"Concurrency" default:"16"`
	ZoomLimit   int      `short:"z" long:"zoom-limit"  env:"ZOOM_LIMIT"   description:"Tiles zoom limit, overrides config"`
	Force       bool     `short:"f" long:"force"       description:"Force overwrite of existing files"`
}

func main() {
	_ = godotenv.Load()

	var opts Options
	parser := flags.NewParser(&opts, flags.Default)
	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	opts.Logger.Setup()

	cfg, err := config.Load(opts.ConfigFile)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}
	if opts.TileKey != "" {
		cfg.Tiles.Key = opts.TileKey
	}
	if opts.ZoomLimit > 0 {
		cfg.Tiles.ZoomLimit = opts.ZoomLimit
	}

	client := &http.Client{
		Transport: &http.Transport{
			TLSNextProto:        make(map[string]func(string, *tls.Conn) http.RoundTripper),
			MaxIdleConns:        100,
			MaxIdleConnsPerHost: 100,
		},
		Timeout: 15 * time.Second,
	}

	proxy, err := tiles.NewProxy(tiles.Options{
		Client:      client,
		URLTemplate: cfg.Tiles.URL,
		APIKey:      cfg.Tiles.Key,
		CacheDir:    cfg.Tiles.CacheDir,
		Quality:     cfg.Tiles.Quality,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create tile proxy")
	}

	// Filter styles, skipping duplicates and unknown names
	styles := make([]tiles.Style, 0, len(opts.Styles))
	seen := make(map[tiles.Style]bool)
	for _, name := range opts.Styles {
		st := tiles.Style(name)
		if seen[st] {
			continue
		}
		seen[st] = true

		if !st.Valid() {
			log.Error().Str("style", name).Msg("Unknown map style specified in --style")
			continue
		}
		styles = append(styles, st)
	}
	if len(opts.Styles) == 0 {
		styles = append(styles, tiles.DefaultStyle)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.Info().
		Int("styles_queued", len(styles)).
		Int("zoom_limit", cfg.Tiles.ZoomLimit).
		Str("cache_dir", cfg.Tiles.CacheDir).
		Msg("Starting loader")

	for _, st := range styles {
		n, err := proxy.Prefetch(ctx, st, cfg.Tiles.ZoomLimit, opts.Concurrency, opts.Force)
		if err != nil {
			log.Error().Err(err).Str("style", string(st)).Int("tiles", n).Msg("Failed to prefetch tiles")
			continue
		}
		if proxy.Banner() != "" {
			log.Warn().Str("style", string(st)).Msg("Some tiles failed to load")
		}
	}

	log.Info().Msg("Loader finished successfully")
}
