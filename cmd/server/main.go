package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/woozymasta/snapmap/internal/config"
	"github.com/woozymasta/snapmap/internal/feature"
	"github.com/woozymasta/snapmap/internal/logger"
	"github.com/woozymasta/snapmap/internal/metrics"
	"github.com/woozymasta/snapmap/internal/prefs"
	"github.com/woozymasta/snapmap/internal/server"
	"github.com/woozymasta/snapmap/internal/tiles"

	"github.com/jessevdk/go-flags"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

type Options struct {
	Logger logger.Logger `group:"Logger options"`

	ConfigFile string `short:"c" long:"config"  env:"CONFIG_FILE"    description:"Path to configuration file" default:"config.yaml"`
	Dataset    string `short:"d" long:"dataset" env:"DATASET_FILE"   description:"Override the dataset path from config"`
	TileKey    string `short:"k" long:"tile-key" env:"MAPTILER_KEY"  description:"Tile provider API key"`
	Addr       string `short:"a" long:"addr"    env:"LISTEN_ADDRESS" description:"Address to listen on"       default:"0.0.0.0"`
	Port       int    `short:"p" long:"port"    env:"LISTEN_PORT"    description:"Port to listen on"          default:"8080"`
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

	// Setup Logging
	opts.Logger.Setup()

	// Load Config
	cfg, err := config.Load(opts.ConfigFile)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}
	if opts.Dataset != "" {
		cfg.Dataset = opts.Dataset
	}
	if opts.TileKey != "" {
		cfg.Tiles.Key = opts.TileKey
	}

	features, err := feature.Load(cfg.Dataset)
	if err != nil {
		log.Fatal().Err(err).Str("path", cfg.Dataset).Msg("Failed to load dataset")
	}

	collector, err := metrics.New(nil)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to register metrics")
	}

	store, err := openStore(cfg.Preferences)
	if err != nil {
		log.Fatal().Err(err).Str("backend", cfg.Preferences.Backend).Msg("Failed to open preference store")
	}

	proxy, err := tiles.NewProxy(tiles.Options{
		Metrics:     collector,
		URLTemplate: cfg.Tiles.URL,
		APIKey:      cfg.Tiles.Key,
		CacheDir:    cfg.Tiles.CacheDir,
		Quality:     cfg.Tiles.Quality,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create tile proxy")
	}
	if cfg.Tiles.Key == "" {
		log.Warn().Msg("Tile provider key is empty, upstream tiles will likely fail")
	}

	srvCtx := server.NewServerContext(cfg, features, store, proxy, collector)

	listenAddr := fmt.Sprintf("%s:%d", opts.Addr, opts.Port)
	srv := &http.Server{
		Addr:              listenAddr,
		Handler:           srvCtx.Routes(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	log.Info().
		Str("addr", listenAddr).
		Int("features", len(features)).
		Str("tiles_cache", cfg.Tiles.CacheDir).
		Msg("Web server started")

	if err := srv.ListenAndServe(); err != nil {
		log.Fatal().Err(err).Msg("Server failed")
	}
}

func openStore(cfg config.Preferences) (prefs.Store, error) {
	switch cfg.Backend {
	case config.BackendMemory:
		return prefs.NewMemoryStore(), nil

	case config.BackendRedis:
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := client.Ping(ctx).Err(); err != nil {
			return nil, fmt.Errorf("ping redis %s: %w", cfg.Redis.Addr, err)
		}
		return prefs.NewRedisStore(client, cfg.Redis.Hash), nil

	default:
		return prefs.OpenFileStore(cfg.Path)
	}
}
