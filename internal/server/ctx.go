package server

import (
	"context"
	"net/http"

	"github.com/woozymasta/snapmap/assets"
	"github.com/woozymasta/snapmap/internal/config"
	"github.com/woozymasta/snapmap/internal/feature"
	"github.com/woozymasta/snapmap/internal/metrics"
	"github.com/woozymasta/snapmap/internal/prefs"
	"github.com/woozymasta/snapmap/internal/tiles"

	"github.com/rs/zerolog/log"
)

// TileSource serves proxied tiles and reports the tile error banner.
type TileSource interface {
	Tile(ctx context.Context, style tiles.Style, c tiles.Coordinate) (tiles.Tile, error)
	Banner() string
}

// ServerContext holds dependencies for request handlers.
type ServerContext struct {
	Config      *config.Config
	Features    feature.Collection
	Preferences prefs.Store
	Tiles       TileSource
	Metrics     *metrics.Collector
	IndexHTML   []byte
	Favicon     []byte
}

// NewServerContext wires the loaded dataset and backends into a context.
// The collection is shared read-only by every request.
func NewServerContext(
	cfg *config.Config,
	features feature.Collection,
	store prefs.Store,
	tileSource TileSource,
	m *metrics.Collector,
) *ServerContext {
	m.SetDatasetSize(len(features))

	log.Info().
		Int("features", len(features)).
		Int("continents", len(features.Continents())).
		Int("categories", len(features.Categories())).
		Str("preferences", cfg.Preferences.Backend).
		Msg("Server context initialized successfully")

	return &ServerContext{
		Config:      cfg,
		Features:    features,
		Preferences: store,
		Tiles:       tileSource,
		Metrics:     m,
		IndexHTML:   assets.Index,
		Favicon:     assets.Favicon,
	}
}

// Routes registers every handler and wraps the mux with request logging.
func (s *ServerContext) Routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/features", s.HandleFeatures)
	mux.HandleFunc("GET /api/suggestions", s.HandleSuggestions)
	mux.HandleFunc("GET /api/stats", s.HandleStats)
	mux.HandleFunc("GET /api/nearest", s.HandleNearest)
	mux.HandleFunc("GET /api/bounds", s.HandleBounds)
	mux.HandleFunc("GET /api/options", s.HandleOptions)
	mux.HandleFunc("GET /api/preferences", s.HandleGetPreferences)
	mux.HandleFunc("PUT /api/preferences", s.HandlePutPreferences)
	mux.HandleFunc("GET /api/status", s.HandleStatus)
	mux.HandleFunc("GET /tiles/{style}/{z}/{x}/{y}", s.HandleTile)
	mux.Handle("GET /metrics", s.Metrics.Handler())
	mux.HandleFunc("GET /favicon.svg", s.HandleFavicon)
	mux.HandleFunc("GET /{$}", s.HandleIndex)

	return RequestLogger(mux, s.Metrics)
}
