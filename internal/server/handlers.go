// Package server handles HTTP requests and middleware.
package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"hash/crc32"
	"net/http"
	"strconv"

	"github.com/woozymasta/snapmap/internal/feature"
	"github.com/woozymasta/snapmap/internal/geo"
	"github.com/woozymasta/snapmap/internal/prefs"
	"github.com/woozymasta/snapmap/internal/query"
	"github.com/woozymasta/snapmap/internal/tiles"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const (
	clientCookie        = "snapmap_client"
	defaultNearestLimit = 10
	maxNearestLimit     = 100
)

// Option is a value/label pair for a select control.
type Option struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// Options lists the choices the viewer offers.
type Options struct {
	Attribution string   `json:"attribution,omitempty"`
	Continents  []Option `json:"continents"`
	Categories  []Option `json:"categories"`
	Styles      []Option `json:"styles"`
}

// Status reports transient viewer notices.
type Status struct {
	TileError string `json:"tile_error"`
}

// HandleFavicon serves the site icon.
func (s *ServerContext) HandleFavicon(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "image/svg+xml")
	w.Header().Set("Cache-Control", "public, max-age=86400")
	_, _ = w.Write(s.Favicon)
}

// HandleIndex serves the main HTML application.
func (s *ServerContext) HandleIndex(w http.ResponseWriter, r *http.Request) {
	etag := fmt.Sprintf(`"%x"`, crc32.ChecksumIEEE(s.IndexHTML))

	if match := r.Header.Get("If-None-Match"); match == etag {
		w.WriteHeader(http.StatusNotModified)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("ETag", etag)
	w.Header().Set("Cache-Control", "public, no-cache")
	_, _ = w.Write(s.IndexHTML)
}

// HandleFeatures serves the visible features as GeoJSON.
func (s *ServerContext) HandleFeatures(w http.ResponseWriter, r *http.Request) {
	f, err := parseFilter(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	visible := query.Apply(s.Features, f)
	s.Metrics.ObserveVisible(len(visible))

	writeJSON(w, "application/geo+json", geo.FeatureCollection(visible))
}

// HandleSuggestions serves autocomplete names for q.
func (s *ServerContext) HandleSuggestions(w http.ResponseWriter, r *http.Request) {
	names := query.Suggest(s.Features, r.URL.Query().Get("q"), query.SuggestionLimit)
	writeJSON(w, "", names)
}

// HandleStats serves the sidebar counters for the current filter.
func (s *ServerContext) HandleStats(w http.ResponseWriter, r *http.Request) {
	f, err := parseFilter(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	writeJSON(w, "", query.Summarize(s.Features, query.Apply(s.Features, f)))
}

// HandleNearest serves the features closest to lat/lon.
func (s *ServerContext) HandleNearest(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	lat, errLat := strconv.ParseFloat(q.Get("lat"), 64)
	lon, errLon := strconv.ParseFloat(q.Get("lon"), 64)
	at := feature.LatLng{lat, lon}
	if errLat != nil || errLon != nil || !geo.ValidLatLng(at) {
		http.Error(w, "lat and lon must be valid coordinates", http.StatusBadRequest)
		return
	}

	limit := defaultNearestLimit
	if v := q.Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			http.Error(w, "limit must be a positive integer", http.StatusBadRequest)
			return
		}
		limit = min(n, maxNearestLimit)
	}

	writeJSON(w, "", query.Nearest(s.Features, at, limit))
}

// HandleBounds serves the viewport box for a continent or All.
func (s *ServerContext) HandleBounds(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, "", feature.Corners(feature.BoundsOf(r.URL.Query().Get("continent"))))
}

// HandleOptions serves the select options and attribution.
func (s *ServerContext) HandleOptions(w http.ResponseWriter, r *http.Request) {
	opts := Options{
		Attribution: s.Config.Attribution,
		Continents:  []Option{{Value: feature.All, Label: "All Continents"}},
		Categories:  []Option{{Value: feature.All, Label: "All Features"}},
		Styles:      make([]Option, 0, len(tiles.Styles)),
	}
	for _, c := range feature.Continents {
		opts.Continents = append(opts.Continents, Option{Value: string(c), Label: string(c)})
	}
	for _, c := range feature.Categories {
		opts.Categories = append(opts.Categories, Option{Value: string(c), Label: string(c)})
	}
	for _, st := range tiles.Styles {
		opts.Styles = append(opts.Styles, Option{Value: string(st), Label: st.Label()})
	}

	writeJSON(w, "", opts)
}

// HandleGetPreferences restores the caller's saved preferences.
func (s *ServerContext) HandleGetPreferences(w http.ResponseWriter, r *http.Request) {
	store := prefs.Namespaced(s.Preferences, clientID(w, r))

	p, err := prefs.Load(r.Context(), store)
	if err != nil {
		log.Error().Err(err).Msg("Failed to load preferences")
		http.Error(w, "preferences unavailable", http.StatusInternalServerError)
		return
	}

	writeJSON(w, "", p)
}

// HandlePutPreferences overwrites the caller's saved preferences.
func (s *ServerContext) HandlePutPreferences(w http.ResponseWriter, r *http.Request) {
	var p prefs.Preferences
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, 4096)).Decode(&p); err != nil {
		http.Error(w, "invalid preferences body", http.StatusBadRequest)
		return
	}
	if p.Normalize() != p {
		http.Error(w, "unknown category, continent or map style", http.StatusBadRequest)
		return
	}

	store := prefs.Namespaced(s.Preferences, clientID(w, r))
	if err := prefs.Save(r.Context(), store, p); err != nil {
		log.Error().Err(err).Msg("Failed to save preferences")
		http.Error(w, "preferences unavailable", http.StatusInternalServerError)
		return
	}

	writeJSON(w, "", p)
}

// HandleStatus serves the tile error banner, empty while tiles load fine.
func (s *ServerContext) HandleStatus(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Cache-Control", "no-store")
	writeJSON(w, "", Status{TileError: s.Tiles.Banner()})
}

// HandleTile serves a proxied map tile.
func (s *ServerContext) HandleTile(w http.ResponseWriter, r *http.Request) {
	c, err := tiles.ParseCoordinate(r.PathValue("z"), r.PathValue("x"), r.PathValue("y"))
	if err != nil {
		http.NotFound(w, r)
		return
	}

	tile, err := s.Tiles.Tile(r.Context(), tiles.Style(r.PathValue("style")), c)
	if err != nil {
		if errors.Is(err, tiles.ErrUnknownStyle) || errors.Is(err, tiles.ErrBadCoordinate) {
			http.NotFound(w, r)
			return
		}
		log.Error().Err(err).Str("path", r.URL.Path).Msg("Failed to serve tile")
		http.Error(w, "tile unavailable", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", tile.ContentType)
	if tile.Source == tiles.SourceFailed || tile.Source == tiles.SourceCancelled {
		w.Header().Set("Cache-Control", "no-store")
	} else {
		w.Header().Set("Cache-Control", "public, max-age=3600")
	}
	_, _ = w.Write(tile.Data)
}

// parseFilter reads continent, category and q, rejecting unknown enum values.
func parseFilter(r *http.Request) (query.Filter, error) {
	q := r.URL.Query()
	f := query.Filter{
		Continent: q.Get("continent"),
		Category:  q.Get("category"),
		Search:    q.Get("q"),
	}

	if f.Continent != "" && f.Continent != feature.All && !feature.Continent(f.Continent).Valid() {
		return f, fmt.Errorf("unknown continent %q", f.Continent)
	}
	if f.Category != "" && f.Category != feature.All && !feature.Category(f.Category).Valid() {
		return f, fmt.Errorf("unknown category %q", f.Category)
	}

	return f, nil
}

// clientID returns the caller's id cookie, issuing a new one when missing.
func clientID(w http.ResponseWriter, r *http.Request) string {
	if c, err := r.Cookie(clientCookie); err == nil {
		if id, err := uuid.Parse(c.Value); err == nil {
			return id.String()
		}
	}

	id := uuid.NewString()
	http.SetCookie(w, &http.Cookie{
		Name:     clientCookie,
		Value:    id,
		Path:     "/",
		MaxAge:   365 * 24 * 60 * 60,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return id
}

func writeJSON(w http.ResponseWriter, contentType string, v any) {
	if contentType == "" {
		contentType = "application/json"
	}
	w.Header().Set("Content-Type", contentType)
	// Ignoring error as we cannot handle client disconnects
	_ = json.NewEncoder(w).Encode(v)
}
