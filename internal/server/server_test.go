package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/woozymasta/snapmap/internal/config"
	"github.com/woozymasta/snapmap/internal/feature"
	"github.com/woozymasta/snapmap/internal/metrics"
	"github.com/woozymasta/snapmap/internal/prefs"
	"github.com/woozymasta/snapmap/internal/query"
	"github.com/woozymasta/snapmap/internal/tiles"

	"github.com/paulmach/orb/geojson"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeTiles struct {
	banner string
	source string
	err    error
	calls  []tiles.Coordinate
}

func (f *fakeTiles) Tile(_ context.Context, style tiles.Style, c tiles.Coordinate) (tiles.Tile, error) {
	if f.err != nil {
		return tiles.Tile{}, f.err
	}
	if !style.Valid() {
		return tiles.Tile{}, tiles.ErrUnknownStyle
	}
	f.calls = append(f.calls, c)
	return tiles.Tile{Data: []byte("RIFF"), ContentType: "image/webp", Source: f.source}, nil
}

func (f *fakeTiles) Banner() string { return f.banner }

type fixture struct {
	ctx     *ServerContext
	handler http.Handler
	tiles   *fakeTiles
	metrics *metrics.Collector
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	m, err := metrics.New(prometheus.NewRegistry())
	require.NoError(t, err)

	ft := &fakeTiles{source: tiles.SourceUpstream}
	srv := NewServerContext(config.Default(), feature.Seeds(), prefs.NewMemoryStore(), ft, m)

	return &fixture{ctx: srv, handler: srv.Routes(), tiles: ft, metrics: m}
}

func (f *fixture) do(t *testing.T, method, target string, body string, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	t.Helper()

	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	for _, c := range cookies {
		req.AddCookie(c)
	}

	rec := httptest.NewRecorder()
	f.handler.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), rec.Body.String())
	return v
}

func TestFeatures(t *testing.T) {
	f := newFixture(t)

	rec := f.do(t, http.MethodGet, "/api/features", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/geo+json", rec.Header().Get("Content-Type"))

	fc, err := geojson.UnmarshalFeatureCollection(rec.Body.Bytes())
	require.NoError(t, err)
	assert.Len(t, fc.Features, len(feature.Seeds()))

	rec = f.do(t, http.MethodGet, "/api/features?continent=Asia&category=Mountains", "")
	fc, err = geojson.UnmarshalFeatureCollection(rec.Body.Bytes())
	require.NoError(t, err)
	require.NotEmpty(t, fc.Features)
	for _, gf := range fc.Features {
		assert.Equal(t, "Asia", gf.Properties["continent"])
		assert.Equal(t, "Mountains", gf.Properties["category"])
	}

	// search ignores the selected filters
	rec = f.do(t, http.MethodGet, "/api/features?continent=Europe&q=everest", "")
	fc, err = geojson.UnmarshalFeatureCollection(rec.Body.Bytes())
	require.NoError(t, err)
	require.Len(t, fc.Features, 1)
	assert.Equal(t, "Mount Everest", fc.Features[0].Properties["name"])
}

func TestFeaturesRejectsUnknownFilters(t *testing.T) {
	f := newFixture(t)

	assert.Equal(t, http.StatusBadRequest, f.do(t, http.MethodGet, "/api/features?continent=Atlantis", "").Code)
	assert.Equal(t, http.StatusBadRequest, f.do(t, http.MethodGet, "/api/stats?category=Volcanoes", "").Code)
}

func TestSuggestions(t *testing.T) {
	f := newFixture(t)

	names := decode[[]string](t, f.do(t, http.MethodGet, "/api/suggestions?q=asia", ""))
	assert.Len(t, names, query.SuggestionLimit)
	assert.Equal(t, "Mount Everest", names[0])

	empty := f.do(t, http.MethodGet, "/api/suggestions", "")
	assert.JSONEq(t, "[]", empty.Body.String())
}

func TestStats(t *testing.T) {
	f := newFixture(t)

	st := decode[query.Stats](t, f.do(t, http.MethodGet, "/api/stats?continent=Asia", ""))
	assert.Equal(t, 7, st.Continents)
	assert.Equal(t, 10, st.Categories)
	assert.Less(t, st.Features, len(feature.Seeds()))
	assert.Positive(t, st.Features)
}

func TestNearest(t *testing.T) {
	f := newFixture(t)

	hits := decode[[]query.Hit](t, f.do(t, http.MethodGet, "/api/nearest?lat=28&lon=87&limit=2", ""))
	require.Len(t, hits, 2)
	assert.Equal(t, "Mount Everest", hits[0].Feature.Name)
	assert.LessOrEqual(t, hits[0].DistanceKm, hits[1].DistanceKm)

	for _, target := range []string{
		"/api/nearest?lat=95&lon=0",
		"/api/nearest?lat=x&lon=0",
		"/api/nearest?lat=0&lon=0&limit=0",
	} {
		assert.Equal(t, http.StatusBadRequest, f.do(t, http.MethodGet, target, "").Code, target)
	}
}

func TestBounds(t *testing.T) {
	f := newFixture(t)

	corners := decode[[2]feature.LatLng](t, f.do(t, http.MethodGet, "/api/bounds?continent=Europe", ""))
	assert.Equal(t, [2]feature.LatLng{{35, -10}, {70, 60}}, corners)

	world := decode[[2]feature.LatLng](t, f.do(t, http.MethodGet, "/api/bounds?continent=Atlantis", ""))
	assert.Equal(t, [2]feature.LatLng{{-90, -180}, {90, 180}}, world)
}

func TestOptions(t *testing.T) {
	f := newFixture(t)

	opts := decode[Options](t, f.do(t, http.MethodGet, "/api/options", ""))
	assert.Equal(t, Option{Value: "All", Label: "All Continents"}, opts.Continents[0])
	assert.Equal(t, Option{Value: "All", Label: "All Features"}, opts.Categories[0])
	assert.Len(t, opts.Continents, 8)
	assert.Len(t, opts.Categories, 11)
	assert.Len(t, opts.Styles, len(tiles.Styles))
	assert.Contains(t, opts.Styles, Option{Value: "openstreetmap", Label: "OpenStreetMap"})
}

func TestPreferencesRoundTrip(t *testing.T) {
	f := newFixture(t)

	first := f.do(t, http.MethodGet, "/api/preferences", "")
	require.Equal(t, http.StatusOK, first.Code)
	assert.Equal(t, prefs.Defaults(), decode[prefs.Preferences](t, first))

	cookies := first.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, clientCookie, cookies[0].Name)

	put := f.do(t, http.MethodPut, "/api/preferences",
		`{"category":"Lakes","continent":"Asia","map":"topo"}`, cookies[0])
	require.Equal(t, http.StatusOK, put.Code)

	got := decode[prefs.Preferences](t, f.do(t, http.MethodGet, "/api/preferences", "", cookies[0]))
	assert.Equal(t, prefs.Preferences{Category: "Lakes", Continent: "Asia", Map: "topo"}, got)

	// another client still sees defaults
	other := decode[prefs.Preferences](t, f.do(t, http.MethodGet, "/api/preferences", ""))
	assert.Equal(t, prefs.Defaults(), other)
}

func TestPreferencesRejectsInvalid(t *testing.T) {
	f := newFixture(t)

	assert.Equal(t, http.StatusBadRequest,
		f.do(t, http.MethodPut, "/api/preferences", `{"category":"Volcanoes","continent":"All","map":"topo"}`).Code)
	assert.Equal(t, http.StatusBadRequest,
		f.do(t, http.MethodPut, "/api/preferences", `not json`).Code)
}

func TestStatusAndTiles(t *testing.T) {
	f := newFixture(t)

	st := decode[Status](t, f.do(t, http.MethodGet, "/api/status", ""))
	assert.Empty(t, st.TileError)

	rec := f.do(t, http.MethodGet, "/tiles/topo/1/1/0.png", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/webp", rec.Header().Get("Content-Type"))
	assert.Equal(t, []tiles.Coordinate{{Z: 1, X: 1, Y: 0}}, f.tiles.calls)

	assert.Equal(t, http.StatusNotFound, f.do(t, http.MethodGet, "/tiles/topo/1/2/0", "").Code)
	assert.Equal(t, http.StatusNotFound, f.do(t, http.MethodGet, "/tiles/neon/0/0/0", "").Code)

	f.tiles.banner = tiles.ErrorBanner
	f.tiles.source = tiles.SourceFailed
	rec = f.do(t, http.MethodGet, "/tiles/topo/0/0/0", "")
	assert.Equal(t, "no-store", rec.Header().Get("Cache-Control"))

	st = decode[Status](t, f.do(t, http.MethodGet, "/api/status", ""))
	assert.Equal(t, tiles.ErrorBanner, st.TileError)

	f.tiles.err = errors.New("boom")
	assert.Equal(t, http.StatusInternalServerError, f.do(t, http.MethodGet, "/tiles/topo/0/0/0", "").Code)
}

func TestIndexETag(t *testing.T) {
	f := newFixture(t)

	rec := f.do(t, http.MethodGet, "/", "")
	require.Equal(t, http.StatusOK, rec.Code)
	etag := rec.Header().Get("ETag")
	require.NotEmpty(t, etag)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("If-None-Match", etag)
	cached := httptest.NewRecorder()
	f.handler.ServeHTTP(cached, req)
	assert.Equal(t, http.StatusNotModified, cached.Code)

	assert.Equal(t, http.StatusNotFound, f.do(t, http.MethodGet, "/nowhere", "").Code)
}

func TestRequestMetrics(t *testing.T) {
	f := newFixture(t)

	f.do(t, http.MethodGet, "/api/stats", "")
	f.do(t, http.MethodGet, "/api/stats?continent=Atlantis", "")

	assert.Equal(t, 1.0, testutil.ToFloat64(f.metrics.Requests.WithLabelValues("GET /api/stats", "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(f.metrics.Requests.WithLabelValues("GET /api/stats", "400")))
	assert.Equal(t, float64(len(feature.Seeds())), testutil.ToFloat64(f.metrics.DatasetSize))

	rec := f.do(t, http.MethodGet, "/metrics", "")
	assert.Contains(t, rec.Body.String(), "snapmap_http_requests_total")
}

func TestCancelledTileIsNotCached(t *testing.T) {
	f := newFixture(t)
	f.tiles.source = tiles.SourceCancelled

	rec := f.do(t, http.MethodGet, "/tiles/topo/0/0/0", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "no-store", rec.Header().Get("Cache-Control"))

	st := decode[Status](t, f.do(t, http.MethodGet, "/api/status", ""))
	assert.Empty(t, st.TileError)
}
