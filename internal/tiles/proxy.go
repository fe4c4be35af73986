// Package tiles proxies map tiles from an XYZ provider, caching them on disk
// as WebP and degrading to a transparent tile when the provider fails.
package tiles

import (
	"bytes"
	"context"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"sync"
	"time"

	"github.com/woozymasta/snapmap/internal/metrics"

	"github.com/chai2010/webp"
	"github.com/rs/zerolog/log"
	_ "golang.org/x/image/webp"
)

// ErrorBanner is the notice shown to viewers while tiles fail to load.
const ErrorBanner = "Failed to load map tiles. Check your internet connection."

// Sources reported by Tile and recorded in metrics.
const (
	SourceCache     = "cache"
	SourceUpstream  = "upstream"
	SourceMissing   = "missing"
	SourceFailed    = "failed"
	SourceCancelled = "cancelled"
)

// Tile is an encoded tile ready to be written to a response.
type Tile struct {
	Data        []byte
	ContentType string
	Source      string
}

// Options configures a Proxy.
type Options struct {
	Client      *http.Client
	Metrics     *metrics.Collector
	URLTemplate string
	APIKey      string
	CacheDir    string
	Quality     float32
}

// Proxy serves tiles from the disk cache or the upstream provider.
type Proxy struct {
	client      *http.Client
	metrics     *metrics.Collector
	urlTemplate string
	apiKey      string
	cacheDir    string
	quality     float32
	transparent []byte

	mu        sync.Mutex
	lastError string
}

// NewProxy builds a proxy and pre-encodes the transparent fallback tile.
func NewProxy(opts Options) (*Proxy, error) {
	if opts.URLTemplate == "" {
		return nil, fmt.Errorf("tile url template is empty")
	}
	if opts.Client == nil {
		opts.Client = &http.Client{Timeout: 15 * time.Second}
	}
	if opts.Quality <= 0 || opts.Quality > 100 {
		opts.Quality = 80
	}

	transparent, err := TransparentTile(256)
	if err != nil {
		return nil, fmt.Errorf("encode transparent tile: %w", err)
	}

	return &Proxy{
		client:      opts.Client,
		metrics:     opts.Metrics,
		urlTemplate: opts.URLTemplate,
		apiKey:      opts.APIKey,
		cacheDir:    opts.CacheDir,
		quality:     opts.Quality,
		transparent: transparent,
	}, nil
}

// TransparentTile encodes an empty size x size WebP image.
func TransparentTile(size int) ([]byte, error) {
	var buf bytes.Buffer
	img := image.NewNRGBA(image.Rect(0, 0, size, size))
	if err := webp.Encode(&buf, img, &webp.Options{Lossless: true}); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Tile returns the tile for style at c. Errors are returned only for
// invalid input; provider failures yield the transparent tile.
func (p *Proxy) Tile(ctx context.Context, style Style, c Coordinate) (Tile, error) {
	if !style.Valid() {
		return Tile{}, fmt.Errorf("%w: %q", ErrUnknownStyle, style)
	}
	if err := c.Validate(); err != nil {
		return Tile{}, err
	}

	data, source := p.fetch(ctx, style, c, false)
	p.metrics.ObserveTile(string(style), source)

	if data == nil {
		data = p.transparent
	}
	return Tile{Data: data, ContentType: "image/webp", Source: source}, nil
}

// Banner returns ErrorBanner while the most recent tile fetch failed,
// and an empty string otherwise. The state is shared by every viewer of
// the process: one failing fetch shows the notice to all of them until
// the next tile is served.
func (p *Proxy) Banner() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.lastError
}

// fetch resolves a tile through the cache, then upstream. A nil result
// means the tile is unavailable.
func (p *Proxy) fetch(ctx context.Context, style Style, c Coordinate, force bool) ([]byte, string) {
	path := p.cachePath(style, c)

	if !force && path != "" {
		if data, err := os.ReadFile(path); err == nil && len(data) > 0 {
			p.setFailed(false)
			return data, SourceCache
		}
	}

	url := BuildURL(p.urlTemplate, style, p.apiKey, c)
	data, found, err := p.download(ctx, url)
	if err != nil {
		// aborted by the caller, the provider is not at fault
		if ctx.Err() != nil {
			log.Trace().Err(err).Str("style", string(style)).Int("z", c.Z).Int("x", c.X).Int("y", c.Y).Msg("Tile request cancelled")
			return nil, SourceCancelled
		}
		log.Warn().
			Err(err).
			Str("style", string(style)).
			Str("tile", fmt.Sprintf("%d/%d/%d", c.Z, c.X, c.Y)).
			Msg("Failed to load tile")
		p.setFailed(true)
		return nil, SourceFailed
	}
	p.setFailed(false)

	if !found {
		log.Trace().Str("style", string(style)).Int("z", c.Z).Int("x", c.X).Int("y", c.Y).Msg("Tile not found")
		return nil, SourceMissing
	}

	if path != "" {
		if err := writeTile(path, data); err != nil {
			log.Error().Err(err).Str("path", path).Msg("Failed to cache tile")
		}
	}

	return data, SourceUpstream
}

// download fetches and transcodes one tile. found is false for 404s and
// empty placeholder images.
func (p *Proxy) download(ctx context.Context, url string) (data []byte, found bool, err error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, false, err
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, false, err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode == http.StatusNotFound {
		return nil, false, nil
	}
	if resp.StatusCode != http.StatusOK {
		return nil, false, fmt.Errorf("status code %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, false, err
	}

	img, _, err := image.Decode(bytes.NewReader(body))
	if err != nil {
		return nil, false, fmt.Errorf("decode tile: %w", err)
	}

	// providers answer out-of-range areas with 1px images
	if img.Bounds().Dx() <= 1 {
		return nil, false, nil
	}

	var buf bytes.Buffer
	if err := webp.Encode(&buf, img, &webp.Options{Lossless: false, Quality: p.quality}); err != nil {
		return nil, false, fmt.Errorf("encode webp: %w", err)
	}

	return buf.Bytes(), true, nil
}

func (p *Proxy) setFailed(failed bool) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if failed {
		p.lastError = ErrorBanner
		return
	}
	p.lastError = ""
}

func (p *Proxy) cachePath(style Style, c Coordinate) string {
	if p.cacheDir == "" {
		return ""
	}
	return filepath.Join(
		p.cacheDir,
		string(style),
		strconv.Itoa(c.Z),
		strconv.Itoa(c.X),
		strconv.Itoa(c.Y)+".webp",
	)
}

func writeTile(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
