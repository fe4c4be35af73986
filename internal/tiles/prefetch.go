package tiles

import (
	"context"
	"fmt"
	"sync"

	"github.com/rs/zerolog/log"
)

type result struct {
	Coord Coordinate
	Valid bool
}

// Prefetch warms the cache for style, level by level up to zoomLimit.
// Children are only queued under tiles that exist, so sparse styles stop
// early. It returns the number of tiles now available in the cache.
func (p *Proxy) Prefetch(ctx context.Context, style Style, zoomLimit, concurrency int, force bool) (int, error) {
	if !style.Valid() {
		return 0, fmt.Errorf("%w: %q", ErrUnknownStyle, style)
	}
	if p.cacheDir == "" {
		return 0, fmt.Errorf("prefetch requires a cache directory")
	}
	if zoomLimit > MaxZoom {
		zoomLimit = MaxZoom
	}
	if concurrency <= 0 {
		concurrency = 1
	}

	log.Info().
		Str("style", string(style)).
		Int("zoom_limit", zoomLimit).
		Msg("Starting tile prefetch")

	total := 0
	level := []Coordinate{{0, 0, 0}}

	for z := 0; z <= zoomLimit && len(level) > 0; z++ {
		if err := ctx.Err(); err != nil {
			return total, err
		}

		log.Debug().Int("zoom", z).Int("count", len(level)).Msg("Processing zoom level")

		valid := p.prefetchBatch(ctx, style, level, concurrency, force)
		total += len(valid)

		next := make([]Coordinate, 0, len(valid)*4)
		for _, t := range valid {
			nx, ny := t.X*2, t.Y*2
			next = append(next,
				Coordinate{Z: z + 1, X: nx, Y: ny},
				Coordinate{Z: z + 1, X: nx + 1, Y: ny},
				Coordinate{Z: z + 1, X: nx, Y: ny + 1},
				Coordinate{Z: z + 1, X: nx + 1, Y: ny + 1},
			)
		}
		level = next
	}

	log.Info().
		Str("style", string(style)).
		Int("tiles", total).
		Msg("Tile prefetch finished")

	return total, nil
}

func (p *Proxy) prefetchBatch(ctx context.Context, style Style, level []Coordinate, concurrency int, force bool) []Coordinate {
	jobs := make(chan Coordinate, len(level))
	results := make(chan result, len(level))

	for _, c := range level {
		jobs <- c
	}
	close(jobs)

	var wg sync.WaitGroup
	for i := 0; i < concurrency; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for c := range jobs {
				if ctx.Err() != nil {
					results <- result{Coord: c}
					continue
				}
				data, source := p.fetch(ctx, style, c, force)
				p.metrics.ObserveTile(string(style), source)
				results <- result{Coord: c, Valid: data != nil}
			}
		}()
	}
	wg.Wait()
	close(results)

	var valid []Coordinate
	for res := range results {
		if res.Valid {
			valid = append(valid, res.Coord)
		}
	}

	return valid
}
