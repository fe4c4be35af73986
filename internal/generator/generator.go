// Package generator synthesizes the feature dataset: the seed set followed
// by random records with templated descriptions.
package generator

import (
	"errors"
	"fmt"
	"math/rand"
	"strconv"
	"strings"

	"github.com/woozymasta/snapmap/internal/feature"

	"github.com/rs/zerolog/log"
)

// DefaultCount is the size of a full dataset.
const DefaultCount = 1000

// ErrCountTooSmall is returned when the requested size cannot hold the seeds.
var ErrCountTooSmall = errors.New("count is smaller than the seed set")

// Generator builds datasets from an injected random source.
type Generator struct {
	rng   *rand.Rand
	seeds feature.Collection
	count int
}

// New returns a generator producing count records, starting with seeds.
func New(rng *rand.Rand, seeds feature.Collection, count int) (*Generator, error) {
	if rng == nil {
		return nil, errors.New("random source is required")
	}
	if count < len(seeds) {
		return nil, fmt.Errorf("%w: %d < %d", ErrCountTooSmall, count, len(seeds))
	}

	return &Generator{rng: rng, seeds: seeds, count: count}, nil
}

// Generate returns the full ordered dataset. Ids of synthetic records continue
// from the seed set size, so seeds must use ids 1..len(seeds).
func (g *Generator) Generate() feature.Collection {
	out := make(feature.Collection, 0, g.count)
	out = append(out, g.seeds...)

	for id := len(g.seeds) + 1; id <= g.count; id++ {
		out = append(out, g.Next(id))
	}

	log.Debug().
		Int("seeds", len(g.seeds)).
		Int("total", len(out)).
		Msg("Dataset generated")

	return out
}

// Next draws one synthetic record. Draw order is continent, category,
// latitude, longitude, template, then the placeholder numbers.
func (g *Generator) Next(id int) feature.Feature {
	continent := feature.Continents[g.rng.Intn(len(feature.Continents))]
	category := feature.Categories[g.rng.Intn(len(feature.Categories))]
	coords := g.Coordinates(continent)

	templates := Templates[category]
	tpl := templates[g.rng.Intn(len(templates))]

	return feature.Feature{
		ID:          id,
		Continent:   continent,
		Category:    category,
		Name:        fmt.Sprintf("%s %d", category, id),
		Coordinates: coords,
		Details:     Fill(g.rng, tpl, continent),
	}
}

// Coordinates samples a point uniformly inside the continent box.
func (g *Generator) Coordinates(c feature.Continent) feature.LatLng {
	r := feature.RangeOf(c.Bounds())
	lat := g.rng.Float64()*(r.Lat[1]-r.Lat[0]) + r.Lat[0]
	lon := g.rng.Float64()*(r.Lon[1]-r.Lon[0]) + r.Lon[0]
	return feature.LatLng{lat, lon}
}

// Fill substitutes every known placeholder in tpl. The four numbers are
// always drawn, even when tpl does not use them.
func Fill(rng *rand.Rand, tpl string, c feature.Continent) string {
	name := string(c)
	return strings.NewReplacer(
		"{elevation}", draw(rng, elevationSpan),
		"{length}", draw(rng, lengthSpan),
		"{area}", draw(rng, areaSpan),
		"{capacity}", draw(rng, capacitySpan),
		"{location}", name+" region",
		"{location1}", name+" city",
		"{location2}", "nearby region",
		"{countries}", name+" countries",
		"{region}", name,
		"{continent}", name,
		"{species}", "unique species",
	).Replace(tpl)
}

func draw(rng *rand.Rand, s span) string {
	return strconv.Itoa(rng.Intn(s.Width) + s.Min)
}
