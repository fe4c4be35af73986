package query

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/woozymasta/snapmap/internal/feature"
	"github.com/woozymasta/snapmap/internal/generator"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dataset(t *testing.T) feature.Collection {
	t.Helper()
	g, err := generator.New(rand.New(rand.NewSource(2024)), feature.Seeds(), generator.DefaultCount)
	require.NoError(t, err)
	return g.Generate()
}

func TestApplySearchEverest(t *testing.T) {
	all := dataset(t)

	got := Apply(all, Filter{Continent: feature.All, Category: feature.All, Search: "Everest"})
	require.Len(t, got, 1)
	assert.Equal(t, "Mount Everest", got[0].Name)
	assert.Equal(t, 1, got[0].ID)
}

func TestApplySearchIgnoresSelection(t *testing.T) {
	all := dataset(t)

	got := Apply(all, Filter{Continent: "Europe", Category: "Rivers", Search: "everest"})
	require.Len(t, got, 1)
	assert.Equal(t, feature.Asia, got[0].Continent)
}

func TestApplySearchMatchesAnyField(t *testing.T) {
	all := dataset(t)

	byContinent := Apply(all, Filter{Search: "ANTARCT"})
	require.NotEmpty(t, byContinent)
	for _, f := range byContinent {
		assert.True(t, Matches(f, "antarct"))
	}

	byCategory := Apply(all, Filter{Search: "glacier"})
	for _, f := range all {
		if f.Category == feature.Glaciers {
			assert.Contains(t, byCategory, f)
		}
	}

	assert.Empty(t, Apply(all, Filter{Search: "no such thing"}))
}

func TestApplyContinentOnly(t *testing.T) {
	all := dataset(t)

	got := Apply(all, Filter{Continent: "Asia", Category: feature.All})

	var want []feature.Feature
	for _, f := range all {
		if f.Continent == feature.Asia {
			want = append(want, f)
		}
	}
	assert.Equal(t, want, got)
}

func TestApplyContinentAndCategory(t *testing.T) {
	all := dataset(t)

	got := Apply(all, Filter{Continent: "Europe", Category: "Passes"})
	require.NotEmpty(t, got)
	for _, f := range got {
		assert.Equal(t, feature.Europe, f.Continent)
		assert.Equal(t, feature.Passes, f.Category)
	}
	assert.Contains(t, names(got), "Saint Gotthard Pass")
}

func TestApplyAllReturnsEverything(t *testing.T) {
	all := dataset(t)

	assert.Len(t, Apply(all, Filter{Continent: feature.All, Category: feature.All}), len(all))
	assert.Len(t, Apply(all, Filter{}), len(all))
}

func TestApplyUnknownSelectionMatchesNothing(t *testing.T) {
	all := dataset(t)
	assert.Empty(t, Apply(all, Filter{Continent: "Atlantis"}))
}

func TestApplyDoesNotMutate(t *testing.T) {
	all := dataset(t)
	before := append(feature.Collection(nil), all...)

	got := Apply(all, Filter{Continent: "Africa"})
	if len(got) > 0 {
		got[0].Name = "changed"
	}

	assert.Equal(t, before, all)
}

func TestSuggestAsia(t *testing.T) {
	all := dataset(t)

	got := Suggest(all, "asia", SuggestionLimit)
	require.NotEmpty(t, got)
	assert.LessOrEqual(t, len(got), SuggestionLimit)

	byName := make(map[string]feature.Feature)
	for _, f := range all {
		byName[f.Name] = f
	}
	for _, n := range got {
		assert.True(t, Matches(byName[n], "asia"), n)
	}
}

func TestSuggestOrderAndLimit(t *testing.T) {
	all := dataset(t)

	got := Suggest(all, "Asia", 3)
	want := names(Apply(all, Filter{Search: "Asia"}))[:3]
	assert.Equal(t, want, got)
}

func TestSuggestEmpty(t *testing.T) {
	all := dataset(t)

	assert.Empty(t, Suggest(all, "", SuggestionLimit))
	assert.NotNil(t, Suggest(all, "", SuggestionLimit))
	assert.Empty(t, Suggest(all, "asia", 0))
}

func TestSuggestNotDeduplicated(t *testing.T) {
	c := feature.Collection{
		{ID: 1, Continent: feature.Asia, Category: feature.Lakes, Name: "Twin Lake", Coordinates: feature.LatLng{10, 50}},
		{ID: 2, Continent: feature.Asia, Category: feature.Lakes, Name: "Twin Lake", Coordinates: feature.LatLng{11, 51}},
	}
	assert.Equal(t, []string{"Twin Lake", "Twin Lake"}, Suggest(c, "twin", SuggestionLimit))
}

func TestSummarizeIgnoresFilters(t *testing.T) {
	all := dataset(t)

	for _, f := range []Filter{
		{},
		{Continent: "Asia"},
		{Category: "Dams"},
		{Search: "Everest"},
		{Search: "nothing matches this"},
	} {
		visible := Apply(all, f)
		s := Summarize(all, visible)
		assert.Equal(t, len(visible), s.Features)
		assert.Equal(t, 7, s.Continents)
		assert.Equal(t, 10, s.Categories)
	}
}

func TestNearest(t *testing.T) {
	all := dataset(t)

	hits := Nearest(all, feature.LatLng{27.99, 86.93}, 3)
	require.Len(t, hits, 3)
	assert.Equal(t, "Mount Everest", hits[0].Feature.Name)
	assert.Less(t, hits[0].DistanceKm, 1.0)
	assert.LessOrEqual(t, hits[0].DistanceKm, hits[1].DistanceKm)
	assert.LessOrEqual(t, hits[1].DistanceKm, hits[2].DistanceKm)

	assert.Empty(t, Nearest(all, feature.LatLng{0, 0}, 0))
	assert.Len(t, Nearest(all[:2], feature.LatLng{0, 0}, 10), 2)
}

func names(features []feature.Feature) []string {
	out := make([]string, len(features))
	for i, f := range features {
		out[i] = f.Name
	}
	return out
}

func TestMatchesCaseInsensitive(t *testing.T) {
	f := feature.Feature{Name: "Nile River", Category: feature.Rivers, Continent: feature.Africa}
	for _, q := range []string{"nile", "NILE", "rIvEr", "afr", "ica"} {
		assert.True(t, Matches(f, q), q)
	}
	assert.False(t, Matches(f, strings.Repeat("x", 3)))
}
