// Command generator writes the synthetic feature dataset: the seed set
// followed by random records up to --count.
package main

import (
	"math/rand"
	"os"
	"time"

	"github.com/woozymasta/snapmap/internal/feature"
	"github.com/woozymasta/snapmap/internal/generator"
	"github.com/woozymasta/snapmap/internal/geo"
	"github.com/woozymasta/snapmap/internal/logger"

	"github.com/jessevdk/go-flags"
	"github.com/rs/zerolog/log"
)

type Options struct {
	Logger logger.Logger `group:"Logger options"`

	Output string `short:"o" long:"out"    env:"DATASET_FILE" description:"Output file path" default:"data/features.json"`
	Format string `short:"f" long:"format" description:"Output format" choice:"json" choice:"yaml" choice:"geojson" default:"json"`
	Count  int    `short:"n" long:"count"  description:"Total number of features, seeds included" default:"1000"`
	Seed   int64  `short:"s" long:"seed"   env:"GENERATOR_SEED" description:"Random seed, 0 picks one from the clock"`
}

func main() {
	var opts Options
	parser := flags.NewParser(&opts, flags.Default)
	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	opts.Logger.Setup()

	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	gen, err := generator.New(rand.New(rand.NewSource(seed)), feature.Seeds(), opts.Count)
	if err != nil {
		log.Fatal().Err(err).Int("count", opts.Count).Msg("Invalid generator options")
	}

	features := gen.Generate()

	data, err := geo.Encode(features, geo.Format(opts.Format))
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to encode dataset")
	}

	if err := feature.WriteFile(opts.Output, data); err != nil {
		log.Fatal().Err(err).Str("path", opts.Output).Msg("Failed to write dataset")
	}

	log.Info().
		Int("features", len(features)).
		Int64("seed", seed).
		Str("format", opts.Format).
		Str("path", opts.Output).
		Msg("Dataset written")
}
