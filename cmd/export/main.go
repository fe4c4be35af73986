// Command export converts a dataset snapshot into JSON, YAML or GeoJSON,
// optionally narrowed with the viewer's filter rules.
package main

import (
	"fmt"
	"os"

	"github.com/woozymasta/snapmap/internal/feature"
	"github.com/woozymasta/snapmap/internal/geo"
	"github.com/woozymasta/snapmap/internal/query"

	"github.com/jessevdk/go-flags"
)

type Options struct {
	Input     string `short:"i" long:"in"        description:"Dataset file path" default:"data/features.json"`
	Output    string `short:"o" long:"out"       description:"Output file path. Writes to stdout if empty"`
	Format    string `short:"f" long:"format"    description:"Output format" choice:"json" choice:"yaml" choice:"geojson" default:"geojson"`
	Continent string `short:"C" long:"continent" description:"Continent filter" default:"All"`
	Category  string `short:"k" long:"category"  description:"Category filter" default:"All"`
	Search    string `short:"q" long:"query"     description:"Free-text search; overrides continent and category"`
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

	features, err := feature.Load(opts.Input)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading dataset: %v\n", err)
		os.Exit(1)
	}

	visible := query.Apply(features, query.Filter{
		Continent: opts.Continent,
		Category:  opts.Category,
		Search:    opts.Search,
	})

	outputData, err := geo.Encode(visible, geo.Format(opts.Format))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error marshaling data: %v\n", err)
		os.Exit(1)
	}

	if opts.Output != "" {
		if err := feature.WriteFile(opts.Output, outputData); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing output file: %v\n", err)
			os.Exit(1)
		}
		fmt.Fprintf(os.Stderr, "Successfully exported %d of %d features to %s (format: %s)\n",
			len(visible), len(features), opts.Output, opts.Format)
	} else {
		fmt.Println(string(outputData))
	}
}
