// Command export loads the catalog from a source, applies filters and
// writes the result as JSON or CSV. Useful for checking what the page
// would show for a given filter state without running the server.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/achadinhos/catalog-service/internal/app/catalog/contracts"
	"github.com/achadinhos/catalog-service/internal/app/catalog/engine"
	"github.com/achadinhos/catalog-service/internal/app/catalog/normalize"
	"github.com/achadinhos/catalog-service/internal/app/catalog/source"
	"github.com/achadinhos/catalog-service/internal/app/catalog/store"
	"github.com/achadinhos/catalog-service/internal/app/catalog/usecases/reload_catalog"
	"github.com/achadinhos/catalog-service/internal/pkg/clock"
)

var (
	srcName  = flag.String("source", "csv", "Data source: csv or sqlite")
	csvURL   = flag.String("csv-url", "", "Published-sheet CSV URL")
	dbPaths  = flag.String("db", "data/produtos.db,produtos.db", "Comma-separated candidate SQLite paths")
	search   = flag.String("search", "", "Free-text search filter")
	platform = flag.String("platform", "", "Exact platform filter")
	category = flag.String("category", "", "Exact category filter")
	sortKey  = flag.String("sort", string(engine.DefaultSort), "Sort key: discount, price-low, price-high, newest, rating, sales")
	format   = flag.String("format", "json", "Output format: json or csv")
	outPath  = flag.String("out", "", "Output file (default stdout)")
)

func main() {
	flag.Parse()

	var src contracts.Source
	var norm *normalize.Normalizer
	switch *srcName {
	case "sqlite":
		var paths []string
		for _, p := range strings.Split(*dbPaths, ",") {
			if p = strings.TrimSpace(p); p != "" {
				paths = append(paths, p)
			}
		}
		src = source.NewSQLiteSource(paths)
		norm = normalize.New(normalize.SQLiteOptions())
	case "csv":
		src = source.NewCSVSource(*csvURL)
		norm = normalize.New(normalize.CSVOptions())
	default:
		fatalf("unknown source %q", *srcName)
	}

	st := store.NewStore()
	reloader := reload_catalog.NewInteractor(src, norm, st, clock.RealClock{})
	if *srcName == "csv" {
		reloader.Fallback = source.SampleProducts()
	}

	snap := reloader.Execute(context.Background())
	if snap.Failed() {
		fatalf("load failed: %s", snap.Err)
	}

	state := engine.NewFilterState()
	state.Set(engine.DimSearch, *search)
	state.Set(engine.DimPlatform, *platform)
	state.Set(engine.DimCategory, *category)
	state.Set(engine.DimSort, *sortKey)

	eng := engine.New(snap.Products)
	filtered := eng.Filter(state)

	data, err := engine.Export(filtered, engine.ExportFormat(*format))
	if err != nil {
		fatalf("export: %v", err)
	}

	if *outPath == "" {
		fmt.Println(string(data))
		return
	}
	if err := os.WriteFile(*outPath, data, 0o644); err != nil {
		fatalf("write %s: %v", *outPath, err)
	}
	fmt.Printf("Wrote %d of %d products to %s\n", len(filtered), snap.Count(), *outPath)
}

func fatalf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
