package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/achadinhos/catalog-service/internal/app/catalog/contracts"
	"github.com/achadinhos/catalog-service/internal/app/catalog/normalize"
	"github.com/achadinhos/catalog-service/internal/app/catalog/source"
	"github.com/achadinhos/catalog-service/internal/app/catalog/store"
	"github.com/achadinhos/catalog-service/internal/app/catalog/usecases/reload_catalog"
	"github.com/achadinhos/catalog-service/internal/config"
	"github.com/achadinhos/catalog-service/internal/observability"
	"github.com/achadinhos/catalog-service/internal/pkg/clock"
	transport "github.com/achadinhos/catalog-service/internal/transport/http/catalog"
)

func main() {
	cfg := config.Load()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle SIGINT/SIGTERM.
	go func() {
		ch := make(chan os.Signal, 1)
		signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)
		<-ch
		log.Println("shutdown signal received")
		cancel()
	}()

	observability.Start(cfg.MetricsPort)

	var src contracts.Source
	var norm *normalize.Normalizer
	switch cfg.Source {
	case "sqlite":
		src = source.NewSQLiteSource(cfg.SQLitePaths)
		norm = normalize.New(normalize.SQLiteOptions())
	default:
		src = source.NewCSVSource(cfg.CSVURL)
		norm = normalize.New(normalize.CSVOptions())
	}

	clk := clock.RealClock{}
	st := store.NewStore()

	reloader := reload_catalog.NewInteractor(src, norm, st, clk)
	if cfg.Source == "csv" {
		// Only the CSV path substitutes sample data; a database failure
		// is a terminal empty state surfaced to the page.
		reloader.Fallback = source.SampleProducts()
	}

	// Initial load. Every outcome installs a snapshot, so the server can
	// start regardless.
	snap := reloader.Execute(ctx)
	if snap.Failed() {
		log.Printf("initial load failed, serving empty collection: %s", snap.Err)
	}

	h := transport.NewHandler(st, reloader, clk, cfg.PageSize, cfg.NichePageSize)

	router := gin.Default()
	h.RegisterRoutes(router)

	srv := &http.Server{Addr: cfg.HTTPAddr, Handler: router}

	go func() {
		log.Printf("catalog API listening on %s", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Printf("http serve: %v", err)
			cancel()
		}
	}()

	<-ctx.Done()
	shutdownCtx, stop := context.WithTimeout(context.Background(), 5*time.Second)
	defer stop()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("http shutdown: %v", err)
	}

	log.Println("server stopped")
}
