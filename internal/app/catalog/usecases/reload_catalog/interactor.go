// Package reload_catalog implements the load cycle: fetch raw rows from
// the configured source, normalize them and replace the store's
// collection wholesale.
package reload_catalog

import (
	"context"
	"log"

	"github.com/google/uuid"

	"github.com/achadinhos/catalog-service/internal/app/catalog/contracts"
	"github.com/achadinhos/catalog-service/internal/app/catalog/domain"
	"github.com/achadinhos/catalog-service/internal/app/catalog/normalize"
	"github.com/achadinhos/catalog-service/internal/app/catalog/store"
	"github.com/achadinhos/catalog-service/internal/observability"
	"github.com/achadinhos/catalog-service/internal/pkg/clock"
)

// Interactor orchestrates one load cycle. The source reports failures as
// errors; substitution policy lives here, not inside the source:
//   - when a Fallback dataset is configured (CSV source), a failed fetch
//     is replaced by it and the page still renders;
//   - without one (database source), a failed fetch becomes a terminal
//     empty generation whose Err the UI surfaces.
type Interactor struct {
	source contracts.Source
	norm   *normalize.Normalizer
	store  *store.Store
	clk    clock.Clock

	// Fallback substituted on fetch failure; nil disables substitution.
	Fallback []domain.Product
}

func NewInteractor(src contracts.Source, norm *normalize.Normalizer, st *store.Store, clk clock.Clock) *Interactor {
	return &Interactor{source: src, norm: norm, store: st, clk: clk}
}

// Execute runs the load cycle and returns the snapshot it installed.
// It never returns an error: every outcome — loaded, fallback, terminal
// failure — ends with a snapshot in the store.
func (i *Interactor) Execute(ctx context.Context) *store.Snapshot {
	snap := &store.Snapshot{
		Generation: uuid.NewString(),
		Source:     i.source.Name(),
		LoadedAt:   i.clk.Now(),
	}

	rows, err := i.source.Fetch(ctx)
	switch {
	case err != nil && i.Fallback != nil:
		log.Printf("reload: %s fetch failed, substituting sample data: %v", i.source.Name(), err)
		snap.Products = append([]domain.Product(nil), i.Fallback...)
		snap.Sample = true
		observability.LoadsTotal.WithLabelValues(i.source.Name(), "sample-fallback").Inc()

	case err != nil:
		log.Printf("reload: %s fetch failed: %v", i.source.Name(), err)
		snap.Err = err.Error()
		observability.LoadsTotal.WithLabelValues(i.source.Name(), "failed").Inc()

	default:
		products, rejected := i.norm.Rows(rows)
		snap.Products = products
		if len(rejected) > 0 {
			log.Printf("reload: %s: dropped %d of %d rows during normalization", i.source.Name(), len(rejected), len(rows))
		}
		observability.LoadsTotal.WithLabelValues(i.source.Name(), "loaded").Inc()
	}

	i.store.Replace(snap)
	observability.ProductsLoaded.Set(float64(snap.Count()))
	log.Printf("reload: generation %s from %s: %d products", snap.Generation, snap.Source, snap.Count())
	return snap
}
