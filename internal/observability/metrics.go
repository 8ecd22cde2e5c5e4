package observability

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// LoadsTotal counts load cycles per source and outcome
	// (loaded, sample-fallback, failed).
	LoadsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "catalog_loads_total",
			Help: "Total de ciclos de carga do catálogo",
		},
		[]string{"source", "outcome"},
	)

	// RowsRejected counts rows dropped during parsing or normalization.
	RowsRejected = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "catalog_rows_rejected_total",
			Help: "Total de linhas descartadas na normalização",
		},
	)

	// ProductsLoaded tracks the size of the current collection.
	ProductsLoaded = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "catalog_products_loaded",
			Help: "Produtos na coleção atual",
		},
	)

	// FilterPasses counts filter/sort/paginate evaluations.
	FilterPasses = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "catalog_filter_passes_total",
			Help: "Total de passadas de filtro executadas",
		},
	)
)

// Start registers the collectors and serves /metrics on its own port.
func Start(port string) {
	prometheus.MustRegister(LoadsTotal, RowsRejected, ProductsLoaded, FilterPasses)
	http.Handle("/metrics", promhttp.Handler())
	go http.ListenAndServe(":"+port, nil)
}
