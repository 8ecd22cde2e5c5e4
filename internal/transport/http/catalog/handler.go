// Package catalog is the HTTP presentation adapter. Handlers are thin:
// they map query strings onto engine filter state, delegate to the
// engine/store and shape JSON responses. All catalog semantics live in
// the application packages.
package catalog

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/achadinhos/catalog-service/internal/app/catalog/engine"
	"github.com/achadinhos/catalog-service/internal/app/catalog/store"
	"github.com/achadinhos/catalog-service/internal/app/catalog/usecases/reload_catalog"
	"github.com/achadinhos/catalog-service/internal/pkg/clock"
)

// Handler serves the catalog API over the store's current snapshot.
type Handler struct {
	store    *store.Store
	reloader *reload_catalog.Interactor
	clk      clock.Clock

	pageSize      int
	nichePageSize int
}

func NewHandler(st *store.Store, reloader *reload_catalog.Interactor, clk clock.Clock, pageSize, nichePageSize int) *Handler {
	if pageSize <= 0 {
		pageSize = engine.DefaultPageSize
	}
	if nichePageSize <= 0 {
		nichePageSize = engine.NichePageSize
	}
	return &Handler{store: st, reloader: reloader, clk: clk, pageSize: pageSize, nichePageSize: nichePageSize}
}

// RegisterRoutes wires the catalog routes into the router.
func (h *Handler) RegisterRoutes(r *gin.Engine) {
	r.GET("/health", h.Health)

	api := r.Group("/api")
	{
		api.GET("/products", h.ListProducts)
		api.GET("/products/:id", h.GetProduct)
		api.GET("/niches/:tag", h.GetNicheSection)
		api.GET("/meta", h.GetMeta)
		api.GET("/export", h.Export)
		api.POST("/reload", h.Reload)
	}
}

func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// ListProducts returns one page of the filtered catalog. Filter
// dimensions come from the query string; `append=true` selects the
// "load more" window that returns only the page's increment.
func (h *Handler) ListProducts(c *gin.Context) {
	snap := h.store.Snapshot()
	state := stateFromQuery(c, h.pageSize)

	mode := engine.WindowReplace
	if c.Query("append") == "true" {
		mode = engine.WindowAppend
	}

	eng := engine.New(snap.Products)
	page := eng.GetPage(state, mode)

	c.JSON(http.StatusOK, mapPageResponse(page, state, snap))
}

// GetProduct returns the full product for the detail modal.
func (h *Handler) GetProduct(c *gin.Context) {
	snap := h.store.Snapshot()
	p := snap.FindByID(c.Param("id"))
	if p == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "produto não encontrado"})
		return
	}
	c.JSON(http.StatusOK, mapProductDetail(p, h.clk.Now()))
}

// GetNicheSection returns one niche carousel, always computed from the
// full unfiltered collection. The `hidden` field tells the page whether
// its current primary filters would hide the carousel.
func (h *Handler) GetNicheSection(c *gin.Context) {
	snap := h.store.Snapshot()
	state := stateFromQuery(c, h.pageSize)

	eng := engine.New(snap.Products)
	section := eng.NicheSection(c.Param("tag"), h.nichePageSize)

	c.JSON(http.StatusOK, gin.H{
		"tag":    section.Tag,
		"items":  section.Items,
		"total":  section.Total,
		"hidden": state.PrimaryActive(),
	})
}

// GetMeta returns filter options plus the load status of the current
// generation, including the terminal error message after a failed
// database load.
func (h *Handler) GetMeta(c *gin.Context) {
	snap := h.store.Snapshot()
	eng := engine.New(snap.Products)

	c.JSON(http.StatusOK, gin.H{
		"platforms":  eng.Platforms(),
		"categories": eng.Categories(),
		"niches":     eng.NicheTags(),
		"load":       mapLoadStatus(snap),
	})
}

// Export streams the current filtered set as JSON or CSV. The filter
// state comes from the same query parameters as ListProducts.
func (h *Handler) Export(c *gin.Context) {
	snap := h.store.Snapshot()
	state := stateFromQuery(c, h.pageSize)

	eng := engine.New(snap.Products)
	filtered := eng.Filter(state)

	format := engine.ExportFormat(c.DefaultQuery("format", string(engine.ExportJSON)))
	data, err := engine.Export(filtered, format)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	switch format {
	case engine.ExportCSV:
		c.Header("Content-Disposition", `attachment; filename="produtos.csv"`)
		c.Data(http.StatusOK, "text/csv; charset=utf-8", data)
	default:
		c.Data(http.StatusOK, "application/json; charset=utf-8", data)
	}
}

// Reload re-runs the load cycle, replacing the collection wholesale.
func (h *Handler) Reload(c *gin.Context) {
	snap := h.reloader.Execute(c.Request.Context())
	c.JSON(http.StatusOK, mapLoadStatus(snap))
}
