package catalog

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/achadinhos/catalog-service/internal/app/catalog/domain"
	"github.com/achadinhos/catalog-service/internal/app/catalog/engine"
	"github.com/achadinhos/catalog-service/internal/app/catalog/store"
)

// stateFromQuery maps the request's query string onto a FilterState.
// Parameter names are the page's own URL contract (search, platform,
// category, sort, page).
func stateFromQuery(c *gin.Context, pageSize int) engine.FilterState {
	state := engine.FilterStateFromValues(c.Request.URL.Query())
	state.PageSize = pageSize
	return state
}

// mapPageResponse shapes the ListProducts envelope. The canonical query
// string for the state is echoed back so the page can synchronize its
// address bar (empty dimensions are omitted, not set to "").
func mapPageResponse(page engine.Page, state engine.FilterState, snap *store.Snapshot) gin.H {
	return gin.H{
		"items":    page.Items,
		"total":    page.Total,
		"page":     page.PageNumber,
		"pageSize": page.PageSize,
		"hasMore":  page.HasMore,
		"query":    state.Values().Encode(),
		"load":     mapLoadStatus(snap),
	}
}

// mapProductDetail augments the product with the computed promo state for
// the detail modal.
func mapProductDetail(p *domain.Product, now time.Time) gin.H {
	return gin.H{
		"product":     p,
		"promoActive": p.PromoActiveAt(now),
		"actionable":  p.Actionable(),
	}
}

// mapLoadStatus shapes the load-generation metadata shared by several
// endpoints.
func mapLoadStatus(snap *store.Snapshot) gin.H {
	out := gin.H{
		"generation": snap.Generation,
		"source":     snap.Source,
		"loadedAt":   snap.LoadedAt,
		"count":      snap.Count(),
		"sample":     snap.Sample,
	}
	if snap.Failed() {
		out["error"] = snap.Err
	}
	return out
}
