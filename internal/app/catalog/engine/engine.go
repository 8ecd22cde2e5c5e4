// Package engine implements the filter/sort/paginate pipeline over the
// normalized product collection. An Engine never mutates the collection
// it was given; every query re-runs the full pass, which for catalog-size
// datasets is cheaper than maintaining incremental indexes.
package engine

import (
	"sort"
	"strings"

	"github.com/achadinhos/catalog-service/internal/app/catalog/domain"
	"github.com/achadinhos/catalog-service/internal/observability"
)

// Engine holds one immutable snapshot of the collection. Construct a new
// Engine after every reload; do not feed it a slice that is still being
// written to.
type Engine struct {
	products []domain.Product
}

func New(products []domain.Product) *Engine {
	return &Engine{products: products}
}

// SetProducts replaces the snapshot wholesale.
func (e *Engine) SetProducts(products []domain.Product) {
	e.products = products
}

// All returns the unfiltered snapshot.
func (e *Engine) All() []domain.Product {
	return e.products
}

// Filter applies the state's predicates and sort, without pagination.
// The result is a fresh slice; the snapshot is never reordered in place.
func (e *Engine) Filter(state FilterState) []domain.Product {
	observability.FilterPasses.Inc()

	out := make([]domain.Product, 0, len(e.products))
	for _, p := range e.products {
		if matches(p, state) {
			out = append(out, p)
		}
	}
	sortProducts(out, state.Sort)
	return out
}

// matches evaluates the composable predicates: case-insensitive substring
// search over title/description/category/platform, plus exact platform
// and category equality. Empty filter values mean "no constraint".
func matches(p domain.Product, state FilterState) bool {
	if state.Platform != "" && p.Platform != state.Platform {
		return false
	}
	if state.Category != "" && p.Category != state.Category {
		return false
	}
	if state.Search != "" {
		term := strings.ToLower(state.Search)
		if !strings.Contains(strings.ToLower(p.Title), term) &&
			!strings.Contains(strings.ToLower(p.Description), term) &&
			!strings.Contains(strings.ToLower(p.Category), term) &&
			!strings.Contains(strings.ToLower(p.Platform), term) {
			return false
		}
	}
	return true
}

// sortProducts orders in place with a stable sort so ties keep their
// load order deterministically.
func sortProducts(products []domain.Product, key SortKey) {
	var less func(a, b domain.Product) bool
	switch key {
	case SortPriceLow:
		less = func(a, b domain.Product) bool { return a.PromoPrice < b.PromoPrice }
	case SortPriceHigh:
		less = func(a, b domain.Product) bool { return a.PromoPrice > b.PromoPrice }
	case SortNewest:
		less = func(a, b domain.Product) bool { return a.PublishedOrZero().After(b.PublishedOrZero()) }
	case SortRating:
		less = func(a, b domain.Product) bool { return a.Rating > b.Rating }
	case SortSales:
		less = func(a, b domain.Product) bool { return a.SalesCount > b.SalesCount }
	default: // SortDiscount
		less = func(a, b domain.Product) bool { return a.DiscountPercent > b.DiscountPercent }
	}
	sort.SliceStable(products, func(i, j int) bool { return less(products[i], products[j]) })
}

// WindowMode selects which slice of the filtered set a page request
// returns: the whole visible set up to the page (replace) or only the
// page's own increment (append, the "load more" path).
type WindowMode int

const (
	WindowReplace WindowMode = iota
	WindowAppend
)

// Page is the engine's pagination output.
type Page struct {
	Items      []domain.Product
	Total      int // filtered items before windowing
	PageNumber int
	PageSize   int
	HasMore    bool
	StartIndex int // first index of this page's window within the filtered set
	EndIndex   int // one past the last index
}

// GetPage filters, sorts and windows in one pass. Pages are 1-based;
// out-of-range pages return empty items with the correct metadata.
func (e *Engine) GetPage(state FilterState, mode WindowMode) Page {
	filtered := e.Filter(state)

	size := state.PageSize
	if size <= 0 {
		size = DefaultPageSize
	}
	page := state.Page
	if page <= 0 {
		page = 1
	}

	start := (page - 1) * size
	end := page * size
	if start > len(filtered) {
		start = len(filtered)
	}
	if end > len(filtered) {
		end = len(filtered)
	}

	items := filtered[start:end]
	if mode == WindowReplace {
		items = filtered[:end]
	}

	// Copy so callers can't alias the filtered scratch slice.
	out := make([]domain.Product, len(items))
	copy(out, items)

	return Page{
		Items:      out,
		Total:      len(filtered),
		PageNumber: page,
		PageSize:   size,
		HasMore:    end < len(filtered),
		StartIndex: start,
		EndIndex:   end,
	}
}

// Platforms returns the distinct platforms in load order.
func (e *Engine) Platforms() []string {
	return distinct(e.products, func(p domain.Product) string { return p.Platform })
}

// Categories returns the distinct categories in load order.
func (e *Engine) Categories() []string {
	return distinct(e.products, func(p domain.Product) string { return p.Category })
}

func distinct(products []domain.Product, key func(domain.Product) string) []string {
	seen := make(map[string]struct{})
	out := []string{}
	for _, p := range products {
		k := key(p)
		if k == "" {
			continue
		}
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, k)
	}
	return out
}
