package engine

import (
	"net/url"
	"strconv"
	"strings"
)

// SortKey enumerates the supported orderings.
type SortKey string

const (
	SortDiscount  SortKey = "discount"   // default: biggest discount first
	SortPriceLow  SortKey = "price-low"  // promo price ascending
	SortPriceHigh SortKey = "price-high" // promo price descending
	SortNewest    SortKey = "newest"     // publishedAt descending, nil sorts last
	SortRating    SortKey = "rating"     // rating descending
	SortSales     SortKey = "sales"      // sales count descending
)

// DefaultSort is the ordering used when no sort parameter is present.
const DefaultSort = SortDiscount

// Page sizes: 12 for the main grid, 8 for niche carousels.
const (
	DefaultPageSize = 12
	NichePageSize   = 8
)

// ParseSortKey maps a query-string token onto a SortKey, falling back to
// the default for unknown values.
func ParseSortKey(s string) SortKey {
	switch SortKey(strings.TrimSpace(s)) {
	case SortDiscount, SortPriceLow, SortPriceHigh, SortNewest, SortRating, SortSales:
		return SortKey(strings.TrimSpace(s))
	default:
		return DefaultSort
	}
}

// FilterState is the full filter/sort/pagination state for one view of
// the catalog. The zero value is not usable; construct with NewFilterState.
type FilterState struct {
	Search   string
	Platform string
	Category string
	Sort     SortKey
	Page     int // 1-based
	PageSize int
}

// NewFilterState returns the unfiltered default state: default sort,
// page 1, main-grid page size.
func NewFilterState() FilterState {
	return FilterState{Sort: DefaultSort, Page: 1, PageSize: DefaultPageSize}
}

// Filter dimensions accepted by Set.
const (
	DimSearch   = "search"
	DimPlatform = "platform"
	DimCategory = "category"
	DimSort     = "sort"
)

// Set updates one filter dimension and resets the page to 1; pagination
// increments are only monotonic within a filter-state generation.
// Unknown dimensions are ignored.
func (s *FilterState) Set(dimension, value string) {
	switch dimension {
	case DimSearch:
		s.Search = strings.TrimSpace(value)
	case DimPlatform:
		s.Platform = strings.TrimSpace(value)
	case DimCategory:
		s.Category = strings.TrimSpace(value)
	case DimSort:
		s.Sort = ParseSortKey(value)
	default:
		return
	}
	s.Page = 1
}

// PrimaryActive reports whether any primary filter deviates from the
// default view. Niche carousels are hidden while this is true.
func (s FilterState) PrimaryActive() bool {
	return s.Search != "" || s.Platform != "" || s.Category != "" || s.Sort != DefaultSort
}

// Values maps the state onto query-string parameters. Empty dimensions
// are omitted rather than set to "", mirroring how the page keeps its
// address bar clean.
func (s FilterState) Values() url.Values {
	v := url.Values{}
	if s.Search != "" {
		v.Set(DimSearch, s.Search)
	}
	if s.Platform != "" {
		v.Set(DimPlatform, s.Platform)
	}
	if s.Category != "" {
		v.Set(DimCategory, s.Category)
	}
	if s.Sort != DefaultSort {
		v.Set(DimSort, string(s.Sort))
	}
	return v
}

// FilterStateFromValues rebuilds a state from query-string parameters.
// The optional "page" parameter is honored when positive.
func FilterStateFromValues(v url.Values) FilterState {
	s := NewFilterState()
	s.Search = strings.TrimSpace(v.Get(DimSearch))
	s.Platform = strings.TrimSpace(v.Get(DimPlatform))
	s.Category = strings.TrimSpace(v.Get(DimCategory))
	s.Sort = ParseSortKey(v.Get(DimSort))
	if page, err := strconv.Atoi(v.Get("page")); err == nil && page > 0 {
		s.Page = page
	}
	return s
}
