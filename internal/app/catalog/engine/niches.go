package engine

import "github.com/achadinhos/catalog-service/internal/app/catalog/domain"

// Section is one niche carousel: all products tagged with the niche,
// truncated to the carousel size. Sections are always computed from the
// full unfiltered collection, independent of the main filter state.
type Section struct {
	Tag   string
	Items []domain.Product
	Total int // tagged products before truncation
}

// NicheSection collects the products tagged with tag, truncated to size
// (NichePageSize when size <= 0). Whether the section is shown is a
// rendering decision: the page hides carousels while any primary filter
// is active (see FilterState.PrimaryActive).
func (e *Engine) NicheSection(tag string, size int) Section {
	if size <= 0 {
		size = NichePageSize
	}

	var tagged []domain.Product
	for _, p := range e.products {
		if p.HasNiche(tag) {
			tagged = append(tagged, p)
		}
	}

	items := tagged
	if len(items) > size {
		items = items[:size]
	}
	out := make([]domain.Product, len(items))
	copy(out, items)

	return Section{Tag: tag, Items: out, Total: len(tagged)}
}

// NicheTags returns the distinct niche tags in load order, for building
// the carousel list.
func (e *Engine) NicheTags() []string {
	seen := make(map[string]struct{})
	out := []string{}
	for _, p := range e.products {
		for _, n := range p.Niches {
			if n == "" {
				continue
			}
			if _, ok := seen[n]; ok {
				continue
			}
			seen[n] = struct{}{}
			out = append(out, n)
		}
	}
	return out
}
