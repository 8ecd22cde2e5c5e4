package domain

import (
	"math"
	"strings"
	"time"
)

// Default values applied during normalization when a source row omits a field.
const (
	// DefaultCategory is assigned when a row carries no category.
	DefaultCategory = "Outros"

	// DefaultPlatformCSV is the platform assigned to CSV rows without one.
	// The database source leaves the platform empty instead; the two
	// sources intentionally keep their historical defaults.
	DefaultPlatformCSV = "Desconhecida"

	// DefaultStatus is assigned when a row carries no publication status.
	DefaultStatus = "published"
)

// Product is the canonical catalog entity. It is produced once per load
// cycle by the normalizer and treated as immutable afterwards: the engine
// and transport layers only ever read it, and a reload replaces the whole
// collection rather than mutating entries in place.
type Product struct {
	ID              string     `json:"id"`
	Title           string     `json:"title"`
	Description     string     `json:"description"`
	OriginalPrice   float64    `json:"originalPrice"`
	PromoPrice      float64    `json:"promoPrice"`
	DiscountPercent int        `json:"discountPercent"`
	AffiliateLink   string     `json:"affiliateLink"`
	Images          []string   `json:"images"`
	Category        string     `json:"category"`
	Niches          []string   `json:"niches"`
	Platform        string     `json:"platform"`
	Rating          float64    `json:"rating"`
	SalesCount      int        `json:"salesCount"`
	PromoStart      *time.Time `json:"promoStart"`
	PromoEnd        *time.Time `json:"promoEnd"`
	PublishedAt     *time.Time `json:"publishedAt"`
	Status          string     `json:"status"`
}

// BackfillDiscount computes DiscountPercent from the price pair when the
// source row did not carry one. The percent is rounded to the nearest
// integer and clamped to [0, 100].
func (p *Product) BackfillDiscount() {
	if p.DiscountPercent != 0 || p.OriginalPrice <= 0 {
		return
	}
	pct := math.Round((p.OriginalPrice - p.PromoPrice) / p.OriginalPrice * 100)
	if pct < 0 {
		pct = 0
	}
	if pct > 100 {
		pct = 100
	}
	p.DiscountPercent = int(pct)
}

// Actionable reports whether the product carries an outbound affiliate
// link. Products without one are still displayable but the buy affordance
// is degraded.
func (p *Product) Actionable() bool {
	return strings.TrimSpace(p.AffiliateLink) != ""
}

// HasNiche reports whether the product is tagged with the given niche.
// Matching is case-insensitive after trimming, mirroring how tags are
// entered in the sheet.
func (p *Product) HasNiche(tag string) bool {
	want := strings.ToLower(strings.TrimSpace(tag))
	if want == "" {
		return false
	}
	for _, n := range p.Niches {
		if strings.ToLower(strings.TrimSpace(n)) == want {
			return true
		}
	}
	return false
}

// PromoActiveAt reports whether the promotion window contains now.
// A nil bound is open-ended on that side; a product without any window
// is always considered active.
func (p *Product) PromoActiveAt(now time.Time) bool {
	if p.PromoStart != nil && now.Before(*p.PromoStart) {
		return false
	}
	if p.PromoEnd != nil && !now.Before(*p.PromoEnd) {
		return false
	}
	return true
}

// PublishedOrZero returns PublishedAt, or the zero time when unset.
// Sorting by newest treats unpublished products as the oldest possible.
func (p *Product) PublishedOrZero() time.Time {
	if p.PublishedAt == nil {
		return time.Time{}
	}
	return *p.PublishedAt
}
