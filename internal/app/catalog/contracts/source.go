package contracts

import (
	"context"
	"strings"
)

// RawRow is the unified untyped row both backends produce before
// normalization. Keys are the canonical field names from Fields; values
// are the raw cell text. Field presence is not guaranteed uniform across
// rows of the same batch.
type RawRow map[string]string

// Get returns the trimmed value for the field, or "" when absent.
func (r RawRow) Get(field string) string {
	return strings.TrimSpace(r[field])
}

// Has reports whether the field is present with a non-empty value.
func (r RawRow) Has(field string) bool {
	return r.Get(field) != ""
}

// Canonical field names used as RawRow keys. Source adapters are
// responsible for mapping their native column names (English or
// Portuguese) onto these before handing rows to the normalizer.
const (
	FieldID              = "id"
	FieldTitle           = "title"
	FieldDescription     = "description"
	FieldOriginalPrice   = "original_price"
	FieldPromoPrice      = "promo_price"
	FieldDiscountPercent = "discount_percent"
	FieldAffiliateLink   = "affiliate_link"
	FieldImages          = "images"
	FieldCategory        = "category"
	FieldNiches          = "niches"
	FieldPlatform        = "platform"
	FieldRating          = "rating"
	FieldSalesCount      = "sales_count"
	FieldPromoStart      = "promo_start"
	FieldPromoEnd        = "promo_end"
	FieldPublishedAt     = "published_at"
	FieldStatus          = "status"
)

// Source is implemented by each backing dataset format. Fetch returns the
// raw rows or an error; it never substitutes fallback data itself — the
// caller owns that decision, so a failure is always visible as an error.
type Source interface {
	// Name identifies the backend ("csv", "sqlite") in logs and metrics.
	Name() string

	// Fetch obtains the raw rows from the backend.
	Fetch(ctx context.Context) ([]RawRow, error)
}
