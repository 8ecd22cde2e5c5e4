package domain

import "strings"

// ValidationPolicy decides whether a normalized product is accepted into
// the collection. The CSV and database sources historically applied
// different gates; the asymmetry is kept deliberate and named rather than
// silently unified, because the published sheet is hand-edited (rows are
// routinely half-filled) while the database file is produced by tooling.
type ValidationPolicy string

const (
	// PolicyStrictCSV drops rows missing id, title or affiliate link, or
	// whose promotional price is not positive.
	PolicyStrictCSV ValidationPolicy = "strict-csv"

	// PolicyLenientDB only requires an id; every other field is defaulted.
	PolicyLenientDB ValidationPolicy = "lenient-db"
)

// Validate applies the policy to a normalized product. A nil return means
// the product is accepted.
func (v ValidationPolicy) Validate(p *Product) error {
	if strings.TrimSpace(p.ID) == "" {
		return ErrMissingID
	}
	if v != PolicyStrictCSV {
		return nil
	}
	if strings.TrimSpace(p.Title) == "" {
		return ErrMissingTitle
	}
	if !p.Actionable() {
		return ErrMissingAffiliateLink
	}
	if p.PromoPrice <= 0 {
		return ErrInvalidPromoPrice
	}
	return nil
}
