// Package normalize converts raw source rows into canonical products.
// Parsing is deliberately forgiving: the published sheet is hand-edited,
// so malformed numerics coerce to 0, unparsable dates become nil and list
// fields accept several delimiter conventions.
package normalize

import (
	"encoding/json"
	"log"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/araddon/dateparse"

	"github.com/achadinhos/catalog-service/internal/app/catalog/contracts"
	"github.com/achadinhos/catalog-service/internal/app/catalog/domain"
	"github.com/achadinhos/catalog-service/internal/observability"
)

// Options selects the per-source normalization behavior: the validation
// policy and the default platform label.
type Options struct {
	Policy          domain.ValidationPolicy
	PlatformDefault string
}

// CSVOptions is the behavior the CSV source historically had: strict row
// validation and "Desconhecida" as the platform default.
func CSVOptions() Options {
	return Options{Policy: domain.PolicyStrictCSV, PlatformDefault: domain.DefaultPlatformCSV}
}

// SQLiteOptions is the behavior of the database source: lenient
// validation and an empty platform default.
func SQLiteOptions() Options {
	return Options{Policy: domain.PolicyLenientDB, PlatformDefault: ""}
}

// Rejection records a row dropped during normalization.
type Rejection struct {
	Index int    // position within the batch, 0-based
	ID    string // raw id, possibly empty
	Err   error
}

// Normalizer transforms raw rows into products under a fixed Options.
type Normalizer struct {
	opts Options
}

func New(opts Options) *Normalizer {
	return &Normalizer{opts: opts}
}

// Row normalizes a single raw row. It returns the product or the
// validation error that rejected it. The returned product always has
// non-nil Images and Niches slices and numeric fields free of NaN.
func (n *Normalizer) Row(row contracts.RawRow) (*domain.Product, error) {
	p := &domain.Product{
		ID:              row.Get(contracts.FieldID),
		Title:           row.Get(contracts.FieldTitle),
		Description:     row.Get(contracts.FieldDescription),
		OriginalPrice:   parseFloat(row.Get(contracts.FieldOriginalPrice)),
		PromoPrice:      parseFloat(row.Get(contracts.FieldPromoPrice)),
		DiscountPercent: clampInt(parseInt(row.Get(contracts.FieldDiscountPercent)), 0, 100),
		AffiliateLink:   row.Get(contracts.FieldAffiliateLink),
		Images:          parseImages(row.Get(contracts.FieldImages)),
		Category:        row.Get(contracts.FieldCategory),
		Niches:          splitNiches(row.Get(contracts.FieldNiches)),
		Platform:        row.Get(contracts.FieldPlatform),
		Rating:          clampFloat(parseFloat(row.Get(contracts.FieldRating)), 0, 5),
		SalesCount:      maxInt(parseInt(row.Get(contracts.FieldSalesCount)), 0),
		PromoStart:      parseDate(row.Get(contracts.FieldPromoStart)),
		PromoEnd:        parseDate(row.Get(contracts.FieldPromoEnd)),
		PublishedAt:     parseDate(row.Get(contracts.FieldPublishedAt)),
		Status:          row.Get(contracts.FieldStatus),
	}

	if p.Category == "" {
		p.Category = domain.DefaultCategory
	}
	if p.Platform == "" {
		p.Platform = n.opts.PlatformDefault
	}
	if p.Status == "" {
		p.Status = domain.DefaultStatus
	}
	if p.OriginalPrice < 0 {
		p.OriginalPrice = 0
	}
	if p.PromoPrice < 0 {
		p.PromoPrice = 0
	}
	p.BackfillDiscount()

	if err := n.opts.Policy.Validate(p); err != nil {
		return nil, err
	}
	return p, nil
}

// Rows normalizes a whole batch, enforcing id uniqueness across it.
// Rejected rows are logged and counted, never fatal.
func (n *Normalizer) Rows(rows []contracts.RawRow) ([]domain.Product, []Rejection) {
	products := make([]domain.Product, 0, len(rows))
	var rejected []Rejection
	seen := make(map[string]struct{}, len(rows))

	for i, row := range rows {
		p, err := n.Row(row)
		if err == nil {
			if _, dup := seen[p.ID]; dup {
				err = domain.ErrDuplicateID
			}
		}
		if err != nil {
			rejected = append(rejected, Rejection{Index: i, ID: row.Get(contracts.FieldID), Err: err})
			observability.RowsRejected.Inc()
			log.Printf("normalize: dropping row %d (id %q): %v", i, row.Get(contracts.FieldID), err)
			continue
		}
		seen[p.ID] = struct{}{}
		products = append(products, *p)
	}
	return products, rejected
}

// parseFloat coerces a numeric string to float64, returning 0 for
// anything unparsable. Brazilian sheets sometimes use a decimal comma;
// that is tolerated when no dot is present.
func parseFloat(s string) float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	if strings.Contains(s, ",") && !strings.Contains(s, ".") {
		s = strings.ReplaceAll(s, ",", ".")
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return f
}

// parseInt coerces to int via float parsing so "4.0" and "4" both work.
func parseInt(s string) int {
	return int(math.Round(parseFloat(s)))
}

// parseDate parses a loosely-formatted date. Invalid or missing values
// become nil, never a sentinel time.
func parseDate(s string) *time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	t, err := dateparse.ParseAny(s)
	if err != nil {
		return nil
	}
	t = t.UTC()
	return &t
}

// splitNiches splits the comma-delimited niche list, trimming items and
// discarding empties. Duplicates are kept; the field is order-preserving.
func splitNiches(s string) []string {
	out := []string{}
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// parseImages accepts, in priority order: a JSON array literal, a
// pipe-delimited list, a comma-delimited list, then a single bare value.
// Every item goes through NormalizeImageRef.
func parseImages(s string) []string {
	s = strings.TrimSpace(s)
	if s == "" {
		return []string{}
	}

	var parts []string
	switch {
	case strings.HasPrefix(s, "["):
		var arr []string
		if err := json.Unmarshal([]byte(s), &arr); err == nil {
			parts = arr
		} else {
			parts = []string{s}
		}
	case strings.Contains(s, "|"):
		parts = strings.Split(s, "|")
	case strings.HasPrefix(s, "data:"), reMimeBase64.MatchString(s):
		// The comma inside a data URI is not a list delimiter.
		parts = []string{s}
	case strings.Contains(s, ","):
		parts = strings.Split(s, ",")
	default:
		parts = []string{s}
	}

	out := []string{}
	for _, part := range parts {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, NormalizeImageRef(p))
		}
	}
	return out
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clampFloat(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func maxInt(v, lo int) int {
	if v < lo {
		return lo
	}
	return v
}
