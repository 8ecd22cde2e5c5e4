package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBackfillDiscount_ComputedFromPrices(t *testing.T) {
	p := &Product{OriginalPrice: 100, PromoPrice: 50}
	p.BackfillDiscount()
	assert.Equal(t, 50, p.DiscountPercent)

	// Rounded to nearest integer percent.
	p = &Product{OriginalPrice: 3, PromoPrice: 2}
	p.BackfillDiscount()
	assert.Equal(t, 33, p.DiscountPercent)
}

func TestBackfillDiscount_KeepsExplicitValue(t *testing.T) {
	p := &Product{OriginalPrice: 100, PromoPrice: 50, DiscountPercent: 10}
	p.BackfillDiscount()
	assert.Equal(t, 10, p.DiscountPercent)
}

func TestBackfillDiscount_NoOriginalPrice(t *testing.T) {
	p := &Product{PromoPrice: 50}
	p.BackfillDiscount()
	assert.Equal(t, 0, p.DiscountPercent)
}

func TestBackfillDiscount_ClampsNegative(t *testing.T) {
	// Promo above original would compute a negative percent.
	p := &Product{OriginalPrice: 50, PromoPrice: 80}
	p.BackfillDiscount()
	assert.Equal(t, 0, p.DiscountPercent)
}

func TestPolicyStrictCSV(t *testing.T) {
	valid := Product{ID: "1", Title: "Fone", AffiliateLink: "http://x", PromoPrice: 10}
	require.NoError(t, PolicyStrictCSV.Validate(&valid))

	cases := []struct {
		name string
		p    Product
		want error
	}{
		{"missing id", Product{Title: "t", AffiliateLink: "l", PromoPrice: 1}, ErrMissingID},
		{"missing title", Product{ID: "1", AffiliateLink: "l", PromoPrice: 1}, ErrMissingTitle},
		{"missing link", Product{ID: "1", Title: "t", PromoPrice: 1}, ErrMissingAffiliateLink},
		{"zero promo price", Product{ID: "1", Title: "t", AffiliateLink: "l"}, ErrInvalidPromoPrice},
		{"negative promo price", Product{ID: "1", Title: "t", AffiliateLink: "l", PromoPrice: -5}, ErrInvalidPromoPrice},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.ErrorIs(t, PolicyStrictCSV.Validate(&tc.p), tc.want)
		})
	}
}

func TestPolicyLenientDB_OnlyRequiresID(t *testing.T) {
	// The database path keeps rows lacking affiliate link or positive
	// promo price; only a missing id rejects.
	p := Product{ID: "1"}
	require.NoError(t, PolicyLenientDB.Validate(&p))

	p = Product{}
	assert.ErrorIs(t, PolicyLenientDB.Validate(&p), ErrMissingID)
}

func TestPromoActiveAt(t *testing.T) {
	now := time.Date(2025, time.June, 15, 12, 0, 0, 0, time.UTC)
	start := now.Add(-time.Hour)
	end := now.Add(time.Hour)

	assert.True(t, (&Product{PromoStart: &start, PromoEnd: &end}).PromoActiveAt(now))
	assert.False(t, (&Product{PromoStart: &end}).PromoActiveAt(now), "starts in the future")
	assert.False(t, (&Product{PromoEnd: &start}).PromoActiveAt(now), "already ended")
	assert.True(t, (&Product{}).PromoActiveAt(now), "no window means always active")
}

func TestHasNiche(t *testing.T) {
	p := Product{Niches: []string{"Promo-Relampago", " novidades "}}
	assert.True(t, p.HasNiche("promo-relampago"))
	assert.True(t, p.HasNiche("NOVIDADES"))
	assert.False(t, p.HasNiche("mais-vendidos"))
	assert.False(t, p.HasNiche(""))
}
