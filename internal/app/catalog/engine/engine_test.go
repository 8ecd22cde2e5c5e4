package engine

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/achadinhos/catalog-service/internal/app/catalog/domain"
)

func fixture() []domain.Product {
	t1 := time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)
	t2 := t1.AddDate(0, 1, 0)
	t3 := t1.AddDate(0, 2, 0)

	return []domain.Product{
		{ID: "1", Title: "Fone Bluetooth", Description: "sem fio", Category: "Eletronicos", Platform: "Shopee", PromoPrice: 80, DiscountPercent: 60, Rating: 4.7, SalesCount: 100, PublishedAt: &t2, Niches: []string{"promo"}},
		{ID: "2", Title: "Relogio", Description: "pulseira", Category: "Moda", Platform: "Amazon", PromoPrice: 150, DiscountPercent: 20, Rating: 4.1, SalesCount: 500, PublishedAt: &t3, Niches: []string{"promo", "novidades"}},
		{ID: "3", Title: "Luminaria", Description: "mesa com fone embutido", Category: "Casa", Platform: "Shopee", PromoPrice: 40, DiscountPercent: 45, Rating: 3.9, SalesCount: 40, PublishedAt: nil, Niches: []string{"novidades"}},
		{ID: "4", Title: "Tenis", Description: "corrida", Category: "Moda", Platform: "Shein", PromoPrice: 120, DiscountPercent: 35, Rating: 4.9, SalesCount: 900, PublishedAt: &t1, Niches: nil},
	}
}

func ids(products []domain.Product) []string {
	out := make([]string, len(products))
	for i, p := range products {
		out[i] = p.ID
	}
	return out
}

func TestFilter_SearchIsCaseInsensitiveAcrossFields(t *testing.T) {
	eng := New(fixture())

	state := NewFilterState()
	state.Set(DimSearch, "FONE")

	// "Fone Bluetooth" by title, "Luminaria" by description.
	got := eng.Filter(state)
	assert.ElementsMatch(t, []string{"1", "3"}, ids(got))

	// Same two regardless of sort key.
	state.Set(DimSort, string(SortSales))
	state.Set(DimSearch, "FONE")
	got = eng.Filter(state)
	assert.ElementsMatch(t, []string{"1", "3"}, ids(got))
}

func TestFilter_ExactPlatformAndCategory(t *testing.T) {
	eng := New(fixture())

	state := NewFilterState()
	state.Set(DimPlatform, "Shopee")
	assert.ElementsMatch(t, []string{"1", "3"}, ids(eng.Filter(state)))

	state = NewFilterState()
	state.Set(DimCategory, "Moda")
	assert.ElementsMatch(t, []string{"2", "4"}, ids(eng.Filter(state)))

	// Empty filter value means no constraint.
	state = NewFilterState()
	assert.Len(t, eng.Filter(state), 4)
}

func TestFilter_SortKeys(t *testing.T) {
	eng := New(fixture())

	cases := []struct {
		key  SortKey
		want []string
	}{
		{SortDiscount, []string{"1", "3", "4", "2"}},
		{SortPriceLow, []string{"3", "1", "4", "2"}},
		{SortPriceHigh, []string{"2", "4", "1", "3"}},
		{SortRating, []string{"4", "1", "2", "3"}},
		{SortSales, []string{"4", "2", "1", "3"}},
		// Newest: nil publishedAt sorts last (treated as epoch).
		{SortNewest, []string{"2", "1", "4", "3"}},
	}
	for _, tc := range cases {
		t.Run(string(tc.key), func(t *testing.T) {
			state := NewFilterState()
			state.Sort = tc.key
			assert.Equal(t, tc.want, ids(eng.Filter(state)))
		})
	}
}

func TestFilter_PriceLowIsReverseOfPriceHigh(t *testing.T) {
	// No ties in the fixture, so the orderings must be exact mirrors.
	eng := New(fixture())

	low := NewFilterState()
	low.Sort = SortPriceLow
	high := NewFilterState()
	high.Sort = SortPriceHigh

	asc := ids(eng.Filter(low))
	desc := ids(eng.Filter(high))
	require.Len(t, desc, len(asc))
	for i := range asc {
		assert.Equal(t, asc[i], desc[len(desc)-1-i])
	}
}

func TestFilter_StableOnTies(t *testing.T) {
	// Two products with the same discount keep load order.
	products := []domain.Product{
		{ID: "a", DiscountPercent: 50},
		{ID: "b", DiscountPercent: 50},
		{ID: "c", DiscountPercent: 70},
	}
	eng := New(products)
	got := eng.Filter(NewFilterState())
	assert.Equal(t, []string{"c", "a", "b"}, ids(got))
}

func TestGetPage_AppendWindowScenario(t *testing.T) {
	// 25 filtered items, page size 12, page 3 with append mode returns
	// only item 25 and signals no more pages.
	products := make([]domain.Product, 25)
	for i := range products {
		products[i] = domain.Product{ID: fmt.Sprintf("p%02d", i+1)}
	}
	eng := New(products)

	state := NewFilterState()
	state.Page = 3

	page := eng.GetPage(state, WindowAppend)
	require.Len(t, page.Items, 1)
	assert.Equal(t, "p25", page.Items[0].ID)
	assert.Equal(t, 25, page.Total)
	assert.False(t, page.HasMore)
	assert.Equal(t, 24, page.StartIndex)
	assert.Equal(t, 25, page.EndIndex)
}

func TestGetPage_ReplaceWindowGrowsWithPage(t *testing.T) {
	products := make([]domain.Product, 25)
	for i := range products {
		products[i] = domain.Product{ID: fmt.Sprintf("p%02d", i+1)}
	}
	eng := New(products)

	state := NewFilterState()
	page := eng.GetPage(state, WindowReplace)
	assert.Len(t, page.Items, 12)
	assert.True(t, page.HasMore)

	state.Page = 2
	page = eng.GetPage(state, WindowReplace)
	assert.Len(t, page.Items, 24, "replace mode returns the whole visible set")
	assert.True(t, page.HasMore)
}

func TestGetPage_OutOfRange(t *testing.T) {
	eng := New(fixture())

	state := NewFilterState()
	state.Page = 10
	page := eng.GetPage(state, WindowAppend)
	assert.Empty(t, page.Items)
	assert.False(t, page.HasMore)
	assert.Equal(t, 4, page.Total)
}

func TestNicheSection_TruncatesAndIgnoresFilters(t *testing.T) {
	products := make([]domain.Product, 10)
	for i := range products {
		products[i] = domain.Product{ID: fmt.Sprintf("n%d", i), Niches: []string{"promo"}, Platform: "Shopee"}
	}
	eng := New(products)

	section := eng.NicheSection("promo", NichePageSize)
	assert.Len(t, section.Items, 8, "carousel truncated to 8")
	assert.Equal(t, 10, section.Total)

	// Sections always come from the full collection; the main filter
	// state does not narrow them.
	section = eng.NicheSection("promo", 0)
	assert.Len(t, section.Items, 8)
}

func TestDistinctPlatformsAndCategories(t *testing.T) {
	eng := New(fixture())
	assert.Equal(t, []string{"Shopee", "Amazon", "Shein"}, eng.Platforms())
	assert.Equal(t, []string{"Eletronicos", "Moda", "Casa"}, eng.Categories())
}
