package engine

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/achadinhos/catalog-service/internal/app/catalog/domain"
)

func TestExportJSON_RoundTrip(t *testing.T) {
	eng := New(fixture())
	state := NewFilterState()
	state.Set(DimPlatform, "Shopee")
	filtered := eng.Filter(state)

	data, err := Export(filtered, ExportJSON)
	require.NoError(t, err)

	var back []domain.Product
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, filtered, back, "re-parsing yields the collection at export time")
}

func TestExportCSV_HeaderAndValues(t *testing.T) {
	published := fixture()[0].PublishedAt
	products := []domain.Product{{
		ID:              "1",
		Title:           "Fone",
		Description:     "Desc",
		OriginalPrice:   100,
		PromoPrice:      49.9,
		DiscountPercent: 50,
		AffiliateLink:   "http://x",
		Images:          []string{"img1", "img2"},
		Category:        "Eletronicos",
		Niches:          []string{"promo", "novidades"},
		Platform:        "Shopee",
		Rating:          4.5,
		SalesCount:      10,
		PublishedAt:     published,
		Status:          "published",
	}}

	data, err := Export(products, ExportCSV)
	require.NoError(t, err)

	records, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, exportHeader, records[0])

	row := records[1]
	assert.Equal(t, "1", row[0])
	assert.Equal(t, "49.9", row[4])
	assert.Equal(t, "50", row[5])
	assert.Equal(t, "img1|img2", row[7], "images re-joined with pipes")
	assert.Equal(t, "promo,novidades", row[9], "niches re-joined with commas")
	assert.Equal(t, "", row[13], "nil dates serialize empty")
}

func TestExport_UnsupportedFormat(t *testing.T) {
	_, err := Export(nil, ExportFormat("xml"))
	require.Error(t, err)
}
