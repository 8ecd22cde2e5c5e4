package source

import (
	"time"

	"github.com/achadinhos/catalog-service/internal/app/catalog/domain"
)

// SampleProducts returns the built-in dataset shown when the published
// sheet cannot be fetched. Six products covering every niche carousel so
// the page never renders empty. The slice is rebuilt on every call so
// callers may not alias a shared backing array.
func SampleProducts() []domain.Product {
	published := time.Date(2025, time.March, 10, 12, 0, 0, 0, time.UTC)

	products := []domain.Product{
		{
			ID:            "sample-1",
			Title:         "Fone de Ouvido Bluetooth TWS",
			Description:   "Fone sem fio com cancelamento de ruído e estojo de recarga.",
			OriginalPrice: 199.90,
			PromoPrice:    89.90,
			AffiliateLink: "https://example.com/afiliado/fone-tws",
			Images:        []string{"https://picsum.photos/seed/fone/400/400"},
			Category:      "Eletronicos",
			Niches:        []string{"promo-relampago", "mais-vendidos"},
			Platform:      "Shopee",
			Rating:        4.7,
			SalesCount:    1520,
			PublishedAt:   timePtr(published),
			Status:        domain.DefaultStatus,
		},
		{
			ID:            "sample-2",
			Title:         "Smartwatch Esportivo",
			Description:   "Monitor cardíaco, GPS e bateria para 10 dias.",
			OriginalPrice: 349.00,
			PromoPrice:    219.00,
			AffiliateLink: "https://example.com/afiliado/smartwatch",
			Images:        []string{"https://picsum.photos/seed/watch/400/400"},
			Category:      "Eletronicos",
			Niches:        []string{"novidades"},
			Platform:      "AliExpress",
			Rating:        4.5,
			SalesCount:    870,
			PublishedAt:   timePtr(published.AddDate(0, 0, 3)),
			Status:        domain.DefaultStatus,
		},
		{
			ID:            "sample-3",
			Title:         "Air Fryer 5L Digital",
			Description:   "Fritadeira elétrica sem óleo com painel touch.",
			OriginalPrice: 499.90,
			PromoPrice:    329.90,
			AffiliateLink: "https://example.com/afiliado/airfryer",
			Images:        []string{"https://picsum.photos/seed/airfryer/400/400"},
			Category:      "Casa e Cozinha",
			Niches:        []string{"mais-vendidos"},
			Platform:      "Amazon",
			Rating:        4.8,
			SalesCount:    2310,
			PublishedAt:   timePtr(published.AddDate(0, 0, -7)),
			Status:        domain.DefaultStatus,
		},
		{
			ID:            "sample-4",
			Title:         "Kit Organizadores de Gaveta",
			Description:   "Conjunto com 8 divisórias ajustáveis.",
			OriginalPrice: 79.90,
			PromoPrice:    44.90,
			AffiliateLink: "https://example.com/afiliado/organizadores",
			Images:        []string{"https://picsum.photos/seed/gaveta/400/400"},
			Category:      "Casa e Cozinha",
			Niches:        []string{"promo-relampago"},
			Platform:      "Shopee",
			Rating:        4.3,
			SalesCount:    640,
			PublishedAt:   timePtr(published.AddDate(0, 0, 1)),
			Status:        domain.DefaultStatus,
		},
		{
			ID:            "sample-5",
			Title:         "Tênis de Corrida Amortecido",
			Description:   "Solado em espuma responsiva, numeração 34 a 44.",
			OriginalPrice: 299.90,
			PromoPrice:    179.90,
			AffiliateLink: "https://example.com/afiliado/tenis",
			Images:        []string{"https://picsum.photos/seed/tenis/400/400"},
			Category:      "Moda",
			Niches:        []string{"novidades", "mais-vendidos"},
			Platform:      "Shein",
			Rating:        4.4,
			SalesCount:    1130,
			PublishedAt:   timePtr(published.AddDate(0, 0, 5)),
			Status:        domain.DefaultStatus,
		},
		{
			ID:            "sample-6",
			Title:         "Luminária LED de Mesa",
			Description:   "Três temperaturas de cor e braço articulado.",
			OriginalPrice: 129.90,
			PromoPrice:    69.90,
			AffiliateLink: "https://example.com/afiliado/luminaria",
			Images:        []string{"https://picsum.photos/seed/luminaria/400/400"},
			Category:      "Casa e Cozinha",
			Niches:        []string{"novidades"},
			Platform:      "AliExpress",
			Rating:        4.6,
			SalesCount:    420,
			PublishedAt:   timePtr(published.AddDate(0, 0, 2)),
			Status:        domain.DefaultStatus,
		},
	}

	for i := range products {
		products[i].BackfillDiscount()
	}
	return products
}

func timePtr(t time.Time) *time.Time { return &t }
