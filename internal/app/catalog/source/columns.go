package source

import (
	"strings"

	"github.com/achadinhos/catalog-service/internal/app/catalog/contracts"
)

// columnCandidates maps each canonical field to the column names it may
// appear under in either backend. Portuguese names come from the published
// sheet, English ones from tool-generated database files. Matching is
// case-insensitive; first hit wins.
var columnCandidates = map[string][]string{
	contracts.FieldID:              {"id", "produto_id", "product_id"},
	contracts.FieldTitle:           {"titulo", "title", "nome", "name"},
	contracts.FieldDescription:     {"descricao", "description"},
	contracts.FieldOriginalPrice:   {"preco_original", "original_price"},
	contracts.FieldPromoPrice:      {"preco_promocional", "promo_price", "promotional_price"},
	contracts.FieldDiscountPercent: {"desconto_percentual", "discount_percent"},
	contracts.FieldAffiliateLink:   {"link_afiliado", "affiliate_link"},
	contracts.FieldImages:          {"imagens_base64", "imagens", "images", "images_base64"},
	contracts.FieldCategory:        {"categoria_principal", "categoria", "category"},
	contracts.FieldNiches:          {"nichos", "niches"},
	contracts.FieldPlatform:        {"plataforma", "platform"},
	contracts.FieldRating:          {"avaliacao", "rating"},
	contracts.FieldSalesCount:      {"vendas", "sales", "sales_count"},
	contracts.FieldPromoStart:      {"data_inicio_promocao", "promo_start"},
	contracts.FieldPromoEnd:        {"data_fim_promocao", "promo_end"},
	contracts.FieldPublishedAt:     {"data_publicacao", "published_at"},
	contracts.FieldStatus:          {"status"},
}

// fieldOrder fixes a deterministic order for canonical fields, used when
// building queries and keying scan destinations.
var fieldOrder = []string{
	contracts.FieldID,
	contracts.FieldTitle,
	contracts.FieldDescription,
	contracts.FieldOriginalPrice,
	contracts.FieldPromoPrice,
	contracts.FieldDiscountPercent,
	contracts.FieldAffiliateLink,
	contracts.FieldImages,
	contracts.FieldCategory,
	contracts.FieldNiches,
	contracts.FieldPlatform,
	contracts.FieldRating,
	contracts.FieldSalesCount,
	contracts.FieldPromoStart,
	contracts.FieldPromoEnd,
	contracts.FieldPublishedAt,
	contracts.FieldStatus,
}

// mapColumns resolves the subset of canonical fields present in the given
// column list. The result maps canonical field name -> actual column name.
// Unknown columns are ignored.
func mapColumns(columns []string) map[string]string {
	lower := make(map[string]string, len(columns))
	for _, c := range columns {
		lower[strings.ToLower(strings.TrimSpace(c))] = c
	}

	mapped := make(map[string]string)
	for field, candidates := range columnCandidates {
		for _, cand := range candidates {
			if actual, ok := lower[cand]; ok {
				mapped[field] = actual
				break
			}
		}
	}
	return mapped
}
