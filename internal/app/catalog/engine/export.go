package engine

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/achadinhos/catalog-service/internal/app/catalog/domain"
)

// ExportFormat selects the serialization of an export.
type ExportFormat string

const (
	ExportJSON ExportFormat = "json"
	ExportCSV  ExportFormat = "csv"
)

// exportHeader is the sheet's column order, reused verbatim so an export
// can be pasted back into the published sheet.
var exportHeader = []string{
	"id", "titulo", "descricao", "preco_original", "preco_promocional",
	"desconto_percentual", "link_afiliado", "imagens_base64",
	"categoria_principal", "nichos", "plataforma", "avaliacao", "vendas",
	"data_inicio_promocao", "data_fim_promocao", "data_publicacao", "status",
}

// Export serializes the given (already filtered) products. JSON output
// round-trips through encoding/json back into an equal collection; CSV
// output re-serializes with the original sheet columns.
func Export(products []domain.Product, format ExportFormat) ([]byte, error) {
	switch format {
	case ExportJSON:
		return json.MarshalIndent(products, "", "  ")
	case ExportCSV:
		return exportCSV(products)
	default:
		return nil, fmt.Errorf("unsupported export format %q", format)
	}
}

func exportCSV(products []domain.Product) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(exportHeader); err != nil {
		return nil, err
	}
	for _, p := range products {
		record := []string{
			p.ID,
			p.Title,
			p.Description,
			formatFloat(p.OriginalPrice),
			formatFloat(p.PromoPrice),
			strconv.Itoa(p.DiscountPercent),
			p.AffiliateLink,
			strings.Join(p.Images, "|"),
			p.Category,
			strings.Join(p.Niches, ","),
			p.Platform,
			formatFloat(p.Rating),
			strconv.Itoa(p.SalesCount),
			formatDate(p.PromoStart),
			formatDate(p.PromoEnd),
			formatDate(p.PublishedAt),
			p.Status,
		}
		if err := w.Write(record); err != nil {
			return nil, err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func formatDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}
