package source

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/achadinhos/catalog-service/internal/app/catalog/contracts"
	"github.com/achadinhos/catalog-service/internal/app/catalog/domain"
	"github.com/achadinhos/catalog-service/internal/observability"
)

const csvFetchTimeout = 15 * time.Second

// CSVSource fetches the published spreadsheet export. Any failure —
// network error, non-2xx status, unparsable header — is returned to the
// caller as an error; the loader decides whether to substitute the
// built-in sample dataset.
type CSVSource struct {
	url    string
	client *http.Client
}

// NewCSVSource creates a CSVSource for the given published-sheet URL.
func NewCSVSource(url string) *CSVSource {
	return &CSVSource{
		url:    url,
		client: &http.Client{Timeout: csvFetchTimeout},
	}
}

func (s *CSVSource) Name() string { return "csv" }

// Fetch downloads and parses the sheet. Rows whose column count does not
// match the header are skipped with a warning; only header-level problems
// abort the whole fetch.
func (s *CSVSource) Fetch(ctx context.Context) ([]contracts.RawRow, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return nil, fmt.Errorf("csv source: build request: %w", err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("csv source: fetch %s: %w", s.url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("csv source: fetch %s: unexpected status %d", s.url, resp.StatusCode)
	}

	return parseCSV(resp.Body)
}

// parseCSV reads header-keyed rows from r and remaps the columns onto the
// canonical field names.
func parseCSV(r io.Reader) ([]contracts.RawRow, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1 // row-level mismatches are handled below

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("csv source: read header: %w", err)
	}
	if len(header) > 0 {
		// Published sheets may carry a UTF-8 BOM on the first cell.
		header[0] = strings.TrimPrefix(header[0], "\ufeff")
	}

	mapped := mapColumns(header)
	if len(mapped) == 0 {
		return nil, fmt.Errorf("csv source: header has no recognizable columns: %w", domain.ErrNoTable)
	}

	// Column index per canonical field.
	index := make(map[string]int, len(mapped))
	for field, actual := range mapped {
		for i, h := range header {
			if strings.EqualFold(strings.TrimSpace(h), strings.TrimSpace(actual)) {
				index[field] = i
				break
			}
		}
	}

	var rows []contracts.RawRow
	line := 1
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			log.Printf("csv source: skipping line %d: %v", line, err)
			continue
		}
		if len(record) != len(header) {
			log.Printf("csv source: skipping line %d: %d columns, header has %d", line, len(record), len(header))
			observability.RowsRejected.Inc()
			continue
		}

		row := make(contracts.RawRow, len(index))
		for field, i := range index {
			row[field] = record[i]
		}
		rows = append(rows, row)
	}

	return rows, nil
}
