package source

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"
	"strings"

	_ "modernc.org/sqlite"

	"github.com/achadinhos/catalog-service/internal/app/catalog/contracts"
	"github.com/achadinhos/catalog-service/internal/app/catalog/domain"
)

// candidateTables lists the table names tried in order before falling back
// to the first user table found in sqlite_master.
var candidateTables = []string{"produtos", "products"}

// SQLiteSource reads the product table out of a single-file embedded
// database. The first readable candidate path wins. "No readable file",
// "no recognizable table" and "empty result" are all reported as errors;
// the loader maps them to a terminal empty collection.
type SQLiteSource struct {
	paths []string
}

// NewSQLiteSource creates a SQLiteSource trying the given paths in order.
func NewSQLiteSource(paths []string) *SQLiteSource {
	return &SQLiteSource{paths: paths}
}

func (s *SQLiteSource) Name() string { return "sqlite" }

// Fetch opens the database, discovers the product table and its columns,
// and returns every row remapped onto the canonical field names.
func (s *SQLiteSource) Fetch(ctx context.Context) ([]contracts.RawRow, error) {
	path, err := s.firstReadablePath()
	if err != nil {
		return nil, err
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("sqlite source: open %s: %w", path, err)
	}
	defer db.Close()

	table, err := discoverTable(ctx, db)
	if err != nil {
		return nil, err
	}

	columns, err := tableColumns(ctx, db, table)
	if err != nil {
		return nil, err
	}

	mapped := mapColumns(columns)
	if len(mapped) == 0 {
		return nil, fmt.Errorf("sqlite source: table %q has no recognizable columns: %w", table, domain.ErrNoTable)
	}

	rows, err := selectRows(ctx, db, table, mapped)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("sqlite source: table %q: %w", table, domain.ErrEmptyDataset)
	}

	log.Printf("sqlite source: loaded %d rows from %s (table %q)", len(rows), path, table)
	return rows, nil
}

func (s *SQLiteSource) firstReadablePath() (string, error) {
	for _, p := range s.paths {
		info, err := os.Stat(p)
		if err == nil && !info.IsDir() {
			return p, nil
		}
	}
	return "", fmt.Errorf("sqlite source: tried %v: %w", s.paths, domain.ErrNoDatabaseFile)
}

// discoverTable returns the first candidate table that exists, falling
// back to the first non-system table in sqlite_master.
func discoverTable(ctx context.Context, db *sql.DB) (string, error) {
	names, err := userTables(ctx, db)
	if err != nil {
		return "", err
	}

	for _, cand := range candidateTables {
		for _, name := range names {
			if strings.EqualFold(name, cand) {
				return name, nil
			}
		}
	}
	if len(names) > 0 {
		return names[0], nil
	}
	return "", domain.ErrNoTable
}

func userTables(ctx context.Context, db *sql.DB) ([]string, error) {
	rows, err := db.QueryContext(ctx,
		`SELECT name FROM sqlite_master WHERE type = 'table' AND name NOT LIKE 'sqlite_%' ORDER BY rowid`)
	if err != nil {
		return nil, fmt.Errorf("sqlite source: list tables: %w", err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("sqlite source: scan table name: %w", err)
		}
		names = append(names, name)
	}
	return names, rows.Err()
}

func tableColumns(ctx context.Context, db *sql.DB, table string) ([]string, error) {
	rows, err := db.QueryContext(ctx, fmt.Sprintf(`PRAGMA table_info(%q)`, table))
	if err != nil {
		return nil, fmt.Errorf("sqlite source: introspect %q: %w", table, err)
	}
	defer rows.Close()

	var columns []string
	for rows.Next() {
		var (
			cid, notNull, pk int
			name, ctype      string
			dflt             sql.NullString
		)
		if err := rows.Scan(&cid, &name, &ctype, &notNull, &dflt, &pk); err != nil {
			return nil, fmt.Errorf("sqlite source: scan column info: %w", err)
		}
		columns = append(columns, name)
	}
	return columns, rows.Err()
}

// selectRows queries only the mapped subset of columns and scans every
// value as text; type coercion happens later in the normalizer, the same
// as for CSV cells.
func selectRows(ctx context.Context, db *sql.DB, table string, mapped map[string]string) ([]contracts.RawRow, error) {
	fields := make([]string, 0, len(mapped))
	selects := make([]string, 0, len(mapped))
	for _, field := range fieldOrder {
		actual, ok := mapped[field]
		if !ok {
			continue
		}
		fields = append(fields, field)
		selects = append(selects, fmt.Sprintf("%q", actual))
	}

	query := fmt.Sprintf(`SELECT %s FROM %q`, strings.Join(selects, ", "), table)
	rows, err := db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("sqlite source: query %q: %w", table, err)
	}
	defer rows.Close()

	var out []contracts.RawRow
	for rows.Next() {
		values := make([]sql.NullString, len(fields))
		dest := make([]any, len(fields))
		for i := range values {
			dest[i] = &values[i]
		}
		if err := rows.Scan(dest...); err != nil {
			log.Printf("sqlite source: skipping row: %v", err)
			continue
		}

		row := make(contracts.RawRow, len(fields))
		for i, field := range fields {
			if values[i].Valid {
				row[field] = values[i].String
			}
		}
		out = append(out, row)
	}
	return out, rows.Err()
}
