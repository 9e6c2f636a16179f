// Package importer loads a catalog CSV export into the local store, for
// development and demo setups without a reachable backend.
package importer

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"storefront-client/internal/catalog"
	"storefront-client/internal/domain"
)

type CatalogWriter interface {
	ReplaceAll(ctx context.Context, products []domain.Product) error
}

// CSVImporter reads catalog CSV exports and atomically replaces the local
// catalog with their contents.
type CSVImporter struct {
	reader *csv.Reader
	store  CatalogWriter
}

func NewCSVImporter(r io.Reader, store CatalogWriter) *CSVImporter {
	csvr := csv.NewReader(r)
	csvr.FieldsPerRecord = -1 // rows may have trailing commas
	return &CSVImporter{
		reader: csvr,
		store:  store,
	}
}

// Run parses CSV rows and replaces the local catalog with them as one
// atomic operation.
func (i *CSVImporter) Run(ctx context.Context) (int, error) {
	headers, err := i.reader.Read()
	if err != nil {
		return 0, fmt.Errorf("read headers: %w", err)
	}
	index := headerIndex(headers)

	var products []domain.Product
	seen := map[string]struct{}{}

	for {
		record, err := i.reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return 0, fmt.Errorf("read row: %w", err)
		}

		p, err := parseRow(record, index)
		if err != nil {
			return 0, err
		}
		if p == nil {
			continue
		}
		if _, dup := seen[p.Code]; dup {
			return 0, fmt.Errorf("duplicate product code %q", p.Code)
		}
		seen[p.Code] = struct{}{}
		products = append(products, *p)
	}

	if err := i.store.ReplaceAll(ctx, products); err != nil {
		return 0, fmt.Errorf("replace catalog: %w", err)
	}
	return len(products), nil
}

func headerIndex(headers []string) map[string]int {
	idx := make(map[string]int, len(headers))
	for i, h := range headers {
		idx[h] = i
	}
	return idx
}

func parseRow(record []string, index map[string]int) (*domain.Product, error) {
	code := pick(record, index, "code")
	if code == "" {
		// Blank separator rows are tolerated.
		if strings.Join(record, "") == "" {
			return nil, nil
		}
		return nil, fmt.Errorf("row missing product code: %v", record)
	}

	name := pick(record, index, "name")
	category := pick(record, index, "category")
	if name == "" || category == "" {
		return nil, fmt.Errorf("invalid product row (missing required fields) for code %q", code)
	}

	centStr := pick(record, index, "price_cents")
	cents, err := strconv.ParseInt(centStr, 10, 64)
	if err != nil || cents < 0 {
		return nil, fmt.Errorf("invalid price %q for code %q", centStr, code)
	}

	return &domain.Product{
		Code:        code,
		Category:    category,
		Brand:       pick(record, index, "brand"),
		Name:        name,
		PriceCents:  cents,
		Description: pick(record, index, "description"),
		Image:       catalog.ImageForCode(code),
	}, nil
}

func pick(record []string, index map[string]int, key string) string {
	pos, ok := index[key]
	if !ok || pos >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[pos])
}
