package importer

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"giftstore/internal/domain"
)

type ProductWriter interface {
	Upsert(ctx context.Context, product domain.Product) (*domain.Product, error)
}

// CSVImporter bulk-loads back-office catalog products from a CSV export.
// Expected header: title,description,price_cents,image_url,amount,kind.
type CSVImporter struct {
	reader      *csv.Reader
	productRepo ProductWriter
}

func NewCSVImporter(r io.Reader, repo ProductWriter) *CSVImporter {
	csvr := csv.NewReader(r)
	csvr.FieldsPerRecord = -1 // rows may have trailing commas
	return &CSVImporter{
		reader:      csvr,
		productRepo: repo,
	}
}

// Run parses CSV rows and upserts products keyed by title.
func (i *CSVImporter) Run(ctx context.Context) (int, error) {
	headers, err := i.reader.Read()
	if err != nil {
		return 0, fmt.Errorf("read headers: %w", err)
	}
	index := headerIndex(headers)

	imported := 0
	for {
		record, err := i.reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return imported, fmt.Errorf("read row: %w", err)
		}

		product, err := parseRow(record, index)
		if err != nil {
			return imported, err
		}
		if product == nil {
			continue
		}

		if _, err := i.productRepo.Upsert(ctx, *product); err != nil {
			return imported, fmt.Errorf("upsert product %q: %w", product.Title, err)
		}
		imported++
	}

	return imported, nil
}

func headerIndex(headers []string) map[string]int {
	index := make(map[string]int, len(headers))
	for i, h := range headers {
		index[strings.ToLower(strings.TrimSpace(h))] = i
	}
	return index
}

func parseRow(record []string, index map[string]int) (*domain.Product, error) {
	title := field(record, index, "title")
	if title == "" {
		// Blank rows are tolerated; anything else missing a title is not.
		if allBlank(record) {
			return nil, nil
		}
		return nil, fmt.Errorf("invalid product row (missing title): %v", record)
	}

	cents, err := strconv.ParseInt(field(record, index, "price_cents"), 10, 64)
	if err != nil || cents <= 0 {
		return nil, fmt.Errorf("invalid price for %q", title)
	}

	amount := int64(0)
	if raw := field(record, index, "amount"); raw != "" {
		amount, err = strconv.ParseInt(raw, 10, 64)
		if err != nil || amount < 0 {
			return nil, fmt.Errorf("invalid amount for %q", title)
		}
	}

	kind := field(record, index, "kind")
	switch kind {
	case domain.ProductKindVBucks, domain.ProductKindRobux, domain.ProductKindItem:
	default:
		return nil, fmt.Errorf("invalid kind %q for %q", kind, title)
	}

	return &domain.Product{
		Title:       title,
		Description: field(record, index, "description"),
		PriceCents:  cents,
		ImageURL:    field(record, index, "image_url"),
		Amount:      amount,
		Kind:        kind,
	}, nil
}

func field(record []string, index map[string]int, name string) string {
	i, ok := index[name]
	if !ok || i >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[i])
}

func allBlank(record []string) bool {
	for _, f := range record {
		if strings.TrimSpace(f) != "" {
			return false
		}
	}
	return true
}
