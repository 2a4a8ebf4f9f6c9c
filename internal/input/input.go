// Package input reads property values and bulk rows from the sources the
// CLI accepts: CSV tables, JSON arrays and objects, and key=value text.
package input

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/mesh-intelligence/ldforge/internal/catalog"
	"github.com/mesh-intelligence/ldforge/internal/schema"
	"github.com/mesh-intelligence/ldforge/pkg/types"
)

// ReadCSV reads a table whose first row is the header. Each data row becomes
// a record keyed by header names in column order. Empty cells are left out.
// Cells of array-kind columns are split on "|" so that a filled-in CSV
// template reads back as lists.
func ReadCSV(r io.Reader) ([]any, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read CSV header: %w", err)
	}
	for i := range header {
		header[i] = strings.TrimSpace(header[i])
	}
	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], "\ufeff")
	}

	var rows []any
	for {
		cells, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read CSV row %d: %w", len(rows)+1, err)
		}
		rec := types.NewRecord()
		for i, cell := range cells {
			if i >= len(header) || header[i] == "" || cell == "" {
				continue
			}
			rec.Set(header[i], cellValue(header[i], cell))
		}
		rows = append(rows, rec)
	}
	return rows, nil
}

func cellValue(column, cell string) any {
	if catalog.Classify(column) != types.KindArray || !strings.Contains(cell, schema.ArraySeparator) {
		return cell
	}
	var items []string
	for _, item := range strings.Split(cell, schema.ArraySeparator) {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}

// ReadJSONRows decodes a JSON array of rows. Objects keep their key order.
// Elements that are not objects are returned as-is and fail later at row
// level.
func ReadJSONRows(data []byte) ([]any, error) {
	v, err := types.DecodeOrdered(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", types.ErrInvalidJSON, err)
	}
	rows, ok := v.([]any)
	if !ok {
		return nil, fmt.Errorf("%w: want an array of objects, got %T", types.ErrInvalidJSON, v)
	}
	return rows, nil
}

// ReadProperties decodes a JSON object of property values.
func ReadProperties(data []byte) (*types.Record, error) {
	v, err := types.DecodeOrdered(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", types.ErrInvalidJSON, err)
	}
	rec, ok := v.(*types.Record)
	if !ok {
		return nil, fmt.Errorf("%w: want an object, got %T", types.ErrInvalidJSON, v)
	}
	return rec, nil
}

// ParseAssignments turns key=value pairs into properties in first-seen
// order. Repeating an array-kind key appends to its list; repeating any
// other key replaces the value.
func ParseAssignments(pairs []string) (*types.Record, error) {
	rec := types.NewRecord()
	for _, pair := range pairs {
		key, value, err := splitAssignment(pair)
		if err != nil {
			return nil, err
		}
		if catalog.Classify(key) != types.KindArray {
			rec.Set(key, value)
			continue
		}
		prev, _ := rec.Get(key)
		items, _ := prev.([]string)
		rec.Set(key, append(items, value))
	}
	return rec, nil
}

// ParseRow parses one manually entered row of ";"-separated key=value
// pairs. Pairs with an empty value are dropped, so a row with no values
// yields an empty record.
func ParseRow(text string) (*types.Record, error) {
	var pairs []string
	for _, part := range strings.Split(text, ";") {
		if strings.TrimSpace(part) == "" {
			continue
		}
		pairs = append(pairs, part)
	}
	rec, err := ParseAssignments(pairs)
	if err != nil {
		return nil, err
	}
	for _, k := range rec.Keys() {
		if v, _ := rec.Get(k); v == "" {
			rec.Delete(k)
		}
	}
	return rec, nil
}

// ManualRows parses manually entered rows and drops those without values.
func ManualRows(lines []string) ([]any, error) {
	var rows []any
	for i, line := range lines {
		rec, err := ParseRow(line)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+1, err)
		}
		if rec.Len() > 0 {
			rows = append(rows, rec)
		}
	}
	return rows, nil
}

func splitAssignment(pair string) (string, string, error) {
	key, value, ok := strings.Cut(pair, "=")
	key = strings.TrimSpace(key)
	if !ok || key == "" {
		return "", "", fmt.Errorf("%w: %q", types.ErrInvalidAssignment, pair)
	}
	return key, strings.TrimSpace(value), nil
}
