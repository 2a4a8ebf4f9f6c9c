// Package output renders records for download: pretty JSON-LD, HTML script
// snippets, combined arrays, ZIP archives of individual files, and CSV
// templates.
package output

import (
	"archive/zip"
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/goccy/go-json"

	"github.com/mesh-intelligence/ldforge/pkg/types"
)

// Output formats.
const (
	FormatJSON = "json"
	FormatHTML = "html"
	FormatZIP  = "zip"
	FormatCSV  = "csv"
)

// File name prefixes for each kind of download.
const (
	PrefixSingle   = "schema"
	PrefixBulk     = "bulk_schemas"
	PrefixTemplate = "template"
)

const indent = "  "

// JSON encodes v with two-space indentation. HTML characters and non-ASCII
// text are written as-is and there is no trailing newline.
func JSON(v any) ([]byte, error) {
	compact, err := json.MarshalWithOption(v, json.DisableHTMLEscape())
	if err != nil {
		return nil, fmt.Errorf("encode JSON: %w", err)
	}
	var buf bytes.Buffer
	if err := json.Indent(&buf, compact, "", indent); err != nil {
		return nil, fmt.Errorf("indent JSON: %w", err)
	}
	return buf.Bytes(), nil
}

// HTMLSnippet wraps JSON-LD text in a script tag.
func HTMLSnippet(jsonText []byte) string {
	return fmt.Sprintf("<script type=\"application/ld+json\">\n%s\n</script>", jsonText)
}

// RecordHTML renders one record as an HTML script snippet.
func RecordHTML(rec *types.Record) (string, error) {
	b, err := JSON(rec)
	if err != nil {
		return "", err
	}
	return HTMLSnippet(b), nil
}

// BulkHTML renders each record as a numbered comment followed by its script
// snippet and a blank line.
func BulkHTML(records []*types.Record) (string, error) {
	var sb strings.Builder
	for i, rec := range records {
		b, err := JSON(rec)
		if err != nil {
			return "", fmt.Errorf("record %d: %w", i+1, err)
		}
		fmt.Fprintf(&sb, "<!-- Schema %d -->\n%s\n\n", i+1, HTMLSnippet(b))
	}
	return sb.String(), nil
}

// CombinedJSON renders all records as one JSON array.
func CombinedJSON(records []*types.Record) ([]byte, error) {
	if records == nil {
		records = []*types.Record{}
	}
	return JSON(records)
}

// ZipEntryName names the archive entry of the n-th record (1-based).
func ZipEntryName(n int, schemaType string) string {
	return fmt.Sprintf("schema_%d_%s.json", n, strings.ToLower(schemaType))
}

// WriteZip writes a ZIP archive holding one pretty-printed JSON file per
// record.
func WriteZip(w io.Writer, records []*types.Record, schemaType string) error {
	zw := zip.NewWriter(w)
	for i, rec := range records {
		b, err := JSON(rec)
		if err != nil {
			zw.Close()
			return fmt.Errorf("record %d: %w", i+1, err)
		}
		f, err := zw.Create(ZipEntryName(i+1, schemaType))
		if err != nil {
			zw.Close()
			return fmt.Errorf("create zip entry: %w", err)
		}
		if _, err := f.Write(b); err != nil {
			zw.Close()
			return fmt.Errorf("write zip entry: %w", err)
		}
	}
	return zw.Close()
}

// WriteCSV writes rows with CRLF line endings.
func WriteCSV(w io.Writer, rows [][]string) error {
	cw := csv.NewWriter(w)
	cw.UseCRLF = true
	if err := cw.WriteAll(rows); err != nil {
		return fmt.Errorf("write CSV: %w", err)
	}
	return nil
}

// FileName returns the download name for a prefix, schema type and format,
// for example bulk_schemas_person.zip.
func FileName(prefix, schemaType, format string) string {
	return fmt.Sprintf("%s_%s.%s", prefix, strings.ToLower(schemaType), format)
}
