package cli

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/mesh-intelligence/ldforge/internal/input"
	"github.com/mesh-intelligence/ldforge/internal/output"
	"github.com/mesh-intelligence/ldforge/pkg/types"
)

var errNoRows = errors.New("no rows to process")

type bulkFlags struct {
	csvFile  string
	jsonFile string
	rows     []string
	format   string
	save     bool
	target   target
}

func newBulkCmd(a *app) *cobra.Command {
	var f bulkFlags
	cmd := &cobra.Command{
		Use:   "bulk [TYPE]",
		Short: "Generate JSON-LD records from a table of rows",
		Long: `Generate one JSON-LD record of TYPE per input row.

Rows come from exactly one source: a CSV file with a header row (--csv), a
JSON array of objects (--json-file), or rows typed as "key=value;key=value"
(--row, repeatable). An "@id" column becomes the record's @id. In CSV input
list properties separate items with "|".

A row that cannot be processed is reported and skipped; the other rows are
still written. The zip format writes one file per record.`,
		Example: `  ldforge bulk Person --csv people.csv
  ldforge bulk Article --json-file articles.json --format html -o articles.html
  ldforge bulk Event --row "name=Launch;startDate=2024-05-01;location=Berlin"`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runBulk(cmd, a.schemaType(args), f)
		},
	}
	cmd.Flags().StringVar(&f.csvFile, "csv", "", "CSV file of rows (- for stdin)")
	cmd.Flags().StringVar(&f.jsonFile, "json-file", "", "JSON array of row objects (- for stdin)")
	cmd.Flags().StringArrayVar(&f.rows, "row", nil, `manual row "key=value;key=value" (repeatable)`)
	cmd.Flags().StringVarP(&f.format, "format", "f", output.FormatZIP, "output format: zip, json or html")
	cmd.Flags().BoolVar(&f.save, "save", false, "save the records to the record library")
	f.target.register(cmd)
	cmd.MarkFlagsMutuallyExclusive("csv", "json-file", "row")
	return cmd
}

func (a *app) runBulk(cmd *cobra.Command, schemaType string, f bulkFlags) error {
	if err := checkFormat(f.format, output.FormatZIP, output.FormatJSON, output.FormatHTML); err != nil {
		return err
	}
	rows, err := a.bulkRows(cmd, f)
	if err != nil {
		return err
	}
	if len(rows) == 0 {
		return userError(errNoRows)
	}

	stderr := cmd.ErrOrStderr()
	result := a.builder.BuildMany(rows, schemaType)
	for _, e := range result.Entries {
		if !e.Issues.Valid() {
			fmt.Fprintf(stderr, "Row %d validation issues: %s\n", e.Row, e.Issues)
		}
	}
	for _, rf := range result.Failures {
		fmt.Fprintf(stderr, "Error processing row %d: %v\n", rf.Row, rf.Err)
		a.logger.Warn("row failed", zap.String("type", schemaType), zap.Int("row", rf.Row), zap.Error(rf.Err))
	}

	records := result.Records()
	fmt.Fprintf(stderr, "Generated %d of %d records (%d with validation issues, %d failed)\n",
		len(records), len(rows), result.InvalidCount(), len(result.Failures))
	a.logger.Debug("bulk processed",
		zap.String("type", schemaType),
		zap.Int("rows", len(rows)),
		zap.Int("records", len(records)),
		zap.Int("failed", len(result.Failures)),
	)
	if len(records) == 0 {
		return userError(fmt.Errorf("no records generated from %d rows", len(rows)))
	}

	var data []byte
	switch f.format {
	case output.FormatJSON:
		data, err = output.CombinedJSON(records)
	case output.FormatHTML:
		var html string
		html, err = output.BulkHTML(records)
		data = []byte(html)
	default:
		var buf bytes.Buffer
		err = output.WriteZip(&buf, records, schemaType)
		data = buf.Bytes()
	}
	if err != nil {
		return userError(err)
	}

	if f.save {
		issues := make([]types.Issues, len(result.Entries))
		for i, e := range result.Entries {
			issues[i] = e.Issues
		}
		if err := a.saveRecords(cmd, schemaType, records, issues); err != nil {
			return err
		}
	}
	name := output.FileName(output.PrefixBulk, schemaType, f.format)
	return a.emit(cmd, f.target, name, data, f.format == output.FormatZIP)
}

// bulkRows loads rows from the single source selected by f.
func (a *app) bulkRows(cmd *cobra.Command, f bulkFlags) ([]any, error) {
	switch {
	case f.csvFile != "":
		var (
			rows []any
			err  error
		)
		if f.csvFile == "-" {
			rows, err = input.ReadCSV(cmd.InOrStdin())
		} else {
			file, ferr := os.Open(f.csvFile)
			if ferr != nil {
				return nil, userError(fmt.Errorf("open CSV: %w", ferr))
			}
			defer file.Close()
			rows, err = input.ReadCSV(file)
		}
		if err != nil {
			return nil, userError(fmt.Errorf("CSV %s: %w", f.csvFile, err))
		}
		return rows, nil
	case f.jsonFile != "":
		data, err := readSource(cmd, f.jsonFile)
		if err != nil {
			return nil, userError(fmt.Errorf("read JSON rows: %w", err))
		}
		rows, err := input.ReadJSONRows(data)
		if err != nil {
			return nil, userError(fmt.Errorf("JSON %s: %w", f.jsonFile, err))
		}
		return rows, nil
	case len(f.rows) > 0:
		rows, err := input.ManualRows(f.rows)
		if err != nil {
			return nil, userError(err)
		}
		return rows, nil
	default:
		return nil, userError(errors.New("one of --csv, --json-file or --row is required"))
	}
}
