package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/mesh-intelligence/ldforge/internal/output"
	"github.com/mesh-intelligence/ldforge/internal/schema"
	"github.com/mesh-intelligence/ldforge/pkg/types"
)

// validationReport is the outcome of checking one record.
type validationReport struct {
	Index  int          `json:"index"`
	Type   string       `json:"type"`
	Issues types.Issues `json:"issues"`
}

func newValidateCmd(a *app) *cobra.Command {
	var schemaType string
	cmd := &cobra.Command{
		Use:   "validate FILE",
		Short: "Check JSON-LD records for missing required properties",
		Long: `Check a JSON-LD object, or an array of objects, against the required
properties of its @type. Use - to read from stdin. --type checks every record
against the given type instead of its own @type.

Exits with status 1 when any record has issues.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runValidate(cmd, args[0], schemaType)
		},
	}
	cmd.Flags().StringVarP(&schemaType, "type", "t", "", "validate against this type instead of each record's @type")
	return cmd
}

func (a *app) runValidate(cmd *cobra.Command, name, schemaType string) error {
	data, err := readSource(cmd, name)
	if err != nil {
		return userError(fmt.Errorf("read %s: %w", name, err))
	}
	doc, err := types.DecodeOrdered(data)
	if err != nil {
		return userError(fmt.Errorf("%s: %w: %v", name, types.ErrInvalidJSON, err))
	}

	var items []any
	switch v := doc.(type) {
	case *types.Record:
		items = []any{v}
	case []any:
		items = v
	default:
		return userError(fmt.Errorf("%s: %w: want an object or an array of objects", name, types.ErrInvalidJSON))
	}

	reports := make([]validationReport, 0, len(items))
	failed := 0
	for i, item := range items {
		report := validationReport{Index: i + 1}
		rec, ok := item.(*types.Record)
		switch {
		case !ok:
			report.Issues = types.Issues{fmt.Sprintf("not a JSON object: %T", item)}
		case schemaType != "":
			report.Type = schemaType
			report.Issues = schema.Validate(rec, schemaType)
		default:
			report.Type, report.Issues = schema.ValidateDeclared(rec)
		}
		if !report.Issues.Valid() {
			failed++
		}
		reports = append(reports, report)
	}
	a.logger.Debug("validated", zap.String("file", name), zap.Int("records", len(reports)), zap.Int("invalid", failed))

	out := cmd.OutOrStdout()
	if a.jsonMode {
		b, err := output.JSON(reports)
		if err != nil {
			return sysError(err)
		}
		fmt.Fprintln(out, string(b))
	} else {
		for _, r := range reports {
			label := r.Type
			if label == "" {
				label = "no type"
			}
			if r.Issues.Valid() {
				fmt.Fprintf(out, "Record %d (%s): valid\n", r.Index, label)
				continue
			}
			fmt.Fprintf(out, "Record %d (%s): %s\n", r.Index, label, r.Issues)
		}
	}

	if failed > 0 {
		return userError(fmt.Errorf("%d of %d records have validation issues", failed, len(reports)))
	}
	return nil
}
