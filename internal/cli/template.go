package cli

import (
	"bytes"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/mesh-intelligence/ldforge/internal/output"
	"github.com/mesh-intelligence/ldforge/internal/schema"
)

type templateFlags struct {
	opts   schema.TemplateOptions
	format string
	target target
}

func newTemplateCmd(a *app) *cobra.Command {
	var f templateFlags
	cmd := &cobra.Command{
		Use:   "template [TYPE]",
		Short: "Write a CSV or JSON template for bulk input",
		Long: `Write a template listing the properties of TYPE.

The CSV template has an "@id" column followed by one column per property and,
with --examples, one example row. It can be filled in and passed back to
"ldforge bulk --csv". The JSON template is an array holding one record.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runTemplate(cmd, a.schemaType(args), f)
		},
	}
	cmd.Flags().BoolVar(&f.opts.Required, "required", true, "include required properties")
	cmd.Flags().BoolVar(&f.opts.Common, "common", true, "include common properties")
	cmd.Flags().BoolVar(&f.opts.Advanced, "advanced", false, "include advanced properties")
	cmd.Flags().BoolVar(&f.opts.Examples, "examples", true, "fill in example values")
	cmd.Flags().StringVarP(&f.format, "format", "f", output.FormatCSV, "template format: csv or json")
	f.target.register(cmd)
	return cmd
}

func (a *app) runTemplate(cmd *cobra.Command, schemaType string, f templateFlags) error {
	if err := checkFormat(f.format, output.FormatCSV, output.FormatJSON); err != nil {
		return err
	}

	var data []byte
	switch f.format {
	case output.FormatJSON:
		records, err := schema.TemplateRecords(schemaType, f.opts)
		if err != nil {
			return userError(err)
		}
		data, err = output.JSON(records)
		if err != nil {
			return sysError(err)
		}
	default:
		table, err := schema.TemplateTable(schemaType, f.opts)
		if err != nil {
			return userError(err)
		}
		var buf bytes.Buffer
		if err := output.WriteCSV(&buf, table); err != nil {
			return sysError(err)
		}
		data = buf.Bytes()
	}

	a.logger.Debug("template generated",
		zap.String("type", schemaType),
		zap.String("format", f.format),
		zap.Bool("advanced", f.opts.Advanced),
		zap.Bool("examples", f.opts.Examples),
	)
	return a.emit(cmd, f.target, output.FileName(output.PrefixTemplate, schemaType, f.format), data, false)
}
