package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/mesh-intelligence/ldforge/internal/input"
	"github.com/mesh-intelligence/ldforge/internal/output"
	"github.com/mesh-intelligence/ldforge/internal/schema"
	"github.com/mesh-intelligence/ldforge/pkg/types"
)

type generateFlags struct {
	set        []string
	valuesFile string
	id         string
	custom     string
	customFile string
	format     string
	save       bool
	target     target
}

func newGenerateCmd(a *app) *cobra.Command {
	var f generateFlags
	cmd := &cobra.Command{
		Use:   "generate [TYPE]",
		Short: "Generate one JSON-LD record",
		Long: `Generate one JSON-LD record of TYPE (default: default_type from config.yaml).

Property values come from --values (a JSON object) and --set key=value
flags, applied in that order. Repeating --set for a list property such as
recipeIngredient adds one item per flag. Custom properties given with
--custom or --custom-file are merged last and may overwrite any property.
--id takes precedence over an "@id" in --values.

Missing required properties are reported on stderr; the record is still
written.`,
		Example: `  ldforge generate Article --set headline="Hello" --set author='{"@type":"Person","name":"Ada"}'
  ldforge generate Person --values person.json --id https://example.com/#me --format html`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runGenerate(cmd, a.schemaType(args), f)
		},
	}
	cmd.Flags().StringArrayVar(&f.set, "set", nil, "property assignment key=value (repeatable)")
	cmd.Flags().StringVar(&f.valuesFile, "values", "", "JSON object of property values (- for stdin)")
	cmd.Flags().StringVar(&f.id, "id", "", "@id of the record")
	cmd.Flags().StringVar(&f.custom, "custom", "", "JSON object of custom properties")
	cmd.Flags().StringVar(&f.customFile, "custom-file", "", "file holding a JSON object of custom properties")
	cmd.Flags().StringVarP(&f.format, "format", "f", output.FormatJSON, "output format: json or html")
	cmd.Flags().BoolVar(&f.save, "save", false, "save the record to the record library")
	f.target.register(cmd)
	cmd.MarkFlagsMutuallyExclusive("custom", "custom-file")
	return cmd
}

func (a *app) runGenerate(cmd *cobra.Command, schemaType string, f generateFlags) error {
	if err := checkFormat(f.format, output.FormatJSON, output.FormatHTML); err != nil {
		return err
	}
	stderr := cmd.ErrOrStderr()

	props, err := a.generateProps(cmd, f)
	if err != nil {
		return err
	}
	// --id wins over an @id given in --values.
	id := f.id
	if v, ok := props.Get(types.KeyID); ok {
		if id == "" && !isBlankID(v) {
			id = fmt.Sprint(v)
		}
		props.Delete(types.KeyID)
	}

	customText := f.custom
	if f.customFile != "" {
		data, err := readSource(cmd, f.customFile)
		if err != nil {
			return userError(fmt.Errorf("read custom properties: %w", err))
		}
		customText = string(data)
	}
	custom, err := schema.ParseCustom(customText)
	if err != nil {
		fmt.Fprintf(stderr, "Invalid JSON format in custom properties: %v\n", err)
		a.logger.Warn("custom properties skipped", zap.Error(err))
		custom = types.NewRecord()
	}
	merged, err := a.builder.MergeCustom(props, custom)
	if errors.Is(err, types.ErrReservedKey) {
		fmt.Fprintf(stderr, "Custom properties skipped: %v\n", err)
		a.logger.Warn("custom properties skipped", zap.Error(err))
		merged = props
	}

	rec, err := a.builder.Build(schemaType, merged, id)
	if err != nil {
		return userError(fmt.Errorf("generate %s: %w", schemaType, err))
	}
	issues := schema.Validate(rec, schemaType)
	if !issues.Valid() {
		fmt.Fprintf(stderr, "Validation issues: %s\n", issues)
	}
	a.logger.Debug("record generated",
		zap.String("type", schemaType),
		zap.Int("properties", rec.Len()),
		zap.Int("issues", len(issues)),
	)

	var data []byte
	switch f.format {
	case output.FormatHTML:
		html, err := output.RecordHTML(rec)
		if err != nil {
			return userError(err)
		}
		data = []byte(html)
	default:
		data, err = output.JSON(rec)
		if err != nil {
			return userError(err)
		}
	}

	if f.save {
		if err := a.saveRecords(cmd, schemaType, []*types.Record{rec}, []types.Issues{issues}); err != nil {
			return err
		}
	}
	return a.emit(cmd, f.target, output.FileName(output.PrefixSingle, schemaType, f.format), data, false)
}

// generateProps collects property values from --values then --set.
func (a *app) generateProps(cmd *cobra.Command, f generateFlags) (*types.Record, error) {
	props := types.NewRecord()
	if f.valuesFile != "" {
		data, err := readSource(cmd, f.valuesFile)
		if err != nil {
			return nil, userError(fmt.Errorf("read values: %w", err))
		}
		props, err = input.ReadProperties(data)
		if err != nil {
			return nil, userError(fmt.Errorf("values %s: %w", f.valuesFile, err))
		}
	}
	assigned, err := input.ParseAssignments(f.set)
	if err != nil {
		return nil, userError(err)
	}
	assigned.Range(func(k string, v any) bool {
		props.Set(k, v)
		return true
	})
	return props, nil
}

// saveRecords stores records with their issues in the record library.
func (a *app) saveRecords(cmd *cobra.Command, schemaType string, records []*types.Record, issues []types.Issues) error {
	store, err := a.openStore()
	if err != nil {
		return err
	}
	defer store.Detach()

	ids := make([]string, 0, len(records))
	for i, rec := range records {
		id, err := store.Save(rec, schemaType, issues[i])
		if err != nil {
			return sysError(fmt.Errorf("save record: %w", err))
		}
		ids = append(ids, id)
	}
	a.logger.Debug("records saved", zap.String("type", schemaType), zap.Int("count", len(ids)))
	fmt.Fprintf(cmd.ErrOrStderr(), "Saved %d record(s): %s\n", len(ids), strings.Join(ids, ", "))
	return nil
}

func isBlankID(v any) bool {
	s, ok := v.(string)
	return v == nil || (ok && s == "")
}
