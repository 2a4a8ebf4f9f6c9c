package schema

import (
	"fmt"
	"strings"

	"github.com/mesh-intelligence/ldforge/internal/catalog"
	"github.com/mesh-intelligence/ldforge/pkg/types"
)

// ExampleID is the @id written in the example row of a table template.
const ExampleID = "https://example.com/#schema1"

// Example values used by templates.
const (
	exampleName        = "Example Name"
	exampleDescription = "Example description"
	exampleURL         = "https://example.com"
	exampleDate        = "2024-01-01"
	examplePlaceholder = "example value"
)

var exampleItems = []string{"item1", "item2", "item3"}

// TemplateOptions selects the tiers a template covers and whether it carries
// example values.
type TemplateOptions struct {
	Required bool
	Common   bool
	Advanced bool
	Examples bool
}

// TemplateProperties returns the selected properties of schemaType in
// required, common, advanced order, each name once at its first position.
func TemplateProperties(schemaType string, opts TemplateOptions) ([]string, error) {
	def, ok := catalog.Lookup(schemaType)
	if !ok {
		return nil, fmt.Errorf("%w: %q", types.ErrUnknownType, schemaType)
	}

	var tiers [][]string
	if opts.Required {
		tiers = append(tiers, def.Required)
	}
	if opts.Common {
		tiers = append(tiers, def.Common)
	}
	if opts.Advanced {
		tiers = append(tiers, def.Advanced)
	}
	return mergeUnique(tiers...), nil
}

// mergeUnique concatenates lists keeping only the first occurrence of each
// name.
func mergeUnique(lists ...[]string) []string {
	var out []string
	seen := make(map[string]bool)
	for _, list := range lists {
		for _, name := range list {
			if !seen[name] {
				seen[name] = true
				out = append(out, name)
			}
		}
	}
	return out
}

// ExampleValue returns the example value for a property: fixed text for
// name, description and url, otherwise a sample chosen by kind.
func ExampleValue(name string) any {
	switch name {
	case "name":
		return exampleName
	case "description":
		return exampleDescription
	case "url":
		return exampleURL
	}

	switch catalog.Classify(name) {
	case types.KindDate:
		return exampleDate
	case types.KindArray:
		items := make([]string, len(exampleItems))
		copy(items, exampleItems)
		return items
	case types.KindObject:
		obj := types.NewRecord()
		obj.Set("@type", "Thing")
		obj.Set("name", "Example Object")
		return obj
	default:
		return examplePlaceholder
	}
}

// TemplateTable returns a header row (@id then the selected properties) and,
// when examples are requested, one example row. Array examples are
// pipe-delimited and object examples are compact JSON.
func TemplateTable(schemaType string, opts TemplateOptions) ([][]string, error) {
	names, err := TemplateProperties(schemaType, opts)
	if err != nil {
		return nil, err
	}

	header := append([]string{types.KeyID}, names...)
	rows := [][]string{header}
	if !opts.Examples {
		return rows, nil
	}

	example := []string{ExampleID}
	for _, name := range names {
		example = append(example, cellText(ExampleValue(name)))
	}
	return append(rows, example), nil
}

// TemplateRecords returns a one-element list holding a record with every
// selected property set to its example value, or to "" without examples.
func TemplateRecords(schemaType string, opts TemplateOptions) ([]*types.Record, error) {
	names, err := TemplateProperties(schemaType, opts)
	if err != nil {
		return nil, err
	}

	rec := types.NewRecord()
	rec.Set(types.KeyContext, types.SchemaContext)
	rec.Set(types.KeyType, schemaType)
	for _, name := range names {
		if opts.Examples {
			rec.Set(name, ExampleValue(name))
		} else {
			rec.Set(name, "")
		}
	}
	return []*types.Record{rec}, nil
}

// ArraySeparator joins array values in a table cell.
const ArraySeparator = "|"

func cellText(v any) string {
	switch x := v.(type) {
	case string:
		return x
	case []string:
		return strings.Join(x, ArraySeparator)
	case *types.Record:
		return x.String()
	default:
		return fmt.Sprint(x)
	}
}
