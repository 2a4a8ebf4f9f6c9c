package schema

import (
	"fmt"

	"github.com/mesh-intelligence/ldforge/internal/catalog"
	"github.com/mesh-intelligence/ldforge/pkg/types"
)

// Builder builds records. The zero value is lenient: malformed object JSON
// is wrapped as {"name": text} and custom properties may overwrite any key.
type Builder struct {
	// StrictObjects makes malformed object JSON an error instead of a
	// wrapped value.
	StrictObjects bool
	// GuardReservedKeys rejects custom properties named @context, @type or
	// @id.
	GuardReservedKeys bool
}

// NewBuilder returns a Builder configured from cfg.
func NewBuilder(cfg types.Config) Builder {
	return Builder{
		StrictObjects:     cfg.StrictObjects,
		GuardReservedKeys: cfg.GuardReservedKeys,
	}
}

// Build assembles a record with the lenient Builder. See Builder.Build.
func Build(schemaType string, props *types.Record, id string) *types.Record {
	rec, _ := Builder{}.Build(schemaType, props, id)
	return rec
}

// Build assembles a record: @context, @type, @id when id is non-empty, then
// each property in props order, classified and coerced. Absent values are
// skipped. The only error comes from strict object decoding.
func (b Builder) Build(schemaType string, props *types.Record, id string) (*types.Record, error) {
	rec := types.NewRecord()
	rec.Set(types.KeyContext, types.SchemaContext)
	rec.Set(types.KeyType, schemaType)
	if id != "" {
		rec.Set(types.KeyID, id)
	}

	var err error
	props.Range(func(name string, raw any) bool {
		v, ok, cerr := coerce(raw, catalog.Classify(name), b.StrictObjects)
		if cerr != nil {
			err = fmt.Errorf("property %q: %w", name, cerr)
			return false
		}
		if ok {
			rec.Set(name, v)
		}
		return true
	})
	if err != nil {
		return nil, err
	}
	return rec, nil
}
