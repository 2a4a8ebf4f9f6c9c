package schema

import (
	"fmt"
	"strings"

	"github.com/mesh-intelligence/ldforge/pkg/types"
)

var reservedKeys = map[string]bool{
	types.KeyContext: true,
	types.KeyType:    true,
	types.KeyID:      true,
}

// ParseCustom decodes a free-form JSON object of custom properties. Blank
// text yields an empty record. Anything other than a JSON object is
// ErrInvalidCustomJSON; callers report it and build without custom
// properties.
func ParseCustom(text string) (*types.Record, error) {
	if strings.TrimSpace(text) == "" {
		return types.NewRecord(), nil
	}
	v, err := types.DecodeOrdered([]byte(text))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", types.ErrInvalidCustomJSON, err)
	}
	rec, ok := v.(*types.Record)
	if !ok {
		return nil, fmt.Errorf("%w: want an object, got %T", types.ErrInvalidCustomJSON, v)
	}
	return rec, nil
}

// MergeCustom returns props with custom merged on top, last write wins. A
// key already in props keeps its position. Custom keys are not guarded, so
// @type and @id can be overwritten.
func MergeCustom(props, custom *types.Record) *types.Record {
	merged, _ := Builder{}.MergeCustom(props, custom)
	return merged
}

// MergeCustom is the package-level MergeCustom honouring GuardReservedKeys.
// Neither input is modified.
func (b Builder) MergeCustom(props, custom *types.Record) (*types.Record, error) {
	merged := types.NewRecord()
	props.Range(func(k string, v any) bool {
		merged.Set(k, v)
		return true
	})

	var err error
	custom.Range(func(k string, v any) bool {
		if b.GuardReservedKeys && reservedKeys[k] {
			err = fmt.Errorf("%w: %s", types.ErrReservedKey, k)
			return false
		}
		merged.Set(k, v)
		return true
	})
	if err != nil {
		return nil, err
	}
	return merged, nil
}
