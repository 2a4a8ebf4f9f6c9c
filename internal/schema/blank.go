package schema

import (
	"reflect"

	"github.com/goccy/go-json"

	"github.com/mesh-intelligence/ldforge/pkg/types"
)

// isBlank reports whether v counts as "no value": nil, the empty string,
// false, numeric zero, and empty slices, maps, and records. Blank values
// are dropped by the builder and fail required-property checks.
func isBlank(v any) bool {
	switch x := v.(type) {
	case nil:
		return true
	case string:
		return x == ""
	case bool:
		return !x
	case *types.Record:
		return x.Len() == 0
	case json.Number:
		f, err := x.Float64()
		return err == nil && f == 0
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Map, reflect.Array:
		return rv.Len() == 0
	case reflect.Pointer, reflect.Interface:
		return rv.IsNil()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int() == 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return rv.Uint() == 0
	case reflect.Float32, reflect.Float64:
		return rv.Float() == 0
	}
	return false
}
