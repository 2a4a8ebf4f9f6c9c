package schema

import (
	"fmt"
	"strings"
	"time"

	"github.com/mesh-intelligence/ldforge/pkg/types"
)

// dateLayout is the ISO-8601 calendar date written for date properties.
const dateLayout = "2006-01-02"

// Coerce normalizes a raw property value for its kind. The boolean result is
// false when the value is absent and the property should be left out.
//
// Array strings are split into trimmed, non-empty lines. Object strings are
// decoded as JSON; text that does not decode becomes {"name": text}. Dates
// become YYYY-MM-DD. Everything else passes through unchanged.
func Coerce(raw any, kind types.Kind) (any, bool) {
	v, ok, _ := coerce(raw, kind, false)
	return v, ok
}

func coerce(raw any, kind types.Kind, strict bool) (any, bool, error) {
	if isBlank(raw) {
		return nil, false, nil
	}

	switch kind {
	case types.KindArray:
		s, ok := raw.(string)
		if !ok {
			return raw, true, nil
		}
		items := SplitLines(s)
		if len(items) == 0 {
			return nil, false, nil
		}
		return items, true, nil

	case types.KindObject:
		s, ok := raw.(string)
		if !ok {
			return raw, true, nil
		}
		v, err := types.DecodeOrdered([]byte(s))
		if err != nil {
			if strict {
				return nil, false, fmt.Errorf("%w: %v", types.ErrMalformedObject, err)
			}
			fallback := types.NewRecord()
			fallback.Set("name", s)
			return fallback, true, nil
		}
		if v == nil {
			return nil, false, nil
		}
		return v, true, nil

	case types.KindDate:
		switch t := raw.(type) {
		case time.Time:
			return t.Format(dateLayout), true, nil
		case *time.Time:
			return t.Format(dateLayout), true, nil
		}
		return fmt.Sprint(raw), true, nil

	default:
		return raw, true, nil
	}
}

// SplitLines splits s on newlines, trims each line, and drops empty lines.
// Order and duplicates are kept.
func SplitLines(s string) []string {
	var out []string
	for _, line := range strings.Split(s, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			out = append(out, line)
		}
	}
	return out
}
