package schema

import (
	"fmt"

	"github.com/mesh-intelligence/ldforge/pkg/types"
)

// BuildMany builds every row with the lenient Builder. See Builder.BuildMany.
func BuildMany(rows []any, schemaType string) types.BulkResult {
	return Builder{}.BuildMany(rows, schemaType)
}

// BuildMany builds and validates each row in order. A row is a *types.Record
// or a map[string]any; its @id field becomes the record id and the other
// fields become properties. A row that cannot be built is reported in
// Failures with its 1-based index and the batch continues.
func (b Builder) BuildMany(rows []any, schemaType string) types.BulkResult {
	var res types.BulkResult
	for i, row := range rows {
		n := i + 1
		rec, err := b.buildRow(row, schemaType)
		if err != nil {
			res.Failures = append(res.Failures, &types.RowError{Row: n, Err: err})
			continue
		}
		res.Entries = append(res.Entries, types.BulkEntry{
			Row:    n,
			Record: rec,
			Issues: Validate(rec, schemaType),
		})
	}
	return res
}

func (b Builder) buildRow(row any, schemaType string) (*types.Record, error) {
	var fields *types.Record
	switch r := row.(type) {
	case *types.Record:
		if r == nil {
			return nil, types.ErrInvalidRow
		}
		fields = r
	case map[string]any:
		fields = types.RecordFromMap(r)
	default:
		return nil, fmt.Errorf("%w: got %T", types.ErrInvalidRow, row)
	}

	var id string
	if raw, ok := fields.Get(types.KeyID); ok && !isBlank(raw) {
		id = fmt.Sprint(raw)
	}
	props := fields.Clone()
	props.Delete(types.KeyID)

	rec, err := b.Build(schemaType, props, id)
	if err != nil {
		return nil, err
	}
	// Surface values JSON cannot represent (NaN, channels) as a row failure
	// rather than at download time.
	if _, err := rec.MarshalJSON(); err != nil {
		return nil, fmt.Errorf("serialize record: %w", err)
	}
	return rec, nil
}
