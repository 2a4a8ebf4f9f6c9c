package schema

import (
	"fmt"

	"github.com/mesh-intelligence/ldforge/internal/catalog"
	"github.com/mesh-intelligence/ldforge/pkg/types"
)

// MissingRequiredFormat is the message written for each missing required
// property.
const MissingRequiredFormat = "Missing required property: %s"

// Validate checks rec against the required properties of schemaType. A
// property that is missing or blank yields one message. Types outside the
// catalog have no required properties and always pass.
func Validate(rec *types.Record, schemaType string) types.Issues {
	issues := types.Issues{}
	for _, name := range catalog.Required(schemaType) {
		v, ok := rec.Get(name)
		if !ok || isBlank(v) {
			issues = append(issues, fmt.Sprintf(MissingRequiredFormat, name))
		}
	}
	return issues
}

// ValidateDeclared validates rec against its own @type. A record without a
// string @type is validated as an unknown type.
func ValidateDeclared(rec *types.Record) (string, types.Issues) {
	v, _ := rec.Get(types.KeyType)
	schemaType, _ := v.(string)
	return schemaType, Validate(rec, schemaType)
}
