package types

// Kind classifies how a property value is entered and normalized.
type Kind string

// Property kinds. A property that is not listed in the kind table is text.
const (
	KindText   Kind = "text"
	KindURL    Kind = "url"
	KindDate   Kind = "date"
	KindNumber Kind = "number"
	KindArray  Kind = "array"
	KindObject Kind = "object"
)

// Kinds lists every kind in classification order. When a property name is
// listed under more than one kind, the earlier kind wins.
var Kinds = []Kind{KindText, KindURL, KindDate, KindNumber, KindArray, KindObject}

// Tier names the priority group a property belongs to within a schema type.
type Tier string

// Property tiers, in form order.
const (
	TierRequired Tier = "required"
	TierCommon   Tier = "common"
	TierAdvanced Tier = "advanced"
)

// Definition lists the properties of one schema type in three tiers. The
// tiers are expected to be disjoint, though nothing enforces it.
type Definition struct {
	Required []string `json:"required" yaml:"required"`
	Common   []string `json:"common" yaml:"common"`
	Advanced []string `json:"advanced" yaml:"advanced"`
}

// Tier returns the property names of the given tier, or nil for an
// unrecognized tier.
func (d Definition) Tier(t Tier) []string {
	switch t {
	case TierRequired:
		return d.Required
	case TierCommon:
		return d.Common
	case TierAdvanced:
		return d.Advanced
	default:
		return nil
	}
}
