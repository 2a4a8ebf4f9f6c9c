package catalog

import "github.com/mesh-intelligence/ldforge/pkg/types"

// kindTable lists the properties with a dedicated input kind. A name may
// appear under more than one kind; see byName.
var kindTable = map[types.Kind][]string{
	types.KindText:   {"name", "headline", "description", "jobTitle", "brand"},
	types.KindURL:    {"url", "image", "logo", "sameAs"},
	types.KindDate:   {"datePublished", "dateModified", "startDate", "endDate", "birthDate", "foundingDate"},
	types.KindNumber: {"wordCount", "prepTime", "cookTime"},
	types.KindArray:  {"recipeIngredient", "recipeInstructions", "sameAs", "about", "mentions"},
	types.KindObject: {"author", "organizer", "location", "offers", "address", "contactPoint"},
}

// byName is the inverse of kindTable. The first kind in types.Kinds order
// that lists a name wins, so sameAs classifies as url.
var byName = invert(kindTable)

func invert(table map[types.Kind][]string) map[string]types.Kind {
	out := make(map[string]types.Kind)
	for _, kind := range types.Kinds {
		for _, name := range table[kind] {
			if _, seen := out[name]; !seen {
				out[name] = kind
			}
		}
	}
	return out
}

// Classify returns the input kind of a property. Unlisted properties are
// text.
func Classify(name string) types.Kind {
	if kind, ok := byName[name]; ok {
		return kind
	}
	return types.KindText
}

// PropertiesOfKind returns the properties listed under kind, in table order.
func PropertiesOfKind(kind types.Kind) []string {
	return clone(kindTable[kind])
}
