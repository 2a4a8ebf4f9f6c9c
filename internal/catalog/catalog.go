// Package catalog holds the fixed Schema.org type catalog and the property
// kind table. Both are package-level read-only data; accessors return copies.
package catalog

import "github.com/mesh-intelligence/ldforge/pkg/types"

// order lists the catalog types in presentation order.
var order = []string{
	"Article",
	"WebPage",
	"Person",
	"Organization",
	"Event",
	"FAQPage",
	"Product",
	"Recipe",
	"LocalBusiness",
	"Course",
}

var definitions = map[string]types.Definition{
	"Article": {
		Required: []string{"headline", "author", "datePublished"},
		Common:   []string{"description", "url", "image", "wordCount", "articleSection", "articleBody"},
		Advanced: []string{"about", "mentions", "isPartOf", "mainEntity", "speakable", "significantLink"},
	},
	"WebPage": {
		Required: []string{"name", "url"},
		Common:   []string{"description", "author", "datePublished", "dateModified", "breadcrumb"},
		Advanced: []string{"about", "mentions", "isPartOf", "mainEntity", "significantLink", "relatedLink"},
	},
	"Person": {
		Required: []string{"name"},
		Common:   []string{"url", "image", "description", "jobTitle", "worksFor", "birthDate"},
		Advanced: []string{"knowsAbout", "sameAs", "memberOf", "alumniOf", "award", "owns"},
	},
	"Organization": {
		Required: []string{"name"},
		Common:   []string{"url", "logo", "description", "address", "contactPoint", "foundingDate"},
		Advanced: []string{"sameAs", "parentOrganization", "subOrganization", "member", "owns", "sponsor"},
	},
	"Event": {
		Required: []string{"name", "startDate"},
		Common:   []string{"description", "location", "organizer", "endDate", "eventStatus", "eventAttendanceMode"},
		Advanced: []string{"about", "performer", "sponsor", "subEvent", "superEvent", "workPerformed"},
	},
	"FAQPage": {
		Required: []string{"mainEntity"},
		Common:   []string{"name", "description", "url", "datePublished", "author"},
		Advanced: []string{"about", "mentions", "isPartOf", "significantLink"},
	},
	"Product": {
		Required: []string{"name"},
		Common:   []string{"description", "image", "brand", "offers", "review", "aggregateRating"},
		Advanced: []string{"about", "isRelatedTo", "isSimilarTo", "category", "manufacturer", "model"},
	},
	"Recipe": {
		Required: []string{"name", "recipeIngredient", "recipeInstructions"},
		Common:   []string{"description", "image", "author", "datePublished", "prepTime", "cookTime"},
		Advanced: []string{"about", "recipeCategory", "recipeCuisine", "nutrition", "suitableForDiet", "recipeYield"},
	},
	"LocalBusiness": {
		Required: []string{"name", "address"},
		Common:   []string{"description", "url", "telephone", "openingHours", "priceRange", "image"},
		Advanced: []string{"sameAs", "parentOrganization", "paymentAccepted", "currenciesAccepted", "areaServed"},
	},
	"Course": {
		Required: []string{"name", "provider"},
		Common:   []string{"description", "url", "courseCode", "instructor", "educationalLevel"},
		Advanced: []string{"about", "teaches", "coursePrerequisites", "hasCourseInstance", "aggregateRating"},
	},
}

// Types returns the catalog type names in presentation order.
func Types() []string {
	out := make([]string, len(order))
	copy(out, order)
	return out
}

// Lookup returns the definition of schemaType.
func Lookup(schemaType string) (types.Definition, bool) {
	def, ok := definitions[schemaType]
	if !ok {
		return types.Definition{}, false
	}
	return types.Definition{
		Required: clone(def.Required),
		Common:   clone(def.Common),
		Advanced: clone(def.Advanced),
	}, true
}

// Known reports whether schemaType is in the catalog.
func Known(schemaType string) bool {
	_, ok := definitions[schemaType]
	return ok
}

// Required returns the required properties of schemaType. Unknown types have
// none.
func Required(schemaType string) []string {
	return clone(definitions[schemaType].Required)
}

func clone(s []string) []string {
	if s == nil {
		return nil
	}
	out := make([]string, len(s))
	copy(out, s)
	return out
}
