package schema

import (
	"testing"

	"github.com/goccy/go-json"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/ldforge/internal/catalog"
	"github.com/mesh-intelligence/ldforge/pkg/types"
)

func props(kv ...any) *types.Record {
	rec := types.NewRecord()
	for i := 0; i+1 < len(kv); i += 2 {
		rec.Set(kv[i].(string), kv[i+1])
	}
	return rec
}

func TestBuild_Person(t *testing.T) {
	rec := Build("Person", props("name", "Ada Lovelace"), "")

	assert.Equal(t, `{"@context":"https://schema.org","@type":"Person","name":"Ada Lovelace"}`, rec.String())
	assert.Empty(t, Validate(rec, "Person"))
}

func TestBuild_KeyOrder(t *testing.T) {
	rec := Build("Recipe", props(
		"recipeInstructions", "mix\nbake",
		"description", "",
		"name", "Bread",
		"author", `{"@type":"Person","name":"Jo"}`,
	), "https://example.com/#bread")

	want := []string{"@context", "@type", "@id", "recipeInstructions", "name", "author"}
	if diff := cmp.Diff(want, rec.Keys()); diff != "" {
		t.Errorf("keys mismatch (-want +got):\n%s", diff)
	}
}

func TestBuild_EmptyIDOmitted(t *testing.T) {
	rec := Build("Person", props("name", "X"), "")
	assert.False(t, rec.Has(types.KeyID))
}

func TestBuild_NilProperties(t *testing.T) {
	rec := Build("Thing", nil, "")
	assert.Equal(t, []string{"@context", "@type"}, rec.Keys())
}

func TestBuilder_StrictObjects(t *testing.T) {
	b := Builder{StrictObjects: true}
	_, err := b.Build("Article", props("author", "Jo Bloggs"), "")
	require.Error(t, err)
	assert.ErrorIs(t, err, types.ErrMalformedObject)
	assert.Contains(t, err.Error(), `"author"`)

	rec, err := b.Build("Article", props("author", `{"name":"Jo"}`), "")
	require.NoError(t, err)
	assert.True(t, rec.Has("author"))
}

func TestBuild_RoundTrip(t *testing.T) {
	rec := Build("Recipe", props(
		"name", "Bread <&> Brötchen",
		"recipeIngredient", "flour\nwater",
		"author", `{"@type":"Person","name":"Jo","tags":["a","b"]}`,
	), "https://example.com/#r")

	data, err := json.Marshal(rec)
	require.NoError(t, err)

	var back types.Record
	require.NoError(t, json.Unmarshal(data, &back))

	// Parsed arrays come back as []any; compare through a second encoding.
	again, err := json.Marshal(&back)
	require.NoError(t, err)
	assert.JSONEq(t, string(data), string(again))
	assert.Equal(t, rec.Keys(), back.Keys())
}

func TestValidate_AllRequiredPresent(t *testing.T) {
	for _, schemaType := range catalog.Types() {
		t.Run(schemaType, func(t *testing.T) {
			p := types.NewRecord()
			for _, r := range catalog.Required(schemaType) {
				p.Set(r, "x")
			}
			rec := Build(schemaType, p, "")
			assert.Empty(t, Validate(rec, schemaType))
		})
	}
}

func TestValidate_EachMissingRequired(t *testing.T) {
	for _, schemaType := range catalog.Types() {
		required := catalog.Required(schemaType)
		for _, omit := range required {
			t.Run(schemaType+"/"+omit, func(t *testing.T) {
				p := types.NewRecord()
				for _, r := range required {
					if r != omit {
						p.Set(r, "x")
					}
				}
				issues := Validate(Build(schemaType, p, ""), schemaType)
				assert.Equal(t, types.Issues{"Missing required property: " + omit}, issues)
			})
		}
	}
}

func TestValidate_BlankValueFails(t *testing.T) {
	rec := types.NewRecord()
	rec.Set("name", "")
	assert.Equal(t, types.Issues{"Missing required property: name"}, Validate(rec, "Person"))

	rec.Set("name", []any{})
	assert.Equal(t, types.Issues{"Missing required property: name"}, Validate(rec, "Person"))
}

func TestValidate_UnknownTypeAlwaysPasses(t *testing.T) {
	assert.Empty(t, Validate(types.NewRecord(), "Spaceship"))
	assert.Empty(t, Validate(nil, ""))
}

func TestValidateDeclared(t *testing.T) {
	rec := Build("Event", props("name", "Launch"), "")
	schemaType, issues := ValidateDeclared(rec)
	assert.Equal(t, "Event", schemaType)
	assert.Equal(t, types.Issues{"Missing required property: startDate"}, issues)
}
