package output

import (
	"archive/zip"
	"bytes"
	"io"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/ldforge/pkg/types"
)

func person(name string) *types.Record {
	rec := types.NewRecord()
	rec.Set(types.KeyContext, types.SchemaContext)
	rec.Set(types.KeyType, "Person")
	rec.Set("name", name)
	return rec
}

func TestJSON_Pretty(t *testing.T) {
	rec := person("Zoë <Ada> & co")
	rec.Set("sameAs", []string{"https://a.test", "https://b.test"})

	b, err := JSON(rec)
	require.NoError(t, err)

	want := `{
  "@context": "https://schema.org",
  "@type": "Person",
  "name": "Zoë <Ada> & co",
  "sameAs": [
    "https://a.test",
    "https://b.test"
  ]
}`
	assert.Equal(t, want, string(b))
}

func TestJSON_RoundTrip(t *testing.T) {
	rec := person("Ada")
	nested := types.NewRecord()
	nested.Set("@type", "Organization")
	nested.Set("name", "Analytical Engines")
	rec.Set("worksFor", nested)

	b, err := JSON(rec)
	require.NoError(t, err)

	var back types.Record
	require.NoError(t, json.Unmarshal(b, &back))
	assert.Equal(t, rec.String(), back.String())
}

func TestHTMLSnippet(t *testing.T) {
	got, err := RecordHTML(person("Ada"))
	require.NoError(t, err)
	want := "<script type=\"application/ld+json\">\n{\n  \"@context\": \"https://schema.org\",\n  \"@type\": \"Person\",\n  \"name\": \"Ada\"\n}\n</script>"
	assert.Equal(t, want, got)
}

func TestBulkHTML(t *testing.T) {
	got, err := BulkHTML([]*types.Record{person("A"), person("B")})
	require.NoError(t, err)
	assert.Contains(t, got, "<!-- Schema 1 -->\n<script type=\"application/ld+json\">\n{")
	assert.Contains(t, got, "<!-- Schema 2 -->")
	assert.True(t, bytes.HasSuffix([]byte(got), []byte("</script>\n\n")))

	got, err = BulkHTML(nil)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestCombinedJSON(t *testing.T) {
	b, err := CombinedJSON([]*types.Record{person("A"), person("B")})
	require.NoError(t, err)

	var back []map[string]any
	require.NoError(t, json.Unmarshal(b, &back))
	require.Len(t, back, 2)
	assert.Equal(t, "B", back[1]["name"])

	b, err = CombinedJSON(nil)
	require.NoError(t, err)
	assert.Equal(t, "[]", string(b))
}

func TestWriteZip(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteZip(&buf, []*types.Record{person("A"), person("B")}, "Person"))

	zr, err := zip.NewReader(bytes.NewReader(buf.Bytes()), int64(buf.Len()))
	require.NoError(t, err)
	require.Len(t, zr.File, 2)
	assert.Equal(t, "schema_1_person.json", zr.File[0].Name)
	assert.Equal(t, "schema_2_person.json", zr.File[1].Name)

	f, err := zr.File[1].Open()
	require.NoError(t, err)
	defer f.Close()
	body, err := io.ReadAll(f)
	require.NoError(t, err)
	want, _ := JSON(person("B"))
	assert.Equal(t, string(want), string(body))
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	rows := [][]string{
		{"@id", "name", "recipeIngredient"},
		{"https://example.com/#schema1", "Example, Name", "item1|item2|item3"},
	}
	require.NoError(t, WriteCSV(&buf, rows))
	assert.Equal(t, "@id,name,recipeIngredient\r\nhttps://example.com/#schema1,\"Example, Name\",item1|item2|item3\r\n", buf.String())
}

func TestFileName(t *testing.T) {
	assert.Equal(t, "schema_localbusiness.json", FileName(PrefixSingle, "LocalBusiness", FormatJSON))
	assert.Equal(t, "bulk_schemas_person.zip", FileName(PrefixBulk, "Person", FormatZIP))
	assert.Equal(t, "template_recipe.csv", FileName(PrefixTemplate, "Recipe", FormatCSV))
}
