package cli

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/ldforge/internal/catalog"
	"github.com/mesh-intelligence/ldforge/pkg/types"
)

func TestGenerate_JSON(t *testing.T) {
	env := newTestEnv(t)
	out, stderr, err := env.run(t, "",
		"generate", "Article",
		"--set", "headline=Hello <World>",
		"--set", `author={"@type":"Person","name":"Ada"}`,
		"--set", "datePublished=2024-03-01",
		"--id", "https://example.com/#post",
	)
	require.NoError(t, err)
	assert.Empty(t, stderr)

	want := `{
  "@context": "https://schema.org",
  "@type": "Article",
  "@id": "https://example.com/#post",
  "headline": "Hello <World>",
  "author": {
    "@type": "Person",
    "name": "Ada"
  },
  "datePublished": "2024-03-01"
}
`
	assert.Equal(t, want, out)
}

func TestGenerate_DefaultTypeAndIssues(t *testing.T) {
	env := newTestEnv(t)
	out, stderr, err := env.run(t, "", "generate", "--set", "headline=Only a headline")
	require.NoError(t, err)
	assert.Contains(t, out, `"@type": "Article"`)
	assert.Contains(t, stderr, "Validation issues: Missing required property: author, Missing required property: datePublished")
}

func TestGenerate_ValuesFileAndArrays(t *testing.T) {
	env := newTestEnv(t)
	values := writeFile(t, "recipe.json", `{"@id":"https://example.com/#soup","name":"Soup","recipeIngredient":"water\n salt \n\n"}`)

	out, _, err := env.run(t, "",
		"generate", "Recipe",
		"--values", values,
		"--set", "recipeInstructions=Boil",
		"--set", "recipeInstructions=Season",
	)
	require.NoError(t, err)
	assert.Contains(t, out, `"@id": "https://example.com/#soup"`)
	assert.Contains(t, out, "\"recipeIngredient\": [\n    \"water\",\n    \"salt\"\n  ]")
	assert.Contains(t, out, "\"recipeInstructions\": [\n    \"Boil\",\n    \"Season\"\n  ]")
}

func TestGenerate_IDFlagWinsOverValues(t *testing.T) {
	env := newTestEnv(t)
	values := writeFile(t, "person.json", `{"name":"Ada","@id":"https://example.com/#from-values"}`)

	out, _, err := env.run(t, "", "generate", "Person", "--values", values, "--id", "https://example.com/#flag")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "{\n  \"@context\": \"https://schema.org\",\n  \"@type\": \"Person\",\n  \"@id\": \"https://example.com/#flag\",\n  \"name\": \"Ada\"\n}"), out)
	assert.NotContains(t, out, "from-values")
	assert.Equal(t, 1, strings.Count(out, `"@id"`))
}

func TestGenerate_HelpListExampleAppends(t *testing.T) {
	cmd := newGenerateCmd(&app{})
	assert.Contains(t, cmd.Long, "recipeIngredient")
	assert.Equal(t, types.KindArray, catalog.Classify("recipeIngredient"))
}

func TestGenerate_HTML(t *testing.T) {
	env := newTestEnv(t)
	out, _, err := env.run(t, "", "generate", "Person", "--set", "name=Ada", "--format", "html")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "<script type=\"application/ld+json\">\n{"), out)
	assert.True(t, strings.HasSuffix(out, "}\n</script>\n"), out)
}

func TestGenerate_UnknownFormat(t *testing.T) {
	env := newTestEnv(t)
	_, _, err := env.run(t, "", "generate", "Person", "--set", "name=Ada", "--format", "xml")
	require.Error(t, err)
	assert.ErrorIs(t, err, types.ErrUnknownFormat)
	assert.Equal(t, exitUserError, exitCode(err))
}

func TestGenerate_BadAssignment(t *testing.T) {
	env := newTestEnv(t)
	_, _, err := env.run(t, "", "generate", "Person", "--set", "name")
	assert.ErrorIs(t, err, types.ErrInvalidAssignment)
}

func TestGenerate_CustomProperties(t *testing.T) {
	env := newTestEnv(t)

	t.Run("merged and classified", func(t *testing.T) {
		out, stderr, err := env.run(t, "", "generate", "Person",
			"--set", "name=Ada",
			"--custom", `{"name":"Ada Lovelace","award":"Royal Medal"}`,
		)
		require.NoError(t, err)
		assert.Empty(t, stderr)
		assert.Contains(t, out, `"name": "Ada Lovelace"`)
		assert.Contains(t, out, `"award": "Royal Medal"`)
	})

	t.Run("invalid JSON is reported and skipped", func(t *testing.T) {
		out, stderr, err := env.run(t, "", "generate", "Person", "--set", "name=Ada", "--custom", "{not json")
		require.NoError(t, err)
		assert.Contains(t, stderr, "Invalid JSON format in custom properties")
		assert.Contains(t, out, `"name": "Ada"`)
	})

	t.Run("from file may overwrite @type", func(t *testing.T) {
		custom := writeFile(t, "custom.json", `{"@type":"Thing"}`)
		out, _, err := env.run(t, "", "generate", "Person", "--set", "name=Ada", "--custom-file", custom)
		require.NoError(t, err)
		assert.Contains(t, out, `"@type": "Thing"`)
	})
}

func TestGenerate_GuardReservedKeys(t *testing.T) {
	env := newTestEnv(t)
	env.writeConfig(t, "guard_reserved_keys: true\n")

	out, stderr, err := env.run(t, "", "generate", "Person", "--set", "name=Ada", "--custom", `{"@type":"Thing"}`)
	require.NoError(t, err)
	assert.Contains(t, stderr, "Custom properties skipped")
	assert.Contains(t, out, `"@type": "Person"`)
}

func TestGenerate_StrictObjects(t *testing.T) {
	env := newTestEnv(t)

	out, _, err := env.run(t, "", "generate", "Article", "--set", "author=Ada")
	require.NoError(t, err)
	assert.Contains(t, out, "\"author\": {\n    \"name\": \"Ada\"\n  }")

	env.writeConfig(t, "strict_objects: true\n")
	_, _, err = env.run(t, "", "generate", "Article", "--set", "author=Ada")
	require.Error(t, err)
	assert.ErrorIs(t, err, types.ErrMalformedObject)
	assert.Equal(t, exitUserError, exitCode(err))
}

func TestGenerate_Download(t *testing.T) {
	env := newTestEnv(t)
	env.writeConfig(t, "output_dir: "+env.outDir+"\n")

	out, stderr, err := env.run(t, "", "generate", "LocalBusiness", "--set", "name=Cafe", "--download")
	require.NoError(t, err)
	assert.Empty(t, out)

	path := filepath.Join(env.outDir, "schema_localbusiness.json")
	assert.Contains(t, stderr, "Wrote "+path)
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"name": "Cafe"`)
	assert.False(t, strings.HasSuffix(string(data), "\n"))
}

func TestGenerate_Out(t *testing.T) {
	env := newTestEnv(t)
	path := filepath.Join(env.outDir, "nested", "ada.html")

	_, _, err := env.run(t, "", "generate", "Person", "--set", "name=Ada", "--format", "html", "-o", path)
	require.NoError(t, err)
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "application/ld+json")
}
