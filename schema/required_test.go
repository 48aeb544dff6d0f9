package schema_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c360studio/semschema/schema"
)

func docWith(names ...string) *schema.Document {
	doc := schema.NewDocument()
	for _, n := range names {
		doc.Ensure(n)
	}
	return doc
}

func TestApplyRequired_Defaults(t *testing.T) {
	doc := docWith("Dataset", "DataDownload", "Person", "Organization", "DataCatalog", "Thing")
	require.NoError(t, schema.ApplyRequired(doc, schema.DefaultRequired()))

	want := map[string][]string{
		"Dataset":      {"name", "description"},
		"DataDownload": {"contentUrl", "encodingFormat"},
		"Person":       {"name"},
		"Organization": {"name"},
		"DataCatalog":  {"name"},
	}
	for name, labels := range want {
		entry, _ := doc.Class(name)
		assert.Equal(t, labels, entry.RequiredProperties, name)
	}

	thing, _ := doc.Class("Thing")
	assert.Equal(t, []string{}, thing.RequiredProperties)
}

func TestApplyRequired_ReplacesRatherThanMerges(t *testing.T) {
	doc := docWith("Dataset", "DataDownload", "Person", "Organization", "DataCatalog")
	ds, _ := doc.Class("Dataset")
	ds.RequiredProperties = []string{"license", "name"}

	require.NoError(t, schema.ApplyRequired(doc, schema.DefaultRequired()))
	assert.Equal(t, []string{"name", "description"}, ds.RequiredProperties)
}

func TestApplyRequired_DoesNotAliasTable(t *testing.T) {
	table := schema.RequiredTable{"Person": {"name"}, "Organization": {"name"}}
	doc := docWith("Person", "Organization")
	require.NoError(t, schema.ApplyRequired(doc, table))

	person, _ := doc.Class("Person")
	person.RequiredProperties[0] = "givenName"

	org, _ := doc.Class("Organization")
	assert.Equal(t, []string{"name"}, org.RequiredProperties)
	assert.Equal(t, []string{"name"}, table["Person"])
}

func TestApplyRequired_MissingClasses(t *testing.T) {
	doc := docWith("Person", "Dataset")

	err := schema.ApplyRequired(doc, schema.DefaultRequired())
	var missing *schema.MissingClassError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, []string{"DataCatalog", "DataDownload", "Organization"}, missing.Classes)
	assert.Contains(t, err.Error(), "DataCatalog, DataDownload, Organization")

	// Nothing applied when any class is missing.
	person, _ := doc.Class("Person")
	assert.Equal(t, []string{}, person.RequiredProperties)
}

func TestApplyRequired_EmptyDocument(t *testing.T) {
	err := schema.ApplyRequired(schema.NewDocument(), schema.DefaultRequired())
	var missing *schema.MissingClassError
	require.ErrorAs(t, err, &missing)
	assert.Len(t, missing.Classes, 5)
}
