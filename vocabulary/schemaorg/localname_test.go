package schemaorg_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/c360studio/semschema/vocabulary/schemaorg"
)

func TestLocalName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"https://schema.org/Dataset", "Dataset"},
		{"http://schema.org/Person", "Person"},
		{"ftp://example.com/a/b/Segment", "Segment"},
		{"urn:x-local:Thing", "urn:x-local:Thing"},
		{"Text", "Text"},
		{"https://schema.org/", ""},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, schemaorg.LocalName(tt.in))
		})
	}
}

func TestLocalName_SchemeHostSegment(t *testing.T) {
	for _, scheme := range []string{"http", "https", "ftp", "urn-ish"} {
		for _, seg := range []string{"A", "contentUrl", "Data_Download", "x1"} {
			iri := scheme + "://host/" + seg
			assert.Equal(t, seg, schemaorg.LocalName(iri), iri)
		}
	}
}

func TestSplitLocalNames(t *testing.T) {
	t.Run("sorted local names", func(t *testing.T) {
		got := schemaorg.SplitLocalNames("https://schema.org/URL https://schema.org/CreativeWork")
		assert.Equal(t, []string{"CreativeWork", "URL"}, got)
	})

	t.Run("collapses whitespace and duplicates", func(t *testing.T) {
		got := schemaorg.SplitLocalNames("  https://schema.org/Text\thttps://schema.org/Text\n http://schema.org/Text ")
		assert.Equal(t, []string{"Text"}, got)
	})

	t.Run("empty input gives empty non-nil slice", func(t *testing.T) {
		got := schemaorg.SplitLocalNames("   ")
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})

	t.Run("idempotent", func(t *testing.T) {
		inputs := []string{
			"https://schema.org/URL https://schema.org/CreativeWork https://schema.org/Text",
			"http://example.org/zeta https://schema.org/Alpha",
			"Text",
		}
		for _, in := range inputs {
			once := schemaorg.SplitLocalNames(in)
			twice := schemaorg.SplitLocalNames(strings.Join(once, " "))
			assert.Equal(t, once, twice, in)
		}
	})
}

func TestIRI(t *testing.T) {
	assert.Equal(t, schemaorg.ClassDataset, schemaorg.IRI("Dataset"))
	assert.Equal(t, "http://example.org/Thing", schemaorg.IRI("http://example.org/Thing"))
	assert.Equal(t, "urn:isbn:123", schemaorg.IRI("urn:isbn:123"))
}

func TestStandardIRIs(t *testing.T) {
	assert.Equal(t, "http://www.w3.org/1999/02/22-rdf-syntax-ns#type", schemaorg.RDFType)
	assert.Equal(t, "http://www.w3.org/1999/02/22-rdf-syntax-ns#Property", schemaorg.RDFProperty)
	assert.Equal(t, "http://www.w3.org/2000/01/rdf-schema#Class", schemaorg.RDFSClass)
	assert.Equal(t, "http://www.w3.org/2000/01/rdf-schema#label", schemaorg.RDFSLabel)
	assert.Equal(t, "http://www.w3.org/2000/01/rdf-schema#subClassOf", schemaorg.RDFSSubClassOf)
}
