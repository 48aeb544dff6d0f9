package schemaorg

import (
	"github.com/cayleygraph/quad"
	"github.com/cayleygraph/quad/voc/rdf"
	"github.com/cayleygraph/quad/voc/rdfs"
)

// Namespace is the base IRI of the schema.org vocabulary (https variant,
// as used by schemaorg-current-https.ttl).
const Namespace = "https://schema.org/"

// Predicate IRIs defined by schema.org itself.
const (
	// DomainIncludes links a property to a class it may be used on.
	DomainIncludes = Namespace + "domainIncludes"

	// RangeIncludes links a property to a type its values may have.
	RangeIncludes = Namespace + "rangeIncludes"

	// SupersededBy marks a term as deprecated in favor of another.
	SupersededBy = Namespace + "supersededBy"
)

// Class IRIs referenced by the default allow-lists and required table.
const (
	ClassThing        = Namespace + "Thing"
	ClassIntangible   = Namespace + "Intangible"
	ClassLanguage     = Namespace + "Language"
	ClassComment      = Namespace + "Comment"
	ClassCreativeWork = Namespace + "CreativeWork"
	ClassMediaObject  = Namespace + "MediaObject"
	ClassDataset      = Namespace + "Dataset"
	ClassDataDownload = Namespace + "DataDownload"
	ClassDataCatalog  = Namespace + "DataCatalog"
	ClassPerson       = Namespace + "Person"
	ClassOrganization = Namespace + "Organization"
)

// Data type IRIs.
const (
	TypeText     = Namespace + "Text"
	TypeURL      = Namespace + "URL"
	TypeBoolean  = Namespace + "Boolean"
	TypeInteger  = Namespace + "Integer"
	TypeNumber   = Namespace + "Number"
	TypeDate     = Namespace + "Date"
	TypeDateTime = Namespace + "DateTime"
)

// Standard RDF and RDFS IRIs, expanded from the registered voc prefixes.
var (
	RDFType        = full(rdf.Type)
	RDFProperty    = full(rdf.Property)
	RDFSClass      = full(rdfs.Class)
	RDFSLabel      = full(rdfs.Label)
	RDFSSubClassOf = full(rdfs.SubClassOf)
)

func full(short string) string {
	return string(quad.IRI(short).Full())
}

// IRI resolves a term to a full IRI. Local names are resolved against
// Namespace, anything that already looks like an IRI is returned as-is.
func IRI(term string) string {
	if IsIRI(term) {
		return term
	}
	return Namespace + term
}

// IsIRI reports whether s is an absolute IRI rather than a local name.
func IsIRI(s string) bool {
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case ':':
			return i > 0
		case '/', '#', ' ':
			return false
		}
	}
	return false
}
