package query

import (
	"slices"

	"github.com/c360studio/semschema/vocabulary/schemaorg"
)

// DefaultRangeTypes are the value types a property must accept to be kept.
var DefaultRangeTypes = []string{
	"Text", "URL", "Boolean", "Integer", "Number", "Date", "DateTime",
	"Comment", "Language", "Intangible", "Person", "Organization",
	"DataCatalog", "CreativeWork", "Thing", "Dataset", "DataDownload",
}

// DefaultDomainTypes are the classes whose properties are extracted.
var DefaultDomainTypes = []string{
	"Comment", "Language", "Intangible", "Person", "Organization",
	"DataCatalog", "CreativeWork", "Thing", "Dataset", "DataDownload",
	"MediaObject",
}

// DefaultClasses are the classes whose parent class is looked up.
var DefaultClasses = slices.Clone(DefaultDomainTypes)

// Options configures the allow-lists. Entries are schema.org local names
// or full IRIs.
type Options struct {
	RangeTypes  []string
	DomainTypes []string
	Classes     []string
}

// DefaultOptions returns the allow-lists used for Google Dataset markup.
func DefaultOptions() Options {
	return Options{
		RangeTypes:  slices.Clone(DefaultRangeTypes),
		DomainTypes: slices.Clone(DefaultDomainTypes),
		Classes:     slices.Clone(DefaultClasses),
	}
}

// allowList is a set of full IRIs.
type allowList map[string]struct{}

func newAllowList(terms []string) allowList {
	set := make(allowList, len(terms))
	for _, t := range terms {
		set[schemaorg.IRI(t)] = struct{}{}
	}
	return set
}

func (a allowList) contains(iri string) bool {
	_, ok := a[iri]
	return ok
}
