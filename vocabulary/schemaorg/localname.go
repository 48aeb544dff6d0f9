package schemaorg

import (
	"slices"
	"strings"
)

// LocalName returns the substring after the last "/" of iri.
// Strings without a "/" are returned unchanged.
func LocalName(iri string) string {
	return iri[strings.LastIndex(iri, "/")+1:]
}

// SplitLocalNames splits a whitespace-joined list of IRIs (or local names),
// maps each element to its local name and returns them sorted with
// duplicates removed. Splitting an already split and sorted list again
// yields the same list.
func SplitLocalNames(joined string) []string {
	return LocalNames(strings.Fields(joined))
}

// LocalNames maps each IRI to its local name, sorted and deduplicated.
// It always returns a non-nil slice.
func LocalNames(iris []string) []string {
	names := make([]string, 0, len(iris))
	for _, iri := range iris {
		names = append(names, LocalName(iri))
	}
	slices.Sort(names)
	return slices.Compact(names)
}
