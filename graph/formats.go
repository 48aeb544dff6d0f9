package graph

import (
	"path/filepath"
	"strings"

	"github.com/knakk/rdf"
)

// Format identifies an RDF serialization.
type Format string

const (
	// FormatTurtle is Turtle (.ttl), the format schema.org publishes.
	FormatTurtle Format = "turtle"

	// FormatNTriples is line-based N-Triples (.nt).
	FormatNTriples Format = "ntriples"

	// FormatNQuads is N-Quads (.nq). Graph names are ignored on load.
	FormatNQuads Format = "nquads"

	// FormatRDFXML is RDF/XML (.rdf, .owl).
	FormatRDFXML Format = "rdfxml"
)

// FormatInfo provides metadata about an input format.
type FormatInfo struct {
	// Name is the format identifier.
	Name Format

	// MIMEType is the standard MIME type.
	MIMEType string

	// Extensions are the file extensions (with dot) mapped to this format.
	Extensions []string

	// Description describes the format.
	Description string

	codec rdf.Format
}

// FormatRegistry contains metadata for all supported input formats.
var FormatRegistry = map[Format]FormatInfo{
	FormatTurtle: {
		Name:        FormatTurtle,
		MIMEType:    "text/turtle",
		Extensions:  []string{".ttl", ".n3"},
		Description: "Turtle - Terse RDF Triple Language",
		codec:       rdf.Turtle,
	},
	FormatNTriples: {
		Name:        FormatNTriples,
		MIMEType:    "application/n-triples",
		Extensions:  []string{".nt"},
		Description: "N-Triples - Line-based RDF format",
		codec:       rdf.NTriples,
	},
	FormatNQuads: {
		Name:        FormatNQuads,
		MIMEType:    "application/n-quads",
		Extensions:  []string{".nq"},
		Description: "N-Quads - N-Triples with a graph label",
		codec:       rdf.NQuads,
	},
	FormatRDFXML: {
		Name:        FormatRDFXML,
		MIMEType:    "application/rdf+xml",
		Extensions:  []string{".rdf", ".owl", ".xml"},
		Description: "RDF/XML",
		codec:       rdf.RDFXML,
	},
}

// GetFormatInfo returns metadata for a format.
func GetFormatInfo(format Format) (FormatInfo, bool) {
	info, ok := FormatRegistry[format]
	return info, ok
}

// FormatForPath picks a format from the file extension. Unknown extensions
// are read as Turtle, which also accepts plain N-Triples.
func FormatForPath(path string) Format {
	ext := strings.ToLower(filepath.Ext(path))
	for name, info := range FormatRegistry {
		for _, e := range info.Extensions {
			if e == ext {
				return name
			}
		}
	}
	return FormatTurtle
}
