// Package schemaorg provides the schema.org, RDF and RDFS vocabulary terms
// used when reading a schema.org vocabulary dump.
//
// schema.org publishes its vocabulary as RDF where classes are rdfs:Class
// resources linked by rdfs:subClassOf and properties are rdf:Property
// resources that point at their classes through schema:domainIncludes and
// schema:rangeIncludes. Deprecated properties carry schema:supersededBy.
//
// # Local Names
//
// The generated validation schema never uses full IRIs. Every class, type
// and property is keyed by its local name, the text after the last "/" of
// its IRI:
//
//	LocalName("https://schema.org/Dataset") // "Dataset"
//
// Multi-valued fields returned by the query layer are normalized with
// SplitLocalNames, which also sorts and deduplicates.
package schemaorg
