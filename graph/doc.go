// Package graph loads RDF vocabulary files into an in-memory cayley graph.
//
// The store is populated once, by LoadFiles or Decode, and is read-only
// afterwards. Lookups are cayley paths started with Store.Path:
//
//	store, err := graph.LoadFiles(ctx, "schemaorg-current-https.ttl")
//	if err != nil {
//	    return err
//	}
//	defer store.Close()
//	p := store.Path(quad.IRI(schemaorg.RDFProperty)).In(quad.IRI(schemaorg.RDFType))
//	props, err := store.Values(ctx, p)
//
// Parsing is delegated to github.com/knakk/rdf. Turtle, N-Triples, N-Quads
// (graph names are dropped) and RDF/XML are supported; the format is picked
// from the file extension.
package graph
