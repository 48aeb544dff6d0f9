package schema

import (
	"github.com/c360studio/semschema/query"
	"github.com/c360studio/semschema/vocabulary/schemaorg"
)

// Fold builds a document from query results. Property rows are folded
// first: every domain class gets properties[label] = {types: ranges}, later
// rows overwriting earlier ones for the same label. Subclass rows then set
// each class's parent, creating the entry when the class has no properties
// of its own.
func Fold(props []query.PropertyRow, subclasses []query.SubclassRow) *Document {
	doc := NewDocument()
	for _, row := range props {
		FoldProperty(doc, row)
	}
	for _, row := range subclasses {
		FoldSubclass(doc, row)
	}
	return doc
}

// FoldProperty adds one property row to doc.
func FoldProperty(doc *Document, row query.PropertyRow) {
	types := schemaorg.LocalNames(row.Ranges)
	for _, domain := range schemaorg.LocalNames(row.Domains) {
		entry := doc.Ensure(domain)
		for _, label := range row.Labels {
			entry.Properties[label] = PropertySpec{Types: append([]string(nil), types...)}
		}
	}
}

// FoldSubclass records the parent of one class.
func FoldSubclass(doc *Document, row query.SubclassRow) {
	doc.Ensure(schemaorg.LocalName(row.Class)).SetParent(schemaorg.LocalName(row.Parent))
}
