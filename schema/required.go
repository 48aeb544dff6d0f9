package schema

import (
	"fmt"
	"slices"
	"strings"
)

// RequiredTable maps a class local name to the labels it requires.
type RequiredTable map[string][]string

// DefaultRequired returns the required properties Google's Dataset search
// expects. schema.org itself has no required properties.
func DefaultRequired() RequiredTable {
	return RequiredTable{
		"Dataset":      {"name", "description"},
		"DataDownload": {"contentUrl", "encodingFormat"},
		"Person":       {"name"},
		"Organization": {"name"},
		"DataCatalog":  {"name"},
	}
}

// Classes returns the class names of the table, sorted.
func (t RequiredTable) Classes() []string {
	names := make([]string, 0, len(t))
	for name := range t {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// MissingClassError reports required-table classes absent from a document.
type MissingClassError struct {
	Classes []string
}

func (e *MissingClassError) Error() string {
	return fmt.Sprintf("required properties defined for classes missing from the schema: %s "+
		"(check the input vocabulary and the query allow-lists)", strings.Join(e.Classes, ", "))
}

// ApplyRequired replaces requiredProperties of every class in table with a
// copy of its list. Nothing is merged with previously folded values. All
// table classes must already be in doc; otherwise doc is left untouched and
// a *MissingClassError naming every absent class is returned.
func ApplyRequired(doc *Document, table RequiredTable) error {
	var missing []string
	for _, name := range table.Classes() {
		if _, ok := doc.Class(name); !ok {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return &MissingClassError{Classes: missing}
	}

	for name, labels := range table {
		doc.Classes[name].RequiredProperties = append(make([]string, 0, len(labels)), labels...)
	}
	return nil
}
