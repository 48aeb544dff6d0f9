package schema

import (
	"slices"
)

// RootKey is the single top-level key of a Document.
const RootKey = "schema.org"

// Document is the serialized validation schema.
type Document struct {
	Classes Classes `json:"schema.org" jsonschema:"title=schema.org classes,description=Class local name to class definition"`
}

// Classes maps a class local name to its entry.
type Classes map[string]*ClassEntry

// ClassEntry describes one schema.org class.
type ClassEntry struct {
	// Properties maps a property label to its accepted value types.
	Properties map[string]PropertySpec `json:"properties"`
	// RequiredProperties lists labels that must be present.
	RequiredProperties []string `json:"requiredProperties"`
	// Parent is the local name of the superclass, nil at the root.
	Parent *string `json:"parent" jsonschema:"oneof_type=string;null"`
}

// PropertySpec lists the type local names a property value may have.
type PropertySpec struct {
	Types []string `json:"types"`
}

// NewDocument returns an empty document.
func NewDocument() *Document {
	return &Document{Classes: make(Classes)}
}

// NewClassEntry returns an entry with no properties, no required
// properties and no parent.
func NewClassEntry() *ClassEntry {
	return &ClassEntry{
		Properties:         make(map[string]PropertySpec),
		RequiredProperties: []string{},
	}
}

// Ensure returns the entry for name, creating it if needed.
func (d *Document) Ensure(name string) *ClassEntry {
	if d.Classes == nil {
		d.Classes = make(Classes)
	}
	entry, ok := d.Classes[name]
	if !ok {
		entry = NewClassEntry()
		d.Classes[name] = entry
	}
	return entry
}

// Class returns the entry for name.
func (d *Document) Class(name string) (*ClassEntry, bool) {
	entry, ok := d.Classes[name]
	return entry, ok
}

// ClassNames returns the class names in sorted order.
func (d *Document) ClassNames() []string {
	names := make([]string, 0, len(d.Classes))
	for name := range d.Classes {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// PropertyCount returns the total number of (class, property) pairs.
func (d *Document) PropertyCount() int {
	n := 0
	for _, entry := range d.Classes {
		n += len(entry.Properties)
	}
	return n
}

// ParentName returns the parent local name or "" at the root.
func (e *ClassEntry) ParentName() string {
	if e.Parent == nil {
		return ""
	}
	return *e.Parent
}

// SetParent sets the parent local name.
func (e *ClassEntry) SetParent(name string) {
	e.Parent = &name
}

// Normalize replaces nil collections with empty ones so they serialize as
// {} and [] rather than null. Used after decoding hand-edited files.
func (d *Document) Normalize() {
	if d.Classes == nil {
		d.Classes = make(Classes)
	}
	for name, entry := range d.Classes {
		if entry == nil {
			d.Classes[name] = NewClassEntry()
			continue
		}
		if entry.Properties == nil {
			entry.Properties = make(map[string]PropertySpec)
		}
		if entry.RequiredProperties == nil {
			entry.RequiredProperties = []string{}
		}
		for label, spec := range entry.Properties {
			if spec.Types == nil {
				entry.Properties[label] = PropertySpec{Types: []string{}}
			}
		}
	}
}
