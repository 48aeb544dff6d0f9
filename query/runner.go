package query

import (
	"cmp"
	"context"
	"fmt"
	"log/slog"
	"slices"

	"github.com/cayleygraph/quad"

	"github.com/c360studio/semschema/graph"
	"github.com/c360studio/semschema/vocabulary/schemaorg"
)

// Tags bound by the query paths.
const (
	tagProperty = "property"
	tagLabel    = "label"
	tagDomain   = "domain"
	tagRange    = "range"
	tagClass    = "class"
	tagParent   = "parent"
)

// PropertyRow is one grouped result of the property query.
type PropertyRow struct {
	// Property is the property IRI.
	Property string
	// Labels are the distinct rdfs:label values, sorted.
	Labels []string
	// Domains are the distinct allowed domain class IRIs, sorted.
	Domains []string
	// Ranges are the distinct allowed range type IRIs, sorted.
	Ranges []string
}

// SubclassRow is one result of the subclass query.
type SubclassRow struct {
	Class  string
	Parent string
}

// Runner evaluates the vocabulary queries over a store.
type Runner struct {
	store       *graph.Store
	rangeTypes  allowList
	domainTypes allowList
	classes     allowList
	logger      *slog.Logger
}

// NewRunner creates a query runner. A nil logger falls back to slog.Default().
func NewRunner(store *graph.Store, opts Options, logger *slog.Logger) *Runner {
	if logger == nil {
		logger = slog.Default()
	}
	return &Runner{
		store:       store,
		rangeTypes:  newAllowList(opts.RangeTypes),
		domainTypes: newAllowList(opts.DomainTypes),
		classes:     newAllowList(opts.Classes),
		logger:      logger,
	}
}

// propertyGroup collects the bindings of one property.
type propertyGroup struct {
	labels, domains, ranges map[string]struct{}
}

// Properties runs the property query. A property is returned when it is
// typed rdf:Property, has a label, has a domain in the domain allow-list and
// a range in the range allow-list, and is not superseded. Rows are ordered
// by property IRI.
func (r *Runner) Properties(ctx context.Context) ([]PropertyRow, error) {
	superseded := r.store.Path().In(quad.IRI(schemaorg.SupersededBy))

	p := r.store.Path(quad.IRI(schemaorg.RDFProperty)).
		In(quad.IRI(schemaorg.RDFType)).
		Except(superseded).
		Tag(tagProperty).
		Save(quad.IRI(schemaorg.RDFSLabel), tagLabel).
		Save(quad.IRI(schemaorg.DomainIncludes), tagDomain).
		Save(quad.IRI(schemaorg.RangeIncludes), tagRange)

	groups := make(map[string]*propertyGroup)
	err := p.Iterate(ctx).TagValues(r.store.Handle(), func(m map[string]quad.Value) {
		domain, ok := m[tagDomain].(quad.IRI)
		if !ok || !r.domainTypes.contains(string(domain)) {
			return
		}
		rng, ok := m[tagRange].(quad.IRI)
		if !ok || !r.rangeTypes.contains(string(rng)) {
			return
		}

		prop := valueString(m[tagProperty])
		g, ok := groups[prop]
		if !ok {
			g = &propertyGroup{
				labels:  make(map[string]struct{}),
				domains: make(map[string]struct{}),
				ranges:  make(map[string]struct{}),
			}
			groups[prop] = g
		}
		g.labels[valueString(m[tagLabel])] = struct{}{}
		g.domains[string(domain)] = struct{}{}
		g.ranges[string(rng)] = struct{}{}
	})
	if err != nil {
		return nil, fmt.Errorf("property query: %w", err)
	}

	rows := make([]PropertyRow, 0, len(groups))
	for prop, g := range groups {
		rows = append(rows, PropertyRow{
			Property: prop,
			Labels:   sortedKeys(g.labels),
			Domains:  sortedKeys(g.domains),
			Ranges:   sortedKeys(g.ranges),
		})
	}
	slices.SortFunc(rows, func(a, b PropertyRow) int {
		return cmp.Compare(a.Property, b.Property)
	})
	return rows, nil
}

// Subclasses runs the subclass query: every allow-listed rdfs:Class with an
// rdfs:subClassOf, ordered by class IRI. A class with several parents is
// reported once, with the smallest parent IRI.
func (r *Runner) Subclasses(ctx context.Context) ([]SubclassRow, error) {
	if len(r.classes) == 0 {
		return nil, nil
	}
	start := make([]quad.Value, 0, len(r.classes))
	for iri := range r.classes {
		start = append(start, quad.IRI(iri))
	}

	p := r.store.Path(start...).
		Has(quad.IRI(schemaorg.RDFType), quad.IRI(schemaorg.RDFSClass)).
		Tag(tagClass).
		Out(quad.IRI(schemaorg.RDFSSubClassOf)).
		Tag(tagParent)

	parents := make(map[string]map[string]struct{})
	err := p.Iterate(ctx).TagValues(r.store.Handle(), func(m map[string]quad.Value) {
		class := valueString(m[tagClass])
		if parents[class] == nil {
			parents[class] = make(map[string]struct{})
		}
		parents[class][valueString(m[tagParent])] = struct{}{}
	})
	if err != nil {
		return nil, fmt.Errorf("subclass query: %w", err)
	}

	rows := make([]SubclassRow, 0, len(parents))
	for class, set := range parents {
		ps := sortedKeys(set)
		if len(ps) > 1 {
			r.logger.Debug("Class has several parents, keeping the first",
				slog.String("class", class),
				slog.Any("parents", ps))
		}
		rows = append(rows, SubclassRow{Class: class, Parent: ps[0]})
	}
	slices.SortFunc(rows, func(a, b SubclassRow) int {
		return cmp.Compare(a.Class, b.Class)
	})
	return rows, nil
}

// valueString returns the lexical form of an IRI or literal, dropping any
// language tag or datatype.
func valueString(v quad.Value) string {
	switch v := v.(type) {
	case nil:
		return ""
	case quad.IRI:
		return string(v)
	case quad.String:
		return string(v)
	case quad.LangString:
		return string(v.Value)
	case quad.TypedString:
		return string(v.Value)
	default:
		return v.String()
	}
}

func sortedKeys(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	slices.Sort(out)
	return out
}
