package query_test

import (
	"context"
	"testing"

	"github.com/cayleygraph/quad"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c360studio/semschema/graph"
	"github.com/c360studio/semschema/query"
	sdo "github.com/c360studio/semschema/vocabulary/schemaorg"
)

// builder is a small helper to assemble stores in tests.
type builder struct {
	t     *testing.T
	store *graph.Store
}

func newBuilder(t *testing.T) *builder {
	t.Helper()
	store, err := graph.NewStore()
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return &builder{t: t, store: store}
}

func (b *builder) add(subject, predicate string, object quad.Value) *builder {
	b.t.Helper()
	_, err := b.store.Add(quad.Make(quad.IRI(subject), quad.IRI(predicate), object, nil))
	require.NoError(b.t, err)
	return b
}

func (b *builder) property(name string, labels []string, domains, ranges []string) *builder {
	iri := sdo.IRI(name)
	b.add(iri, sdo.RDFType, quad.IRI(sdo.RDFProperty))
	for _, l := range labels {
		b.add(iri, sdo.RDFSLabel, quad.String(l))
	}
	for _, d := range domains {
		b.add(iri, sdo.DomainIncludes, quad.IRI(sdo.IRI(d)))
	}
	for _, r := range ranges {
		b.add(iri, sdo.RangeIncludes, quad.IRI(sdo.IRI(r)))
	}
	return b
}

func (b *builder) superseded(name, by string) *builder {
	return b.add(sdo.IRI(name), sdo.SupersededBy, quad.IRI(sdo.IRI(by)))
}

func (b *builder) class(name string, parents ...string) *builder {
	iri := sdo.IRI(name)
	b.add(iri, sdo.RDFType, quad.IRI(sdo.RDFSClass))
	for _, p := range parents {
		b.add(iri, sdo.RDFSSubClassOf, quad.IRI(sdo.IRI(p)))
	}
	return b
}

func (b *builder) runner() *query.Runner {
	return query.NewRunner(b.store, query.DefaultOptions(), nil)
}

func properties(t *testing.T, r *query.Runner) []query.PropertyRow {
	t.Helper()
	rows, err := r.Properties(context.Background())
	require.NoError(t, err)
	return rows
}

func subclasses(t *testing.T, r *query.Runner) []query.SubclassRow {
	t.Helper()
	rows, err := r.Subclasses(context.Background())
	require.NoError(t, err)
	return rows
}

func TestProperties(t *testing.T) {
	r := newBuilder(t).
		property("name", []string{"name"}, []string{"Thing"}, []string{"Text"}).
		property("author", []string{"author"}, []string{"CreativeWork", "Rating"}, []string{"Person", "Organization"}).
		property("about", []string{"about"}, []string{"CreativeWork", "Event"}, []string{"Thing"}).
		runner()

	rows := properties(t, r)
	require.Len(t, rows, 3)

	assert.Equal(t, "https://schema.org/about", rows[0].Property)
	assert.Equal(t, "https://schema.org/author", rows[1].Property)
	assert.Equal(t, "https://schema.org/name", rows[2].Property)

	// Disallowed domains are dropped from the group, not the row.
	assert.Equal(t, []string{sdo.ClassCreativeWork}, rows[1].Domains)
	assert.Equal(t, []string{sdo.ClassOrganization, sdo.ClassPerson}, rows[1].Ranges)
	assert.Equal(t, []string{"author"}, rows[1].Labels)
}

func TestProperties_Filters(t *testing.T) {
	tests := []struct {
		name  string
		build func(*builder)
	}{
		{
			name: "superseded property",
			build: func(b *builder) {
				b.property("namee", []string{"namee"}, []string{"Person"}, []string{"Text"}).superseded("namee", "name")
			},
		},
		{
			name: "range outside allow-list",
			build: func(b *builder) {
				b.property("geo", []string{"geo"}, []string{"Person"}, []string{"GeoCoordinates"})
			},
		},
		{
			name: "domain outside allow-list",
			build: func(b *builder) {
				b.property("eventStatus", []string{"eventStatus"}, []string{"Event"}, []string{"Text"})
			},
		},
		{
			name: "no label",
			build: func(b *builder) {
				b.property("unlabeled", nil, []string{"Person"}, []string{"Text"})
			},
		},
		{
			name: "not typed rdf:Property",
			build: func(b *builder) {
				b.add(sdo.IRI("loose"), sdo.DomainIncludes, quad.IRI(sdo.ClassPerson)).
					add(sdo.IRI("loose"), sdo.RangeIncludes, quad.IRI(sdo.TypeText)).
					add(sdo.IRI("loose"), sdo.RDFSLabel, quad.String("loose"))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := newBuilder(t)
			tt.build(b)
			assert.Empty(t, properties(t, b.runner()))
		})
	}
}

func TestProperties_SupersededIgnoresMatchingFilters(t *testing.T) {
	r := newBuilder(t).
		property("name", []string{"name"}, []string{"Person"}, []string{"Text"}).
		property("legacyName", []string{"legacyName"}, []string{"Person", "Dataset"}, []string{"Text", "URL"}).
		superseded("legacyName", "name").
		runner()

	rows := properties(t, r)
	require.Len(t, rows, 1)
	assert.Equal(t, "https://schema.org/name", rows[0].Property)
}

func TestProperties_GroupsDistinctLabels(t *testing.T) {
	b := newBuilder(t).property("name", []string{"name"}, []string{"Person"}, []string{"Text"})
	b.add(sdo.IRI("name"), sdo.RDFSLabel, quad.LangString{Value: "name", Lang: "en"}).
		add(sdo.IRI("name"), sdo.RDFSLabel, quad.LangString{Value: "nom", Lang: "fr"})

	rows := properties(t, b.runner())
	require.Len(t, rows, 1)
	assert.Equal(t, []string{"name", "nom"}, rows[0].Labels)
}

func TestProperties_CustomAllowLists(t *testing.T) {
	b := newBuilder(t).
		property("eventStatus", []string{"eventStatus"}, []string{"Event"}, []string{"EventStatusType"}).
		property("name", []string{"name"}, []string{"Thing"}, []string{"Text"})

	r := query.NewRunner(b.store, query.Options{
		RangeTypes:  []string{"https://schema.org/EventStatusType"},
		DomainTypes: []string{"Event"},
	}, nil)

	rows := properties(t, r)
	require.Len(t, rows, 1)
	assert.Equal(t, "https://schema.org/eventStatus", rows[0].Property)
}

func TestSubclasses(t *testing.T) {
	r := newBuilder(t).
		class("Person", "Thing").
		class("Dataset", "CreativeWork").
		class("DataDownload", "MediaObject", "Dataset").
		class("Thing").
		class("Event", "Thing").
		runner()

	rows := subclasses(t, r)
	assert.Equal(t, []query.SubclassRow{
		{Class: sdo.ClassDataDownload, Parent: sdo.ClassDataset},
		{Class: sdo.ClassDataset, Parent: sdo.ClassCreativeWork},
		{Class: sdo.ClassPerson, Parent: sdo.ClassThing},
	}, rows)
}

func TestSubclasses_RequiresClassType(t *testing.T) {
	b := newBuilder(t)
	b.add(sdo.ClassPerson, sdo.RDFSSubClassOf, quad.IRI(sdo.ClassThing))

	assert.Empty(t, subclasses(t, b.runner()))
}

func TestDefaultOptions_IsACopy(t *testing.T) {
	opts := query.DefaultOptions()
	opts.RangeTypes[0] = "Changed"
	assert.Equal(t, "Text", query.DefaultRangeTypes[0])
}

func TestSubclasses_EmptyAllowList(t *testing.T) {
	b := newBuilder(t).class("Person", "Thing")
	r := query.NewRunner(b.store, query.Options{}, nil)

	assert.Empty(t, subclasses(t, r))
	assert.Empty(t, properties(t, r))
}

func TestDefaultClasses_IndependentOfDomainTypes(t *testing.T) {
	require.Equal(t, query.DefaultDomainTypes, query.DefaultClasses)

	saved := query.DefaultClasses[0]
	query.DefaultClasses[0] = "Changed"
	defer func() { query.DefaultClasses[0] = saved }()

	assert.Equal(t, saved, query.DefaultDomainTypes[0])
}
