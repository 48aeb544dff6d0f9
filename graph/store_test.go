package graph

import (
	"context"
	"testing"

	"github.com/cayleygraph/quad"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	rdfType  = quad.IRI("http://www.w3.org/1999/02/22-rdf-syntax-ns#type")
	rdfsLbl  = quad.IRI("http://www.w3.org/2000/01/rdf-schema#label")
	subClass = quad.IRI("http://www.w3.org/2000/01/rdf-schema#subClassOf")
	sdoName  = quad.IRI("https://schema.org/name")
	sdoThing = quad.IRI("https://schema.org/Thing")
	sdoPers  = quad.IRI("https://schema.org/Person")
)

func fixtureStore(t *testing.T) *Store {
	t.Helper()
	s, err := NewStore()
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })

	for _, q := range []quad.Quad{
		quad.Make(sdoName, rdfType, quad.IRI("http://www.w3.org/1999/02/22-rdf-syntax-ns#Property"), nil),
		quad.Make(sdoName, rdfsLbl, quad.LangString{Value: "name", Lang: "en"}, nil),
		quad.Make(sdoName, quad.IRI("https://schema.org/domainIncludes"), sdoThing, nil),
		quad.Make(sdoPers, rdfType, quad.IRI("http://www.w3.org/2000/01/rdf-schema#Class"), nil),
		quad.Make(sdoPers, subClass, sdoThing, nil),
	} {
		_, err := s.Add(q)
		require.NoError(t, err)
	}
	return s
}

func TestStore_AddDeduplicates(t *testing.T) {
	s, err := NewStore()
	require.NoError(t, err)
	defer s.Close()

	q := quad.Make(quad.IRI("a"), quad.IRI("b"), quad.String("c"), nil)

	added, err := s.Add(q)
	require.NoError(t, err)
	assert.True(t, added)

	added, err = s.Add(q)
	require.NoError(t, err)
	assert.False(t, added)

	// The graph label is dropped, so a labelled copy is a duplicate.
	added, err = s.Add(quad.Make(quad.IRI("a"), quad.IRI("b"), quad.String("c"), quad.IRI("g")))
	require.NoError(t, err)
	assert.False(t, added)

	added, err = s.Add(quad.Make(quad.IRI("a"), quad.IRI("b"), quad.LangString{Value: "c", Lang: "en"}, nil))
	require.NoError(t, err)
	assert.True(t, added)
	assert.Equal(t, 2, s.Len())
}

func TestStore_Paths(t *testing.T) {
	s := fixtureStore(t)
	ctx := context.Background()

	tests := []struct {
		name string
		path func() []quad.Value
		want []quad.Value
	}{
		{
			name: "out",
			path: func() []quad.Value {
				v, err := s.Values(ctx, s.Path(sdoPers).Out(subClass))
				require.NoError(t, err)
				return v
			},
			want: []quad.Value{sdoThing},
		},
		{
			name: "in",
			path: func() []quad.Value {
				v, err := s.Values(ctx, s.Path(sdoThing).In(subClass))
				require.NoError(t, err)
				return v
			},
			want: []quad.Value{sdoPers},
		},
		{
			name: "language tagged label",
			path: func() []quad.Value {
				v, err := s.Values(ctx, s.Path(sdoName).Out(rdfsLbl))
				require.NoError(t, err)
				return v
			},
			want: []quad.Value{quad.LangString{Value: "name", Lang: "en"}},
		},
		{
			name: "predicate has no outgoing edges",
			path: func() []quad.Value {
				v, err := s.Values(ctx, s.Path(rdfType).Out())
				require.NoError(t, err)
				return v
			},
			want: nil,
		},
		{
			name: "every subject of a predicate",
			path: func() []quad.Value {
				v, err := s.Values(ctx, s.Path().In(rdfType))
				require.NoError(t, err)
				return v
			},
			want: []quad.Value{sdoName, sdoPers},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ElementsMatch(t, tt.want, tt.path())
		})
	}
}
