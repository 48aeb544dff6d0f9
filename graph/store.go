package graph

import (
	"context"
	"fmt"

	"github.com/cayleygraph/cayley"
	"github.com/cayleygraph/quad"
)

// Store wraps an in-memory cayley graph. Quads are deduplicated on insert
// and graph labels are dropped. It is not safe for concurrent writes; once
// loaded it may be queried from any number of goroutines.
type Store struct {
	handle *cayley.Handle
	seen   map[quad.Quad]struct{}
}

// NewStore creates an empty store backed by cayley's memstore.
func NewStore() (*Store, error) {
	h, err := cayley.NewMemoryGraph()
	if err != nil {
		return nil, fmt.Errorf("create memory graph: %w", err)
	}
	return &Store{handle: h, seen: make(map[quad.Quad]struct{})}, nil
}

// Add writes q into the graph. It reports false if the quad was already
// present.
func (s *Store) Add(q quad.Quad) (bool, error) {
	q.Label = nil
	if _, ok := s.seen[q]; ok {
		return false, nil
	}
	if err := s.handle.AddQuad(q); err != nil {
		return false, fmt.Errorf("add %s: %w", q, err)
	}
	s.seen[q] = struct{}{}
	return true, nil
}

// Len returns the number of distinct quads in the store.
func (s *Store) Len() int {
	return len(s.seen)
}

// Handle returns the underlying quad store for iterating paths.
func (s *Store) Handle() *cayley.Handle {
	return s.handle
}

// Path starts a path query at nodes, or at every node when none are given.
func (s *Store) Path(nodes ...quad.Value) *cayley.Path {
	return cayley.StartPath(s.handle, nodes...)
}

// Values runs p and returns the values it reaches.
func (s *Store) Values(ctx context.Context, p *cayley.Path) ([]quad.Value, error) {
	return p.Iterate(ctx).AllValues(s.handle)
}

// Close releases the graph.
func (s *Store) Close() error {
	return s.handle.Close()
}
