package graph

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"slices"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/cayleygraph/quad"
	"github.com/knakk/rdf"
)

// cancelCheckInterval is how many triples are decoded between context checks.
const cancelCheckInterval = 4096

// Loader reads RDF files into a Store.
type Loader struct {
	logger *slog.Logger
}

// NewLoader creates a loader. A nil logger falls back to slog.Default().
func NewLoader(logger *slog.Logger) *Loader {
	if logger == nil {
		logger = slog.Default()
	}
	return &Loader{logger: logger}
}

// LoadFiles expands the glob patterns and loads every matched file into a
// single store using the default loader.
func LoadFiles(ctx context.Context, patterns ...string) (*Store, error) {
	return NewLoader(nil).LoadFiles(ctx, patterns...)
}

// LoadFiles expands each pattern with doublestar globbing ("vocab/**/*.ttl")
// and loads the matched files, in sorted order, into one store. A pattern
// without glob metacharacters must name an existing file; a glob pattern
// must match at least one file.
func (l *Loader) LoadFiles(ctx context.Context, patterns ...string) (*Store, error) {
	paths, err := ExpandPatterns(patterns...)
	if err != nil {
		return nil, err
	}

	store, err := NewStore()
	if err != nil {
		return nil, err
	}
	for _, path := range paths {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if err := l.loadFile(ctx, store, path); err != nil {
			store.Close()
			return nil, err
		}
	}
	return store, nil
}

// LoadFile loads a single file into store.
func (l *Loader) LoadFile(ctx context.Context, store *Store, path string) error {
	return l.loadFile(ctx, store, path)
}

func (l *Loader) loadFile(ctx context.Context, store *Store, path string) error {
	format := FormatForPath(path)

	f, err := os.Open(path)
	if err != nil {
		return &ParseError{Path: path, Format: format, Err: err}
	}
	defer f.Close()

	before := store.Len()
	if _, err := decode(ctx, store, f, format); err != nil {
		var perr *ParseError
		if errors.As(err, &perr) {
			perr.Path = path
			return perr
		}
		return err
	}

	l.logger.Debug("Loaded RDF file",
		slog.String("path", path),
		slog.String("format", string(format)),
		slog.Int("triples", store.Len()-before))
	return nil
}

// ExpandPatterns resolves glob patterns to a sorted, deduplicated file list.
func ExpandPatterns(patterns ...string) ([]string, error) {
	if len(patterns) == 0 {
		return nil, ErrNoInput
	}

	var paths []string
	for _, pattern := range patterns {
		pattern = strings.TrimSpace(pattern)
		if pattern == "" {
			continue
		}
		if !hasMeta(pattern) {
			paths = append(paths, pattern)
			continue
		}
		matches, err := doublestar.FilepathGlob(pattern, doublestar.WithFilesOnly())
		if err != nil {
			return nil, fmt.Errorf("expand %q: %w", pattern, err)
		}
		if len(matches) == 0 {
			return nil, fmt.Errorf("%w: pattern %q matched nothing", ErrNoInput, pattern)
		}
		slices.Sort(matches)
		paths = append(paths, matches...)
	}
	if len(paths) == 0 {
		return nil, ErrNoInput
	}

	seen := make(map[string]struct{}, len(paths))
	out := paths[:0]
	for _, p := range paths {
		if _, ok := seen[p]; ok {
			continue
		}
		seen[p] = struct{}{}
		out = append(out, p)
	}
	return out, nil
}

func hasMeta(pattern string) bool {
	return strings.ContainsAny(pattern, "*?[{")
}

// Decode parses r in the given format into store and returns the number of
// triples read (including duplicates already present in the store).
func Decode(ctx context.Context, store *Store, r io.Reader, format Format) (int, error) {
	return decode(ctx, store, r, format)
}

func decode(ctx context.Context, store *Store, r io.Reader, format Format) (int, error) {
	info, ok := GetFormatInfo(format)
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrUnsupportedFormat, format)
	}

	next, err := decoderFor(r, info)
	if err != nil {
		return 0, &ParseError{Format: format, Err: err}
	}

	n := 0
	for {
		tr, err := next()
		if err == io.EOF {
			return n, nil
		}
		if err != nil {
			return n, &ParseError{Format: format, Err: err}
		}
		if _, err := store.Add(convertTriple(tr)); err != nil {
			return n, err
		}
		n++

		if n%cancelCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return n, err
			}
		}
	}
}

// decoderFor returns a pull function yielding triples until io.EOF.
func decoderFor(r io.Reader, info FormatInfo) (func() (rdf.Triple, error), error) {
	if info.codec == rdf.NQuads {
		dec := rdf.NewQuadDecoder(r, info.codec)
		return func() (rdf.Triple, error) {
			q, err := dec.Decode()
			if err != nil {
				return rdf.Triple{}, err
			}
			return q.Triple, nil
		}, nil
	}

	dec := rdf.NewTripleDecoder(r, info.codec)
	return dec.Decode, nil
}

func convertTriple(tr rdf.Triple) quad.Quad {
	return quad.Make(convertTerm(tr.Subj), quad.IRI(tr.Pred.String()), convertTerm(tr.Obj), nil)
}

func convertTerm(term rdf.Term) quad.Value {
	switch term.Type() {
	case rdf.TermIRI:
		return quad.IRI(term.String())
	case rdf.TermBlank:
		return quad.BNode(strings.TrimPrefix(term.String(), "_:"))
	default:
		if lit, ok := term.(rdf.Literal); ok && lit.Lang() != "" {
			return quad.LangString{Value: quad.String(lit.String()), Lang: lit.Lang()}
		}
		return quad.String(term.String())
	}
}
